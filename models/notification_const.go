package models

// NotificationCode identifies the event behind a realtime/push message so the
// client can route the user to the right screen.
type NotificationCode string

const (
	NotifyTaskNew          NotificationCode = "task_new"
	NotifyTaskAssigned     NotificationCode = "task_assigned"
	NotifyTaskEscalated    NotificationCode = "task_escalated"
	NotifyTaskReturned     NotificationCode = "task_returned"
	NotifyTaskCompleted    NotificationCode = "task_completed"
	NotifyTaskScheduled    NotificationCode = "task_scheduled"
	NotifyHkTaskAssigned   NotificationCode = "hk_task_assigned"
	NotifyHkTaskCompleted  NotificationCode = "hk_task_completed"
	NotifyHkTaskInspected  NotificationCode = "hk_task_inspected"
	NotifyGuestRequestNew  NotificationCode = "guest_request_new"
	NotifyGuestRequestFwd  NotificationCode = "guest_request_forwarded"
	NotifyGuestRequestDone NotificationCode = "guest_request_completed"
)

type DevicePlatform string

const (
	PlatformAndroid DevicePlatform = "android"
	PlatformIOS     DevicePlatform = "ios"
	PlatformWeb     DevicePlatform = "web"
)

func (p DevicePlatform) IsValid() bool {
	return p == PlatformAndroid || p == PlatformIOS || p == PlatformWeb
}
