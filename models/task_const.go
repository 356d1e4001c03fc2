package models

type TaskStatus string

const (
	TaskStatusNew                TaskStatus = "new"
	TaskStatusWithOperator       TaskStatus = "with_operator"
	TaskStatusAssignedToRadnik   TaskStatus = "assigned_to_radnik"
	TaskStatusWithSef            TaskStatus = "with_sef"
	TaskStatusWithExternal       TaskStatus = "with_external"
	TaskStatusReturnedToOperator TaskStatus = "returned_to_operator"
	TaskStatusReturnedToSef      TaskStatus = "returned_to_sef"
	TaskStatusCompleted          TaskStatus = "completed"
	TaskStatusCancelled          TaskStatus = "cancelled"
)

var taskStatusHumanName = map[TaskStatus]string{
	TaskStatusNew:                "New",
	TaskStatusWithOperator:       "With operator",
	TaskStatusAssignedToRadnik:   "Assigned to technician",
	TaskStatusWithSef:            "With supervisor",
	TaskStatusWithExternal:       "With external service",
	TaskStatusReturnedToOperator: "Returned to operator",
	TaskStatusReturnedToSef:      "Returned to supervisor",
	TaskStatusCompleted:          "Completed",
	TaskStatusCancelled:          "Cancelled",
}

func (s TaskStatus) ToHuman() string {
	if human, exist := taskStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s TaskStatus) IsValid() bool {
	_, exist := taskStatusHumanName[s]
	return exist
}

func (s TaskStatus) IsFinal() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

// IsReturn - statuses reported by an assignee who cannot complete the task.
func (s TaskStatus) IsReturn() bool {
	return s == TaskStatusReturnedToSef || s == TaskStatusReturnedToOperator
}

// IsAssignment - statuses that hand the task to a concrete party.
func (s TaskStatus) IsAssignment() bool {
	return s == TaskStatusAssignedToRadnik || s == TaskStatusWithExternal
}

// allowedTaskTransitions lists legal moves per current status. Reassignment to
// the same status is allowed for assigned_to_radnik (technician swap).
var allowedTaskTransitions = map[TaskStatus][]TaskStatus{
	TaskStatusNew: {
		TaskStatusWithOperator, TaskStatusAssignedToRadnik, TaskStatusWithSef, TaskStatusCancelled,
	},
	TaskStatusWithOperator: {
		TaskStatusAssignedToRadnik, TaskStatusWithSef, TaskStatusWithExternal, TaskStatusCompleted, TaskStatusCancelled,
	},
	TaskStatusAssignedToRadnik: {
		TaskStatusAssignedToRadnik, TaskStatusCompleted, TaskStatusReturnedToSef, TaskStatusReturnedToOperator,
		TaskStatusWithSef, TaskStatusWithExternal, TaskStatusCancelled,
	},
	TaskStatusWithSef: {
		TaskStatusAssignedToRadnik, TaskStatusWithExternal, TaskStatusWithOperator, TaskStatusCompleted, TaskStatusCancelled,
	},
	TaskStatusWithExternal: {
		TaskStatusCompleted, TaskStatusWithSef, TaskStatusWithOperator, TaskStatusReturnedToSef, TaskStatusCancelled,
	},
	TaskStatusReturnedToSef: {
		TaskStatusAssignedToRadnik, TaskStatusWithExternal, TaskStatusWithSef, TaskStatusCompleted, TaskStatusCancelled,
	},
	TaskStatusReturnedToOperator: {
		TaskStatusAssignedToRadnik, TaskStatusWithSef, TaskStatusWithOperator, TaskStatusCompleted, TaskStatusCancelled,
	},
	TaskStatusCompleted: {
		TaskStatusAssignedToRadnik, TaskStatusWithSef, TaskStatusWithOperator, TaskStatusCancelled,
	},
	TaskStatusCancelled: {
		TaskStatusWithOperator,
	},
}

func (s TaskStatus) IsAllowChange(to TaskStatus) bool {
	for _, allowed := range allowedTaskTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityUrgent  TaskPriority = "urgent"
	TaskPriorityNormal  TaskPriority = "normal"
	TaskPriorityCanWait TaskPriority = "can_wait"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityUrgent, TaskPriorityNormal, TaskPriorityCanWait:
		return true
	}
	return false
}

type TaskAction string

const (
	TaskActionCreated          TaskAction = "task_created"
	TaskActionStatusChanged    TaskAction = "status_changed"
	TaskActionFieldsChanged    TaskAction = "fields_changed"
	TaskActionReceiptConfirmed TaskAction = "receipt_confirmed"
	TaskActionDeleted          TaskAction = "task_deleted"
)

// ReasonKind is the structured replacement of the prefixed free-text reason
// the mobile client used to parse out of history notes.
type ReasonKind string

const (
	ReasonKindNone               ReasonKind = ""
	ReasonKindReturnedToSef      ReasonKind = "returned_to_sef"
	ReasonKindReturnedToOperator ReasonKind = "returned_to_operator"
	ReasonKindCompleted          ReasonKind = "completed"
	ReasonKindCascadeDelete      ReasonKind = "cascade_delete"
)

// Display note prefixes kept for backward compatibility with existing history
// rows and with the assignment path report.
const (
	NotePrefixReturnedToSef      = "Returned to Supervisor: "
	NotePrefixReturnedToOperator = "Returned to Operator: "
	NotePrefixCompleted          = "Completed: "
)

func (k ReasonKind) NotePrefix() string {
	switch k {
	case ReasonKindReturnedToSef:
		return NotePrefixReturnedToSef
	case ReasonKindReturnedToOperator:
		return NotePrefixReturnedToOperator
	case ReasonKindCompleted:
		return NotePrefixCompleted
	}
	return ""
}

type RecurrencePattern string

const (
	RecurrenceOnce    RecurrencePattern = "once"
	RecurrenceDaily   RecurrencePattern = "daily"
	RecurrenceWeekly  RecurrencePattern = "weekly"
	RecurrenceMonthly RecurrencePattern = "monthly"
	RecurrenceYearly  RecurrencePattern = "yearly"

	// RecurrenceCancelled marks finalized children detached from a deleted
	// template so they stay visible in historical reporting.
	RecurrenceCancelled RecurrencePattern = "cancelled"
)

func (p RecurrencePattern) IsValid() bool {
	switch p {
	case RecurrenceOnce, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

func (p RecurrencePattern) IsRepeating() bool {
	return p.IsValid() && p != RecurrenceOnce
}
