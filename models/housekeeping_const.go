package models

type HousekeepingStatus string

const (
	HkStatusPending     HousekeepingStatus = "pending"
	HkStatusInProgress  HousekeepingStatus = "in_progress"
	HkStatusCompleted   HousekeepingStatus = "completed"
	HkStatusInspected   HousekeepingStatus = "inspected"
	HkStatusNeedsRework HousekeepingStatus = "needs_rework"
)

var hkStatusHumanName = map[HousekeepingStatus]string{
	HkStatusPending:     "Pending",
	HkStatusInProgress:  "In progress",
	HkStatusCompleted:   "Completed",
	HkStatusInspected:   "Inspected",
	HkStatusNeedsRework: "Needs rework",
}

func (s HousekeepingStatus) ToHuman() string {
	if human, exist := hkStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s HousekeepingStatus) IsValid() bool {
	_, exist := hkStatusHumanName[s]
	return exist
}

// needs_rework is a re-entry point equivalent to in_progress for the assignee.
// inspected is terminal: reopening requires a new task.
var allowedHkTransitions = map[HousekeepingStatus][]HousekeepingStatus{
	HkStatusPending:     {HkStatusInProgress},
	HkStatusInProgress:  {HkStatusCompleted},
	HkStatusCompleted:   {HkStatusInspected, HkStatusNeedsRework},
	HkStatusNeedsRework: {HkStatusInProgress, HkStatusCompleted},
	HkStatusInspected:   {},
}

func (s HousekeepingStatus) IsAllowChange(to HousekeepingStatus) bool {
	for _, allowed := range allowedHkTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

type CleaningType string

const (
	CleaningDaily    CleaningType = "daily"
	CleaningCheckout CleaningType = "checkout"
	CleaningDeep     CleaningType = "deep_clean"
	CleaningTurndown CleaningType = "turndown"
	CleaningTouchUp  CleaningType = "touch_up"
)

func (c CleaningType) IsValid() bool {
	switch c {
	case CleaningDaily, CleaningCheckout, CleaningDeep, CleaningTurndown, CleaningTouchUp:
		return true
	}
	return false
}
