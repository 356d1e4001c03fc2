package assignmentpath

import (
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"
	"strings"
)

// Build collapses a task's history into a "A → B → C" hand-off chain.
// Entries must be ordered by timestamp ascending. The result is a display
// convenience only, so missing or malformed rows contribute nothing instead
// of failing.
func Build(entries []dbmodels.TaskHistory) string {
	names := []string{}
	lastAdded := ""
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || name == lastAdded {
			return
		}
		names = append(names, name)
		lastAdded = name
	}

	for idx, entry := range entries {
		if entry.Action == models.TaskActionCreated {
			continue
		}
		switch {
		case entry.StatusTo.IsAssignment():
			add(entry.UserName)
			add(entry.AssignedToNames)
		case entry.StatusTo.IsReturn():
			add(entry.UserName)
			// who picked the task back up after the return
			for _, next := range entries[idx+1:] {
				if next.StatusTo != entry.StatusTo {
					add(next.UserName)
					break
				}
			}
		case entry.StatusTo == models.TaskStatusWithOperator,
			entry.StatusTo == models.TaskStatusWithSef,
			entry.StatusTo == models.TaskStatusCompleted:
			add(entry.UserName)
		}
	}
	return strings.Join(names, " → ")
}

// Reason is the recovered free-text explanation behind a return or completion.
type Reason struct {
	Kind     models.ReasonKind
	Text     string
	UserName string
}

// ExtractReason recovers the reason from a history row. New rows carry it in
// structured columns; rows written before the reason columns existed are
// parsed out of the prefixed note text.
func ExtractReason(entry dbmodels.TaskHistory) (Reason, bool) {
	if entry.ReasonKind != models.ReasonKindNone {
		return Reason{
			Kind:     entry.ReasonKind,
			Text:     entry.ReasonText,
			UserName: entry.UserName,
		}, true
	}
	for kind, prefix := range notePrefixes {
		if strings.HasPrefix(entry.Notes, prefix) {
			return Reason{
				Kind:     kind,
				Text:     strings.TrimPrefix(entry.Notes, prefix),
				UserName: entry.UserName,
			}, true
		}
	}
	return Reason{}, false
}

var notePrefixes = map[models.ReasonKind]string{
	models.ReasonKindReturnedToSef:      models.NotePrefixReturnedToSef,
	models.ReasonKindReturnedToOperator: models.NotePrefixReturnedToOperator,
	models.ReasonKindCompleted:          models.NotePrefixCompleted,
}
