package recurrence

import (
	"fmt"
	"hotel-ops-backend/lib/utils/helpers"
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"
	"strconv"
	"time"
)

// NextOccurrences lists the scheduled times a recurring template produces in
// [from, from+horizonDays), in local time. Deterministic, no side effects.
// Weekly days are 1..7 (Mon..Sun), monthly days 1..31, yearly entries "MM-DD".
func NextOccurrences(template dbmodels.Task, from time.Time, horizonDays int, loc *time.Location) []time.Time {
	if !template.RecurrencePattern.IsRepeating() {
		return nil
	}
	hour, minute, ok := helpers.ParseClock(template.ExecutionTime)
	if !ok {
		return nil
	}
	from = from.In(loc)
	out := []time.Time{}
	for dayOffset := 0; dayOffset < horizonDays; dayOffset++ {
		day := from.AddDate(0, 0, dayOffset)
		if !matchesDay(template, day) {
			continue
		}
		at := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
		if !at.Before(from) {
			out = append(out, at)
		}
	}
	return out
}

func matchesDay(template dbmodels.Task, day time.Time) bool {
	switch template.RecurrencePattern {
	case models.RecurrenceDaily:
		return true
	case models.RecurrenceWeekly:
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday
		}
		return containsInt(template.RecurrenceDays, weekday)
	case models.RecurrenceMonthly:
		return containsInt(template.RecurrenceDays, day.Day())
	case models.RecurrenceYearly:
		return template.RecurrenceDays.Contains(fmt.Sprintf("%02d-%02d", int(day.Month()), day.Day()))
	}
	return false
}

func containsInt(list dbmodels.IDList, value int) bool {
	for _, item := range list {
		parsed, err := strconv.Atoi(item)
		if err == nil && parsed == value {
			return true
		}
	}
	return false
}

// ChildFromTemplate builds the dated child instance a template expands into.
// Children of an unassigned template start as new: assigned_to_radnik means a
// technician holds the task, which no one does yet.
func ChildFromTemplate(template dbmodels.Task, scheduledFor time.Time) dbmodels.Task {
	parentID := template.ID
	status := models.TaskStatusAssignedToRadnik
	if len(template.AssignedTo) == 0 {
		status = models.TaskStatusNew
	}
	return dbmodels.Task{
		Title:         template.Title,
		Description:   template.Description,
		Location:      template.Location,
		Priority:      template.Priority,
		Status:        status,
		CreatedByID:   template.CreatedByID,
		CreatedByName: template.CreatedByName,
		AssignedTo:    template.AssignedTo,
		IsRecurring:   true,
		ParentTaskID:  &parentID,
		ScheduledFor:  &scheduledFor,
	}
}
