package engine

import (
	"time"

	"task_planner/internal/models"
)

// FireTolerance is the band around the computed reminder instant within which
// now counts as a match. It must be at least as large as the host's polling
// interval so a crossing is never missed; the Notified flag keeps delivery
// at-most-once per due date.
const FireTolerance = time.Minute

// defaultRepeatCadence applies when a repeating reminder carries no explicit
// interval.
const defaultRepeatCadence = 5 * time.Minute

// ReminderFireTime returns the absolute instant the reminder should first
// fire: the due date minus the configured offset.
func ReminderFireTime(task models.Task) time.Time {
	r := task.Reminder
	if r == nil {
		return task.DueDate
	}
	var d time.Duration
	switch r.Unit {
	case models.UnitMinutes:
		d = time.Duration(r.Time) * time.Minute
	case models.UnitHours:
		d = time.Duration(r.Time) * time.Hour
	case models.UnitDays:
		d = time.Duration(r.Time) * 24 * time.Hour
	case models.UnitWeeks:
		d = time.Duration(r.Time) * 7 * 24 * time.Hour
	}
	return task.DueDate.Add(-d)
}

// ShouldFireReminder reports whether a notification is due at now. The
// initial fire happens once, within FireTolerance of the computed instant,
// and is guarded by the Notified flag. After the initial fire, the repeat
// setting drives follow-up nudges at the configured cadence.
func ShouldFireReminder(task models.Task, now time.Time) bool {
	r := task.Reminder
	if r == nil || !r.Enabled || task.Status == models.StatusCompleted {
		return false
	}

	fireAt := ReminderFireTime(task)

	if !r.Notified {
		return absDuration(now.Sub(fireAt)) < FireTolerance
	}

	// Repeat nudges. "custom" is an until-completed repeat with an explicit
	// cadence; completed tasks are already excluded above.
	switch r.Repeat {
	case models.RepeatUntilCompleted, models.RepeatCustom:
	case models.RepeatUntilDue:
		if !now.Before(task.DueDate) {
			return false
		}
	default:
		return false
	}

	cadence := defaultRepeatCadence
	if r.RepeatInterval > 0 {
		cadence = time.Duration(r.RepeatInterval) * time.Minute
	}

	elapsed := now.Sub(fireAt)
	if elapsed < FireTolerance {
		return false
	}
	// The engine keeps no last-fired timestamp, so a nudge is due whenever
	// the elapsed time lands within the tolerance window of a cadence
	// multiple.
	return elapsed%cadence < FireTolerance
}

// MarkNotified sets the per-due-date dedup flag.
func MarkNotified(task models.Task) models.Task {
	out := task.Clone()
	if out.Reminder != nil {
		out.Reminder.Notified = true
	}
	return out
}

// ResetNotification clears the dedup flag. Call it whenever the due date
// changes, via edit or a new recurrence occurrence, so the next cycle can
// fire again.
func ResetNotification(task models.Task) models.Task {
	out := task.Clone()
	if out.Reminder != nil {
		out.Reminder.Notified = false
	}
	return out
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
