package engine

import (
	"time"

	"github.com/google/uuid"

	"task_planner/internal/models"
)

// NextOccurrence computes the follow-up occurrence of a completed recurring
// task. It returns a fresh Task (new id, subtasks reset, reminder dedup flag
// cleared) whose due date advances per the recurrence rule, or nil when the
// recurrence has ended. The next due date is always computed from the
// completed occurrence's due date, never from the completion instant, so late
// completions do not drift the schedule.
func NextOccurrence(task models.Task) *models.Task {
	if !task.IsRecurring {
		return nil
	}

	var (
		nextDue time.Time
		rule    *models.RecurrenceRule
	)

	if task.RecurringPattern == models.PatternCustom && task.RecurringCustom != nil {
		rule = task.RecurringCustom
		if rule.EndType == models.EndAfter && rule.EndCount <= 0 {
			return nil
		}
		nextDue = nextCustomDue(task.DueDate, *rule)
	} else {
		switch task.RecurringPattern {
		case models.PatternDaily:
			nextDue = task.DueDate.AddDate(0, 0, 1)
		case models.PatternWeekly:
			nextDue = task.DueDate.AddDate(0, 0, 7)
		case models.PatternMonthly:
			nextDue = addMonthsClamped(task.DueDate, 1)
		case models.PatternQuarterly:
			nextDue = addMonthsClamped(task.DueDate, 3)
		case models.PatternYearly:
			nextDue = addMonthsClamped(task.DueDate, 12)
		default:
			return nil
		}
	}

	// Monotonic advancement: a rule that fails to move the date forward
	// would loop forever, so it terminates the series instead.
	if !nextDue.After(task.DueDate) {
		return nil
	}

	if rule != nil && rule.EndType == models.EndOn && rule.EndDate != nil && nextDue.After(*rule.EndDate) {
		return nil
	}

	next := task.Clone()
	next.ID = uuid.NewString()
	next.DueDate = nextDue
	next.Status = models.StatusIncomplete
	for i := range next.SubTasks {
		next.SubTasks[i].ID = uuid.NewString()
		next.SubTasks[i].Completed = false
	}
	if next.Reminder != nil {
		next.Reminder.Notified = false
	}
	if next.RecurringCustom != nil && next.RecurringCustom.EndType == models.EndAfter {
		next.RecurringCustom.EndCount--
	}
	return &next
}

func nextCustomDue(due time.Time, rule models.RecurrenceRule) time.Time {
	interval := rule.Interval
	if interval < 1 {
		interval = 1
	}

	switch rule.Frequency {
	case models.FreqDaily:
		return due.AddDate(0, 0, interval)
	case models.FreqWeekly:
		if len(rule.Weekdays) == 0 {
			return due.AddDate(0, 0, 7*interval)
		}
		return nextWeekday(due, rule.Weekdays, interval)
	case models.FreqMonthly:
		next := addMonthsClamped(due, interval)
		if rule.MonthDay >= 1 {
			next = withMonthDay(next, rule.MonthDay)
		}
		return next
	case models.FreqYearly:
		return addMonthsClamped(due, 12*interval)
	}
	return due
}

// nextWeekday advances day by day to the first date strictly after due whose
// weekday is in the set. Crossing into a new week (Sunday) skips ahead by the
// remaining interval weeks, so "every 2 weeks on Mon/Wed/Fri" finishes the
// current week's days before jumping.
func nextWeekday(due time.Time, weekdays []time.Weekday, interval int) time.Time {
	// Weekday values outside Sunday..Saturday can never match a real date
	// and would make the scan below spin forever, so they are dropped.
	set := make(map[time.Weekday]bool, len(weekdays))
	for _, wd := range weekdays {
		if wd >= time.Sunday && wd <= time.Saturday {
			set[wd] = true
		}
	}
	if len(set) == 0 {
		return due.AddDate(0, 0, 7*interval)
	}

	next := due.AddDate(0, 0, 1)
	if next.Weekday() == time.Sunday && interval > 1 {
		next = next.AddDate(0, 0, 7*(interval-1))
	}
	for !set[next.Weekday()] {
		next = next.AddDate(0, 0, 1)
		if next.Weekday() == time.Sunday && interval > 1 {
			next = next.AddDate(0, 0, 7*(interval-1))
		}
	}
	return next
}

// addMonthsClamped adds calendar months preserving the day-of-month, clamped
// to the target month's length (Jan 31 + 1 month = Feb 28/29, not Mar 2/3).
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	targetMonth := time.Date(year, month, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	if max := daysInMonth(targetMonth.Year(), targetMonth.Month()); day > max {
		day = max
	}
	return time.Date(targetMonth.Year(), targetMonth.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// withMonthDay pins the day-of-month, clamped to the month's length.
func withMonthDay(t time.Time, day int) time.Time {
	if max := daysInMonth(t.Year(), t.Month()); day > max {
		day = max
	}
	return time.Date(t.Year(), t.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
