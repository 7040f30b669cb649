package models

import "time"

type Frequency string

const (
	FreqDaily   Frequency = "daily"
	FreqWeekly  Frequency = "weekly"
	FreqMonthly Frequency = "monthly"
	FreqYearly  Frequency = "yearly"
)

type RecurrenceEnd string

const (
	EndNever RecurrenceEnd = "never"
	EndAfter RecurrenceEnd = "after"
	EndOn    RecurrenceEnd = "on"
)

// RecurrenceRule is the explicit rule behind the "tùy chỉnh" pattern.
type RecurrenceRule struct {
	Frequency Frequency      `json:"frequency"`
	Interval  int            `json:"interval"`
	Weekdays  []time.Weekday `json:"weekdays,omitempty"` // weekly only, 0=Sunday
	MonthDay  int            `json:"monthDay,omitempty"`  // monthly only, 1-31
	EndType   RecurrenceEnd  `json:"endType"`
	EndDate   *time.Time     `json:"endDate,omitempty"`  // endType == on
	EndCount  int            `json:"endCount,omitempty"` // endType == after, occurrences remaining
}
