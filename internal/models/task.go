package models

import (
	"time"
)

type TaskStatus string

const (
	StatusCompleted  TaskStatus = "completed"
	StatusIncomplete TaskStatus = "incomplete"
	StatusOverdue    TaskStatus = "overdue"
)

// Priority labels as entered by users (Vietnamese UI labels).
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "cao"
	PriorityMedium TaskPriority = "trung bình"
	PriorityLow    TaskPriority = "thấp"
)

// Named recurrence presets.
const (
	PatternDaily     = "hàng ngày"
	PatternWeekly    = "hàng tuần"
	PatternMonthly   = "hàng tháng"
	PatternQuarterly = "hàng quý"
	PatternYearly    = "hàng năm"
	PatternCustom    = "tùy chỉnh"
)

type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

type Task struct {
	ID               string            `json:"id" gorm:"primaryKey"`
	Title            string            `json:"title" gorm:"not null"`
	Description      string            `json:"description"`
	Category         string            `json:"category"`
	Priority         TaskPriority      `json:"priority" gorm:"default:'trung bình'"`
	DueDate          time.Time         `json:"dueDate" gorm:"not null"`
	Status           TaskStatus        `json:"status" gorm:"default:'incomplete'"`
	Tags             []string          `json:"tags,omitempty" gorm:"serializer:json"`
	IsRecurring      bool              `json:"isRecurring" gorm:"default:false"`
	RecurringPattern string            `json:"recurringPattern,omitempty"`
	RecurringCustom  *RecurrenceRule   `json:"recurringCustom,omitempty" gorm:"serializer:json"`
	Notes            string            `json:"notes,omitempty"`
	Reminder         *ReminderSettings `json:"reminder,omitempty" gorm:"serializer:json"`
	Importance       int               `json:"importance,omitempty"`
	SubTasks         []SubTask         `json:"subTasks,omitempty" gorm:"serializer:json"`
	TimeEstimate     *TimeEstimate     `json:"timeEstimate,omitempty" gorm:"serializer:json"`
	Dependencies     []string          `json:"dependencies,omitempty" gorm:"serializer:json"`
	StartDate        *time.Time        `json:"startDate,omitempty"`
	StartTime        string            `json:"startTime,omitempty"`
	EndTime          string            `json:"endTime,omitempty"`
	AllDay           bool              `json:"allDay,omitempty"`
	Energy           EnergyLevel       `json:"energy,omitempty"`
	Location         string            `json:"location,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type SubTask struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Completed    bool          `json:"completed"`
	Description  string        `json:"description,omitempty"`
	DueDate      *time.Time    `json:"dueDate,omitempty"`
	Priority     TaskPriority  `json:"priority,omitempty"`
	TimeEstimate *TimeEstimate `json:"timeEstimate,omitempty"`
}

type TimeEstimate struct {
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Type    string `json:"type"` // fixed, flexible
}

// Clone returns a deep copy so callers can mutate the result without
// aliasing the stored task.
func (t Task) Clone() Task {
	out := t
	if t.Tags != nil {
		out.Tags = append([]string(nil), t.Tags...)
	}
	if t.Dependencies != nil {
		out.Dependencies = append([]string(nil), t.Dependencies...)
	}
	if t.SubTasks != nil {
		out.SubTasks = make([]SubTask, len(t.SubTasks))
		for i, st := range t.SubTasks {
			out.SubTasks[i] = st
			if st.DueDate != nil {
				due := *st.DueDate
				out.SubTasks[i].DueDate = &due
			}
			if st.TimeEstimate != nil {
				te := *st.TimeEstimate
				out.SubTasks[i].TimeEstimate = &te
			}
		}
	}
	if t.RecurringCustom != nil {
		rule := *t.RecurringCustom
		if rule.Weekdays != nil {
			rule.Weekdays = append([]time.Weekday(nil), rule.Weekdays...)
		}
		out.RecurringCustom = &rule
	}
	if t.Reminder != nil {
		rem := *t.Reminder
		out.Reminder = &rem
	}
	if t.TimeEstimate != nil {
		te := *t.TimeEstimate
		out.TimeEstimate = &te
	}
	if t.StartDate != nil {
		start := *t.StartDate
		out.StartDate = &start
	}
	return out
}
