package models

type ReminderUnit string

const (
	UnitMinutes ReminderUnit = "minutes"
	UnitHours   ReminderUnit = "hours"
	UnitDays    ReminderUnit = "days"
	UnitWeeks   ReminderUnit = "weeks"
)

type ReminderRepeat string

const (
	RepeatNone           ReminderRepeat = "none"
	RepeatUntilCompleted ReminderRepeat = "until-completed"
	RepeatUntilDue       ReminderRepeat = "until-due"
	RepeatCustom         ReminderRepeat = "custom"
)

// ReminderSettings describes a relative reminder anchored on the task due
// date. Notified is the per-due-date dedup flag; it must be cleared whenever
// the due date changes.
type ReminderSettings struct {
	Enabled          bool           `json:"enabled"`
	Time             int            `json:"time"`
	Unit             ReminderUnit   `json:"unit"`
	Repeat           ReminderRepeat `json:"repeat,omitempty"`
	RepeatInterval   int            `json:"repeatInterval,omitempty"` // minutes
	NotificationType string         `json:"notificationType,omitempty"`
	SoundVolume      int            `json:"soundVolume,omitempty"`
	Sound            string         `json:"sound,omitempty"`
	Notified         bool           `json:"notified,omitempty"`
}
