package models

import "time"

// NotificationPrefs holds the per-identity notification toggles from the
// settings screen. Nothing is actually delivered; the values only feed the
// settings view and the data export.
type NotificationPrefs struct {
	MoodReminders      bool `json:"moodReminders"`
	WeeklyReports      bool `json:"weeklyReports"`
	ChatUpdates        bool `json:"chatUpdates"`
	EmailNotifications bool `json:"emailNotifications"`
}

// DefaultNotificationPrefs returns the defaults a fresh account starts with.
func DefaultNotificationPrefs() NotificationPrefs {
	return NotificationPrefs{
		MoodReminders:      true,
		WeeklyReports:      true,
		ChatUpdates:        false,
		EmailNotifications: true,
	}
}

// ExportSchemaVersion identifies the export document layout. Bump it when
// the document shape changes so consumers can branch on it.
const ExportSchemaVersion = 1

// ExportDocument is the single downloadable document containing everything
// the active identity owns. Treated as a stable schema boundary.
type ExportDocument struct {
	SchemaVersion int               `json:"schemaVersion"`
	Profile       Profile           `json:"profile"`
	MoodEntries   []MoodEntry       `json:"moodEntries"`
	Settings      NotificationPrefs `json:"settings"`
	ExportDate    time.Time         `json:"exportDate"`
}
