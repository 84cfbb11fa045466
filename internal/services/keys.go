package services

import "fmt"

// Store key layout. Application-level keys carry the configured prefix;
// per-owner keys are partitioned by identity id and, for quick moods, by
// calendar date. The layout is a stable external boundary: exports and any
// other consumer of the store rely on it.
type keys struct {
	prefix string
}

// Identity collection: JSON array of models.Identity.
func (k keys) users() string { return k.prefix + "_users" }

// Active session token.
func (k keys) token() string { return k.prefix + "_token" }

// Active identity snapshot: JSON models.Profile.
func (k keys) activeUser() string { return k.prefix + "_user" }

// One quick-mood category per (owner, calendar date).
func (k keys) quickMood(ownerID, day string) string {
	return fmt.Sprintf("mood_%s_%s", ownerID, day)
}

// Prefix covering every quick-mood key of an owner.
func (k keys) quickMoodPrefix(ownerID string) string {
	return fmt.Sprintf("mood_%s_", ownerID)
}

// Detailed mood ledger: JSON array of models.MoodEntry.
func (k keys) entries(ownerID string) string {
	return "mood_entries_" + ownerID
}

// Aggregate stats snapshot: JSON models.DashboardStats.
func (k keys) stats(ownerID string) string {
	return "stats_" + ownerID
}

// Notification preferences: JSON models.NotificationPrefs.
func (k keys) prefs(ownerID string) string {
	return "prefs_" + ownerID
}
