package models

import (
	"fmt"
	"time"
)

// DateLayout is the day-granularity key format for mood entries.
// Dates are taken in local time.
const DateLayout = "2006-01-02"

// Day truncates a timestamp to its local calendar date string.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}

// QuickMood is the single-tap mood category, distinct from the detailed
// 1–10 entry form.
type QuickMood string

const (
	QuickMoodHappy   QuickMood = "happy"
	QuickMoodNeutral QuickMood = "neutral"
	QuickMoodSad     QuickMood = "sad"
)

// Score maps a quick-mood category onto the 1–10 scale used by aggregates.
func (m QuickMood) Score() int {
	switch m {
	case QuickMoodHappy:
		return 8
	case QuickMoodNeutral:
		return 5
	default:
		return 2
	}
}

// ParseQuickMood validates a user-supplied category string.
func ParseQuickMood(s string) (QuickMood, error) {
	switch QuickMood(s) {
	case QuickMoodHappy, QuickMoodNeutral, QuickMoodSad:
		return QuickMood(s), nil
	}
	return "", fmt.Errorf("unknown mood category %q (want happy, neutral or sad)", s)
}

// MoodEntry is one day's recorded emotional state plus optional tags/notes.
// At most one entry exists per (owner, date); a later write for the same day
// replaces the earlier one entirely.
type MoodEntry struct {
	Date     string   `json:"date"`
	Mood     int      `json:"mood"`
	Note     string   `json:"note"`
	Emotions []string `json:"emotions"`
}

// Emotions is the fixed label set offered by the detailed entry form.
var Emotions = []string{
	"Happy", "Sad", "Anxious", "Calm", "Excited", "Tired", "Stressed", "Grateful",
}

// MoodTip returns the supportive text shown after an entry, keyed on the
// same score thresholds the original check-in used.
func MoodTip(score int) string {
	switch {
	case score >= 8:
		return "You're feeling great! This is wonderful. Consider what's contributing to this positive mood and try to maintain these habits."
	case score >= 6:
		return "You're doing well! Consider adding some activities that bring you joy to boost your mood even more."
	case score >= 4:
		return "It's okay to have neutral days. Try some gentle self-care activities like taking a walk or listening to music."
	default:
		return "I notice you're having a tough time. Remember that it's okay to feel this way. Consider reaching out to someone you trust or trying some relaxation techniques."
	}
}
