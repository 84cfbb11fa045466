// Package models defines the persisted entities of the MindCare client:
// identities, sessions, mood entries, aggregate stats, and the export schema.
package models

import "time"

// Identity is a registered account record as stored in the identity
// collection. The password is kept in plaintext to stay behaviorally
// compatible with the storage layout this app inherited; it is a known
// defect of the demo data model, not a supported way to protect accounts.
type Identity struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"password"`
	Verified       bool      `json:"isVerified"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Profile is the public view of an Identity, stored as the active-session
// snapshot and included in data exports. It never carries the password.
type Profile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Verified       bool   `json:"isVerified"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Profile returns the public view of the identity.
func (i Identity) Profile() Profile {
	return Profile{
		ID:             i.ID,
		Name:           i.Name,
		Email:          i.Email,
		Verified:       i.Verified,
		ProfilePicture: i.ProfilePicture,
	}
}

// ProfilePatch names every profile field that can be updated. Nil fields are
// left untouched; the merge is explicit and field-by-field so the email
// uniqueness invariant stays checkable at the service boundary.
type ProfilePatch struct {
	Name           *string
	Email          *string
	ProfilePicture *string
}

// Session is the currently authenticated identity for the running client.
// At most one session exists per profile database.
type Session struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}
