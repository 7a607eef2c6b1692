package models

import "time"

// Session is the server-side state behind the session cookie.
type Session struct {
	ID           string    `json:"id"`
	Token        string    `json:"idToken"`
	UID          string    `json:"uid"`
	EmployeeName string    `json:"nombreEmpleado"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Authenticated reports whether the session carries an identity token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}
