// models/user.go
package models

// AppUser is an end user of the mobile app, as returned by usuarios/{id}.
type AppUser struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// DisplayName returns the best label for the user, falling back to the id.
func (u *AppUser) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Nombre != "" {
		return u.Nombre
	}
	if u.Email != "" {
		return u.Email
	}
	return u.ID
}

// LoginResponse is the JSON body returned by the login endpoint.
type LoginResponse struct {
	Message string `json:"message"`
	IDToken string `json:"idToken,omitempty"`
}
