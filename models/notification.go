package models

// NotificationType is a message template sent to app users.
type NotificationType struct {
	ID      string `json:"id"`
	Tipo    string `json:"tipo"`
	Mensaje string `json:"mensaje"`
}

// NotificationTypePayload is the create request body; the API assigns the id.
type NotificationTypePayload struct {
	Tipo    string `json:"tipo"`
	Mensaje string `json:"mensaje"`
}
