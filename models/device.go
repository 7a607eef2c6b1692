package models

// Device is a tracked phone line attached to a plan.
type Device struct {
	ID               string    `json:"id"`
	NumeroTelefonico string    `json:"numero_telefonico"`
	TipoProducto     string    `json:"tipo_producto"`
	PlanID           string    `json:"plan_id"`
	FechaCreacion    Timestamp `json:"fecha_creacion"`
	UltActualizacion Timestamp `json:"ult_actualizacion"`
	Invitados        []string  `json:"invitados"`
	UserID           string    `json:"userId"`
}

// DevicePayload is the body sent to dispositivos/createDispositivo.
type DevicePayload struct {
	NumeroTelefonico string `json:"numero_telefonico"`
	TipoProducto     string `json:"tipo_producto"`
}

// DeviceUpdatePayload is the body sent to dispositivos/updateDispositivo.
type DeviceUpdatePayload struct {
	DeviceID    string            `json:"deviceId"`
	UpdatedData map[string]string `json:"updatedData"`
}

// DeviceView is a device with its references resolved for display.
type DeviceView struct {
	Device
	PlanNombre   string
	OwnerNombre  string
	GuestNombres []string
}
