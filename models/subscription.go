package models

// Plan is a subscription plan a device can be attached to.
type Plan struct {
	ID                  string    `json:"id"`
	Nombre              string    `json:"nombre"`
	Precio              float64   `json:"precio"`
	Descripcion         string    `json:"descripcion"`
	Refresco            int       `json:"refresco"`
	CantidadCompartidos int       `json:"cantidad_compartidos"`
	Imagen              string    `json:"imagen"`
	FechaCreacion       Timestamp `json:"fecha_creacion"`
	UltActualizacion    Timestamp `json:"ult_actualizacion"`
}

// PlanPayload is the body sent to planes/createPlan and planes/updatePlan.
type PlanPayload struct {
	ID                  string  `json:"id,omitempty"`
	Nombre              string  `json:"nombre"`
	Precio              float64 `json:"precio"`
	Descripcion         string  `json:"descripcion"`
	Refresco            int     `json:"refresco"`
	CantidadCompartidos int     `json:"cantidad_compartidos"`
	Imagen              string  `json:"imagen"`
}

// PlanNames indexes plan names by id.
func PlanNames(plans []Plan) map[string]string {
	names := make(map[string]string, len(plans))
	for _, p := range plans {
		names[p.ID] = p.Nombre
	}
	return names
}
