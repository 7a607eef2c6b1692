package models

// Form payloads bound from the admin pages. Numbers and flags arrive as
// strings and are coerced by the handlers.

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type EmployeeForm struct {
	Nombre   string `form:"nombre" validate:"required"`
	Email    string `form:"correo" validate:"required"`
	Password string `form:"password" validate:"required,min=6"`
	IsAdmin  string `form:"is_admin" validate:"required"`
}

type EmployeeEditForm struct {
	Nombre   string `form:"nombre" validate:"required"`
	Email    string `form:"correo" validate:"required"`
	Password string `form:"password" validate:"omitempty,min=6"`
	IsAdmin  string `form:"is_admin" validate:"required"`
}

type OrderForm struct {
	Titulo      string `form:"titulo" validate:"required"`
	Descripcion string `form:"descripcion" validate:"required"`
	Items       string `form:"items" validate:"required"`
	Status      string `form:"status" validate:"required"`
	UserID      string `form:"userId" validate:"required"`
}

type ProductForm struct {
	Titulo          string `form:"titulo" validate:"required"`
	Descripcion     string `form:"descripcion" validate:"required"`
	Precio          string `form:"precio" validate:"required"`
	Imagen          string `form:"imagen"`
	TinyDescripcion string `form:"tinyDescripcion"`
}

// ProductEditForm fields are all optional; only non-empty ones are sent.
type ProductEditForm struct {
	Titulo          string `form:"titulo"`
	Descripcion     string `form:"descripcion"`
	Precio          string `form:"precio"`
	Imagen          string `form:"imagen"`
	TinyDescripcion string `form:"tinyDescripcion"`
}

type DeviceForm struct {
	NumeroTelefonico string `form:"numero_telefonico" validate:"required"`
	TipoProducto     string `form:"tipo_producto" validate:"required"`
}

type DeviceEditForm struct {
	NumeroTelefonico string `form:"numero_telefonico"`
	PlanID           string `form:"plan_id"`
}

// PlanForm leaves imagen unchecked: an uploaded file can stand in for it.
type PlanForm struct {
	Nombre              string `form:"nombre" validate:"required"`
	Precio              string `form:"precio" validate:"required"`
	Descripcion         string `form:"descripcion" validate:"required"`
	Refresco            string `form:"refresco" validate:"required"`
	CantidadCompartidos string `form:"cantidad_compartidos" validate:"required"`
	Imagen              string `form:"imagen"`
}

type NotificationTypeForm struct {
	Tipo    string `form:"tipo" validate:"required"`
	Mensaje string `form:"mensaje" validate:"required"`
}
