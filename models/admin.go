package models

// Employee is a panel user. Password is only ever sent, never rendered.
type Employee struct {
	ID       string `json:"id,omitempty" firestore:"-"`
	Nombre   string `json:"nombre" firestore:"nombre"`
	Email    string `json:"email" firestore:"email"`
	Password string `json:"password,omitempty" firestore:"-"`
	IsAdmin  bool   `json:"is_admin" firestore:"is_admin"`
}

// EmployeeFromDocument maps an empleados document to an Employee.
func EmployeeFromDocument(id string, data map[string]interface{}) Employee {
	return Employee{
		ID:      id,
		Nombre:  getStringFromInterface(data["nombre"]),
		Email:   getStringFromInterface(data["email"]),
		IsAdmin: getBoolFromInterface(data["is_admin"]),
	}
}

// AdminDashboardStats represents statistics for the admin dashboard
type AdminDashboardStats struct {
	Dispositivos        int `json:"dispositivos"`
	Planes              int `json:"planes"`
	Empleados           int `json:"empleados"`
	Administradores     int `json:"administradores"`
	PedidosEntregados   int `json:"pedidosEntregados"`
	PedidosNoEntregados int `json:"pedidosNoEntregados"`
}

// EmployeeDashboardStats represents statistics for the employee dashboard
type EmployeeDashboardStats struct {
	PedidosTotales      int `json:"pedidosTotales"`
	PedidosEntregados   int `json:"pedidosEntregados"`
	PedidosNoEntregados int `json:"pedidosNoEntregados"`
}
