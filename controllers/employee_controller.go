package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/logger"
	"github.com/arfind/arfind_admin/models"
	"github.com/arfind/arfind_admin/services"
	"github.com/arfind/arfind_admin/utils"
)

const (
	endpointEmployees      = "empleados/getEmpleados"
	endpointCreateEmployee = "empleados/createEmpleado"
	endpointUpdateEmployee = "empleados/updateEmpleado"
	endpointDeleteEmployee = "empleados/deleteEmpleado"
)

// EmployeeController manages panel employees through the REST API
type EmployeeController struct {
	api *services.APIClient
	log *logger.Logger
}

func NewEmployeeController(api *services.APIClient, log *logger.Logger) *EmployeeController {
	return &EmployeeController{api: api, log: log.Named("employees")}
}

func (ec *EmployeeController) fetchAll(c echo.Context) ([]models.Employee, services.APIResult) {
	ctx, cancel := requestContext(c)
	defer cancel()

	var employees []models.Employee
	res := ec.api.Get(ctx, sessionToken(c), endpointEmployees)
	if res.OK() {
		if err := res.DecodeList(&employees); err != nil {
			ec.log.Error().Err(err).Msg("Unexpected employee list payload")
			return nil, services.APIResult{Kind: services.ResultFailure, Reason: err.Error()}
		}
	}
	return employees, res
}

// List renders all employees
func (ec *EmployeeController) List(c echo.Context) error {
	employees, res := ec.fetchAll(c)
	data := echo.Map{"Empleados": employees}
	if !res.OK() {
		data["ErrorMessage"] = "Error al obtener empleados."
	}
	return render(c, http.StatusOK, "tb-empleados", data)
}

// ShowCreate renders the empty employee form
func (ec *EmployeeController) ShowCreate(c echo.Context) error {
	return render(c, http.StatusOK, "agregar-empleado", echo.Map{"Form": models.EmployeeForm{}})
}

// Create registers a new employee
func (ec *EmployeeController) Create(c echo.Context) error {
	var form models.EmployeeForm
	if msg := bindForm(c, &form); msg != "" {
		form.Password = ""
		return render(c, http.StatusOK, "agregar-empleado", echo.Map{"Form": form, "ErrorMessage": msg})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	payload := models.Employee{
		Nombre:   form.Nombre,
		Email:    form.Email,
		Password: form.Password,
		IsAdmin:  utils.ParseBool(form.IsAdmin),
	}
	res := ec.api.Post(ctx, sessionToken(c), endpointCreateEmployee, payload)
	if !res.OK() {
		form.Password = ""
		return render(c, http.StatusOK, "agregar-empleado", echo.Map{
			"Form":         form,
			"ErrorMessage": failureMessage(res, "Error al agregar el empleado."),
		})
	}

	ec.log.Info().Str("email", form.Email).Msg("Employee created")
	return c.Redirect(http.StatusFound, "/empleados")
}

func (ec *EmployeeController) find(c echo.Context, id string) (*models.Employee, services.APIResult) {
	employees, res := ec.fetchAll(c)
	for i := range employees {
		if employees[i].ID == id {
			return &employees[i], res
		}
	}
	return nil, res
}

// ShowEdit renders the form for an existing employee
func (ec *EmployeeController) ShowEdit(c echo.Context) error {
	id := c.Param("id")
	employee, res := ec.find(c, id)
	if !res.OK() {
		return c.String(http.StatusInternalServerError, "Error al obtener empleados desde la API")
	}
	if employee == nil {
		return c.String(http.StatusNotFound, "No se encontró un empleado con ID: "+id)
	}
	return render(c, http.StatusOK, "editar-empleado", echo.Map{"Empleado": employee})
}

// Update changes an employee; the password is only sent when a new one is given
func (ec *EmployeeController) Update(c echo.Context) error {
	id := c.Param("id")

	var form models.EmployeeEditForm
	if msg := bindForm(c, &form); msg != "" {
		return ec.rerenderEdit(c, id, form, msg)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	payload := models.Employee{
		ID:       id,
		Nombre:   form.Nombre,
		Email:    form.Email,
		Password: form.Password,
		IsAdmin:  utils.ParseBool(form.IsAdmin),
	}
	res := ec.api.Put(ctx, sessionToken(c), endpointUpdateEmployee, payload)
	if !res.OK() {
		return ec.rerenderEdit(c, id, form, failureMessage(res, "Error desconocido al editar empleado."))
	}

	ec.log.Info().Str("id", id).Msg("Employee updated")
	return c.Redirect(http.StatusFound, "/empleados")
}

func (ec *EmployeeController) rerenderEdit(c echo.Context, id string, form models.EmployeeEditForm, msg string) error {
	employee := models.Employee{
		ID:      id,
		Nombre:  form.Nombre,
		Email:   form.Email,
		IsAdmin: utils.ParseBool(form.IsAdmin),
	}
	return render(c, http.StatusOK, "editar-empleado", echo.Map{"Empleado": employee, "ErrorMessage": msg})
}

// Delete removes an employee
func (ec *EmployeeController) Delete(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	id := c.Param("id")
	res := ec.api.Delete(ctx, sessionToken(c), endpointDeleteEmployee, map[string]string{"id": id})
	if !res.OK() {
		return redirectWithMessage(c, "/empleados", failureMessage(res, "Error desconocido al eliminar empleado."))
	}

	ec.log.Info().Str("id", id).Msg("Employee deleted")
	return redirectWithMessage(c, "/empleados", "Empleado eliminado con éxito")
}
