// controllers/subscription_controller.go
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
	endpointPlans      = "planes/getPlanes"
	endpointCreatePlan = "planes/createPlan"
	endpointUpdatePlan = "planes/updatePlan"
	endpointDeletePlan = "planes/deletePlan"
	imageFolderPlans   = "planes"
)

// PlanController manages subscription plans through the REST API
type PlanController struct {
	api    *services.APIClient
	images *services.ImageService
	log    *logger.Logger
}

// NewPlanController creates a new subscription plan controller
func NewPlanController(api *services.APIClient, images *services.ImageService, log *logger.Logger) *PlanController {
	return &PlanController{api: api, images: images, log: log.Named("plans")}
}

func (pc *PlanController) fetchAll(c echo.Context) ([]models.Plan, error) {
	ctx, cancel := requestContext(c)
	defer cancel()

	var plans []models.Plan
	if err := pc.api.Get(ctx, sessionToken(c), endpointPlans).DecodeList(&plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// List retrieves all available subscription plans
func (pc *PlanController) List(c echo.Context) error {
	plans, err := pc.fetchAll(c)
	data := echo.Map{"Planes": plans}
	if err != nil {
		pc.log.Error().Err(err).Msg("Failed to list plans")
		data["ErrorMessage"] = "Error al obtener los planes."
	}
	return render(c, http.StatusOK, "tb-planes", data)
}

// ShowCreate renders the empty plan form
func (pc *PlanController) ShowCreate(c echo.Context) error {
	return render(c, http.StatusOK, "agregar-planes", echo.Map{"Form": models.PlanForm{}})
}

// planPayload validates and coerces a submitted plan form. It returns the
// user facing message when the form is rejected.
func (pc *PlanController) planPayload(c echo.Context, form *models.PlanForm) (*models.PlanPayload, string) {
	if msg := bindForm(c, form); msg != "" {
		return nil, msg
	}

	precio, err := utils.ParseFloat(form.Precio)
	if err != nil {
		return nil, utils.MsgBadRequest
	}
	refresco, err := utils.ParseInt(form.Refresco)
	if err != nil {
		return nil, utils.MsgBadRequest
	}
	compartidos, err := utils.ParseInt(form.CantidadCompartidos)
	if err != nil {
		return nil, utils.MsgBadRequest
	}

	if form.Imagen == "" && !hasUpload(c) {
		return nil, utils.MsgRequiredFields
	}

	return &models.PlanPayload{
		Nombre:              form.Nombre,
		Precio:              precio,
		Descripcion:         form.Descripcion,
		Refresco:            refresco,
		CantidadCompartidos: compartidos,
		Imagen:              form.Imagen,
	}, ""
}

// Create adds a subscription plan
func (pc *PlanController) Create(c echo.Context) error {
	var form models.PlanForm
	payload, msg := pc.planPayload(c, &form)
	if msg != "" {
		return pc.rerenderCreate(c, form, msg)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	imagen, err := resolveImage(ctx, c, pc.images, imageFolderPlans, payload.Imagen)
	if err != nil {
		pc.log.Error().Err(err).Msg("Failed to upload plan image")
		return pc.rerenderCreate(c, form, "Error al subir la imagen.")
	}
	payload.Imagen = imagen

	res := pc.api.Post(ctx, sessionToken(c), endpointCreatePlan, payload)
	if !res.OK() {
		return pc.rerenderCreate(c, form, failureMessage(res, "Error desconocido al agregar plan."))
	}

	pc.log.Info().Str("nombre", payload.Nombre).Msg("Plan created")
	return redirectWithMessage(c, "/planes", "Plan agregado con éxito")
}

func (pc *PlanController) rerenderCreate(c echo.Context, form models.PlanForm, msg string) error {
	return render(c, http.StatusOK, "agregar-planes", echo.Map{"Form": form, "ErrorMessage": msg})
}

// ShowEdit renders the form for an existing plan
func (pc *PlanController) ShowEdit(c echo.Context) error {
	id := c.Param("id")

	plans, err := pc.fetchAll(c)
	if err != nil {
		pc.log.Error().Err(err).Msg("Failed to load plans")
		return c.String(http.StatusInternalServerError, "Error al cargar datos del plan.")
	}
	for _, p := range plans {
		if p.ID == id {
			return render(c, http.StatusOK, "editar-planes", echo.Map{"Plan": p})
		}
	}
	return c.String(http.StatusNotFound, "El plan no existe o no se pudo cargar.")
}

// Update replaces a plan's fields
func (pc *PlanController) Update(c echo.Context) error {
	id := c.Param("id")

	var form models.PlanForm
	payload, msg := pc.planPayload(c, &form)
	if msg != "" {
		return pc.rerenderEdit(c, id, form, msg)
	}
	payload.ID = id

	ctx, cancel := requestContext(c)
	defer cancel()

	imagen, err := resolveImage(ctx, c, pc.images, imageFolderPlans, payload.Imagen)
	if err != nil {
		pc.log.Error().Err(err).Msg("Failed to upload plan image")
		return pc.rerenderEdit(c, id, form, "Error al subir la imagen.")
	}
	payload.Imagen = imagen

	res := pc.api.Put(ctx, sessionToken(c), endpointUpdatePlan, payload)
	if !res.OK() {
		return pc.rerenderEdit(c, id, form, failureMessage(res, "Error al actualizar el plan."))
	}

	pc.log.Info().Str("id", id).Msg("Plan updated")
	return c.Redirect(http.StatusFound, "/planes")
}

func (pc *PlanController) rerenderEdit(c echo.Context, id string, form models.PlanForm, msg string) error {
	precio, _ := utils.ParseFloat(form.Precio)
	refresco, _ := utils.ParseInt(form.Refresco)
	compartidos, _ := utils.ParseInt(form.CantidadCompartidos)

	plan := models.Plan{
		ID:                  id,
		Nombre:              form.Nombre,
		Precio:              precio,
		Descripcion:         form.Descripcion,
		Refresco:            refresco,
		CantidadCompartidos: compartidos,
		Imagen:              form.Imagen,
	}
	return render(c, http.StatusOK, "editar-planes", echo.Map{"Plan": plan, "ErrorMessage": msg})
}

// Delete removes a plan
func (pc *PlanController) Delete(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	id := c.Param("id")
	res := pc.api.Delete(ctx, sessionToken(c), endpointDeletePlan, map[string]string{"id": id})
	if !res.OK() {
		return redirectWithMessage(c, "/planes", failureMessage(res, "Error desconocido al eliminar el plan."))
	}

	pc.log.Info().Str("id", id).Msg("Plan deleted")
	return redirectWithMessage(c, "/planes", "Plan eliminado con éxito")
}
