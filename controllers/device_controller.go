package controllers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/logger"
	"github.com/arfind/arfind_admin/models"
	"github.com/arfind/arfind_admin/services"
	"github.com/arfind/arfind_admin/utils"
)

const (
	endpointDevices      = "dispositivos/getAllDispositivos"
	endpointCreateDevice = "dispositivos/createDispositivo"
	endpointUpdateDevice = "dispositivos/updateDispositivo"
	endpointDeleteDevice = "dispositivos/deleteDispositivo"
	endpointUsers        = "usuarios"

	noPlan = "N/A"
)

// DeviceController manages devices through the REST API
type DeviceController struct {
	api *services.APIClient
	log *logger.Logger
}

func NewDeviceController(api *services.APIClient, log *logger.Logger) *DeviceController {
	return &DeviceController{api: api, log: log.Named("devices")}
}

func (dc *DeviceController) fetchDevices(ctx context.Context, token string) ([]models.Device, error) {
	var devices []models.Device
	if err := dc.api.Get(ctx, token, endpointDevices).DecodeList(&devices); err != nil {
		return nil, err
	}
	return devices, nil
}

func (dc *DeviceController) fetchPlans(ctx context.Context, token string) []models.Plan {
	var plans []models.Plan
	if err := dc.api.Get(ctx, token, endpointPlans).DecodeList(&plans); err != nil {
		dc.log.Warn().Err(err).Msg("Failed to load plans for devices")
	}
	return plans
}

func planLabel(names map[string]string, id string) string {
	if id == "" {
		return noPlan
	}
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return id
}

// userNames resolves app user ids to display names, falling back to the id.
type userNames struct {
	dc    *DeviceController
	ctx   context.Context
	token string
	cache map[string]string
}

func (u *userNames) lookup(id string) string {
	if id == "" {
		return ""
	}
	if name, ok := u.cache[id]; ok {
		return name
	}

	name := id
	res := u.dc.api.Get(u.ctx, u.token, endpointUsers+"/"+url.PathEscape(id))
	var body struct {
		models.AppUser
		Data *models.AppUser `json:"data"`
	}
	if err := res.Decode(&body); err == nil && res.Kind == services.ResultPayload {
		user := &body.AppUser
		if body.Data != nil {
			user = body.Data
		}
		if user.ID == "" {
			user.ID = id
		}
		name = user.DisplayName()
	}
	u.cache[id] = name
	return name
}

// List renders all devices with their plan names
func (dc *DeviceController) List(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	token := sessionToken(c)
	data := echo.Map{}

	devices, err := dc.fetchDevices(ctx, token)
	if err != nil {
		dc.log.Error().Err(err).Msg("Failed to list devices")
		data["ErrorMessage"] = "Error al obtener dispositivos."
	}

	names := models.PlanNames(dc.fetchPlans(ctx, token))
	views := make([]models.DeviceView, 0, len(devices))
	for _, d := range devices {
		views = append(views, models.DeviceView{Device: d, PlanNombre: planLabel(names, d.PlanID)})
	}
	data["Dispositivos"] = views
	return render(c, http.StatusOK, "tb-dispositivo", data)
}

func (dc *DeviceController) renderCreate(c echo.Context, form models.DeviceForm, msg string) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	data := echo.Map{"Form": form}
	var products []models.Product
	if err := dc.api.Get(ctx, sessionToken(c), endpointProducts).DecodeList(&products); err != nil {
		dc.log.Warn().Err(err).Msg("Failed to load products for device form")
		if msg == "" {
			msg = "Error al obtener los productos."
		}
	}
	data["Productos"] = products
	if msg != "" {
		data["ErrorMessage"] = msg
	}
	return render(c, http.StatusOK, "agregar-dispositivo", data)
}

// ShowCreate renders the device form with the product choices
func (dc *DeviceController) ShowCreate(c echo.Context) error {
	return dc.renderCreate(c, models.DeviceForm{}, "")
}

// Create registers a new device
func (dc *DeviceController) Create(c echo.Context) error {
	var form models.DeviceForm
	if msg := bindForm(c, &form); msg != "" {
		return dc.renderCreate(c, form, msg)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	payload := models.DevicePayload{NumeroTelefonico: form.NumeroTelefonico, TipoProducto: form.TipoProducto}
	res := dc.api.Post(ctx, sessionToken(c), endpointCreateDevice, payload)
	if !res.OK() {
		return dc.renderCreate(c, form, failureMessage(res, "Error al agregar el dispositivo."))
	}

	dc.log.Info().Str("numero", form.NumeroTelefonico).Msg("Device created")
	return c.Redirect(http.StatusFound, "/dispositivos")
}

// renderEdit loads the device with its plan, owner and guests resolved.
func (dc *DeviceController) renderEdit(c echo.Context, id, msg string) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	token := sessionToken(c)
	devices, err := dc.fetchDevices(ctx, token)
	if err != nil {
		dc.log.Error().Err(err).Msg("Failed to load devices")
		return c.String(http.StatusInternalServerError, "Error al obtener los dispositivos.")
	}

	var device *models.Device
	for i := range devices {
		if devices[i].ID == id {
			device = &devices[i]
			break
		}
	}
	if device == nil {
		return c.String(http.StatusNotFound, "Dispositivo no encontrado.")
	}

	plans := dc.fetchPlans(ctx, token)
	users := &userNames{dc: dc, ctx: ctx, token: token, cache: map[string]string{}}

	view := models.DeviceView{
		Device:      *device,
		PlanNombre:  planLabel(models.PlanNames(plans), device.PlanID),
		OwnerNombre: users.lookup(device.UserID),
	}
	for _, guest := range device.Invitados {
		view.GuestNombres = append(view.GuestNombres, users.lookup(guest))
	}

	data := echo.Map{"Dispositivo": view, "Planes": plans}
	if msg != "" {
		data["ErrorMessage"] = msg
	}
	return render(c, http.StatusOK, "editar-dispositivo", data)
}

// ShowEdit renders the edit form for a device
func (dc *DeviceController) ShowEdit(c echo.Context) error {
	return dc.renderEdit(c, c.Param("id"), "")
}

// Update sends the phone number and plan when they changed
func (dc *DeviceController) Update(c echo.Context) error {
	id := c.Param("id")

	var form models.DeviceEditForm
	if err := c.Bind(&form); err != nil {
		return dc.renderEdit(c, id, utils.MsgBadRequest)
	}

	updated := map[string]string{}
	if form.NumeroTelefonico != "" {
		updated["numero_telefonico"] = form.NumeroTelefonico
	}
	if form.PlanID != "" && form.PlanID != noPlan {
		updated["plan_id"] = form.PlanID
	}
	if len(updated) == 0 {
		return dc.renderEdit(c, id, utils.MsgNoChanges)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	res := dc.api.Put(ctx, sessionToken(c), endpointUpdateDevice, models.DeviceUpdatePayload{DeviceID: id, UpdatedData: updated})
	if !res.OK() {
		return dc.renderEdit(c, id, failureMessage(res, "Error al actualizar el dispositivo."))
	}

	dc.log.Info().Str("id", id).Msg("Device updated")
	return c.Redirect(http.StatusFound, "/dispositivos")
}

// Delete removes a device
func (dc *DeviceController) Delete(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	id := c.Param("id")
	res := dc.api.Delete(ctx, sessionToken(c), endpointDeleteDevice, map[string]string{"deviceId": id})
	if !res.OK() {
		return redirectWithMessage(c, "/dispositivos", failureMessage(res, "Error al eliminar el dispositivo."))
	}

	dc.log.Info().Str("id", id).Msg("Device deleted")
	return redirectWithMessage(c, "/dispositivos", "Dispositivo eliminado exitosamente")
}
