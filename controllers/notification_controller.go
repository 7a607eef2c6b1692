package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/logger"
	"github.com/arfind/arfind_admin/models"
	"github.com/arfind/arfind_admin/services"
)

const (
	endpointNotificationTypes      = "notificaciones/getTiposNotificaciones"
	endpointCreateNotificationType = "notificaciones/createTipoNotificacion"
	endpointUpdateNotificationType = "notificaciones/updateTipoNotificacion"
	endpointDeleteNotificationType = "notificaciones/deleteTipoNotificacion"
)

// NotificationController manages notification templates through the REST API
type NotificationController struct {
	api *services.APIClient
	log *logger.Logger
}

func NewNotificationController(api *services.APIClient, log *logger.Logger) *NotificationController {
	return &NotificationController{api: api, log: log.Named("notifications")}
}

func (nc *NotificationController) fetchAll(c echo.Context) ([]models.NotificationType, error) {
	ctx, cancel := requestContext(c)
	defer cancel()

	var types []models.NotificationType
	if err := nc.api.Get(ctx, sessionToken(c), endpointNotificationTypes).DecodeList(&types); err != nil {
		return nil, err
	}
	return types, nil
}

// List renders all notification types
func (nc *NotificationController) List(c echo.Context) error {
	types, err := nc.fetchAll(c)
	data := echo.Map{"Notificaciones": types}
	if err != nil {
		nc.log.Error().Err(err).Msg("Failed to list notification types")
		data["ErrorMessage"] = "Error al obtener los tipos de notificación."
	}
	return render(c, http.StatusOK, "tb-notificaciones", data)
}

func (nc *NotificationController) ShowCreate(c echo.Context) error {
	return render(c, http.StatusOK, "agregar-notificacion", echo.Map{"Form": models.NotificationTypeForm{}})
}

// Create adds a notification type
func (nc *NotificationController) Create(c echo.Context) error {
	var form models.NotificationTypeForm
	if msg := bindForm(c, &form); msg != "" {
		return render(c, http.StatusOK, "agregar-notificacion", echo.Map{"Form": form, "ErrorMessage": msg})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	res := nc.api.Post(ctx, sessionToken(c), endpointCreateNotificationType, models.NotificationTypePayload{Tipo: form.Tipo, Mensaje: form.Mensaje})
	if !res.OK() {
		return render(c, http.StatusOK, "agregar-notificacion", echo.Map{
			"Form":         form,
			"ErrorMessage": failureMessage(res, "Error al agregar el tipo de notificación."),
		})
	}

	nc.log.Info().Str("tipo", form.Tipo).Msg("Notification type created")
	return c.Redirect(http.StatusFound, "/notificaciones")
}

// ShowEdit renders the form for an existing notification type
func (nc *NotificationController) ShowEdit(c echo.Context) error {
	id := c.Param("id")

	types, err := nc.fetchAll(c)
	if err != nil {
		nc.log.Error().Err(err).Msg("Failed to load notification types")
		return c.String(http.StatusInternalServerError, "Error al cargar el tipo de notificación.")
	}
	for _, t := range types {
		if t.ID == id {
			return render(c, http.StatusOK, "editar-notificacion", echo.Map{"Notificacion": t})
		}
	}
	return c.String(http.StatusNotFound, "Tipo de notificación no encontrado.")
}

// Update changes a notification type
func (nc *NotificationController) Update(c echo.Context) error {
	id := c.Param("id")

	var form models.NotificationTypeForm
	msg := bindForm(c, &form)
	current := models.NotificationType{ID: id, Tipo: form.Tipo, Mensaje: form.Mensaje}
	if msg != "" {
		return render(c, http.StatusOK, "editar-notificacion", echo.Map{"Notificacion": current, "ErrorMessage": msg})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	res := nc.api.Put(ctx, sessionToken(c), endpointUpdateNotificationType, current)
	if !res.OK() {
		return render(c, http.StatusOK, "editar-notificacion", echo.Map{
			"Notificacion": current,
			"ErrorMessage": failureMessage(res, "Error al actualizar el tipo de notificación."),
		})
	}

	nc.log.Info().Str("id", id).Msg("Notification type updated")
	return c.Redirect(http.StatusFound, "/notificaciones")
}

// Delete removes a notification type
func (nc *NotificationController) Delete(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	id := c.Param("id")
	res := nc.api.Delete(ctx, sessionToken(c), endpointDeleteNotificationType, map[string]string{"id": id})
	if !res.OK() {
		return redirectWithMessage(c, "/notificaciones", failureMessage(res, "Error al eliminar el tipo de notificación."))
	}

	nc.log.Info().Str("id", id).Msg("Notification type deleted")
	return redirectWithMessage(c, "/notificaciones", "Tipo de notificación eliminado con éxito")
}
