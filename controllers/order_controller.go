package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/logger"
	"github.com/arfind/arfind_admin/models"
	"github.com/arfind/arfind_admin/repositories"
)

const msgInvalidOrderStatus = "Estado de pedido no válido."

// OrderController manages orders stored directly in Firestore
type OrderController struct {
	orders *repositories.OrderRepository
	log    *logger.Logger
}

func NewOrderController(orders *repositories.OrderRepository, log *logger.Logger) *OrderController {
	return &OrderController{orders: orders, log: log.Named("orders")}
}

// List renders all orders
func (oc *OrderController) List(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	orders, err := oc.orders.List(ctx)
	data := echo.Map{"Pedidos": orders}
	if err != nil {
		oc.log.Error().Err(err).Msg("Failed to list orders")
		data["ErrorMessage"] = "Error al obtener los pedidos."
	}
	return render(c, http.StatusOK, "tb-pedido", data)
}

// ShowCreate renders the empty order form
func (oc *OrderController) ShowCreate(c echo.Context) error {
	form := models.OrderForm{Status: models.OrderStatusPending}
	return render(c, http.StatusOK, "agregar-pedido", echo.Map{"Form": form, "Estados": models.OrderStatuses})
}

func orderFromForm(form models.OrderForm) models.Order {
	return models.Order{
		Titulo:      form.Titulo,
		Descripcion: form.Descripcion,
		Items:       form.Items,
		Status:      form.Status,
		UserID:      form.UserID,
	}
}

func validateOrderForm(c echo.Context, form *models.OrderForm) string {
	if msg := bindForm(c, form); msg != "" {
		return msg
	}
	if !models.ValidOrderStatus(form.Status) {
		return msgInvalidOrderStatus
	}
	return ""
}

// Create stores a new order
func (oc *OrderController) Create(c echo.Context) error {
	var form models.OrderForm
	if msg := validateOrderForm(c, &form); msg != "" {
		return render(c, http.StatusOK, "agregar-pedido", echo.Map{"Form": form, "Estados": models.OrderStatuses, "ErrorMessage": msg})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	id, err := oc.orders.Create(ctx, orderFromForm(form))
	if err != nil {
		oc.log.Error().Err(err).Msg("Failed to create order")
		return render(c, http.StatusOK, "agregar-pedido", echo.Map{
			"Form":         form,
			"Estados":      models.OrderStatuses,
			"ErrorMessage": "Error al agregar el pedido.",
		})
	}

	oc.log.Info().Str("id", id).Msg("Order created")
	return c.Redirect(http.StatusFound, "/pedidos")
}

// ShowEdit renders the form for an existing order
func (oc *OrderController) ShowEdit(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := oc.orders.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.String(http.StatusNotFound, "Pedido no encontrado")
		}
		oc.log.Error().Err(err).Msg("Failed to load order")
		return c.String(http.StatusInternalServerError, "Error al cargar el pedido")
	}
	return render(c, http.StatusOK, "editar-pedido", echo.Map{"Pedido": order, "Estados": models.OrderStatuses})
}

// Update overwrites the editable fields of an order
func (oc *OrderController) Update(c echo.Context) error {
	id := c.Param("id")

	var form models.OrderForm
	if msg := validateOrderForm(c, &form); msg != "" {
		return oc.rerenderEdit(c, id, form, msg)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := oc.orders.Update(ctx, id, orderFromForm(form)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.String(http.StatusNotFound, "Pedido no encontrado")
		}
		oc.log.Error().Err(err).Str("id", id).Msg("Failed to update order")
		return oc.rerenderEdit(c, id, form, "Error al actualizar el pedido.")
	}

	oc.log.Info().Str("id", id).Msg("Order updated")
	return c.Redirect(http.StatusFound, "/pedidos")
}

func (oc *OrderController) rerenderEdit(c echo.Context, id string, form models.OrderForm, msg string) error {
	order := orderFromForm(form)
	order.ID = id
	return render(c, http.StatusOK, "editar-pedido", echo.Map{"Pedido": order, "Estados": models.OrderStatuses, "ErrorMessage": msg})
}

// Delete removes an order
func (oc *OrderController) Delete(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	id := c.Param("id")
	if err := oc.orders.Delete(ctx, id); err != nil {
		oc.log.Error().Err(err).Str("id", id).Msg("Failed to delete order")
		return redirectWithMessage(c, "/pedidos", "Error al eliminar el pedido")
	}

	oc.log.Info().Str("id", id).Msg("Order deleted")
	return redirectWithMessage(c, "/pedidos", "Pedido eliminado con éxito")
}
