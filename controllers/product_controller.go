package controllers

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/logger"
	"github.com/arfind/arfind_admin/models"
	"github.com/arfind/arfind_admin/services"
	"github.com/arfind/arfind_admin/utils"
)

const (
	endpointProducts      = "productos/productos"
	endpointCreateProduct = "productos"
	imageFolderProducts   = "productos"
)

// ProductController manages store products through the REST API
type ProductController struct {
	api    *services.APIClient
	images *services.ImageService
	log    *logger.Logger
}

func NewProductController(api *services.APIClient, images *services.ImageService, log *logger.Logger) *ProductController {
	return &ProductController{api: api, images: images, log: log.Named("products")}
}

func productEndpoint(id string) string {
	return endpointProducts + "/" + url.PathEscape(id)
}

// List renders all products
func (pc *ProductController) List(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	var products []models.Product
	data := echo.Map{}
	res := pc.api.Get(ctx, sessionToken(c), endpointProducts)
	if err := res.DecodeList(&products); err != nil {
		pc.log.Error().Err(err).Msg("Failed to list products")
		data["ErrorMessage"] = "Error al obtener los productos."
	}
	data["Productos"] = products
	return render(c, http.StatusOK, "tb-productos", data)
}

// ShowCreate renders the empty product form
func (pc *ProductController) ShowCreate(c echo.Context) error {
	return render(c, http.StatusOK, "agregar-producto", echo.Map{"Form": models.ProductForm{}})
}

// Create adds a product, uploading its image when one is attached
func (pc *ProductController) Create(c echo.Context) error {
	var form models.ProductForm
	if msg := bindForm(c, &form); msg != "" {
		return pc.rerenderCreate(c, form, msg)
	}

	precio, err := utils.ParseFloat(form.Precio)
	if err != nil {
		return pc.rerenderCreate(c, form, utils.MsgBadRequest)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	imagen, err := resolveImage(ctx, c, pc.images, imageFolderProducts, form.Imagen)
	if err != nil {
		pc.log.Error().Err(err).Msg("Failed to upload product image")
		return pc.rerenderCreate(c, form, "Error al subir la imagen.")
	}

	payload := models.ProductPayload{
		Titulo:          form.Titulo,
		Descripcion:     form.Descripcion,
		Precio:          precio,
		Imagen:          imagen,
		TinyDescripcion: form.TinyDescripcion,
	}
	res := pc.api.Post(ctx, sessionToken(c), endpointCreateProduct, payload)
	if !res.OK() {
		return pc.rerenderCreate(c, form, failureMessage(res, "Error al agregar el producto."))
	}

	pc.log.Info().Str("titulo", form.Titulo).Msg("Product created")
	return c.Redirect(http.StatusFound, "/productos")
}

func (pc *ProductController) rerenderCreate(c echo.Context, form models.ProductForm, msg string) error {
	return render(c, http.StatusOK, "agregar-producto", echo.Map{"Form": form, "ErrorMessage": msg})
}

// ShowEdit renders the form for an existing product
func (pc *ProductController) ShowEdit(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	id := c.Param("id")
	var product models.Product
	res := pc.api.Get(ctx, sessionToken(c), productEndpoint(id))
	if res.StatusCode == http.StatusNotFound || res.Kind == services.ResultEmpty {
		return c.String(http.StatusNotFound, "Producto no encontrado")
	}
	if err := res.Decode(&product); err != nil {
		pc.log.Error().Err(err).Str("id", id).Msg("Failed to load product")
		return c.String(http.StatusInternalServerError, "Error al cargar los datos del producto.")
	}
	if product.ID == "" {
		product.ID = id
	}
	return render(c, http.StatusOK, "editar-producto", echo.Map{"Producto": product})
}

// Update sends only the fields that were filled in
func (pc *ProductController) Update(c echo.Context) error {
	id := c.Param("id")

	var form models.ProductEditForm
	if err := c.Bind(&form); err != nil {
		return pc.rerenderEdit(c, id, form, utils.MsgBadRequest)
	}

	updates := map[string]interface{}{}
	if form.Precio != "" {
		precio, err := utils.ParseFloat(form.Precio)
		if err != nil {
			return pc.rerenderEdit(c, id, form, utils.MsgBadRequest)
		}
		updates["precio"] = precio
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	imagen, err := resolveImage(ctx, c, pc.images, imageFolderProducts, form.Imagen)
	if err != nil {
		pc.log.Error().Err(err).Msg("Failed to upload product image")
		return pc.rerenderEdit(c, id, form, "Error al subir la imagen.")
	}

	for key, value := range map[string]string{
		"titulo":           form.Titulo,
		"descripcion":      form.Descripcion,
		"imagen":           imagen,
		"tiny_descripcion": form.TinyDescripcion,
	} {
		if value != "" {
			updates[key] = value
		}
	}
	if len(updates) == 0 {
		return pc.rerenderEdit(c, id, form, utils.MsgNoChanges)
	}

	res := pc.api.Patch(ctx, sessionToken(c), productEndpoint(id), updates)
	if !res.OK() {
		return pc.rerenderEdit(c, id, form, failureMessage(res, "Error al actualizar el producto."))
	}

	pc.log.Info().Str("id", id).Msg("Product updated")
	return c.Redirect(http.StatusFound, "/productos")
}

func (pc *ProductController) rerenderEdit(c echo.Context, id string, form models.ProductEditForm, msg string) error {
	precio, _ := utils.ParseFloat(form.Precio)
	product := models.Product{
		ID:              id,
		Titulo:          form.Titulo,
		Descripcion:     form.Descripcion,
		Precio:          precio,
		Imagen:          form.Imagen,
		TinyDescripcion: form.TinyDescripcion,
	}
	return render(c, http.StatusOK, "editar-producto", echo.Map{"Producto": product, "ErrorMessage": msg})
}

// Delete removes a product
func (pc *ProductController) Delete(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	id := c.Param("id")
	res := pc.api.Delete(ctx, sessionToken(c), endpointCreateProduct+"/"+url.PathEscape(id), nil)
	if !res.OK() {
		return redirectWithMessage(c, "/productos", failureMessage(res, "Error al eliminar el producto."))
	}

	pc.log.Info().Str("id", id).Msg("Product deleted")
	return redirectWithMessage(c, "/productos", "Producto eliminado con éxito")
}
