package models

// Product is an item sold in the store.
type Product struct {
	ID              string    `json:"id"`
	Titulo          string    `json:"titulo"`
	Descripcion     string    `json:"descripcion"`
	Precio          float64   `json:"precio"`
	Imagen          string    `json:"imagen"`
	TinyDescripcion string    `json:"tiny_descripcion"`
	CreatedAt       Timestamp `json:"createdAt"`
}

// ProductPayload is the body sent when creating a product.
type ProductPayload struct {
	Titulo          string  `json:"titulo"`
	Descripcion     string  `json:"descripcion"`
	Precio          float64 `json:"precio"`
	Imagen          string  `json:"imagen"`
	TinyDescripcion string  `json:"tiny_descripcion"`
}
