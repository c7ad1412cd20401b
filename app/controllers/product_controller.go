package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/warehouse/app/requests"
	"github.com/shashiranjanraj/warehouse/app/services"
	"github.com/shashiranjanraj/warehouse/pkg/bind"
	"github.com/shashiranjanraj/warehouse/pkg/response"
)

type ProductController struct {
	service *services.WarehouseService
}

func NewProductController(service *services.WarehouseService) *ProductController {
	return &ProductController{service: service}
}

// Index answers GET /product with every product ordered by id.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.ListProducts(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}

// Store answers POST /product.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var req requests.ProductAdd
	if !decode(w, r, &req) {
		return
	}

	id, err := c.service.CreateProduct(r.Context(), req)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, created{OK: true, ID: id})
}

// Update answers PUT /product.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	var req requests.Product
	if !decode(w, r, &req) {
		return
	}

	if err := c.service.UpdateProduct(r.Context(), req); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, okBody)
}

// Destroy answers DELETE /product?id=N.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, err := bind.QueryUint(r, "id")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := c.service.DeleteProduct(r.Context(), id); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, okBody)
}
