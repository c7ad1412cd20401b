package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/warehouse/app/requests"
	"github.com/shashiranjanraj/warehouse/app/services"
	"github.com/shashiranjanraj/warehouse/pkg/bind"
	"github.com/shashiranjanraj/warehouse/pkg/response"
)

type SupplierController struct {
	service *services.WarehouseService
}

func NewSupplierController(service *services.WarehouseService) *SupplierController {
	return &SupplierController{service: service}
}

func (c *SupplierController) Index(w http.ResponseWriter, r *http.Request) {
	suppliers, err := c.service.ListSuppliers(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, suppliers)
}

func (c *SupplierController) Store(w http.ResponseWriter, r *http.Request) {
	var req requests.SupplierAdd
	if !decode(w, r, &req) {
		return
	}

	id, err := c.service.CreateSupplier(r.Context(), req)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, created{OK: true, ID: id})
}

func (c *SupplierController) Update(w http.ResponseWriter, r *http.Request) {
	var req requests.Supplier
	if !decode(w, r, &req) {
		return
	}

	if err := c.service.UpdateSupplier(r.Context(), req); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, okBody)
}

func (c *SupplierController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, err := bind.QueryUint(r, "id")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := c.service.DeleteSupplier(r.Context(), id); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, okBody)
}

// WithProducts answers GET /supplier/with_products: every supply link with
// product and supplier details, ordered by product name.
func (c *SupplierController) WithProducts(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.ProductsWithSuppliers(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, rows)
}

// SuppliedProducts answers GET /supplier/supplied_products?supplier_id=N.
// An unknown supplier is a 404.
func (c *SupplierController) SuppliedProducts(w http.ResponseWriter, r *http.Request) {
	supplierID, err := bind.QueryUint(r, "supplier_id")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	products, err := c.service.SuppliedProducts(r.Context(), supplierID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}
