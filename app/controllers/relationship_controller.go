package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/warehouse/app/requests"
	"github.com/shashiranjanraj/warehouse/app/services"
	"github.com/shashiranjanraj/warehouse/pkg/bind"
	"github.com/shashiranjanraj/warehouse/pkg/response"
)

// RelationshipController serves supplies (/supply) and purchases (/purchase).
type RelationshipController struct {
	service *services.WarehouseService
}

func NewRelationshipController(service *services.WarehouseService) *RelationshipController {
	return &RelationshipController{service: service}
}

func (c *RelationshipController) StoreSupply(w http.ResponseWriter, r *http.Request) {
	var req requests.Supply
	if !decode(w, r, &req) {
		return
	}

	if err := c.service.CreateSupply(r.Context(), req); err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, okBody)
}

// DestroySupply answers DELETE /supply?product_id=N&supplier_id=M.
func (c *RelationshipController) DestroySupply(w http.ResponseWriter, r *http.Request) {
	productID, supplierID, found := linkKey(w, r, "supplier_id")
	if !found {
		return
	}

	if err := c.service.DeleteSupply(r.Context(), productID, supplierID); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, okBody)
}

func (c *RelationshipController) StorePurchase(w http.ResponseWriter, r *http.Request) {
	var req requests.Purchase
	if !decode(w, r, &req) {
		return
	}

	if err := c.service.CreatePurchase(r.Context(), req); err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, okBody)
}

func (c *RelationshipController) UpdatePurchase(w http.ResponseWriter, r *http.Request) {
	var req requests.Purchase
	if !decode(w, r, &req) {
		return
	}

	if err := c.service.UpdatePurchase(r.Context(), req); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, okBody)
}

// DestroyPurchase answers DELETE /purchase?product_id=N&storage_id=M.
func (c *RelationshipController) DestroyPurchase(w http.ResponseWriter, r *http.Request) {
	productID, storageID, found := linkKey(w, r, "storage_id")
	if !found {
		return
	}

	if err := c.service.DeletePurchase(r.Context(), productID, storageID); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, okBody)
}

// linkKey reads product_id and the other half of a composite key from the
// query string, answering 400 when either is missing.
func linkKey(w http.ResponseWriter, r *http.Request, other string) (uint, uint, bool) {
	productID, err := bind.QueryUint(r, "product_id")
	if err != nil {
		response.BadRequest(w, err.Error())
		return 0, 0, false
	}
	otherID, err := bind.QueryUint(r, other)
	if err != nil {
		response.BadRequest(w, err.Error())
		return 0, 0, false
	}
	return productID, otherID, true
}
