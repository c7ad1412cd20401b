package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/warehouse/app/requests"
	"github.com/shashiranjanraj/warehouse/app/services"
	"github.com/shashiranjanraj/warehouse/pkg/bind"
	"github.com/shashiranjanraj/warehouse/pkg/response"
)

type StorageController struct {
	service *services.WarehouseService
}

func NewStorageController(service *services.WarehouseService) *StorageController {
	return &StorageController{service: service}
}

func (c *StorageController) Index(w http.ResponseWriter, r *http.Request) {
	storages, err := c.service.ListStorages(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, storages)
}

func (c *StorageController) Store(w http.ResponseWriter, r *http.Request) {
	var req requests.StorageAdd
	if !decode(w, r, &req) {
		return
	}

	id, err := c.service.CreateStorage(r.Context(), req)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, created{OK: true, ID: id})
}

func (c *StorageController) Update(w http.ResponseWriter, r *http.Request) {
	var req requests.Storage
	if !decode(w, r, &req) {
		return
	}

	if err := c.service.UpdateStorage(r.Context(), req); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, okBody)
}

func (c *StorageController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, err := bind.QueryUint(r, "id")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := c.service.DeleteStorage(r.Context(), id); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, okBody)
}

// Leftovers answers GET /storage/leftovers[?num=N]. Without num every stock
// row is listed; with it only rows whose leftover is below N.
func (c *StorageController) Leftovers(w http.ResponseWriter, r *http.Request) {
	num, err := bind.OptionalQueryInt(r, "num")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	rows, err := c.service.Leftovers(r.Context(), requests.Leftovers{Threshold: num})
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, rows)
}
