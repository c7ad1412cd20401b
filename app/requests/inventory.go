// Package requests holds the transfer objects accepted by the API. "Add"
// shapes carry no id, the store assigns it; full shapes carry the id of the
// row they target.
package requests

import "github.com/shashiranjanraj/warehouse/app/models"

type ProductAdd struct {
	Name        string  `json:"product_name"        validate:"notblank,max=255"`
	Description *string `json:"product_description" validate:"omitempty,max=768"`
}

func (r ProductAdd) Model() models.Product {
	return models.Product{Name: r.Name, Description: r.Description}
}

type Product struct {
	ID uint `json:"product_id" validate:"required"`
	ProductAdd
}

func (r Product) Model() models.Product {
	m := r.ProductAdd.Model()
	m.ID = r.ID
	return m
}

type SupplierAdd struct {
	Name  string  `json:"supplier_name" validate:"notblank,max=255"`
	Email *string `json:"email"         validate:"omitempty,email,max=255"`
	Phone string  `json:"phone"         validate:"required,phone"`
}

func (r SupplierAdd) Model() models.Supplier {
	return models.Supplier{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

type Supplier struct {
	ID uint `json:"supplier_id" validate:"required"`
	SupplierAdd
}

func (r Supplier) Model() models.Supplier {
	m := r.SupplierAdd.Model()
	m.ID = r.ID
	return m
}

type StorageAdd struct {
	Name    string  `json:"storage_name" validate:"notblank,max=255"`
	Address *string `json:"address"      validate:"omitempty,max=512"`
}

func (r StorageAdd) Model() models.Storage {
	return models.Storage{Name: r.Name, Address: r.Address}
}

type Storage struct {
	ID uint `json:"storage_id" validate:"required"`
	StorageAdd
}

func (r Storage) Model() models.Storage {
	m := r.StorageAdd.Model()
	m.ID = r.ID
	return m
}

// Supply links a supplier to a product it supplies.
type Supply struct {
	ProductID  uint `json:"product_id"  validate:"required"`
	SupplierID uint `json:"supplier_id" validate:"required"`
}

func (r Supply) Model() models.ProductSupplier {
	return models.ProductSupplier{ProductID: r.ProductID, SupplierID: r.SupplierID}
}

// Purchase sets the stock of a product at a storage.
type Purchase struct {
	ProductID uint `json:"product_id" validate:"required"`
	StorageID uint `json:"storage_id" validate:"required"`
	Leftover  int  `json:"leftover"   validate:"gte=0"`
}

func (r Purchase) Model() models.ProductStorage {
	return models.ProductStorage{ProductID: r.ProductID, StorageID: r.StorageID, Leftover: r.Leftover}
}

// Leftovers filters the stock report. A nil threshold lists every row.
type Leftovers struct {
	Threshold *int `json:"num" validate:"omitempty,gte=1"`
}
