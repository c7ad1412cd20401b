package models

// ProductSupplier records that a supplier supplies a product. Deleting
// either parent removes the link.
type ProductSupplier struct {
	ProductID  uint `gorm:"column:product_id;primaryKey;autoIncrement:false"  json:"product_id"`
	SupplierID uint `gorm:"column:supplier_id;primaryKey;autoIncrement:false" json:"supplier_id"`

	Product  Product  `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE"  json:"-"`
	Supplier Supplier `gorm:"foreignKey:SupplierID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ProductSupplier) TableName() string { return "products_and_suppliers" }

// ProductStorage is the stock of a product held at a storage.
// Leftover can never be negative; the store rejects it.
type ProductStorage struct {
	ProductID uint `gorm:"column:product_id;primaryKey;autoIncrement:false" json:"product_id"`
	StorageID uint `gorm:"column:storage_id;primaryKey;autoIncrement:false" json:"storage_id"`
	Leftover  int  `gorm:"column:leftover;not null;default:0;check:leftover_non_negative,leftover >= 0" json:"leftover"`

	Product Product `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Storage Storage `gorm:"foreignKey:StorageID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ProductStorage) TableName() string { return "products_and_storages" }
