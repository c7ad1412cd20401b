package models

// Leftover is one row of the stock report: how much of a product a storage holds.
type Leftover struct {
	ProductID   uint   `gorm:"column:product_id"   json:"product_id"`
	ProductName string `gorm:"column:product_name" json:"product_name"`
	StorageID   uint   `gorm:"column:storage_id"   json:"storage_id"`
	StorageName string `gorm:"column:storage_name" json:"storage_name"`
	Leftover    int    `gorm:"column:leftover"     json:"leftover"`
}

// ProductWithSupplier is one row of the product/supplier summary.
type ProductWithSupplier struct {
	ProductID    uint    `gorm:"column:product_id"    json:"product_id"`
	ProductName  string  `gorm:"column:product_name"  json:"product_name"`
	SupplierID   uint    `gorm:"column:supplier_id"   json:"supplier_id"`
	SupplierName string  `gorm:"column:supplier_name" json:"supplier_name"`
	Email        *string `gorm:"column:email"         json:"email"`
	Phone        string  `gorm:"column:phone"         json:"phone"`
}
