package models

// Product is a catalogue item. Description is optional but unique when set;
// 768 characters keeps its unique index within the InnoDB key limit under
// utf8mb4.
type Product struct {
	ID          uint    `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	Name        string  `gorm:"column:product_name;size:255;not null"      json:"product_name"`
	Description *string `gorm:"column:product_description;size:768"        json:"product_description"`
}

func (Product) TableName() string { return "products" }
