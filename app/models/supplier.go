package models

// Supplier delivers products. Email is optional and unique when set; phone is
// required, unique and formatted +7(XXX)XXX-XX-XX.
type Supplier struct {
	ID    uint    `gorm:"column:supplier_id;primaryKey;autoIncrement" json:"supplier_id"`
	Name  string  `gorm:"column:supplier_name;size:255;not null"      json:"supplier_name"`
	Email *string `gorm:"column:email;size:255"                       json:"email"`
	Phone string  `gorm:"column:phone;size:32;not null"               json:"phone"`
}

func (Supplier) TableName() string { return "suppliers" }
