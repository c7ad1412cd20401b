package models

// Storage is a warehouse location. Address is optional and unique when set.
type Storage struct {
	ID      uint    `gorm:"column:storage_id;primaryKey;autoIncrement" json:"storage_id"`
	Name    string  `gorm:"column:storage_name;size:255;not null"      json:"storage_name"`
	Address *string `gorm:"column:address;size:512"                    json:"address"`
}

func (Storage) TableName() string { return "storages" }
