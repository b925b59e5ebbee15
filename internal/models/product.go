package models

// Product is a single row of the product table.
// Name is unique; every other column is unconstrained.
type Product struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"size:100;uniqueIndex" json:"name"`
	Description string  `gorm:"size:200" json:"description"`
	Price       float64 `json:"price"`
	Qty         int     `json:"qty"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "product"
}
