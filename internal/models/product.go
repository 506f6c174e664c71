package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product in the store catalog.
// Prices are fixed-point with two decimals; StockQty never goes below zero.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string          `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	StockQty    int             `json:"stock_qty" gorm:"column:stock_qty" validate:"gte=0"`
	OnSale      bool            `json:"on_sale"`
	CategoryID  string          `json:"category_id" gorm:"type:varchar(36);index"`
	gorm.Model                  // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Category groups products for browsing.
type Category struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
}

// ProductPatch is a partial update of a product. Each field is an explicit
// optional: only present fields become column assignments.
type ProductPatch struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Price       *decimal.Decimal `json:"price"`
	StockQty    *int             `json:"stock_qty" validate:"omitempty,gte=0"`
	OnSale      *bool            `json:"on_sale"`
}

// Assignments maps the present patch fields to their column values.
func (p ProductPatch) Assignments() map[string]interface{} {
	assignments := make(map[string]interface{})
	if p.Name != nil {
		assignments["name"] = *p.Name
	}
	if p.Description != nil {
		assignments["description"] = *p.Description
	}
	if p.Price != nil {
		assignments["price"] = *p.Price
	}
	if p.StockQty != nil {
		assignments["stock_qty"] = *p.StockQty
	}
	if p.OnSale != nil {
		assignments["on_sale"] = *p.OnSale
	}
	return assignments
}
