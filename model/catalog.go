package model

import "time"

// ProductEntity is a single menu item.
type ProductEntity struct {
	ID        string     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Price     float64    `db:"price" json:"price"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"`
}

// ComboEntity is a bundle of products sold as one line item.
type ComboEntity struct {
	ID        string     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Price     float64    `db:"price" json:"price"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"`
}
