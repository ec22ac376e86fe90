package domain

import (
	"errors"
	"time"
)

// Product validation errors
var (
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// Product is a catalog listing owned by the user who created it.
type Product struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProduct builds a Product from create input and validates it.
// The ID is assigned by the store.
func NewProduct(
	ownerID int64,
	name, description, category string,
	price float64,
	imageURL string,
) (*Product, error) {
	now := time.Now().UTC()
	product := &Product{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Category:    category,
		Price:       price,
		ImageURL:    imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate checks the Product's fields.
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrEmptyProductName
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// ProductUpdate carries a partial update. Nil fields mean "leave unchanged";
// a present field is applied even when it is the zero value, so price can
// legitimately be set to 0 and description cleared.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
}

// Apply merges the update into an existing product and bumps UpdatedAt.
func (u ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
	p.UpdatedAt = time.Now().UTC()
}
