package api

import "github.com/ecofinds/ecofinds-api/internal/domain"

// Common request/response structures

// SignupRequest defines the payload for the user signup endpoint.
type SignupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupResponse is the public projection of a freshly created user.
// The password hash never appears in any payload.
type SignupResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// UserPayload is the public-safe user projection returned on login.
type UserPayload struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// LoginResponse carries the bearer token plus the user projection.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

// CreateProductRequest defines the payload for product creation.
// Name and price are required; price must be positive (a missing and a zero
// price are equally rejected, matching the observed contract).
type CreateProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	ImageURL    string  `json:"image_url"   validate:"omitempty,url"`
}

// UpdateProductRequest is a partial update: nil fields are left unchanged,
// present fields are applied even when zero-valued.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url"`
}

// Update converts the request into the domain's partial-update form.
func (r UpdateProductRequest) Update() domain.ProductUpdate {
	return domain.ProductUpdate{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
	}
}

// MessageResponse is a bare confirmation message, e.g. after a delete.
type MessageResponse struct {
	Message string `json:"message"`
}
