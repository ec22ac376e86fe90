package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ecofinds/ecofinds-api/internal/api/middleware"
	"github.com/ecofinds/ecofinds-api/internal/api/shared"
	"github.com/ecofinds/ecofinds-api/internal/domain"
	"github.com/ecofinds/ecofinds-api/internal/store"
)

// ProductHandler handles catalog API requests. Reads are public; mutations
// sit behind the auth middleware, which places verified claims in the
// request context.
type ProductHandler struct {
	productStore store.ProductStore
	validator    *validator.Validate
}

// NewProductHandler creates a new ProductHandler with the given dependencies.
func NewProductHandler(productStore store.ProductStore) *ProductHandler {
	return &ProductHandler{
		productStore: productStore,
		validator:    validator.New(),
	}
}

// productID extracts the {id} path parameter. A non-numeric value maps to
// "not found" rather than a format error: such an id can never match a row.
func productID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, store.ErrProductNotFound
	}
	return id, nil
}

// List handles GET /api/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list products", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, products)
}

// Get handles GET /api/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.productStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Product not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to get product", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, product)
}

// Create handles POST /api/products. The authenticated identity from the
// token claims becomes the product's owner.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		if missingRequired(err) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Name and price are required")
			return
		}
		shared.RespondWithValidationErrors(w, r, fieldErrors(err))
		return
	}

	product, err := domain.NewProduct(
		claims.UserID,
		req.Name,
		req.Description,
		req.Category,
		req.Price,
		req.ImageURL,
	)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.productStore.Create(r.Context(), product); err != nil {
		// Derive the message from the error class so an FK violation reads
		// as client input trouble, not a server fault.
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id}. Only fields present in the JSON
// body are applied; the rest keep their stored values. Any authenticated
// identity may update any product.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Product not found")
		return
	}

	var req UpdateProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithValidationErrors(w, r, fieldErrors(err))
		return
	}

	// Read-then-write without a transaction: a concurrent delete can win
	// the race and surface here as not found.
	product, err := h.productStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Product not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to get product", err)
		return
	}

	req.Update().Apply(product)

	// The merged result must still be a valid product; a present-but-empty
	// name is a client error, same as on create.
	if err := product.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.productStore.Update(r.Context(), product); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Product not found")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id}. Deleting an id with no row,
// including a repeat delete, yields 404.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Product not found")
		return
	}

	if err := h.productStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Product not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to delete product", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Product deleted"})
}

// missingRequired reports whether the validation failure includes a missing
// name or price, which the contract collapses into one message. A supplied
// but invalid value (e.g. a negative price) keeps its per-field message.
func missingRequired(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if (fe.Field() == "Name" || fe.Field() == "Price") && fe.Tag() == "required" {
			return true
		}
	}
	return false
}
