package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Lixing-Zhang/product-api/internal/repository"
	"github.com/Lixing-Zhang/product-api/internal/service"
)

const maxBodyBytes = 1 << 20

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// productRequest is the body of POST /product and PUT /product/{productId}.
// Pointers tell a missing key apart from a zero value.
type productRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Qty         *int     `json:"qty"`
}

func (req productRequest) fields() (service.ProductFields, string) {
	switch {
	case req.Name == nil:
		return service.ProductFields{}, "name"
	case req.Description == nil:
		return service.ProductFields{}, "description"
	case req.Price == nil:
		return service.ProductFields{}, "price"
	case req.Qty == nil:
		return service.ProductFields{}, "qty"
	}
	return service.ProductFields{
		Name:        *req.Name,
		Description: *req.Description,
		Price:       *req.Price,
		Qty:         *req.Qty,
	}, ""
}

// CreateProduct handles POST /product
// - 201: created, body is the stored product
// - 400: invalid body or missing field
// - 409: name already exists
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	fields, ok := h.decodeFields(w, r)
	if !ok {
		return
	}

	product, err := h.service.CreateProduct(r.Context(), fields)
	if err != nil {
		h.writeServiceError(w, err, "failed to create product", "name", fields.Name)
		return
	}

	h.logger.Info("product created", "productId", product.ID, "name", product.Name)
	h.writeJSON(w, http.StatusCreated, product)
}

// ListProducts handles GET /product
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /product/{productId}
// - 200: successful operation
// - 400: Invalid ID supplied
// - 404: Product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err, "failed to get product", "productId", id)
		return
	}

	h.writeJSON(w, http.StatusOK, product)
}

// UpdateProduct handles PUT /product/{productId}
// All four fields are overwritten. Success is reported as 201.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	fields, ok := h.decodeFields(w, r)
	if !ok {
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, fields)
	if err != nil {
		h.writeServiceError(w, err, "failed to update product", "productId", id)
		return
	}

	h.logger.Info("product updated", "productId", product.ID)
	h.writeJSON(w, http.StatusCreated, product)
}

// DeleteProduct handles DELETE /product/{productId}
// The response body is the product as it was before deletion.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.DeleteProduct(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err, "failed to delete product", "productId", id)
		return
	}

	h.logger.Info("product deleted", "productId", product.ID)
	h.writeJSON(w, http.StatusOK, product)
}

// productID parses the {productId} URL parameter
func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "productId")
	if raw == "" {
		h.logger.Warn("product ID is required")
		h.writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.logger.Warn("invalid product ID format", "productId", raw, "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return 0, false
	}
	return id, true
}

// decodeFields reads a productRequest body and requires every field
func (h *ProductHandler) decodeFields(w http.ResponseWriter, r *http.Request) (service.ProductFields, bool) {
	var req productRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.logger.Warn("failed to decode product request", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return service.ProductFields{}, false
	}

	fields, missing := req.fields()
	if missing != "" {
		h.logger.Warn("product request missing field", "field", missing)
		h.writeError(w, http.StatusBadRequest, "Missing required field: "+missing)
		return service.ProductFields{}, false
	}
	return fields, true
}

// writeServiceError maps repository errors onto HTTP responses
func (h *ProductHandler) writeServiceError(w http.ResponseWriter, err error, msg string, args ...any) {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		h.logger.Info("product not found", args...)
		h.writeError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, repository.ErrDuplicateName):
		h.logger.Info("duplicate product name", args...)
		h.writeError(w, http.StatusConflict, "Product name already exists")
	default:
		h.logger.Error(msg, append(args, "error", err)...)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// writeJSON writes a JSON response
func (h *ProductHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	WriteJSON(w, status, data, h.logger)
}

// writeError writes an error response
func (h *ProductHandler) writeError(w http.ResponseWriter, status int, message string) {
	WriteError(w, status, message, h.logger)
}
