package controllers

import (
	"net/http"

	"github.com/glowdecor/backend/api/responses"
	"github.com/glowdecor/backend/api/validators"
	productsvc "github.com/glowdecor/backend/internal/products"
	"github.com/glowdecor/backend/pkg/logger"
)

type productRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	// pointer so an explicit zero price passes required
	Price       *int64 `json:"price" validate:"required,min=0"`
	ImageURL    string `json:"image_url" validate:"required"`
	GlowColor   string `json:"glow_color"`
	Description string `json:"description"`
}

func (p productRequest) toInput() productsvc.Input {
	return productsvc.Input{
		Name:        p.Name,
		Category:    p.Category,
		Price:       *p.Price,
		ImageURL:    p.ImageURL,
		GlowColor:   p.GlowColor,
		Description: p.Description,
	}
}

type mutationResponse struct {
	Success   bool   `json:"success"`
	ProductID int64  `json:"product_id,omitempty"`
	Message   string `json:"message"`
}

// CreateProduct handles admin product creation.
func CreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, mutationResponse{
			Success:   true,
			ProductID: id,
			Message:   "Product created",
		})
	}
}

// UpdateProduct fully replaces a product's writable fields.
func UpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseQueryID(r, "id", "Product ID required")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Update(r.Context(), id, payload.toInput()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, mutationResponse{
			Success: true,
			Message: "Product updated",
		})
	}
}

// DeleteProduct removes a product row.
func DeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseQueryID(r, "id", "Product ID required")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, mutationResponse{
			Success: true,
			Message: "Product deleted",
		})
	}
}
