package controllers

import (
	"net/http"
	"strings"

	"github.com/glowdecor/backend/api/responses"
	"github.com/glowdecor/backend/api/validators"
	productsvc "github.com/glowdecor/backend/internal/products"
	"github.com/glowdecor/backend/pkg/logger"
)

type productListResponse struct {
	Products []productsvc.View `json:"products"`
	Count    int               `json:"count"`
}

// ListProducts serves the public catalog: the full list, a category filter,
// or a single product when ?id is present.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if strings.TrimSpace(r.URL.Query().Get("id")) != "" {
			id, err := validators.ParseQueryID(r, "id", "Product ID required")
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			product, err := svc.Get(ctx, id)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteJSON(w, http.StatusOK, product)
			return
		}

		products, err := svc.List(ctx, r.URL.Query().Get("category"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, productListResponse{
			Products: products,
			Count:    len(products),
		})
	}
}
