package handler

import (
	"errors"
	"net/http"

	"github.com/devkeeb/gearlog/internal/httpserver/respond"
	"github.com/devkeeb/gearlog/internal/product"
	"github.com/devkeeb/gearlog/pkg/logger"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: log}
}

// ListProducts handles GET /api/v1/products?page=&size=
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page := respond.QueryInt(r, "page", 1)
	size := respond.QueryInt(r, "size", 20)

	slice, err := h.uc.ListProducts(r.Context(), page, size)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		respond.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respond.WriteJSON(w, http.StatusOK, slice)
}

// GetProduct handles GET /api/v1/products/{productID}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	p, err := h.uc.GetProduct(r.Context(), productID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			respond.WriteError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("failed to get product", zap.String("product_id", productID), zap.Error(err))
		respond.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respond.WriteJSON(w, http.StatusOK, p)
}
