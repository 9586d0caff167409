package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devkeeb/gearlog/internal/auth"
	"github.com/devkeeb/gearlog/internal/httpserver/respond"
	"github.com/devkeeb/gearlog/internal/inventory"
	"github.com/devkeeb/gearlog/internal/inventory/dto"
	"github.com/devkeeb/gearlog/pkg/logger"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{uc: uc, logger: log}
}

// ListMine handles GET /api/v1/members/inventoryProducts
func (h *InventoryHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	memberID, ok := auth.MemberID(r.Context())
	if !ok {
		respond.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	h.list(w, r, memberID)
}

// ListByMember handles GET /api/v1/members/{memberID}/inventoryProducts
func (h *InventoryHandler) ListByMember(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, chi.URLParam(r, "memberID"))
}

func (h *InventoryHandler) list(w http.ResponseWriter, r *http.Request, memberID string) {
	items, err := h.uc.ListByMember(r.Context(), memberID)
	if err != nil {
		h.logger.Error("failed to list inventory", zap.String("member_id", memberID), zap.Error(err))
		respond.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": dto.ToInventoryItemResponses(items),
	})
}

type setRepresentativeRequest struct {
	SelectedInventoryProductID string  `json:"selectedInventoryProductId"`
	ProductID                  *string `json:"productId"`
}

// SetRepresentative handles PATCH /api/v1/members/inventoryProducts
func (h *InventoryHandler) SetRepresentative(w http.ResponseWriter, r *http.Request) {
	memberID, ok := auth.MemberID(r.Context())
	if !ok {
		respond.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body setRepresentativeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.SelectedInventoryProductID == "" {
		respond.WriteError(w, http.StatusBadRequest, "selectedInventoryProductId is required")
		return
	}

	err := h.uc.SetRepresentative(r.Context(), &dto.SetRepresentativeInput{
		MemberID:           memberID,
		InventoryProductID: body.SelectedInventoryProductID,
		ProductID:          body.ProductID,
	})
	if err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			respond.WriteError(w, http.StatusNotFound, "inventory product not found")
			return
		}
		h.logger.Error("failed to set representative product",
			zap.String("member_id", memberID),
			zap.Error(err),
		)
		respond.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusOK)
}
