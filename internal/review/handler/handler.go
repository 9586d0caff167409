package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devkeeb/gearlog/internal/auth"
	"github.com/devkeeb/gearlog/internal/httpserver/respond"
	"github.com/devkeeb/gearlog/internal/product"
	"github.com/devkeeb/gearlog/internal/review"
	"github.com/devkeeb/gearlog/internal/review/dto"
	"github.com/devkeeb/gearlog/pkg/logger"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	uc     review.UseCase
	logger logger.ZapLogger
}

func NewReviewHandler(uc review.UseCase, log logger.ZapLogger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: log}
}

type submitReviewRequest struct {
	Content *string `json:"content"`
	Rating  int     `json:"rating"`
}

// SubmitReview handles POST /api/v1/products/{productID}/reviews
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	memberID, ok := auth.MemberID(r.Context())
	if !ok {
		respond.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reviewID, err := h.uc.Submit(r.Context(), &dto.SubmitReviewInput{
		MemberID:  memberID,
		ProductID: chi.URLParam(r, "productID"),
		Content:   body.Content,
		Rating:    body.Rating,
	})
	if err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			respond.WriteError(w, http.StatusNotFound, "product not found")
		case errors.Is(err, review.ErrInvalidReview):
			respond.WriteError(w, http.StatusBadRequest, "rating must be between 0 and 5")
		default:
			h.logger.Error("failed to submit review", zap.Error(err))
			respond.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.Header().Set("Location", "/api/v1/reviews/"+reviewID)
	respond.WriteJSON(w, http.StatusCreated, map[string]string{"id": reviewID})
}

// ListByProduct handles GET /api/v1/products/{productID}/reviews?page=&size=
func (h *ReviewHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	page := respond.QueryInt(r, "page", 1)
	size := respond.QueryInt(r, "size", 10)

	slice, err := h.uc.ListByProduct(r.Context(), productID, page, size)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			respond.WriteError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("failed to list reviews", zap.String("product_id", productID), zap.Error(err))
		respond.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respond.WriteJSON(w, http.StatusOK, slice)
}

// ListAll handles GET /api/v1/reviews?page=&size=
func (h *ReviewHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	page := respond.QueryInt(r, "page", 1)
	size := respond.QueryInt(r, "size", 10)

	slice, err := h.uc.ListAll(r.Context(), page, size)
	if err != nil {
		h.logger.Error("failed to list all reviews", zap.Error(err))
		respond.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respond.WriteJSON(w, http.StatusOK, slice)
}
