package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devkeeb/gearlog/internal/auth"
	"github.com/devkeeb/gearlog/internal/httpserver/respond"
	"github.com/devkeeb/gearlog/internal/member"
	"github.com/devkeeb/gearlog/internal/member/dto"
	"github.com/devkeeb/gearlog/pkg/logger"
	"go.uber.org/zap"
)

type MemberHandler struct {
	uc     member.UseCase
	logger logger.ZapLogger
}

func NewMemberHandler(uc member.UseCase, log logger.ZapLogger) *MemberHandler {
	return &MemberHandler{uc: uc, logger: log}
}

// Login handles GET /api/v1/login?code=
func (h *MemberHandler) Login(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		respond.WriteError(w, http.StatusBadRequest, "code is required")
		return
	}

	resp, err := h.uc.Login(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, member.ErrCodeReplayed), errors.Is(err, auth.ErrCodeExchange):
			respond.WriteError(w, http.StatusUnauthorized, "login failed")
		default:
			h.logger.Error("login failed", zap.Error(err))
			respond.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respond.WriteJSON(w, http.StatusOK, resp)
}

// Me handles GET /api/v1/members/me
func (h *MemberHandler) Me(w http.ResponseWriter, r *http.Request) {
	memberID, ok := auth.MemberID(r.Context())
	if !ok {
		respond.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	m, err := h.uc.GetMember(r.Context(), memberID)
	if err != nil {
		if errors.Is(err, member.ErrNotFound) {
			respond.WriteError(w, http.StatusNotFound, "member not found")
			return
		}
		h.logger.Error("failed to get member", zap.String("member_id", memberID), zap.Error(err))
		respond.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respond.WriteJSON(w, http.StatusOK, m)
}

type updateProfileRequest struct {
	CareerLevel string `json:"careerLevel"`
	JobType     string `json:"jobType"`
}

// UpdateProfile handles PATCH /api/v1/members/me
func (h *MemberHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	memberID, ok := auth.MemberID(r.Context())
	if !ok {
		respond.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.uc.UpdateProfile(r.Context(), &dto.UpdateProfileInput{
		MemberID:    memberID,
		CareerLevel: body.CareerLevel,
		JobType:     body.JobType,
	})
	if err != nil {
		switch {
		case errors.Is(err, member.ErrInvalidProfile):
			respond.WriteError(w, http.StatusBadRequest, "invalid career level or job type")
		case errors.Is(err, member.ErrNotFound):
			respond.WriteError(w, http.StatusNotFound, "member not found")
		default:
			h.logger.Error("failed to update profile", zap.String("member_id", memberID), zap.Error(err))
			respond.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respond.WriteJSON(w, http.StatusOK, m)
}
