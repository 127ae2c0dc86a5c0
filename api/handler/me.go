package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/todoer/backend/pkg/httpcontext"
	authUC "github.com/todoer/backend/usecase/auth"
)

type MeHandler struct {
	baseHandler
	uc *authUC.UseCase
}

func NewMeHandler(uc *authUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *MeHandler {
	return &MeHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Current user profile
// @Tags auth
// @Router /api/v1/me [get]
func (h *MeHandler) Get(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.uc.CurrentUser(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, user)
}
