package blackjack

import (
	"casino/internal/api"
	dto "casino/internal/api/dto/blackjack"
	"casino/internal/converter"
	"casino/internal/service"
	"casino/pkg/req"
	"casino/pkg/resp"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.BlackjackService
	Log  *zap.Logger
}

type Handler struct {
	serv service.BlackjackService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Deal открывает сессию и возвращает ее session_id
func (h *Handler) Deal(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.DealRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Deal(r.Context(), converter.ToBlackjackDeal(userID, payload))
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToBlackjackResponse(*result))
}

// Act - hit, stand, double, split, surrender, insurance или decline по {action} из пути
func (h *Handler) Act(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	move, err := converter.ToBlackjackMove(userID, chi.URLParam(r, "sessionID"), chi.URLParam(r, "action"))
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	result, err := h.serv.Act(r.Context(), move)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackResponse(*result))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	result, err := h.serv.Get(r.Context(), userID, chi.URLParam(r, "sessionID"))
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackResponse(*result))
}
