package uth

import (
	"casino/internal/api"
	dto "casino/internal/api/dto/uth"
	"casino/internal/converter"
	"casino/internal/service"
	"casino/pkg/req"
	"casino/pkg/resp"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.UTHService
	Log  *zap.Logger
}

type Handler struct {
	serv service.UTHService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

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

	result, err := h.serv.Deal(r.Context(), converter.ToUTHDeal(userID, payload))
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToUTHResponse(*result))
}

// Act - bet, check или fold. Тело с multiplier нужно только для bet до флопа.
func (h *Handler) Act(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	var payload dto.ActRequest
	if r.ContentLength != 0 {
		var err error
		if payload, err = req.Decode[dto.ActRequest](r.Body); err != nil {
			resp.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	move, err := converter.ToUTHMove(userID, chi.URLParam(r, "sessionID"), chi.URLParam(r, "action"), payload)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	result, err := h.serv.Act(r.Context(), move)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUTHResponse(*result))
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

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUTHResponse(*result))
}
