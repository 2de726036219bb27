package roulette

import (
	"casino/internal/api"
	dto "casino/internal/api/dto/roulette"
	"casino/internal/converter"
	"casino/internal/service"
	"casino/pkg/req"
	"casino/pkg/resp"
	"net/http"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.RouletteService
	Log  *zap.Logger
}

type Handler struct {
	serv service.RouletteService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	in, err := converter.ToRouletteSpin(userID, payload)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	result, err := h.serv.Spin(r.Context(), in)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRouletteSpinResponse(*result))
}
