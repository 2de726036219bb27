package baccarat

import (
	"casino/internal/api"
	dto "casino/internal/api/dto/baccarat"
	"casino/internal/converter"
	"casino/internal/service"
	"casino/pkg/req"
	"casino/pkg/resp"
	"net/http"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.BaccaratService
	Log  *zap.Logger
}

type Handler struct {
	serv service.BaccaratService
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

	in, err := converter.ToBaccaratDeal(userID, payload)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	result, err := h.serv.Deal(r.Context(), in)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBaccaratDealResponse(*result))
}
