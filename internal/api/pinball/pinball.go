package pinball

import (
	"casino/internal/api"
	dto "casino/internal/api/dto/pinball"
	"casino/internal/converter"
	"casino/internal/service"
	"casino/pkg/req"
	"casino/pkg/resp"
	"net/http"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.PinballService
	Log  *zap.Logger
}

type Handler struct {
	serv service.PinballService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.PlayRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	in, err := converter.ToPinballPlay(userID, payload)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	result, err := h.serv.Play(r.Context(), in)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPinballPlayResponse(*result))
}
