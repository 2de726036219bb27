package sicbo

import (
	"casino/internal/api"
	dto "casino/internal/api/dto/sicbo"
	"casino/internal/converter"
	"casino/internal/service"
	"casino/pkg/req"
	"casino/pkg/resp"
	"net/http"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.SicBoService
	Log  *zap.Logger
}

type Handler struct {
	serv service.SicBoService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Roll принимает несколько ставок на один бросок трех костей
func (h *Handler) Roll(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.RollRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	in, err := converter.ToSicBoRoll(userID, payload)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	result, err := h.serv.Roll(r.Context(), in)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSicBoRollResponse(*result))
}
