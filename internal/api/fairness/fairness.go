package fairness

import (
	"casino/internal/api"
	dto "casino/internal/api/dto/fairness"
	"casino/internal/converter"
	"casino/internal/service"
	"casino/pkg/req"
	"casino/pkg/resp"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.FairnessService
	Log  *zap.Logger
}

type Handler struct {
	serv service.FairnessService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Reveal - сиды завершенного раунда по id записи аудита
func (h *Handler) Reveal(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	auditID, err := strconv.ParseInt(chi.URLParam(r, "auditID"), 10, 64)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid audit id")
		return
	}

	round, err := h.serv.Reveal(r.Context(), userID, auditID)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRevealResponse(*round))
}

// Verify не трогает хранилище и доступен без токена
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.VerifyRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Verify(converter.ToVerifyRequest(payload))
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToVerifyResponse(*result))
}
