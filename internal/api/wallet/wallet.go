package wallet

import (
	"casino/internal/api"
	dto "casino/internal/api/dto/wallet"
	"casino/internal/converter"
	"casino/internal/service"
	"casino/pkg/req"
	"casino/pkg/resp"
	"net/http"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.LedgerService
	Log  *zap.Logger
}

type Handler struct {
	serv service.LedgerService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	balance, err := h.serv.Balance(r.Context(), userID)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{BalanceCents: balance})
}

// Deposit пополняет баланс, пополнение пишется в аудит как отдельное действие
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	receipt, err := h.serv.Deposit(r.Context(), converter.ToDeposit(userID, payload))
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDepositResponse(*receipt))
}
