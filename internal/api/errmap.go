// Package api - общие части HTTP слоя: ошибки и id пользователя из контекста.
package api

import (
	"casino/internal/middleware"
	"casino/internal/model"
	"casino/pkg/resp"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// StatusFor - HTTP статус для ошибки сервиса
func StatusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, model.ErrSessionNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// WriteError отвечает {"error": "..."}; текст внутренних ошибок клиенту не отдается
func WriteError(w http.ResponseWriter, log *zap.Logger, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
		resp.WriteError(w, status, "internal error")
		return
	}
	resp.WriteError(w, status, err.Error())
}

// UserID - id пользователя, положенный middleware.Auth; без него отвечает 401
func UserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "user id not found in context")
	}
	return id, ok
}
