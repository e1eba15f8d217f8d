package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"launchpad/internal/core/domain"
	"launchpad/internal/metrics"
)

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// statusFor maps an error kind to its HTTP status.
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation, domain.KindArithmetic:
		return http.StatusUnprocessableEntity
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict, domain.KindReentrancy:
		return http.StatusConflict
	case domain.KindTransfer:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// writeError reports err to the client with a code it can act on.
// Internal failures are logged and hidden behind a generic message.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	kind := domain.KindOf(err)
	code := domain.CodeOf(err)
	status := statusFor(kind)
	metrics.OperationErrors.WithLabelValues(op, code).Inc()

	resp := errorResponse{Code: code, Error: err.Error()}
	switch {
	case status == http.StatusInternalServerError:
		h.logger.Error(op+" error", slog.Any("error", err))
		resp.Error = "internal error"
	case kind == domain.KindTransfer:
		h.logger.Error(op+" transfer failed", slog.Any("error", err))
	default:
		h.logger.Warn(op+" rejected", slog.String("code", code), slog.Any("error", err))
	}
	writeJSON(w, h.logger, status, resp)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response error", slog.Any("error", err))
	}
}

// caller returns the account named in the request header, writing 401
// when it is missing.
func caller(w http.ResponseWriter, r *http.Request) (domain.Account, bool) {
	acc := r.Header.Get(CallerHeader)
	if acc == "" {
		http.Error(w, "missing "+CallerHeader+" header", http.StatusUnauthorized)
		return "", false
	}
	return domain.Account(acc), true
}
