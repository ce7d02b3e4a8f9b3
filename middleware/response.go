package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/SaiNageswarS/doubt-solver-api/model"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

// WriteJSON writes v with the given status code. v is encoded before any
// header goes out, so an unencodable value still yields a 500.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
		code = http.StatusInternalServerError
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(model.ErrorResponse{Error: serverErrorMessage})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Error("Failed to write response", zap.Error(err))
	}
}

func WriteError(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, model.ErrorResponse{Error: msg})
}
