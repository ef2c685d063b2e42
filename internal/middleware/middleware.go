package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/fitgym/fgms/pkg/logger"
	"github.com/fitgym/fgms/pkg/token"
)

type Middleware struct {
	TokenSvc *token.Jwt
	Logger   *logger.Logger
}

func New(tokenSvc *token.Jwt, logger *logger.Logger) *Middleware {
	return &Middleware{
		TokenSvc: tokenSvc,
		Logger:   logger,
	}
}

func (m *Middleware) apiError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   message,
	})
}
