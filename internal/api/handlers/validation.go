package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	svc "github.com/fitgym/fgms/internal/services"
	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// decodeAndValidate decodes the body into dst and runs struct
// validation. On failure it writes the error response itself and returns
// false; the error message enumerates every violated field.
func (h *Handlers) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		h.errorResponse(w, r, &svc.APIError{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("invalid request body: %v", err),
		})
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var validationErrors []ValidationError
		var messages []string
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				translated := fe.Translate(h.trans)
				validationErrors = append(validationErrors, ValidationError{
					Field:   fe.Field(),
					Message: translated,
				})
				messages = append(messages, translated)
			}
		}

		h.errorResponse(w, r, &svc.APIError{
			Status:  http.StatusBadRequest,
			Message: strings.Join(messages, ", "),
			Errors:  validationErrors,
		})
		return false
	}

	return true
}
