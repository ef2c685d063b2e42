package handlers

import (
	"net/http"

	"github.com/fitgym/fgms/internal/dto"
)

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var input dto.RegisterInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}

	authResponse, err := h.factory.Services.User.Register(r.Context(), &input)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, authResponse, nil)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var input dto.LoginInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}

	authResponse, err := h.factory.Services.User.Login(r.Context(), &input)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, authResponse, nil)
}

func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var input dto.RefreshInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}

	authResponse, err := h.factory.Services.User.Refresh(r.Context(), &input)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, authResponse, nil)
}
