package handlers

import (
	"net/http"

	"github.com/fitgym/fgms/internal/dto"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handlers) memberIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.badRequest(w, r, "Invalid member id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handlers) CreateMember(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateMemberInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}

	createdMember, err := h.factory.Services.Member.Create(r.Context(), &input)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, createdMember, nil)
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	filters := h.getMemberFiltersQuery(r)
	opts := h.getPaginationParams(r)

	list, err := h.factory.Services.Member.List(r.Context(), filters, opts)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, list, nil)
}

func (h *Handlers) GetMember(w http.ResponseWriter, r *http.Request) {
	id, ok := h.memberIDParam(w, r)
	if !ok {
		return
	}

	member, err := h.factory.Services.Member.Get(r.Context(), id)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, member, nil)
}

func (h *Handlers) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id, ok := h.memberIDParam(w, r)
	if !ok {
		return
	}

	var input dto.UpdateMemberInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}

	updatedMember, err := h.factory.Services.Member.Update(r.Context(), id, &input)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, updatedMember, nil)
}

func (h *Handlers) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, ok := h.memberIDParam(w, r)
	if !ok {
		return
	}

	if err := h.factory.Services.Member.Deactivate(r.Context(), id); err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, envelope{
		"message": "Member deactivated successfully",
	}, nil)
}
