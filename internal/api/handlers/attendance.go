package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type markAttendanceBody struct {
	CheckIn *time.Time `json:"checkIn"`
}

// MarkAttendance records today's check-in (or check-out, on the second
// call of the day) for the member in the path. The body is optional; an
// explicit checkIn instant overrides the server clock.
func (h *Handlers) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := h.memberIDParam(w, r)
	if !ok {
		return
	}

	var body markAttendanceBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		h.badRequest(w, r, "invalid request body")
		return
	}

	h.markAttendance(w, r, id, body.CheckIn)
}

// MarkAttendanceLegacy keeps the old flat route alive: the member id
// comes in the body as memberId.
func (h *Handlers) MarkAttendanceLegacy(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MemberID string     `json:"memberId"`
		CheckIn  *time.Time `json:"checkIn"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.badRequest(w, r, "invalid request body")
		return
	}
	if body.MemberID == "" {
		h.badRequest(w, r, "memberId is required")
		return
	}

	id, err := uuid.Parse(body.MemberID)
	if err != nil {
		h.badRequest(w, r, "Invalid member id")
		return
	}

	h.markAttendance(w, r, id, body.CheckIn)
}

func (h *Handlers) markAttendance(w http.ResponseWriter, r *http.Request, id uuid.UUID, at *time.Time) {
	member, err := h.factory.Services.Member.MarkAttendance(r.Context(), id, at)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, envelope{
		"message":    "Attendance marked successfully",
		"member":     member,
		"attendance": member.Attendance,
	}, nil)
}

func (h *Handlers) MemberAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := h.memberIDParam(w, r)
	if !ok {
		return
	}

	entries, err := h.factory.Services.Member.Attendance(r.Context(), id)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, entries, nil)
}

func (h *Handlers) AllAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := h.factory.Services.Member.AllAttendance(r.Context())
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, records, nil)
}
