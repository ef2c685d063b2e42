package handlers

import "net/http"

func (h *Handlers) StatusReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.factory.Services.Report.Status(r.Context())
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, report, nil)
}

func (h *Handlers) AttendanceReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.factory.Services.Report.Attendance(r.Context())
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, report, nil)
}
