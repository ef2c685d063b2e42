package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/fitgym/fgms/internal/dto"
)

type envelope map[string]any

// writeJSON wraps every successful response in the
// {"success": true, "data": ...} envelope the dashboard consumes.
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"data":    data,
	}); err != nil {
		return err
	}

	return nil
}

func (h *Handlers) getPaginationParams(r *http.Request) *dto.QueryOptions {
	// Defaults match the original API: first page of 10.
	q := dto.QueryOptions{Page: 1, Limit: 10}

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			q.Page = n
		}
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			if n > 100 {
				n = 100
			}
			q.Limit = n
		}
	}

	return &q
}

func (h *Handlers) getMemberFiltersQuery(r *http.Request) *dto.MemberFilters {
	filters := dto.MemberFilters{}

	if v := r.URL.Query().Get("isActive"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filters.IsActive = &b
		}
	}

	if v := r.URL.Query().Get("membership"); v != "" {
		membership := dto.MembershipType(v)
		filters.Membership = &membership
	}

	if v := r.URL.Query().Get("startDate"); v != "" {
		if t, ok := parseDate(v); ok {
			filters.JoinedFrom = &t
		}
	}

	if v := r.URL.Query().Get("endDate"); v != "" {
		if t, ok := parseDate(v); ok {
			filters.JoinedTo = &t
		}
	}

	return &filters
}

func parseDate(v string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, true
	}
	return time.Time{}, false
}
