package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"town-info-service/internal/domain"
	"town-info-service/internal/platform/obs"

	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().
			Err(err).
			Str("req_id", obs.RequestID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found")
}

// layoutFrom reads the browser's measured widths. Missing or invalid
// measurements fall back to the default layout as a whole.
func layoutFrom(get func(string) string) domain.Layout {
	body, ok1 := positive(get("body_width"))
	container, ok2 := positive(get("container_width"))
	sibling, ok3 := positive(get("sibling_width"))
	if !ok1 || !ok2 {
		return domain.DefaultLayout
	}

	l := domain.Layout{BodyWidth: body, ContainerWidth: container}
	if !l.Narrow() {
		if !ok3 {
			return domain.DefaultLayout
		}
		l.SiblingWidth = sibling
	}
	return l
}

func positive(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
