package handlers

import (
	_ "embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"town-info-service/internal/api/dto"
	"town-info-service/internal/domain"
	"town-info-service/internal/platform/obs"
	"town-info-service/internal/services"

	"github.com/rs/zerolog/log"
)

const sessionCookie = "town_session"

//go:embed templates/page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"num": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
}).Parse(pageHTML))

type pageData struct {
	View     services.View
	NoEvents string
}

// TownHandler serves the town-info page, its resize endpoint and the
// stateless JSON lookup.
type TownHandler struct {
	Service  *services.TownInfoService
	Sessions *services.SessionRegistry
}

func NewTownHandler(svc *services.TownInfoService, sessions *services.SessionRegistry) *TownHandler {
	return &TownHandler{Service: svc, Sessions: sessions}
}

// controller resolves the visitor's controller, starting a session when
// the cookie is missing or stale.
func (h *TownHandler) controller(w http.ResponseWriter, r *http.Request) *services.Controller {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}

	newID, ctrl := h.Sessions.GetOrCreate(id)
	if newID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    newID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return ctrl
}

// Page renders the visitor's current view.
func (h *TownHandler) Page(w http.ResponseWriter, r *http.Request) {
	ctrl := h.controller(w, r)
	h.render(w, r, ctrl.View())
}

// Submit runs the town-info action from the page form.
func (h *TownHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	ctrl := h.controller(w, r)
	layout := layoutFrom(r.PostForm.Get)

	view, err := ctrl.Submit(r.Context(), r.PostForm.Get("town"), layout)
	if err != nil {
		logSubmit(r, err)
	}

	h.render(w, r, view)
}

// Resize recomputes the map for the browser's new layout. 204 means
// results are not showing and nothing needs reloading.
func (h *TownHandler) Resize(w http.ResponseWriter, r *http.Request) {
	var ctrl *services.Controller
	if c, err := r.Cookie(sessionCookie); err == nil {
		ctrl, _ = h.Sessions.Get(c.Value)
	}
	if ctrl == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	mv, ok := ctrl.Resize(layoutFrom(r.URL.Query().Get))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, r, http.StatusOK, toMapResponse(mv))
}

// Lookup is the stateless JSON form of the town-info action.
func (h *TownHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	info, err := h.Service.Lookup(r.Context(), q.Get("town"), layoutFrom(q.Get))
	if err != nil {
		writeError(w, r, lookupStatus(err), services.UserMessage(err))
		return
	}

	writeJSON(w, r, http.StatusOK, toTownInfoResponse(info))
}

func (h *TownHandler) render(w http.ResponseWriter, r *http.Request, v services.View) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, pageData{View: v, NoEvents: services.MsgNoEvents}); err != nil {
		log.Error().
			Err(err).
			Str("req_id", obs.RequestID(r.Context())).
			Msg("render page failed")
	}
}

func lookupStatus(err error) int {
	if errors.Is(err, services.ErrEmptyInput) {
		return http.StatusBadRequest
	}
	var le *domain.WeatherLookupError
	if errors.As(err, &le) && le.NotFound() {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func logSubmit(r *http.Request, err error) {
	ev := log.Warn()
	if errors.Is(err, services.ErrEmptyInput) || errors.Is(err, services.ErrSuperseded) {
		ev = log.Info()
	}
	ev.Err(err).Str("req_id", obs.RequestID(r.Context())).Msg("town-info action did not show results")
}

func toMapResponse(mv domain.MapView) dto.MapResponse {
	return dto.MapResponse{URL: mv.URL, Width: mv.Width, Height: mv.Height}
}

func toTownInfoResponse(info *services.TownInfo) dto.TownInfoResponse {
	wr := info.Weather
	res := dto.TownInfoResponse{
		Weather: dto.WeatherResponse{
			Town:        wr.Town,
			Country:     wr.Country,
			Condition:   wr.Condition,
			Temperature: wr.Temperature,
			FeelsLike:   wr.FeelsLike,
			Humidity:    wr.Humidity,
			WindSpeed:   wr.WindSpeed,
			Lon:         wr.Coordinates.Lon,
			Lat:         wr.Coordinates.Lat,
		},
		Map: toMapResponse(info.Map),
		Events: dto.EventsResponse{
			Hidden: info.Events.Hidden,
			Events: make([]dto.EventResponse, 0, len(info.Events.Events)),
		},
	}
	if info.Events.Empty() {
		res.Events.Message = services.MsgNoEvents
	}

	for _, e := range info.Events.Events {
		res.Events.Events = append(res.Events.Events, dto.EventResponse{
			Name:       e.Name,
			StartDate:  e.StartDate,
			StartTime:  e.StartTime,
			Venues:     e.Venues,
			StatusCode: e.StatusCode,
			Flagged:    e.Flagged(),
		})
	}

	return res
}
