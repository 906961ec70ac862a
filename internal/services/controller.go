package services

import (
	"context"
	"strings"
	"sync"
	"town-info-service/internal/domain"
)

// View is what one page shows. Panel visibility derives from State only.
type View struct {
	State        domain.ViewState
	Town         string
	ErrorMessage string
	Info         *TownInfo
}

func (v View) ShowError() bool   { return v.State == domain.ShowingError }
func (v View) ShowWeather() bool { return v.State == domain.ShowingResults && v.Info != nil }

func (v View) ShowEvents() bool {
	return v.ShowWeather() && !v.Info.Events.Hidden
}

// Controller owns the UI state of one visitor: the current view, the
// coordinates of the last successful lookup and the in-flight generation.
//
// Overlapping submissions resolve last-writer-wins: only the most recent
// submission may commit its outcome.
type Controller struct {
	svc *TownInfoService

	mu         sync.Mutex
	view       View
	coords     domain.Coordinates
	generation uint64
}

func NewController(svc *TownInfoService) *Controller {
	return &Controller{
		svc:  svc,
		view: View{State: domain.Idle},
	}
}

// View returns the current view.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// State returns the current view state.
func (c *Controller) State() domain.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.State
}

// Coordinates returns the coordinates of the last successful lookup.
func (c *Controller) Coordinates() domain.Coordinates {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.coords
}

// Submit runs a town-info action and commits its outcome.
//
// A blank town moves straight to the error view without touching the
// network. If a newer submission starts while this one is in flight,
// the outcome is dropped and ErrSuperseded is returned with the view
// current at that time.
func (c *Controller) Submit(ctx context.Context, town string, layout domain.Layout) (View, error) {
	town = strings.TrimSpace(town)

	c.mu.Lock()
	c.generation++
	gen := c.generation
	if town == "" {
		c.view = View{State: domain.ShowingError, ErrorMessage: MsgEmptyInput}
		v := c.view
		c.mu.Unlock()
		return v, ErrEmptyInput
	}
	// Previous panels are hidden for the duration of the fetch.
	c.view = View{State: domain.Fetching, Town: town}
	c.mu.Unlock()

	info, err := c.svc.Lookup(ctx, town, layout)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return c.view, ErrSuperseded
	}

	if err != nil {
		c.view = View{State: domain.ShowingError, Town: town, ErrorMessage: UserMessage(err)}
		return c.view, err
	}

	c.coords = info.Weather.Coordinates
	c.view = View{State: domain.ShowingResults, Town: town, Info: info}
	return c.view, nil
}

// Resize recomputes the map for a new layout using the last successful
// coordinates. It does nothing unless results are showing, which also
// covers resizes before the first success and during a fetch.
func (c *Controller) Resize(layout domain.Layout) (domain.MapView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.view.State != domain.ShowingResults || c.view.Info == nil {
		return domain.MapView{}, false
	}

	mv := c.svc.MapFor(c.coords, layout)

	// Views already handed out keep their own copy.
	info := *c.view.Info
	info.Map = mv
	c.view.Info = &info

	return mv, true
}
