package domain

// ViewState is the single source of truth for which panels a page shows.
type ViewState int

const (
	Idle ViewState = iota
	Fetching
	ShowingResults
	ShowingError
)

func (s ViewState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Fetching:
		return "fetching"
	case ShowingResults:
		return "showing_results"
	case ShowingError:
		return "showing_error"
	default:
		return "unknown"
	}
}
