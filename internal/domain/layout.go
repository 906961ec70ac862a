package domain

// Fixed design values of the page layout, in CSS pixels.
const (
	Breakpoint           = 768
	BorderWidth          = 2
	PaddingOrMarginWidth = 16 // base font size of the style sheet
)

// Layout carries the element widths measured by the browser.
//   - BodyWidth selects the narrow or wide formula
//   - ContainerWidth is the weather information container
//   - SiblingWidth is the weather text block next to the map (wide layout only)
type Layout struct {
	BodyWidth      float64
	ContainerWidth float64
	SiblingWidth   float64
}

// DefaultLayout is used when the client did not report its measurements.
var DefaultLayout = Layout{
	BodyWidth:      1024,
	ContainerWidth: 960,
	SiblingWidth:   320,
}

// Narrow reports whether the narrow (stacked) formula applies.
func (l Layout) Narrow() bool {
	return l.BodyWidth < Breakpoint
}

// MapWidth returns the pixel width available to the map image.
//
// Narrow: container minus its margin (one unit), padding on both sides
// (two units) and border on both sides.
// Wide: additionally minus the sibling block and the image's left margin.
func (l Layout) MapWidth() int {
	if l.Narrow() {
		return int(l.ContainerWidth - PaddingOrMarginWidth*3 - BorderWidth*2)
	}
	return int(l.ContainerWidth - l.SiblingWidth - PaddingOrMarginWidth*4 - BorderWidth*2)
}

// Static map image ready to be assigned to the page's image element.
type MapView struct {
	URL    string
	Width  int
	Height int
}
