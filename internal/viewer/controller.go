package viewer

import (
	"image"

	"github.com/smasonuk/walkthrough"
)

const (
	buttonSize   = 48
	buttonMargin = 16
)

// controller turns input into engine calls and tracks the detail overlay.
// The overlay and the engine lock always change together.
type controller struct {
	engine      *walkthrough.Engine
	overlayOpen bool
}

func (c *controller) next() bool {
	return c.engine.Next()
}

func (c *controller) previous() bool {
	return c.engine.Previous()
}

// openDetail shows the overlay for the current exhibit. There is nothing to
// show on the intro waypoint.
func (c *controller) openDetail() bool {
	if c.overlayOpen || c.engine.CurrentWaypointIndex() == 0 {
		return false
	}
	c.overlayOpen = true
	c.engine.SetLocked(true)
	return true
}

func (c *controller) closeDetail() bool {
	if !c.overlayOpen {
		return false
	}
	c.overlayOpen = false
	c.engine.SetLocked(false)
	return true
}

// click handles a pointer press at (x, y) on a width x height screen. With
// the overlay open any click closes it; otherwise the nav buttons take
// precedence over opening the overlay.
func (c *controller) click(x, y, width, height int) {
	if c.overlayOpen {
		c.closeDetail()
		return
	}
	p := image.Pt(x, y)
	prev, next := navButtons(width, height)
	switch {
	case c.showPrevious() && p.In(prev):
		c.previous()
	case c.showNext() && p.In(next):
		c.next()
	default:
		c.openDetail()
	}
}

func (c *controller) showPrevious() bool {
	return c.engine.CanPrevious()
}

func (c *controller) showNext() bool {
	return c.engine.CanNext()
}

// navButtons returns the previous and next button rectangles, vertically
// centred at the left and right edges.
func navButtons(width, height int) (prev, next image.Rectangle) {
	y := (height - buttonSize) / 2
	prev = image.Rect(buttonMargin, y, buttonMargin+buttonSize, y+buttonSize)
	next = image.Rect(width-buttonMargin-buttonSize, y, width-buttonMargin, y+buttonSize)
	return prev, next
}
