package walkthrough

import (
	"github.com/charmbracelet/log"
)

// Engine owns the layout, the navigation cursor and the camera pose for one
// viewing session. All methods must be called from the host's frame
// goroutine: input handlers and Advance interleave but never overlap.
type Engine struct {
	cfg      Config
	factory  ExhibitFactory
	logger   *log.Logger
	smoother *Smoother

	plan     *Plan
	exhibits []ExhibitHandle
	tiers    []DetailTier
	cursor   *Cursor
	pose     CameraPose
	arrived  bool
}

type Option func(*Engine)

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns an engine with an empty gallery (intro waypoint only). Invalid
// config values fall back to defaults. factory may be nil, in which case
// exhibits have no handle.
func New(cfg Config, factory ExhibitFactory, opts ...Option) *Engine {
	cfg = cfg.sanitized()
	e := &Engine{
		cfg:      cfg,
		factory:  factory,
		logger:   log.Default(),
		smoother: NewSmoother(cfg.Smoothing),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Initialize(0)
	return e
}

// Initialize rebuilds the room, placements and waypoints for itemCount
// exhibits and puts the camera on the intro waypoint. A negative count is
// treated as zero.
func (e *Engine) Initialize(itemCount int) {
	if itemCount < 0 {
		e.logger.Warn("negative item count, using 0", "items", itemCount)
		itemCount = 0
	}

	e.plan = NewPlan(itemCount, e.cfg.Layout)
	e.exhibits = make([]ExhibitHandle, len(e.plan.Placements))
	e.tiers = make([]DetailTier, len(e.plan.Placements))
	if e.factory != nil {
		for i, p := range e.plan.Placements {
			e.exhibits[i] = e.factory.PlaceExhibit(p)
		}
	}

	e.cursor = NewCursor(len(e.plan.Waypoints), e.activate)
	e.JumpTo(0, true)

	counts := make([]any, 0, 2*len(e.plan.Allocations))
	for _, a := range e.plan.Allocations {
		counts = append(counts, a.Wall.ID.String(), a.Count)
	}
	e.logger.Info("gallery laid out",
		append([]any{
			"items", itemCount,
			"width", e.plan.Room.Width,
			"length", e.plan.Room.Length,
		}, counts...)...)
}

// Advance runs one frame of camera smoothing. It does nothing while locked,
// so the camera holds still behind a detail overlay.
func (e *Engine) Advance(dt float64) {
	if e.cursor.Locked() {
		return
	}
	arrived := e.smoother.Step(&e.pose, e.plan.Waypoint(e.cursor.Index()), dt)
	if arrived && !e.arrived {
		e.logger.Debug("arrived", "waypoint", e.cursor.Index())
	}
	e.arrived = arrived
}

func (e *Engine) Next() bool {
	return e.cursor.Next()
}

func (e *Engine) Previous() bool {
	return e.cursor.Previous()
}

// SetLocked is called by the detail overlay when it opens or closes.
func (e *Engine) SetLocked(locked bool) {
	if locked == e.cursor.Locked() {
		return
	}
	if locked {
		e.cursor.Lock()
	} else {
		e.cursor.Unlock()
	}
	e.logger.Debug("navigation lock", "locked", locked)
}

// JumpTo moves the cursor to i, clamped. With immediate the camera is placed
// on the waypoint instead of easing there.
func (e *Engine) JumpTo(i int, immediate bool) int {
	idx := e.cursor.JumpTo(i)
	if immediate {
		e.pose = PoseOf(e.plan.Waypoint(idx))
		e.arrived = true
	}
	return idx
}

func (e *Engine) CurrentWaypointIndex() int {
	return e.cursor.Index()
}

// CurrentExhibit returns the handle of the exhibit the current waypoint
// views. It reports false on the intro waypoint.
func (e *Engine) CurrentExhibit() (ExhibitHandle, bool) {
	wp := e.plan.Waypoint(e.cursor.Index())
	if !wp.HasExhibit() || e.exhibits[wp.Exhibit] == nil {
		return nil, false
	}
	return e.exhibits[wp.Exhibit], true
}

// CurrentTarget returns the waypoint the camera is easing toward.
func (e *Engine) CurrentTarget() Waypoint {
	return e.plan.Waypoint(e.cursor.Index())
}

func (e *Engine) WaypointCount() int   { return len(e.plan.Waypoints) }
func (e *Engine) Locked() bool         { return e.cursor.Locked() }
func (e *Engine) CanNext() bool        { return e.cursor.CanNext() }
func (e *Engine) CanPrevious() bool    { return e.cursor.CanPrevious() }
func (e *Engine) Pose() CameraPose     { return e.pose }
func (e *Engine) Arrived() bool        { return e.arrived }
func (e *Engine) Plan() *Plan          { return e.plan }
func (e *Engine) Room() RoomDimensions { return e.plan.Room }
func (e *Engine) Config() Config       { return e.cfg }

// Remaining returns the distance and angle between the pose and the target.
func (e *Engine) Remaining() (dist, angle float64) {
	return e.smoother.Remaining(e.pose, e.CurrentTarget())
}

// DetailTier reports whether the high-detail load for exhibit i has started.
func (e *Engine) DetailTier(i int) DetailTier {
	if i < 0 || i >= len(e.tiers) {
		return DetailPending
	}
	return e.tiers[i]
}

// activate starts the high-detail load of the exhibit viewed from waypoint
// index, the first time only.
func (e *Engine) activate(index int) {
	e.arrived = false
	wp := e.plan.Waypoint(index)
	e.logger.Debug("waypoint active", "waypoint", index, "exhibit", wp.Exhibit)
	if !wp.HasExhibit() || e.tiers[wp.Exhibit] == DetailLoaded {
		return
	}
	e.tiers[wp.Exhibit] = DetailLoaded
	if h := e.exhibits[wp.Exhibit]; h != nil {
		h.TriggerHighDetailLoad()
	}
}
