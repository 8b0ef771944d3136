package walkthrough

// Cursor walks an ordered list of waypoints. Locking freezes the index
// without changing it. A cursor is not safe for concurrent use; the host
// calls it from the same goroutine that runs the frame loop.
type Cursor struct {
	index  int
	count  int
	locked bool

	// onActivate runs after every successful move with the new index.
	onActivate func(index int)
}

// NewCursor returns a cursor at index 0. count is raised to 1 because the
// intro waypoint always exists.
func NewCursor(count int, onActivate func(index int)) *Cursor {
	if count < 1 {
		count = 1
	}
	return &Cursor{count: count, onActivate: onActivate}
}

func (c *Cursor) Index() int   { return c.index }
func (c *Cursor) Count() int   { return c.count }
func (c *Cursor) Locked() bool { return c.locked }

func (c *Cursor) Lock()   { c.locked = true }
func (c *Cursor) Unlock() { c.locked = false }

func (c *Cursor) CanNext() bool {
	return !c.locked && c.index < c.count-1
}

func (c *Cursor) CanPrevious() bool {
	return !c.locked && c.index > 0
}

// Next advances one waypoint. It reports false and changes nothing when
// locked or already on the last waypoint.
func (c *Cursor) Next() bool {
	if !c.CanNext() {
		return false
	}
	c.index++
	c.activate()
	return true
}

// Previous steps back one waypoint, with the same no-op rules as Next.
func (c *Cursor) Previous() bool {
	if !c.CanPrevious() {
		return false
	}
	c.index--
	c.activate()
	return true
}

// JumpTo moves to i clamped into range, ignoring the lock. It is meant for
// initialization and resume.
func (c *Cursor) JumpTo(i int) int {
	c.index = clampIndex(i, c.count)
	c.activate()
	return c.index
}

func (c *Cursor) activate() {
	if c.onActivate != nil {
		c.onActivate(c.index)
	}
}
