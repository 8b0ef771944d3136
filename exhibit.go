package walkthrough

// ExhibitHandle is the renderable side of one exhibit, owned by the scene.
type ExhibitHandle interface {
	// TriggerHighDetailLoad starts loading the full-resolution asset. It
	// must not block; failures are the handle's own concern.
	TriggerHighDetailLoad()
}

// ExhibitFactory turns a placement into a renderable exhibit.
type ExhibitFactory interface {
	PlaceExhibit(p Placement) ExhibitHandle
}

type ExhibitFactoryFunc func(p Placement) ExhibitHandle

func (f ExhibitFactoryFunc) PlaceExhibit(p Placement) ExhibitHandle {
	return f(p)
}

// DetailTier tracks whether an exhibit's high-detail load has been started.
type DetailTier int

const (
	DetailPending DetailTier = iota
	DetailLoaded
)

func (t DetailTier) String() string {
	if t == DetailLoaded {
		return "loaded"
	}
	return "pending"
}
