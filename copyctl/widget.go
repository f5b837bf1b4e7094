package copyctl

import "context"

// Button labels for the idle and acknowledged states.
const (
	LabelIdle   = "Copy CA"
	LabelCopied = "Copied!"
)

// Surface identifies an activation surface of a copy widget.
type Surface int

const (
	// SurfaceCard is the outer card region.
	SurfaceCard Surface = iota
	// SurfaceButton is the inner button nested inside the card.
	SurfaceButton
)

func (s Surface) String() string {
	switch s {
	case SurfaceCard:
		return "card"
	case SurfaceButton:
		return "button"
	}
	return "unknown"
}

// Event is an activation travelling from the innermost surface outward.
type Event struct {
	Target  Surface
	stopped bool
}

// StopPropagation keeps the event from reaching enclosing surfaces.
func (e *Event) StopPropagation() { e.stopped = true }

// Stopped reports whether propagation was stopped.
func (e *Event) Stopped() bool { return e.stopped }

// Widget binds the card and button surfaces to one Controller.
type Widget struct {
	ctl *Controller
}

// NewWidget mounts a widget on ctl.
func NewWidget(ctl *Controller) *Widget {
	return &Widget{ctl: ctl}
}

// Controller returns the bound controller.
func (w *Widget) Controller() *Controller { return w.ctl }

// Display returns the shortened contract address shown on the card.
func (w *Widget) Display() string { return Shorten(w.ctl.Source()) }

// Label is the text on the inner button.
func (w *Widget) Label() string {
	if w.ctl.Acknowledged() {
		return LabelCopied
	}
	return LabelIdle
}

// Activate dispatches an activation on target. The event bubbles from
// the button to the card; the button handler stops it, so each
// activation issues exactly one copy request.
func (w *Widget) Activate(ctx context.Context, target Surface) *Event {
	ev := &Event{Target: target}
	path := []Surface{SurfaceCard}
	if target == SurfaceButton {
		path = []Surface{SurfaceButton, SurfaceCard}
	}
	for _, s := range path {
		if ev.stopped {
			break
		}
		w.handle(ctx, s, ev)
	}
	return ev
}

func (w *Widget) handle(ctx context.Context, s Surface, ev *Event) {
	switch s {
	case SurfaceButton:
		ev.StopPropagation()
		w.ctl.RequestCopy(ctx)
	case SurfaceCard:
		w.ctl.RequestCopy(ctx)
	}
}

// KeyDown activates the card for Enter and Space, matching a native
// button. Other keys are ignored. It reports whether the key activated.
func (w *Widget) KeyDown(ctx context.Context, key string) bool {
	switch key {
	case "Enter", " ", "Space":
		w.Activate(ctx, SurfaceCard)
		return true
	}
	return false
}

// Hide parks the widget without tearing it down. A later activation
// copies again.
func (w *Widget) Hide() { w.ctl.Suspend() }

// Unmount closes the controller.
func (w *Widget) Unmount() { w.ctl.Close() }
