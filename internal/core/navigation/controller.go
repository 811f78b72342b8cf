package navigation

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/campus/internal/core/notify"
)

var (
	// ErrSameView is returned when navigating to the current view. Callers
	// should treat it as a no-op.
	ErrSameView = errors.New("already on view")
	// ErrBusy is returned while another transition is in flight.
	ErrBusy = errors.New("navigation already in progress")
	// ErrPayloadMismatch is returned when the target view does not accept the
	// supplied payload.
	ErrPayloadMismatch = errors.New("payload not accepted by view")
)

// State is a snapshot of the controller. Loading is true exactly when
// Pending is set.
type State struct {
	Current    View
	Pending    View
	Loading    bool
	Descriptor Descriptor
	Course     *CoursePayload
}

// Transition describes an accepted navigation request. The caller waits for
// Delay and then calls Commit with Token.
type Transition struct {
	Token      uint64
	From       View
	Target     View
	Descriptor Descriptor
	Delay      time.Duration
}

// Options configures a Controller.
type Options struct {
	// Delayer picks the simulated load time. Defaults to UniformDelay{500ms, 1500ms}.
	Delayer Delayer
	// Notifications receives the loading and ready notifications. Optional.
	Notifications *notify.Store
	Logger        zerolog.Logger
}

// Controller is the view navigation state machine. It has two states:
// idle on Current, and transitioning from Current to Pending. Overlapping
// requests are rejected with ErrBusy rather than queued.
type Controller struct {
	mu         sync.Mutex
	current    View
	pending    View
	payload    Payload
	descriptor Descriptor
	course     *CoursePayload
	token      uint64

	delayer   Delayer
	notifier  *notify.Store
	logger    zerolog.Logger
	observers []func(State)
}

// NewController creates a controller idle on initial.
func NewController(initial View, opts Options) *Controller {
	delayer := opts.Delayer
	if delayer == nil {
		delayer = UniformDelay{Min: 500 * time.Millisecond, Max: 1500 * time.Millisecond}
	}

	return &Controller{
		current:  initial,
		delayer:  delayer,
		notifier: opts.Notifications,
		logger:   opts.Logger,
	}
}

// OnChange registers fn to be called after every state change.
func (c *Controller) OnChange(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Current returns the committed view.
func (c *Controller) Current() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Navigate requests a transition to target. On success the controller is
// transitioning and the returned Transition must be committed after its
// Delay.
func (c *Controller) Navigate(target View, payload Payload) (Transition, error) {
	c.mu.Lock()

	if c.pending != "" {
		pending := c.pending
		c.mu.Unlock()
		return Transition{}, fmt.Errorf("navigate to %s while loading %s: %w", target, pending, ErrBusy)
	}
	if target == c.current {
		c.mu.Unlock()
		return Transition{}, ErrSameView
	}
	if !Accepts(payload, target) {
		c.mu.Unlock()
		return Transition{}, fmt.Errorf("navigate to %s: %w", target, ErrPayloadMismatch)
	}

	c.token++
	c.pending = target
	c.payload = payload
	c.descriptor = DescriptorFor(target)

	tr := Transition{
		Token:      c.token,
		From:       c.current,
		Target:     target,
		Descriptor: c.descriptor,
		Delay:      c.delayer.Next(),
	}
	state := c.snapshot()
	observers := c.observers
	c.mu.Unlock()

	c.logger.Debug().
		Str("from", string(tr.From)).
		Str("to", string(target)).
		Dur("delay", tr.Delay).
		Bool("known", target.Known()).
		Msg("navigation started")

	if IsHeavy(target) && c.notifier != nil {
		c.notifier.Show(notify.Input{
			Severity: notify.SeverityInfo,
			Title:    tr.Descriptor.Title,
			Message:  tr.Descriptor.Description,
			Category: notify.CategorySystem,
		})
	}

	notifyObservers(observers, state)
	return tr, nil
}

// Commit finishes the transition identified by token. It returns false when
// the token is stale, i.e. the transition was cancelled or superseded.
func (c *Controller) Commit(token uint64) (State, bool) {
	c.mu.Lock()

	if c.pending == "" || token != c.token {
		state := c.snapshot()
		c.mu.Unlock()
		c.logger.Debug().Uint64("token", token).Msg("ignoring stale navigation commit")
		return state, false
	}

	c.current = c.pending
	if course, ok := c.payload.(CoursePayload); ok {
		c.course = &course
	} else if !Accepts(CoursePayload{}, c.current) {
		c.course = nil
	}
	c.pending = ""
	c.payload = nil
	c.descriptor = Descriptor{}

	current := c.current
	state := c.snapshot()
	observers := c.observers
	c.mu.Unlock()

	c.logger.Info().Str("view", string(current)).Msg("navigation committed")

	if current == ViewVirtualClassroom && c.notifier != nil {
		c.notifier.Show(notify.Input{
			Severity: notify.SeveritySuccess,
			Title:    "Virtual Classroom Ready!",
			Message:  "Check your camera and microphone, then join the session.",
			Category: notify.CategoryCourse,
		})
	}

	notifyObservers(observers, state)
	return state, true
}

// Cancel abandons the in-flight transition, if any. A later Commit for its
// token is ignored.
func (c *Controller) Cancel() {
	c.mu.Lock()
	if c.pending == "" {
		c.mu.Unlock()
		return
	}

	c.logger.Debug().Str("pending", string(c.pending)).Msg("navigation cancelled")

	c.token++
	c.pending = ""
	c.payload = nil
	c.descriptor = Descriptor{}
	state := c.snapshot()
	observers := c.observers
	c.mu.Unlock()

	notifyObservers(observers, state)
}

// snapshot must be called with c.mu held.
func (c *Controller) snapshot() State {
	s := State{
		Current:    c.current,
		Pending:    c.pending,
		Loading:    c.pending != "",
		Descriptor: c.descriptor,
	}
	if c.course != nil {
		course := *c.course
		s.Course = &course
	}
	return s
}

func notifyObservers(observers []func(State), s State) {
	for _, fn := range observers {
		fn(s)
	}
}
