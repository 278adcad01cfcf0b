package camera

import (
	"fmt"
	"log"
	"sync"
)

// Mode identifies which subsystem owns the camera pose this frame.
type Mode int

const (
	// ModeIdle hands the pose to the idle animation (when one is attached).
	ModeIdle Mode = iota

	// ModeOrbit hands the pose to orbit-style user controls.
	ModeOrbit

	// ModeFly hands the pose to free-flight user controls.
	ModeFly

	// ModeTransitioning gives a pose transition tween exclusive write
	// access. Cannot be re-entered while active.
	ModeTransitioning
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeOrbit:
		return "orbit"
	case ModeFly:
		return "fly"
	case ModeTransitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}

// IsUserControl reports whether the mode is one of the user-driven control
// modes.
//
// Returns:
//   - bool: true for ModeOrbit and ModeFly
func (m Mode) IsUserControl() bool {
	return m == ModeOrbit || m == ModeFly
}

// modeTransitions is the legal transition table. Transitioning may only be
// exited through ExitTransitioning, never re-entered into itself.
var modeTransitions = map[Mode][]Mode{
	ModeIdle:          {ModeOrbit, ModeFly, ModeTransitioning},
	ModeOrbit:         {ModeIdle, ModeFly, ModeTransitioning},
	ModeFly:           {ModeIdle, ModeOrbit, ModeTransitioning},
	ModeTransitioning: {ModeIdle, ModeOrbit, ModeFly},
}

// ModeObserver receives mode change notifications. Any field may be nil.
type ModeObserver struct {
	// OnEnter fires after a mode becomes active.
	OnEnter func(mode Mode, trigger string)

	// OnExit fires after a mode stops being active.
	OnExit func(mode Mode, trigger string)

	// OnChange fires after every successful transition.
	OnChange func(from, to Mode, trigger string)
}

// modeMachineImpl is the single implementation of ModeMachine.
type modeMachineImpl struct {
	mu *sync.Mutex

	current Mode

	// preTransition remembers the mode that was active when transitioning
	// began, for restoration on exit.
	preTransition Mode
	savedValid    bool

	// preferred is the last user-declared control mode, used when the
	// saved pre-transition state cannot be restored.
	preferred Mode

	observers []ModeObserver
}

// ModeMachine enforces which control mode is active and therefore which
// component may write the camera pose this frame. Exactly one mode is
// active at any instant. Illegal transitions are rejected without changing
// state.
//
// Thread-safe. Observer callbacks run outside the lock over a snapshot of
// the observer list, so observers may themselves trigger transitions.
type ModeMachine interface {
	// Mode returns the active mode.
	//
	// Returns:
	//   - Mode: the current mode
	Mode() Mode

	// Transition moves to another mode. Transitioning to the current mode
	// succeeds as a no-op without notifying observers. Transitions outside
	// the legal table fail, log, and leave the state unchanged.
	//
	// Parameters:
	//   - to: the destination mode
	//   - trigger: short description of what caused the transition (logged
	//     and passed to observers)
	//
	// Returns:
	//   - error: error when the transition is not legal
	Transition(to Mode, trigger string) error

	// EnterTransitioning moves to ModeTransitioning, recording the current
	// mode for later restoration. Fails when already transitioning.
	//
	// Parameters:
	//   - trigger: short description of what caused the transition
	//
	// Returns:
	//   - error: error when already transitioning
	EnterTransitioning(trigger string) error

	// ExitTransitioning leaves ModeTransitioning, restoring the saved
	// pre-transition mode when it was idle or a user-control mode, and the
	// preferred user-control mode otherwise.
	//
	// Parameters:
	//   - trigger: short description of what caused the exit
	//
	// Returns:
	//   - Mode: the mode now active
	//   - error: error when not currently transitioning
	ExitTransitioning(trigger string) (Mode, error)

	// SetUserControlMode declares the preferred user-control mode (orbit or
	// fly). When the other control mode is currently active, the machine
	// re-transitions live.
	//
	// Parameters:
	//   - m: ModeOrbit or ModeFly
	//
	// Returns:
	//   - error: error when m is not a user-control mode
	SetUserControlMode(m Mode) error

	// UserControlMode returns the preferred user-control mode.
	//
	// Returns:
	//   - Mode: ModeOrbit or ModeFly
	UserControlMode() Mode

	// CanApplyIdlePose reports whether an idle animation may write the pose
	// this frame. True only in ModeIdle.
	//
	// Returns:
	//   - bool: true when idle pose blending is permitted
	CanApplyIdlePose() bool

	// AddObserver registers an observer for mode change notifications.
	//
	// Parameters:
	//   - obs: the observer to add
	AddObserver(obs ModeObserver)
}

var _ ModeMachine = &modeMachineImpl{}

// NewModeMachine creates a ModeMachine starting in ModeIdle with ModeOrbit
// as the preferred user-control mode.
//
// Returns:
//   - ModeMachine: the newly created machine
func NewModeMachine() ModeMachine {
	return &modeMachineImpl{
		mu:        &sync.Mutex{},
		current:   ModeIdle,
		preferred: ModeOrbit,
	}
}

func (m *modeMachineImpl) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *modeMachineImpl) Transition(to Mode, trigger string) error {
	m.mu.Lock()
	if to == m.current {
		m.mu.Unlock()
		return nil
	}
	if !transitionAllowed(m.current, to) {
		from := m.current
		m.mu.Unlock()
		log.Printf("camera: rejected mode transition %s -> %s (%s)", from, to, trigger)
		return fmt.Errorf("illegal mode transition %s -> %s", from, to)
	}
	from := m.current
	m.current = to
	obs := append([]ModeObserver(nil), m.observers...)
	m.mu.Unlock()

	notify(obs, from, to, trigger)
	return nil
}

func (m *modeMachineImpl) EnterTransitioning(trigger string) error {
	m.mu.Lock()
	if m.current == ModeTransitioning {
		m.mu.Unlock()
		log.Printf("camera: rejected re-entrant transitioning (%s)", trigger)
		return fmt.Errorf("already transitioning")
	}
	from := m.current
	m.preTransition = from
	m.savedValid = true
	m.current = ModeTransitioning
	obs := append([]ModeObserver(nil), m.observers...)
	m.mu.Unlock()

	notify(obs, from, ModeTransitioning, trigger)
	return nil
}

func (m *modeMachineImpl) ExitTransitioning(trigger string) (Mode, error) {
	m.mu.Lock()
	if m.current != ModeTransitioning {
		cur := m.current
		m.mu.Unlock()
		return cur, fmt.Errorf("not transitioning (current mode %s)", cur)
	}
	to := m.preferred
	if m.savedValid && (m.preTransition == ModeIdle || m.preTransition.IsUserControl()) {
		to = m.preTransition
	}
	m.savedValid = false
	m.current = to
	obs := append([]ModeObserver(nil), m.observers...)
	m.mu.Unlock()

	notify(obs, ModeTransitioning, to, trigger)
	return to, nil
}

func (m *modeMachineImpl) SetUserControlMode(mode Mode) error {
	if !mode.IsUserControl() {
		return fmt.Errorf("%s is not a user-control mode", mode)
	}
	m.mu.Lock()
	m.preferred = mode
	liveSwitch := m.current.IsUserControl() && m.current != mode
	m.mu.Unlock()

	if liveSwitch {
		return m.Transition(mode, "user control mode change")
	}
	return nil
}

func (m *modeMachineImpl) UserControlMode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.preferred
}

func (m *modeMachineImpl) CanApplyIdlePose() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current == ModeIdle
}

func (m *modeMachineImpl) AddObserver(obs ModeObserver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, obs)
}

// transitionAllowed checks the legal transition table.
func transitionAllowed(from, to Mode) bool {
	for _, t := range modeTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// notify dispatches observer callbacks over a snapshot of the observer
// list, outside the machine's lock.
func notify(observers []ModeObserver, from, to Mode, trigger string) {
	for _, o := range observers {
		if o.OnExit != nil {
			o.OnExit(from, trigger)
		}
	}
	for _, o := range observers {
		if o.OnEnter != nil {
			o.OnEnter(to, trigger)
		}
	}
	for _, o := range observers {
		if o.OnChange != nil {
			o.OnChange(from, to, trigger)
		}
	}
}
