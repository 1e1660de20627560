// Package session is the interaction state machine of the summarize client.
//
// A Session owns every piece of UI state: the input text and its live metrics, the active
// method, the view state, the rendered result and the analytics overlay. It never touches
// the terminal and never blocks on the network. Events go in through Dispatch; requests
// that must run asynchronously come back out as Commands, and their outcomes are fed back
// in as further events. The host (the bubbletea program or a test) provides the single
// goroutine all of this runs on.
package session

// ViewState is the mutually exclusive mode of the main panel.
type ViewState int

// View states.
const (
	StateEmpty ViewState = iota
	StateLoading
	StateError
	StateResults
)

// String returns the state name
func (s ViewState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateResults:
		return "results"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the four view states.
func (s ViewState) Valid() bool {
	return s >= StateEmpty && s <= StateResults
}

// ViewStates returns all view states in display order.
func ViewStates() []ViewState {
	return []ViewState{StateEmpty, StateLoading, StateError, StateResults}
}

// ViewStateController shows exactly one view at a time.
// The zero value is ready to use and starts in StateEmpty.
type ViewStateController struct {
	state ViewState
}

// NewViewStateController returns a controller in StateEmpty.
func NewViewStateController() *ViewStateController {
	return &ViewStateController{state: StateEmpty}
}

// SetState makes state the only visible view. Setting the current state again is a no-op.
// Unknown states are rejected and leave the current view in place.
func (c *ViewStateController) SetState(state ViewState) bool {
	if !state.Valid() {
		return false
	}

	c.state = state

	return true
}

// State returns the current view state.
func (c *ViewStateController) State() ViewState {
	return c.state
}

// Visible reports whether the view for state is shown.
func (c *ViewStateController) Visible(state ViewState) bool {
	return c.state == state
}

// VisibleViews lists the shown views; it always has exactly one element.
func (c *ViewStateController) VisibleViews() []ViewState {
	visible := make([]ViewState, 0, 1)

	for _, state := range ViewStates() {
		if c.Visible(state) {
			visible = append(visible, state)
		}
	}

	return visible
}
