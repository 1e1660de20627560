package session

import (
	"slices"

	"github.com/joe/summarize-client/pkg/api"
)

// DefaultMethodHint is shown for a method without a dedicated hint.
const DefaultMethodHint = "Summarization method"

//nolint:gochecknoglobals // Fixed lookup table
var methodHints = map[api.Method]string{
	api.MethodNormal:           "Standard summarization method",
	api.MethodBusinessInsights: "Business summary focused on key metrics, financial data, and strategic insights",
}

// MethodHint returns the help text for id, or DefaultMethodHint when id is unknown.
func MethodHint(id api.Method) string {
	if hint, ok := methodHints[id]; ok {
		return hint
	}

	return DefaultMethodHint
}

// MethodSelector tracks which of the displayed methods is active.
// Exactly one method is active at any time.
type MethodSelector struct {
	methods []api.Method
	active  api.Method
}

// NewMethodSelector offers the displayed methods with initial active. An initial method
// outside the displayed set falls back to the first one.
func NewMethodSelector(initial api.Method) *MethodSelector {
	s := &MethodSelector{methods: api.DisplayedMethods()}
	s.active = s.methods[0]
	s.Select(initial)

	return s
}

// Select makes id the only active method. It returns false, changing nothing, when id
// is not one of the displayed methods.
func (s *MethodSelector) Select(id api.Method) bool {
	if !slices.Contains(s.methods, id) {
		return false
	}

	s.active = id

	return true
}

// Next activates the method after the current one, wrapping around.
func (s *MethodSelector) Next() api.Method {
	i := slices.Index(s.methods, s.active)
	s.active = s.methods[(i+1)%len(s.methods)]

	return s.active
}

// Active returns the active method.
func (s *MethodSelector) Active() api.Method {
	return s.active
}

// IsActive reports whether id is the active method.
func (s *MethodSelector) IsActive(id api.Method) bool {
	return s.active == id
}

// Hint returns the help text of the active method.
func (s *MethodSelector) Hint() string {
	return MethodHint(s.active)
}

// Methods returns the displayed methods in order.
func (s *MethodSelector) Methods() []api.Method {
	return slices.Clone(s.methods)
}
