package shared

// PageState reports how a page load settled. A page enters loading when its
// fetches start and always settles once every fetch has returned; individual
// failures degrade the page to partial instead of failing it.
type PageState string

const (
	// StateReady means every fetch for the page succeeded.
	StateReady PageState = "ready"
	// StatePartial means at least one fetch failed and its collection is
	// empty; the page still renders with empty-state messaging.
	StatePartial PageState = "partial"
)

// Combine degrades to partial when any input state is partial.
func Combine(states ...PageState) PageState {
	for _, s := range states {
		if s == StatePartial {
			return StatePartial
		}
	}
	return StateReady
}
