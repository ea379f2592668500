package domain

// LoadState is the lifecycle state of a module descriptor.
// The only transitions are NotLoaded -> Loading -> Loaded; there is no
// transition out of Loaded.
type LoadState int32

const (
	// NotLoaded means the snapshot has not been read yet.
	NotLoaded LoadState = iota
	// Loading means a load is in progress. Recursive member references
	// observed mid-load see this state instead of retriggering a load.
	Loading
	// Loaded is terminal. A Loaded module may still be empty if its snapshot
	// was missing or corrupt.
	Loaded
)

// String returns a readable state name.
func (s LoadState) String() string {
	switch s {
	case NotLoaded:
		return "NotLoaded"
	case Loading:
		return "Loading"
	case Loaded:
		return "Loaded"
	default:
		return "Invalid"
	}
}

// LoadOutcome classifies how a load attempt concluded. It exists for
// diagnostics and tests; the query API only ever reports "Loaded, possibly
// empty" regardless of outcome.
type LoadOutcome uint8

const (
	// OutcomeNone means no load has completed yet.
	OutcomeNone LoadOutcome = iota
	// OutcomeSuccess means the snapshot decoded and members were populated.
	OutcomeSuccess
	// OutcomeCorrupt means the snapshot was malformed or structurally invalid.
	OutcomeCorrupt
	// OutcomeSuppressed means a transient I/O failure (missing or locked
	// snapshot) was absorbed and the module was marked Loaded empty.
	OutcomeSuppressed
)
