package types

// AddOutcome reports what an Add did with the word.
type AddOutcome int

const (
	// Added means the word was appended and persisted.
	Added AddOutcome = iota + 1
	// AlreadyExists means the word was present; nothing was written.
	AlreadyExists
)

// String returns the outcome name.
func (o AddOutcome) String() string {
	switch o {
	case Added:
		return "added"
	case AlreadyExists:
		return "already exists"
	default:
		return "unknown"
	}
}

// RemoveOutcome reports what a Remove did with the word.
type RemoveOutcome int

const (
	// Removed means the word was deleted and the list persisted.
	Removed RemoveOutcome = iota + 1
	// NotFound means the word was absent; nothing was written.
	NotFound
)

// String returns the outcome name.
func (o RemoveOutcome) String() string {
	switch o {
	case Removed:
		return "removed"
	case NotFound:
		return "not found"
	default:
		return "unknown"
	}
}
