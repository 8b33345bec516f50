package fetcher

import (
	"fmt"

	"github.com/zjrosen/leifetch/internal/entity"
)

// Labels are the externally configured strings shown by the widget.
type Labels struct {
	Search        string
	Empty         string
	InvalidLength string
}

// DefaultLabels returns the labels used when none are configured.
func DefaultLabels() Labels {
	return Labels{
		Search:        "Search",
		Empty:         "Please enter an LEI.",
		InvalidLength: "An LEI must be exactly 20 characters long.",
	}
}

// ErrorKind classifies the error currently shown.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindEmptyIdentifier
	KindInvalidLength
	KindLookupFailed
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindEmptyIdentifier:
		return "empty_identifier"
	case KindInvalidLength:
		return "invalid_length"
	case KindLookupFailed:
		return "lookup_failed"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Phase is the coarse view state derived from State.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseFailed
	PhaseLoaded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseFailed:
		return "failed"
	case PhaseLoaded:
		return "loaded"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is everything the widget renders. It is a plain value; the
// transition methods on Fetcher take a State and return the next one.
type State struct {
	// Identifier is the raw text typed by the user.
	Identifier string
	Loading    bool
	// Err is the message shown in the error region, "" when none.
	Err     string
	ErrKind ErrorKind
	// Entity is set once a lookup succeeds.
	Entity *entity.DisplayRecord

	// latest is the sequence number of the most recently issued request.
	latest uint64
}

// Phase reports the coarse state. Loading takes precedence because a
// validation error can be shown while a lookup is still pending.
func (s State) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseLoading
	case s.Err != "":
		return PhaseFailed
	case s.Entity != nil:
		return PhaseLoaded
	default:
		return PhaseIdle
	}
}

// Request is a validated lookup waiting to be executed.
type Request struct {
	Seq        uint64
	ID         string
	Identifier string
}

// Result is the outcome of executing a Request.
type Result struct {
	Request Request
	Record  entity.Record
	Err     error
}
