package coverage

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGraph is returned when a nil *graph.Graph is supplied.
	ErrNilGraph = errors.New("coverage: graph is nil")

	// ErrNodeOutOfRange is returned when an initial member is not a vertex.
	ErrNodeOutOfRange = errors.New("coverage: node out of range")
)

// Objective selects the scoring model maintained by a State.
type Objective int

const (
	// Deficit is the local-search objective: degree mass plus n per uncovered vertex.
	Deficit Objective = iota
	// Coverage is the summed neighbour-coverage ratio used by tabu search.
	Coverage
)

// String implements fmt.Stringer.
func (o Objective) String() string {
	switch o {
	case Deficit:
		return "deficit"
	case Coverage:
		return "coverage"
	default:
		return fmt.Sprintf("objective(%d)", int(o))
	}
}

// Reason explains why an operator was rejected.
type Reason uint8

const (
	// ReasonNone marks an applied operator.
	ReasonNone Reason = iota
	// ReasonPresent: the node to insert is already selected.
	ReasonPresent
	// ReasonAbsent: the node to remove is not selected.
	ReasonAbsent
	// ReasonOutOfRange: a node id is not a vertex of the graph.
	ReasonOutOfRange
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonPresent:
		return "already present"
	case ReasonAbsent:
		return "not present"
	case ReasonOutOfRange:
		return "out of range"
	default:
		return fmt.Sprintf("reason(%d)", uint8(r))
	}
}

// Outcome is the tagged result of an operator: Applied with the objective
// delta, or Rejected with a Reason.
type Outcome struct {
	// Delta is Score() after minus Score() before; zero when rejected.
	Delta float64
	// Reason is ReasonNone iff the operator was applied.
	Reason Reason
}

// Applied reports whether the operator changed the State.
func (o Outcome) Applied() bool { return o.Reason == ReasonNone }

func applied(delta float64) Outcome { return Outcome{Delta: delta} }

func rejected(r Reason) Outcome { return Outcome{Reason: r} }

// MoveKind enumerates the neighbourhood operators.
type MoveKind uint8

const (
	// MoveAdd inserts Move.In.
	MoveAdd MoveKind = iota
	// MoveRemove deletes Move.Out.
	MoveRemove
	// MoveSwitch deletes Move.Out and inserts Move.In.
	MoveSwitch
)

// String implements fmt.Stringer.
func (k MoveKind) String() string {
	switch k {
	case MoveAdd:
		return "add"
	case MoveRemove:
		return "remove"
	case MoveSwitch:
		return "switch"
	default:
		return fmt.Sprintf("move(%d)", uint8(k))
	}
}

// Move is a single neighbourhood step. Out is ignored for MoveAdd, In for MoveRemove.
type Move struct {
	Kind MoveKind
	Out  int
	In   int
}

// Add returns the move inserting v.
func Add(v int) Move { return Move{Kind: MoveAdd, Out: -1, In: v} }

// Remove returns the move deleting v.
func Remove(v int) Move { return Move{Kind: MoveRemove, Out: v, In: -1} }

// Switch returns the move replacing out with in.
func Switch(out, in int) Move { return Move{Kind: MoveSwitch, Out: out, In: in} }

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	switch m.Kind {
	case MoveAdd:
		return Remove(m.In)
	case MoveRemove:
		return Add(m.Out)
	default:
		return Switch(m.In, m.Out)
	}
}

// String implements fmt.Stringer.
func (m Move) String() string {
	switch m.Kind {
	case MoveAdd:
		return fmt.Sprintf("add(%d)", m.In)
	case MoveRemove:
		return fmt.Sprintf("remove(%d)", m.Out)
	default:
		return fmt.Sprintf("switch(%d→%d)", m.Out, m.In)
	}
}
