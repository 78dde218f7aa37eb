package description

import "route-descriptor/internal/models"

// InstructionAggregator turns per-edge turn codes into turn-by-turn
// instructions. Every edge's length is credited to the next instruction to
// be emitted, so an instruction's distance covers everything since the
// previous one, including its own edge.
type InstructionAggregator struct {
	policy       models.TrailingPolicy
	instructions []models.Instruction
	current      models.Instruction
	open         bool
	pending      int
}

// NewInstructionAggregator creates an aggregator; capacity is a hint for the
// number of instructions expected
func NewInstructionAggregator(policy models.TrailingPolicy, capacity int) *InstructionAggregator {
	if policy == "" {
		policy = models.TrailingFold
	}
	return &InstructionAggregator{
		policy:       policy,
		instructions: make([]models.Instruction, 0, capacity),
	}
}

// Add consumes one edge. geometryIndex is the position of the edge's
// endpoint in the coordinate stream.
func (a *InstructionAggregator) Add(edge models.PathEdge, geometryIndex int) {
	a.pending += edge.Length
	if edge.Turn == models.TurnNone {
		return
	}

	a.close()
	a.current = models.Instruction{
		Turn:          edge.Turn,
		NameID:        edge.NameID,
		Distance:      a.pending,
		GeometryIndex: geometryIndex,
	}
	a.open = true
	a.pending = 0
}

func (a *InstructionAggregator) close() {
	if !a.open {
		return
	}
	a.current.Position = len(a.instructions)
	a.instructions = append(a.instructions, a.current)
	a.open = false
}

// Finish flushes the open instruction, settles the distance that followed
// it according to the trailing policy and returns the instructions in
// traversal order. destination and geometryIndex describe the arrival and
// are only used by TrailingArrive.
func (a *InstructionAggregator) Finish(destination models.PhantomEndpoint, geometryIndex int) []models.Instruction {
	switch a.policy {
	case models.TrailingFold:
		if a.open {
			a.current.Distance += a.pending
			a.pending = 0
		}
		a.close()
	case models.TrailingArrive:
		a.close()
		if a.pending > 0 {
			a.current = models.Instruction{
				Turn:          models.TurnReachedDestination,
				NameID:        destination.NameID,
				Distance:      a.pending,
				GeometryIndex: geometryIndex,
			}
			a.open = true
			a.pending = 0
			a.close()
		}
	default:
		a.close()
	}

	a.pending = 0
	return a.instructions
}
