package mdp

import (
	"gonum.org/v1/gonum/mat"
)

// Operator applies one Bellman backward-induction step to a value function.
// The per-pair action values are held in a scratch vector reused across
// steps; the input value vector is never modified.
type Operator struct {
	problem *Problem
	scratch *mat.VecDense
}

// NewOperator constructs an Operator for the given problem.
func NewOperator(problem *Problem) *Operator {
	return &Operator{
		problem: problem,
		scratch: mat.NewVecDense(len(problem.Pairs), nil),
	}
}

// Step computes
//
//	value'(s) = max_a [ reward(s,a) + beta * sum_{s'} T(s,a,s') * value(s') ]
//
// and returns the updated value function along with the greedy action per
// state. Ties go to the lower-numbered action, so a state indifferent
// between holding and exercising reports Hold.
func (op *Operator) Step(value *mat.VecDense) (*mat.VecDense, []int) {
	p := op.problem

	op.scratch.MulVec(p.Transitions, value)
	op.scratch.AddScaledVec(p.Rewards, p.Discount, op.scratch)

	next := mat.NewVecDense(p.NumStates, nil)
	policy := make([]int, p.NumStates)
	seen := make([]bool, p.NumStates)
	for row, pair := range p.Pairs {
		actionValue := op.scratch.AtVec(row)
		if !seen[pair.State] || actionValue > next.AtVec(pair.State) {
			next.SetVec(pair.State, actionValue)
			policy[pair.State] = pair.Action
			seen[pair.State] = true
		}
	}
	return next, policy
}
