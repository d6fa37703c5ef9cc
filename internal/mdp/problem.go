// Package mdp encodes the option-exercise decision as a finite Markov
// decision process and provides the backward-induction operator that
// solves it.
package mdp

import (
	"github.com/iwvelando/option-pricer/internal/lattice"
	"github.com/iwvelando/option-pricer/pkg/mathutil"
	"gonum.org/v1/gonum/mat"
)

// Actions available in each state. The absorbing exercised state only
// permits Hold, which acts as its no-op.
const (
	Hold = iota
	Exercise
)

// Pair identifies one feasible (state, action) combination.
type Pair struct {
	State  int
	Action int
}

// Problem is the immutable MDP encoding of the American put. States are the
// price-grid indices plus one absorbing exercised state; rows of Rewards and
// Transitions are indexed by Pairs, row-major over (state, action) with the
// infeasible exercise-in-exercised-state pair dropped.
type Problem struct {
	NumStates   int
	Absorbing   int // index of the exercised state
	Pairs       []Pair
	Rewards     *mat.VecDense // immediate reward per pair
	Transitions *mat.Dense    // len(Pairs) x NumStates probabilities
	Discount    float64
}

// triple is one explicit (row, col, value) probability entry.
type triple struct {
	row, col int
	prob     float64
}

// transitionBuilder accumulates probability triples and materializes them
// once into a dense matrix. Entries landing on the same cell accumulate.
type transitionBuilder struct {
	rows, cols int
	triples    []triple
}

func newTransitionBuilder(rows, cols int) *transitionBuilder {
	return &transitionBuilder{rows: rows, cols: cols}
}

func (b *transitionBuilder) add(row, col int, prob float64) {
	b.triples = append(b.triples, triple{row: row, col: col, prob: prob})
}

func (b *transitionBuilder) build() *mat.Dense {
	m := mat.NewDense(b.rows, b.cols, nil)
	for _, t := range b.triples {
		m.Set(t.row, t.col, m.At(t.row, t.col)+t.prob)
	}
	return m
}

// NewPutProblem encodes the lattice as the put-exercise MDP.
//
// Holding at grid index i moves to min(i+1, last) with the risk-neutral
// up-probability and to max(i-1, 0) otherwise, so the extreme grid points
// reflect. Exercising moves deterministically to the absorbing state and
// pays the intrinsic value, which is deliberately not floored at zero; the
// solver never prefers a negative exercise payoff over holding, whose
// continuation value is bounded below by zero.
func NewPutProblem(model *lattice.Model) *Problem {
	gridSize := len(model.Prices)
	numStates := gridSize + 1
	absorbing := gridSize
	last := gridSize - 1

	pairs := make([]Pair, 0, 2*gridSize+1)
	for s := 0; s < gridSize; s++ {
		pairs = append(pairs, Pair{State: s, Action: Hold}, Pair{State: s, Action: Exercise})
	}
	pairs = append(pairs, Pair{State: absorbing, Action: Hold})

	rewards := mat.NewVecDense(len(pairs), nil)
	builder := newTransitionBuilder(len(pairs), numStates)
	for row, pair := range pairs {
		switch {
		case pair.State == absorbing:
			builder.add(row, absorbing, 1)
		case pair.Action == Exercise:
			rewards.SetVec(row, model.IntrinsicValue(model.Prices[pair.State]))
			builder.add(row, absorbing, 1)
		default:
			builder.add(row, mathutil.ClampIndex(pair.State+1, last), model.UpProb)
			builder.add(row, mathutil.ClampIndex(pair.State-1, last), 1-model.UpProb)
		}
	}

	return &Problem{
		NumStates:   numStates,
		Absorbing:   absorbing,
		Pairs:       pairs,
		Rewards:     rewards,
		Transitions: builder.build(),
		Discount:    model.Discount,
	}
}
