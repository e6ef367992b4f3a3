package problems

import (
	"math/rand"

	"github.com/evoengine/evo/codec"
	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
)

// NQueens builds the permutation-free N-Queens benchmark: an int-vector of
// length n where position i holds the row of the queen in column i (range
// [0,n) so two queens may legally collide, unlike a PermutationChromosome
// encoding which would forbid row collisions by construction and trivially
// solve half the problem). Fitness counts conflicting pairs (same row or
// same diagonal); 0 is a valid board.
func NQueens(n int) codec.Problem[[]int64] {
	vc := vectorCodec[int64]{
		length:  n,
		variant: genome.Int,
		newGene: func(rng *rand.Rand) genome.Gene {
			return genome.NewIntGene(rng, [2]int64{0, int64(n - 1)}, [2]int64{0, int64(n - 1)})
		},
		element: func(g genome.Gene) int64 { return g.(*genome.IntGene).Allele },
	}
	return nQueensCodec{vc}
}

type nQueensCodec struct{ vectorCodec[int64] }

// Conflicts counts the row/diagonal-sharing pairs in a decoded board,
// exported so the S3 property test can check a zero-score individual
// actually decodes to a legal board.
func Conflicts(board []int64) int {
	conflicts := 0
	for i := 0; i < len(board); i++ {
		for j := i + 1; j < len(board); j++ {
			if board[i] == board[j] {
				conflicts++
				continue
			}
			if abs64(board[i]-board[j]) == int64(j-i) {
				conflicts++
			}
		}
	}
	return conflicts
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func (c nQueensCodec) Evaluate(g *genome.Genotype) objective.Score {
	return objective.Score{float64(Conflicts(c.vectorCodec.Decode(g)))}
}

// NQueensObjective is Single(Minimize).
func NQueensObjective() objective.Objective { return scalarObjective(false) }
