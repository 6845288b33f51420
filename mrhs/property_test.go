package mrhs_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"golang.org/x/exp/rand"

	"github.com/smilkos/mrhs-solver/gf2"
	"github.com/smilkos/mrhs-solver/mrhs"
)

// TestEchelonizeAReproducesEchelonizedM is testable property #4 run over
// randomly generated block shapes instead of one fixed example: for any
// n/block-count/width/rhs-count combination, applying the recorded
// transform A to a copy of the pre-echelonization M, then the recorded
// column permutation, must reproduce the echelonized M exactly.
func TestEchelonizeAReproducesEchelonizedM(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("A reconstructs echelonized M", prop.ForAll(
		func(seed uint64, nRaw, mRaw, lRaw, kRaw uint8) bool {
			n := 1 + int(nRaw%10)
			nblocks := 1 + int(mRaw%3)
			l := 1 + int(lRaw%6)
			k := 1 + int(kRaw%4)

			sys, err := mrhs.CreateFixed(n, nblocks, l, k)
			if err != nil {
				return true
			}
			rng := rand.New(rand.NewSource(seed))
			mrhs.FillRandom(sys, rng)

			original := sys.Clone()
			res := mrhs.Echelonize(sys, true)
			if res.A == nil {
				return false
			}

			for bi, m := range sys.M {
				for row := 0; row < m.NRows(); row++ {
					var reconstructed gf2.Block
					arow := res.A.Row(row)
					for src := 0; src < original.N; src++ {
						if arow.Get(src) {
							reconstructed ^= original.M[bi].Row(src)
						}
					}
					var permuted gf2.Block
					for c, orig := range res.ColumnPerm[bi] {
						permuted = permuted.With(c, reconstructed.Test(orig))
					}
					reconstructed = permuted
					if reconstructed != m.Row(row) {
						return false
					}
				}
			}
			return true
		},
		gen.UInt64(),
		gen.UInt8(),
		gen.UInt8(),
		gen.UInt8(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}
