package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/smilkos/mrhs-solver/mrhs"
)

var (
	genN, genM, genL, genK int
	genFill                string
	genDensity             int
	genKey                 int
	genFilterBlocks        int
	genEnsureSolution      bool
	genFormat              string
	genOut                 string
	genSeed                uint64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random fixed-shape MRHS system",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := mrhs.CreateFixed(genN, genM, genL, genK)
		if err != nil {
			return fmt.Errorf("mrhssolve: generate: %w", err)
		}

		rng := rand.New(rand.NewSource(genSeed))
		switch genFill {
		case "dense":
			mrhs.FillRandom(sys, rng)
		case "sparse":
			mrhs.FillRandomSparse(sys, rng)
		case "sparse-extra":
			mrhs.FillRandomSparseExtra(sys, rng, genDensity)
		case "and":
			if err := mrhs.FillAND(sys, rng, genKey, genFilterBlocks); err != nil {
				return fmt.Errorf("mrhssolve: generate: %w", err)
			}
		case "and-sparse":
			if err := mrhs.FillANDSparse(sys, rng, genKey, genFilterBlocks, genDensity); err != nil {
				return fmt.Errorf("mrhssolve: generate: %w", err)
			}
		default:
			return fmt.Errorf("mrhssolve: unknown --fill %q (want dense|sparse|sparse-extra|and|and-sparse)", genFill)
		}

		if genEnsureSolution {
			mrhs.EnsureRandomSolution(sys, rng)
		}

		w, closeFn, err := openOutput(genOut)
		if err != nil {
			return err
		}
		defer closeFn()

		return writeSystem(w, sys, genFormat)
	},
}

func init() {
	f := generateCmd.Flags()
	f.IntVar(&genN, "n", 16, "number of shared variables")
	f.IntVar(&genM, "m", 4, "number of blocks")
	f.IntVar(&genL, "l", 4, "block width (columns per block)")
	f.IntVar(&genK, "k", 4, "candidate rhs rows per block")
	f.StringVar(&genFill, "fill", "dense", "dense|sparse|sparse-extra|and|and-sparse")
	f.IntVar(&genDensity, "density", 0, "extra 1 bits scattered by sparse-extra/and-sparse")
	f.IntVar(&genKey, "key", 0, "key/input variable row offset for and/and-sparse fills")
	f.IntVar(&genFilterBlocks, "filter-blocks", 0, "trailing blocks left as plain filters for the and/and-sparse fills (n must equal key+m-filter-blocks)")
	f.BoolVar(&genEnsureSolution, "ensure-solution", false, "force a random solution to exist")
	f.StringVar(&genFormat, "format", "text", "text|cbor")
	f.StringVar(&genOut, "out", "", "output file (default stdout)")
	f.Uint64Var(&genSeed, "seed", 1, "PRNG seed")
}
