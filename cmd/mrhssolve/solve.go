package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/smilkos/mrhs-solver/mrhs"
	"github.com/smilkos/mrhs-solver/solver"
)

var (
	solveIn           string
	solveFormat       string
	solveRemoveLinear bool
	solveRemoveEmpty  bool
	solvePruning      bool
	solveOut          string
	solveLimit        int64
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Echelonize, prepare, and solve an MRHS system",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, closeFn, err := openInput(solveIn)
		if err != nil {
			return err
		}
		defer closeFn()

		sys, err := readSystem(r, solveFormat)
		if err != nil {
			return fmt.Errorf("mrhssolve: solve: %w", err)
		}

		if solveRemoveLinear {
			n := mrhs.RemoveLinear(sys)
			log.Debug().Int("substituted", n).Msg("mrhssolve: removed linear blocks")
		}
		if solveRemoveEmpty {
			n := mrhs.RemoveEmpty(sys)
			log.Debug().Int("removed", n).Msg("mrhssolve: removed empty blocks")
		}

		res := mrhs.Echelonize(sys, false)
		opts := solver.DefaultPrepareOptions()
		opts.EnablePruning = solvePruning
		ales := solver.Prepare(sys, res, opts)

		w, closeOutFn, err := openOutput(solveOut)
		if err != nil {
			return err
		}
		defer closeOutFn()

		freeRows := res.FreeRows(sys.N)
		widths := sys.BlockWidths()
		leaves, xors := solver.Solve(ales, freeRows, func(counter int64, a solver.Assignment) {
			if solveLimit > 0 && counter > solveLimit {
				return
			}
			x := a.ToVector(sys.N, widths, res.PivotRows)
			fmt.Fprintf(w, "%d: %s\n", counter, bitVectorString(x))
		})

		total := solver.TotalSolutions(leaves, freeRows)
		log.Info().
			Int64("leaves", leaves).
			Int64("xors", xors).
			Int("free_rows", freeRows).
			Int64("total_solutions", total).
			Msg("mrhssolve: solve complete")
		return nil
	},
}

func init() {
	f := solveCmd.Flags()
	f.StringVar(&solveIn, "in", "", "input file (default stdin)")
	f.StringVar(&solveFormat, "format", "text", "text|cbor")
	f.BoolVar(&solveRemoveLinear, "remove-linear", false, "substitute single-rhs (linear) blocks before solving")
	f.BoolVar(&solveRemoveEmpty, "remove-empty", false, "drop all-zero blocks before solving")
	f.BoolVar(&solvePruning, "pruning", true, "enable TableEntry.First-based accumulator pruning")
	f.StringVar(&solveOut, "out", "", "output file for reported assignments (default stdout)")
	f.Int64Var(&solveLimit, "limit", 0, "stop reporting assignments after this many (0 = unlimited)")
}
