package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/smilkos/mrhs-solver/mrhs"
	"github.com/smilkos/mrhs-solver/solver"
)

var (
	benchIn     string
	benchFormat string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare analytic cost estimates against a measured solve",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, closeFn, err := openInput(benchIn)
		if err != nil {
			return err
		}
		defer closeFn()

		sys, err := readSystem(r, benchFormat)
		if err != nil {
			return fmt.Errorf("mrhssolve: bench: %w", err)
		}

		res := mrhs.Echelonize(sys, false)
		ales := solver.Prepare(sys, res, solver.DefaultPrepareOptions())

		expected := solver.GetExpected(sys, res)
		xor1 := solver.GetXor1(sys, res)
		xor2 := solver.GetXor2(sys, res)

		leaves, xors := solver.Solve(ales, res.FreeRows(sys.N), nil)

		log.Info().
			Float64("expected_ntotal", expected).
			Float64("expected_xor1", xor1).
			Float64("expected_xor2", xor2).
			Int64("measured_leaves", leaves).
			Int64("measured_xors", xors).
			Msg("mrhssolve: bench complete")
		return nil
	},
}

func init() {
	f := benchCmd.Flags()
	f.StringVar(&benchIn, "in", "", "input file (default stdin)")
	f.StringVar(&benchFormat, "format", "text", "text|cbor")
}
