package ioformat

import (
	"fmt"
	"io"

	"github.com/smilkos/mrhs-solver/mrhs"
)

// Pretty prints sys in a human-readable layout: the M rows side by side
// (one column of bits per block), a dashed separator matching each
// block's width, then every block's S rows underneath, shorter blocks
// padded with blanks so columns stay aligned. Grounded on
// original_source/src/mrhs.c's print_mrhs.
func Pretty(w io.Writer, sys *mrhs.System) error {
	if sys.NBlocks() == 0 {
		return nil
	}

	n := sys.M[0].NRows()
	for row := 0; row < n; row++ {
		for _, m := range sys.M {
			writeBits(w, m.Row(row), m.NCols())
			if _, err := fmt.Fprint(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "\n"); err != nil {
			return err
		}
	}

	for _, m := range sys.M {
		for c := 0; c < m.NCols(); c++ {
			if _, err := fmt.Fprint(w, "-"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, " "); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(w, "\n"); err != nil {
		return err
	}

	maxrhs := 0
	for _, s := range sys.S {
		if s.NRows() > maxrhs {
			maxrhs = s.NRows()
		}
	}

	for row := 0; row < maxrhs; row++ {
		for _, s := range sys.S {
			if row >= s.NRows() {
				if _, err := fmt.Fprintf(w, "%*s", s.NCols()+1, ""); err != nil {
					return err
				}
				continue
			}
			writeBits(w, s.Row(row), s.NCols())
			if _, err := fmt.Fprint(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
