// Package ioformat reads and writes mrhs.System values: a whitespace
// delimited textual format grounded on original_source/src/mrhs.c's
// read_mrhs_variable/write_mrhs_variable/print_mrhs, a CBOR-backed binary
// snapshot, and a human-oriented pretty printer.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/smilkos/mrhs-solver/gf2"
	"github.com/smilkos/mrhs-solver/mrhs"
)

// WriteSystem serializes sys in the canonical textual format: a header
// line "n m", one "l k" line per block (block width then RHS row count,
// the writer's field order), the n rows of every block's M side by side
// bracketed per row, then each block's S rows on their own bracketed
// lines separated by a blank line per block.
func WriteSystem(w io.Writer, sys *mrhs.System) error {
	bw := bufio.NewWriter(w)

	if sys.NBlocks() == 0 {
		return bw.Flush()
	}

	n := sys.M[0].NRows()
	if _, err := fmt.Fprintf(bw, "%d %d\n", n, sys.NBlocks()); err != nil {
		return err
	}
	for _, s := range sys.S {
		if _, err := fmt.Fprintf(bw, "%d %d\n", s.NCols(), s.NRows()); err != nil {
			return err
		}
	}

	for row := 0; row < n; row++ {
		if _, err := fmt.Fprint(bw, "[ "); err != nil {
			return err
		}
		for _, m := range sys.M {
			writeBits(bw, m.Row(row), m.NCols())
			if _, err := fmt.Fprint(bw, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(bw, "]\n"); err != nil {
			return err
		}
	}

	for _, s := range sys.S {
		if _, err := fmt.Fprint(bw, "\n"); err != nil {
			return err
		}
		for row := 0; row < s.NRows(); row++ {
			if _, err := fmt.Fprint(bw, "["); err != nil {
				return err
			}
			writeBits(bw, s.Row(row), s.NCols())
			if _, err := fmt.Fprint(bw, "]\n"); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// writeBits renders b MSB-first: the leftmost character is bit ncols-1,
// the highest-order bit, matching the textual format's convention.
func writeBits(w io.Writer, b gf2.Block, ncols int) {
	buf := make([]byte, ncols)
	for c := 0; c < ncols; c++ {
		if b.Test(ncols - 1 - c) {
			buf[c] = '1'
		} else {
			buf[c] = '0'
		}
	}
	w.Write(buf)
}

// ReadSystem parses the format WriteSystem produces. Malformed input
// (a header field that isn't an integer, a row with the wrong number of
// blocks, a bit string of the wrong width, a missing bracket) is reported
// as an error rather than left as undefined behavior.
func ReadSystem(r io.Reader) (*mrhs.System, error) {
	tr := newTokenReader(r)

	n, err := tr.nextInt()
	if err != nil {
		return nil, fmt.Errorf("ioformat: reading n: %w", err)
	}
	m, err := tr.nextInt()
	if err != nil {
		return nil, fmt.Errorf("ioformat: reading nblocks: %w", err)
	}

	l := make([]int, m)
	k := make([]int, m)
	for i := 0; i < m; i++ {
		if l[i], err = tr.nextInt(); err != nil {
			return nil, fmt.Errorf("ioformat: reading block %d width: %w", i, err)
		}
		if k[i], err = tr.nextInt(); err != nil {
			return nil, fmt.Errorf("ioformat: reading block %d rhs count: %w", i, err)
		}
	}

	sys, err := mrhs.CreateVariable(n, l, k)
	if err != nil {
		return nil, fmt.Errorf("ioformat: building system: %w", err)
	}

	for row := 0; row < n; row++ {
		if err := tr.expect("["); err != nil {
			return nil, fmt.Errorf("ioformat: M row %d: %w", row, err)
		}
		for block := 0; block < m; block++ {
			tok, err := tr.next()
			if err != nil {
				return nil, fmt.Errorf("ioformat: M row %d block %d: %w", row, block, err)
			}
			b, err := parseBits(tok, l[block])
			if err != nil {
				return nil, fmt.Errorf("ioformat: M row %d block %d: %w", row, block, err)
			}
			sys.M[block].SetRow(row, b)
		}
		if err := tr.expect("]"); err != nil {
			return nil, fmt.Errorf("ioformat: M row %d: %w", row, err)
		}
	}

	for block := 0; block < m; block++ {
		for row := 0; row < k[block]; row++ {
			tok, err := tr.next()
			if err != nil {
				return nil, fmt.Errorf("ioformat: S block %d row %d: %w", block, row, err)
			}
			tok = strings.TrimPrefix(tok, "[")
			tok = strings.TrimSuffix(tok, "]")
			b, err := parseBits(tok, l[block])
			if err != nil {
				return nil, fmt.Errorf("ioformat: S block %d row %d: %w", block, row, err)
			}
			sys.S[block].SetRow(row, b)
		}
	}

	return sys, nil
}

// parseBits reads tok MSB-first: the leftmost character is bit width-1,
// the inverse of writeBits.
func parseBits(tok string, width int) (gf2.Block, error) {
	tok = strings.TrimPrefix(tok, "[")
	tok = strings.TrimSuffix(tok, "]")
	if len(tok) != width {
		return 0, fmt.Errorf("expected %d bits, got %q", width, tok)
	}
	var b gf2.Block
	for c, ch := range tok {
		switch ch {
		case '1':
			b = b.With(width-1-c, true)
		case '0':
			// leave clear
		default:
			return 0, fmt.Errorf("invalid bit %q in %q", ch, tok)
		}
	}
	return b, nil
}

// tokenReader splits input on whitespace and lets the caller assert
// exact tokens, matching the bracket-delimited layout WriteSystem emits.
type tokenReader struct {
	sc *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &tokenReader{sc: sc}
}

func (t *tokenReader) next() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return t.sc.Text(), nil
}

func (t *tokenReader) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("malformed integer %q: %w", tok, err)
	}
	return v, nil
}

func (t *tokenReader) expect(want string) error {
	tok, err := t.next()
	if err != nil {
		return err
	}
	if tok != want {
		return fmt.Errorf("expected %q, got %q", want, tok)
	}
	return nil
}
