package ioformat

import (
	"fmt"
	"io"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"

	"github.com/smilkos/mrhs-solver/gf2"
	"github.com/smilkos/mrhs-solver/mrhs"
)

// FormatVersion is the binary snapshot's format version, taken from
// original_source/mrhs.solver.h's "//version 1.4" comment. ReadBinary
// refuses a snapshot whose major component differs: minor bumps may add
// fields, a major bump signals an incompatible layout change.
var FormatVersion = semver.MustParse("1.4.0")

// binarySystem is the CBOR wire shape: mrhs.System's BitMatrix fields are
// unexported, so snapshots go through this plain, exported mirror instead
// of relying on cbor's reflection to reach into System directly.
type binarySystem struct {
	Version string
	N       int
	Blocks  []binaryBlock
}

type binaryBlock struct {
	Width int
	MRows []uint64
	SRows []uint64
}

// WriteBinary serializes sys as a versioned CBOR snapshot. Grounded on
// SPEC_FULL.md §6.2: the fast path cmd/mrhssolve bench uses to save and
// reload large generated systems without re-parsing text.
func WriteBinary(w io.Writer, sys *mrhs.System) error {
	bs := binarySystem{
		Version: FormatVersion.String(),
		N:       sys.N,
		Blocks:  make([]binaryBlock, sys.NBlocks()),
	}
	for i, m := range sys.M {
		s := sys.S[i]
		mrows := make([]uint64, m.NRows())
		for r := range mrows {
			mrows[r] = uint64(m.Row(r))
		}
		srows := make([]uint64, s.NRows())
		for r := range srows {
			srows[r] = uint64(s.Row(r))
		}
		bs.Blocks[i] = binaryBlock{Width: m.NCols(), MRows: mrows, SRows: srows}
	}

	data, err := cbor.Marshal(bs)
	if err != nil {
		return fmt.Errorf("ioformat: encoding binary snapshot: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ReadBinary deserializes a snapshot written by WriteBinary.
func ReadBinary(r io.Reader) (*mrhs.System, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ioformat: reading binary snapshot: %w", err)
	}

	var bs binarySystem
	if err := cbor.Unmarshal(data, &bs); err != nil {
		return nil, fmt.Errorf("ioformat: decoding binary snapshot: %w", err)
	}

	version, err := semver.Parse(bs.Version)
	if err != nil {
		return nil, fmt.Errorf("ioformat: malformed snapshot version %q: %w", bs.Version, err)
	}
	if version.Major != FormatVersion.Major {
		return nil, fmt.Errorf("ioformat: snapshot format v%s is incompatible with v%s", version, FormatVersion)
	}

	l := make([]int, len(bs.Blocks))
	k := make([]int, len(bs.Blocks))
	for i, b := range bs.Blocks {
		l[i] = b.Width
		k[i] = len(b.SRows)
	}

	sys, err := mrhs.CreateVariable(bs.N, l, k)
	if err != nil {
		return nil, fmt.Errorf("ioformat: rebuilding system: %w", err)
	}
	for i, b := range bs.Blocks {
		for r, v := range b.MRows {
			sys.M[i].SetRow(r, gf2.Block(v))
		}
		for r, v := range b.SRows {
			sys.S[i].SetRow(r, gf2.Block(v))
		}
	}
	return sys, nil
}
