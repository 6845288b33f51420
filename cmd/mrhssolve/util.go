package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/smilkos/mrhs-solver/gf2"
	"github.com/smilkos/mrhs-solver/ioformat"
	"github.com/smilkos/mrhs-solver/mrhs"
)

func openInput(path string) (io.Reader, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("mrhssolve: opening %s: %w", path, err)
	}
	return f, f.Close, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("mrhssolve: creating %s: %w", path, err)
	}
	return f, f.Close, nil
}

func readSystem(r io.Reader, format string) (*mrhs.System, error) {
	switch format {
	case "text":
		return ioformat.ReadSystem(r)
	case "cbor":
		return ioformat.ReadBinary(r)
	default:
		return nil, fmt.Errorf("mrhssolve: unknown --format %q (want text or cbor)", format)
	}
}

func writeSystem(w io.Writer, sys *mrhs.System, format string) error {
	switch format {
	case "text":
		return ioformat.WriteSystem(w, sys)
	case "cbor":
		return ioformat.WriteBinary(w, sys)
	default:
		return fmt.Errorf("mrhssolve: unknown --format %q (want text or cbor)", format)
	}
}

func bitVectorString(v *gf2.BitVector) string {
	var b strings.Builder
	for i := 0; i < v.Len(); i++ {
		if v.Get(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
