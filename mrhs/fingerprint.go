package mrhs

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a content hash of the system: its shared row count,
// every block's dimensions, and every block's M and S bit pattern, as a
// 32-byte BLAKE2b-256 digest. Two systems with equal fingerprints have
// identical data, so a fingerprint can tag an instance without keeping
// the whole system around.
func Fingerprint(sys *System) [blake2b.Size256]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err) // blake2b.New256 only errors on an oversized key, which we never pass
	}

	var scratch [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(scratch[:], uint64(v))
		h.Write(scratch[:])
	}

	writeInt(sys.N)
	writeInt(len(sys.M))
	for i := range sys.M {
		m, s := sys.M[i], sys.S[i]
		writeInt(m.NRows())
		writeInt(m.NCols())
		for r := 0; r < m.NRows(); r++ {
			binary.LittleEndian.PutUint64(scratch[:], uint64(m.Row(r)))
			h.Write(scratch[:])
		}
		writeInt(s.NRows())
		writeInt(s.NCols())
		for r := 0; r < s.NRows(); r++ {
			binary.LittleEndian.PutUint64(scratch[:], uint64(s.Row(r)))
			h.Write(scratch[:])
		}
	}

	var out [blake2b.Size256]byte
	copy(out[:], h.Sum(nil))
	return out
}
