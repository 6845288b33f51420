package mrhs_test

import (
	"testing"

	"github.com/smilkos/mrhs-solver/mrhs"
	"golang.org/x/exp/rand"
)

func TestFingerprintStableAndSensitive(t *testing.T) {
	sys, err := mrhs.CreateFixed(6, 2, 4, 2)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(9))
	mrhs.FillRandom(sys, rng)

	a := mrhs.Fingerprint(sys)
	b := mrhs.Fingerprint(sys)
	if a != b {
		t.Fatal("fingerprint should be stable across repeated calls")
	}

	sys.M[0].SetBit(0, 0, !sys.M[0].GetBit(0, 0))
	c := mrhs.Fingerprint(sys)
	if a == c {
		t.Fatal("fingerprint should change when the content changes")
	}
}
