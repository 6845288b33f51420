// Package mrhs implements Multiple Right-Hand Side systems over GF(2):
// blocks of equations Mᵢx ∈ Sᵢ, and the Gaussian-elimination preprocessing
// (echelonization, linear substitution, dead-block removal) that the
// solver package's search runs against.
package mrhs

import (
	"github.com/smilkos/mrhs-solver/gf2"
)

// ErrShape is returned whenever a system's declared dimensions are
// internally inconsistent (block-width and RHS-count lists of different
// lengths, a block width exceeding gf2.BlockWidth, and the like).
var ErrShape = gf2.ErrShape
