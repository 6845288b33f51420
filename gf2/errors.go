package gf2

import "errors"

// ErrShape is returned by constructors and fillers when the requested
// dimensions are incompatible with the operation's preconditions. Callers
// get an empty/zero-value result alongside the error instead of a panic.
var ErrShape = errors.New("gf2: incompatible shape")
