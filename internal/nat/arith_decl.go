// Copyright 2010 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file uses //go:linkname to reach the vector kernels of math/big.
// The signatures must match the runtime's math/big exactly. If this package
// fails to link after a Go upgrade, review them against the current
// math/big/arith_decl.go.

package nat

import (
	_ "unsafe" // Required for go:linkname
)

// addVV computes z = x + y element-wise and returns the carry.
//
//go:linkname addVV math/big.addVV
func addVV(z, x, y []Word) (c Word)

// subVV computes z = x - y element-wise and returns the borrow.
//
//go:linkname subVV math/big.subVV
func subVV(z, x, y []Word) (c Word)

// addMulVVW computes z += x*y where y is a single word, and returns the carry.
//
//go:linkname addMulVVW math/big.addMulVVW
func addMulVVW(z, x []Word, y Word) (c Word)
