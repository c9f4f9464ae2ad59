// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bigint implements multi-limb big-integer arithmetic over 32-bit
// limbs represented as native frontend.Variable wires. It stands in for the
// "underlying multi-limb big-integer gadgets" that a production non-native
// field layer would consume from its host circuit builder: addition,
// subtraction, multiplication, comparison and modular remainder, plus the
// 32-bit range-check and base-2 split primitives. None of these gadgets know
// anything about a foreign field or reducedness; that discipline belongs to
// the caller (std/math/nonnative).
package bigint

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/rangecheck"
)

// LimbBits is the width of a single limb.
const LimbBits = 32

// carryBits bounds the width of an accumulator slot before it is
// renormalized to LimbBits. It must exceed the worst-case magnitude a slot
// can reach while folding limb products or ripple-carry sums; 96 bits
// comfortably covers the limb counts this package is used with (a few dozen
// limbs at most).
const carryBits = 96

// NumLimbs returns the number of 32-bit limbs needed to hold a value of the
// given bit width.
func NumLimbs(bits int) int {
	return (bits + LimbBits - 1) / LimbBits
}

// Constant returns the little-endian 32-bit limb decomposition of x as
// circuit constants, padded or truncated to numLimbs.
func Constant(x *big.Int, numLimbs int) []frontend.Variable {
	out := make([]frontend.Variable, numLimbs)
	mask := new(big.Int).Lsh(big.NewInt(1), LimbBits)
	tmp := new(big.Int).Set(x)
	for i := 0; i < numLimbs; i++ {
		limb := new(big.Int)
		limb.Mod(tmp, mask)
		out[i] = limb
		tmp.Rsh(tmp, LimbBits)
	}
	return out
}

// ToBigInt reassembles a little-endian limb decomposition known at
// witness-generation time. It is only ever called from inside hint
// functions, where limbs are already resolved to concrete big.Int values.
func ToBigInt(limbs []*big.Int) *big.Int {
	out := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		out.Lsh(out, LimbBits)
		out.Add(out, limbs[i])
	}
	return out
}

// FromBigInt is the inverse of ToBigInt, producing exactly numLimbs values.
func FromBigInt(x *big.Int, numLimbs int) []*big.Int {
	out := make([]*big.Int, numLimbs)
	mask := new(big.Int).Lsh(big.NewInt(1), LimbBits)
	tmp := new(big.Int).Set(x)
	for i := 0; i < numLimbs; i++ {
		limb := new(big.Int)
		limb.Mod(tmp, mask)
		out[i] = limb
		tmp.Rsh(tmp, LimbBits)
	}
	return out
}

// Checker wraps the host builder's range-check gadget so repeated 32-bit
// assertions over many limbs share the same lookup-based checker instance.
type Checker struct {
	api frontend.API
	rc  frontend.Rangechecker
}

// NewChecker constructs a range-check helper bound to api.
func NewChecker(api frontend.API) *Checker {
	return &Checker{api: api, rc: rangecheck.New(api)}
}

// RangeCheckU32 asserts that every given limb fits in LimbBits bits.
func (c *Checker) RangeCheckU32(limbs ...frontend.Variable) {
	for _, l := range limbs {
		c.rc.Check(l, LimbBits)
	}
}

// SplitLEBase2 decomposes a single 32-bit limb into 32 little-endian boolean
// wires.
func SplitLEBase2(api frontend.API, limb frontend.Variable, nbBits int) []frontend.Variable {
	return api.ToBinary(limb, nbBits)
}

func limbAt(a []frontend.Variable, i int) frontend.Variable {
	if i < len(a) {
		return a[i]
	}
	return 0
}

// Add returns the little-endian limb decomposition of a+b, one limb wider
// than the longer operand to absorb the final carry. Operands are assumed
// to already be range-checked to LimbBits.
func Add(api frontend.API, a, b []frontend.Variable) []frontend.Variable {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]frontend.Variable, n+1)
	var carry frontend.Variable = 0
	for i := 0; i < n; i++ {
		s := api.Add(limbAt(a, i), limbAt(b, i), carry)
		bits := api.ToBinary(s, LimbBits+1)
		out[i] = api.FromBinary(bits[:LimbBits]...)
		carry = bits[LimbBits]
	}
	out[n] = carry
	return out
}

// Sub returns the little-endian limb decomposition of a-b, assuming a >= b
// as integers (the caller is responsible for that precondition; violating
// it produces a wrapped, meaningless result rather than a build-time
// failure, matching the "caller's obligation" discipline of this package).
func Sub(api frontend.API, a, b []frontend.Variable) []frontend.Variable {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]frontend.Variable, n)
	borrow := frontend.Variable(0)
	base := new(big.Int).Lsh(big.NewInt(1), LimbBits)
	for i := 0; i < n; i++ {
		d := api.Add(api.Sub(limbAt(a, i), limbAt(b, i), borrow), base)
		bits := api.ToBinary(d, LimbBits+1)
		out[i] = api.FromBinary(bits[:LimbBits]...)
		// bits[LimbBits] is 1 iff no borrow was needed at this limb.
		borrow = api.Sub(1, bits[LimbBits])
	}
	return out
}

// MulByBool returns a if b is boolean-true, else the all-zero limb vector
// of the same width. No range check is required: the output is either a
// copy of a or zero, so it stays within whatever bound a already satisfies.
func MulByBool(api frontend.API, a []frontend.Variable, b frontend.Variable) []frontend.Variable {
	out := make([]frontend.Variable, len(a))
	for i, l := range a {
		out[i] = api.Mul(l, b)
	}
	return out
}

// RandomAccess returns options[idx], selected limb-wise via equality
// indicators. All options must share the same limb width.
func RandomAccess(api frontend.API, idx frontend.Variable, options [][]frontend.Variable) []frontend.Variable {
	width := len(options[0])
	out := make([]frontend.Variable, width)
	for limb := 0; limb < width; limb++ {
		acc := frontend.Variable(0)
		for i, opt := range options {
			hit := api.IsZero(api.Sub(idx, i))
			acc = api.Add(acc, api.Mul(hit, opt[limb]))
		}
		out[limb] = acc
	}
	return out
}

// AssertEqual asserts limb-wise equality of two (possibly differently
// padded) limb vectors; trailing limbs beyond the shorter vector must be
// zero.
func AssertEqual(api frontend.API, a, b []frontend.Variable) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		api.AssertIsEqual(limbAt(a, i), limbAt(b, i))
	}
}
