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

package bigint

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/assert"
)

func limbsOf(x *big.Int, n int) []frontend.Variable {
	raw := FromBigInt(x, n)
	out := make([]frontend.Variable, n)
	for i, l := range raw {
		out[i] = l
	}
	return out
}

type addCircuit struct {
	A, B []frontend.Variable
	Want []frontend.Variable
}

func (c *addCircuit) Define(api frontend.API) error {
	got := Add(api, c.A, c.B)
	AssertEqual(api, got, c.Want)
	return nil
}

func TestAddWidensByOneLimb(t *testing.T) {
	a := big.NewInt(0xFFFFFFFF)
	b := big.NewInt(1)
	want := new(big.Int).Add(a, b)

	circuit := &addCircuit{A: make([]frontend.Variable, 1), B: make([]frontend.Variable, 1), Want: make([]frontend.Variable, 2)}
	witness := &addCircuit{A: limbsOf(a, 1), B: limbsOf(b, 1), Want: limbsOf(want, 2)}
	test.NewAssert(t).SolvingSucceeded(circuit, witness)
}

type mulCircuit struct {
	A, B []frontend.Variable
	Want []frontend.Variable
}

func (c *mulCircuit) Define(api frontend.API) error {
	got := Mul(api, c.A, c.B)
	AssertEqual(api, got, c.Want)
	return nil
}

func TestMulSchoolbook(t *testing.T) {
	a := big.NewInt(123456789)
	b := big.NewInt(987654321)
	want := new(big.Int).Mul(a, b)

	circuit := &mulCircuit{A: make([]frontend.Variable, 2), B: make([]frontend.Variable, 2), Want: make([]frontend.Variable, 5)}
	witness := &mulCircuit{A: limbsOf(a, 2), B: limbsOf(b, 2), Want: limbsOf(want, 5)}
	test.NewAssert(t).SolvingSucceeded(circuit, witness)
}

type subCircuit struct {
	A, B []frontend.Variable
	Want []frontend.Variable
}

func (c *subCircuit) Define(api frontend.API) error {
	got := Sub(api, c.A, c.B)
	AssertEqual(api, got, c.Want)
	return nil
}

// TestSubBorrowPropagatesAcrossLimbs forces the borrow out of limb0 to
// ripple into limb1: a's low limb is smaller than b's low limb, while a's
// high limb exceeds b's high limb by exactly enough to absorb that
// borrow. A borrow that is added instead of subtracted at the next limb
// (rather than propagated) produces a high limb of 2 instead of 0, a
// result off by twice the limb base, which this test's expected value
// would catch.
func TestSubBorrowPropagatesAcrossLimbs(t *testing.T) {
	a := new(big.Int).Lsh(big.NewInt(5), LimbBits) // (hi=5, lo=0)
	b := new(big.Int).Lsh(big.NewInt(4), LimbBits)
	b.Add(b, big.NewInt(1)) // (hi=4, lo=1)
	want := new(big.Int).Sub(a, b)

	circuit := &subCircuit{A: make([]frontend.Variable, 2), B: make([]frontend.Variable, 2), Want: make([]frontend.Variable, 2)}
	witness := &subCircuit{A: limbsOf(a, 2), B: limbsOf(b, 2), Want: limbsOf(want, 2)}
	test.NewAssert(t).SolvingSucceeded(circuit, witness)
}

// TestSubFullWidthBorrowPropagation exercises the same borrow-propagation
// path over secp256k1-sized (8-limb) operands, adversarially chosen so
// every limb of a is one less than the matching limb of b except the most
// significant limb: subtracting forces the borrow to ripple through all 7
// lower limb boundaries before being absorbed by the top limb's headroom.
func TestSubFullWidthBorrowPropagation(t *testing.T) {
	n := NumLimbs(256)
	b := new(big.Int)
	for i := 0; i < n; i++ {
		b.Lsh(b, LimbBits)
		b.Or(b, big.NewInt(0x80000001))
	}
	a := new(big.Int)
	for i := 0; i < n; i++ {
		a.Lsh(a, LimbBits)
		if i == 0 {
			// This becomes the most significant limb once the remaining
			// shifts are applied: enough headroom to absorb every lower
			// limb's borrow.
			a.Or(a, big.NewInt(0x90000000))
		} else {
			a.Or(a, big.NewInt(0x80000000))
		}
	}
	want := new(big.Int).Sub(a, b)

	circuit := &subCircuit{A: make([]frontend.Variable, n), B: make([]frontend.Variable, n), Want: make([]frontend.Variable, n)}
	witness := &subCircuit{A: limbsOf(a, n), B: limbsOf(b, n), Want: limbsOf(want, n)}
	test.NewAssert(t).SolvingSucceeded(circuit, witness)
}

type lessCircuit struct {
	A, B []frontend.Variable
	Want frontend.Variable
}

func (c *lessCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(Less(api, c.A, c.B), c.Want)
	return nil
}

func TestLess(t *testing.T) {
	circuit := &lessCircuit{A: make([]frontend.Variable, 2), B: make([]frontend.Variable, 2)}

	witness := &lessCircuit{A: limbsOf(big.NewInt(5), 2), B: limbsOf(big.NewInt(9), 2), Want: 1}
	test.NewAssert(t).SolvingSucceeded(circuit, witness)

	witness = &lessCircuit{A: limbsOf(big.NewInt(9), 2), B: limbsOf(big.NewInt(5), 2), Want: 0}
	test.NewAssert(t).SolvingSucceeded(circuit, witness)
}

func TestFromBigIntRoundTrip(t *testing.T) {
	x := new(big.Int).Lsh(big.NewInt(1), 100)
	limbs := FromBigInt(x, NumLimbs(128))
	assert.Equal(t, 0, x.Cmp(ToBigInt(limbs)))
}
