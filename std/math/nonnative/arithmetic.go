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

package nonnative

import (
	"github.com/consensys/gnark/frontend"

	"github.com/nume-crypto/gnark-nonnative/internal/bigint"
)

// reduce folds an unreduced limb vector (the output of a raw limb-level
// Add/Sub/Mul) back down to the unique representative in [0, p). It is the
// one piece of plumbing every operation in this file shares: compute the
// witness quotient and remainder with Rem, then trust Rem's own
// AssertLess/AssertEqual pair to pin the remainder to x mod p.
func (f *Field[FF]) reduce(x []frontend.Variable) Element[FF] {
	_, r := bigint.Rem(f.api, f.rc, x, f.modulusLimbs())
	return Element[FF]{Limbs: r}
}

// Add returns a+b mod p (NonNativeAdditionGenerator in the algorithm this
// gadget is grounded on). a and b must be reduced; the sum is range-free
// until reduce pins it back into [0, p).
func (f *Field[FF]) Add(a, b Element[FF]) Element[FF] {
	return f.reduce(bigint.Add(f.api, a.Limbs, b.Limbs))
}

// AddMany returns the sum of all given elements mod p in a single reduction
// pass (NonNativeMultipleAddsGenerator), cheaper than folding Add pairwise
// because the overflow from every addend is absorbed once instead of once
// per pair.
func (f *Field[FF]) AddMany(elements ...Element[FF]) Element[FF] {
	if len(elements) == 0 {
		return f.Zero()
	}
	acc := elements[0].Limbs
	for _, e := range elements[1:] {
		acc = bigint.Add(f.api, acc, e.Limbs)
	}
	return f.reduce(acc)
}

// Sub returns a-b mod p (NonNativeSubtractionGenerator). Because the
// limb-level Sub gadget only accepts a non-negative difference, a hint
// first decides whether a<b as integers and, if so, a is bumped by p
// before the subtraction so the operand handed to Sub is always >= b.
// The hint is not trusted: diff+b is asserted equal to the bumped a as
// integers, which no borrow of 0 with a<b can satisfy. reduce then brings
// the (possibly still-unreduced, since a+p can itself need folding back
// down) difference into [0, p).
func (f *Field[FF]) Sub(a, b Element[FF]) Element[FF] {
	borrow := needsBorrow(f.api, a.Limbs, b.Limbs)
	bumped := bigint.Add(f.api, a.Limbs, bigint.MulByBool(f.api, f.modulusLimbs(), borrow))
	diff := bigint.Sub(f.api, bumped, b.Limbs)
	bigint.AssertEqual(f.api, bigint.Add(f.api, diff, b.Limbs), bumped)
	return f.reduce(diff)
}

// Neg returns -a mod p, i.e. p-a for a != 0 and 0 for a == 0.
func (f *Field[FF]) Neg(a Element[FF]) Element[FF] {
	return f.Sub(f.Zero(), a)
}

// Mul returns a*b mod p (NonNativeMultiplicationGenerator).
func (f *Field[FF]) Mul(a, b Element[FF]) Element[FF] {
	return f.reduce(bigint.Mul(f.api, a.Limbs, b.Limbs))
}

// MulMany returns the product of all given elements mod p, reducing after
// every pairwise multiplication so no intermediate limb vector grows
// wider than a single Mul call ever produces.
func (f *Field[FF]) MulMany(elements ...Element[FF]) Element[FF] {
	if len(elements) == 0 {
		return f.Constant(bigOne)
	}
	acc := elements[0]
	for _, e := range elements[1:] {
		acc = f.Mul(acc, e)
	}
	return acc
}

// Inverse returns a^-1 mod p. It asserts a != 0: a foreign-field element
// with no multiplicative inverse has no sound witness for this gadget, so
// the in-circuit constraint is unsatisfiable, and the witness-generation
// hint itself also fails fast with ErrZeroInverse rather than fabricating
// a placeholder.
func (f *Field[FF]) Inverse(a Element[FF]) Element[FF] {
	f.assertNonZero(a)

	out, err := f.api.NewHint(inverseHint(f.params, f.numLimbs), f.numLimbs, a.Limbs...)
	if err != nil {
		panic(err)
	}
	f.rc.RangeCheckU32(out...)
	inv := Element[FF]{Limbs: out}
	f.AssertIsReduced(inv)

	product := f.Mul(a, inv)
	f.Connect(product, f.Constant(bigOne))
	return inv
}

// Reduce is the public, explicit form of reduce: it re-derives the unique
// representative of an Element that may have been built (e.g. via
// FromBigInt) without the reduced-form guarantee the other constructors
// provide.
func (f *Field[FF]) Reduce(e Element[FF]) Element[FF] {
	return f.reduce(e.Limbs)
}

// assertNonZero asserts that e's integer value is not zero, by asserting
// that at least one limb is nonzero.
func (f *Field[FF]) assertNonZero(e Element[FF]) {
	anyNonZero := frontend.Variable(0)
	for _, l := range e.Limbs {
		anyNonZero = f.api.Select(f.api.IsZero(l), anyNonZero, 1)
	}
	f.api.AssertIsEqual(anyNonZero, 1)
}
