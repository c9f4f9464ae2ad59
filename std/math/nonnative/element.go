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

// Package nonnative implements a non-native (foreign-field) arithmetic
// gadget layer on top of gnark's frontend.API. A circuit operates natively
// over its scalar field; this package lets it express and constrain
// arithmetic modulo an unrelated, much larger foreign prime p (e.g. the
// secp256k1 base field) by encoding elements of Z/pZ as a little-endian
// sequence of 32-bit limbs and emitting, for every operation, a small set
// of big-integer constraints that pin the result to the unique reduced
// representative.
//
// The design reduces after every operation rather than deferring
// reduction across a chain of ops; that tradeoff, and the rest of the
// soundness argument for each op, is documented on the corresponding
// method below.
package nonnative

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nume-crypto/gnark-nonnative/internal/bigint"
)

var bigOne = big.NewInt(1)

// Element is a foreign-field value encoded as L = ceil(bits(p)/32) little-
// endian 32-bit limbs. Most gadgets in this package consume and produce
// Elements in reduced form (0 <= value < p); Field.AssertIsValid checks
// that invariant explicitly where it is not implied by construction.
type Element[FF FieldParams] struct {
	Limbs []frontend.Variable
}

// Field builds and solves non-native arithmetic circuits over the foreign
// prime named by FF. Construct one per circuit (it caches the foreign
// modulus, its limb count, and a shared range-check instance).
type Field[FF FieldParams] struct {
	api      frontend.API
	rc       *bigint.Checker
	params   FF
	modulus  *big.Int
	numLimbs int
	log      zerolog.Logger
}

// NewField constructs a Field bound to api.
func NewField[FF FieldParams](api frontend.API) *Field[FF] {
	var params FF
	numLimbs := bigint.NumLimbs(params.Bits())
	f := &Field[FF]{
		api:      api,
		rc:       bigint.NewChecker(api),
		params:   params,
		modulus:  params.Modulus(),
		numLimbs: numLimbs,
		log:      log.With().Str("component", "nonnative").Int("limbs", numLimbs).Logger(),
	}
	f.log.Debug().Str("modulus", f.modulus.Text(16)).Msg("field constructed")
	return f
}

// NbLimbs returns L = ceil(bits(p)/32), the canonical limb width for FF.
func (f *Field[FF]) NbLimbs() int { return f.numLimbs }

// Modulus returns the foreign prime p.
func (f *Field[FF]) Modulus() *big.Int { return new(big.Int).Set(f.modulus) }

// modulusLimbs returns p's limb decomposition as circuit constants.
func (f *Field[FF]) modulusLimbs() []frontend.Variable {
	return bigint.Constant(f.modulus, f.numLimbs)
}

// Virtual allocates L fresh limb wires with no constraint on their value.
func (f *Field[FF]) Virtual() Element[FF] {
	return Element[FF]{Limbs: bigint.Virtual(f.api, f.numLimbs)}
}

// maxOverflowLimbs is the width of a Mul intermediate: two L-limb
// operands, schoolbook-multiplied, give bigint.Mul's 2L+1 limbs (2L for
// the product plus one carry-out limb) before reduce folds them back
// down. AddMany's accumulator, which grows by one limb per addend, is not
// bounded by it.
func (f *Field[FF]) maxOverflowLimbs() int { return 2*f.numLimbs + 1 }

// VirtualSized allocates k fresh limb wires, used where an intermediate
// (e.g. a multiplication overflow) needs more than L limbs. Panics with
// ErrOverflowWidthExhausted if k exceeds the width of a Mul intermediate.
func (f *Field[FF]) VirtualSized(k int) Element[FF] {
	if k > f.maxOverflowLimbs() {
		panic(fmt.Errorf("nonnative: VirtualSized: width %d exceeds max %d: %w", k, f.maxOverflowLimbs(), ErrOverflowWidthExhausted))
	}
	return Element[FF]{Limbs: bigint.Virtual(f.api, k)}
}

// Constant pins an Element's limbs to the little-endian 32-bit digits of
// x's canonical representative mod p. The result is always reduced.
func (f *Field[FF]) Constant(x *big.Int) Element[FF] {
	canonical := f.params.FromCanonical(x)
	return Element[FF]{Limbs: bigint.Constant(canonical, f.numLimbs)}
}

// Zero returns the additive identity.
func (f *Field[FF]) Zero() Element[FF] {
	return f.Constant(new(big.Int))
}

// NewElement wraps x as a reduced Element without silently folding it mod
// p the way Constant does: x must already be x's own unique representative
// in [0, p), which is the shape a witness-assignment helper (as opposed to
// a compile-time Constant) is expected to hand in. Returns ErrUnreduced
// otherwise.
func (f *Field[FF]) NewElement(x *big.Int) (Element[FF], error) {
	if x.Sign() < 0 || x.Cmp(f.modulus) >= 0 {
		return Element[FF]{}, fmt.Errorf("nonnative: NewElement: %w", ErrUnreduced)
	}
	return Element[FF]{Limbs: bigint.Constant(x, f.numLimbs)}, nil
}

// FromBigInt wraps an existing limb vector of width L as an Element
// without range-checking it against p; the caller is responsible for
// reducedness.
func (f *Field[FF]) FromBigInt(h []frontend.Variable) Element[FF] {
	if len(h) != f.numLimbs {
		panic(fmt.Errorf("nonnative: FromBigInt: got %d limbs, want %d: %w", len(h), f.numLimbs, ErrShapeMismatch))
	}
	return Element[FF]{Limbs: h}
}

// ToBigInt is the inverse view: project an Element back to its raw limb
// vector.
func (f *Field[FF]) ToBigInt(e Element[FF]) []frontend.Variable {
	return e.Limbs
}

// Connect asserts limb-wise equality of two Elements. Both must already be
// in reduced form; equality is otherwise meaningless (two different
// integers can share a residue mod p).
func (f *Field[FF]) Connect(a, b Element[FF]) {
	bigint.AssertEqual(f.api, a.Limbs, b.Limbs)
}

// AssertIsReduced asserts that e's integer value is strictly less than p.
func (f *Field[FF]) AssertIsReduced(e Element[FF]) {
	bigint.AssertLess(f.api, e.Limbs, f.modulusLimbs())
}
