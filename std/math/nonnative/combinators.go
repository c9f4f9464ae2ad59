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

// Select returns a if cond is boolean-true, else b. Both operands must
// share this Field's limb width; cond is not itself asserted boolean here,
// since most callers already have it as the output of an API.IsZero,
// AssertIsBoolean-checked wire, or similar.
func (f *Field[FF]) Select(cond frontend.Variable, a, b Element[FF]) Element[FF] {
	out := make([]frontend.Variable, f.numLimbs)
	for i := 0; i < f.numLimbs; i++ {
		out[i] = f.api.Select(cond, limbOf(a, i), limbOf(b, i))
	}
	return Element[FF]{Limbs: out}
}

// ConditionalNegate returns -a if cond is boolean-true, else a.
func (f *Field[FF]) ConditionalNegate(cond frontend.Variable, a Element[FF]) Element[FF] {
	return f.Select(cond, f.Neg(a), a)
}

// RandomAccess returns options[idx] as an Element, using the same
// equality-indicator scan as the underlying limb-level RandomAccess. idx
// is not range-checked against len(options); an out-of-range idx yields
// the all-zero Element instead of failing at constraint-build time,
// matching the limb-level primitive's contract.
func (f *Field[FF]) RandomAccess(idx frontend.Variable, options []Element[FF]) Element[FF] {
	raw := make([][]frontend.Variable, len(options))
	for i, o := range options {
		raw[i] = o.Limbs
	}
	return Element[FF]{Limbs: bigint.RandomAccess(f.api, idx, raw)}
}

// ToBits decomposes a into its little-endian bit representation, one bit
// per wire, numLimbs*LimbBits long. Each limb is split independently via
// the host builder's base-2 decomposition; the limbs themselves are
// assumed already range-checked to LimbBits; this is IsZero-safe even on
// an unreduced Element, since it is a pure base-2^32 -> base-2 rewrite
// with no dependence on p.
func (f *Field[FF]) ToBits(a Element[FF]) []frontend.Variable {
	out := make([]frontend.Variable, 0, f.numLimbs*bigint.LimbBits)
	for _, limb := range a.Limbs {
		out = append(out, bigint.SplitLEBase2(f.api, limb, bigint.LimbBits)...)
	}
	return out
}

func limbOf[FF FieldParams](e Element[FF], i int) frontend.Variable {
	if i < len(e.Limbs) {
		return e.Limbs[i]
	}
	return 0
}
