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

import "github.com/consensys/gnark/frontend"

// NbElements returns numLimbs, the number of native frontend.Variable
// wires a single Element occupies. Circuits that embed Elements in their
// own public/secret witness structs use this to size flat variable slices
// without reaching into the internal/bigint limb width directly.
func (f *Field[FF]) NbElements() int { return f.numLimbs }

// Elements flattens a sequence of Elements into one native variable slice,
// limb-major within each Element, Elements concatenated in order.
func (f *Field[FF]) Elements(es ...Element[FF]) []frontend.Variable {
	out := make([]frontend.Variable, 0, len(es)*f.numLimbs)
	for _, e := range es {
		out = append(out, e.Limbs...)
	}
	return out
}

// FromElements is the inverse of Elements: it slices a flat variable
// vector back into n Elements of this Field's limb width.
func (f *Field[FF]) FromElements(flat []frontend.Variable, n int) []Element[FF] {
	out := make([]Element[FF], n)
	for i := 0; i < n; i++ {
		out[i] = Element[FF]{Limbs: flat[i*f.numLimbs : (i+1)*f.numLimbs]}
	}
	return out
}

// AssertIsValid asserts both that every limb of e fits in LimbBits bits
// and that e's integer value is strictly less than p. Gadgets that accept
// an Element from outside this package (a public input, a hint output
// wrapped via FromBigInt) should call this once before using it in
// further arithmetic; every constructor in this package that is supposed
// to already produce a valid Element (Constant, Zero, the arithmetic
// operations) does not re-assert it on every use for that reason.
func (f *Field[FF]) AssertIsValid(e Element[FF]) {
	f.rc.RangeCheckU32(e.Limbs...)
	f.AssertIsReduced(e)
}
