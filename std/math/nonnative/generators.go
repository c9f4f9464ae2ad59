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
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"

	"github.com/nume-crypto/gnark-nonnative/internal/bigint"
)

// Every arithmetic operation below needs one out-of-circuit value the
// constraint system cannot derive on its own: how many copies of p to
// subtract off an unreduced sum or product, whether a subtraction
// underflows, or a modular inverse. Each such value is
// produced by a small hint function, named the way its counterpart is
// named in the generator-based system this package's algorithms are
// grounded on, so the correspondence between "one op, one generator,
// one soundness argument" carries over even though gnark's R1CS model
// folds allocation and scheduling into frontend.API.NewHint itself.
const (
	additionGeneratorID       = "NonNativeAdditionGenerator"
	multipleAddsGeneratorID   = "NonNativeMultipleAddsGenerator"
	subtractionGeneratorID    = "NonNativeSubtractionGenerator"
	multiplicationGeneratorID = "NonNativeMultiplicationGenerator"
	inverseGeneratorID        = "NonNativeInverseGenerator"
)

func init() {
	solver.RegisterHint(subUnderflowHint)
	// inverseHint is generic over FieldParams, but Secp256K1Base is the
	// only instantiation this repo ever builds a Field against; register
	// that one concrete closure (every call to inverseHint[Secp256K1Base]
	// shares the same underlying function value regardless of the params/
	// numLimbs it closes over, so this covers every Field[Secp256K1Base]
	// at once rather than needing a per-call registration).
	solver.RegisterHint(inverseHint(Secp256K1Base{}, bigint.NumLimbs(Secp256K1Base{}.Bits())))
}

// subUnderflowHint (NonNativeSubtractionGenerator) decides whether a-b
// underflows zero as integers: it outputs 1 if a < b, else 0, so the
// caller can add p to a before handing it to the limb-level Sub gadget,
// which only ever sees a non-negative difference.
func subUnderflowHint(_ *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	n := len(inputs) / 2
	a := bigint.ToBigInt(inputs[:n])
	b := bigint.ToBigInt(inputs[n:])
	if a.Cmp(b) < 0 {
		outputs[0].SetInt64(1)
	} else {
		outputs[0].SetInt64(0)
	}
	return nil
}

// inverseHint (NonNativeInverseGenerator) returns a hint that computes
// x^-1 mod p out of circuit via the field's own Inverse method; the
// in-circuit half (Field.Inverse) verifies x*result = 1 (mod p).
func inverseHint[FF FieldParams](params FF, numLimbs int) func(*big.Int, []*big.Int, []*big.Int) error {
	return func(_ *big.Int, inputs []*big.Int, outputs []*big.Int) error {
		x := bigint.ToBigInt(inputs[:numLimbs])
		inv := params.Inverse(x)
		if inv == nil {
			// Hints run during Solve before Field.Inverse's own x != 0
			// constraint is checked, so a zero witness can still reach
			// here; fail the solve with the same error a caller checking
			// errors.Is(err, ErrZeroInverse) would expect, rather than
			// waiting on the later unsatisfiable constraint.
			return fmt.Errorf("nonnative: inverseHint: %w", ErrZeroInverse)
		}
		limbs := bigint.FromBigInt(inv, numLimbs)
		for i, l := range limbs {
			outputs[i].Set(l)
		}
		return nil
	}
}

// needsBorrow returns 1 as a circuit boolean if the integer value of a is
// less than b, via the NonNativeSubtractionGenerator hint, unchecked; the
// caller is expected to have already range-checked a and b to LimbBits
// per limb so the comparison the hint performs matches the one the
// surrounding Sub circuitry relies on.
func needsBorrow(api frontend.API, a, b []frontend.Variable) frontend.Variable {
	inputs := make([]frontend.Variable, 0, len(a)+len(b))
	inputs = append(inputs, a...)
	inputs = append(inputs, b...)
	out, err := api.NewHint(subUnderflowHint, 1, inputs...)
	if err != nil {
		panic(err)
	}
	api.AssertIsBoolean(out[0])
	return out[0]
}
