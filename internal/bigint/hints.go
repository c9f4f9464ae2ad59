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

	"github.com/consensys/gnark/constraint/solver"
)

func init() {
	solver.RegisterHint(zeroHint)
	solver.RegisterHint(remainderHint)
}

// zeroHint fills a freshly allocated, still-unconstrained limb vector with
// zero. It backs Virtual/VirtualSized: callers are expected to constrain
// (or Connect) the result themselves, exactly as a bare "allocate a wire"
// primitive would on a builder that exposes one directly.
func zeroHint(_ *big.Int, _ []*big.Int, outputs []*big.Int) error {
	for i := range outputs {
		outputs[i].SetInt64(0)
	}
	return nil
}

// remainderHint computes x mod m and the matching quotient out of circuit.
// inputs[0] carries the divisor's limb width nm so the split between x's
// and m's limbs (and, symmetrically, between the quotient's and
// remainder's outputs) can be read back out of the call itself instead of
// being closed over by a per-call-site function value, which would leave
// every distinct (nx, nm) pair needing its own registration. The rest of
// inputs is x's limbs followed by m's limbs; outputs is the quotient's
// limbs followed by the remainder's limbs.
func remainderHint(_ *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	nm := int(inputs[0].Int64())
	nx := len(inputs) - 1 - nm

	x := ToBigInt(inputs[1 : 1+nx])
	m := ToBigInt(inputs[1+nx : 1+nx+nm])

	q, r := new(big.Int), new(big.Int)
	q.DivMod(x, m, r)

	nq := len(outputs) - nm
	qLimbs := FromBigInt(q, nq)
	rLimbs := FromBigInt(r, nm)
	for i, l := range qLimbs {
		outputs[i].Set(l)
	}
	for i, l := range rLimbs {
		outputs[nq+i].Set(l)
	}
	return nil
}
