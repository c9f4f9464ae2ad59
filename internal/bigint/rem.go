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

import "github.com/consensys/gnark/frontend"

// Virtual allocates numLimbs fresh, unconstrained limb wires. The caller
// must constrain them (directly, or by Connect-ing them to something else)
// before relying on their value; Virtual itself asserts nothing.
func Virtual(api frontend.API, numLimbs int) []frontend.Variable {
	out, err := api.NewHint(zeroHint, numLimbs)
	if err != nil {
		panic(err)
	}
	return out
}

// Rem returns (quotient, remainder) such that x = quotient*m + remainder,
// with remainder < m enforced here via AssertLess. quotient has
// len(x)-len(m)+1 limbs, remainder has len(m) limbs.
func Rem(api frontend.API, checker *Checker, x, m []frontend.Variable) (quotient, remainder []frontend.Variable) {
	nx, nm := len(x), len(m)
	nq := nx - nm + 1
	if nq < 1 {
		nq = 1
	}

	inputs := make([]frontend.Variable, 0, 1+nx+nm)
	inputs = append(inputs, nm)
	inputs = append(inputs, x...)
	inputs = append(inputs, m...)

	outs, err := api.NewHint(remainderHint, nq+nm, inputs...)
	if err != nil {
		panic(err)
	}
	quotient = outs[:nq]
	remainder = outs[nq:]

	checker.RangeCheckU32(quotient...)
	checker.RangeCheckU32(remainder...)

	product := Mul(api, quotient, m)
	sum := Add(api, product, remainder)
	AssertEqual(api, sum, x)
	AssertLess(api, remainder, m)

	return quotient, remainder
}
