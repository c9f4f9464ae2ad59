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

// Less returns 1 if a < b as integers, else 0. Both operands must already
// be range-checked to LimbBits per limb, and padded to the same length by
// the caller (shorter vectors are treated as zero-padded).
func Less(api frontend.API, a, b []frontend.Variable) frontend.Variable {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	var less frontend.Variable = 0
	var eqSoFar frontend.Variable = 1
	for i := n - 1; i >= 0; i-- {
		ai, bi := limbAt(a, i), limbAt(b, i)
		c := api.Cmp(ai, bi) // -1, 0 or 1
		limbLess := api.IsZero(api.Add(c, 1))
		limbEq := api.IsZero(c)

		less = api.Select(eqSoFar, api.Select(limbLess, 1, less), less)
		eqSoFar = api.Select(eqSoFar, limbEq, 0)
	}
	return less
}

// AssertLess asserts a < b as integers.
func AssertLess(api frontend.API, a, b []frontend.Variable) {
	api.AssertIsEqual(Less(api, a, b), 1)
}
