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

// Mul returns the little-endian limb decomposition of a*b, with
// len(a)+len(b)+1 limbs (the last one is normalize's carry-out limb, zero
// for an honest witness). Schoolbook multiplication accumulates every a_i*b_j
// cross term into a native-field accumulator (safe: the native field here
// is a SNARK scalar field, orders of magnitude wider than the sum of a few
// dozen 64-bit partial products), then a single base-2^32 renormalization
// pass turns the accumulator into proper limbs.
func Mul(api frontend.API, a, b []frontend.Variable) []frontend.Variable {
	na, nb := len(a), len(b)
	acc := make([]frontend.Variable, na+nb)
	for i := range acc {
		acc[i] = frontend.Variable(0)
	}
	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			acc[i+j] = api.Add(acc[i+j], api.Mul(a[i], b[j]))
		}
	}
	return normalize(api, acc)
}

// normalize carries a vector of oversized accumulator slots down to proper
// LimbBits-wide limbs.
func normalize(api frontend.API, acc []frontend.Variable) []frontend.Variable {
	out := make([]frontend.Variable, len(acc)+1)
	var carry frontend.Variable = 0
	for i, slot := range acc {
		s := api.Add(slot, carry)
		bits := api.ToBinary(s, carryBits)
		out[i] = api.FromBinary(bits[:LimbBits]...)
		carry = api.FromBinary(bits[LimbBits:]...)
	}
	out[len(acc)] = carry
	return out
}
