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

import "math/big"

// FieldParams is the compile-time capability a foreign prime must supply:
// its modulus, its bit length, a projection of an arbitrary (possibly
// out-of-range) big.Int down to its canonical representative, and modular
// inversion. Field is generic over a zero-sized type implementing this
// interface (see Secp256K1Base below), the same convention gnark's own
// std/math/emulated package uses for its emparams types.
type FieldParams interface {
	Modulus() *big.Int
	Bits() int
	// FromCanonical projects x onto its canonical representative mod the
	// field's modulus. It exists for symmetry with the witness-side
	// "from a non-canonical big integer" conversion every caller of a
	// hint-backed operation implicitly performs; for a prime field it is
	// simply x mod p.
	FromCanonical(x *big.Int) *big.Int
	// Inverse returns x^-1 mod the field's modulus, or nil if x is zero.
	Inverse(x *big.Int) *big.Int
}

// Secp256K1Base is the base field of the secp256k1 curve, p = 2^256 - 2^32 -
// 977. It is the modulus used throughout this package's tests and the
// concrete scenarios in the specification this package implements.
type Secp256K1Base struct{}

var secp256k1P = mustParseHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

// Modulus returns the secp256k1 base field modulus.
func (Secp256K1Base) Modulus() *big.Int { return new(big.Int).Set(secp256k1P) }

// Bits returns 256.
func (Secp256K1Base) Bits() int { return 256 }

// FromCanonical reduces x modulo the secp256k1 base field modulus.
func (Secp256K1Base) FromCanonical(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, secp256k1P)
}

// Inverse returns x^-1 mod p, or nil if x == 0 mod p.
func (Secp256K1Base) Inverse(x *big.Int) *big.Int {
	return new(big.Int).ModInverse(new(big.Int).Mod(x, secp256k1P), secp256k1P)
}

func mustParseHex(s string) *big.Int {
	x, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("nonnative: invalid hex constant " + s)
	}
	return x
}
