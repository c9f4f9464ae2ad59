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
	"io"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"
)

// formatVersion is bumped whenever the wire layout of descriptorRecord
// changes. Readers reject anything with a different major version.
var formatVersion = semver.MustParse("1.0.0")

// descriptorRecord is what WriteTo/ReadFrom actually puts on the wire: a
// format tag, the foreign modulus, its limb width, and the generator
// identifiers an Element built against it may have registered, mirroring
// the "version tag then generator id + handle list" layout
// internal/backend/.../cs.r1cs_sparse.go uses for its own WriteTo/ReadFrom.
type descriptorRecord struct {
	Version    string   `cbor:"version"`
	ModulusHex string   `cbor:"modulus"`
	Bits       int      `cbor:"bits"`
	NumLimbs   int      `cbor:"num_limbs"`
	Generators []string `cbor:"generators"`
}

// knownGenerators is the closed set of witness-generator identifiers this
// package's operations can register against a solved circuit.
var knownGenerators = []string{
	additionGeneratorID,
	multipleAddsGeneratorID,
	subtractionGeneratorID,
	multiplicationGeneratorID,
	inverseGeneratorID,
}

// WriteTo serializes the Field's foreign-field descriptor (modulus, limb
// width, and the generator identifiers it may emit) to w as cbor, prefixed
// with a semver format tag.
func (f *Field[FF]) WriteTo(w io.Writer) (int64, error) {
	rec := descriptorRecord{
		Version:    formatVersion.String(),
		ModulusHex: f.modulus.Text(16),
		Bits:       f.params.Bits(),
		NumLimbs:   f.numLimbs,
		Generators: knownGenerators,
	}
	enc, err := cbor.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("nonnative: encode descriptor: %w", err)
	}
	n, err := w.Write(enc)
	return int64(n), err
}

// ReadFrom deserializes a descriptor previously produced by WriteTo and
// validates it against this Field's own modulus and limb width. A format
// version with a different major component, or a modulus/limb-width
// mismatch, is reported as an error rather than silently accepted.
func (f *Field[FF]) ReadFrom(r io.Reader) (int64, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	if len(raw) == 0 {
		return 0, io.ErrUnexpectedEOF
	}

	var rec descriptorRecord
	if err := cbor.Unmarshal(raw, &rec); err != nil {
		return int64(len(raw)), fmt.Errorf("nonnative: decode descriptor: %w", err)
	}

	version, err := semver.Parse(rec.Version)
	if err != nil {
		return int64(len(raw)), fmt.Errorf("nonnative: parse format version %q: %w", rec.Version, err)
	}
	if version.Major != formatVersion.Major {
		return int64(len(raw)), fmt.Errorf("nonnative: incompatible format version %s (want major %d)", version, formatVersion.Major)
	}

	if rec.ModulusHex != f.modulus.Text(16) {
		return int64(len(raw)), newError("ReadFrom", ErrKindModulusMismatch,
			fmt.Sprintf("descriptor modulus %s does not match field modulus %s", rec.ModulusHex, f.modulus.Text(16)))
	}
	if rec.NumLimbs != f.numLimbs {
		return int64(len(raw)), newError("ReadFrom", ErrKindInvalidLimbWidth,
			fmt.Sprintf("descriptor has %d limbs, field has %d", rec.NumLimbs, f.numLimbs))
	}

	return int64(len(raw)), nil
}
