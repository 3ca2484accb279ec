/*
   Copyright 2025 The Probx Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

// Mapping is the declarative description of how an error type becomes a
// problem payload.
//
// The four string templates support {token} interpolation as described
// in the package documentation; Status is a bare code with no
// interpolation. Empty templates mean "leave the member unset".
// Mappings are plain configuration data declared once per error type
// and must not be mutated after the program starts.
type Mapping struct {
	// Type is the template for the problem type URI.
	// An interpolated value that is empty or not a valid URI leaves the
	// type unset.
	Type string

	// Title is the template for the short human-readable summary.
	Title string

	// Status is the HTTP status code for the problem. 0 means
	// "unspecified" and is not applied to the builder.
	Status int

	// Detail is the template for the occurrence-specific explanation.
	Detail string

	// Instance is the template for the occurrence URI, with the same
	// invalid-URI tolerance as Type.
	Instance string

	// Extensions lists names of fields on the error struct to expose as
	// extension members. Values resolving to nil or the empty string
	// are omitted.
	Extensions []string
}

// Mappable is implemented by error types that declare their own
// problem mapping.
//
// Embedding a Mappable error type propagates the declaration to the
// outer type through method promotion, which gives the usual
// inheritance behavior: a subtype without its own declaration uses the
// nearest ancestor's, and an own declaration replaces the inherited one
// entirely.
type Mappable interface {
	error

	// ProblemMapping returns the declared mapping. Implementations
	// should return a fixed value; the engine may call this on every
	// conversion.
	ProblemMapping() Mapping
}

// FieldResolver may be implemented by error types that want explicit
// control over placeholder and extension field resolution, instead of
// (or in addition to) struct reflection.
//
// The engine consults ProblemField first; a (value, true) result is
// used as-is, while (_, false) falls back to reflection over the struct
// fields.
type FieldResolver interface {
	// ProblemField resolves a named field. The boolean reports whether
	// the name is known to the resolver.
	ProblemField(name string) (any, bool)
}
