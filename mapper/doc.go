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

// Package mapper derives problem payloads from error values
// declaratively.
//
// An error type describes its problem shape once, as a Mapping: five
// string templates (type, title, status, detail, instance) plus a list
// of field names to expose as extension members. The engine inspects a
// concrete error, interpolates the templates against it, and returns a
// pre-populated problems.Builder.
//
// # Declaring mappings
//
// Error types under your control implement Mappable:
//
//	type ValidationError struct {
//	    userID string
//	    field  string
//	}
//
//	func (e *ValidationError) Error() string { return "validation failed for " + e.userID }
//
//	func (e *ValidationError) ProblemMapping() mapper.Mapping {
//	    return mapper.Mapping{
//	        Type:       "https://example.org/errors/validation",
//	        Title:      "Validation Failed",
//	        Status:     400,
//	        Detail:     "invalid input for user {userID}, trace {context.traceId}",
//	        Extensions: []string{"userID", "field"},
//	    }
//	}
//
// A type that embeds ValidationError inherits the mapping through
// method promotion; declaring its own ProblemMapping replaces the
// inherited one entirely (no merging). For error types you cannot
// modify, register the mapping in a Registry instead.
//
// # Interpolation
//
// Templates may contain {token} placeholders:
//
//   - {message} resolves to the error's Error() string;
//   - {context.key} resolves against the Context supplied at mapping
//     time;
//   - any other token resolves to the like-named field of the error
//     struct, searching its own fields first and then embedded structs.
//
// Tokens that cannot be resolved become the empty string. Malformed or
// unterminated markers are copied through verbatim. A whole field whose
// interpolated value is empty is left unset, so the builder's usual
// defaulting still applies; type and instance templates that
// interpolate into an invalid URI are dropped the same way.
//
// # Failure semantics
//
// The engine never fails for malformed templates, missing fields, or
// invalid dynamic URIs. The only error it returns is *MappingError,
// wrapping a genuinely unexpected failure together with the offending
// error's type name. Callers are expected to fall back to a generic
// Problem when they see one.
//
// A Mapper is stateless; a single instance may be shared by any number
// of goroutines.
package mapper
