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

package problems

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// blankTypeRaw is the canonical "unassigned" problem type.
const blankTypeRaw = "about:blank"

// ErrInvalidURI is returned (or raised, in fail-fast builder setters)
// when a string cannot be parsed as a URI reference.
//
// Having a dedicated sentinel makes it possible for callers and for the
// mapping engine to distinguish "this is about URI format" from other
// failures via errors.Is.
var ErrInvalidURI = errors.New("problems: invalid URI")

// BlankType returns the default "about:blank" type URI.
//
// A fresh value is returned on every call; *url.URL is mutable, and
// sharing a package-level instance would let a caller corrupt every
// Problem built afterwards.
func BlankType() *url.URL {
	return &url.URL{Scheme: "about", Opaque: "blank"}
}

// ParseURI parses s as a URI reference.
//
// It is stricter than url.Parse: characters that are never legal in a
// URI (spaces, control characters, the <>"{}|\^` set) are rejected even
// though url.Parse would tolerate some of them in path components. The
// returned error always wraps ErrInvalidURI.
func ParseURI(s string) (*url.URL, error) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c == 0x7f || strings.IndexByte(" <>\"{}|\\^`", c) >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidURI, s)
		}
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidURI, s, err)
	}
	return u, nil
}

// MustParseURI is the panic-on-error variant of ParseURI. It is useful
// for declaring package-level type URIs in var blocks.
func MustParseURI(s string) *url.URL {
	u, err := ParseURI(s)
	if err != nil {
		panic(err)
	}
	return u
}

// cloneURL returns an independent copy of u (nil-safe).
// url.Userinfo is immutable, so the shallow copy is sufficient.
func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

// urlEqual compares two URIs by their textual form.
func urlEqual(a, b *url.URL) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}
