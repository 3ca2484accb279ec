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
	"net/url"

	"probx.dev/problems/status"
)

// Builder is a mutable accumulator for Problem values.
//
// All setters return the receiver for chaining. A builder is a
// thread-confined scratch object; it is not reset by Build, so a caller
// may keep mutating it and call Build again for another independent
// snapshot.
type Builder struct {
	typ        *url.URL
	title      string
	status     int
	detail     string
	instance   *url.URL
	extensions map[string]any
}

// NewBuilder creates an empty builder. Building it immediately yields
// the all-defaults Problem: about:blank type, status 0, no title.
func NewBuilder() *Builder {
	return &Builder{extensions: make(map[string]any)}
}

// Type sets the problem type URI. The value is copied; later mutation
// of u does not affect the builder.
func (b *Builder) Type(u *url.URL) *Builder {
	b.typ = cloneURL(u)
	return b
}

// TypeString sets the problem type from its string form.
//
// A malformed URI is a programmer or configuration mistake and fails
// fast: the call panics with an error wrapping ErrInvalidURI. An empty
// string clears the type.
func (b *Builder) TypeString(s string) *Builder {
	if s == "" {
		b.typ = nil
		return b
	}
	return b.Type(MustParseURI(s))
}

// Title sets the short human-readable summary.
func (b *Builder) Title(title string) *Builder {
	b.title = title
	return b
}

// Status sets the numeric HTTP status code.
func (b *Builder) Status(code int) *Builder {
	b.status = code
	return b
}

// StatusOf sets the status from a known status constant. The zero
// Status resets the code to 0 but leaves a previously set title
// untouched.
func (b *Builder) StatusOf(st status.Status) *Builder {
	b.status = int(st)
	return b
}

// Detail sets the occurrence-specific explanation.
func (b *Builder) Detail(detail string) *Builder {
	b.detail = detail
	return b
}

// Instance sets the occurrence URI. The value is copied.
func (b *Builder) Instance(u *url.URL) *Builder {
	b.instance = cloneURL(u)
	return b
}

// InstanceString sets the occurrence URI from its string form, with the
// same fail-fast behavior as TypeString.
func (b *Builder) InstanceString(s string) *Builder {
	if s == "" {
		b.instance = nil
		return b
	}
	return b.Instance(MustParseURI(s))
}

// Extension sets a single extension member.
//
// A nil value deletes the key from the accumulator rather than being
// ignored; this matters for ToBuilder round trips. An empty name is a
// no-op.
func (b *Builder) Extension(name string, value any) *Builder {
	if name == "" {
		return b
	}
	if value == nil {
		delete(b.extensions, name)
		return b
	}
	b.extensions[name] = value
	return b
}

// Extensions merges extension members from a map. Entries with an empty
// key or a nil value are silently skipped; the rest of the batch still
// applies.
func (b *Builder) Extensions(extensions map[string]any) *Builder {
	for k, v := range extensions {
		if k == "" || v == nil {
			continue
		}
		b.extensions[k] = v
	}
	return b
}

// ExtensionEntries merges detached Extension entries. Entries with an
// empty key or a nil value are silently skipped. Each entry is copied
// by key and value; mutating the original afterwards has no effect.
func (b *Builder) ExtensionEntries(extensions ...Extension) *Builder {
	for _, e := range extensions {
		if e.Key == "" || e.Value == nil {
			continue
		}
		b.extensions[e.Key] = e.Value
	}
	return b
}

// Build applies the defaulting policy and produces a new immutable
// Problem:
//
//  1. type defaults to "about:blank" when never set;
//  2. title, when never set, is derived from the status via the
//     standard status table; for status 0 or an unrecognized code the
//     title stays empty (no lookup is attempted for 0);
//  3. status defaults to 0;
//  4. extension members carry over verbatim.
//
// The builder keeps its state, so further mutation followed by another
// Build yields another independent snapshot.
func (b *Builder) Build() *Problem {
	typ := cloneURL(b.typ)
	if typ == nil {
		typ = BlankType()
	}
	title := b.title
	if title == "" && b.status != 0 {
		if t, ok := status.Title(b.status); ok {
			title = t
		}
	}
	extensions := make(map[string]any, len(b.extensions))
	for k, v := range b.extensions {
		extensions[k] = v
	}
	return &Problem{
		typ:        typ,
		title:      title,
		status:     b.status,
		detail:     b.detail,
		instance:   cloneURL(b.instance),
		extensions: extensions,
	}
}
