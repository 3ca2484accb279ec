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
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// ContentType is the MIME type for problem payloads.
const ContentType = "application/problem+json"

// UnknownTitle is a generic title for problems whose status maps to no
// known standard title.
//
// The builder never applies it on its own: when the title is unset and
// the status is 0 or unrecognized, the built Problem simply has an
// empty title. UnknownTitle exists for callers that want an explicit
// generic fallback.
const UnknownTitle = "Unknown Error"

// ErrEmptyKey is raised by NewExtension when the extension key is empty.
var ErrEmptyKey = errors.New("problems: empty extension key")

// Problem is an immutable problem-details value.
//
// It carries:
//   - Type: a URI identifying the class of problem ("about:blank" when
//     unassigned);
//   - Title: a short, human-readable summary;
//   - Status: the HTTP status code, 0 meaning "unspecified";
//   - Detail: a human-readable explanation specific to this occurrence;
//   - Instance: a URI identifying this specific occurrence;
//   - extension members: arbitrary application-specific key/value pairs.
//
// Instances are created by Builder.Build and never mutated afterwards;
// every accessor returns defensive copies of mutable data, so a Problem
// can be shared freely between goroutines. Derive modified copies via
// ToBuilder.
type Problem struct {
	typ        *url.URL
	title      string
	status     int
	detail     string
	instance   *url.URL
	extensions map[string]any
}

// Extension is a single named extension member, detached from any
// Problem. Mutating a detached Extension after it has been absorbed by
// a builder does not affect the Problem: entries are copied by key and
// value at absorption time.
type Extension struct {
	Key   string
	Value any
}

// NewExtension creates a named extension entry.
//
// An empty key is a programmer error and fails fast with an ErrEmptyKey
// panic.
func NewExtension(key string, value any) Extension {
	if key == "" {
		panic(ErrEmptyKey)
	}
	return Extension{Key: key, Value: value}
}

// New creates a Problem with the given status and all defaults applied.
func New(statusCode int) *Problem {
	return NewBuilder().Status(statusCode).Build()
}

// NewTitled creates a Problem with an explicit title and status.
func NewTitled(title string, statusCode int) *Problem {
	return NewBuilder().Title(title).Status(statusCode).Build()
}

// NewDetailed creates a Problem with a title, status and occurrence
// detail.
func NewDetailed(title string, statusCode int, detail string) *Problem {
	return NewBuilder().Title(title).Status(statusCode).Detail(detail).Build()
}

// Type returns the problem type URI. It is never nil on a built
// Problem; the returned value is an independent copy.
func (p *Problem) Type() *url.URL {
	return cloneURL(p.typ)
}

// Title returns the short human-readable summary, or "" when absent.
func (p *Problem) Title() string {
	return p.title
}

// Status returns the HTTP status code, 0 meaning "unspecified".
func (p *Problem) Status() int {
	return p.status
}

// Detail returns the occurrence-specific explanation, or "" when absent.
func (p *Problem) Detail() string {
	return p.detail
}

// Instance returns the occurrence URI, or nil when absent. The returned
// value is an independent copy.
func (p *Problem) Instance() *url.URL {
	return cloneURL(p.instance)
}

// ExtensionKeys returns the sorted set of extension member keys.
func (p *Problem) ExtensionKeys() []string {
	keys := make([]string, 0, len(p.extensions))
	for k := range p.extensions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ExtensionValue returns the value of a named extension member. The
// second result reports whether the member is present; a Problem never
// stores nil-valued members.
func (p *Problem) ExtensionValue(name string) (any, bool) {
	v, ok := p.extensions[name]
	return v, ok
}

// HasExtension reports whether a named extension member is present.
func (p *Problem) HasExtension(name string) bool {
	_, ok := p.extensions[name]
	return ok
}

// Extensions returns a copy of all extension members. Mutating the
// returned map does not affect the Problem.
func (p *Problem) Extensions() map[string]any {
	m := make(map[string]any, len(p.extensions))
	for k, v := range p.extensions {
		m[k] = v
	}
	return m
}

// IsTypeNonBlank reports whether the type member was assigned to
// something other than the "about:blank" sentinel.
func (p *Problem) IsTypeNonBlank() bool {
	if p.typ == nil {
		return false
	}
	s := p.typ.String()
	return s != "" && s != blankTypeRaw
}

// ToBuilder spawns a new builder pre-populated with this Problem's
// values. The Problem itself is left untouched; this is the only way to
// derive a modified copy.
func (p *Problem) ToBuilder() *Builder {
	b := &Builder{
		typ:        cloneURL(p.typ),
		title:      p.title,
		status:     p.status,
		detail:     p.detail,
		instance:   cloneURL(p.instance),
		extensions: make(map[string]any, len(p.extensions)),
	}
	for k, v := range p.extensions {
		b.extensions[k] = v
	}
	return b
}

// Equal reports structural equality over all six members. Extension
// maps are compared by content.
func (p *Problem) Equal(other *Problem) bool {
	if p == nil || other == nil {
		return p == other
	}
	if !urlEqual(p.typ, other.typ) ||
		p.title != other.title ||
		p.status != other.status ||
		p.detail != other.detail ||
		!urlEqual(p.instance, other.instance) {
		return false
	}
	if len(p.extensions) != len(other.extensions) {
		return false
	}
	for k, v := range p.extensions {
		ov, ok := other.extensions[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// String returns a stable, debug-oriented rendering:
//
//	Problem{type="about:blank", title="Not Found", status=404, userId="u-1"}
//
// Absent members are omitted (status is always printed), extension
// members are sorted by key. Canonical JSON encoding is the job of
// MarshalJSON or an external serializer; this form is for logs and
// test failure messages.
func (p *Problem) String() string {
	entries := make([]string, 0, 5+len(p.extensions))
	if p.typ != nil {
		entries = append(entries, "type="+strconv.Quote(p.typ.String()))
	}
	if p.title != "" {
		entries = append(entries, "title="+strconv.Quote(p.title))
	}
	entries = append(entries, "status="+strconv.Itoa(p.status))
	if p.detail != "" {
		entries = append(entries, "detail="+strconv.Quote(p.detail))
	}
	if p.instance != nil {
		entries = append(entries, "instance="+strconv.Quote(p.instance.String()))
	}
	for _, k := range p.ExtensionKeys() {
		entries = append(entries, k+"="+renderValue(p.extensions[k]))
	}
	return "Problem{" + strings.Join(entries, ", ") + "}"
}

// renderValue formats a single extension value for String: strings and
// URIs quoted, numbers and booleans bare, everything else quoted via
// its natural string form.
func renderValue(v any) string {
	switch t := v.(type) {
	case string:
		return strconv.Quote(t)
	case *url.URL:
		return strconv.Quote(t.String())
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprintf("%v", t)
	default:
		return strconv.Quote(fmt.Sprintf("%v", t))
	}
}
