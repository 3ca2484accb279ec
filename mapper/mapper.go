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

import (
	"errors"
	"strings"

	"probx.dev/problems"
)

// Mapper converts error values into pre-populated problem builders
// according to their declared Mappings.
//
// A Mapper holds no per-conversion state and is safe for concurrent use
// from any number of goroutines, provided the registry it reads was
// populated before first use.
type Mapper struct {
	registry *Registry
}

// New constructs a Mapper.
//
// Without options the mapper recognizes only error types that implement
// Mappable; pass WithRegistry to also cover types that were registered
// externally.
func New(opts ...Option) *Mapper {
	m := &Mapper{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// IsMappingCandidate reports whether err carries mapping metadata,
// either declared on its type (possibly through an embedded ancestor)
// or registered in the mapper's registry. A nil err is never a
// candidate.
func (m *Mapper) IsMappingCandidate(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := m.registry.Lookup(err); ok {
		return true
	}
	_, ok := err.(Mappable)
	return ok
}

// ToProblemBuilder is ToProblemBuilderWithContext with no context.
func (m *Mapper) ToProblemBuilder(err error) (*problems.Builder, error) {
	return m.ToProblemBuilderWithContext(err, nil)
}

// ToProblemBuilderWithContext converts err into a problems.Builder
// populated from its mapping metadata, interpolated against err and
// ctx (which may be nil).
//
// A nil err, or one with no metadata, yields an empty all-defaults
// builder and a nil error: not being mappable is not a failure. The
// only returned error is *MappingError, wrapping a genuinely
// unexpected failure; fail-fast ErrInvalidURI panics raised by direct
// builder misuse inside metadata hooks are re-raised as-is rather than
// double-wrapped.
func (m *Mapper) ToProblemBuilderWithContext(err error, ctx *problems.Context) (b *problems.Builder, retErr error) {
	if err == nil {
		return problems.NewBuilder(), nil
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && errors.Is(e, problems.ErrInvalidURI) {
			panic(r)
		}
		b = nil
		retErr = newMappingError(err, r)
	}()

	mapping, ok := m.findMapping(err)
	if !ok {
		return problems.NewBuilder(), nil
	}

	b = problems.NewBuilder()
	applyType(b, mapping, err, ctx)
	applyTitle(b, mapping, err, ctx)
	applyStatus(b, mapping)
	applyDetail(b, mapping, err, ctx)
	applyInstance(b, mapping, err, ctx)
	applyExtensions(b, mapping, err)
	return b, nil
}

// findMapping locates err's metadata: an explicit registry entry takes
// precedence over the type's own ProblemMapping declaration.
func (m *Mapper) findMapping(err error) (Mapping, bool) {
	if mp, ok := m.registry.Lookup(err); ok {
		return mp, true
	}
	if ma, ok := err.(Mappable); ok {
		return ma.ProblemMapping(), true
	}
	return Mapping{}, false
}

// applyType interpolates the type template; empty results and invalid
// dynamic URIs leave the type unset.
func applyType(b *problems.Builder, mapping Mapping, err error, ctx *problems.Context) {
	raw := strings.TrimSpace(mapping.Type)
	if raw == "" {
		return
	}
	s := interpolate(raw, err, ctx)
	if s == "" {
		return
	}
	if u, uriErr := problems.ParseURI(s); uriErr == nil {
		b.Type(u)
	}
}

// applyTitle interpolates the title template; empty results leave the
// title unset so Build can derive it from the status.
func applyTitle(b *problems.Builder, mapping Mapping, err error, ctx *problems.Context) {
	raw := strings.TrimSpace(mapping.Title)
	if raw == "" {
		return
	}
	if s := interpolate(raw, err, ctx); s != "" {
		b.Title(s)
	}
}

// applyStatus applies the declared status when greater than zero.
func applyStatus(b *problems.Builder, mapping Mapping) {
	if mapping.Status > 0 {
		b.Status(mapping.Status)
	}
}

// applyDetail interpolates the detail template; empty results leave the
// detail unset.
func applyDetail(b *problems.Builder, mapping Mapping, err error, ctx *problems.Context) {
	raw := strings.TrimSpace(mapping.Detail)
	if raw == "" {
		return
	}
	if s := interpolate(raw, err, ctx); s != "" {
		b.Detail(s)
	}
}

// applyInstance interpolates the instance template with the same
// tolerance as applyType.
func applyInstance(b *problems.Builder, mapping Mapping, err error, ctx *problems.Context) {
	raw := strings.TrimSpace(mapping.Instance)
	if raw == "" {
		return
	}
	s := interpolate(raw, err, ctx)
	if s == "" {
		return
	}
	if u, uriErr := problems.ParseURI(s); uriErr == nil {
		b.Instance(u)
	}
}

// applyExtensions resolves each configured field name on err and adds
// it as an extension member, skipping blank names, nil values, and
// empty strings.
func applyExtensions(b *problems.Builder, mapping Mapping, err error) {
	for _, name := range mapping.Extensions {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		v := resolveField(err, name)
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		b.Extension(name, v)
	}
}
