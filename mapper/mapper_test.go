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
	"fmt"
	"sync"
	"testing"

	"probx.dev/problems"
)

// notFoundError declares its mapping inline, the common case for
// domain error types.
type notFoundError struct {
	Resource string
	id       string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.id)
}

func (e *notFoundError) ProblemMapping() Mapping {
	return Mapping{
		Type:       "https://example.com/probs/not-found",
		Status:     404,
		Detail:     "failed: {message}",
		Instance:   "/resources/{id}",
		Extensions: []string{"Resource", "id"},
	}
}

// baseError carries metadata that embedding types inherit through
// method promotion.
type baseError struct{}

func (baseError) Error() string { return "base failure" }

func (baseError) ProblemMapping() Mapping {
	return Mapping{Status: 400, Detail: "{message}"}
}

// quotaError inherits baseError's mapping but supplies its own message.
type quotaError struct {
	baseError
	Limit int
}

func (quotaError) Error() string { return "quota exceeded" }

// badURIError declares a type template that interpolates into garbage.
type badURIError struct{}

func (badURIError) Error() string { return "oops" }

func (badURIError) ProblemMapping() Mapping {
	return Mapping{Type: "ht tp://bad", Status: 500, Detail: "{message}"}
}

// panicError simulates a broken metadata hook.
type panicError struct{}

func (panicError) Error() string { return "panics" }

func (panicError) ProblemMapping() Mapping { panic(errors.New("metadata exploded")) }

// uriPanicError raises the fail-fast URI panic from inside its hook.
type uriPanicError struct{}

func (uriPanicError) Error() string { return "uri panic" }

func (uriPanicError) ProblemMapping() Mapping {
	problems.MustParseURI("ht tp://bad")
	return Mapping{}
}

// resolverError serves fields through the FieldResolver hook instead of
// reflection.
type resolverError struct{}

func (resolverError) Error() string { return "resolver" }

func (resolverError) ProblemMapping() Mapping {
	return Mapping{Status: 409, Detail: "conflict on {entity}", Extensions: []string{"entity"}}
}

func (resolverError) ProblemField(name string) (any, bool) {
	if name == "entity" {
		return "widget", true
	}
	return nil, false
}

func TestMapper_InterpolatesMessageAndFields(t *testing.T) {
	m := New()
	err := &notFoundError{Resource: "widget", id: "42"}

	b, mapErr := m.ToProblemBuilder(err)
	if mapErr != nil {
		t.Fatalf("unexpected error: %v", mapErr)
	}
	p := b.Build()

	if p.Type().String() != "https://example.com/probs/not-found" {
		t.Fatalf("type = %q", p.Type())
	}
	if p.Status() != 404 {
		t.Fatalf("status = %d", p.Status())
	}
	if p.Detail() != "failed: widget 42 not found" {
		t.Fatalf("detail = %q", p.Detail())
	}
	if p.Instance().String() != "/resources/42" {
		t.Fatalf("instance = %q", p.Instance())
	}
	if v, _ := p.ExtensionValue("Resource"); v != "widget" {
		t.Fatalf("Resource = %v", v)
	}
	if v, _ := p.ExtensionValue("id"); v != "42" {
		t.Fatalf("unexported field id = %v", v)
	}
}

func TestMapper_TitleDerivedFromStatus(t *testing.T) {
	b, err := New().ToProblemBuilder(&notFoundError{Resource: "widget", id: "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.Build().Title(); got != "Not Found" {
		t.Fatalf("title = %q", got)
	}
}

func TestMapper_LiteralTemplatesPassThrough(t *testing.T) {
	reg := NewRegistry().Register(errors.New(""), Mapping{
		Status: 500,
		Detail: "a plain literal detail",
	})
	m := New(WithRegistry(reg))

	b, err := m.ToProblemBuilder(errors.New("ignored"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.Build().Detail(); got != "a plain literal detail" {
		t.Fatalf("detail = %q", got)
	}
}

func TestMapper_MissingTokenBecomesEmpty(t *testing.T) {
	reg := NewRegistry().Register(errors.New(""), Mapping{
		Status: 500,
		Detail: "{message} - {missing}",
	})
	m := New(WithRegistry(reg))

	b, err := m.ToProblemBuilder(errors.New("X"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.Build().Detail(); got != "X - " {
		t.Fatalf("detail = %q, want %q", got, "X - ")
	}
}

func TestMapper_MalformedMarkersCopiedVerbatim(t *testing.T) {
	reg := NewRegistry().Register(errors.New(""), Mapping{
		Status: 500,
		Detail: "empty {} and open {message",
	})
	m := New(WithRegistry(reg))

	b, err := m.ToProblemBuilder(errors.New("X"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.Build().Detail(); got != "empty {} and open {message" {
		t.Fatalf("detail = %q", got)
	}
}

func TestMapper_ContextTokens(t *testing.T) {
	reg := NewRegistry().Register(errors.New(""), Mapping{
		Status: 500,
		Detail: "user {context.userId}: {message}",
	})
	m := New(WithRegistry(reg))

	ctx := problems.NewContext().Put("userId", "42")
	b, err := m.ToProblemBuilderWithContext(errors.New("boom"), ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.Build().Detail(); got != "user 42: boom" {
		t.Fatalf("detail = %q", got)
	}
}

func TestMapper_MissingContextKeyBecomesEmpty(t *testing.T) {
	reg := NewRegistry().Register(errors.New(""), Mapping{
		Status: 500,
		Detail: "user {context.userId}!",
	})
	m := New(WithRegistry(reg))

	b, err := m.ToProblemBuilder(errors.New("boom"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.Build().Detail(); got != "user !" {
		t.Fatalf("detail = %q", got)
	}
}

func TestMapper_InheritedMappingUsesOuterError(t *testing.T) {
	b, err := New().ToProblemBuilder(quotaError{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := b.Build()

	if p.Status() != 400 {
		t.Fatalf("status = %d, inherited status lost", p.Status())
	}
	if p.Detail() != "quota exceeded" {
		t.Fatalf("detail = %q, must interpolate against the outer error", p.Detail())
	}
}

func TestMapper_InvalidDynamicURIDropped(t *testing.T) {
	b, err := New().ToProblemBuilder(badURIError{})
	if err != nil {
		t.Fatalf("invalid interpolated URI must not fail the mapping: %v", err)
	}
	p := b.Build()

	if p.IsTypeNonBlank() {
		t.Fatalf("type = %q, invalid URI must be dropped", p.Type())
	}
	if p.Status() != 500 || p.Detail() != "oops" {
		t.Fatal("remaining members must still be applied")
	}
}

func TestMapper_FieldResolverTakesPrecedence(t *testing.T) {
	b, err := New().ToProblemBuilder(resolverError{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := b.Build()

	if p.Detail() != "conflict on widget" {
		t.Fatalf("detail = %q", p.Detail())
	}
	if v, _ := p.ExtensionValue("entity"); v != "widget" {
		t.Fatalf("entity = %v", v)
	}
}

func TestMapper_NilAndUnmappedErrors(t *testing.T) {
	m := New()

	b, err := m.ToProblemBuilder(nil)
	if err != nil {
		t.Fatalf("nil error must not fail: %v", err)
	}
	if !b.Build().Equal(problems.NewBuilder().Build()) {
		t.Fatal("nil error must yield an all-defaults builder")
	}

	b, err = m.ToProblemBuilder(errors.New("plain"))
	if err != nil {
		t.Fatalf("unmapped error must not fail: %v", err)
	}
	if !b.Build().Equal(problems.NewBuilder().Build()) {
		t.Fatal("unmapped error must yield an all-defaults builder")
	}
}

func TestMapper_IsMappingCandidate(t *testing.T) {
	reg := NewRegistry().Register(errors.New(""), Mapping{Status: 500})
	m := New(WithRegistry(reg))

	if m.IsMappingCandidate(nil) {
		t.Fatal("nil is never a candidate")
	}
	if !m.IsMappingCandidate(&notFoundError{}) {
		t.Fatal("Mappable types are candidates")
	}
	if !m.IsMappingCandidate(errors.New("registered")) {
		t.Fatal("registered types are candidates")
	}
	if New().IsMappingCandidate(errors.New("plain")) {
		t.Fatal("plain errors are not candidates without a registry entry")
	}
}

func TestMapper_RegistryOverridesDeclaredMapping(t *testing.T) {
	reg := NewRegistry().Register(&notFoundError{}, Mapping{Status: 410, Detail: "gone"})
	m := New(WithRegistry(reg))

	b, err := m.ToProblemBuilder(&notFoundError{Resource: "widget", id: "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.Build().Status(); got != 410 {
		t.Fatalf("status = %d, registry entry must win", got)
	}
}

func TestMapper_PanicBecomesMappingError(t *testing.T) {
	b, err := New().ToProblemBuilder(panicError{})
	if b != nil {
		t.Fatal("no builder expected on failure")
	}
	var me *MappingError
	if !errors.As(err, &me) {
		t.Fatalf("error = %v, want *MappingError", err)
	}
	if me.TypeName != "mapper.panicError" {
		t.Fatalf("TypeName = %q", me.TypeName)
	}
	if errors.Unwrap(me) == nil {
		t.Fatal("cause must be preserved")
	}
}

func TestMapper_InvalidURIPanicPropagates(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected the URI panic to propagate")
		}
		e, ok := r.(error)
		if !ok || !errors.Is(e, problems.ErrInvalidURI) {
			t.Fatalf("recovered %v, want ErrInvalidURI", r)
		}
	}()
	_, _ = New().ToProblemBuilder(uriPanicError{})
}

func TestMapper_EmptyInterpolatedDetailOmitted(t *testing.T) {
	reg := NewRegistry().Register(errors.New(""), Mapping{Status: 500, Detail: "{missing}"})
	m := New(WithRegistry(reg))

	b, err := m.ToProblemBuilder(errors.New("boom"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.Build().Detail(); got != "" {
		t.Fatalf("detail = %q, want unset", got)
	}
}

func TestMapper_ExtensionSkipsUnresolvableAndEmpty(t *testing.T) {
	reg := NewRegistry().Register(&notFoundError{}, Mapping{
		Status:     404,
		Extensions: []string{"Resource", "nope", " ", ""},
	})
	m := New(WithRegistry(reg))

	b, err := m.ToProblemBuilder(&notFoundError{Resource: "", id: "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if keys := b.Build().ExtensionKeys(); len(keys) != 0 {
		t.Fatalf("extensions = %v, want none", keys)
	}
}

func TestMapper_ConcurrentConversions(t *testing.T) {
	m := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				err := &notFoundError{Resource: "widget", id: fmt.Sprint(n)}
				b, mapErr := m.ToProblemBuilder(err)
				if mapErr != nil {
					t.Errorf("unexpected error: %v", mapErr)
					return
				}
				if b.Build().Status() != 404 {
					t.Error("status mismatch under concurrency")
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func BenchmarkToProblemBuilder(b *testing.B) {
	m := New()
	err := &notFoundError{Resource: "widget", id: "42"}
	for i := 0; i < b.N; i++ {
		if _, e := m.ToProblemBuilder(err); e != nil {
			b.Fatal(e)
		}
	}
}
