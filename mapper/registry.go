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

import "reflect"

// Registry maps error types to Mappings without touching the types
// themselves. It exists for error types the caller cannot modify (from
// the standard library or third-party code); types under the caller's
// control normally implement Mappable instead.
//
// Populate the registry at startup and treat it as read-only
// afterwards; lookups are unsynchronized by design, matching the
// "immutable program-configuration data" contract of the engine.
type Registry struct {
	entries map[reflect.Type]Mapping
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[reflect.Type]Mapping)}
}

// Register declares the mapping for prototype's type. Only the dynamic
// type matters; the value itself is discarded, so a zero value works:
//
//	reg.Register(&net.DNSError{}, mapper.Mapping{Status: 502, ...})
//
// Registering the same type again replaces the previous declaration.
// It returns the registry itself for chaining.
func (r *Registry) Register(prototype error, m Mapping) *Registry {
	if prototype == nil {
		return r
	}
	r.entries[baseType(prototype)] = m
	return r
}

// Lookup resolves the mapping for err's dynamic type. When the exact
// type has no entry, embedded (anonymous) fields are searched in
// declaration order, nearest declaration first, which mirrors walking
// up an inheritance chain.
func (r *Registry) Lookup(err error) (Mapping, bool) {
	if err == nil || r == nil {
		return Mapping{}, false
	}
	return r.lookupType(baseType(err))
}

func (r *Registry) lookupType(t reflect.Type) (Mapping, bool) {
	if m, ok := r.entries[t]; ok {
		return m, true
	}
	if t.Kind() != reflect.Struct {
		return Mapping{}, false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if m, ok := r.lookupType(ft); ok {
			return m, true
		}
	}
	return Mapping{}, false
}

// baseType returns err's dynamic type with pointer indirections
// stripped, so *T and T register and resolve identically.
func baseType(err error) reflect.Type {
	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
