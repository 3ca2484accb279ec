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
	"reflect"
	"unicode"
	"unicode/utf8"
	"unsafe"
)

// resolveField resolves a named field on an error value.
//
// Resolution order: an explicit FieldResolver implementation wins, then
// reflection over the error's struct fields — the struct's own fields
// first (exact name, then the exported spelling), then embedded structs
// depth-first in declaration order, so the nearest declaration shadows
// deeper ones. Unexported fields are readable. Any failure, including a
// panic out of a FieldResolver, resolves to nil.
func resolveField(err error, name string) (val any) {
	if err == nil || name == "" {
		return nil
	}
	defer func() {
		if recover() != nil {
			val = nil
		}
	}()
	if fr, ok := err.(FieldResolver); ok {
		if v, ok := fr.ProblemField(name); ok {
			return v
		}
	}
	v := reflect.ValueOf(err)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	if fv, ok := structField(v, name); ok {
		return fv
	}
	return nil
}

// structField searches v for a field called name: own (non-embedded)
// fields first, then embedded structs recursively.
func structField(v reflect.Value, name string) (any, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous || f.Name != name {
			continue
		}
		return readField(v, i), true
	}
	// Retry with the exported spelling, so a {userId} token can hit an
	// exported UserId field.
	if exported := exportedName(name); exported != name {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Anonymous || f.Name != exported {
				continue
			}
			return readField(v, i), true
		}
	}
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).Anonymous {
			continue
		}
		ev := v.Field(i)
		for ev.Kind() == reflect.Pointer {
			if ev.IsNil() {
				break
			}
			ev = ev.Elem()
		}
		if ev.Kind() != reflect.Struct {
			continue
		}
		if fv, ok := structField(ev, name); ok {
			return fv, true
		}
	}
	return nil, false
}

// readField reads field i of struct value v, including unexported
// fields (and exported fields reached through an unexported embedded
// struct, which reflect also refuses to hand out directly).
// Non-addressable values are copied into an addressable placeholder
// first; the rare combination that defeats both paths panics inside
// reflect and is absorbed by resolveField's recover.
func readField(v reflect.Value, i int) any {
	f := v.Field(i)
	if f.CanInterface() {
		return f.Interface()
	}
	if !f.CanAddr() {
		cp := reflect.New(v.Type()).Elem()
		cp.Set(v)
		f = cp.Field(i)
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem().Interface()
}

// exportedName upper-cases the first rune of name.
func exportedName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
