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

// Context is an optional string key/value side-channel supplied at
// mapping time (trace ids, request ids, tenant names).
//
// It holds no interpolation or validation logic; the mapping engine
// reads it via Get when resolving "context.*" placeholders. Read
// methods are safe on a nil *Context, which stands for "no context".
type Context struct {
	entries map[string]string
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{entries: make(map[string]string)}
}

// ContextOf creates a context pre-populated from a map. The entries are
// copied; later mutation of m does not affect the context.
func ContextOf(m map[string]string) *Context {
	c := &Context{entries: make(map[string]string, len(m))}
	for k, v := range m {
		c.entries[k] = v
	}
	return c
}

// ContextFrom creates an independent snapshot of another context.
// Later mutation on either side is isolated. A nil source yields an
// empty context.
func ContextFrom(other *Context) *Context {
	if other == nil {
		return NewContext()
	}
	return ContextOf(other.entries)
}

// Has reports whether the context holds a value for key.
func (c *Context) Has(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.entries[key]
	return ok
}

// Get returns the value for key and whether it is present.
func (c *Context) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.entries[key]
	return v, ok
}

// Put upserts an entry and returns the context itself for chaining:
//
//	ctx.Put("userId", "12345").Put("traceId", "abcde")
func (c *Context) Put(key, value string) *Context {
	c.entries[key] = value
	return c
}

// Remove deletes an entry and returns the context itself for chaining.
func (c *Context) Remove(key string) *Context {
	delete(c.entries, key)
	return c
}

// Len returns the number of entries.
func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Map returns a copy of all entries. Mutating the returned map does not
// affect the context.
func (c *Context) Map() map[string]string {
	m := make(map[string]string, c.Len())
	if c != nil {
		for k, v := range c.entries {
			m[k] = v
		}
	}
	return m
}

// Equal reports structural equality over the full entry set.
func (c *Context) Equal(other *Context) bool {
	if c.Len() != other.Len() {
		return false
	}
	if c == nil || other == nil {
		return true
	}
	for k, v := range c.entries {
		if ov, ok := other.entries[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
