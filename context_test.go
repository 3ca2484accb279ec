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

import "testing"

func TestContext_PutGetRemove(t *testing.T) {
	c := NewContext().Put("userId", "42").Put("tenant", "acme")

	if v, ok := c.Get("userId"); !ok || v != "42" {
		t.Fatalf("Get(userId) = %q, %v", v, ok)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}

	c.Remove("userId")
	if c.Has("userId") {
		t.Fatal("removed key still present")
	}
}

func TestContextOf_CopiesInput(t *testing.T) {
	src := map[string]string{"k": "v"}
	c := ContextOf(src)
	src["k"] = "mutated"

	if v, _ := c.Get("k"); v != "v" {
		t.Fatalf("Get(k) = %q, source map mutation leaked", v)
	}
}

func TestContextFrom_SnapshotsAndHandlesNil(t *testing.T) {
	orig := NewContext().Put("k", "v")
	snap := ContextFrom(orig)
	orig.Put("k", "changed")

	if v, _ := snap.Get("k"); v != "v" {
		t.Fatalf("snapshot = %q, want value at copy time", v)
	}

	empty := ContextFrom(nil)
	if empty.Len() != 0 {
		t.Fatal("ContextFrom(nil) must yield an empty context")
	}
}

func TestContext_NilReceiverReads(t *testing.T) {
	var c *Context
	if c.Has("k") {
		t.Fatal("nil context has no keys")
	}
	if _, ok := c.Get("k"); ok {
		t.Fatal("nil context has no values")
	}
	if c.Len() != 0 {
		t.Fatal("nil context length must be 0")
	}
}

func TestContext_Equal(t *testing.T) {
	a := NewContext().Put("k", "v")
	b := ContextOf(map[string]string{"k": "v"})

	if !a.Equal(b) {
		t.Fatal("same entries must be equal")
	}
	if a.Equal(b.Put("extra", "1")) {
		t.Fatal("different entries must not be equal")
	}
}
