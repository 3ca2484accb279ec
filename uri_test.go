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
	"testing"
)

func TestParseURI(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"https://example.com/probs/out-of-credit", false},
		{"/account/12345/msgs/abc", false},
		{"urn:uuid:6e8bc430-9c3a-11d9-9669-0800200c9a66", false},
		{"about:blank", false},
		{"ht tp://bad", true},
		{"https://example.com/{template}", true},
		{"line\nbreak", true},
	}

	for _, tt := range tests {
		u, err := ParseURI(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseURI(%q): expected error", tt.in)
			}
			if !errors.Is(err, ErrInvalidURI) {
				t.Fatalf("ParseURI(%q): error %v must wrap ErrInvalidURI", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseURI(%q): %v", tt.in, err)
		}
		if u.String() != tt.in {
			t.Fatalf("ParseURI(%q).String() = %q", tt.in, u)
		}
	}
}

func TestMustParseURI_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustParseURI("ht tp://bad")
}

func TestBlankType_FreshInstance(t *testing.T) {
	a := BlankType()
	a.Opaque = "mutated"
	if BlankType().String() != "about:blank" {
		t.Fatal("BlankType must not share state across calls")
	}
}
