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

package status

import "strconv"

// Status is a known HTTP status code.
//
// It is defined as a separate type (not just int) so that builder APIs
// can explicitly declare "a known status constant" as opposed to an
// arbitrary number. The zero value None means "unspecified".
type Status int

// None is the zero, "unspecified" status. It has no title.
const None Status = 0

// Code returns the numeric status code.
func (s Status) Code() int {
	return int(s)
}

// Title returns the canonical human title for the status, or "" when
// the code is not in the table.
func (s Status) Title() string {
	return titles[s]
}

// Valid reports whether the status is one of the known codes.
func (s Status) Valid() bool {
	_, ok := titles[s]
	return ok
}

// String returns "<code> <title>", or just the code for unknown
// statuses.
func (s Status) String() string {
	t, ok := titles[s]
	if !ok {
		return strconv.Itoa(int(s))
	}
	return strconv.Itoa(int(s)) + " " + t
}

// Title resolves the canonical title for a numeric code. The second
// result reports whether the code is known; code 0 is never known.
//
// When multiple historical names map to the same code, the
// non-deprecated title is returned.
func Title(code int) (string, bool) {
	t, ok := titles[Status(code)]
	return t, ok
}

// Find resolves a numeric code to its Status constant, preferring the
// non-deprecated entry for duplicate codes.
func Find(code int) (Status, bool) {
	if _, ok := titles[Status(code)]; ok {
		return Status(code), true
	}
	return None, false
}
