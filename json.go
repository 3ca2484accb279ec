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
	"encoding/json"
)

// reservedMembers are the standard problem members. Extension members
// with one of these names never make it into serialized output; the
// standard field always wins.
var reservedMembers = map[string]bool{
	"type":     true,
	"title":    true,
	"status":   true,
	"detail":   true,
	"instance": true,
}

// IsReservedMember reports whether key is one of the five standard
// problem member names. External serializers can use this to keep
// extension members from clobbering standard ones.
func IsReservedMember(key string) bool {
	return reservedMembers[key]
}

// MarshalJSON renders the canonical application/problem+json shape:
// the five standard members plus extension members flattened to the top
// level. Absent members are omitted; "type" is always present.
func (p *Problem) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(p.extensions)+5)
	for k, v := range p.extensions {
		if reservedMembers[k] {
			continue
		}
		m[k] = v
	}
	typ := p.typ
	if typ == nil {
		typ = BlankType()
	}
	m["type"] = typ.String()
	if p.title != "" {
		m["title"] = p.title
	}
	if p.status != 0 {
		m["status"] = p.status
	}
	if p.detail != "" {
		m["detail"] = p.detail
	}
	if p.instance != nil {
		m["instance"] = p.instance.String()
	}
	return json.Marshal(m)
}

// UnmarshalJSON parses an application/problem+json document. Unknown
// top-level members become extension members; standard members with the
// wrong JSON type and unparseable URIs are dropped rather than failing
// the whole document, matching the tolerant-reader posture of RFC 9457
// consumers.
//
// No title derivation happens here: the document is taken as-is so a
// Marshal/Unmarshal round trip is lossless.
func (p *Problem) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q := Problem{extensions: make(map[string]any)}
	if s, ok := raw["type"].(string); ok {
		if u, err := ParseURI(s); err == nil {
			q.typ = u
		}
	}
	if q.typ == nil {
		q.typ = BlankType()
	}
	if s, ok := raw["title"].(string); ok {
		q.title = s
	}
	if n, ok := raw["status"].(float64); ok {
		q.status = int(n)
	}
	if s, ok := raw["detail"].(string); ok {
		q.detail = s
	}
	if s, ok := raw["instance"].(string); ok {
		if u, err := ParseURI(s); err == nil {
			q.instance = u
		}
	}
	for k, v := range raw {
		if reservedMembers[k] || v == nil {
			continue
		}
		q.extensions[k] = v
	}
	*p = q
	return nil
}

// compile-time guarantees that Problem participates in JSON encoding
var (
	_ json.Marshaler   = (*Problem)(nil)
	_ json.Unmarshaler = (*Problem)(nil)
)
