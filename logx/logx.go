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

// Package logx integrates problem documents with zerolog.
//
// Object adapts a problem to zerolog's object marshaling so it can be
// logged structurally:
//
//	log.Error().Object("problem", logx.Object(p)).Msg("request failed")
package logx

import (
	"github.com/rs/zerolog"

	"probx.dev/problems"
)

// Object wraps p for structured logging. Unset members are omitted
// from the log event; extension members are emitted in sorted key
// order after the standard ones.
func Object(p *problems.Problem) zerolog.LogObjectMarshaler {
	return problemObject{p: p}
}

type problemObject struct {
	p *problems.Problem
}

func (o problemObject) MarshalZerologObject(e *zerolog.Event) {
	if o.p == nil {
		return
	}
	e.Str("type", o.p.Type().String())
	if t := o.p.Title(); t != "" {
		e.Str("title", t)
	}
	if s := o.p.Status(); s != 0 {
		e.Int("status", s)
	}
	if d := o.p.Detail(); d != "" {
		e.Str("detail", d)
	}
	if inst := o.p.Instance(); inst != nil {
		e.Str("instance", inst.String())
	}
	for _, key := range o.p.ExtensionKeys() {
		v, _ := o.p.ExtensionValue(key)
		e.Interface(key, v)
	}
}
