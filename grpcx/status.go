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

package grpcx

import (
	"encoding/json"
	"fmt"

	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"probx.dev/problems"
)

// ToStatus encodes p as a gRPC status. The status code is projected
// from the problem's HTTP status via CodeFromHTTP, the message is the
// problem's detail (falling back to its title), and the whole document
// is attached as a google.protobuf.Struct detail so FromError can
// recover it losslessly.
//
// If the detail cannot be attached the bare status is returned; the
// code and message always survive.
func ToStatus(p *problems.Problem) *gstatus.Status {
	if p == nil {
		return gstatus.New(CodeFromHTTP(0), "")
	}
	msg := p.Detail()
	if msg == "" {
		msg = p.Title()
	}
	base := gstatus.New(CodeFromHTTP(p.Status()), msg)

	with, err := base.WithDetails(toStruct(p))
	if err != nil {
		return base
	}
	return with
}

// FromError recovers the problem document attached by ToStatus. The
// second result is false when err carries no gRPC status or the status
// has no problem detail.
func FromError(err error) (*problems.Problem, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		s, ok := d.(*structpb.Struct)
		if !ok {
			continue
		}
		raw, jerr := json.Marshal(s.AsMap())
		if jerr != nil {
			continue
		}
		var p problems.Problem
		if jerr := json.Unmarshal(raw, &p); jerr != nil {
			continue
		}
		return &p, true
	}
	return nil, false
}

// toStruct flattens p into a protobuf Struct with the same member
// layout as its JSON serialization.
func toStruct(p *problems.Problem) *structpb.Struct {
	fields := make(map[string]*structpb.Value)
	for _, key := range p.ExtensionKeys() {
		v, _ := p.ExtensionValue(key)
		fields[key] = toValue(v)
	}
	fields["type"] = structpb.NewStringValue(p.Type().String())
	if p.Title() != "" {
		fields["title"] = structpb.NewStringValue(p.Title())
	}
	if p.Status() != 0 {
		fields["status"] = structpb.NewNumberValue(float64(p.Status()))
	}
	if p.Detail() != "" {
		fields["detail"] = structpb.NewStringValue(p.Detail())
	}
	if inst := p.Instance(); inst != nil {
		fields["instance"] = structpb.NewStringValue(inst.String())
	}
	return &structpb.Struct{Fields: fields}
}

// toValue converts an arbitrary extension value. Values outside the
// Struct value domain degrade to their string form rather than being
// dropped.
func toValue(v any) *structpb.Value {
	pv, err := structpb.NewValue(v)
	if err != nil {
		return structpb.NewStringValue(fmt.Sprintf("%v", v))
	}
	return pv
}
