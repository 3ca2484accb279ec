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

package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"probx.dev/problems"
	"probx.dev/problems/mapper"
)

// Writer renders errors and problems as HTTP problem+json responses.
type Writer struct {
	mapper           *mapper.Mapper
	fallbackStatus   int
	generateInstance bool
}

// WriterOption configures a Writer during construction.
type WriterOption func(*Writer)

// WithFallbackStatus sets the response status used when a problem
// carries no status of its own, and the status of the generic problem
// emitted when mapping fails. The default is 500.
func WithFallbackStatus(code int) WriterOption {
	return func(w *Writer) {
		w.fallbackStatus = code
	}
}

// WithGeneratedInstance assigns every written problem that lacks an
// instance a fresh one of the form urn:uuid:<random-uuid>, giving each
// response a correlatable identity.
func WithGeneratedInstance() WriterOption {
	return func(w *Writer) {
		w.generateInstance = true
	}
}

// NewWriter constructs a Writer around m.
func NewWriter(m *mapper.Mapper, opts ...WriterOption) *Writer {
	w := &Writer{
		mapper:         m,
		fallbackStatus: http.StatusInternalServerError,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteError is WriteErrorContext with no interpolation context.
func (w *Writer) WriteError(rw http.ResponseWriter, err error) error {
	return w.WriteErrorContext(rw, err, nil)
}

// WriteErrorContext maps err to a problem and writes it to rw. When the
// mapping engine itself fails, a bare problem carrying only the
// fallback status is written instead, so the client always receives a
// well-formed document.
func (w *Writer) WriteErrorContext(rw http.ResponseWriter, err error, ctx *problems.Context) error {
	b, mapErr := w.mapper.ToProblemBuilderWithContext(err, ctx)
	var me *mapper.MappingError
	if errors.As(mapErr, &me) {
		return w.WriteProblem(rw, problems.New(w.fallbackStatus))
	}
	return w.WriteProblem(rw, b.Build())
}

// WriteProblem serializes p to rw with the application/problem+json
// content type. A problem without a status is written with the
// fallback status.
func (w *Writer) WriteProblem(rw http.ResponseWriter, p *problems.Problem) error {
	if w.generateInstance && p.Instance() == nil {
		u, err := problems.ParseURI("urn:uuid:" + uuid.NewString())
		if err == nil {
			p = p.ToBuilder().Instance(u).Build()
		}
	}
	code := p.Status()
	if code == 0 {
		code = w.fallbackStatus
	}
	rw.Header().Set("Content-Type", problems.ContentType)
	rw.WriteHeader(code)
	return json.NewEncoder(rw).Encode(p)
}
