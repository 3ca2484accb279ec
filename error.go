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
	"strconv"
	"strings"
)

// Error is an error value that carries a Problem.
//
// It lets application code raise a fully described problem directly and
// lets transport adapters recover the payload at the boundary without
// re-deriving it. The wrapped cause (if any) participates in errors.Is
// and errors.As chains via Unwrap.
type Error struct {
	problem *Problem
	message string
	cause   error
}

// ErrorOption is a functional option for constructing an Error.
type ErrorOption func(*Error)

// WithMessage replaces the derived error message. Use it when the
// problem's title/detail are client-facing but logs need something
// else.
func WithMessage(message string) ErrorOption {
	return func(e *Error) { e.message = message }
}

// WithCause attaches the underlying error for debugging and unwrapping.
func WithCause(cause error) ErrorOption {
	return func(e *Error) { e.cause = cause }
}

// NewError creates an Error around a Problem.
//
// Usage:
//
//	return problems.NewError(p,
//	    problems.WithCause(err),
//	)
//
// Unless overridden with WithMessage, the message is derived from the
// problem as "<title>: <detail> (code: <status>)", skipping absent
// parts.
func NewError(p *Problem, opts ...ErrorOption) *Error {
	e := &Error{problem: p}
	for _, opt := range opts {
		opt(e)
	}
	if e.message == "" {
		e.message = problemMessage(p)
	}
	return e
}

// Error implements the built-in error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.message
}

// Problem returns the carried problem payload.
func (e *Error) Problem() *Problem {
	return e.problem
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// problemMessage derives a log-friendly one-liner from a problem.
func problemMessage(p *Problem) string {
	if p == nil {
		return "problem"
	}
	var sb strings.Builder
	if p.Title() != "" {
		sb.WriteString(p.Title())
	}
	if p.Detail() != "" {
		if sb.Len() > 0 {
			sb.WriteString(": ")
		}
		sb.WriteString(p.Detail())
	}
	if p.Status() != 0 {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("(code: " + strconv.Itoa(p.Status()) + ")")
	}
	if sb.Len() == 0 {
		return "problem"
	}
	return sb.String()
}
