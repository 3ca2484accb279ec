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

// Package problems models machine-readable error payloads ("problem
// details") in the style of RFC 7807 / RFC 9457.
//
// The central type is Problem: an immutable value holding the five
// standard members (type, title, status, detail, instance) plus an open
// set of extension members. Problems are created through a Builder,
// which applies the defaulting rules at Build time:
//
//   - type falls back to "about:blank" when never set;
//   - title, when never set, is derived from the numeric status via the
//     probx.dev/problems/status lookup table;
//   - status defaults to 0, meaning "unspecified".
//
// A completed Problem is immutable and safe to share between
// goroutines. Builders are plain scratch objects and are not.
//
// The Context type is a small string key/value side-channel (trace ids,
// request ids) consumed by the mapping engine in
// probx.dev/problems/mapper, which derives Problems from error values
// declaratively.
//
// Transport adapters live in the httpx and grpcx subpackages, and logx
// provides a structured-logging view. The core package itself performs
// no I/O.
package problems
