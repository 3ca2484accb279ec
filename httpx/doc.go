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

// Package httpx writes problem documents as HTTP responses.
//
// A Writer pairs a mapper.Mapper with response policy: the fallback
// status used when a problem carries none, and optional generation of a
// unique instance URI per response. Responses are serialized as
// application/problem+json per RFC 9457.
package httpx
