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

package mapper

// Option configures a Mapper during construction.
type Option func(*Mapper)

// WithRegistry supplies a registry of externally declared mappings.
// Registry entries take precedence over a type's own ProblemMapping
// declaration. Populate the registry before handing it to New; it is
// not safe to register while conversions are in flight.
func WithRegistry(r *Registry) Option {
	return func(m *Mapper) {
		m.registry = r
	}
}
