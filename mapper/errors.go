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

import "fmt"

// MappingError reports a failure while converting an error value into a
// problem builder. It is the only error type returned by Mapper
// conversions.
type MappingError struct {
	// TypeName is the dynamic type of the error being converted, as
	// formatted by %T.
	TypeName string

	// Err is the underlying cause.
	Err error
}

// newMappingError wraps a recovered panic value for err's conversion.
func newMappingError(err error, recovered any) *MappingError {
	cause, ok := recovered.(error)
	if !ok {
		cause = fmt.Errorf("%v", recovered)
	}
	return &MappingError{
		TypeName: fmt.Sprintf("%T", err),
		Err:      cause,
	}
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapper: mapping %s: %v", e.TypeName, e.Err)
}

func (e *MappingError) Unwrap() error { return e.Err }
