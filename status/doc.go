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

// Package status is the standard status lookup table for problems.
//
// It maps numeric HTTP status codes to their canonical human titles and
// back. The table is fixed program data: lookups are pure functions and
// safe for unsynchronized concurrent use.
//
// Several historical names share a numeric code (413 was "Payload Too
// Large" before RFC 9110 renamed it "Content Too Large"; 103 was used
// for the non-standard "Checkpoint"). The deprecated names remain as
// alias constants, but reverse lookups resolve to the non-deprecated
// entry: there is exactly one title per code.
package status
