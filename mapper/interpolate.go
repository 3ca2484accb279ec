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

import (
	"fmt"
	"strings"

	"probx.dev/problems"
)

const (
	messageToken  = "message"
	contextPrefix = "context."
)

// interpolate substitutes {token} placeholders in template.
//
// The scan is left-to-right; a marker is a literal '{', a non-empty run
// of characters other than '}', then a literal '}'. Unterminated or
// empty markers are copied through verbatim. Empty resolutions are
// preserved in place; deciding what to do with a fully empty result is
// the caller's business.
func interpolate(template string, err error, ctx *problems.Context) string {
	var sb strings.Builder
	i := 0
	for i < len(template) {
		open := strings.IndexByte(template[i:], '{')
		if open < 0 {
			sb.WriteString(template[i:])
			break
		}
		open += i
		end := strings.IndexByte(template[open+1:], '}')
		if end < 0 {
			sb.WriteString(template[i:])
			break
		}
		end += open + 1
		token := template[open+1 : end]
		if token == "" {
			// "{}" carries no token; copy it through.
			sb.WriteString(template[i : end+1])
			i = end + 1
			continue
		}
		sb.WriteString(template[i:open])
		sb.WriteString(resolveToken(token, err, ctx))
		i = end + 1
	}
	return sb.String()
}

// resolveToken resolves a single placeholder token, in precedence
// order: the literal "message", then "context."-prefixed context keys,
// then struct fields. Every failure mode resolves to "".
func resolveToken(token string, err error, ctx *problems.Context) string {
	if token == messageToken {
		if err == nil {
			return ""
		}
		return err.Error()
	}
	if key, ok := strings.CutPrefix(token, contextPrefix); ok {
		v, _ := ctx.Get(key)
		return v
	}
	v := resolveField(err, token)
	if v == nil {
		return ""
	}
	return stringify(v)
}

// stringify renders a resolved value through its natural string form.
func stringify(v any) string {
	return fmt.Sprintf("%v", v)
}
