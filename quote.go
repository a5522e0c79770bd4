/*
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package parser

import "strings"

// quotationLength returns the length of the quotation at the start of s,
// both quote characters included. The quotation is closed by the next
// s[0] that does not directly follow an escape character. Only the one
// preceding character is looked at, so in `"a\\"` the last quote is still
// escaped. ok is false when s ends inside the quotation.
func quotationLength(s string) (n int, ok bool) {
	quote := s[0]
	escaped := false
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == quote && !escaped {
			return i + 1, true
		}
		escaped = c == escapeChar
	}
	return len(s), false
}

// quotedToken returns the token for the quotation s. With stripQuoteMarks
// the outer quotes are removed and escaped inner quotes are unescaped.
func quotedToken(s string, stripQuoteMarks bool) string {
	if !stripQuoteMarks {
		return s
	}
	quote := s[:1]
	return strings.ReplaceAll(s[1:len(s)-1], string(escapeChar)+quote, quote)
}
