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

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidConfig is returned by New for inconsistent character classes.
	ErrInvalidConfig = errors.New("invalid parser configuration")

	// ErrUnterminatedQuote is returned by TokenizeBuffer and StripBuffer when
	// the buffer ends inside a quotation.
	ErrUnterminatedQuote = errors.New("unterminated quotation")

	// ErrTargetContainsComment is returned by SeekTo for a target that could
	// never be found while comments are skipped.
	ErrTargetContainsComment = errors.New("seek target contains comment start")
)
