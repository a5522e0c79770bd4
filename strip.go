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

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/fwessels/parser/internal/fileutil"
)

// StripBuffer returns buffer with comments and delete set characters
// removed. Quotations are copied unchanged, quote marks included, and
// take precedence over comments and deletions inside them. Splitters and
// specials are ordinary characters here.
func (p *Parser) StripBuffer(buffer string) (string, error) {
	var b strings.Builder
	b.Grow(len(buffer))

	for pos := 0; pos < len(buffer); {
		rest := buffer[pos:]
		if n := p.commentLength(rest); n > 0 {
			pos += n
			continue
		}
		if n := p.deleteRun(rest); n > 0 {
			pos += n
			continue
		}
		if p.isQuoter(rest[0]) {
			n, ok := quotationLength(rest)
			if !ok {
				return "", errors.Wrapf(ErrUnterminatedQuote, "offset %d: no closing %q", pos, rest[0])
			}
			b.WriteString(rest[:n])
			pos += n
			continue
		}
		b.WriteByte(rest[0])
		pos++
	}
	return b.String(), nil
}

// ReadAndStripFile reads filename and strips it with a parser that knows
// only quotes, deletions and comments. An empty argument leaves that class
// unset.
func ReadAndStripFile(filename, quoteSet, deleteSet, commentStart, commentEnd string) (string, error) {
	var opts []Option
	if quoteSet != "" {
		opts = append(opts, WithQuoters(quoteSet))
	}
	if deleteSet != "" {
		opts = append(opts, WithDeleteSet(deleteSet))
	}
	if commentStart != "" {
		opts = append(opts, WithCommentStart(commentStart))
	}
	if commentEnd != "" {
		opts = append(opts, WithCommentEnd(commentEnd))
	}
	p, err := New(opts...)
	if err != nil {
		return "", err
	}

	buf, err := fileutil.ReadFile(filename)
	if err != nil {
		return "", err
	}
	out, err := p.StripBuffer(buf)
	if err != nil {
		return "", errors.Wrapf(err, "%s", fileutil.ShortPath(filename))
	}
	return out, nil
}
