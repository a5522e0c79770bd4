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

// step is the outcome of classifying the input at one position: advance
// that many bytes and, if emit is set, append token.
type step struct {
	advance int
	token   string
	emit    bool
}

func skip(n int) step { return step{advance: n} }

func emit(n int, tok string) step { return step{advance: n, token: tok, emit: true} }

// next classifies s, the unread rest of the buffer. The checks run in
// priority order and the first one that applies wins: splitters,
// comment, delete set, special, quotation, normal run.
func (p *Parser) next(s string, stripQuoteMarks bool) (step, error) {
	if n := p.splitterRun(s); n > 0 {
		return skip(n), nil
	}
	if n := p.commentLength(s); n > 0 {
		return skip(n), nil
	}
	if n := p.deleteRun(s); n > 0 {
		return skip(n), nil
	}

	c := s[0]
	if p.isSpecial(c) {
		return emit(1, s[:1]), nil
	}
	if p.isQuoter(c) {
		n, ok := quotationLength(s)
		if !ok {
			return step{}, errors.Wrapf(ErrUnterminatedQuote, "no closing %q", c)
		}
		return emit(n, quotedToken(s[:n], stripQuoteMarks)), nil
	}

	n := p.normalRun(s)
	tok := p.dropDeleted(s[:n])
	if tok == "" {
		return skip(n), nil
	}
	return emit(n, tok), nil
}

// normalRun returns the length of the plain text at the start of s. It
// stops in front of a splitter, a special, a quoter or a comment start.
// Delete set characters do not end the run.
func (p *Parser) normalRun(s string) int {
	n := 1
	for ; n < len(s); n++ {
		c := s[n]
		if p.isSplitter(c) || p.isSpecial(c) || p.isQuoter(c) {
			break
		}
		if p.commentLength(s[n:]) > 0 {
			break
		}
	}
	return n
}

func (p *Parser) dropDeleted(s string) string {
	if p.deleteSet == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if !p.isDeleted(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// TokenizeBuffer splits buffer into tokens. Quoted tokens keep their quote
// marks unless stripQuoteMarks is set. An unterminated quotation fails the
// whole call with ErrUnterminatedQuote.
func (p *Parser) TokenizeBuffer(buffer string, stripQuoteMarks bool) ([]string, error) {
	tokens := []string{}
	for pos := 0; pos < len(buffer); {
		st, err := p.next(buffer[pos:], stripQuoteMarks)
		if err != nil {
			return nil, errors.Wrapf(err, "offset %d", pos)
		}
		if st.emit {
			tokens = append(tokens, st.token)
		}
		pos += st.advance
	}
	return tokens, nil
}

// TokenizeFile reads the whole file and tokenizes its content.
func (p *Parser) TokenizeFile(filename string, stripQuoteMarks bool) ([]string, error) {
	buf, err := fileutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	tokens, err := p.TokenizeBuffer(buf, stripQuoteMarks)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", fileutil.ShortPath(filename))
	}
	return tokens, nil
}
