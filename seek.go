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
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/fwessels/parser/internal/fileutil"
)

type WarningKind int

const (
	UnterminatedQuote WarningKind = iota
	UnterminatedComment
)

func (k WarningKind) String() string {
	switch k {
	case UnterminatedQuote:
		return "unterminated quotation"
	case UnterminatedComment:
		return "unterminated comment"
	default:
		return "unknown"
	}
}

// Warning reports a quotation or comment that was still open at the end
// of the stream.
type Warning struct {
	Kind   WarningKind
	Offset int64 // where the quotation or comment starts
	Line   int
}

func (w Warning) String() string {
	return fmt.Sprintf("%s starting at line: %d", w.Kind, w.Line)
}

// SeekResult is the outcome of SeekTo. Offset is the stream position
// after the call.
type SeekResult struct {
	Found    bool
	Offset   int64
	Warnings []Warning
}

// SeekTo reads rs from its current position looking for target, skipping
// quotations and comments on the way. On success the stream is left at
// the start of the match, or just past it when skipPast is set. Otherwise
// the stream goes back to where it was.
//
// Quotations end at the next identical quote character; escapes are not
// honored here. A quotation or comment that never ends is reported as a
// Warning and the rest of the stream is treated as consumed.
func (p *Parser) SeekTo(rs io.ReadSeeker, target string, skipPast bool) (SeekResult, error) {
	if p.HasComments() && strings.Contains(target, p.commentStart) {
		return SeekResult{}, errors.Wrapf(ErrTargetContainsComment, "%q contains %q", target, p.commentStart)
	}

	cur, err := newCursor(rs)
	if err != nil {
		return SeekResult{}, errors.Wrap(err, "seek")
	}
	initial := cur.pos
	if target == "" {
		return SeekResult{Found: true, Offset: initial}, nil
	}

	var res SeekResult
	fail := func(err error) (SeekResult, error) {
		_ = cur.seek(initial)
		return SeekResult{Offset: cur.pos, Warnings: res.Warnings}, errors.Wrap(err, "seek")
	}

	for !res.Found {
		c, ok, err := cur.readByte()
		if err != nil {
			return fail(err)
		}
		if !ok {
			break
		}

		if p.isQuoter(c) {
			start := cur.pos - 1
			closed, err := cur.skipTo(c)
			if err != nil {
				return fail(err)
			}
			if !closed {
				if err := p.warnAndDrain(cur, &res, UnterminatedQuote, start); err != nil {
					return fail(err)
				}
			}
			continue
		}

		if p.HasComments() && c == p.commentStart[0] {
			isComment, err := cur.matchRest(p.commentStart[1:])
			if err != nil {
				return fail(err)
			}
			if isComment {
				start := cur.pos - int64(len(p.commentStart))
				closed, err := cur.skipPast(p.commentEnd)
				if err != nil {
					return fail(err)
				}
				if !closed {
					if err := p.warnAndDrain(cur, &res, UnterminatedComment, start); err != nil {
						return fail(err)
					}
				}
				continue
			}
		}

		if c == target[0] {
			if res.Found, err = cur.matchRest(target[1:]); err != nil {
				return fail(err)
			}
		}
	}

	switch {
	case res.Found && !skipPast:
		err = cur.seek(cur.pos - int64(len(target)))
	case !res.Found:
		err = cur.seek(initial)
	}
	if err != nil {
		return fail(err)
	}
	res.Offset = cur.pos
	return res, nil
}

// warnAndDrain records a warning for the span opened at start and moves
// the cursor to the end of the stream.
func (p *Parser) warnAndDrain(cur *cursor, res *SeekResult, kind WarningKind, start int64) error {
	line, err := fileutil.LineNumber(cur.rs, start)
	if err != nil {
		return err
	}
	w := Warning{Kind: kind, Offset: start, Line: line}
	res.Warnings = append(res.Warnings, w)
	p.logger.Warn(kind.String(),
		zap.Int("line", w.Line),
		zap.Int64("offset", w.Offset))
	return cur.seekEnd()
}

// cursor reads an io.ReadSeeker one byte at a time and tracks the
// position so that it can rewind.
type cursor struct {
	rs  io.ReadSeeker
	pos int64
	buf [1]byte
}

func newCursor(rs io.ReadSeeker) (*cursor, error) {
	pos, err := fileutil.Tell(rs)
	if err != nil {
		return nil, err
	}
	return &cursor{rs: rs, pos: pos}, nil
}

// readByte returns ok == false at the end of the stream.
func (c *cursor) readByte() (b byte, ok bool, err error) {
	if _, err := io.ReadFull(c.rs, c.buf[:]); err != nil {
		if err == io.EOF {
			return 0, false, nil
		}
		return 0, false, err
	}
	c.pos++
	return c.buf[0], true, nil
}

func (c *cursor) seek(pos int64) error {
	n, err := c.rs.Seek(pos, io.SeekStart)
	if err != nil {
		return err
	}
	c.pos = n
	return nil
}

func (c *cursor) seekEnd() error {
	n, err := c.rs.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	c.pos = n
	return nil
}

// matchRest consumes s if the stream continues with it. Otherwise the
// position is left unchanged.
func (c *cursor) matchRest(s string) (bool, error) {
	saved := c.pos
	for i := 0; i < len(s); i++ {
		b, ok, err := c.readByte()
		if err != nil {
			return false, err
		}
		if !ok || b != s[i] {
			return false, c.seek(saved)
		}
	}
	return true, nil
}

// skipTo reads up to and including the next q.
func (c *cursor) skipTo(q byte) (bool, error) {
	for {
		b, ok, err := c.readByte()
		if err != nil || !ok {
			return false, err
		}
		if b == q {
			return true, nil
		}
	}
}

// skipPast reads up to and including the next occurrence of s.
func (c *cursor) skipPast(s string) (bool, error) {
	for {
		b, ok, err := c.readByte()
		if err != nil || !ok {
			return false, err
		}
		if b != s[0] {
			continue
		}
		found, err := c.matchRest(s[1:])
		if err != nil || found {
			return found, err
		}
	}
}
