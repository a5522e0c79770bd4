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

// Package parser splits text into tokens according to a small set of
// configurable character classes: splitters, specials, quoters, a delete
// set and a comment start/end pair.
package parser

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/fwessels/parser/internal/logutil"
)

// escapeChar marks the following quote character as part of the quotation.
const escapeChar = '\\'

// Parser holds the character classes. It is immutable once New returns and
// may be shared between goroutines.
type Parser struct {
	splitters    string
	specials     string
	quoters      string
	deleteSet    string
	commentStart string
	commentEnd   string

	logger *zap.Logger
}

// Option configures a Parser.
type Option func(*settings)

// settings records which classes were supplied so that empty values can
// be told apart from absent ones.
type settings struct {
	splitters, specials, quoters, deleteSet *string
	commentStart, commentEnd                *string
	logger                                  *zap.Logger
}

// WithSplitters sets the characters that separate tokens and are discarded.
func WithSplitters(s string) Option { return func(o *settings) { o.splitters = &s } }

// WithSpecials sets the characters emitted as one-character tokens.
func WithSpecials(s string) Option { return func(o *settings) { o.specials = &s } }

// WithQuoters sets the characters that open and close a quotation.
func WithQuoters(s string) Option { return func(o *settings) { o.quoters = &s } }

// WithDeleteSet sets the characters that are removed without splitting.
func WithDeleteSet(s string) Option { return func(o *settings) { o.deleteSet = &s } }

// WithCommentStart sets the string opening a comment. It requires
// WithCommentEnd.
func WithCommentStart(s string) Option { return func(o *settings) { o.commentStart = &s } }

// WithCommentEnd sets the string closing a comment. It requires
// WithCommentStart.
func WithCommentEnd(s string) Option { return func(o *settings) { o.commentEnd = &s } }

// WithComment sets both comment delimiters.
func WithComment(start, end string) Option {
	return func(o *settings) {
		o.commentStart = &start
		o.commentEnd = &end
	}
}

// WithLogger sets the logger used for seek warnings. The process-wide
// logger is used otherwise.
func WithLogger(l *zap.Logger) Option { return func(o *settings) { o.logger = l } }

// New validates the options and returns a Parser. Every class that is
// given must be non-empty, and the comment delimiters come in pairs.
func New(opts ...Option) (*Parser, error) {
	var o settings
	for _, opt := range opts {
		opt(&o)
	}

	p := &Parser{logger: o.logger}
	for _, f := range []struct {
		name string
		in   *string
		out  *string
	}{
		{"splitters", o.splitters, &p.splitters},
		{"specials", o.specials, &p.specials},
		{"quoters", o.quoters, &p.quoters},
		{"delete set", o.deleteSet, &p.deleteSet},
		{"comment start", o.commentStart, &p.commentStart},
		{"comment end", o.commentEnd, &p.commentEnd},
	} {
		if f.in == nil {
			continue
		}
		if *f.in == "" {
			return nil, errors.Wrapf(ErrInvalidConfig, "need at least one character in %s", f.name)
		}
		*f.out = *f.in
	}

	if o.commentStart == nil && o.commentEnd != nil {
		return nil, errors.Wrap(ErrInvalidConfig, "comment end given without comment start")
	}
	if o.commentStart != nil && o.commentEnd == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "comment start given without comment end")
	}

	if p.logger == nil {
		p.logger = logutil.GetGlobalLogger()
	}
	return p, nil
}

func (p *Parser) Splitters() string    { return p.splitters }
func (p *Parser) Specials() string     { return p.specials }
func (p *Parser) Quoters() string      { return p.quoters }
func (p *Parser) DeleteSet() string    { return p.deleteSet }
func (p *Parser) CommentStart() string { return p.commentStart }
func (p *Parser) CommentEnd() string   { return p.commentEnd }

// HasComments reports whether comment delimiters are configured.
func (p *Parser) HasComments() bool { return p.commentStart != "" }

func inSet(c byte, set string) bool {
	return set != "" && strings.IndexByte(set, c) >= 0
}

func (p *Parser) isSplitter(c byte) bool { return inSet(c, p.splitters) }
func (p *Parser) isSpecial(c byte) bool  { return inSet(c, p.specials) }
func (p *Parser) isQuoter(c byte) bool   { return inSet(c, p.quoters) }
func (p *Parser) isDeleted(c byte) bool  { return inSet(c, p.deleteSet) }

// spanOf returns the length of the run at the start of s made of bytes
// in set.
func spanOf(s, set string) int {
	if set == "" {
		return 0
	}
	n := 0
	for n < len(s) && strings.IndexByte(set, s[n]) >= 0 {
		n++
	}
	return n
}

func (p *Parser) splitterRun(s string) int { return spanOf(s, p.splitters) }
func (p *Parser) deleteRun(s string) int   { return spanOf(s, p.deleteSet) }

// commentLength returns the number of bytes of the comment starting at s,
// including both delimiters, or 0 when s does not start a comment. A
// comment without an end runs to the end of s.
func (p *Parser) commentLength(s string) int {
	if !p.HasComments() || !strings.HasPrefix(s, p.commentStart) {
		return 0
	}
	n := len(p.commentStart)
	for n < len(s) {
		if strings.HasPrefix(s[n:], p.commentEnd) {
			return n + len(p.commentEnd)
		}
		n++
	}
	return n
}
