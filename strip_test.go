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
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/smartystreets/goconvey/convey"
)

func TestStripBuffer(t *testing.T) {
	convey.Convey("Strip comments and delete set", t, func() {
		p, err := New(WithQuoters("\""), WithDeleteSet("\r"), WithComment("#", "\n"))
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("empty buffer", func() {
			out, err := p.StripBuffer("")
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldEqual, "")
		})

		convey.Convey("comments and carriage returns are removed", func() {
			out, err := p.StripBuffer("a = 1 # c\nb = \"#x\"\r\n")
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldEqual, "a = 1 b = \"#x\"\n")
		})

		convey.Convey("quotations are copied verbatim", func() {
			in := "\"a\\\"b\r#c\" d"
			out, err := p.StripBuffer(in)
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldEqual, in)
		})

		convey.Convey("unterminated comment drops the rest", func() {
			out, err := p.StripBuffer("keep # drop\r")
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldEqual, "keep ")
		})

		convey.Convey("unterminated quotation fails", func() {
			_, err := p.StripBuffer("a \"b # c\n")
			convey.So(errors.Is(err, ErrUnterminatedQuote), convey.ShouldBeTrue)
		})

		convey.Convey("stripping twice changes nothing", func() {
			for _, in := range []string{
				"x = 1\r\n# all comment\ny = \"q\"\n",
				"a # b\nc \"#d\"",
				"plain",
			} {
				once, err := p.StripBuffer(in)
				convey.So(err, convey.ShouldBeNil)
				twice, err := p.StripBuffer(once)
				convey.So(err, convey.ShouldBeNil)
				convey.So(twice, convey.ShouldEqual, once)
			}
		})
	})

	convey.Convey("Splitters and specials are plain characters", t, func() {
		p, err := New(WithSplitters(" "), WithSpecials("="), WithComment("--", "\n"))
		convey.So(err, convey.ShouldBeNil)
		out, err := p.StripBuffer("a = b -- c\nd")
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldEqual, "a = b d")
	})
}

func TestStripThenTokenize(t *testing.T) {
	convey.Convey("Comments and deletions are transparent to tokenizing", t, func() {
		full, err := New(WithSplitters(" \n"), WithSpecials("="), WithQuoters("\""),
			WithDeleteSet("\r"), WithComment("#", "\n"))
		convey.So(err, convey.ShouldBeNil)
		plain, err := New(WithSplitters(" \n"), WithSpecials("="), WithQuoters("\""))
		convey.So(err, convey.ShouldBeNil)

		in := "key = \"v # 1\" # trailing\r\nother=2\r\n# full line\nlast = \"x\""

		direct, err := full.TokenizeBuffer(in, false)
		convey.So(err, convey.ShouldBeNil)
		convey.So(direct, convey.ShouldResemble,
			[]string{"key", "=", "\"v # 1\"", "other", "=", "2", "last", "=", "\"x\""})

		stripped, err := full.StripBuffer(in)
		convey.So(err, convey.ShouldBeNil)
		convey.So(stripped, convey.ShouldEqual, "key = \"v # 1\" other=2\nlast = \"x\"")

		again, err := plain.TokenizeBuffer(stripped, false)
		convey.So(err, convey.ShouldBeNil)
		convey.So(again, convey.ShouldResemble, direct)
	})
}

func TestReadAndStripFile(t *testing.T) {
	convey.Convey("Read a file and strip it", t, func() {
		dir := t.TempDir()
		name := filepath.Join(dir, "grid.grdecl")
		err := os.WriteFile(name, []byte("-- exported\r\nSPECGRID\r\n 10 10 1 '--' /\r\n"), 0644)
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("with all classes", func() {
			out, err := ReadAndStripFile(name, "'", "\r", "--", "\n")
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldEqual, "SPECGRID\n 10 10 1 '--' /\n")
		})

		convey.Convey("without comments", func() {
			out, err := ReadAndStripFile(name, "", "\r", "", "")
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldEqual, "-- exported\nSPECGRID\n 10 10 1 '--' /\n")
		})

		convey.Convey("half a comment pair", func() {
			_, err := ReadAndStripFile(name, "'", "", "--", "")
			convey.So(errors.Is(err, ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("missing file", func() {
			_, err := ReadAndStripFile(filepath.Join(dir, "nope"), "'", "", "--", "\n")
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}
