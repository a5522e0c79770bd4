package fileutil

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// ReadFile returns the whole content of filename.
func ReadFile(filename string) (string, error) {
	bs, err := os.ReadFile(filename)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", ShortPath(filename))
	}
	return string(bs), nil
}

// FileExists reports whether p names a regular file.
func FileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}

// ShortPath trims p to its base name for messages.
func ShortPath(p string) string {
	if p == "" {
		return p
	}
	return filepath.Base(p)
}

// Tell returns the current offset of rs.
func Tell(rs io.Seeker) (int64, error) {
	return rs.Seek(0, io.SeekCurrent)
}

// LineNumber returns the 1-based line holding the byte at offset. The
// position of rs is restored before returning.
func LineNumber(rs io.ReadSeeker, offset int64) (int, error) {
	saved, err := Tell(rs)
	if err != nil {
		return 0, err
	}
	defer rs.Seek(saved, io.SeekStart)

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	lr := newLineReader(io.LimitReader(rs, offset))
	line := 1
	for {
		hasNL, ok, err := lr.next()
		if err != nil {
			return 0, err
		}
		if !ok {
			return line, nil
		}
		if hasNL {
			line++
		}
	}
}

type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next consumes one line. ok is false once the input is exhausted.
func (lr *lineReader) next() (hasNL bool, ok bool, err error) {
	s, err := lr.r.ReadSlice('\n')
	switch {
	case err == bufio.ErrBufferFull:
		return false, true, nil
	case err == io.EOF:
		return false, len(s) > 0, nil
	case err != nil:
		return false, false, err
	}
	return true, true, nil
}
