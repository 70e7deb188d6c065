package transcript

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const maxLineLength = 1024 * 1024

// lineReader yields the non-blank lines of a transcript with their 1-based
// line numbers and supports pushing a single line back.
type lineReader struct {
	scanner *bufio.Scanner
	lineNo  int

	pushed   bool
	lastText string
	lastNo   int
}

func newLineReader(r io.Reader) *lineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024), maxLineLength)
	return &lineReader{scanner: scanner}
}

// next returns the next non-blank line. ok is false at end of input.
func (l *lineReader) next() (text string, lineNo int, ok bool, err error) {
	if l.pushed {
		l.pushed = false
		return l.lastText, l.lastNo, true, nil
	}

	for l.scanner.Scan() {
		l.lineNo++
		text := strings.TrimRight(l.scanner.Text(), " \t\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		l.lastText, l.lastNo = text, l.lineNo
		return text, l.lineNo, true, nil
	}
	if err := l.scanner.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return "", l.lineNo + 1, false, &ParseError{
				Line:   l.lineNo + 1,
				Reason: fmt.Sprintf("line longer than %d bytes", maxLineLength),
			}
		}
		return "", l.lineNo, false, errors.Wrapf(err, "read transcript after line %d", l.lineNo)
	}
	return "", l.lineNo, false, nil
}

// unread pushes the line last returned by next back onto the reader.
func (l *lineReader) unread() {
	l.pushed = true
}
