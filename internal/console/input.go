package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when a line cannot be read as the expected
// kind of value. The offending line is consumed.
var ErrInvalidInput = errors.New("invalid input")

type lineReader struct {
	r   *bufio.Reader
	out io.Writer
}

func newLineReader(in io.Reader, out io.Writer) *lineReader {
	return &lineReader{
		r:   bufio.NewReader(in),
		out: out,
	}
}

// readLine prints prompt and returns the next input line without its terminator.
// A final line lacking a newline is still returned; io.EOF comes after it.
func (lr *lineReader) readLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(lr.out, prompt)
	}

	s, err := lr.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(s, "\r\n"), nil
}

func (lr *lineReader) readInt(prompt string) (int, error) {
	s, err := lr.readLine(prompt)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}

	return n, nil
}

// readBool accepts the literal tokens true and false in any case.
func (lr *lineReader) readBool(prompt string) (bool, error) {
	s, err := lr.readLine(prompt)
	if err != nil {
		return false, err
	}

	switch t := strings.TrimSpace(s); {
	case strings.EqualFold(t, "true"):
		return true, nil
	case strings.EqualFold(t, "false"):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not true or false", ErrInvalidInput, s)
	}
}
