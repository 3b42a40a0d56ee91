package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader prompts on w and reads trimmed lines from r.
type Reader struct {
	r *bufio.Reader
	w io.Writer
}

func NewReader(r io.Reader, w io.Writer) *Reader {
	return &Reader{r: bufio.NewReader(r), w: w}
}

// ReadLine prints prompt and returns the next line without surrounding
// spaces. io.EOF is returned only when the input ends with nothing left to read.
func (in *Reader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(in.w, "  "+prompt+" ")
	text, err := in.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && text != "") {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseCode converts a line of digits into a code. ok is false for anything
// else, including numbers too large for an int.
func ParseCode(s string) (code int, ok bool) {
	if !IsDigits(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
