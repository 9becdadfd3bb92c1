package console

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Conn reads lines from an input stream and writes lines and prompts to an
// output stream. Writes are serialized so the shell and a shutdown path may
// share it.
type Conn struct {
	reader *bufio.Reader
	out    io.Writer
	mu     sync.Mutex
}

// NewConn wraps in and out.
//
// Precondition: in and out must be non-nil.
func NewConn(in io.Reader, out io.Writer) *Conn {
	return &Conn{
		reader: bufio.NewReaderSize(in, 4096),
		out:    out,
	}
}

// ReadLine reads a single line of input without its line terminator.
// Control characters other than tab are dropped.
//
// Postcondition: Returns the next line, or io.EOF once input is exhausted.
// A final unterminated line is returned with a nil error; the following
// call reports io.EOF.
func (c *Conn) ReadLine() (string, error) {
	var line bytes.Buffer
	for {
		b, err := c.reader.ReadByte()
		if err != nil {
			if err == io.EOF && line.Len() > 0 {
				return line.String(), nil
			}
			return line.String(), err
		}

		if b == '\n' {
			break
		}
		if b == '\r' {
			next, err := c.reader.Peek(1)
			if err == nil && len(next) > 0 && next[0] == '\n' {
				_, _ = c.reader.ReadByte()
			}
			break
		}

		if b < 32 && b != '\t' {
			continue
		}
		line.WriteByte(b)
	}
	return line.String(), nil
}

// WriteLine writes text followed by a newline.
//
// Precondition: text should not contain a trailing newline.
func (c *Conn) WriteLine(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintf(c.out, "%s\n", text)
	return err
}

// WritePrompt writes prompt without a trailing newline.
func (c *Conn) WritePrompt(prompt string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprint(c.out, prompt)
	return err
}
