// Package testutil provides test helpers: world fixtures and an in-memory
// client for driving a console session.
package testutil

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"time"
)

// ConsoleClient plays the player's side of a console session over in-memory
// pipes. Hand In and Out to the code under test.
type ConsoleClient struct {
	// In is the session's input stream.
	In io.Reader
	// Out is the session's output stream.
	Out io.Writer

	inW     *io.PipeWriter
	chunks  chan []byte
	pending string
	t       *testing.T
}

// NewConsoleClient creates a client whose pipes are closed when the test ends.
//
// Postcondition: Returns a client that continuously drains Out.
func NewConsoleClient(t *testing.T) *ConsoleClient {
	t.Helper()
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	c := &ConsoleClient{
		In:     inR,
		Out:    outW,
		inW:    inW,
		chunks: make(chan []byte, 64),
		t:      t,
	}
	go c.drain(outR)

	t.Cleanup(func() {
		_ = inW.Close()
		_ = outW.Close()
	})
	return c
}

func (c *ConsoleClient) drain(r io.Reader) {
	defer close(c.chunks)
	buf := make([]byte, 1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			c.chunks <- append([]byte(nil), buf[:n]...)
		}
		if err != nil {
			return
		}
	}
}

// ReadUntil reads output until substr appears or timeout elapses.
// It returns everything read up to and including the match; output after the
// match is kept for the next call.
//
// Precondition: substr must be non-empty.
// Postcondition: Returns the accumulated output ending in substr, or fails the test.
func (c *ConsoleClient) ReadUntil(substr string, timeout time.Duration) string {
	c.t.Helper()
	deadline := time.After(timeout)
	for {
		if i := strings.Index(c.pending, substr); i >= 0 {
			end := i + len(substr)
			out := c.pending[:end]
			c.pending = c.pending[end:]
			return out
		}
		select {
		case chunk, ok := <-c.chunks:
			if !ok {
				c.t.Fatalf("reading until %q: output closed after %q", substr, c.pending)
				return ""
			}
			c.pending += string(chunk)
		case <-deadline:
			c.t.Fatalf("reading until %q: timed out after %q", substr, c.pending)
			return ""
		}
	}
}

// Send writes a line of player input.
//
// Precondition: text should not contain trailing newline characters.
func (c *ConsoleClient) Send(text string) {
	c.t.Helper()
	if _, err := fmt.Fprintf(c.inW, "%s\n", text); err != nil {
		c.t.Fatalf("sending %q: %v", text, err)
	}
}

// CloseInput signals end of input to the session.
func (c *ConsoleClient) CloseInput() {
	_ = c.inW.Close()
}
