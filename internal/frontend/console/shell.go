package console

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/engine"
)

// Options controls the read loop.
type Options struct {
	// Prompt is written before every read.
	Prompt string
	// EOFLimit ends the session after this many consecutive end-of-input
	// reads. Zero never ends it.
	EOFLimit int
	// Color enables ANSI styling of the prompt.
	Color bool
}

// Shell drives an Engine from a Conn: prompt, read a line, hand it to the
// engine, until the session is over.
type Shell struct {
	conn   *Conn
	engine *engine.Engine
	opts   Options
	style  Styler
	logger *zap.Logger

	// mu serializes engine access between the read loop and Stop.
	mu sync.Mutex
}

// NewShell creates a Shell.
//
// Precondition: conn, eng, and logger must be non-nil; eng must write to conn.
func NewShell(conn *Conn, eng *engine.Engine, opts Options, logger *zap.Logger) *Shell {
	return &Shell{
		conn:   conn,
		engine: eng,
		opts:   opts,
		style:  Styler{Enabled: opts.Color},
		logger: logger,
	}
}

// Start shows the first room and runs the read loop.
//
// Postcondition: Returns nil once the session reached a terminal status,
// or a wrapped error if reading or writing failed.
func (s *Shell) Start() error {
	if err := s.locked(s.engine.Start); err != nil {
		return fmt.Errorf("starting session: %w", err)
	}

	eofs := 0
	for {
		if s.over() {
			return nil
		}
		if err := s.conn.WritePrompt(s.style.Apply(Bold, s.opts.Prompt)); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}

		line, err := s.conn.ReadLine()
		if s.over() {
			// Stopped while blocked on input.
			return nil
		}
		if errors.Is(err, io.EOF) {
			eofs++
			s.logger.Debug("end of input", zap.Int("count", eofs))
			// Terminate the prompt line before replying.
			if err := s.conn.WriteLine(""); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			if err := s.locked(s.engine.EndOfInput); err != nil {
				return err
			}
			if s.opts.EOFLimit > 0 && eofs >= s.opts.EOFLimit {
				s.logger.Info("input exhausted", zap.Int("eof_limit", s.opts.EOFLimit))
				return s.locked(s.engine.Interrupt)
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		eofs = 0

		if err := s.handle(line); err != nil {
			return err
		}
	}
}

// Stop ends a running session as if the player had quit. It is safe to call
// from another goroutine and after the session is over.
func (s *Shell) Stop() {
	if err := s.locked(s.engine.Interrupt); err != nil {
		s.logger.Warn("interrupting session", zap.Error(err))
	}
}

func (s *Shell) handle(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.engine.Handle(line)
	if errors.Is(err, engine.ErrSessionOver) {
		return nil
	}
	return err
}

func (s *Shell) over() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Player().Status.Terminal()
}

func (s *Shell) locked(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}
