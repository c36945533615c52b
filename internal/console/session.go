// Package console runs the interactive gadget store menu.
//
// A Session reads operator input line by line, re-prompts until each field is
// acceptable, calls the catalog, and renders the results as tables. It owns all
// terminal I/O; the catalog performs none.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/gadgetstore/pkg/types"
)

// Options configures a Session.
type Options struct {
	In  io.Reader
	Out io.Writer
	// Color enables ANSI colors for headings and status lines.
	Color bool
	// Pause waits for Enter after each command so its output stays visible.
	Pause bool
	// ClearScreen clears the terminal before each screen header.
	ClearScreen bool
	Logger      *zap.Logger
}

const (
	bannerWidth = 50
	clearSeq    = "\033[H\033[2J"
	appTitle    = "GADGET STORE MANAGEMENT SYSTEM"
)

// Session is one run of the menu loop against a catalog.
type Session struct {
	store types.Catalog
	in    *bufio.Reader
	out   io.Writer
	log   *zap.Logger
	opts  Options

	heading *color.Color
	success *color.Color
	failure *color.Color
}

// New creates a session. Nil In, Out, or Logger fall back to an empty
// reader, io.Discard, and a no-op logger.
func New(store types.Catalog, opts Options) *Session {
	if opts.In == nil {
		opts.In = strings.NewReader("")
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return &Session{
		store:   store,
		in:      bufio.NewReader(opts.In),
		out:     opts.Out,
		log:     opts.Logger.With(zap.String("session", id.String())),
		opts:    opts,
		heading: paint(opts.Color, color.FgCyan, color.Bold),
		success: paint(opts.Color, color.FgGreen),
		failure: paint(opts.Color, color.FgRed),
	}
}

func paint(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Run shows the menu until the operator exits or input ends. End of input is
// a normal exit.
func (s *Session) Run() error {
	s.log.Info("session started")
	defer s.log.Info("session ended")

	for {
		err := s.step()
		if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
			s.println("\nThank you for using Gadget Store Management System!")
			return nil
		}
		if err != nil {
			s.log.Error("session aborted", zap.Error(err))
			return err
		}
	}
}

var errExit = errors.New("exit requested")

// step shows the menu once and runs the chosen command.
func (s *Session) step() error {
	s.header(appTitle)
	s.println("\n1. Add Gadget")
	s.println("2. Search Gadget")
	s.println("3. Delete Gadget")
	s.println("4. Modify Gadget")
	s.println("5. List All Gadgets")
	s.println("6. Exit")

	choice, err := s.readLine("\nEnter your choice (1-6): ")
	if err != nil {
		return err
	}

	key := byte(0)
	if choice != "" {
		key = choice[0]
	}
	switch key {
	case '1':
		return s.add()
	case '2':
		return s.search()
	case '3':
		return s.remove()
	case '4':
		return s.modify()
	case '5':
		return s.list()
	case '6':
		return errExit
	default:
		s.log.Debug("invalid menu choice", zap.String("choice", choice))
		s.failure.Fprintln(s.out, "\nInvalid choice!")
		return s.pause()
	}
}

// readLine prints prompt and returns the next input line without its line
// terminator or surrounding spaces. A final unterminated line is returned
// before io.EOF.
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) header(title string) {
	if s.opts.ClearScreen {
		fmt.Fprint(s.out, clearSeq)
	}
	rule := strings.Repeat("=", bannerWidth)
	s.println(rule)
	pad := (bannerWidth - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	s.heading.Fprintln(s.out, strings.Repeat(" ", pad)+title)
	s.println(rule)
}

func (s *Session) pause() error {
	if !s.opts.Pause {
		return nil
	}
	_, err := s.readLine("\nPress Enter to continue...")
	return err
}
