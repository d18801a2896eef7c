// Package hostscript drives a bridge.Control from a line-oriented script,
// standing in for a form host when the control runs headless.
//
//	# comment
//	set leftOptions A, B, C
//	move available B, C
//	moveall available
//	readonly on
package hostscript

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jask/formcontrols/core/duallist"
	"github.com/jask/formcontrols/internal/bridge"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
)

// maxLineBytes bounds one script line. Option lists travel on a single
// "set" line, so this is far above bufio's default token size.
const maxLineBytes = 16 << 20

type Kind string

const (
	KindSet      Kind = "set"
	KindMove     Kind = "move"
	KindMoveAll  Kind = "moveall"
	KindReadOnly Kind = "readonly"
)

// Command is one parsed script line.
type Command struct {
	Line   int
	Kind   Kind
	Name   string
	Value  string
	Side   duallist.Side
	Labels []string
	Flag   bool
}

// Parse reads a whole script. Blank lines and # comments are skipped; a
// trailing " # ..." after a command is not treated as a comment because
// labels may contain '#'.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cmd, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cmd.Line = line
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return cmds, nil
}

func parseLine(text string) (Command, error) {
	verb, rest := cut(text)
	switch Kind(strings.ToLower(verb)) {
	case KindSet:
		name, value := cut(rest)
		if name == "" {
			return Command{}, fmt.Errorf("set: property name: %w", ErrMissingArgument)
		}
		return Command{Kind: KindSet, Name: name, Value: value}, nil
	case KindMove:
		sideName, labels := cut(rest)
		side, err := parseSide(sideName)
		if err != nil {
			return Command{}, fmt.Errorf("move: %w", err)
		}
		return Command{Kind: KindMove, Side: side, Labels: duallist.ParseSource(labels)}, nil
	case KindMoveAll:
		side, err := parseSide(strings.TrimSpace(rest))
		if err != nil {
			return Command{}, fmt.Errorf("moveall: %w", err)
		}
		return Command{Kind: KindMoveAll, Side: side}, nil
	case KindReadOnly:
		switch strings.ToLower(strings.TrimSpace(rest)) {
		case "on", "true", "yes":
			return Command{Kind: KindReadOnly, Flag: true}, nil
		case "off", "false", "no":
			return Command{Kind: KindReadOnly, Flag: false}, nil
		case "":
			return Command{}, fmt.Errorf("readonly: %w", ErrMissingArgument)
		default:
			return Command{}, fmt.Errorf("readonly: want on or off, got %q", rest)
		}
	default:
		return Command{}, fmt.Errorf("%q: %w", verb, ErrUnknownCommand)
	}
}

func parseSide(name string) (duallist.Side, error) {
	if name == "" {
		return 0, fmt.Errorf("side: %w", ErrMissingArgument)
	}
	return duallist.ParseSide(name)
}

// cut splits off the first whitespace-delimited word.
func cut(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}

// Run executes cmds in order against c, stopping at the first error or when
// ctx is done.
func Run(ctx context.Context, c *bridge.Control, cmds []Command) error {
	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := apply(c, cmd); err != nil {
			return fmt.Errorf("line %d: %w", cmd.Line, err)
		}
	}
	return nil
}

func apply(c *bridge.Control, cmd Command) error {
	switch cmd.Kind {
	case KindSet:
		return c.SetProperty(cmd.Name, cmd.Value)
	case KindMove:
		_, err := c.MoveSelected(cmd.Side, cmd.Labels)
		return err
	case KindMoveAll:
		_, err := c.MoveAll(cmd.Side)
		return err
	case KindReadOnly:
		c.SetReadOnly(cmd.Flag)
		return nil
	default:
		return fmt.Errorf("%q: %w", cmd.Kind, ErrUnknownCommand)
	}
}
