package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/mines/internal/mines"
	"github.com/vancomm/mines/internal/tui"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"p": 0,
	"o": 2,
	"f": 2,
	"c": 2,
	"n": 0,
	"q": 0,
}

var (
	errQuit        = errors.New("quit")
	errFlagged     = errors.New("cell is flagged")
	errRevealed    = errors.New("cell is already revealed")
	errUnsatisfied = errors.New("chord needs a revealed number with all its mines accounted for")
)

func parsePos(twoStrings []string) (p mines.Pos, err error) {
	if p.R, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if p.C, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("column must be an int")
		return
	}
	return
}

func executeCommand(b *mines.Board, c string, auto bool) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}

	var (
		p   mines.Pos
		err error
	)
	if nargs == 2 {
		if p, err = parsePos(parts[1:]); err != nil {
			return err
		}
	}

	switch parts[0] {
	case "p":
		return nil
	case "q":
		return errQuit
	case "n":
		b.Reset()
		return nil
	case "o":
		if ok, err = b.Reveal(p, auto); err == nil && !ok {
			err = errFlagged
		}
	case "f":
		if ok, err = b.Flag(p); err == nil && !ok {
			err = errRevealed
		}
	case "c":
		if ok, err = b.Chord(p, auto); err == nil && !ok {
			err = errUnsatisfied
		}
	}
	return err
}

// runPlain reads one command per line and prints the board after each one.
func runPlain(in io.Reader, out io.Writer, b *mines.Board, auto bool) error {
	show := func() {
		fmt.Fprintf(out, "%s\n\n", tui.Render(b, tui.RenderOptions{}))
	}

	show()
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		err := executeCommand(b, line, auto)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			log.WithError(err).WithField("command", line).Debug("command failed")
			fmt.Fprintf(out, "error: %s\n", err)
			continue
		}
		if line != "" {
			show()
		}
	}
	return sc.Err()
}
