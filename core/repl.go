package core

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/abiosoft/readline"
)

// Run drives the read loop until end of input or the exit builtin.
// Every line is trimmed, recorded, tokenized and dispatched; vectors
// that aren't builtins are handed to the operating system.
func (s *Session) Run() {
	for {
		s.readline.SetPrompt(s.Prompt)
		line, err := s.readline.Readline()

		switch {
		case err == io.EOF:
			return // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			log.Printf("readline: %v", err)
			continue
		}

		line = TrimLine(line)
		if line == "" {
			continue
		}
		s.recordHistory(line)

		argv := Tokenize(line)
		if s.DoBuiltin(argv) {
			continue
		}
		s.execute(argv)
	}
}

// execute runs a non-builtin vector as an external process in the
// foreground, sharing the session's terminal.
func (s *Session) execute(argv []string) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	err := cmd.Run()
	switch {
	case err == nil:
		// Exit status 0.

	case errors.Is(err, exec.ErrNotFound):
		fmt.Fprintf(s.Stderr, "%s: command not found\n", argv[0])

	default:
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// Non-zero statuses aren't the shell's to report; anything
			// else is.
			fmt.Fprintf(s.Stderr, "%s: %v\n", argv[0], err)
		}
	}
}
