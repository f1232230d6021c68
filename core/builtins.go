package core

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"strconv"
)

// AllBuiltins holds every registered shell builtin keyed by name.
var AllBuiltins = map[string]BuiltinFunc{}

// BuiltinFunc runs a builtin. args is the full argument vector, so
// args[0] is the builtin's own name. The returned status follows the
// usual zero-is-success convention.
type BuiltinFunc func(s *Session, args []string) int

func init() {
	AllBuiltins["cd"] = Cd
	AllBuiltins["history"] = History
	AllBuiltins["exit"] = Exit
}

// DoBuiltin reports whether argv named a shell builtin, running it if
// so. The boolean only means "this was a builtin"; a builtin's own
// failure is reported on stderr by the builtin and doesn't change the
// result. A vector that wasn't a builtin is left untouched for the
// caller to hand to process execution.
func (s *Session) DoBuiltin(argv []string) bool {
	if len(argv) == 0 {
		return false
	}
	builtin, ok := AllBuiltins[argv[0]]
	if !ok {
		return false
	}
	builtin(s, argv)
	return true
}

// Cd is the cd builtin. Without a path it falls back to $HOME, then to
// the invoking user's home directory from the user database. Nothing is
// printed on success.
func Cd(s *Session, args []string) int {
	target := ""
	if len(args) > 1 {
		target = args[1]
	} else {
		home, err := s.homeDir()
		if err != nil {
			fmt.Fprintf(s.Stderr, "cd: %v\n", err)
			return 1
		}
		target = home
	}

	if err := os.Chdir(target); err != nil {
		fmt.Fprintf(s.Stderr, "cd: %v\n", err)
		return 1
	}
	return 0
}

func (s *Session) homeDir() (string, error) {
	if home, ok := s.env(EnvHome); ok && home != "" {
		return home, nil
	}

	u, err := user.LookupId(strconv.Itoa(os.Getuid()))
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	if u.HomeDir == "" {
		return "", errors.New("cannot determine home directory")
	}
	return u.HomeDir, nil
}

// History lists the lines entered this session, oldest first, numbered
// from one. It never mutates the history.
func History(s *Session, args []string) int {
	if len(s.history) == 0 {
		fmt.Fprintln(s.Stderr, "Command history is empty.")
		return 0
	}
	for i, line := range s.history {
		fmt.Fprintf(s.Stdout, "%d.) %s\n", i+1, line)
	}
	return 0
}

// Exit tears the session down and terminates the shell with a success
// status. It does not return.
func Exit(s *Session, args []string) int {
	s.Close()
	s.terminate(0)
	return 0
}
