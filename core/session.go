package core

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/abiosoft/readline"
	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"

	"github.com/hsolberg/nutsh/core/config"
)

const (
	// EnvPrompt overrides the prompt for the whole session.
	EnvPrompt = "MY_PROMPT"
	// EnvHome is consulted first when cd is run without a path.
	EnvHome = "HOME"

	// DefaultPrompt is used when neither the environment nor the
	// configuration provides one.
	DefaultPrompt = "shell>"
)

// Session holds the runtime state of one interactive shell: the prompt,
// the controlling terminal, the shell's process group and the command
// history accumulated this session. Create it with NewSession and pair
// every NewSession with exactly one Close.
type Session struct {
	// Prompt is displayed before each read. Never absent after
	// NewSession; an empty MY_PROMPT is honored as an empty prompt.
	Prompt string
	// TTY is the controlling terminal, the shell's standard input.
	// Recorded once at construction.
	TTY int
	// Pgid is the shell's process group. Equal to the shell's pid when
	// the terminal was claimed, the inherited group otherwise.
	Pgid int

	Stdout io.Writer
	Stderr io.Writer

	readline     *readline.Instance
	history      []string
	historyLimit int

	// exit terminates the process; swapped out in tests.
	exit func(code int)
	// lookupEnv resolves environment variables; swapped out in tests.
	lookupEnv func(key string) (string, bool)
}

// NewSession builds the shell session: resolves the prompt, records the
// controlling terminal and, when standard input is a terminal, places
// the shell in its own foreground process group with keyboard signals
// ignored. conf may be nil.
func NewSession(conf *config.Configuration) (*Session, error) {
	s := &Session{
		TTY:    int(os.Stdin.Fd()),
		Pgid:   unix.Getpgrp(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	s.Prompt = s.resolvePrompt(conf)

	var historyFile string
	if conf != nil {
		s.historyLimit = conf.HistoryLimit
		historyFile = conf.HistoryPath()
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		if err := s.claimTerminal(); err != nil {
			return nil, fmt.Errorf("acquiring controlling terminal: %w", err)
		}
	}

	cfg := &readline.Config{
		Prompt:       s.Prompt,
		HistoryFile:  historyFile,
		HistoryLimit: s.historyLimit,
		Stdin:        os.Stdin,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
	}
	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}
	s.readline = rl

	return s, nil
}

// resolvePrompt picks the session prompt: the MY_PROMPT environment
// variable wins if set (even empty), then the configuration file, then
// the fixed default.
func (s *Session) resolvePrompt(conf *config.Configuration) string {
	if v, ok := s.env(EnvPrompt); ok {
		return v
	}
	if conf != nil && conf.Prompt != "" {
		return conf.Prompt
	}
	return DefaultPrompt
}

// claimTerminal detaches the shell into its own process group and makes
// that group the terminal's foreground group. The TIOCSPGRP handoff
// blocks until the terminal driver acknowledges it; it fails outright
// when a debugger already holds foreground control of the terminal.
// Keyboard and background-I/O signals are then ignored so they can't
// kill or stop the shell itself; spawned children get the defaults back
// from the exec layer.
func (s *Session) claimTerminal() error {
	pid := unix.Getpid()
	if err := unix.Setpgid(0, 0); err != nil {
		return fmt.Errorf("setpgid: %w", err)
	}
	s.Pgid = pid

	if err := unix.IoctlSetPointerInt(s.TTY, unix.TIOCSPGRP, pid); err != nil {
		return fmt.Errorf("tcsetpgrp: %w", err)
	}

	signal.Ignore(syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTSTP,
		syscall.SIGTTIN, syscall.SIGTTOU)
	return nil
}

// Close tears the session down. Call it exactly once; the session must
// not be reused afterwards.
func (s *Session) Close() error {
	if s.readline != nil {
		return s.readline.Close()
	}
	return nil
}

// History returns the non-blank lines entered this session, oldest
// first. The returned slice is the session's own; callers must not
// modify it.
func (s *Session) History() []string {
	return s.history
}

func (s *Session) recordHistory(line string) {
	s.history = append(s.history, line)
	if s.historyLimit > 0 && len(s.history) > s.historyLimit {
		s.history = s.history[1:]
	}
}

func (s *Session) env(key string) (string, bool) {
	if s.lookupEnv != nil {
		return s.lookupEnv(key)
	}
	return os.LookupEnv(key)
}

func (s *Session) terminate(code int) {
	if s.exit != nil {
		s.exit(code)
		return
	}
	os.Exit(code)
}
