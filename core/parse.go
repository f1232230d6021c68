package core

import (
	"strings"
	"sync"

	"github.com/tklauser/go-sysconf"
)

// defaultArgLimit is used when the sysconf query fails; it matches
// _POSIX_ARG_MAX.
const defaultArgLimit = 4096

var (
	argLimitOnce sync.Once
	argLimit     int
)

// ArgLimit returns the platform bound on argument-vector slots, queried
// once per process from sysconf(_SC_ARG_MAX).
func ArgLimit() int {
	argLimitOnce.Do(func() {
		argLimit = defaultArgLimit
		if v, err := sysconf.Sysconf(sysconf.SC_ARG_MAX); err == nil && v > 0 {
			argLimit = int(v)
		}
	})
	return argLimit
}

// TrimLine strips leading and trailing whitespace from one input line.
// Trimming an already-trimmed line is a no-op and a line of pure
// whitespace comes back empty.
func TrimLine(line string) string {
	return strings.TrimSpace(line)
}

// Tokenize splits a line into an argument vector on runs of spaces and
// tabs. There is no quoting or escaping; words are taken verbatim. An
// empty line yields a nil vector. At most ArgLimit()-1 words are kept,
// anything past that is dropped without complaint.
func Tokenize(line string) []string {
	return tokenizeBounded(line, ArgLimit())
}

func tokenizeBounded(line string, limit int) []string {
	if line == "" {
		return nil
	}

	var argv []string
	rest := line
	for len(argv) < limit-1 {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			break
		}

		end := strings.IndexAny(rest, " \t")
		if end < 0 {
			argv = append(argv, rest)
			break
		}
		argv = append(argv, rest[:end])
		rest = rest[end:]
	}

	return argv
}
