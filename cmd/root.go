package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"unicode"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	getopt "github.com/pborman/getopt/v2"
	"github.com/spf13/afero"

	"github.com/hsolberg/nutsh/core"
	"github.com/hsolberg/nutsh/core/config"
)

// Shell version, reported by -v.
const (
	VersionMajor = 1
	VersionMinor = 0
)

var motdColor = color.New(color.FgCyan, color.Bold)

// Execute parses the shell's own command line and runs the interactive
// session. It is called by main.main.
func Execute() {
	run(os.Args, os.Stdout, os.Stderr, os.Exit)
}

func run(args []string, stdout, stderr io.Writer, exit func(int)) {
	opts := getopt.New()
	showVersion := opts.Bool('v', "print the shell version and exit")
	cfgDir := opts.String('c', ".", "configuration directory", "DIR")

	if err := opts.Getopt(args, nil); err != nil {
		fmt.Fprintln(stderr, optionError(err, args[1:]))
		exit(1)
		return
	}

	if *showVersion {
		fmt.Fprintf(stdout, "Shell Version: %d.%d\n", VersionMajor, VersionMinor)
		exit(0)
		return
	}

	cfg, err := config.Load(afero.NewOsFs(), *cfgDir)
	if err != nil {
		fmt.Fprintf(stderr, "loading configuration: %v\n", err)
		exit(1)
		return
	}

	session, err := core.NewSession(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "initializing shell: %v\n", err)
		exit(1)
		return
	}

	if cfg.Motd != "" && isatty.IsTerminal(os.Stdin.Fd()) {
		motdColor.Fprintln(stdout, cfg.Motd)
	}

	session.Run()
	if err := session.Close(); err != nil {
		log.Printf("closing session: %v", err)
	}
	exit(0)
}

// optionError renders the diagnostic for the first unrecognized option
// rune in printable or hex-escaped form. getopt detects the failure but
// wraps its own wording, so the offending rune is located here.
func optionError(err error, args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(arg) < 2 || arg[0] != '-' || arg == "--" {
			continue
		}

		runes := []rune(arg[1:])
		for j := 0; j < len(runes); j++ {
			switch r := runes[j]; {
			case r == 'v':
				continue
			case r == 'c':
				// The rest of this argument, or the next one, is the
				// option's parameter.
				if j == len(runes)-1 {
					i++
				}
				j = len(runes)
			case unicode.IsPrint(r):
				return fmt.Sprintf("Unknown option '-%c'", r)
			default:
				return fmt.Sprintf(`Unknown option character '\x%x'`, r)
			}
		}
	}

	// Not an unknown option, e.g. a missing parameter.
	return err.Error()
}
