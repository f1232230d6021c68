package core

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/hsolberg/nutsh/core/config"
)

func TestResolvePrompt(t *testing.T) {
	stubEnv := func(value string, ok bool) func(string) (string, bool) {
		return func(key string) (string, bool) {
			if key == EnvPrompt {
				return value, ok
			}
			return "", false
		}
	}

	t.Run("env-wins", func(t *testing.T) {
		s := &Session{lookupEnv: stubEnv("custom>", true)}
		cfg := &config.Configuration{Prompt: "cfg>"}
		assert.Equal(t, "custom>", s.resolvePrompt(cfg))
	})

	t.Run("env-set-but-empty", func(t *testing.T) {
		// Set counts, even when empty: getenv semantics.
		s := &Session{lookupEnv: stubEnv("", true)}
		assert.Equal(t, "", s.resolvePrompt(nil))
	})

	t.Run("config-fallback", func(t *testing.T) {
		s := &Session{lookupEnv: stubEnv("", false)}
		cfg := &config.Configuration{Prompt: "cfg>"}
		assert.Equal(t, "cfg>", s.resolvePrompt(cfg))
	})

	t.Run("default", func(t *testing.T) {
		s := &Session{lookupEnv: stubEnv("", false)}
		assert.Equal(t, DefaultPrompt, s.resolvePrompt(nil))
	})

	t.Run("default-without-config", func(t *testing.T) {
		s := &Session{lookupEnv: stubEnv("", false)}
		cfg := &config.Configuration{}
		assert.Equal(t, DefaultPrompt, s.resolvePrompt(cfg))
	})
}

func TestNewSession(t *testing.T) {
	t.Setenv(EnvPrompt, "unit>")

	s, err := NewSession(&config.Configuration{})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, "unit>", s.Prompt)
	assert.Equal(t, int(os.Stdin.Fd()), s.TTY)

	// The shell's own group, whether claimed from the terminal or
	// inherited when stdin isn't one.
	assert.Equal(t, unix.Getpgrp(), s.Pgid)

	assert.Empty(t, s.History())
}
