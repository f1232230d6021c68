package config

import (
	_ "embed"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the file looked up inside the config directory.
const ConfigurationName = "config.yaml"

// Configuration holds the shell's on-disk settings.
type Configuration struct {
	configDir string

	// Prompt overrides the built-in prompt. The MY_PROMPT environment
	// variable still wins over this.
	Prompt string `json:"prompt"`
	// HistoryFile is where line history is persisted between sessions,
	// relative to the config directory unless absolute. Empty disables
	// persistence.
	HistoryFile string `json:"history_file"`
	// Motd is printed once at startup on interactive terminals.
	Motd string `json:"motd"`
	// HistoryLimit bounds the in-memory history. Zero means unlimited.
	HistoryLimit int `json:"history_limit" validate:"gte=0"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	return validate.Struct(c)
}

// HistoryPath resolves the history file location; empty disables
// persistence.
func (c *Configuration) HistoryPath() string {
	switch {
	case c.HistoryFile == "":
		return ""
	case filepath.IsAbs(c.HistoryFile):
		return c.HistoryFile
	default:
		return filepath.Join(c.configDir, c.HistoryFile)
	}
}
