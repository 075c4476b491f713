package commands

import (
	"github.com/spf13/viper"
)

// Config holds demo CLI settings read from quill.yml.
type Config struct {
	NoColor bool
}

// LoadConfig reads quill.yml from the working directory, if present.
// A missing or unreadable file falls back to zero-value settings; the
// demo must work with no configuration at all.
func LoadConfig() Config {
	v := viper.New()
	v.SetConfigName("quill")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable overrides (QUILL_NO_COLOR=1).
	v.AutomaticEnv()
	v.SetEnvPrefix("QUILL")

	if err := v.ReadInConfig(); err != nil {
		return Config{NoColor: v.GetBool("no_color")}
	}

	return Config{
		NoColor: v.GetBool("no_color"),
	}
}
