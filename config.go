package wikitext

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-wikitext/pkg/interfaces"
)

// Config controls rendering behaviour for a Renderer.
type Config struct {
	Links     LinksConfig
	Converter ConverterConfig
	Logging   LoggingConfig
}

// LinksConfig controls the link pattern layer. The feature is opt-in: while
// Enabled is false no registry is built and document text reaches the
// converter byte-identical, with no placeholders introduced.
type LinksConfig struct {
	Enabled bool
	// Base is the wiki link base made available to callers as the prefix
	// for CamelCase and free link targets. Empty activates link patterns
	// without any prefix.
	Base string
}

// ConverterConfig mirrors interfaces.ConvertOptions with names readable for
// configuration unmarshalling.
type ConverterConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// LoggingConfig configures the optional go-logger provider.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the configuration used when hosts pass a zero
// Config: link patterns disabled, stock converter, JSON logging at info.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks the configuration before a Renderer is built.
func (c Config) Validate() error {
	return c.Logging.Validate()
}

// Validate rejects unknown logging levels and formats. Empty values fall
// back to provider defaults.
func (c LoggingConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Level,
			validation.In("trace", "debug", "info", "warn", "warning", "error", "fatal")),
		validation.Field(&c.Format,
			validation.In("json", "console", "pretty")),
	)
}

func (c ConverterConfig) toOptions() interfaces.ConvertOptions {
	return interfaces.ConvertOptions{
		Extensions: append([]string(nil), c.Extensions...),
		Sanitize:   c.Sanitize,
		HardWraps:  c.HardWraps,
		SafeMode:   c.SafeMode,
	}
}
