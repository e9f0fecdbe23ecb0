// Package settings loads the persisted editor settings consumed during
// bootstrap. Precedence (highest to lowest): env vars > settings file >
// defaults.
package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/mapstructure"
	goyaml "gopkg.in/yaml.v3"

	"github.com/lattice-dev/lattice/pkg/domain"
	"github.com/lattice-dev/lattice/pkg/ports"
)

// EnvPrefix is the prefix for environment overrides.
// Transform: LATTICE_FONT_SIZE -> font_size.
const EnvPrefix = "LATTICE_"

// Default returns the baseline editor settings.
func Default() domain.EditorSettings {
	return domain.EditorSettings{
		FontSize:     14,
		FontFamily:   "Menlo",
		LineHeight:   1.4,
		AutoComplete: true,
		Prettify:     true,
	}
}

// Loader implements ports.SettingsLoader on top of a koanf pipeline.
type Loader struct {
	path string
}

// Option configures the Loader.
type Option func(*Loader)

// WithFile points the loader at a settings file. A missing file is not an
// error; defaults and env vars still apply.
func WithFile(path string) Option {
	return func(l *Loader) {
		l.path = path
	}
}

// NewLoader creates a settings loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load builds the settings from defaults, the optional file and env vars.
func (l *Loader) Load(ctx context.Context) (domain.EditorSettings, error) {
	k := koanf.New(".")

	def := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"vim_mode":      def.VimMode,
		"font_size":     def.FontSize,
		"font_family":   def.FontFamily,
		"line_height":   def.LineHeight,
		"auto_complete": def.AutoComplete,
		"prettify":      def.Prettify,
		"zen":           def.Zen,
	}, "."), nil); err != nil {
		return def, fmt.Errorf("failed to load defaults: %w", err)
	}

	if l.path != "" {
		if _, err := os.Stat(l.path); err == nil {
			if err := k.Load(file.Provider(l.path), yaml.Parser()); err != nil {
				return def, fmt.Errorf("error reading settings file %s: %w", l.path, err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return def, fmt.Errorf("failed to load env vars: %w", err)
	}

	var out domain.EditorSettings
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		TagName:          "koanf",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return def, err
	}
	if err := dec.Decode(k.Raw()); err != nil {
		return def, fmt.Errorf("unable to decode settings: %w", err)
	}
	return out, nil
}

var _ ports.SettingsLoader = (*Loader)(nil)

// Save writes the settings to path as YAML, creating parent directories.
func Save(path string, s domain.EditorSettings) error {
	data, err := goyaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
