package scrollview

import (
	"os"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultWheelStep is how far one wheel notch scrolls, in pixels.
const DefaultWheelStep float32 = 30

// Config is the file form of engine and host settings.
type Config struct {
	DelayMS      int     `yaml:"delay_ms" validate:"gte=0"`
	Scrollbar    string  `yaml:"scrollbar" validate:"oneof=auto always never"`
	MinThumbSize float32 `yaml:"min_thumb_size" validate:"gte=0"`
	WheelStep    float32 `yaml:"wheel_step" validate:"gt=0"`
	AnimationMS  int     `yaml:"animation_ms" validate:"gte=0"`
	LogLevel     string  `yaml:"log_level" validate:"oneof=trace debug info warn error"`
}

// DefaultConfig returns the settings an engine uses with no options.
func DefaultConfig() Config {
	return Config{
		DelayMS:      int(DefaultDelay / time.Millisecond),
		Scrollbar:    ScrollbarAuto.String(),
		MinThumbSize: DefaultMinThumbSize,
		WheelStep:    DefaultWheelStep,
		LogLevel:     "warn",
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator, reporting yaml field
// names in errors.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// ParseConfig decodes YAML over the defaults and validates the result.
// Keys that are absent keep their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ConfigError{Err: errors.Wrap(err, "decode yaml")}
	}
	cfg.Scrollbar = strings.ToLower(strings.TrimSpace(cfg.Scrollbar))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &ConfigError{Path: path, Err: errors.Wrap(err, "read")}
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		var ce *ConfigError
		if errors.As(err, &ce) {
			ce.Path = path
		}
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field, reporting the first failure as a
// *ConfigError naming the yaml key.
func (c Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return &ConfigError{
			Field: fe.Field(),
			Err:   errors.Errorf("failed validation for tag '%s' (value %v)", fe.Tag(), fe.Value()),
		}
	}
	return &ConfigError{Err: err}
}

// Visibility returns the scrollbar override named by the config.
func (c Config) Visibility() ScrollbarVisibility {
	v, _ := ParseScrollbarVisibility(c.Scrollbar)
	return v
}

// Delay returns the visibility window as a duration.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// Animation returns the default SetPosition duration.
func (c Config) Animation() time.Duration {
	return time.Duration(c.AnimationMS) * time.Millisecond
}

// Options converts the config to engine options.
func (c Config) Options() []Option {
	return []Option{
		Delay(c.Delay()),
		Visibility(c.Visibility()),
		MinThumbSize(c.MinThumbSize),
		WithOpt(OptAnimation, c.Animation()),
	}
}

// ParseScrollbarVisibility converts auto, always or never to a
// ScrollbarVisibility. The empty string is auto.
func ParseScrollbarVisibility(name string) (ScrollbarVisibility, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return ScrollbarAuto, nil
	case "always":
		return ScrollbarAlways, nil
	case "never":
		return ScrollbarNever, nil
	}
	return ScrollbarAuto, &ConfigError{Field: "scrollbar", Err: errors.Errorf("unknown visibility %q", name)}
}
