package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/newthinker/overlay/internal/core"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Options Options       `mapstructure:"options"`
}

type ServerConfig struct {
	Host        string   `mapstructure:"host"`
	Port        int      `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// StorageConfig selects where engine-produced result bundles are read from.
type StorageConfig struct {
	Type string   `mapstructure:"type"` // "localfs" or "s3"
	Path string   `mapstructure:"path"` // For localfs
	S3   S3Config `mapstructure:"s3"`   // For S3
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Option is one entry of a form selector.
type Option struct {
	Value string `mapstructure:"value" json:"value"`
	Label string `mapstructure:"label" json:"label"`
}

// DeltaOption is one selectable option delta.
type DeltaOption struct {
	Value float64 `mapstructure:"value" json:"value"`
	Label string  `mapstructure:"label" json:"label"`
}

// Options are the fixed choices offered by the report form.
type Options struct {
	Instruments  []Option      `mapstructure:"instruments" json:"etf_options"`
	Deltas       []DeltaOption `mapstructure:"deltas" json:"delta_options"`
	HoldingTypes []Option      `mapstructure:"holding_types" json:"holding_types"`
}

// Clone returns a deep copy so callers cannot alter the configured tables.
func (o Options) Clone() Options {
	return Options{
		Instruments:  slices.Clone(o.Instruments),
		Deltas:       slices.Clone(o.Deltas),
		HoldingTypes: slices.Clone(o.HoldingTypes),
	}
}

// HasInstrument reports whether code is a configured instrument.
func (o Options) HasInstrument(code string) bool {
	return slices.ContainsFunc(o.Instruments, func(opt Option) bool { return opt.Value == code })
}

// HasHoldingType reports whether value is a configured holding type.
func (o Options) HasHoldingType(value string) bool {
	return slices.ContainsFunc(o.HoldingTypes, func(opt Option) bool { return opt.Value == value })
}

// Load reads configuration from file on top of Defaults. A .env file in the
// working directory, when present, is loaded into the environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)

	// Support environment variable overrides
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Expand environment variables in string values
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			CORSOrigins: []string{"*"},
		},
		Storage: StorageConfig{
			Type: "localfs",
			Path: "data/bundles",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Options: DefaultOptions(),
	}
}

// DefaultOptions returns the instrument, delta and holding-type tables.
func DefaultOptions() Options {
	return Options{
		Instruments: []Option{
			{Value: "510050", Label: "上证50ETF (510050)"},
			{Value: "510300", Label: "沪深300ETF (510300)"},
			{Value: "510500", Label: "中证500ETF (510500)"},
			{Value: "159901", Label: "深证100ETF (159901)"},
			{Value: "159915", Label: "创业板ETF (159915)"},
			{Value: "159919", Label: "深市沪深300ETF (159919)"},
			{Value: "159922", Label: "深市中证500ETF (159922)"},
			{Value: "588000", Label: "科创板50ETF (588000)"},
			{Value: "588080", Label: "科创板100ETF (588080)"},
		},
		Deltas: []DeltaOption{
			{Value: 0.1, Label: "0.1"},
			{Value: 0.2, Label: "0.2"},
			{Value: 0.3, Label: "0.3"},
			{Value: 0.4, Label: "0.4"},
			{Value: 0.5, Label: "0.5"},
			{Value: 0.6, Label: "0.6"},
			{Value: 0.7, Label: "0.7"},
		},
		HoldingTypes: []Option{
			{Value: "physical", Label: "正股持仓"},
			{Value: "synthetic", Label: "合成持仓"},
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("port must be between 1 and 65535, got %d", c.Server.Port))
	}

	switch c.Storage.Type {
	case "localfs":
		if c.Storage.Path == "" {
			return core.WrapError(core.ErrConfigMissing,
				fmt.Errorf("storage path required for localfs"))
		}
	case "s3":
		if c.Storage.S3.Bucket == "" {
			return core.WrapError(core.ErrConfigMissing,
				fmt.Errorf("s3 bucket required when storage type is s3"))
		}
	default:
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("storage type must be localfs or s3, got %q", c.Storage.Type))
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("metrics path must start with /, got %q", c.Metrics.Path))
	}

	o := c.Options
	if len(o.Instruments) == 0 || len(o.Deltas) == 0 || len(o.HoldingTypes) == 0 {
		return core.WrapError(core.ErrConfigMissing,
			fmt.Errorf("instrument, delta and holding type options must not be empty"))
	}
	for _, d := range o.Deltas {
		if d.Value <= 0 || d.Value >= 1 {
			return core.WrapError(core.ErrConfigInvalid,
				fmt.Errorf("delta must be between 0 and 1, got %f", d.Value))
		}
	}

	return nil
}
