package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultEndpointURL     = "https://api.dexscreener.com/latest/dex/pairs/solana/33g47ycaz7la3dnw9spf19jggrycgmvak5pwvruqrr4j"
	DefaultContractAddress = "6sf6zf7UpkqPEz3byHpK5mvPUr9xBCf8FaXSuTUkpump"
	DefaultTotalSupply     = 1_000_000_000
	DefaultLogFile         = "late.log"
	DefaultLogLevel        = "info"
)

// DefaultMemes captions shown on the carousel track.
var DefaultMemes = []string{
	"gm, you're late",
	"fashionably late since genesis",
	"wen moon? later",
	"the early bird missed $LATE",
	"diamond hands, slow clocks",
	"arrived late, stayed forever",
}

// Config immutable application settings.
type Config struct {
	EndpointURL           string
	RequestTimeout        time.Duration
	PollInterval          time.Duration
	NarrowPollInterval    time.Duration
	NarrowWidth           int
	ContractAddress       string
	TotalSupply           int64
	SupplySteps           int
	SupplyStepDelay       time.Duration
	NarrowSupplyStepDelay time.Duration
	SupplyStartDelay      time.Duration
	NotificationTTL       time.Duration
	CopyFeedbackTTL       time.Duration
	Memes                 []string
	LogFile               string
	LogLevel              string
}

// ConfigTmp yaml representation; zero values keep the defaults.
type ConfigTmp struct {
	EndpointURL           string        `yaml:"endpoint_url,omitempty"`
	RequestTimeout        time.Duration `yaml:"request_timeout,omitempty"`
	PollInterval          time.Duration `yaml:"poll_interval,omitempty"`
	NarrowPollInterval    time.Duration `yaml:"narrow_poll_interval,omitempty"`
	NarrowWidth           int           `yaml:"narrow_width,omitempty"`
	ContractAddress       string        `yaml:"contract_address,omitempty"`
	TotalSupply           int64         `yaml:"total_supply,omitempty"`
	SupplySteps           int           `yaml:"supply_steps,omitempty"`
	SupplyStepDelay       time.Duration `yaml:"supply_step_delay,omitempty"`
	NarrowSupplyStepDelay time.Duration `yaml:"narrow_supply_step_delay,omitempty"`
	SupplyStartDelay      time.Duration `yaml:"supply_start_delay,omitempty"`
	NotificationTTL       time.Duration `yaml:"notification_ttl,omitempty"`
	CopyFeedbackTTL       time.Duration `yaml:"copy_feedback_ttl,omitempty"`
	Memes                 []string      `yaml:"memes,omitempty"`
	LogFile               string        `yaml:"log_file,omitempty"`
	LogLevel              string        `yaml:"log_level,omitempty"`
}

// Options parsed command line.
type Options struct {
	ConfigPath string
	Setup      bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		EndpointURL:           DefaultEndpointURL,
		RequestTimeout:        10 * time.Second,
		PollInterval:          30 * time.Second,
		NarrowPollInterval:    60 * time.Second,
		NarrowWidth:           80,
		ContractAddress:       DefaultContractAddress,
		TotalSupply:           DefaultTotalSupply,
		SupplySteps:           50,
		SupplyStepDelay:       20 * time.Millisecond,
		NarrowSupplyStepDelay: 30 * time.Millisecond,
		SupplyStartDelay:      500 * time.Millisecond,
		NotificationTTL:       2 * time.Second,
		CopyFeedbackTTL:       2 * time.Second,
		Memes:                 append([]string(nil), DefaultMemes...),
		LogFile:               DefaultLogFile,
		LogLevel:              DefaultLogLevel,
	}
}

// ParseFlags reads the command line.
func ParseFlags(fs *flag.FlagSet, args []string) (Options, error) {
	var opts Options
	fs.StringVar(&opts.ConfigPath, "config", "", "path to yaml config")
	fs.BoolVar(&opts.Setup, "setup", false, "run the configuration wizard and write the yaml config")
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Get returns the configuration from the yaml file named by --config, or the
// defaults when no file is given.
func Get(opts Options) (Config, error) {
	if opts.ConfigPath == "" {
		return Default(), nil
	}
	return Load(opts.ConfigPath)
}

// Load reads a yaml config and applies it over the defaults.
func Load(path string) (Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config %s", path)
	}
	return Parse(f)
}

// Parse applies yaml data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	var tmp ConfigTmp
	if err := yaml.Unmarshal(data, &tmp); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse yaml config")
	}

	conf := tmp.apply(Default())
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func (c ConfigTmp) apply(conf Config) Config {
	if c.EndpointURL != "" {
		conf.EndpointURL = c.EndpointURL
	}
	if c.RequestTimeout != 0 {
		conf.RequestTimeout = c.RequestTimeout
	}
	if c.PollInterval != 0 {
		conf.PollInterval = c.PollInterval
	}
	if c.NarrowPollInterval != 0 {
		conf.NarrowPollInterval = c.NarrowPollInterval
	}
	if c.NarrowWidth != 0 {
		conf.NarrowWidth = c.NarrowWidth
	}
	if c.ContractAddress != "" {
		conf.ContractAddress = c.ContractAddress
	}
	if c.TotalSupply != 0 {
		conf.TotalSupply = c.TotalSupply
	}
	if c.SupplySteps != 0 {
		conf.SupplySteps = c.SupplySteps
	}
	if c.SupplyStepDelay != 0 {
		conf.SupplyStepDelay = c.SupplyStepDelay
	}
	if c.NarrowSupplyStepDelay != 0 {
		conf.NarrowSupplyStepDelay = c.NarrowSupplyStepDelay
	}
	if c.SupplyStartDelay != 0 {
		conf.SupplyStartDelay = c.SupplyStartDelay
	}
	if c.NotificationTTL != 0 {
		conf.NotificationTTL = c.NotificationTTL
	}
	if c.CopyFeedbackTTL != 0 {
		conf.CopyFeedbackTTL = c.CopyFeedbackTTL
	}
	if len(c.Memes) > 0 {
		conf.Memes = c.Memes
	}
	if c.LogFile != "" {
		conf.LogFile = c.LogFile
	}
	if c.LogLevel != "" {
		conf.LogLevel = c.LogLevel
	}
	return conf
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.EndpointURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("incorrect 'endpoint_url' param in yaml config: %q", c.EndpointURL)
	}
	if c.ContractAddress == "" {
		return errors.New("'contract_address' param in yaml config must not be empty")
	}
	if c.TotalSupply <= 0 {
		return fmt.Errorf("incorrect 'total_supply' param in yaml config (must be positive): %d", c.TotalSupply)
	}
	if c.SupplySteps < 1 {
		return fmt.Errorf("incorrect 'supply_steps' param in yaml config (must be at least 1): %d", c.SupplySteps)
	}
	if c.NarrowWidth < 0 {
		return fmt.Errorf("incorrect 'narrow_width' param in yaml config (must not be negative): %d", c.NarrowWidth)
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"request_timeout", c.RequestTimeout},
		{"poll_interval", c.PollInterval},
		{"narrow_poll_interval", c.NarrowPollInterval},
		{"supply_step_delay", c.SupplyStepDelay},
		{"narrow_supply_step_delay", c.NarrowSupplyStepDelay},
		{"supply_start_delay", c.SupplyStartDelay},
		{"notification_ttl", c.NotificationTTL},
		{"copy_feedback_ttl", c.CopyFeedbackTTL},
	}
	for _, d := range durations {
		if d.value < 0 || (d.value == 0 && d.name != "supply_start_delay") {
			return fmt.Errorf("incorrect '%s' param in yaml config (must be positive): %s", d.name, d.value)
		}
	}

	return nil
}

// ToTmp returns the yaml representation of c.
func (c Config) ToTmp() ConfigTmp {
	return ConfigTmp{
		EndpointURL:           c.EndpointURL,
		RequestTimeout:        c.RequestTimeout,
		PollInterval:          c.PollInterval,
		NarrowPollInterval:    c.NarrowPollInterval,
		NarrowWidth:           c.NarrowWidth,
		ContractAddress:       c.ContractAddress,
		TotalSupply:           c.TotalSupply,
		SupplySteps:           c.SupplySteps,
		SupplyStepDelay:       c.SupplyStepDelay,
		NarrowSupplyStepDelay: c.NarrowSupplyStepDelay,
		SupplyStartDelay:      c.SupplyStartDelay,
		NotificationTTL:       c.NotificationTTL,
		CopyFeedbackTTL:       c.CopyFeedbackTTL,
		Memes:                 c.Memes,
		LogFile:               c.LogFile,
		LogLevel:              c.LogLevel,
	}
}
