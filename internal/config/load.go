package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// projectConfigFiles are searched in the working directory, in order.
var projectConfigFiles = []string{"tada.toml", ".tada.toml", "tada.yaml", "tada.yml"}

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// flagValues holds what the command line said before it is layered in.
type flagValues struct {
	config    string
	theme     string
	color     string
	logLevel  string
	logFormat string
	order     string
	seed      stringList
}

func bindFlags(fs *flag.FlagSet, fv *flagValues) {
	fs.StringVar(&fv.config, "config", "", "Path to config file (env: TADA_CONFIG)")
	fs.StringVar(&fv.theme, "theme", "", "Theme: classic, neon, mono")
	fs.StringVar(&fv.color, "color", "", "Color output: auto, always, never")
	fs.StringVar(&fv.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&fv.logFormat, "log-format", "", "Log format: text, json, logfmt")
	fs.StringVar(&fv.order, "order", "", "List order: title, priority")
	fs.Var(&fv.seed, "seed", "Title to add at startup (repeatable)")
}

// Load parses args with fs and merges defaults, config file, environment
// and flags. Arguments left after the flags are available from fs.Args.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	if fs == nil {
		fs = flag.NewFlagSet("tada", flag.ContinueOnError)
	}
	var fv flagValues
	bindFlags(fs, &fv)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	cfg := Default()

	path, explicit := fv.config, fv.config != ""
	if !explicit {
		path, explicit = os.Getenv("TADA_CONFIG"), os.Getenv("TADA_CONFIG") != ""
	}
	if !explicit {
		path = findProjectConfigFile()
	}
	if path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		cfg.merge(fileCfg)
		cfg.Path = path
	}

	loadFromEnv(cfg)

	cfg.merge(&Config{
		Theme:     fv.theme,
		Color:     fv.color,
		LogLevel:  fv.logLevel,
		LogFormat: fv.logFormat,
		Order:     fv.order,
		Seed:      fv.seed,
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes a single config file. The format follows the extension:
// .yaml and .yml are YAML, anything else is TOML.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("toml decode: %w", err)
		}
	}
	return &cfg, nil
}

func findProjectConfigFile() string {
	for _, name := range projectConfigFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// loadFromEnv overrides cfg from TADA_* environment variables.
func loadFromEnv(cfg *Config) {
	env := &Config{
		Theme:     os.Getenv("TADA_THEME"),
		Color:     os.Getenv("TADA_COLOR"),
		LogLevel:  os.Getenv("TADA_LOG_LEVEL"),
		LogFormat: os.Getenv("TADA_LOG_FORMAT"),
		Order:     os.Getenv("TADA_ORDER"),
	}
	if v := os.Getenv("TADA_SEED"); v != "" {
		for _, title := range strings.Split(v, ",") {
			if title = strings.TrimSpace(title); title != "" {
				env.Seed = append(env.Seed, title)
			}
		}
	}
	cfg.merge(env)
}
