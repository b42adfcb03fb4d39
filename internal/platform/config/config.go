// internal/platform/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config is the single explicit configuration surface of sublance.
// Precedence, lowest to highest: defaults, YAML file, environment, flags.
type Config struct {
	// Domains are the root domains to scan, one ScanJob each.
	Domains []string `yaml:"domains"`

	// Workers is the per-job lookup concurrency budget.
	Workers int `yaml:"workers"`

	// LookupTimeoutS bounds each DNS lookup, in seconds.
	LookupTimeoutS int `yaml:"lookup_timeout"`

	// TimeoutS is the global scan timeout in seconds (0 = none).
	TimeoutS int `yaml:"timeout"`

	// Wordlist is the path of the brute-force label file. Empty selects
	// the built-in list when brute force is enabled.
	Wordlist string `yaml:"wordlist"`

	// BruteForce toggles the wordlist expansion pass.
	BruteForce bool `yaml:"brute_force"`

	// Passive toggles passive-source collection as a whole.
	Passive bool `yaml:"passive"`

	// Sources toggles individual passive sources.
	Sources Sources `yaml:"sources"`

	// Output controls export sinks.
	Output Output `yaml:"output"`

	// Quiet disables the terminal presenter (logs still go to stderr).
	Quiet bool `yaml:"quiet"`

	// PrintVersion prints the version and exits.
	PrintVersion bool `yaml:"-"`
}

// Sources toggles the passive providers.
type Sources struct {
	CRTSh        bool `yaml:"crtsh"`
	HackerTarget bool `yaml:"hackertarget"`
}

// Output controls where and how results are exported.
type Output struct {
	// Dir is the directory export files are written into.
	Dir string `yaml:"dir"`

	// CSV and JSON toggle the file exports.
	CSV  bool `yaml:"csv"`
	JSON bool `yaml:"json"`

	// TableDisabled suppresses the terminal table.
	TableDisabled bool `yaml:"no_table"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Domains:        []string{},
		Workers:        50,
		LookupTimeoutS: 5,
		TimeoutS:       0,
		Wordlist:       "",
		BruteForce:     true,
		Passive:        true,
		Sources: Sources{
			CRTSh:        true,
			HackerTarget: true,
		},
		Output: Output{
			Dir:           "sublance_out",
			CSV:           true,
			JSON:          true,
			TableDisabled: false,
		},
		Quiet: false,
	}
}

// Load builds the configuration from defaults, an optional YAML file,
// environment variables and CLI flags, in that precedence order.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	// Flags are parsed into a scratch copy first so the file and the
	// environment can land between defaults and explicit flags.
	flagCfg := cfg
	var configPath string
	fs := newFlagSet(&flagCfg, &configPath)

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if configPath != "" {
		if err := loadFromFile(&cfg, configPath); err != nil {
			return cfg, err
		}
	}

	loadFromEnv(&cfg)
	applyChangedFlags(&cfg, &flagCfg, fs)

	// Positional arguments are additional root domains.
	cfg.Domains = append(cfg.Domains, fs.Args()...)

	normalize(&cfg)
	return cfg, nil
}

// newFlagSet declares the CLI flags bound to the scratch config.
func newFlagSet(cfg *Config, configPath *string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("sublance", pflag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	fs.StringVarP(configPath, "config", "c", "", "Path to YAML configuration file")
	fs.StringSliceVarP(&cfg.Domains, "domain", "d", cfg.Domains, "Root domain to scan (repeatable)")
	fs.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "Concurrent DNS lookups per scan job")
	fs.IntVar(&cfg.LookupTimeoutS, "lookup-timeout", cfg.LookupTimeoutS, "Per-lookup timeout in seconds")
	fs.IntVar(&cfg.TimeoutS, "timeout", cfg.TimeoutS, "Global scan timeout in seconds (0 = none)")
	fs.StringVar(&cfg.Wordlist, "wordlist", cfg.Wordlist, "Brute-force wordlist file (empty = builtin list)")
	fs.BoolVar(&cfg.BruteForce, "brute", cfg.BruteForce, "Enable the wordlist brute-force pass")
	fs.BoolVar(&cfg.Passive, "passive", cfg.Passive, "Enable passive sources")
	fs.BoolVar(&cfg.Sources.CRTSh, "src.crtsh", cfg.Sources.CRTSh, "Enable the crt.sh source")
	fs.BoolVar(&cfg.Sources.HackerTarget, "src.hackertarget", cfg.Sources.HackerTarget, "Enable the hackertarget source")
	fs.StringVarP(&cfg.Output.Dir, "out", "o", cfg.Output.Dir, "Output directory")
	fs.BoolVar(&cfg.Output.CSV, "out.csv", cfg.Output.CSV, "Write CSV export")
	fs.BoolVar(&cfg.Output.JSON, "out.json", cfg.Output.JSON, "Write JSON export")
	fs.BoolVar(&cfg.Output.TableDisabled, "out.no-table", cfg.Output.TableDisabled, "Disable the terminal table")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Disable the terminal presenter")
	fs.BoolVar(&cfg.PrintVersion, "version", false, "Print version and exit")

	return fs
}

// loadFromFile overlays a YAML file onto the config.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// loadFromEnv overlays SUBLANCE_* environment variables.
func loadFromEnv(cfg *Config) {
	if v := getenv("SUBLANCE_DOMAINS", ""); v != "" {
		cfg.Domains = splitList(v)
	}
	if v := getenv("SUBLANCE_WORKERS", ""); v != "" {
		cfg.Workers = parseInt(v, cfg.Workers)
	}
	if v := getenv("SUBLANCE_LOOKUP_TIMEOUT", ""); v != "" {
		cfg.LookupTimeoutS = parseInt(v, cfg.LookupTimeoutS)
	}
	if v := getenv("SUBLANCE_TIMEOUT", ""); v != "" {
		cfg.TimeoutS = parseInt(v, cfg.TimeoutS)
	}
	if v := getenv("SUBLANCE_WORDLIST", ""); v != "" {
		cfg.Wordlist = v
	}
	if v := getenv("SUBLANCE_BRUTE", ""); v != "" {
		cfg.BruteForce = parseBool(v)
	}
	if v := getenv("SUBLANCE_PASSIVE", ""); v != "" {
		cfg.Passive = parseBool(v)
	}
	if v := getenv("SUBLANCE_OUTPUT_DIR", ""); v != "" {
		cfg.Output.Dir = v
	}
}

// applyChangedFlags copies explicitly set flags over file/env values.
func applyChangedFlags(cfg, flagCfg *Config, fs *pflag.FlagSet) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "domain":
			cfg.Domains = flagCfg.Domains
		case "workers":
			cfg.Workers = flagCfg.Workers
		case "lookup-timeout":
			cfg.LookupTimeoutS = flagCfg.LookupTimeoutS
		case "timeout":
			cfg.TimeoutS = flagCfg.TimeoutS
		case "wordlist":
			cfg.Wordlist = flagCfg.Wordlist
		case "brute":
			cfg.BruteForce = flagCfg.BruteForce
		case "passive":
			cfg.Passive = flagCfg.Passive
		case "src.crtsh":
			cfg.Sources.CRTSh = flagCfg.Sources.CRTSh
		case "src.hackertarget":
			cfg.Sources.HackerTarget = flagCfg.Sources.HackerTarget
		case "out":
			cfg.Output.Dir = flagCfg.Output.Dir
		case "out.csv":
			cfg.Output.CSV = flagCfg.Output.CSV
		case "out.json":
			cfg.Output.JSON = flagCfg.Output.JSON
		case "out.no-table":
			cfg.Output.TableDisabled = flagCfg.Output.TableDisabled
		case "quiet":
			cfg.Quiet = flagCfg.Quiet
		case "version":
			cfg.PrintVersion = flagCfg.PrintVersion
		}
	})
}

// normalize folds the config into its canonical, bounded form.
func normalize(c *Config) {
	domains := make([]string, 0, len(c.Domains))
	seen := make(map[string]struct{})
	for _, d := range c.Domains {
		d = strings.ToLower(strings.TrimSpace(strings.TrimSuffix(d, ".")))
		if d == "" {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		domains = append(domains, d)
	}
	c.Domains = domains

	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.LookupTimeoutS < 1 {
		c.LookupTimeoutS = 1
	}
	if c.TimeoutS < 0 {
		c.TimeoutS = 0
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "sublance_out"
	}
}

// LookupTimeout returns the per-lookup timeout as a duration.
func (c Config) LookupTimeout() time.Duration {
	return time.Duration(c.LookupTimeoutS) * time.Second
}

// Timeout returns the global timeout as a duration (0 = none).
func (c Config) Timeout() time.Duration {
	if c.TimeoutS <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutS) * time.Second
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}
