package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/edgentropy/adjacency"
	"github.com/katalvlaran/edgentropy/motif"
	"github.com/katalvlaran/edgentropy/pipeline"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Partition strategies.
const (
	PartitionNone       = "none"
	PartitionGraphID    = "graph-id"
	PartitionComponents = "components"
)

// envPrefix prefixes every environment override.
const envPrefix = "EDGENTROPY_"

// Config is the complete run configuration.
type Config struct {
	Mode             string        `yaml:"mode" validate:"mode"`
	Kernel           string        `yaml:"kernel" validate:"kernel"`
	Workers          int           `yaml:"workers" validate:"min=1"`
	PartitionWorkers int           `yaml:"partition_workers" validate:"min=1"`
	IndexBase        int           `yaml:"index_base" validate:"indexbase"`
	Partition        string        `yaml:"partition" validate:"oneof=none graph-id components"`
	Log              LogConfig     `yaml:"log"`
	Metrics          MetricsConfig `yaml:"metrics"`
	Tracing          TracingConfig `yaml:"tracing"`
}

// LogConfig selects the slog handler. Format "auto" picks text on a
// terminal and JSON otherwise.
type LogConfig struct {
	Level  string `yaml:"level" validate:"loglevel"`
	Format string `yaml:"format" validate:"oneof=text json auto"`
}

// MetricsConfig controls the Prometheus textfile written after a run.
// An empty Textfile disables metrics.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// TracingConfig enables the stdout span exporter.
type TracingConfig struct {
	Stdout bool `yaml:"stdout"`
}

// Default returns the built-in configuration: edge mode, bitset kernel,
// sequential, 0-based ids, no partitioning, text logs at info.
func Default() Config {
	return Config{
		Mode:             motif.ModeEdges.String(),
		Kernel:           motif.KernelBitset.String(),
		Workers:          1,
		PartitionWorkers: 1,
		IndexBase:        0,
		Partition:        PartitionNone,
		Log:              LogConfig{Level: "info", Format: "text"},
	}
}

// Load merges defaults, the YAML file at path (skipped when path is empty)
// and EDGENTROPY_* environment variables, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, fmt.Errorf("load config env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Parse decodes YAML from r over the defaults and validates the result.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := decode(r, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return decode(f, cfg)
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse yaml: %w", err)
	}

	return nil
}

// loadEnv applies EDGENTROPY_* overrides. Malformed integers are errors.
func loadEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"MODE":             &cfg.Mode,
		"KERNEL":           &cfg.Kernel,
		"PARTITION":        &cfg.Partition,
		"LOG_LEVEL":        &cfg.Log.Level,
		"LOG_FORMAT":       &cfg.Log.Format,
		"METRICS_TEXTFILE": &cfg.Metrics.Textfile,
	}
	for key, dst := range strs {
		if v, ok := lookup(envPrefix + key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"WORKERS":           &cfg.Workers,
		"PARTITION_WORKERS": &cfg.PartitionWorkers,
		"INDEX_BASE":        &cfg.IndexBase,
	}
	for key, dst := range ints {
		v, ok := lookup(envPrefix + key)
		if !ok {
			continue
		}
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s=%q: %w", envPrefix, key, v, ErrInvalidConfig)
		}
		*dst = i
	}

	if v, ok := lookup(envPrefix + "TRACING_STDOUT"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sTRACING_STDOUT=%q: %w", envPrefix, v, ErrInvalidConfig)
		}
		cfg.Tracing.Stdout = b
	}

	return nil
}

// Validate checks every field against its domain.
// Returns ErrInvalidConfig wrapped with the offending key.
func (c Config) Validate() error {
	err := validate().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate: %v: %w", err, ErrInvalidConfig)
	}
	fe := verrs[0]

	return fmt.Errorf("%s=%v: fails %q: %w", fieldKey(fe.Namespace()), fe.Value(), fe.Tag(), ErrInvalidConfig)
}

var (
	validateOnce   sync.Once
	configValidate *validator.Validate
)

// validate returns the shared validator with the domain rules registered and
// field names reported by their yaml keys.
func validate() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("mode", func(fl validator.FieldLevel) bool {
			_, err := motif.ParseMode(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("kernel", func(fl validator.FieldLevel) bool {
			_, err := motif.ParseKernel(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("indexbase", func(fl validator.FieldLevel) bool {
			return adjacency.ValidateBase(int(fl.Field().Int())) == nil
		})
		_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
			_, err := parseLevel(fl.Field().String())
			return err == nil
		})
		configValidate = v
	})

	return configValidate
}

// fieldKey turns "Config.log.format" into "log.format".
func fieldKey(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return ns
}

// LoadDotenv exports the KEY=VALUE pairs of a dotenv file into the process
// environment. Variables already set keep their value.
func LoadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load dotenv %s: %w", path, err)
	}

	return nil
}

// PipelineOptions maps the counting configuration onto pipeline options.
// Logger, metrics and tracing are wired by the caller. c must be valid.
func (c Config) PipelineOptions() []pipeline.Option {
	mode, _ := motif.ParseMode(c.Mode)
	kernel, _ := motif.ParseKernel(c.Kernel)

	return []pipeline.Option{
		pipeline.WithMode(mode),
		pipeline.WithKernel(kernel),
		pipeline.WithWorkers(c.Workers),
		pipeline.WithPartitionWorkers(c.PartitionWorkers),
	}
}

// NewLogger builds the slog logger described by c, writing to w.
func (c LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %v: %w", err, ErrInvalidConfig)
	}
	opts := &slog.HandlerOptions{Level: level}
	format := c.Format
	if format == "auto" {
		format = "json"
		if terminal(w) {
			format = "text"
		}
	}
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}

	return nil, fmt.Errorf("log.format=%q: %w", c.Format, ErrInvalidConfig)
}

// terminal reports whether w is a character device such as an interactive shell.
func terminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))

	return level, err
}
