package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// ErrUsage marks errors caused by bad flags or flag values.
var ErrUsage = errors.New("usage error")

// Input modes and output formats.
const (
	ModeChars  = "chars"
	ModeInts   = "ints"
	ModeFloats = "floats"
	ModeWords  = "words"

	FormatText = "text"
	FormatJSON = "json"
	FormatDump = "dump"
)

var (
	validModes   = mapset.NewSet(ModeChars, ModeInts, ModeFloats, ModeWords)
	validFormats = mapset.NewSet(FormatText, FormatJSON, FormatDump)
)

// Config captures everything a single invocation needs.
type Config struct {
	Mode     string
	Format   string
	Gen      string // fixture shape; empty reads input from args or stdin
	N        int    // fixture length
	Param    int    // fixture period/width/value
	Seed     int64  // fixture seed
	LogLevel slog.Level
	NoColor  bool
	FullScan bool // disable the early-exit bound
}

// FromEnv builds the default Config from environment variables so flags only
// need to override what differs.
func FromEnv(getenv func(string) string) Config {
	cfg := Config{
		Mode:     ModeChars,
		Format:   FormatText,
		N:        32,
		Param:    4,
		Seed:     1,
		LogLevel: slog.LevelWarn,
	}
	if v := getenv("INCRUN_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := getenv("INCRUN_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := getenv("INCRUN_LOG_LEVEL"); v != "" {
		// an unparsable level keeps the default; Parse validates the flag form
		_ = cfg.LogLevel.UnmarshalText([]byte(v))
	}
	if v, err := strconv.ParseBool(getenv("INCRUN_NO_COLOR")); err == nil {
		cfg.NoColor = v
	}
	// NO_COLOR is honoured whenever it is set, regardless of value.
	if getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return cfg
}

// Parse reads flags on top of the environment defaults and returns the
// Config plus the remaining positional arguments.
func Parse(args []string, getenv func(string) string, stderr io.Writer) (Config, []string, error) {
	cfg := FromEnv(getenv)
	level := cfg.LogLevel.String()

	fs := flag.NewFlagSet("incrun", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "input mode: chars, ints, floats or words")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: text, json or dump")
	fs.StringVar(&cfg.Gen, "gen", "", "generate input instead of reading it: ascending, descending, constant, sawtooth, plateau or random")
	fs.IntVar(&cfg.N, "n", cfg.N, "length of the generated input")
	fs.IntVar(&cfg.Param, "param", cfg.Param, "sawtooth period, plateau width or constant value")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for -gen random")
	fs.StringVar(&level, "log-level", level, "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored log output")
	fs.BoolVar(&cfg.FullScan, "full-scan", false, "scan the whole input even when the answer is already known")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: incrun [flags] [input...]")
		fmt.Fprintln(fs.Output(), "Prints the leftmost longest strictly increasing run of the input.")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return Config{}, nil, fmt.Errorf("%w: -log-level %q", ErrUsage, level)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, nil, err
	}

	return cfg, fs.Args(), nil
}

func (c Config) validate() error {
	if !validModes.Contains(c.Mode) {
		return fmt.Errorf("%w: -mode %q (want one of %s)", ErrUsage, c.Mode, joinSorted(validModes))
	}
	if !validFormats.Contains(c.Format) {
		return fmt.Errorf("%w: -format %q (want one of %s)", ErrUsage, c.Format, joinSorted(validFormats))
	}
	if c.Gen != "" && c.N < 0 {
		return fmt.Errorf("%w: -n must not be negative (%d)", ErrUsage, c.N)
	}

	return nil
}

func joinSorted(s mapset.Set[string]) string {
	items := s.ToSlice()
	slices.Sort(items)

	return strings.Join(items, ", ")
}
