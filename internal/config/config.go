package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Board struct {
	Rows  int    `mapstructure:"rows"`
	Cols  int    `mapstructure:"cols"`
	Mines int    `mapstructure:"mines"`
	Seed  uint64 `mapstructure:"seed"`
}

type UI struct {
	Color bool `mapstructure:"color"`
	Auto  bool `mapstructure:"auto"`
	Plain bool `mapstructure:"plain"`
}

type Log struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

type Config struct {
	Board       Board  `mapstructure:"board"`
	UI          UI     `mapstructure:"ui"`
	Log         Log    `mapstructure:"log"`
	Development bool   `mapstructure:"development"`
	Profile     string `mapstructure:"profile"`
}

var ErrPositional = errors.New("expected either no positional arguments or rows, cols and mines")

// usageOutput receives help and flag parsing errors.
var usageOutput io.Writer = os.Stderr

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("mines", pflag.ContinueOnError)
	fs.SetOutput(usageOutput)
	fs.Usage = func() {
		fmt.Fprintf(usageOutput, "usage: mines [flags] [rows cols mines]\n\nPlays a game of minesweeper.\n\n")
		fs.PrintDefaults()
	}
	fs.Bool("no-color", false, "disables colorful output")
	fs.Bool("no-auto", false, "disables automatic '0' propagation")
	fs.Bool("plain", false, "read commands from stdin instead of running the terminal UI")
	fs.Uint64("seed", 0, "seed for mine placement (0 picks one at random)")
	fs.String("log-file", "", "write logs to this file, rotated")
	fs.String("log-level", "info", "log level")
	fs.Bool("debug", false, "development mode, implies debug logging")
	fs.String("profile", "", "write a CPU profile into this directory")
	return fs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("board.rows", 9)
	v.SetDefault("board.cols", 9)
	v.SetDefault("board.mines", 10)
	v.SetDefault("board.seed", 0)
	v.SetDefault("ui.color", true)
	v.SetDefault("ui.auto", true)
	v.SetDefault("ui.plain", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("development", false)
	v.SetDefault("profile", "")
}

func readConfigFile(v *viper.Viper) error {
	v.SetConfigType("toml")

	cfgPath := os.Getenv("MINES_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "mines"))
		v.SetConfigName("config")
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || cfgPath == "" && errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("read config: %w", err)
}

func parsePositional(v *viper.Viper, args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 3:
	default:
		return fmt.Errorf("%w (have %d)", ErrPositional, len(args))
	}
	for i, key := range []string{"board.rows", "board.cols", "board.mines"} {
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", strings.TrimPrefix(key, "board."), err)
		}
		v.Set(key, n)
	}
	return nil
}

// Load builds the configuration from defaults, an optional TOML file, MINES_*
// environment variables and the command line, in increasing precedence.
func Load(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	v.SetEnvPrefix("MINES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"ui.plain":    "plain",
		"board.seed":  "seed",
		"log.file":    "log-file",
		"log.level":   "log-level",
		"development": "debug",
		"profile":     "profile",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	for key, flag := range map[string]string{
		"ui.color": "no-color",
		"ui.auto":  "no-auto",
	} {
		if fs.Changed(flag) {
			off, _ := fs.GetBool(flag)
			v.Set(key, !off)
		}
	}

	if err := parsePositional(v, fs.Args()); err != nil {
		return nil, err
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"rows":            c.Board.Rows,
		"cols":            c.Board.Cols,
		"mines":           c.Board.Mines,
		"seed":            c.Board.Seed,
		"color":           c.UI.Color,
		"auto":            c.UI.Auto,
		"plain":           c.UI.Plain,
		"log_file":        c.Log.File,
		"log_level":       c.Log.Level,
		"log_max_size":    c.Log.MaxSize,
		"log_max_backups": c.Log.MaxBackups,
		"log_max_age":     c.Log.MaxAge,
		"development":     c.Development,
		"profile":         c.Profile,
	}
}
