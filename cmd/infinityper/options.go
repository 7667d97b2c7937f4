package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/san-kum/infinityper/internal/config"
	"github.com/san-kum/infinityper/internal/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "INFINITYPER"
	defaultConfigName = ".infinityper.yaml"
)

// options collects flag values; typing options are resolved through viper so
// INFINITYPER_* environment variables can stand in for flags.
type options struct {
	v          *viper.Viper
	configFile string
	preset     string
	verbose    int
}

func (o *options) bind(cmd *cobra.Command) {
	def := config.DefaultConfig()
	flags := cmd.PersistentFlags()

	flags.StringP("input", "i", def.Text, "content to type")
	flags.Float64P("speed", "s", def.Speed, "delay between characters in milliseconds")
	flags.Uint64P("runs", "r", def.Runs, "number of times to type the content")
	flags.BoolP("repeat", "R", false, "repeat output without clearing the terminal")
	flags.BoolP("color", "c", false, "color each line with a solid palette color (see --gradient)")
	flags.BoolP("gradient", "g", false, "blend each line from its color into the next palette color, the classic look (implies --color)")
	flags.String("palette", def.Palette, "color palette ("+strings.Join(palette.Names(), ", ")+")")
	flags.BoolP("debug", "d", false, "debug logging")
	flags.CountVarP(&o.verbose, "verbose", "v", "verbose mode (-v, -vv)")
	flags.StringVar(&o.configFile, "config", "", "config file (default is $HOME/"+defaultConfigName+")")
	flags.StringVar(&o.preset, "preset", "", "start from a preset ("+strings.Join(config.ListPresets(), ", ")+")")

	o.v = viper.New()
	o.v.SetEnvPrefix(envPrefix)
	o.v.AutomaticEnv()
	for key, flag := range flagKeys {
		_ = o.v.BindPFlag(key, flags.Lookup(flag))
	}
}

// flagKeys maps config keys to flag names.
var flagKeys = map[string]string{
	"text":     "input",
	"speed":    "speed",
	"runs":     "runs",
	"repeat":   "repeat",
	"color":    "color",
	"gradient": "gradient",
	"palette":  "palette",
	"debug":    "debug",
}

func (o *options) debugRequested() bool {
	return o.v.GetBool("debug")
}

// resolve layers defaults < preset < config file < environment < flags.
func (o *options) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if o.preset != "" {
		cfg = config.GetPreset(o.preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", o.preset, config.ListPresets())
		}
	}

	path, explicit, err := o.configPath()
	if err != nil {
		return nil, err
	}
	if err := cfg.Merge(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := o.overlay(cfg); err != nil {
		return nil, err
	}
	cfg.Verbose = o.verbose
	if cfg.Gradient {
		cfg.Color = true
	}
	if err := cfg.Validate(palette.Known); err != nil {
		return nil, err
	}
	// debug may come from a preset or the config file, which are only
	// known now.
	setupLogging(cmd.ErrOrStderr(), cfg.Verbose, cfg.Debug)
	log.Debug("resolved config", "file", path, "preset", o.preset, "flags", changedFlags(cmd.Flags()))
	return cfg, nil
}

func (o *options) configPath() (path string, explicit bool, err error) {
	if o.configFile != "" {
		path, err = homedir.Expand(o.configFile)
		return path, true, err
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", false, err
	}
	return filepath.Join(home, defaultConfigName), false, nil
}

// overlay applies every key set through a flag or the environment.
func (o *options) overlay(cfg *config.Config) error {
	v := o.v
	if v.IsSet("text") {
		cfg.Text = v.GetString("text")
	}
	if v.IsSet("speed") {
		speed, err := strconv.ParseFloat(v.GetString("speed"), 64)
		if err != nil {
			return fmt.Errorf("invalid speed %q: %w", v.GetString("speed"), err)
		}
		cfg.Speed = speed
	}
	if v.IsSet("runs") {
		runs, err := strconv.ParseUint(v.GetString("runs"), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid runs %q: %w", v.GetString("runs"), err)
		}
		cfg.Runs = runs
	}
	if v.IsSet("repeat") {
		cfg.Repeat = v.GetBool("repeat")
	}
	if v.IsSet("color") {
		cfg.Color = v.GetBool("color")
	}
	if v.IsSet("gradient") {
		cfg.Gradient = v.GetBool("gradient")
	}
	if v.IsSet("palette") {
		cfg.Palette = v.GetString("palette")
	}
	if v.IsSet("debug") {
		cfg.Debug = v.GetBool("debug")
	}
	return nil
}

// changedFlags lists the flags given on the command line, for debug logging.
func changedFlags(flags *pflag.FlagSet) []string {
	var names []string
	flags.Visit(func(f *pflag.Flag) { names = append(names, f.Name) })
	return names
}
