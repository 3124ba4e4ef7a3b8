package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/philipp01105/bootlog/core"
	"github.com/philipp01105/bootlog/formatter"
)

// DefaultEnvFile is the dotenv file read when Options.EnvFile is empty.
const DefaultEnvFile = ".env"

// Defaults
const (
	DefaultPort = 3000
	DefaultHost = "localhost"
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Flag names understood by Load when a FlagSet is supplied.
const (
	FlagEnvFile = "env-file"
	FlagColor   = "color"
	FlagNoClear = "no-clear"
)

const (
	keyAppEnv       = "app_env"
	keyNodeEnv      = "node_env"
	keyPort         = "port"
	keyHost         = "host"
	keyLogColor     = "log_color"
	keyClearConsole = "clear_console"
)

// Config is the loaded configuration. It is not modified after Load.
type Config struct {
	// Env is the environment name as configured, or the canonical name
	// of Environment when none was set.
	Env          string
	Environment  core.Environment
	Port         int
	Host         string
	Color        formatter.ColorMode
	ClearConsole bool
	// EnvFile is the dotenv file that was applied, empty when none was.
	EnvFile string
}

// Options controls Load.
type Options struct {
	// EnvFile names the dotenv file. When empty, DefaultEnvFile is read
	// if it exists; a file named explicitly must exist.
	EnvFile string
	// Flags, when set, supplies overrides for --color and --no-clear.
	// Only flags changed on the command line take effect.
	Flags *pflag.FlagSet
}

// Load reads and validates the configuration.
func Load(opts Options) (*Config, error) {
	envFile, err := loadEnvFile(opts.EnvFile)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault(keyPort, DefaultPort)
	v.SetDefault(keyHost, DefaultHost)
	v.SetDefault(keyLogColor, formatter.ColorAuto.String())
	v.SetDefault(keyClearConsole, true)

	if err := bindFlags(v, opts.Flags); err != nil {
		return nil, err
	}

	cfg := &Config{
		Host:    v.GetString(keyHost),
		EnvFile: envFile,
	}

	cfg.Env = v.GetString(keyAppEnv)
	if cfg.Env == "" {
		cfg.Env = v.GetString(keyNodeEnv)
	}
	cfg.Environment = core.ParseEnvironment(cfg.Env)
	if cfg.Env == "" {
		cfg.Env = cfg.Environment.String()
	}

	var errs []error
	port, err := cast.ToIntE(v.Get(keyPort))
	if err != nil {
		errs = append(errs, fmt.Errorf("PORT %q is not a number", v.GetString(keyPort)))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range 1..65535", port))
	}
	cfg.Port = port

	cfg.Color, err = formatter.ParseColorMode(v.GetString(keyLogColor))
	if err != nil {
		errs = append(errs, fmt.Errorf("LOG_COLOR: %w", err))
	}

	cfg.ClearConsole, err = cast.ToBoolE(v.Get(keyClearConsole))
	if err != nil {
		errs = append(errs, fmt.Errorf("CLEAR_CONSOLE %q is not a boolean", v.GetString(keyClearConsole)))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return cfg, nil
}

// loadEnvFile applies the dotenv file over the process environment and
// returns the path it read.
func loadEnvFile(path string) (string, error) {
	required := path != ""
	if !required {
		path = DefaultEnvFile
	}

	if err := godotenv.Overload(path); err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("config: loading %s: %w", path, err)
	}
	return path, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}

	if f := flags.Lookup(FlagColor); f != nil && f.Changed {
		v.Set(keyLogColor, f.Value.String())
	}
	if f := flags.Lookup(FlagNoClear); f != nil && f.Changed {
		noClear, err := cast.ToBoolE(f.Value.String())
		if err != nil {
			return fmt.Errorf("config: --%s: %w", FlagNoClear, err)
		}
		v.Set(keyClearConsole, !noClear)
	}
	return nil
}

// RegisterFlags adds the flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagEnvFile, "", "dotenv file to load (default .env when present)")
	fs.String(FlagColor, formatter.ColorAuto.String(), "colorize output: auto, always or never")
	fs.Bool(FlagNoClear, false, "do not clear the console on start")
}

// Address returns host:port.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
