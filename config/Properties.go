// Package config loads the game properties: one properties file
// per environment under properties/, selected by --env or PONG_ENV.
package config

import (
	"os"
	"path/filepath"
	"reflect"
	"time"

	"ShapePong/pixel"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvVar = "PONG_ENV"

const DefaultEnv = "local"

type Vector struct {
	X int `mapstructure:"x"`
	Y int `mapstructure:"y"`
}

type Settings struct {
	Env       string `mapstructure:"env"`
	ConfigDir string `mapstructure:"config-dir"`
	Headless  bool   `mapstructure:"headless"`

	Screen struct {
		Width  int `mapstructure:"width"`
		Height int `mapstructure:"height"`
	} `mapstructure:"screen"`

	Tick struct {
		Interval time.Duration `mapstructure:"interval"`
		PerFrame int           `mapstructure:"perframe"`
	} `mapstructure:"tick"`

	Ball struct {
		Radius   int    `mapstructure:"radius"`
		Velocity Vector `mapstructure:"velocity"`
		Serve    int    `mapstructure:"serve"`
	} `mapstructure:"ball"`

	Paddle struct {
		HalfWidth  int `mapstructure:"halfwidth"`
		HalfHeight int `mapstructure:"halfheight"`
		Step       int `mapstructure:"step"`
		Margin     int `mapstructure:"margin"`
		Inset      int `mapstructure:"inset"`
	} `mapstructure:"paddle"`

	Score struct {
		Rule string `mapstructure:"rule"`
	} `mapstructure:"score"`

	Color struct {
		Background pixel.Color `mapstructure:"background"`
		Field      pixel.Color `mapstructure:"field"`
		Ball       pixel.Color `mapstructure:"ball"`
		Paddle1    pixel.Color `mapstructure:"paddle1"`
		Paddle2    pixel.Color `mapstructure:"paddle2"`
		Text       pixel.Color `mapstructure:"text"`
	} `mapstructure:"color"`

	Audio struct {
		Melody string `mapstructure:"melody"`
	} `mapstructure:"audio"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", envOrDefault())
	v.SetDefault("config-dir", ".")
	v.SetDefault("headless", false)

	v.SetDefault("screen.width", 128)
	v.SetDefault("screen.height", 64)

	// 15 ticks of ~4ms make one frame, as with the watchdog timer
	v.SetDefault("tick.interval", 4*time.Millisecond)
	v.SetDefault("tick.perframe", 15)

	v.SetDefault("ball.radius", 2)
	v.SetDefault("ball.velocity.x", 2)
	v.SetDefault("ball.velocity.y", 1)
	v.SetDefault("ball.serve", 2)

	v.SetDefault("paddle.halfwidth", 1)
	v.SetDefault("paddle.halfheight", 8)
	v.SetDefault("paddle.step", 4)
	v.SetDefault("paddle.margin", 7)
	v.SetDefault("paddle.inset", 6)

	v.SetDefault("score.rule", "edge")

	v.SetDefault("color.background", "#000000")
	v.SetDefault("color.field", "#ffffff")
	v.SetDefault("color.ball", "#ffffff")
	v.SetDefault("color.paddle1", "#800080")
	v.SetDefault("color.paddle2", "#ff0000")
	v.SetDefault("color.text", "#ffffff")

	v.SetDefault("audio.melody", "furelise")
}

// Flags declares the command line overrides. Names match the property keys.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("shapepong", pflag.ContinueOnError)
	fs.String("env", envOrDefault(), "properties environment (properties/<env>.properties)")
	fs.String("config-dir", ".", "directory holding logger.properties and properties/")
	fs.Bool("headless", false, "run without a terminal, drawing into memory")
	fs.Duration("tick.interval", 4*time.Millisecond, "timer tick interval")
	fs.Int("tick.perframe", 15, "ticks per game advance")
	fs.String("score.rule", "edge", "counter credited on a crossed edge: edge|opponent")
	fs.String("audio.melody", "furelise", "melody after a score reset: none|cannon|furelise")
	return fs
}

func envOrDefault() string {
	if env := os.Getenv(EnvVar); env != "" {
		return env
	}
	return DefaultEnv
}

// Path is the properties file for env below dir.
func Path(dir, env string) string {
	return filepath.Join(dir, "properties", env+".properties")
}

// Load merges defaults, properties/<env>.properties and changed flags, in
// increasing priority. A missing properties file leaves the defaults in place.
func Load(fs afero.Fs, flags *pflag.FlagSet) (*Settings, bool, error) {
	v := viper.New()
	v.SetFs(fs)
	setDefaults(v)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, false, errors.Wrap(err, "bind flags")
		}
	}

	path := Path(v.GetString("config-dir"), v.GetString("env"))
	found, err := afero.Exists(fs, path)
	if err != nil {
		return nil, false, errors.Wrapf(err, "stat %s", path)
	}
	if found {
		v.SetConfigFile(path)
		v.SetConfigType("properties")
		if err := v.ReadInConfig(); err != nil {
			return nil, false, errors.Wrapf(err, "read %s", path)
		}
	}

	var s Settings
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		colorHook(),
	))
	if err := v.Unmarshal(&s, hook); err != nil {
		return nil, found, errors.Wrap(err, "decode settings")
	}
	if err := s.Validate(); err != nil {
		return nil, found, err
	}
	return &s, found, nil
}

func colorHook() mapstructure.DecodeHookFuncType {
	colorType := reflect.TypeOf(pixel.Color(0))
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != colorType || f.Kind() != reflect.String {
			return data, nil
		}
		return pixel.Parse(data.(string))
	}
}

func (s *Settings) Validate() error {
	switch {
	case s.Screen.Width <= 0 || s.Screen.Height <= 0:
		return errors.Errorf("screen %dx%d is empty", s.Screen.Width, s.Screen.Height)
	case s.Tick.Interval <= 0:
		return errors.Errorf("tick.interval must be positive, got %s", s.Tick.Interval)
	case s.Tick.PerFrame < 1:
		return errors.Errorf("tick.perframe must be at least 1, got %d", s.Tick.PerFrame)
	case s.Ball.Radius < 0:
		return errors.Errorf("ball.radius must not be negative, got %d", s.Ball.Radius)
	case s.Paddle.HalfWidth < 0 || s.Paddle.HalfHeight < 0:
		return errors.New("paddle half sizes must not be negative")
	case s.Paddle.Step <= 0:
		return errors.Errorf("paddle.step must be positive, got %d", s.Paddle.Step)
	case s.Paddle.Margin < 0:
		return errors.Errorf("paddle.margin must not be negative, got %d", s.Paddle.Margin)
	case 2*s.Paddle.HalfHeight+1 > s.Screen.Height:
		return errors.Errorf("paddle height %d does not fit screen height %d", 2*s.Paddle.HalfHeight+1, s.Screen.Height)
	}
	return nil
}
