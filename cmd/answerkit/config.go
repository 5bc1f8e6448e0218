package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leofalp/answerkit/core/normalizer"
	"github.com/leofalp/answerkit/providers/observability"
	"github.com/leofalp/answerkit/providers/observability/slogobs"
)

const (
	configName = ".answerkit"
	envPrefix  = "ANSWERKIT"

	keyLogLevel  = "log.level"
	keyLogFormat = "log.format"
	keyLanguages = "languages"
	keyRepair    = "repair"
	keyHTML      = "html"
)

// app carries the configuration shared by all subcommands.
type app struct {
	v        *viper.Viper
	cfgFile  string
	observer *slogobs.Observer
}

func newApp() *app {
	v := viper.New()
	v.SetDefault(keyLanguages, []string{})
	v.SetDefault(keyRepair, false)
	v.SetDefault(keyHTML, false)
	return &app{v: v}
}

// init loads .env, the environment and the optional config file, then builds
// the observer used by the normalizer.
func (a *app) init(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName(configName)
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	level := slogobs.GetLogLevelFromEnv()
	if name := a.v.GetString(keyLogLevel); name != "" {
		parsed, err := slogobs.ParseLogLevel(name)
		if err != nil {
			return err
		}
		level = parsed
	}
	format := slogobs.GetFormatFromEnv()
	if name := a.v.GetString(keyLogFormat); name != "" {
		parsed, err := slogobs.ParseFormat(name)
		if err != nil {
			return err
		}
		format = parsed
	}

	a.observer = slogobs.New(
		slogobs.WithLevel(level),
		slogobs.WithFormat(format),
		slogobs.WithOutput(cmd.ErrOrStderr()),
	)
	a.observer.Debug(cmd.Context(), "configuration loaded",
		observability.String("config.file", a.v.ConfigFileUsed()),
		observability.String("log.level", level.String()),
		observability.String("log.format", format.String()),
	)
	return nil
}

// normalizer builds a Normalizer from the loaded configuration. Flag values
// override configured ones.
func (a *app) normalizer(extra ...normalizer.Option) *normalizer.Normalizer {
	opts := []normalizer.Option{normalizer.WithObserver(a.observer)}
	if languages := a.v.GetStringSlice(keyLanguages); len(languages) > 0 {
		opts = append(opts, normalizer.WithLanguages(languages...))
	}
	if a.v.GetBool(keyRepair) {
		opts = append(opts, normalizer.WithRepair())
	}
	if a.v.GetBool(keyHTML) {
		opts = append(opts, normalizer.WithHTMLAnswers())
	}
	return normalizer.New(append(opts, extra...)...)
}
