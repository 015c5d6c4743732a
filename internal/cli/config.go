package cli

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Makepad-fr/tada/internal/ui"
)

// Config keys. Each can be set by flag (--theme) or environment (TADA_THEME).
const (
	keyTheme = "theme"
	keyColor = "color"
	keyDebug = "debug"
	keyTitle = "title"

	envPrefix    = "TADA"
	defaultTheme = "classic"
	defaultTitle = "Today's Todos"
)

func newConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault(keyTheme, defaultTheme)
	v.SetDefault(keyColor, ui.ColorAuto)
	v.SetDefault(keyDebug, false)
	v.SetDefault(keyTitle, defaultTitle)
	return v
}

// configure applies the resolved settings: theme, color mode and logger.
func (a *app) configure() error {
	if err := ui.SetColorMode(a.cfg.GetString(keyColor)); err != nil {
		return usageErr("%v", err)
	}
	if err := ui.SetTheme(a.cfg.GetString(keyTheme)); err != nil {
		return usageErr("%v", err)
	}

	log, err := newLogger(a.cfg.GetBool(keyDebug))
	if err != nil {
		return runtimeErr(fmt.Errorf("logger: %w", err))
	}
	a.log = log
	a.log.Debug("config resolved",
		zap.String(keyTheme, ui.Current().Name),
		zap.String(keyColor, a.cfg.GetString(keyColor)),
		zap.String(keyTitle, a.cfg.GetString(keyTitle)),
	)
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
