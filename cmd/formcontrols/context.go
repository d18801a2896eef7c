package main

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/jask/formcontrols/internal/bridge"
	"github.com/jask/formcontrols/internal/config"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.config, c.configErr = config.LoadFile(path)
	})
	return c.config, c.configErr
}

// newControl builds a control from the [control] section without ingesting
// left_options, so callers can subscribe first.
func newControl(cfg config.Config, logger *zap.Logger) *bridge.Control {
	c := bridge.NewDualListbox(
		bridge.WithLogger(logger),
		bridge.WithPresentation(bridge.Presentation{
			LeftTitle:   cfg.Control.LeftTitle,
			RightTitle:  cfg.Control.RightTitle,
			HeaderColor: cfg.Control.HeaderColor,
		}),
	)
	c.SetReadOnly(cfg.Control.ReadOnly)
	return c
}

func seedControl(c *bridge.Control, cfg config.Config) error {
	if strings.TrimSpace(cfg.Control.LeftOptions) == "" {
		return nil
	}
	return c.SetProperty(bridge.PropLeftOptions, cfg.Control.LeftOptions)
}
