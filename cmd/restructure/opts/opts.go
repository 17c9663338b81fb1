package opts

import (
	"context"

	"github.com/walteh/restructure/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Debug      bool

	Config *config.Config
	User   *UserLogger
}

// 📝 LoadConfig loads ConfigFile, or the built-in defaults when it is empty
func (o *RootOpts) LoadConfig(ctx context.Context) error {
	if o.ConfigFile == "" {
		o.Config = config.Default()
		return nil
	}

	cfg, err := config.Load(ctx, o.ConfigFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	o.Config = cfg
	return nil
}
