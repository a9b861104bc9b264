package treecfg

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/stig"
	"github.com/0xalexb/stig/logging"

	"go.uber.org/fx"
)

// NewModule creates an Fx module for a named configuration tree. The
// name is used as both the module name and the DI named tag for the
// supplied *stig.BoundPath and Config. If any options are passed, the
// module supplies Config to DI from those options; otherwise Config
// must be provided externally under the same name tag.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	hasConfigFromOptions := len(opts) > 0

	var moduleOpts []fx.Option

	if hasConfigFromOptions {
		moduleOpts = append(moduleOpts, fx.Supply(
			fx.Annotate(cfg, fx.ResultTags(fmt.Sprintf(`name:"%s"`, name))),
		))
	}

	moduleOpts = append(moduleOpts, fx.Provide(
		fx.Annotate(
			func(treeCfg Config) (*stig.BoundPath, error) {
				return load(name, treeCfg)
			},
			fx.ParamTags(fmt.Sprintf(`name:"%s"`, name)),
			fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
		),
	))

	return fx.Module(name, moduleOpts...)
}

func load(name string, cfg Config) (*stig.BoundPath, error) {
	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("module %q: %w", name, err)
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel}, os.Stderr)

	fetcher, err := NewFileFetcher(cfg.File)()
	if err != nil {
		return nil, fmt.Errorf("module %q: %w", name, err)
	}

	pathOpts := []stig.Option{stig.WithSeparator(cfg.Separator)}
	if cfg.CacheSize > 0 {
		pathOpts = append(pathOpts, stig.WithCacheSize(cfg.CacheSize))
	}

	root, err := Provider(pathOpts...)(NewYAMLParser(), fetcher)
	if err != nil {
		return nil, fmt.Errorf("module %q: %w", name, err)
	}

	logger.Debug("configuration tree loaded",
		slog.String("module", name),
		slog.String("file", cfg.File),
	)

	return root, nil
}
