package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lockstep/ecs"
	"lockstep/internal/logging"
)

type sword struct {
	strength float64
}

type shield struct {
	kind byte
}

const shieldKinds = "rk"

func newRootCmd() *cobra.Command {
	long := fmt.Sprintf(`Creates twice --initial-size entities, forcing the registry to grow once,
gives each a sword, every other one a shield, and prints one row per entity.

Flags override the config file, which overrides the defaults:

	%s
`, color.CyanString("ecsdemo --config ecsdemo.toml --strength 2.5"))

	rootCmd := &cobra.Command{
		Use:           "ecsdemo",
		Short:         "creates entities in a component registry and prints their ids",
		Long:          long,
		SilenceUsage: true,
		RunE:         rootRun,
	}

	defaults := defaultConfig()
	rootCmd.Flags().Int("initial-size", defaults.InitialSize, "number of entity ids allocated up front")
	rootCmd.Flags().Float64("strength", defaults.Strength, "strength of the sword given to every entity")
	rootCmd.Flags().String("config", "", "path to a TOML config file")
	rootCmd.Flags().String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	return rootCmd
}

func rootRun(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := logging.Configure(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	logging.Info().Int("initial_size", cfg.InitialSize).Float64("strength", cfg.Strength).Msg("starting ecsdemo")
	return run(cmd.OutOrStdout(), cfg)
}

// resolveConfig applies defaults, then the config file, then flags the
// user set explicitly.
func resolveConfig(cmd *cobra.Command) (config, error) {
	cfg := defaultConfig()

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config{}, err
	}
	if path != "" {
		if cfg, err = loadConfig(path, cfg); err != nil {
			return config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("initial-size") {
		cfg.InitialSize, _ = flags.GetInt("initial-size")
	}
	if flags.Changed("strength") {
		cfg.Strength, _ = flags.GetFloat64("strength")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	return cfg, cfg.validate()
}

// run creates twice the initial number of entities, so the registry grows
// once, and prints one row per entity. Even ids also get a shield.
func run(out io.Writer, cfg config) error {
	registry := ecs.NewRegistry[sword, shield](cfg.InitialSize)

	tw := tabwriter.NewWriter(out, 15, 0, 1, ' ', 0)
	fmt.Fprintln(tw, "iteration:\tid:\tavailable:\tsword.strength:\tshield.kind:")

	toCreate := 2 * registry.Size()
	for i := range toCreate {
		id := registry.Create()
		if registry.Has1(id) || registry.Has2(id) {
			return errors.New("new entity already has components")
		}
		if err := registry.Emplace1(id, sword{strength: cfg.Strength}); err != nil {
			return err
		}
		s, err := registry.Get1(id)
		if err != nil {
			return err
		}
		kind := "-"
		if id%2 == 0 {
			sh := shield{kind: shieldKinds[(id/2)%len(shieldKinds)]}
			if err := registry.Emplace2(id, sh); err != nil {
				return err
			}
			kind = string(sh.kind)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%g\t%s\n", i, id, registry.Available(), s.strength, kind)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	logging.Info().
		Str("size", humanize.Comma(int64(registry.Size()))).
		Str("in_use", humanize.Comma(int64(registry.InUse()))).
		Str("armed", humanize.Comma(int64(registry.Count()))).
		Msg("done")
	return nil
}
