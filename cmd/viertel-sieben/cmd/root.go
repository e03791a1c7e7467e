package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/viertel-sieben/internal/config"
	"github.com/oshokin/viertel-sieben/internal/service/show"
	"github.com/oshokin/viertel-sieben/internal/service/watch"
	"github.com/oshokin/viertel-sieben/internal/version"
)

var (
	// configPath to the configuration YAML file, empty means the default file if present.
	configPath string
	// extended switches the canonical hour line on or off for this run.
	extended bool
	// step is the listing interval of the day command in minutes.
	step int

	// rootCmd runs the watch face on the terminal.
	rootCmd = &cobra.Command{
		Use:   "viertel-sieben",
		Short: "Show the time the way it is spoken in parts of Germany.",
		Long: `Shows the current time as a phrase such as "viertel acht" or
"gleich dreiviertel neun" and redraws it at every full minute.

In extended mode the canonical hour of the day (Matutin, Laudes, Terz, Sext,
Non, Vesper, Komplet) is shown below the phrase and the terminal bell rings
twice at 06:00, 12:00 and 18:00 for the Angelus.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &watch.Options{
				ConfigPath: configPath,
				Extended:   extendedOverride(cmd),
				Out:        cmd.OutOrStdout(),
			}

			return watch.Run(ctx, options)
		},
	}

	// atCmd draws a single frame.
	atCmd = &cobra.Command{
		Use:   "at HH:MM",
		Short: "Show the phrase for a given time.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options := &show.Options{
				ConfigPath: configPath,
				Extended:   extendedOverride(cmd),
				Out:        cmd.OutOrStdout(),
			}

			return show.At(cmd.Context(), options, args[0])
		},
	}

	// dayCmd lists the whole day.
	dayCmd = &cobra.Command{
		Use:   "day",
		Short: "List the phrases of a whole day.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			options := &show.Options{
				ConfigPath: configPath,
				Extended:   extendedOverride(cmd),
				Out:        cmd.OutOrStdout(),
			}

			return show.Day(cmd.Context(), options, step)
		},
	}
)

// Execute runs the viertel-sieben CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// extendedOverride returns the flag value only when it was given.
func extendedOverride(cmd *cobra.Command) *bool {
	if !cmd.Flags().Changed("extended") {
		return nil
	}

	value := extended

	return &value
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "", "path to configuration file (default "+config.DefaultConfigFilename+" if present)")
	rootCmd.PersistentFlags().
		BoolVarP(&extended, "extended", "e", true, "show the canonical hour and ring the Angelus")

	dayCmd.Flags().IntVarP(&step, "step", "s", show.DefaultStep, "listing interval in minutes")

	rootCmd.AddCommand(atCmd, dayCmd)
}
