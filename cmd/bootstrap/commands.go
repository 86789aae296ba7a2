package bootstrap

import (
	"context"
	"fmt"

	"github.com/Kryptamyr/Packer-Tracker/config"

	"github.com/spf13/cobra"
)

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		return 1
	}
	return 0
}

// NewRootCommand builds the packer-tracker command tree. Running it without
// a subcommand serves the web app.
func NewRootCommand() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:          "packer-tracker",
		Short:        "Record which packer completed which order",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(envFile)
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "env file to load configuration from")

	cmd.AddCommand(
		newServeCommand(&envFile),
		newImportLegacyCommand(&envFile),
	)

	return cmd
}

func newServeCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(*envFile)
		},
	}
}

func newImportLegacyCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import-legacy [file]",
		Short: "Import orders from a legacy packer data file",
		Long: `Import reads a file of packer|order_number|timestamp lines into the
database. The file defaults to LEGACY_DATA_FILE. Orders that
already exist are counted as duplicates and left untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newCore(*envFile)
			if err != nil {
				return err
			}
			defer app.Close()

			path := app.Config.Orders.LegacyDataFile
			if len(args) == 1 {
				path = args[0]
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			result, err := app.LegacyImport.Import(ctx, path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d orders from %s (%d duplicates, %d skipped lines)\n",
				result.Imported, path, result.Duplicates, result.Skipped)
			return nil
		},
	}
}

func serve(envFile string) error {
	app, err := New(envFile)
	if err != nil {
		return err
	}
	return app.Run()
}
