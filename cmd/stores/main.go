// Package main is the entry point for the stores CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jacksmith/stores/internal/cli"
	"github.com/jacksmith/stores/internal/logging"
	"github.com/jacksmith/stores/internal/shell"
	"github.com/jacksmith/stores/internal/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags.
var Version = "dev"

// autoArg is the single-dash form accepted for scripted smoke runs.
const autoArg = "-auto"

var (
	flagFile    string
	flagAuto    bool
	flagVerbose bool
	flagNoColor bool
)

// Set up by PersistentPreRunE for every command.
var (
	cfg    *storage.Config
	logger = zap.NewNop()
)

func main() {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

// normalizeArgs rewrites a leading "-auto" (any case) to "--auto" so the
// flag parser does not read it as a group of shorthand flags.
func normalizeArgs(args []string) []string {
	if len(args) > 0 && strings.EqualFold(args[0], autoArg) {
		return append([]string{"--auto"}, args[1:]...)
	}
	return args
}

var rootCmd = &cobra.Command{
	Use:   "stores",
	Short: "stores - a small catalog of retail stores",
	Long: `stores keeps a catalog of retail stores (name, address, phone numbers,
specialization, working hours) in a local JSON file.

Run without arguments to open the interactive menu. The catalog is loaded
at startup and saved when you exit.

Use -auto to add a sample store, print the catalog, save and exit without
prompting. The subcommands below run one operation and exit.`,
	Version:           Version,
	Args:              cobra.NoArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "catalog file (default from config, then stores.json)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "write debug logs to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVar(&flagAuto, "auto", false, "add a sample store, print, save and exit")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("stores version {{.Version}}\n")
}

// setup resolves configuration (flag > environment and .env > .storesconfig.yaml
// > defaults) and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	c, err := storage.LoadConfig(".")
	if err != nil {
		return err
	}
	c.ApplyEnv(os.Getenv)
	if flagFile != "" {
		c.DataFile = flagFile
	}

	level := c.LogLevel
	if flagVerbose {
		level = "debug"
	}
	l, err := logging.New(level)
	if err != nil {
		return err
	}

	cfg = c
	logger = l
	applyColor(c.Color, flagNoColor)
	return nil
}

func applyColor(mode string, noColor bool) {
	switch {
	case noColor || mode == storage.ColorNever:
		cli.SetColorEnabled(false)
	case mode == storage.ColorAlways:
		cli.SetColorEnabled(true)
	default:
		cli.SetColorEnabled(cli.IsTerminal(os.Stdout))
	}
}

// openCatalog loads the catalog file named by the config.
func openCatalog() (*storage.Storage, *storage.LoadResult, error) {
	st := storage.Open(cfg.DataFile, logger)
	res, err := st.Load()
	if err != nil {
		return nil, nil, err
	}
	return st, res, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	st, res, err := openCatalog()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	shell.ReportLoad(out, st.Path(), res)

	if flagAuto {
		return shell.RunAuto(out, res.Catalog, st)
	}
	return shell.New(cmd.InOrStdin(), out, res.Catalog, st, logger).Run()
}
