package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jsvensson/themepack/internal/config"
	"github.com/jsvensson/themepack/internal/engine"
	"github.com/jsvensson/themepack/internal/format"
	"github.com/jsvensson/themepack/internal/palette"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var (
	flagConfig  string
	flagOut     string
	flagVariant []string
	flagStrict  bool
	flagVerbose int
	flagCheck   bool
	version     = "dev" // Injected at build time via ldflags
)

// errFailedVariants makes the process exit non-zero under --strict.
var errFailedVariants = errors.New("one or more variants failed")

var rootCmd = &cobra.Command{
	Use:           "themepack",
	Short:         "Build Catppuccin theme packages for every flavor",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(logVerbosity(flagVerbose), nil)
	},
	RunE: runBuild,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render, compile and package theme files",
	RunE:  runBuild,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format themepack HCL files",
	Long:  "Format config and palette HCL files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "log debug output too")
	for _, c := range []*cobra.Command{rootCmd, buildCmd} {
		c.Flags().StringVar(&flagConfig, "config", config.DefaultPath, "path to config HCL file")
		c.Flags().StringVar(&flagOut, "out", "", "output directory (overrides config)")
		c.Flags().StringArrayVar(&flagVariant, "variant", nil, "build only specific variants (can be repeated)")
		c.Flags().BoolVar(&flagStrict, "strict", false, "exit non-zero if any variant fails")
	}
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

// logVerbosity maps the -v count to a commonlog verbosity. Step lines
// are logged at Info, so they show without any -v.
func logVerbosity(count int) int {
	return 1 + count
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagOut != "" {
		cfg.OutputDir = flagOut
	}

	e, err := engine.New(cfg)
	if err != nil {
		return err
	}
	for _, name := range flagVariant {
		v, err := palette.ParseVariant(name)
		if err != nil {
			return err
		}
		e.Variants = append(e.Variants, v)
	}

	summary, err := e.Run(cmd.Context())
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), cfg.OutputDir, summary)
	if flagStrict && len(summary.Failed()) > 0 {
		return errFailedVariants
	}
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(path, content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFailedVariants) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
