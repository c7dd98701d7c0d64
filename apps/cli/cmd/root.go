package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/curlparse/packages/core/config"
	"github.com/abdul-hamid-achik/curlparse/packages/output"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	configFlag        string
	formatFlag        string
	noColorFlag       bool
	verboseFlag       bool
	defaultMethodFlag string
)

var rootCmd = &cobra.Command{
	Use:   "curlparse",
	Short: "Parse curl commands into a structured model",
	Long: `curlparse reads a curl command line as plain text and extracts the
HTTP request it describes: method, URL, headers and body.

Only -X/--request, -H/--header and -d/--data are understood.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes rootCmd with args and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		var ee *exitError
		if !errors.As(err, &ee) || !ee.reported {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
	}
	return exitCode(err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", getEnvString("CURLPARSE_CONFIG", ""), "Path to config file (env: CURLPARSE_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", getEnvString("CURLPARSE_FORMAT", ""), "Output format: text, console, json, yaml, toml (env: CURLPARSE_FORMAT)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", getEnvBool("CURLPARSE_NO_COLOR", false), "Disable colored output (env: CURLPARSE_NO_COLOR)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Report the config file in use and watch events")
	rootCmd.PersistentFlags().StringVar(&defaultMethodFlag, "default-method", "", "Method to show when a command sets none")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return withExitCode(ExitUsageError, err)
	})

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(creditsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
}

// exactArgs is cobra.ExactArgs reporting a usage exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return withExitCode(ExitUsageError, err)
		}
		return nil
	}
}

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

// flagConfig holds the settings given on the command line. Unset bools
// stay nil so they do not override the config file.
func flagConfig() *config.Config {
	c := &config.Config{
		Format:        formatFlag,
		DefaultMethod: defaultMethodFlag,
	}
	if noColorFlag {
		c.NoColor = config.BoolPtr(true)
	}
	if verboseFlag {
		c.Verbose = config.BoolPtr(true)
	}
	return c
}

// loadSettings loads the config file and applies command line overrides.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	fileConfig, path, err := config.LoadConfig(configFlag)
	if err != nil {
		return nil, withExitCode(ExitConfigError, fmt.Errorf("failed to load config: %w", err))
	}

	cfg := fileConfig.Merge(flagConfig())
	if err := cfg.Validate(); err != nil {
		return nil, withExitCode(ExitUsageError, err)
	}

	if cfg.GetVerbose() && path != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Using config: %s\n", path)
	}
	return cfg, nil
}

func newFormatter(cmd *cobra.Command, cfg *config.Config) (output.Formatter, error) {
	f, err := output.New(cfg.Format,
		output.WithWriter(cmd.OutOrStdout()),
		output.WithErrorWriter(cmd.ErrOrStderr()),
		output.WithNoColor(cfg.GetNoColor()),
		output.WithPrettyBody(cfg.GetPrettyBody()),
		output.WithDefaultMethod(cfg.DefaultMethod),
	)
	if err != nil {
		return nil, withExitCode(ExitUsageError, err)
	}
	return f, nil
}
