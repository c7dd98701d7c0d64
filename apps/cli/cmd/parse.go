package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/abdul-hamid-achik/curlparse/packages/curl"
	"github.com/abdul-hamid-achik/curlparse/packages/output"
	"github.com/abdul-hamid-achik/curlparse/packages/schema"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond

	// stdinArg reads the command from standard input
	stdinArg = "-"
)

var (
	watchFlag    bool
	bodyPathFlag string
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file containing a single curl command",
	Long: `Parse a file containing a single curl command and print the parsed model.

Use - to read the command from standard input.

Examples:
  curlparse parse request.curl
  curlparse parse request.curl --format json
  echo "curl -X POST https://example.com" | curlparse parse -
  curlparse parse request.curl --body-path user.name
  curlparse parse request.curl --watch`,
	Args: exactArgs(1),
	RunE: parseCommand,
}

func init() {
	parseCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Re-parse the file whenever it changes")
	parseCmd.Flags().StringVar(&bodyPathFlag, "body-path", "", "Print only the part of a JSON body at this gjson path")
}

func parseCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	formatter, err := newFormatter(cmd, cfg)
	if err != nil {
		return err
	}

	path := args[0]
	if watchFlag && path == stdinArg {
		return withExitCode(ExitUsageError, errors.New("--watch needs a file, not stdin"))
	}

	err = parseAndRender(cmd, formatter, path)
	if !watchFlag {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchFile(ctx, cmd, formatter, path, cfg.GetVerbose())
}

// parseAndRender parses the command in path and writes it through f.
// Failures are reported through f before they are returned.
func parseAndRender(cmd *cobra.Command, f output.Formatter, path string) error {
	input, err := readInput(cmd, path)
	if err != nil {
		f.FormatError(fmt.Errorf("Failed to read: %w", err))
		return reported(ExitFailure, err)
	}

	req, err := curl.Parse(input)
	if err != nil {
		f.FormatError(err)
		return reported(ExitParseError, err)
	}

	if bodyPathFlag != "" {
		body, ok := req.BodyJSON()
		if !ok {
			f.FormatError(schema.ErrBodyNotJSON)
			return reported(ExitParseError, schema.ErrBodyNotJSON)
		}
		value := body.Get(bodyPathFlag)
		if !value.Exists() {
			err := fmt.Errorf("body path %q matched nothing", bodyPathFlag)
			f.FormatError(err)
			return reported(ExitParseError, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), value.String())
		return nil
	}

	if err := f.FormatRequest(req); err != nil {
		return withExitCode(ExitFailure, fmt.Errorf("failed to write output: %w", err))
	}
	return nil
}

func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinArg {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.New("input is not valid UTF-8")
	}
	return string(data), nil
}

// watchFile re-renders path after each burst of writes until ctx is done.
func watchFile(ctx context.Context, cmd *cobra.Command, f output.Formatter, path string, verbose bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return withExitCode(ExitFailure, fmt.Errorf("failed to create file watcher: %w", err))
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file are still seen
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return withExitCode(ExitFailure, fmt.Errorf("failed to watch %s: %w", path, err))
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "\nWatching %s for changes... (press Ctrl+C to stop)\n", path)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				debounce = time.After(WatchDebounceDelay)
			}

		case <-debounce:
			debounce = nil
			if verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "\nFile changed: %s\n", path)
			}
			// already reported through f
			_ = parseAndRender(cmd, f, path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			f.FormatError(fmt.Errorf("watcher error: %w", err))
		}
	}
}
