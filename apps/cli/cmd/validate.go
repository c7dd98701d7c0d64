package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/curlparse/packages/curl"
	"github.com/abdul-hamid-achik/curlparse/packages/schema"
	"github.com/spf13/cobra"
)

var bodySchemaFlag string

var validateCmd = &cobra.Command{
	Use:   "validate <file|directory>...",
	Short: "Check that files hold parseable curl commands",
	Long: `Parse every .curl, .sh and .txt file given, directly or inside a
directory, and report which ones fail.

With --body-schema, each request body must also be JSON that satisfies
the given JSON Schema. Requests without a body are not checked.

Examples:
  curlparse validate request.curl
  curlparse validate ./requests/
  curlparse validate ./requests/ --body-schema user.schema.json`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
			return withExitCode(ExitUsageError, err)
		}
		return nil
	},
	RunE: validateCommand,
}

func init() {
	validateCmd.Flags().StringVar(&bodySchemaFlag, "body-schema", "", "JSON Schema file that request bodies must satisfy")
}

func validateCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	schemaPath := bodySchemaFlag
	if schemaPath == "" {
		schemaPath = cfg.BodySchema
	}
	var bodySchema *schema.Schema
	if schemaPath != "" {
		bodySchema, err = schema.Load(schemaPath)
		if err != nil {
			return withExitCode(ExitConfigError, err)
		}
	}

	files, err := collectFiles(args)
	if err != nil {
		return withExitCode(ExitFailure, err)
	}

	if len(files) == 0 {
		return withExitCode(ExitFailure, errors.New("no .curl, .sh or .txt files found"))
	}

	hasErrors := false
	for _, file := range files {
		if err := validateFile(file, bodySchema); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error in %s: %v\n", file, err)
			hasErrors = true
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s\n", file)
		}
	}

	if hasErrors {
		return withExitCode(ExitParseError, errors.New("validation failed"))
	}

	return nil
}

func validateFile(file string, bodySchema *schema.Schema) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read: %w", err)
	}

	req, err := curl.Parse(string(data))
	if err != nil {
		return err
	}

	if bodySchema != nil && req.HasBody() {
		return bodySchema.ValidateBody(req.Body)
	}
	return nil
}

func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if info.IsDir() {
			err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && isCurlFile(path) {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else {
			// explicitly named files are checked whatever their extension
			files = append(files, arg)
		}
	}

	return files, nil
}

func isCurlFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".curl" || ext == ".sh" || ext == ".txt"
}
