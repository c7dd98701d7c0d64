package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/curlparse/packages/core/config"
	"github.com/abdul-hamid-achik/curlparse/packages/output"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	configFlag = ""
	formatFlag = ""
	noColorFlag = false
	verboseFlag = false
	defaultMethodFlag = ""
	watchFlag = false
	bodyPathFlag = ""
	bodySchemaFlag = ""
	ruleFlag = "command"
	forceInit = false
}

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	resetFlags()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), code
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const postCommand = `curl -X post https://api.example.com/users -H 'Content-Type: application/json' -d '{"user":{"name":"ada"}}'`

func TestParse_Text(t *testing.T) {
	path := writeFile(t, t.TempDir(), "req.curl", postCommand+"\n")

	stdout, stderr, code := execute(t, "", "parse", path)

	assert.Equal(t, ExitSuccess, code)
	assert.Empty(t, stderr)
	want := "method: POST\n" +
		"url: https://api.example.com/users\n" +
		"headers:\n" +
		"  Content-Type: application/json\n" +
		"body:\n" +
		`{"user":{"name":"ada"}}` + "\n\n"
	assert.Equal(t, want, stdout)
}

func TestParse_Stdin(t *testing.T) {
	stdout, _, code := execute(t, "curl https://example.com", "parse", "-")

	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "method: \nurl: https://example.com\nheaders:\nbody:\n\n\n", stdout)
}

func TestParse_DefaultMethod(t *testing.T) {
	stdout, _, code := execute(t, "curl https://example.com", "parse", "-", "--default-method", "get")

	assert.Equal(t, ExitSuccess, code)
	assert.True(t, strings.HasPrefix(stdout, "method: GET\n"))
}

func TestParse_JSONFormat(t *testing.T) {
	stdout, _, code := execute(t, postCommand, "parse", "-", "--format", "json")

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, `"method": "POST"`)
	assert.Contains(t, stdout, `"bodyJson"`)
}

func TestParse_ReadFailure(t *testing.T) {
	stdout, stderr, code := execute(t, "", "parse", filepath.Join(t.TempDir(), "missing.curl"))

	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, "Failed to read: "))
}

func TestParse_InvalidUTF8(t *testing.T) {
	_, stderr, code := execute(t, "curl \xff\xfe", "parse", "-")

	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "not valid UTF-8")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		stderr string
	}{
		{"missing url", "curl -X POST", "missing URL in curl command\n"},
		{"missing value", "curl -X", "missing value for flag -X/--request\n"},
		{"missing header value", "curl https://x -H", "missing value for flag -H/--header\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := execute(t, tt.input, "parse", "-")

			assert.Equal(t, ExitParseError, code)
			assert.Empty(t, stdout)
			assert.Equal(t, tt.stderr, stderr)
		})
	}
}

func TestParse_BodyPath(t *testing.T) {
	stdout, _, code := execute(t, postCommand, "parse", "-", "--body-path", "user.name")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "ada\n", stdout)

	_, stderr, code := execute(t, postCommand, "parse", "-", "--body-path", "user.age")
	assert.Equal(t, ExitParseError, code)
	assert.Contains(t, stderr, `body path "user.age" matched nothing`)

	_, stderr, code = execute(t, "curl https://x -d a=1", "parse", "-", "--body-path", "a")
	assert.Equal(t, ExitParseError, code)
	assert.Contains(t, stderr, "body is not valid JSON")
}

func TestParse_WatchStdinRejected(t *testing.T) {
	_, stderr, code := execute(t, "curl https://x", "parse", "-", "--watch")

	assert.Equal(t, ExitUsageError, code)
	assert.Contains(t, stderr, "--watch needs a file")
}

func TestParse_Usage(t *testing.T) {
	_, stderr, code := execute(t, "", "parse")
	assert.Equal(t, ExitUsageError, code)
	assert.Contains(t, stderr, "Error: ")

	_, _, code = execute(t, "", "parse", "-", "--no-such-flag")
	assert.Equal(t, ExitUsageError, code)

	_, stderr, code = execute(t, "curl https://x", "parse", "-", "--format", "xml")
	assert.Equal(t, ExitUsageError, code)
	assert.Contains(t, stderr, `unknown format "xml"`)
}

func TestParse_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "cfg.yaml", "format: yaml\ndefaultMethod: get\n")

	stdout, stderr, code := execute(t, "curl https://x", "parse", "-", "--config", cfgPath, "-v")

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "method: GET\n")
	assert.Contains(t, stdout, "url: https://x\n")
	assert.Contains(t, stderr, "Using config: "+cfgPath)

	// flags win over the file
	stdout, _, code = execute(t, "curl https://x", "parse", "-", "--config", cfgPath, "-f", "text")
	assert.Equal(t, ExitSuccess, code)
	assert.True(t, strings.HasPrefix(stdout, "method: GET\nurl: https://x\nheaders:\n"))
}

func TestParse_BadConfig(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "cfg.yaml", "format: [\n")

	_, stderr, code := execute(t, "curl https://x", "parse", "-", "--config", cfgPath)

	assert.Equal(t, ExitConfigError, code)
	assert.Contains(t, stderr, "failed to load config")
}

func TestCredits(t *testing.T) {
	stdout, _, code := execute(t, "", "credits")

	assert.Equal(t, ExitSuccess, code)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "curlparse version: "+version, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Author: "))
	assert.True(t, strings.HasPrefix(lines[2], "Description: "))
}

func TestVersion(t *testing.T) {
	stdout, _, code := execute(t, "", "version")

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "curlparse version ")
	assert.Contains(t, stdout, "Built: ")
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			stdout, _, code := execute(t, "", "completion", shell)

			assert.Equal(t, ExitSuccess, code)
			assert.Contains(t, stdout, "curlparse")
		})
	}

	_, _, code := execute(t, "", "completion", "tcsh")
	assert.Equal(t, ExitUsageError, code)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.curl", "curl https://example.com")
	bad := writeFile(t, dir, "bad.sh", "curl -X POST")
	writeFile(t, dir, "notes.md", "curl -X")

	stdout, stderr, code := execute(t, "", "validate", dir)

	assert.Equal(t, ExitParseError, code)
	assert.Contains(t, stdout, "Valid: "+good)
	assert.Contains(t, stderr, "Error in "+bad+": missing URL in curl command")
	assert.NotContains(t, stdout+stderr, "notes.md")

	stdout, _, code = execute(t, "", "validate", good)
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "Valid: "+good+"\n", stdout)
}

func TestValidate_NoFiles(t *testing.T) {
	_, stderr, code := execute(t, "", "validate", t.TempDir())

	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "no .curl, .sh or .txt files found")
}

func TestValidate_BodySchema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "user.json", `{"type":"object","required":["name"]}`)
	reqDir := filepath.Join(dir, "requests")
	require.NoError(t, os.Mkdir(reqDir, 0755))
	ok := writeFile(t, reqDir, "ok.curl", `curl https://x -d '{"name":"ada"}'`)
	noBody := writeFile(t, reqDir, "get.curl", `curl https://x`)
	missing := writeFile(t, reqDir, "missing.curl", `curl https://x -d '{"age":3}'`)
	form := writeFile(t, reqDir, "form.curl", `curl https://x -d name=ada`)

	stdout, stderr, code := execute(t, "", "validate", reqDir, "--body-schema", schemaPath)

	assert.Equal(t, ExitParseError, code)
	assert.Contains(t, stdout, "Valid: "+ok)
	assert.Contains(t, stdout, "Valid: "+noBody)
	assert.Contains(t, stderr, "Error in "+missing+": schema validation failed")
	assert.Contains(t, stderr, "Error in "+form+": body is not valid JSON")

	_, _, code = execute(t, "", "validate", reqDir, "--body-schema", filepath.Join(dir, "nope.json"))
	assert.Equal(t, ExitConfigError, code)
}

func TestTree(t *testing.T) {
	stdout, _, code := execute(t, "curl -X POST https://x", "tree", "-")

	assert.Equal(t, ExitSuccess, code)
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	assert.Equal(t, `command 1:1 "curl -X POST https://x"`, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  method-flag 1:6 "))
}

func TestTree_Rule(t *testing.T) {
	stdout, _, code := execute(t, "-H 'Accept: */*'", "tree", "-", "--rule", "header-flag")
	assert.Equal(t, ExitSuccess, code)
	assert.True(t, strings.HasPrefix(stdout, "header-flag 1:1 "))

	_, stderr, code := execute(t, "-X POST", "tree", "-", "--rule", "header-flag")
	assert.Equal(t, ExitParseError, code)
	assert.Contains(t, stderr, "expected header-flag")

	_, stderr, code = execute(t, "x", "tree", "-", "--rule", "flag")
	assert.Equal(t, ExitUsageError, code)
	assert.Contains(t, stderr, `unknown rule "flag"`)
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	prevDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prevDir) })

	stdout, _, code := execute(t, "", "init")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "Created: ")

	cfg, path, err := config.FindAndLoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".curlparse.yaml"), path)
	assert.True(t, cfg.IsDefault())

	_, stderr, code := execute(t, "", "init")
	assert.Equal(t, ExitConfigError, code)
	assert.Contains(t, stderr, "already exists")

	_, _, code = execute(t, "", "init", "--force")
	assert.Equal(t, ExitSuccess, code)
}

// lockedBuffer is written by the watch loop while the test reads it.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchFile(t *testing.T) {
	resetFlags()
	path := writeFile(t, t.TempDir(), "req.curl", "curl https://first.example.com")

	var out, errOut lockedBuffer
	c := &cobra.Command{}
	c.SetOut(&out)
	c.SetErr(&errOut)
	f := output.NewTextFormatter(output.WithWriter(&out), output.WithErrorWriter(&errOut))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, c, f, path, true)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(errOut.String(), "Watching ")
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("curl https://second.example.com"), 0644))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "url: https://second.example.com")
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("curl -X"), 0644))
	require.Eventually(t, func() bool {
		return strings.Contains(errOut.String(), "missing value for flag -X/--request")
	}, 5*time.Second, 20*time.Millisecond)
	assert.Contains(t, errOut.String(), "File changed: "+path)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
