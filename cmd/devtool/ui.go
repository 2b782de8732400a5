package main

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"unicode"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// console is where every command reports progress. NO_COLOR drops the escapes
// so CI logs stay readable.
var console = newConsole(os.Stdout, os.Getenv("NO_COLOR") == "")

type consoleWriter struct {
	w     io.Writer
	color bool
}

func newConsole(w io.Writer, color bool) *consoleWriter {
	return &consoleWriter{w: w, color: color}
}

func (c *consoleWriter) line(color, symbol, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if !c.color {
		fmt.Fprintf(c.w, "%s %s\n", symbol, msg)
		return
	}
	fmt.Fprintf(c.w, "%s%s %s%s\n", color, symbol, msg, colorReset)
}

func PrintInfo(format string, a ...interface{})    { console.line(colorBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...interface{}) { console.line(colorGreen, "✓", format, a...) }
func PrintWarning(format string, a ...interface{}) { console.line(colorYellow, "⚠", format, a...) }
func PrintError(format string, a ...interface{})   { console.line(colorRed, "✗", format, a...) }

func PrintHeader(title string) {
	fmt.Fprintln(console.w)
	console.line(colorYellow, "===", "%s ===", title)
}

// PrintStep numbers the stages of multi-step commands such as setup
func PrintStep(step, total int, format string, a ...interface{}) {
	PrintInfo("Step %d/%d: %s", step, total, fmt.Sprintf(format, a...))
}

// Argument checks. Database names end up in CREATE/DROP DATABASE, URLs in
// HTTP requests and migration names in file names.

var migrationNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// maxIdentifierLen is postgres' NAMEDATALEN - 1; longer names are silently truncated
const maxIdentifierLen = 63

func checkDBName(name string) error {
	if name == "" || len(name) > maxIdentifierLen {
		return fmt.Errorf("database name must be 1-%d bytes, got %d", maxIdentifierLen, len(name))
	}
	if strings.ContainsFunc(name, unicode.IsControl) {
		return fmt.Errorf("database name %q contains control characters", name)
	}
	return nil
}

// checkBaseURL accepts an http(s) API root and returns it without a trailing slash
func checkBaseURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid API URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("API URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("API URL %q has no host", raw)
	}
	if u.User != nil || u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("API URL %q must not carry credentials, a query or a fragment", u.Redacted())
	}
	return strings.TrimRight(u.String(), "/"), nil
}

func checkMigrationName(name string) error {
	if !migrationNamePattern.MatchString(name) {
		return fmt.Errorf("migration name %q must be lower snake case, e.g. add_tree_index", name)
	}
	return nil
}

// runGoTool runs a tool pinned in tools.go, streaming its output
func runGoTool(pkg string, args ...string) error {
	// #nosec G204 - pkg is a constant and args are checked by the caller
	cmd := exec.Command("go", append([]string{"run", pkg}, args...)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
