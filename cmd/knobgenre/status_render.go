package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"knobgenre/internal/deps"
	"knobgenre/internal/preflight"
	"knobgenre/internal/report"
	"knobgenre/internal/workflow"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 22
	statusIndent     = "  "
)

var statusKindStyles = map[statusKind]struct {
	label string
	color string
}{
	statusInfo:  {"INFO", ansiBlue},
	statusOK:    {"OK", ansiGreen},
	statusWarn:  {"WARN", ansiYellow},
	statusError: {"ERROR", ansiRed},
}

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	style := statusKindStyles[kind]
	statusText := fmt.Sprintf("[%s]", style.label)
	if message != "" {
		statusText += " " + message
	}
	line := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize && style.color != "" {
		return style.color + line + ansiReset
	}
	return line
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	underline := strings.Repeat("-", len(line))
	if colorize {
		return []string{ansiBlue + line + ansiReset, ansiBlue + underline + ansiReset}
	}
	return []string{line, underline}
}

func renderDependencySummary(statuses []deps.Status, colorize bool) string {
	missing := deps.MissingRequired(statuses)
	if len(missing) == 0 {
		return renderStatusLine("Summary", statusOK, "all required tools found", colorize)
	}
	names := make([]string, 0, len(missing))
	for _, s := range missing {
		names = append(names, s.Name)
	}
	return renderStatusLine("Summary", statusError, "missing "+strings.Join(names, ", "), colorize)
}

// renderDependencyLine reports a missing optional tool as a warning.
func renderDependencyLine(status deps.Status, colorize bool) string {
	if status.Available {
		return renderStatusLine(status.Name, statusOK, status.Path, colorize)
	}
	kind := statusError
	if status.Optional {
		kind = statusWarn
	}
	message := status.Detail
	if status.Description != "" {
		message = fmt.Sprintf("%s; %s", status.Detail, status.Description)
	}
	return renderStatusLine(status.Name, kind, message, colorize)
}

func renderPreflightLine(result preflight.Result, colorize bool) string {
	if result.Passed {
		return renderStatusLine(result.Name, statusOK, result.Detail, colorize)
	}
	return renderStatusLine(result.Name, statusError, result.Detail, colorize)
}

// renderPassLine reports an unready pass as a warning; the run skips it.
func renderPassLine(ps workflow.PassStatus, colorize bool) string {
	label := passLabel(ps.Pass)
	pending := fmt.Sprintf("%s pending", report.FormatCount(ps.Pending))
	if ps.Health.Ready {
		return renderStatusLine(label, statusOK, pending, colorize)
	}
	return renderStatusLine(label, statusWarn, fmt.Sprintf("%s; %s", ps.Health.Detail, pending), colorize)
}

func writeLines(out io.Writer, lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
