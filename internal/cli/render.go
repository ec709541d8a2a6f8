package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/anmicius0/assembly-validator/internal/config"
	"github.com/anmicius0/assembly-validator/internal/versioninfo"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var (
	accent  = lipgloss.Color("#D97706")
	fg      = lipgloss.Color("#E8E6E3")
	dim     = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)
	dimStyle  = lipgloss.NewStyle().Foreground(dim)
	keyStyle  = lipgloss.NewStyle().Foreground(dim).Width(18)
	passStyle = lipgloss.NewStyle().Foreground(success)
	failStyle = lipgloss.NewStyle().Foreground(danger)
	warnStyle = lipgloss.NewStyle().Foreground(warning)
)

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	}
	return fmt.Errorf("unsupported output format %q (want text, json or yaml)", format)
}

// writeResults prints results in the requested format.
func writeResults(w io.Writer, format, path string, results []config.ValidationResult) error {
	switch format {
	case outputJSON:
		return encodeJSON(w, results)
	case outputYAML:
		return encodeYAML(w, results)
	}
	_, err := fmt.Fprint(w, RenderReport(path, results))
	return err
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// RenderReport renders validation results as a styled report.
func RenderReport(path string, results []config.ValidationResult) string {
	var b strings.Builder

	counts := make(map[config.ValidationStatus]int)
	for _, r := range results {
		counts[r.Status]++
	}

	header := titleStyle.Render(path) + "\n" + fmt.Sprintf("%s  %s  %s",
		passStyle.Render(fmt.Sprintf("%d match", counts[config.StatusMatch])),
		warnStyle.Render(fmt.Sprintf("%d mismatch", counts[config.StatusMismatch])),
		failStyle.Render(fmt.Sprintf("%d error", counts[config.StatusError])),
	)
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n\n")

	for _, r := range results {
		b.WriteString(renderResultLine(r))
		b.WriteString("\n")
	}
	return b.String()
}

func renderResultLine(r config.ValidationResult) string {
	var marker string
	switch r.Status {
	case config.StatusMatch:
		marker = passStyle.Render("✓")
	case config.StatusMismatch:
		marker = warnStyle.Render("≠")
	default:
		marker = failStyle.Render("✗")
	}

	if r.AssemblyName == nil {
		return fmt.Sprintf("  %s %s", marker, r.Message)
	}

	line := fmt.Sprintf("  %s %s  expected %s", marker, *r.AssemblyName, config.Value(r.ExpectedVersion))
	if r.ActualVersion != nil {
		line += fmt.Sprintf(", found %s", *r.ActualVersion)
	}
	return line + "  " + dimStyle.Render(r.Message)
}

// RenderInfo renders a decoded version resource.
func RenderInfo(path string, info *versioninfo.Info) string {
	var b strings.Builder
	b.WriteString(boxStyle.Render(titleStyle.Render(path)))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %s%s\n", keyStyle.Render("Fixed file"), info.FixedFileVersion)
	fmt.Fprintf(&b, "  %s%s\n", keyStyle.Render("Fixed product"), info.FixedProductVersion)

	keys := make([]string, 0, len(info.Strings))
	for k := range info.Strings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s%s\n", keyStyle.Render(k), info.Strings[k])
	}
	return b.String()
}
