// Package style renders command results for the terminal.
package style

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/winclean/rulepack/pkg/types"
)

// Renderer formats command results as terminal output.
type Renderer struct {
	// Quiet suppresses per-file progress lines.
	Quiet bool
}

// NewRenderer creates a renderer, disabling color when stdout is not a
// terminal.
func NewRenderer(quiet bool) *Renderer {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		pterm.DisableColor()
	}
	return &Renderer{Quiet: quiet}
}

// RenderPackResult renders a pack summary.
func (r *Renderer) RenderPackResult(result *types.PackResult) string {
	var out strings.Builder

	if !r.Quiet {
		for _, path := range result.PackedFiles {
			out.WriteString(ListItemStyle.Render(fmt.Sprintf("%s %s", pterm.Info.Prefix.Text, PathStyle.Render(path))) + "\n")
		}
	}

	out.WriteString(SuccessStyle.Render("Packed "+result.OutputPath) + "\n")
	out.WriteString(fmt.Sprintf("Rules:       %d\n", result.RuleCount))
	out.WriteString(fmt.Sprintf("Categories:  %s\n", strings.Join(result.Categories, ", ")))
	out.WriteString(fmt.Sprintf("Raw size:    %d bytes\n", result.EncodedSize))
	out.WriteString(fmt.Sprintf("Packed size: %d bytes (%s)\n", result.CompressedSize, result.Compression))

	return out.String()
}

// RenderUnpackResult renders an unpack summary.
func (r *Renderer) RenderUnpackResult(result *types.UnpackResult) string {
	var out strings.Builder

	if !r.Quiet {
		for _, path := range result.WrittenFiles {
			out.WriteString(ListItemStyle.Render(fmt.Sprintf("%s %s", pterm.Info.Prefix.Text, PathStyle.Render(path))) + "\n")
		}
	}

	out.WriteString(SuccessStyle.Render("Unpacked to "+result.OutputDir) + "\n")
	out.WriteString(fmt.Sprintf("Rules: %d\n", result.RuleCount))

	return out.String()
}

// RenderInfoResult renders the package summary for the info command.
func (r *Renderer) RenderInfoResult(result *types.InfoResult) string {
	var out strings.Builder
	h := result.Header

	out.WriteString(TitleStyle.Render("Package "+result.InputPath) + "\n")
	out.WriteString(fmt.Sprintf("Version:     %d\n", h.Version))
	out.WriteString(fmt.Sprintf("Created:     %s\n", time.Unix(int64(h.CreatedAt), 0).UTC().Format(time.RFC3339)))
	out.WriteString(fmt.Sprintf("Rules:       %d\n", h.RuleCount))
	out.WriteString(fmt.Sprintf("Compression: %s\n", h.Compression))
	out.WriteString(fmt.Sprintf("Categories:  %s\n", strings.Join(h.Categories, ", ")))
	out.WriteString(fmt.Sprintf("Size:        %d bytes\n", result.FileSize))

	if len(result.Rules) == 0 {
		out.WriteString("\n" + MutedStyle.Render("No rules in package") + "\n")
		return out.String()
	}

	out.WriteString("\n" + TitleStyle.Render("Rules") + "\n")
	for _, rule := range result.Rules {
		line := fmt.Sprintf("- [%s] %s (risk: %s)", rule.ID, rule.Name, RiskStyle(rule.Risk).Render(rule.Risk))
		out.WriteString(ListItemStyle.Render(line) + "\n")
	}

	return out.String()
}

// RenderError renders a fatal error for stderr.
func (r *Renderer) RenderError(err error) string {
	return ErrorStyle.Render(fmt.Sprintf("Error: %v", err))
}
