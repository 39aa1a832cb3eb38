package handlers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	renderColorGreen = lipgloss.Color("#22c55e")
	renderColorRed   = lipgloss.Color("#ef4444")
	renderColorBlue  = lipgloss.Color("#3b82f6")
	renderColorDim   = lipgloss.Color("#6b7280")
	renderColorWhite = lipgloss.Color("#f9fafb")
)

var (
	renderTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(renderColorWhite)

	renderSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(renderColorBlue)

	renderDimStyle = lipgloss.NewStyle().
			Foreground(renderColorDim)

	renderWarnStyle = lipgloss.NewStyle().
			Foreground(renderColorRed)

	renderOKStyle = lipgloss.NewStyle().
			Foreground(renderColorGreen)
)

// renderConfigSummary produces a lipgloss-styled summary of the resolved
// configuration for terminal output.
func renderConfigSummary(cfg renderedConfig) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(renderTitleStyle.Render(fmt.Sprintf("  nodelet config: %s", cfg.NodeName)))
	b.WriteString("\n")
	b.WriteString(renderDimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n\n")

	b.WriteString(renderSectionStyle.Render("  Node"))
	b.WriteString("\n")
	b.WriteString(renderDimStyle.Render("  " + strings.Repeat("─", 35)))
	b.WriteString("\n")
	renderRow(&b, "Hostname", cfg.Hostname)
	renderRow(&b, "Node name", cfg.NodeName)
	renderRow(&b, "Node IP", cfg.NodeIP)
	renderRow(&b, "Max pods", fmt.Sprintf("%d", cfg.MaxPods))
	renderRow(&b, "Data dir", cfg.DataDir)
	renderRow(&b, "Bootstrap file", cfg.BootstrapFile)

	b.WriteString("\n")
	b.WriteString(renderSectionStyle.Render("  Server"))
	b.WriteString("\n")
	b.WriteString(renderDimStyle.Render("  " + strings.Repeat("─", 35)))
	b.WriteString("\n")
	renderRow(&b, "Listener", fmt.Sprintf("%s:%d", cfg.ListenerAddress, cfg.ListenerPort))
	renderRow(&b, "TLS certificate", cfg.TLSCertificateFile)
	renderRow(&b, "TLS private key", cfg.TLSPrivateKeyFile)

	if len(cfg.NodeLabels) > 0 {
		b.WriteString("\n")
		b.WriteString(renderSectionStyle.Render("  Labels"))
		b.WriteString("\n")
		b.WriteString(renderDimStyle.Render("  " + strings.Repeat("─", 35)))
		b.WriteString("\n")

		keys := make([]string, 0, len(cfg.NodeLabels))
		for k := range cfg.NodeLabels {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			renderRow(&b, k, cfg.NodeLabels[k])
		}
	}

	return b.String()
}

func renderRow(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "    %-18s %s\n", name+":", value)
}
