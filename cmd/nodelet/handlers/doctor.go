package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/nodelet/nodelet/internal/config"
)

// Finding is a single advisory diagnostic about the resolved configuration.
type Finding struct {
	Check   string `json:"check"`
	Target  string `json:"target"`
	Message string `json:"message"`
}

// statPath reports whether a path exists - can be replaced in tests.
var statPath = func(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Doctor resolves the configuration exactly as `run` would and runs advisory
// checks on the result. Findings never fail the command; only a resolution
// error does.
func Doctor(ctx context.Context, configPath string, opts config.CLIOptions, jsonOutput bool) error {
	cfg, err := resolveConfig(ctx, configPath, opts)
	if err != nil {
		return err
	}

	findings := diagnose(cfg)

	if jsonOutput {
		return printFindingsJSON(cfg, findings)
	}

	printFindingsFormatted(cfg, findings)
	return nil
}

// diagnose checks the resolved configuration against Kubernetes naming rules
// and verifies that the referenced paths exist.
//
// Resolution itself stays lenient: the node name sanitizer only lowercases
// and malformed label tokens are silently dropped, so names and labels that
// the API server would reject surface here instead.
func diagnose(cfg *config.Config) []Finding {
	var findings []Finding

	for _, msg := range validation.IsDNS1123Subdomain(cfg.NodeName) {
		findings = append(findings, Finding{
			Check:   "node-name",
			Target:  cfg.NodeName,
			Message: msg,
		})
	}

	keys := make([]string, 0, len(cfg.NodeLabels))
	for k := range cfg.NodeLabels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, msg := range validation.IsQualifiedName(k) {
			findings = append(findings, Finding{
				Check:   "label-key",
				Target:  k,
				Message: msg,
			})
		}
		for _, msg := range validation.IsValidLabelValue(cfg.NodeLabels[k]) {
			findings = append(findings, Finding{
				Check:   "label-value",
				Target:  fmt.Sprintf("%s=%s", k, cfg.NodeLabels[k]),
				Message: msg,
			})
		}
	}

	paths := []struct {
		check string
		path  string
	}{
		{"data-dir", cfg.DataDir},
		{"bootstrap-file", cfg.BootstrapFile},
		{"tls-certificate", cfg.Server.TLSCertFile},
		{"tls-private-key", cfg.Server.TLSKeyFile},
	}
	for _, p := range paths {
		if !statPath(p.path) {
			findings = append(findings, Finding{
				Check:   p.check,
				Target:  p.path,
				Message: "path does not exist",
			})
		}
	}

	return findings
}

type doctorReport struct {
	NodeName string    `json:"nodeName"`
	NodeIP   string    `json:"nodeIP"`
	Healthy  bool      `json:"healthy"`
	Findings []Finding `json:"findings"`
}

func printFindingsJSON(cfg *config.Config, findings []Finding) error {
	report := doctorReport{
		NodeName: cfg.NodeName,
		NodeIP:   cfg.NodeIP.String(),
		Healthy:  len(findings) == 0,
		Findings: findings,
	}
	if report.Findings == nil {
		report.Findings = []Finding{}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printFindingsFormatted(cfg *config.Config, findings []Finding) {
	fmt.Println()
	title := fmt.Sprintf("  nodelet doctor: %s", cfg.NodeName)
	fmt.Println(renderTitleStyle.Render(title))
	fmt.Println(renderDimStyle.Render("  " + strings.Repeat("═", 30)))
	fmt.Println()

	if len(findings) == 0 {
		fmt.Println(renderOKStyle.Render("  ✓ no findings"))
		fmt.Println()
		return
	}

	for _, f := range findings {
		fmt.Printf("  %s  %-16s %s\n",
			renderWarnStyle.Render("!"),
			f.Check,
			renderDimStyle.Render(f.Target))
		fmt.Printf("      %s\n", f.Message)
	}
	fmt.Println()
	fmt.Println(renderDimStyle.Render(fmt.Sprintf("  %d finding(s). These are advisory and do not block 'nodelet run'.", len(findings))))
	fmt.Println()
}
