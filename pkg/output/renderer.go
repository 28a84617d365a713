package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/cursorrules/pkg/commands"
	"github.com/arthur-debert/cursorrules/pkg/config"
	"github.com/arthur-debert/cursorrules/pkg/logging"
	"github.com/arthur-debert/cursorrules/pkg/output/styles"
	"github.com/arthur-debert/cursorrules/pkg/registry"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Renderer writes command results to w.
type Renderer struct {
	w      io.Writer
	color  bool
	styles styles.Registry
}

// ColorEnabled decides whether output to w should be coloured.
func ColorEnabled(w io.Writer, noColor bool) bool {
	if noColor || termenv.EnvNoColor() {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewRenderer creates a Renderer. With color false every style is a no-op.
func NewRenderer(w io.Writer, color bool) (*Renderer, error) {
	log := logging.GetLogger("output.Renderer")
	log.Debug().Bool("color", color).Str("TERM", os.Getenv("TERM")).Msg("Creating renderer")

	reg, err := styles.Load(lipgloss.NewRenderer(w))
	if err != nil {
		return nil, err
	}
	return &Renderer{w: w, color: color, styles: reg}, nil
}

func (r *Renderer) style(name, s string) string {
	if !r.color {
		return s
	}
	return r.styles.Get(name).Render(s)
}

func (r *Renderer) badge(installed bool) string {
	if installed {
		if !r.color {
			return "✓"
		}
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint("✓")
	}
	if !r.color {
		return "✗"
	}
	return pterm.NewStyle(pterm.FgRed).Sprint("✗")
}

func (r *Renderer) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.w, format, args...)
}

// Warning prints a highlighted warning line.
func (r *Renderer) Warning(msg string) {
	r.printf("%s %s\n", r.style("Warning", "Warning:"), msg)
}

// Error prints err as a highlighted error line.
func (r *Renderer) Error(err error) {
	r.printf("%s %v\n", r.style("Error", "Error:"), err)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// RenderInit prints the outcome of an install.
func (r *Renderer) RenderInit(res *commands.InitResult, reg *registry.Registry) {
	if res.Selection.FellBack {
		r.Warning(fmt.Sprintf("unknown bundle %q, installing the %s bundle instead", res.Selection.Requested, res.Bundle.Key))
	}

	r.printf("%s\n", r.style("Header", fmt.Sprintf("Installing %s bundle (%s) into %s",
		res.Bundle.Name, plural(res.Bundle.Count(), "rule"), res.TargetDir)))
	r.printf("\n")

	inst := res.Install
	if inst == nil {
		return
	}
	width := nameWidth(res.Bundle.Files())
	for _, name := range inst.Installed {
		r.printf("  %s %-*s  %s\n", r.style("Success", "+"), width, name, r.style("Muted", reg.DescribeRule(name)))
	}
	for _, name := range inst.Present {
		r.printf("  %s %-*s  %s\n", r.style("Muted", "="), width, name, r.style("Muted", "already present"))
	}
	for _, name := range inst.Missing {
		r.printf("  %s %-*s  %s\n", r.style("Warning", "!"), width, name, r.style("Warning", "missing from package"))
	}

	summary := fmt.Sprintf("Installed %s, %d already present", plural(inst.Copied, "new rule"), inst.Skipped)
	if len(inst.Missing) > 0 {
		summary += fmt.Sprintf(", %d missing from package", len(inst.Missing))
	}
	r.printf("\n%s.\n", r.style("Success", summary))
}

// RenderStatus prints which rules are installed.
func (r *Renderer) RenderStatus(res *commands.StatusResult) {
	if !res.DirExists {
		r.Warning(fmt.Sprintf("no rules directory at %s. Run `cursorrules init` to install rules.", res.TargetDir))
		return
	}

	r.printf("%s\n\n", r.style("Header", fmt.Sprintf("Rules in %s (%s bundle)", res.TargetDir, res.Bundle.Key)))

	names := make([]string, len(res.Rules))
	for i, rs := range res.Rules {
		names[i] = rs.Filename
	}
	width := nameWidth(names)
	for _, rs := range res.Rules {
		r.printf("  %s %-*s  %s\n", r.badge(rs.Installed), width, rs.Filename, r.style("Muted", rs.Description))
	}

	total := res.Installed + res.Missing
	summary := fmt.Sprintf("%d of %d rules installed", res.Installed, total)
	if res.Missing == 0 {
		r.printf("\n%s\n", r.style("Success", summary))
		return
	}
	r.printf("\n%s, %s\n", r.style("Key", summary), r.style("Warning", fmt.Sprintf("%d missing", res.Missing)))
}

// RenderList prints the catalog. Coloured output goes through glamour.
func (r *Renderer) RenderList(res *commands.ListResult) error {
	if !r.color {
		r.printf("%s", plainList(res))
		return nil
	}

	tr, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := tr.Render(MarkdownList(res))
	if err != nil {
		return fmt.Errorf("failed to render rule list: %w", err)
	}
	r.printf("%s", out)
	return nil
}

// RenderConfig prints the effective configuration as TOML.
func (r *Renderer) RenderConfig(cfg *config.Config) error {
	out, err := cfg.TOML()
	if err != nil {
		return err
	}
	r.printf("%s", out)
	return nil
}

// MarkdownList renders the catalog as a markdown document.
func MarkdownList(res *commands.ListResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Available rules (%d)\n\n", res.TotalRules)
	for _, cat := range res.Categories {
		fmt.Fprintf(&b, "## %s\n\n", cat.Name)
		for _, rule := range cat.Rules {
			fmt.Fprintf(&b, "- **%s**: %s\n", rule.Filename, rule.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString("## Bundles\n\n")
	b.WriteString("| # | Bundle | Rules | Description |\n")
	b.WriteString("|---|--------|-------|-------------|\n")
	for i, bundle := range res.Bundles {
		fmt.Fprintf(&b, "| %d | %s | %d | %s |\n", i+1, bundle.Key, bundle.Count(), bundle.Description)
	}
	return b.String()
}

func plainList(res *commands.ListResult) string {
	var names []string
	for _, cat := range res.Categories {
		for _, rule := range cat.Rules {
			names = append(names, rule.Filename)
		}
	}
	width := nameWidth(names)

	var b strings.Builder
	fmt.Fprintf(&b, "Available rules (%d)\n", res.TotalRules)
	for _, cat := range res.Categories {
		fmt.Fprintf(&b, "\n%s\n", cat.Name)
		for _, rule := range cat.Rules {
			fmt.Fprintf(&b, "  %-*s  %s\n", width, rule.Filename, rule.Description)
		}
	}
	b.WriteString("\nBundles\n")
	for i, bundle := range res.Bundles {
		fmt.Fprintf(&b, "  %d) %-10s %2d rules  %s\n", i+1, bundle.Key, bundle.Count(), bundle.Description)
	}
	return b.String()
}

func nameWidth(names []string) int {
	w := 0
	for _, n := range names {
		if len(n) > w {
			w = len(n)
		}
	}
	return w
}
