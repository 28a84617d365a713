package output

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/cursorrules/pkg/commands"
	"github.com/arthur-debert/cursorrules/pkg/config"
	"github.com/arthur-debert/cursorrules/pkg/installer"
	"github.com/arthur-debert/cursorrules/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlain(t *testing.T) (*Renderer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, false)
	require.NoError(t, err)
	return r, &buf
}

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Default()
	require.NoError(t, err)
	return reg
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, ColorEnabled(&bytes.Buffer{}, false), "non-file writers are never coloured")
	assert.False(t, ColorEnabled(&bytes.Buffer{}, true))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(&bytes.Buffer{}, false))
}

func TestRenderInit(t *testing.T) {
	reg := testRegistry(t)
	minimal, _ := reg.Resolve(registry.KeyMinimal)
	r, buf := newPlain(t)

	r.RenderInit(&commands.InitResult{
		Bundle:    minimal,
		Selection: commands.Selection{By: commands.SelectedByFlag},
		TargetDir: "/p/.cursor/rules",
		Install: &installer.Result{
			Copied:    2,
			Skipped:   1,
			Installed: []string{"pr-quality.mdc", "a11y-standards.mdc"},
			Present:   []string{"web-standards.mdc"},
		},
	}, reg)

	out := buf.String()
	assert.Contains(t, out, "Installing Minimal bundle (3 rules) into /p/.cursor/rules")
	assert.Contains(t, out, "+ pr-quality.mdc")
	assert.Contains(t, out, "WCAG 2.2 AA accessibility requirements")
	assert.Contains(t, out, "= web-standards.mdc")
	assert.Contains(t, out, "Installed 2 new rules, 1 already present.")
	assert.NotContains(t, out, "Warning")
	assert.NotContains(t, out, "\x1b[", "plain output must not contain ANSI escapes")
}

func TestRenderInit_FallbackAndMissing(t *testing.T) {
	reg := testRegistry(t)
	complete, _ := reg.Resolve(registry.KeyComplete)
	r, buf := newPlain(t)

	r.RenderInit(&commands.InitResult{
		Bundle:    complete,
		Selection: commands.Selection{By: commands.SelectedByFlag, Requested: "huge", FellBack: true},
		TargetDir: "/p/.cursor/rules",
		Install: &installer.Result{
			Copied:    1,
			Installed: []string{"web-standards.mdc"},
			Missing:   []string{"seo-standards.mdc"},
		},
	}, reg)

	out := buf.String()
	assert.Contains(t, out, `Warning: unknown bundle "huge", installing the complete bundle instead`)
	assert.Contains(t, out, "! seo-standards.mdc")
	assert.Contains(t, out, "Installed 1 new rule, 0 already present, 1 missing from package.")
}

func TestRenderStatus(t *testing.T) {
	t.Run("no_directory", func(t *testing.T) {
		r, buf := newPlain(t)
		r.RenderStatus(&commands.StatusResult{TargetDir: "/p/.cursor/rules"})
		assert.Contains(t, buf.String(), "Warning: no rules directory at /p/.cursor/rules")
	})

	t.Run("partial", func(t *testing.T) {
		r, buf := newPlain(t)
		r.RenderStatus(&commands.StatusResult{
			TargetDir: "/p/.cursor/rules",
			DirExists: true,
			Bundle:    registry.Bundle{Key: registry.KeyComplete},
			Rules: []commands.RuleStatus{
				{Filename: "a.mdc", Description: "A", Installed: true},
				{Filename: "bb.mdc", Description: "B"},
			},
			Installed: 1,
			Missing:   1,
		})

		out := buf.String()
		assert.Contains(t, out, "Rules in /p/.cursor/rules (complete bundle)")
		assert.Contains(t, out, "✓ a.mdc ")
		assert.Contains(t, out, "✗ bb.mdc")
		assert.Contains(t, out, "1 of 2 rules installed, 1 missing")
	})

	t.Run("all_installed", func(t *testing.T) {
		r, buf := newPlain(t)
		r.RenderStatus(&commands.StatusResult{
			DirExists: true,
			Rules:     []commands.RuleStatus{{Filename: "a.mdc", Installed: true}},
			Installed: 1,
		})
		assert.Contains(t, buf.String(), "1 of 1 rules installed\n")
	})
}

func TestRenderList_Plain(t *testing.T) {
	reg := testRegistry(t)
	r, buf := newPlain(t)

	require.NoError(t, r.RenderList(commands.List(commands.ListOptions{Registry: reg})))

	out := buf.String()
	assert.Contains(t, out, "Available rules (15)")
	assert.Contains(t, out, "\nCore\n")
	assert.Contains(t, out, "\nBackend & Security\n")
	assert.Contains(t, out, "1) minimal     3 rules")
	assert.Contains(t, out, "3) complete   15 rules")
}

func TestMarkdownList(t *testing.T) {
	reg := testRegistry(t)
	md := MarkdownList(commands.List(commands.ListOptions{Registry: reg}))

	assert.Contains(t, md, "# Available rules (15)")
	assert.Contains(t, md, "## Frontend")
	assert.Contains(t, md, "- **react-patterns.mdc**: React component, hook and state management patterns")
	assert.Contains(t, md, "| 2 | standard | 8 |")
}

func TestRenderConfig(t *testing.T) {
	r, buf := newPlain(t)
	require.NoError(t, r.RenderConfig(&config.Config{TargetDir: ".cursor/rules", DefaultBundle: "complete"}))
	assert.Contains(t, buf.String(), "target_dir")
}

func TestError(t *testing.T) {
	r, buf := newPlain(t)
	r.Error(stderrors.New("disk full"))
	assert.Equal(t, "Error: disk full\n", buf.String())
}
