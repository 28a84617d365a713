package commands

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/cursorrules/pkg/config"
	"github.com/arthur-debert/cursorrules/pkg/errors"
	"github.com/arthur-debert/cursorrules/pkg/filesystem"
	"github.com/arthur-debert/cursorrules/pkg/paths"
	"github.com/arthur-debert/cursorrules/pkg/prompt"
	"github.com/arthur-debert/cursorrules/pkg/registry"
	"github.com/arthur-debert/cursorrules/pkg/rules"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectDir = "/project"

type testEnv struct {
	mem afero.Fs
	fs  filesystem.FS
	cfg *config.Config
	reg *registry.Registry
	src paths.Source
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	reg, err := registry.Default()
	require.NoError(t, err)
	mem := afero.NewMemMapFs()
	return &testEnv{
		mem: mem,
		fs:  filesystem.NewAferoFS(mem),
		cfg: &config.Config{
			TargetDir:     ".cursor/rules",
			DefaultBundle: registry.KeyComplete,
			StatusBundle:  registry.KeyComplete,
		},
		reg: reg,
		src: paths.Source{FS: rules.FS(), Dir: rules.Dir, Origin: paths.OriginEmbedded},
	}
}

func (e *testEnv) targetDir() string {
	return filepath.Join(projectDir, ".cursor", "rules")
}

func (e *testEnv) opts() DispatchOptions {
	return DispatchOptions{
		ProjectDir: projectDir,
		Config:     e.cfg,
		Registry:   e.reg,
		FileSystem: e.fs,
		Source:     e.src,
	}
}

type fakeChooser struct {
	answer string
	called bool
}

func (f *fakeChooser) Choose(reg *registry.Registry, def registry.Bundle) (prompt.Choice, error) {
	f.called = true
	return prompt.NewConsole(strings.NewReader(f.answer+"\n"), &strings.Builder{}).Choose(reg, def)
}

func TestParseCommandType(t *testing.T) {
	for _, c := range AllCommands() {
		got, err := ParseCommandType(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCommandType("deploy")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownCommand))
	assert.Equal(t, "unknown", CommandType(42).String())
}

func TestDispatch_CoversAllCommands(t *testing.T) {
	env := newTestEnv(t)
	for _, c := range AllCommands() {
		opts := env.opts()
		opts.AssumeYes = true
		result, err := Dispatch(c, opts)
		require.NoError(t, err, c.String())
		assert.Equal(t, c, result.Command)
	}

	_, err := Dispatch(CommandType(-1), env.opts())
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownCommand))
}

func TestInit_BundleFlag(t *testing.T) {
	env := newTestEnv(t)
	opts := env.opts()
	opts.BundleKey = registry.KeyMinimal

	result, err := Dispatch(CommandInit, opts)
	require.NoError(t, err)

	res := result.Init
	assert.Equal(t, registry.KeyMinimal, res.Bundle.Key)
	assert.Equal(t, SelectedByFlag, res.Selection.By)
	assert.False(t, res.Selection.FellBack)
	assert.Equal(t, 3, res.Install.Copied)
	assert.Equal(t, 0, res.Install.Skipped)
	assert.Equal(t, env.targetDir(), res.TargetDir)
	assert.Equal(t, paths.OriginEmbedded, res.SourceOrigin)

	entries, err := afero.ReadDir(env.mem, env.targetDir())
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestInit_UnknownBundleFallsBackToDefault(t *testing.T) {
	env := newTestEnv(t)
	opts := env.opts()
	opts.BundleKey = "everything"

	result, err := Dispatch(CommandInit, opts)
	require.NoError(t, err)

	assert.Equal(t, registry.KeyComplete, result.Init.Bundle.Key)
	assert.True(t, result.Init.Selection.FellBack)
	assert.Equal(t, "everything", result.Init.Selection.Requested)
	assert.Equal(t, 15, result.Init.Install.Copied)
}

func TestInit_YesSkipsPrompt(t *testing.T) {
	env := newTestEnv(t)
	chooser := &fakeChooser{answer: "1"}
	opts := env.opts()
	opts.AssumeYes = true
	opts.Interactive = true
	opts.Chooser = chooser

	result, err := Dispatch(CommandInit, opts)
	require.NoError(t, err)

	assert.False(t, chooser.called)
	assert.Equal(t, SelectedByDefault, result.Init.Selection.By)
	assert.Equal(t, registry.KeyComplete, result.Init.Bundle.Key)
}

func TestInit_NonInteractiveUsesDefault(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.DefaultBundle = registry.KeyStandard
	chooser := &fakeChooser{answer: "1"}
	opts := env.opts()
	opts.Chooser = chooser

	result, err := Dispatch(CommandInit, opts)
	require.NoError(t, err)

	assert.False(t, chooser.called)
	assert.Equal(t, registry.KeyStandard, result.Init.Bundle.Key)
	assert.Equal(t, 8, result.Init.Install.Copied)
}

func TestInit_Prompt(t *testing.T) {
	tests := []struct {
		answer       string
		wantKey      string
		wantFellBack bool
	}{
		{"1", registry.KeyMinimal, false},
		{"standard", registry.KeyStandard, false},
		{"", registry.KeyComplete, false},
		{"7", registry.KeyComplete, true},
	}

	for _, tt := range tests {
		t.Run("answer_"+tt.answer, func(t *testing.T) {
			env := newTestEnv(t)
			chooser := &fakeChooser{answer: tt.answer}
			opts := env.opts()
			opts.Interactive = true
			opts.Chooser = chooser

			result, err := Dispatch(CommandInit, opts)
			require.NoError(t, err)

			assert.True(t, chooser.called)
			assert.Equal(t, SelectedByPrompt, result.Init.Selection.By)
			assert.Equal(t, tt.wantKey, result.Init.Bundle.Key)
			assert.Equal(t, tt.wantFellBack, result.Init.Selection.FellBack)
		})
	}
}

func TestInit_UndefinedDefaultBundle(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.DefaultBundle = "huge"

	_, err := Dispatch(CommandInit, env.opts())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBundleNotFound))
}

func TestInit_SecondRunSkipsEverything(t *testing.T) {
	env := newTestEnv(t)
	opts := env.opts()
	opts.AssumeYes = true

	first, err := Dispatch(CommandInit, opts)
	require.NoError(t, err)
	assert.Equal(t, 15, first.Init.Install.Copied)

	second, err := Dispatch(CommandInit, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Init.Install.Copied)
	assert.Equal(t, 15, second.Init.Install.Skipped)
}

func TestStatus_NoRulesDirectory(t *testing.T) {
	env := newTestEnv(t)

	result, err := Dispatch(CommandStatus, env.opts())
	require.NoError(t, err)

	assert.False(t, result.Status.DirExists)
	assert.Empty(t, result.Status.Rules)
	assert.Equal(t, env.targetDir(), result.Status.TargetDir)
}

func TestStatus_AfterMinimalInstall(t *testing.T) {
	env := newTestEnv(t)
	opts := env.opts()
	opts.BundleKey = registry.KeyMinimal
	_, err := Dispatch(CommandInit, opts)
	require.NoError(t, err)

	result, err := Dispatch(CommandStatus, env.opts())
	require.NoError(t, err)

	status := result.Status
	assert.True(t, status.DirExists)
	assert.Equal(t, registry.KeyComplete, status.Bundle.Key)
	assert.Len(t, status.Rules, 15)
	assert.Equal(t, 3, status.Installed)
	assert.Equal(t, 12, status.Missing)

	installed := map[string]bool{}
	for _, r := range status.Rules {
		installed[r.Filename] = r.Installed
		assert.NotEmpty(t, r.Description, r.Filename)
	}
	assert.True(t, installed["a11y-standards.mdc"])
	assert.False(t, installed["react-patterns.mdc"])
}

func TestStatus_TargetIsAFile(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.fs.MkdirAll(filepath.Join(projectDir, ".cursor"), 0755))
	require.NoError(t, env.fs.WriteFile(env.targetDir(), []byte("oops"), 0644))

	_, err := Dispatch(CommandStatus, env.opts())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestList(t *testing.T) {
	env := newTestEnv(t)

	result, err := Dispatch(CommandList, env.opts())
	require.NoError(t, err)

	list := result.List
	assert.Equal(t, 15, list.TotalRules)
	assert.Len(t, list.Bundles, 3)
	assert.Equal(t, "Core", list.Categories[0].Name)

	entries, err := afero.ReadDir(env.mem, "/")
	require.NoError(t, err)
	assert.Empty(t, entries, "list must not touch the filesystem")
}

func TestInit_BundleFlagAcceptsOrdinalAndCase(t *testing.T) {
	for input, want := range map[string]string{
		"2":        registry.KeyStandard,
		"MINIMAL":  registry.KeyMinimal,
		" 3 ":      registry.KeyComplete,
		"Standard": registry.KeyStandard,
	} {
		env := newTestEnv(t)
		opts := env.opts()
		opts.BundleKey = input

		result, err := Dispatch(CommandInit, opts)
		require.NoError(t, err, input)
		assert.Equal(t, want, result.Init.Bundle.Key, input)
		assert.False(t, result.Init.Selection.FellBack, input)
	}
}
