package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keysetup/internal/application/port"
	"github.com/bnema/keysetup/internal/cli"
	"github.com/bnema/keysetup/internal/domain/entity"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		configDir = ""
		resetAll = false
		schemaOutput = ""
		genDocsOutputDir = ""
		genDocsFormat = docFormatMan
		app = nil
	})
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func reopen(t *testing.T, dir string) *cli.App {
	t.Helper()
	a, err := cli.NewApp(cli.Options{ConfigDir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestParseSwitch(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"on", true, false},
		{"OFF", false, false},
		{"yes", true, false},
		{"true", true, false},
		{"0", false, false},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSwitch(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterGroup(t *testing.T) {
	view := port.KeybindingsView{
		Groups:  []port.KeybindingGroup{{Group: "controls"}, {Group: "map"}},
		Toggles: []port.ToggleEntry{{Toggle: "always-run"}},
	}

	got, err := filterGroup(view, "map")
	require.NoError(t, err)
	require.Len(t, got.Groups, 1)
	assert.Equal(t, "map", got.Groups[0].Group)
	assert.Empty(t, got.Toggles)

	_, err = filterGroup(view, "weapons")
	assert.Error(t, err)
}

func TestToggleNames(t *testing.T) {
	assert.Equal(t, []string{"always-run", "vanilla-keyboard-mapping"}, toggleNames())
}

func TestBindCommand_PersistsAndEvicts(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runCommand(t, "--config-dir", dir, "bind", "fire", "SPACE"))

	a := reopen(t, dir)
	table := a.Controls.Table()
	assert.Equal(t, entity.KeySpace, table.Get(entity.ActionFire))
	assert.Equal(t, entity.KeyUnbound, table.Get(entity.ActionUse))
	assert.FileExists(t, filepath.Join(dir, "bindings.toml"))
}

func TestToggleCommand_WritesJoybSpeed(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runCommand(t, "--config-dir", dir, "toggle", "always-run", "on"))

	data, err := os.ReadFile(filepath.Join(dir, "bindings.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "joybspeed = 29")

	a := reopen(t, dir)
	assert.True(t, a.Controls.AlwaysRun())
}

func TestResetCommand_All(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runCommand(t, "--config-dir", dir, "bind", "use", "e"))
	require.NoError(t, runCommand(t, "--config-dir", dir, "reset", "--all"))

	a := reopen(t, dir)
	assert.Equal(t, entity.KeySpace, a.Controls.Table().Get(entity.ActionUse))
}

func TestExportImport_AcrossDirs(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	exported := filepath.Join(t.TempDir(), "keys.toml")

	require.NoError(t, runCommand(t, "--config-dir", src, "bind", "use", "e"))
	require.NoError(t, runCommand(t, "--config-dir", src, "export", exported))
	require.NoError(t, runCommand(t, "--config-dir", dst, "import", exported))

	a := reopen(t, dst)
	assert.Equal(t, entity.KeyCode('e'), a.Controls.Table().Get(entity.ActionUse))
}

func TestBindCommand_UnknownAction(t *testing.T) {
	err := runCommand(t, "--config-dir", t.TempDir(), "bind", "jump", "SPACE")
	assert.Error(t, err)
}

func TestConfigSchemaCommand_WritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schema.json")

	require.NoError(t, runCommand(t, "config", "schema", "--output", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "storage")
}

func TestConfigKeysCommand(t *testing.T) {
	t.Cleanup(func() {
		keysJSON = false
		keysSection = ""
	})
	require.NoError(t, runCommand(t, "--config-dir", t.TempDir(), "config", "keys", "--section", "Storage"))
}

func TestWriteBindingsReference(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeBindingsReference(&buf, docFormatMarkdown))

		out := buf.String()
		assert.Contains(t, out, "| `move-forward` | `key_up` | UP |")
		assert.Contains(t, out, "| `toggle-crosshair` | `key_togglecrosshair` | unbound |")
		assert.Contains(t, out, "(other)")
		assert.Contains(t, out, "`key_menu_confirm`")
		assert.Contains(t, out, "`joybspeed`")
	})

	t.Run("man", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeBindingsReference(&buf, docFormatMan))

		out := buf.String()
		assert.Contains(t, out, ".TH \"KEYSETUP-BINDINGS\" \"5\"")
		assert.Contains(t, out, "\\fBkey_up\\fR (move-forward)")
	})

	t.Run("unknown format", func(t *testing.T) {
		assert.Error(t, writeBindingsReference(&bytes.Buffer{}, "html"))
	})
}

func TestGenDocs_Markdown(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runCommand(t, "gen-docs", "--format", "markdown", "--output", dir))

	assert.FileExists(t, filepath.Join(dir, "keysetup.md"))
	ref, err := os.ReadFile(filepath.Join(dir, "keysetup_bindings.md"))
	require.NoError(t, err)
	assert.Contains(t, string(ref), "`key_up`")
}
