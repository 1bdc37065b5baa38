package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PROPORTION_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 0.0, cfg.Bank.Initial)
	require.Equal(t, 100.0, cfg.Bank.DepositAmount)
	require.Equal(t, 10.0, cfg.Bank.WithdrawAmount)
	require.Equal(t, []string{"温度", "湿度"}, cfg.Tags.Initial)
	require.Equal(t, "因素", cfg.Table.FixedTitle)
	require.Equal(t, ":memory:", cfg.Journal.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.False(t, cfg.Log.Journald)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[bank]
initial = 50
deposit_amount = 25

[tags]
initial = ["a", "b", "c"]

[table]
fixed_title = "Factor"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("PROPORTION_BANK_WITHDRAW_AMOUNT", "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 50.0, cfg.Bank.Initial)
	require.Equal(t, 25.0, cfg.Bank.DepositAmount)
	require.Equal(t, 7.0, cfg.Bank.WithdrawAmount)
	require.Equal(t, []string{"a", "b", "c"}, cfg.Tags.Initial)
	require.Equal(t, "Factor", cfg.Table.FixedTitle)
}

func TestLoadMissingExplicitFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, 100.0, cfg.Bank.DepositAmount)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[bank\ninitial = "), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestInitialTagsPrefersPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tags:\n  - 压力\n  - 风速\n"), 0o644))

	cfg := Config{Tags: TagsConfig{Initial: []string{"x"}, PresetFile: path}}
	tags, err := cfg.InitialTags()
	require.NoError(t, err)
	require.Equal(t, []string{"压力", "风速"}, tags)

	cfg.Tags.PresetFile = ""
	tags, err = cfg.InitialTags()
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, tags)

	cfg.Tags.PresetFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cfg.InitialTags()
	require.Error(t, err)
}

func TestParseTagPresetRejectsBadYAML(t *testing.T) {
	_, err := ParseTagPreset([]byte("tags: [unterminated"))
	require.Error(t, err)
}

func TestSplitTags(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, splitTags([]string{"a, b", " ", "c"}))
}

func TestKeybindingsOverride(t *testing.T) {
	defaults := map[string][]string{"deposit": {"d"}, "quit": {"q"}, "open-command-palette": {"ctrl+k"}}

	got, err := ParseKeybindings("version = 1\n[bindings]\ndeposit = [\"D\", \"+\"]\nopen-command-palette = [\" Ctrl+K \"]\n", defaults)
	require.NoError(t, err)
	require.Equal(t, []string{"D", "+"}, got["deposit"], "single characters keep their case")
	require.Equal(t, []string{"ctrl+k"}, got["open-command-palette"], "named keys are lowercased")
	require.Equal(t, []string{"q"}, got["quit"])
	require.Equal(t, []string{"d"}, defaults["deposit"], "defaults must not be mutated")

	_, err = ParseKeybindings("[bindings]\nnope = [\"x\"]\n", defaults)
	require.Error(t, err)

	_, err = ParseKeybindings("[bindings]\ndeposit = []\n", defaults)
	require.Error(t, err)

	_, err = ParseKeybindings("version = 2\n", defaults)
	require.Error(t, err)
}

func TestLoadKeybindingsMissingFile(t *testing.T) {
	defaults := map[string][]string{"quit": {"q"}}
	got, err := LoadKeybindings(filepath.Join(t.TempDir(), "keybindings.toml"), defaults)
	require.NoError(t, err)
	require.Equal(t, defaults, got)
}
