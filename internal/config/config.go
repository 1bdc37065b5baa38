package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Bank        BankConfig
	Tags        TagsConfig
	Table       TableConfig
	Journal     JournalConfig
	Log         LogConfig
	Keybindings KeybindingsConfig
}

// BankConfig holds the demo panel amounts.
type BankConfig struct {
	Initial        float64 `mapstructure:"initial"`
	DepositAmount  float64 `mapstructure:"deposit_amount"`
	WithdrawAmount float64 `mapstructure:"withdraw_amount"`
}

// TagsConfig seeds the tag list. PresetFile, when set, wins over Initial.
type TagsConfig struct {
	Initial    []string `mapstructure:"initial"`
	PresetFile string   `mapstructure:"preset_file"`
}

type TableConfig struct {
	FixedTitle string `mapstructure:"fixed_title"`
}

// JournalConfig holds the sqlite audit log location. ":memory:" keeps it in
// process.
type JournalConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Path     string `mapstructure:"path"`
	Level    string `mapstructure:"level"`
	Journald bool   `mapstructure:"journald"`
}

type KeybindingsConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// PROPORTION_. An empty path falls back to $PROPORTION_CONFIG and then to
// ~/.config/proportion/config.toml. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("PROPORTION_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(homeDir(), ".config", "proportion"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PROPORTION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case explicit && errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Tags.Initial = splitTags(c.Tags.Initial)
	return c, nil
}

func setDefaults(v *viper.Viper) {
	home := homeDir()
	v.SetDefault("bank.initial", 0)
	v.SetDefault("bank.deposit_amount", 100)
	v.SetDefault("bank.withdraw_amount", 10)
	v.SetDefault("tags.initial", []string{"温度", "湿度"})
	v.SetDefault("tags.preset_file", "")
	v.SetDefault("table.fixed_title", "因素")
	v.SetDefault("journal.path", ":memory:")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "proportion", "proportion.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.journald", false)
	v.SetDefault("keybindings.path", filepath.Join(home, ".config", "proportion", "keybindings.toml"))
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}

// splitTags accepts both list values and a single comma separated string,
// which is what an env override produces.
func splitTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
