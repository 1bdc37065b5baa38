package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// KeybindingsFile is the on-disk shape of keybindings.toml:
//
//	version = 1
//
//	[bindings]
//	deposit = ["d", "+"]
type KeybindingsFile struct {
	Version  int                 `toml:"version"`
	Bindings map[string][]string `toml:"bindings"`
}

// LoadKeybindings merges the overrides in path over defaults. A missing file
// yields the defaults unchanged. Unknown actions and empty key lists are
// rejected.
func LoadKeybindings(path string, defaults map[string][]string) (map[string][]string, error) {
	merged := cloneActionMap(defaults)
	if strings.TrimSpace(path) == "" {
		return merged, nil
	}
	var file KeybindingsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return merged, nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := mergeKeybindings(&file, merged, defaults); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return merged, nil
}

// ParseKeybindings is LoadKeybindings for in-memory TOML.
func ParseKeybindings(data string, defaults map[string][]string) (map[string][]string, error) {
	merged := cloneActionMap(defaults)
	var file KeybindingsFile
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, fmt.Errorf("parse keybindings: %w", err)
	}
	if err := mergeKeybindings(&file, merged, defaults); err != nil {
		return nil, err
	}
	return merged, nil
}

func mergeKeybindings(file *KeybindingsFile, merged, defaults map[string][]string) error {
	if file.Version == 0 {
		file.Version = 1
	}
	if file.Version != 1 {
		return fmt.Errorf("unsupported version %d", file.Version)
	}
	for action, keys := range file.Bindings {
		a := strings.TrimSpace(action)
		if !isValidActionID(a) {
			return fmt.Errorf("invalid action %q", action)
		}
		if _, exists := defaults[a]; !exists {
			return fmt.Errorf("unknown action %q", a)
		}
		if len(keys) == 0 {
			return fmt.Errorf("action %q: keys are required", a)
		}
		out := make([]string, 0, len(keys))
		for _, key := range keys {
			k := strings.TrimSpace(key)
			if utf8.RuneCountInString(k) > 1 {
				k = strings.ToLower(k)
			}
			if k == "" {
				return fmt.Errorf("action %q: key cannot be empty", a)
			}
			out = append(out, k)
		}
		merged[a] = out
	}
	return nil
}

func cloneActionMap(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for action, keys := range in {
		out[action] = append([]string(nil), keys...)
	}
	return out
}

func isValidActionID(action string) bool {
	if action == "" {
		return false
	}
	for i, ch := range action {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			continue
		}
		if ch == '-' && i > 0 && i < len(action)-1 {
			continue
		}
		return false
	}
	return true
}
