package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TagPreset is a YAML file listing the tags to start with:
//
//	tags:
//	  - 温度
//	  - 湿度
type TagPreset struct {
	Tags []string `yaml:"tags"`
}

func LoadTagPreset(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tag preset: %w", err)
	}
	return ParseTagPreset(data)
}

func ParseTagPreset(data []byte) ([]string, error) {
	var p TagPreset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse tag preset: %w", err)
	}
	return p.Tags, nil
}

// InitialTags resolves the startup tag list: the preset file when configured,
// otherwise tags.initial.
func (c Config) InitialTags() ([]string, error) {
	if c.Tags.PresetFile == "" {
		return append([]string(nil), c.Tags.Initial...), nil
	}
	return LoadTagPreset(c.Tags.PresetFile)
}
