package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// defaultConfigPath is consulted when --config is not given.
const defaultConfigPath = ".typefence.toml"

// toolConfig maps .typefence.toml keys to checking defaults. Flags override
// whatever the file provides.
type toolConfig struct {
	Deep     bool   `toml:"deep"`
	Lax      bool   `toml:"lax"`
	FailFast bool   `toml:"fail_fast"`
	Locale   string `toml:"locale"`
}

func loadToolConfig(path string) (toolConfig, error) {
	var cfg toolConfig
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return toolConfig{}, nil
		}
		return toolConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if un := meta.Undecoded(); len(un) > 0 {
		return toolConfig{}, fmt.Errorf("load config %s: unknown key %q", path, un[0].String())
	}
	return cfg, nil
}
