package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/vuedeps-dev/vuedeps/internal/resolver"
	"github.com/vuedeps-dev/vuedeps/internal/tree"
)

// Config carries the analysis settings shared by every command. Values
// come from defaults, then an optional .vuedeps.yaml in the base
// directory, then command-line flags.
type Config struct {
	BaseDir    string
	Aliases    map[string]string
	Extensions []string
	MaxDepth   int
}

// LoadConfig reads .vuedeps.{yaml,json,toml} from baseDir if present.
// A missing config file is not an error; a malformed one is.
func LoadConfig(baseDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".vuedeps")
	v.AddConfigPath(baseDir)
	v.SetDefault("max_depth", tree.DefaultMaxDepth)
	v.SetDefault("extensions", resolver.DefaultExtensions)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config in %s: %w", baseDir, err)
		}
	}

	return &Config{
		BaseDir:    baseDir,
		Aliases:    v.GetStringMapString("aliases"),
		Extensions: v.GetStringSlice("extensions"),
		MaxDepth:   v.GetInt("max_depth"),
	}, nil
}
