package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vuedeps-dev/vuedeps/internal/deps"
)

func resolveBaseDir(cmd *cobra.Command) (string, error) {
	baseDir, err := cmd.Flags().GetString("base-dir")
	if err != nil {
		return "", fmt.Errorf("failed to read --base-dir flag: %w", err)
	}
	if baseDir == "" {
		baseDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to resolve working directory: %w", err)
		}
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve base directory: %w", err)
	}
	return abs, nil
}

// parseAliasFlags turns repeated "prefix=dir" flags into an alias map.
func parseAliasFlags(values []string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	aliases := make(map[string]string, len(values))
	for _, value := range values {
		prefix, dir, ok := strings.Cut(value, "=")
		if !ok || strings.TrimSpace(prefix) == "" || strings.TrimSpace(dir) == "" {
			return nil, fmt.Errorf("invalid --alias value %q, expected prefix=dir", value)
		}
		aliases[strings.TrimSpace(prefix)] = strings.TrimSpace(dir)
	}
	return aliases, nil
}

// loadCommandConfig merges config-file settings with persistent flags.
func loadCommandConfig(cmd *cobra.Command) (*Config, error) {
	baseDir, err := resolveBaseDir(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadConfig(baseDir)
	if err != nil {
		return nil, err
	}

	aliasFlags, err := cmd.Flags().GetStringArray("alias")
	if err != nil {
		return nil, fmt.Errorf("failed to read --alias flag: %w", err)
	}
	flagAliases, err := parseAliasFlags(aliasFlags)
	if err != nil {
		return nil, err
	}
	for prefix, dir := range flagAliases {
		if cfg.Aliases == nil {
			cfg.Aliases = make(map[string]string)
		}
		cfg.Aliases[prefix] = dir
	}

	if cmd.Flags().Lookup("max-depth") != nil {
		maxDepth, err := cmd.Flags().GetInt("max-depth")
		if err != nil {
			return nil, fmt.Errorf("failed to read --max-depth flag: %w", err)
		}
		if maxDepth >= 0 {
			cfg.MaxDepth = maxDepth
		}
	}

	return cfg, nil
}

func (c *Config) resolverOptions() deps.Options {
	return deps.Options{
		BaseDir:    c.BaseDir,
		Aliases:    c.Aliases,
		Extensions: c.Extensions,
	}
}

// LoadIgnoreRules reads .vuedepsignore lines from rootPath, skipping
// blanks and comments.
func LoadIgnoreRules(rootPath string) ([]string, error) {
	ignorePath := filepath.Join(rootPath, ".vuedepsignore")
	f, err := os.Open(ignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read .vuedepsignore: %w", err)
	}
	defer f.Close()

	rules := make([]string, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rules = append(rules, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse .vuedepsignore: %w", err)
	}
	return rules, nil
}
