package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const DefaultRoot = "~/diary"

// Config holds everything the adapters need. It is built once in main and
// passed down; nothing below cmd reads the environment.
type Config struct {
	Root     string     `mapstructure:"root"`
	Editor   string     `mapstructure:"editor"`
	LogLevel string     `mapstructure:"log_level"`
	Jira     JiraConfig `mapstructure:"jira"`
}

// JiraConfig holds the ticket tracker credentials
type JiraConfig struct {
	Host string `mapstructure:"host"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
}

// Configured reports whether enough is set to talk to Jira
func (j JiraConfig) Configured() bool {
	return j.Host != ""
}

// Load reads defaults, then the optional config file, then environment
// variables (DATA_ROOT, JIRA_HOST, JIRA_USER, JIRA_PASS, TIMELOG_LOG_LEVEL,
// EDITOR), each layer overriding the previous one.
func Load() (*Config, error) {
	return load(FilePath())
}

func load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("root", DefaultRoot)
	v.SetDefault("log_level", "info")

	bindings := map[string]string{
		"root":      "DATA_ROOT",
		"editor":    "EDITOR",
		"log_level": "TIMELOG_LOG_LEVEL",
		"jira.host": "JIRA_HOST",
		"jira.user": "JIRA_USER",
		"jira.pass": "JIRA_PASS",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FilePath returns $XDG_CONFIG_HOME/timelog/config.yaml
func FilePath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "timelog", "config.yaml")
}
