package config

import (
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Config holds everything the process needs to run. Values are layered:
// per-environment defaults, then an optional yaml config file, then
// SHELFMARK_-prefixed environment variables.
type Config struct {
	Environment  string `koanf:"environment"`
	Hostname     string `koanf:"-"`
	SeedFilePath string `koanf:"seed_file_path"`
	ServerHost   string `koanf:"server_host"`
	ServerPort   int    `koanf:"server_port"`
}

const (
	environmentENV = "ENVIRONMENT"
	configFileENV  = "CONFIG_FILE"
	envPrefix      = "SHELFMARK_"
)

func New() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := &Config{
		Environment: "development",
		Hostname:    hostname,
		ServerPort:  4600,
	}

	switch os.Getenv(environmentENV) {
	case "development", "":
		loadDevelopmentConfig(cfg)
	case "test":
		loadTestConfig(cfg)
	case "production":
		loadProductionConfig(cfg)
	}

	k := koanf.New(".")

	configFilePath := os.Getenv(configFileENV)
	if configFilePath == "" {
		configFilePath = "./config.yaml"
	}
	if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "failed to load config file: %s", configFilePath)
	}

	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	if cfg.ServerPort < 0 || cfg.ServerPort > 65535 {
		return nil, errors.Errorf("invalid server_port: %d", cfg.ServerPort)
	}

	return cfg, nil
}
