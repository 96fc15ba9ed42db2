package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/diillson/rewards-dashboard-go/internal/domain/repository"
	"github.com/diillson/rewards-dashboard-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: config file %s", types.ErrUnsupportedFormat, fileExtension)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", filePath, err)
	}

	return &config, nil
}

func validate(c *types.Config) error {
	if c.PageSize != 0 && !types.ValidPageSize(c.PageSize) {
		return fmt.Errorf("page_size must be one of %v, got %d", types.PageSizeOptions, c.PageSize)
	}

	for _, v := range c.Views {
		if !slices.Contains(types.ValidViews, strings.ToLower(v)) {
			return fmt.Errorf("%w %q, must be one of: %s", types.ErrInvalidView, v, strings.Join(types.ValidViews, ", "))
		}
	}

	for _, rt := range c.ReportType {
		if !slices.Contains(types.ValidReportTypes, strings.ToLower(rt)) {
			return fmt.Errorf("invalid report type %q, must be one of: %s", rt, strings.Join(types.ValidReportTypes, ", "))
		}
	}

	if c.Log.Format != "" && !slices.Contains([]string{"text", "json"}, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("invalid log format %q, must be one of: text, json", c.Log.Format)
	}

	return nil
}
