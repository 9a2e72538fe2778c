package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ports"
)

// FileName is the workspace marker and configuration file written by init.
const FileName = "shiplog.yaml"

// FileNames lists every accepted spelling, in lookup order.
var FileNames = []string{FileName, "shiplog.yml"}

type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

var _ ports.ConfigLoader = (*Loader)(nil)

// LoadConfig reads the first of FileNames present under root. A missing file
// yields the defaults together with a KindNotFound error so callers can decide
// whether that matters.
func (l *Loader) LoadConfig(root string) (domain.Config, error) {
	return Load(Locate(root))
}

// Locate returns the config path under root, falling back to FileName when no
// candidate exists.
func Locate(root string) string {
	for _, name := range FileNames {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(root, FileName)
}

func Load(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}
