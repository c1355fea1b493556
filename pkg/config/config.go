package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/sublink/pkg/errors"
	"github.com/arthur-debert/sublink/pkg/logging"
)

// ConfigFileNames are the override file names probed at the source
// root, in order. The first one found wins.
var ConfigFileNames = []string{".sublink.toml", "sublink.toml"}

// Dirs holds the category base directories, relative to the source root.
type Dirs struct {
	Build    string `koanf:"build" toml:"build"`
	Plugins  string `koanf:"plugins" toml:"plugins"`
	Settings string `koanf:"settings" toml:"settings"`
	Syntax   string `koanf:"syntax" toml:"syntax"`
}

// Catalog lists the file names installed per category.
type Catalog struct {
	Editorconfig string   `koanf:"editorconfig" toml:"editorconfig"`
	Build        []string `koanf:"build" toml:"build"`
	Plugins      []string `koanf:"plugins" toml:"plugins"`
	Settings     []string `koanf:"settings" toml:"settings"`
	Syntax       []string `koanf:"syntax" toml:"syntax"`
}

// Config is the full sublink configuration. The toml tags are used by
// gen-config when marshaling the override template.
type Config struct {
	Dirs    Dirs    `koanf:"dirs" toml:"dirs"`
	Catalog Catalog `koanf:"catalog" toml:"catalog"`
}

// Load builds the configuration for the given source root: embedded
// defaults overlaid with the root's override file when present.
func Load(sourceRoot string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	for _, filename := range ConfigFileNames {
		path := filepath.Join(sourceRoot, filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
			}
			logger.Debug().Str("path", path).Msg("loaded override config")
			break
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	return &cfg, nil
}
