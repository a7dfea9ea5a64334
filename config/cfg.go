package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"twc/common"
	"twc/misc"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	ThemeConfig struct {
		// Token files merged over the embedded theme in order.
		Files []string        `yaml:"files" validate:"dive,required"`
		Dark  common.DarkMode `yaml:"dark" validate:"gte=0"`
	}

	ConvertConfig struct {
		ParentLayout common.LayoutMode   `yaml:"parent_layout" validate:"gte=0"`
		Format       common.OutputFormat `yaml:"format" validate:"gte=0"`
		FontFamily   string              `yaml:"font_family"`
		RootFontSize float64             `yaml:"root_font_size" validate:"gte=0"`
		// Variants lists the modifiers considered active, classes with any
		// other modifier are left out of the design style.
		Variants []string `yaml:"variants" validate:"dive,required"`
	}

	ScanConfig struct {
		Include    []string      `yaml:"include" validate:"dive,required"`
		Exclude    []string      `yaml:"exclude" validate:"dive,required"`
		Attributes []string      `yaml:"attributes" validate:"min=1,dive,required"`
		Workers    int           `yaml:"workers" validate:"gte=0"`
		Debounce   time.Duration `yaml:"debounce" validate:"gte=0"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Theme     ThemeConfig    `yaml:"theme"`
		Convert   ConvertConfig  `yaml:"convert"`
		Scan      ScanConfig     `yaml:"scan"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field names above, patterns are taken verbatim
	IncludeFieldName TemplateFieldName = "include"
	ExcludeFieldName TemplateFieldName = "exclude"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(IncludeFieldName)),
	gencfg.WithDoNotExpandField(string(ExcludeFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Locate returns the configuration file from the user configuration
// directory ($XDG_CONFIG_HOME/twc/config.yaml) or an empty string when there
// is none.
func Locate() string {
	path := filepath.Join(xdg.ConfigHome, misc.GetAppName(), "config.yaml")
	if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
		return path
	}
	return ""
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
