package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/BasinLeon/lead-script-generator/internal/model"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".leadscript"

// SenderSection holds the sender identity from the config file.
type SenderSection struct {
	// Name appears in email sign-offs.
	Name string `yaml:"name,omitempty"`

	// ValueProp is the value proposition substituted into templates.
	ValueProp string `yaml:"valueProp,omitempty"`
}

// File represents the structure of the .leadscript configuration file.
// Every section is optional; omitted sections keep the built-in defaults.
type File struct {
	// Sender holds the sender identity.
	Sender SenderSection `yaml:"sender,omitempty"`

	// Classifier overrides keyword lists and size thresholds.
	// Only non-empty lists and non-zero thresholds take effect.
	Classifier *Ruleset `yaml:"classifier,omitempty"`

	// Aliases maps canonical column names to extra header aliases,
	// e.g. first_name: [vorname, prenom].
	Aliases map[string][]string `yaml:"aliases,omitempty"`

	// Profiles overrides archetype messaging profiles, keyed by the
	// archetype key ("startup", "midmarket", "enterprise", "agency").
	Profiles map[string]Profile `yaml:"profiles,omitempty"`
}

// LoadConfigFile loads a .leadscript YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this based on whether the path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .leadscript in the current directory
// 3. Look for config.yaml in the XDG config directory
// 4. Look for .leadscript in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	if home, err := os.UserHomeDir(); err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// Apply merges the file's settings into the given Config.
// File values win over defaults, but flag values set after Apply win over
// the file (the CLI applies flags last). Empty file sections leave the
// Config untouched.
func (cf *File) Apply(cfg *Config) error {
	if cf.Sender.Name != "" {
		cfg.SenderName = cf.Sender.Name
	}
	if cf.Sender.ValueProp != "" {
		cfg.ValueProp = cf.Sender.ValueProp
	}

	if cf.Classifier != nil {
		cfg.Rules = mergeRuleset(cfg.Rules, *cf.Classifier)
	}

	if len(cf.Aliases) > 0 {
		cfg.ExtraAliases = cf.Aliases
	}

	for key, profile := range cf.Profiles {
		archetype, err := model.ParseArchetype(key)
		if err != nil {
			return fmt.Errorf("invalid profile key: %w", err)
		}
		cfg.Profiles[archetype] = mergeProfile(cfg.Profiles.Get(archetype), profile)
	}

	return nil
}

// mergeRuleset overlays non-empty override values onto the base rule set.
func mergeRuleset(base, override Ruleset) Ruleset {
	result := base

	if len(override.Priority.P1Keywords) > 0 {
		result.Priority.P1Keywords = override.Priority.P1Keywords
	}
	if len(override.Priority.P2Keywords) > 0 {
		result.Priority.P2Keywords = override.Priority.P2Keywords
	}
	if override.Archetype.StartupMaxEmployees > 0 {
		result.Archetype.StartupMaxEmployees = override.Archetype.StartupMaxEmployees
	}
	if override.Archetype.EnterpriseMinEmployees > 0 {
		result.Archetype.EnterpriseMinEmployees = override.Archetype.EnterpriseMinEmployees
	}
	if len(override.Archetype.AgencyKeywords) > 0 {
		result.Archetype.AgencyKeywords = override.Archetype.AgencyKeywords
	}
	if len(override.Archetype.EnterpriseKeywords) > 0 {
		result.Archetype.EnterpriseKeywords = override.Archetype.EnterpriseKeywords
	}

	return result
}

// mergeProfile overlays non-empty override values onto the base profile.
func mergeProfile(base, override Profile) Profile {
	result := base

	if len(override.PainPoints) > 0 {
		result.PainPoints = override.PainPoints
	}
	if len(override.Values) > 0 {
		result.Values = override.Values
	}
	if override.Tone != "" {
		result.Tone = override.Tone
	}

	return result
}
