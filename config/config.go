package config

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v2"
)

// Config holds the policy part of the service configuration: which platform
// versions exist, which branches are built and where dispatches go. It is
// loaded once at startup and never mutated afterwards.
type Config struct {
	Platform PlatformConfig `yaml:"platform"`
	Gerrit   GerritConfig   `yaml:"gerrit"`
	Docs     DocsConfig     `yaml:"docs"`
	Rst      RstConfig      `yaml:"rst"`
}

// PlatformConfig enumerates the supported platform versions, ascending, and
// names the foundation package a documentable extension must require.
type PlatformConfig struct {
	Versions    []string `yaml:"versions"`
	CorePackage string   `yaml:"corePackage"`
}

// GerritConfig maps accepted gerrit branches to the CI plan that builds them.
// Branches missing from the map are out of policy.
type GerritConfig struct {
	BranchToPlan map[string]string `yaml:"branchToPlan"`
}

// DocsConfig points at the repository receiving documentation build
// dispatches.
type DocsConfig struct {
	DispatchRepository string `yaml:"dispatchRepository"`
}

// RstConfig configures the rst change aggregation: where tracking issues
// live and where file links point.
type RstConfig struct {
	TrackingRepository string `yaml:"trackingRepository"`
	FileLinkBase       string `yaml:"fileLinkBase"`
}

// DefaultConfig returns the production policy.
func DefaultConfig() Config {
	return Config{
		Platform: PlatformConfig{
			Versions:    []string{"6.2", "7.6", "8.7", "9.5"},
			CorePackage: "typo3/cms-core",
		},
		Gerrit: GerritConfig{
			BranchToPlan: map[string]string{
				"master":    "CORE-GTC",
				"TYPO3_8-7": "CORE-GTC87",
				"TYPO3_7-6": "CORE-GTC76",
			},
		},
		Docs: DocsConfig{
			DispatchRepository: "TYPO3-Documentation/t3docs-ci-deploy",
		},
		Rst: RstConfig{
			TrackingRepository: "andreasfernandez/Changelog-To-Doc",
			FileLinkBase:       "https://github.com/TYPO3/typo3/tree/main/",
		},
	}
}

// LoadConfig reads the policy file at path, falling back to the defaults
// when path is empty.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %v failed: %w", path, err)
	}

	config := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing config file %v failed: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks the invariants the pipeline relies on, most importantly
// that the platform version ladder is non-empty and strictly ascending.
func (c Config) Validate() error {
	if len(c.Platform.Versions) == 0 {
		return fmt.Errorf("platform.versions must not be empty")
	}
	if c.Platform.CorePackage == "" {
		return fmt.Errorf("platform.corePackage must not be empty")
	}

	var previous *semver.Version
	for _, v := range c.Platform.Versions {
		parsed, err := semver.NewVersion(v)
		if err != nil {
			return fmt.Errorf("platform version %v is not a valid version: %w", v, err)
		}
		if previous != nil && !parsed.GreaterThan(previous) {
			return fmt.Errorf("platform.versions must be ascending, %v is not greater than %v", v, previous)
		}
		previous = parsed
	}

	if len(c.Gerrit.BranchToPlan) == 0 {
		return fmt.Errorf("gerrit.branchToPlan must not be empty")
	}

	return nil
}
