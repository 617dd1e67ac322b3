package resolve

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/linawolf/site-intercept/api"
	"github.com/linawolf/site-intercept/config"
)

// ExtensionType is the only package type whose platform compatibility is
// resolved; all other types render against any platform version.
const ExtensionType = "typo3-cms-extension"

// ErrMissingDependency is returned when an extension manifest does not
// require the core platform package.
var ErrMissingDependency = errors.New("core platform package must be required in the composer.json, but was not found")

// Service resolves the lowest and highest supported platform version an
// extension manifest is compatible with. Resolution is a pure function over
// the already fetched manifest and the configured version ladder.
//go:generate mockgen -package=resolve -destination ./mock.go -source=service.go
type Service interface {
	MinimumPlatformVersion(manifest api.ComposerJSON) (string, error)
	MaximumPlatformVersion(manifest api.ComposerJSON) (string, error)
}

// NewService returns a new resolve.Service scanning the ladder configured in
// platformConfig. The ladder is parsed once; LoadConfig has already
// validated it is ascending.
func NewService(platformConfig config.PlatformConfig) (Service, error) {

	ladder := make([]ladderEntry, 0, len(platformConfig.Versions))
	for _, v := range platformConfig.Versions {
		parsed, err := semver.NewVersion(v)
		if err != nil {
			return nil, fmt.Errorf("platform version %v is not a valid version: %w", v, err)
		}
		ladder = append(ladder, ladderEntry{raw: v, version: parsed})
	}

	return &service{
		ladder:      ladder,
		corePackage: platformConfig.CorePackage,
	}, nil
}

type ladderEntry struct {
	raw     string
	version *semver.Version
}

type service struct {
	ladder      []ladderEntry
	corePackage string
}

func (s *service) MinimumPlatformVersion(manifest api.ComposerJSON) (string, error) {
	return s.resolve(manifest, false)
}

func (s *service) MaximumPlatformVersion(manifest api.ComposerJSON) (string, error) {
	return s.resolve(manifest, true)
}

func (s *service) resolve(manifest api.ComposerJSON, wantMaximum bool) (string, error) {

	if manifest.Type != ExtensionType {
		return "", nil
	}
	if !manifest.Requires(s.corePackage) {
		return "", ErrMissingDependency
	}

	constraint, err := semver.NewConstraint(manifest.Constraint(s.corePackage))
	if err != nil {
		return "", fmt.Errorf("constraint %v for %v is invalid: %w", manifest.Constraint(s.corePackage), s.corePackage, err)
	}

	// the ladder is ascending, so the first match is the minimum and the
	// last match is the maximum
	resolved := ""
	for _, entry := range s.ladder {
		if constraint.Check(entry.version) {
			if !wantMaximum {
				return entry.raw, nil
			}
			resolved = entry.raw
		}
	}

	return resolved, nil
}
