package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "intercept.yaml")
	err := os.WriteFile(path, []byte(content), 0600)
	assert.Nil(t, err)

	return path
}

func TestDefaultConfig(t *testing.T) {

	t.Run("IsValid", func(t *testing.T) {

		// act
		err := DefaultConfig().Validate()

		assert.Nil(t, err)
	})

	t.Run("ListsPlatformVersionsAscending", func(t *testing.T) {

		// act
		config := DefaultConfig()

		assert.Equal(t, []string{"6.2", "7.6", "8.7", "9.5"}, config.Platform.Versions)
	})
}

func TestLoadConfig(t *testing.T) {

	t.Run("ReturnsDefaultsForEmptyPath", func(t *testing.T) {

		// act
		config, err := LoadConfig("")

		assert.Nil(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("OverridesDefaultsFromFile", func(t *testing.T) {

		path := writeConfigFile(t, `
platform:
  versions:
  - "9.5"
  - "10.4"
  corePackage: typo3/cms-core
`)

		// act
		config, err := LoadConfig(path)

		assert.Nil(t, err)
		assert.Equal(t, []string{"9.5", "10.4"}, config.Platform.Versions)
		assert.Equal(t, DefaultConfig().Docs.DispatchRepository, config.Docs.DispatchRepository)
	})

	t.Run("FailsForMissingFile", func(t *testing.T) {

		// act
		_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

		assert.NotNil(t, err)
	})

	t.Run("FailsForUnknownKeys", func(t *testing.T) {

		path := writeConfigFile(t, `
platforms:
  versions:
  - "9.5"
`)

		// act
		_, err := LoadConfig(path)

		assert.NotNil(t, err)
	})
}

func TestValidate(t *testing.T) {

	t.Run("FailsForEmptyVersionLadder", func(t *testing.T) {

		config := DefaultConfig()
		config.Platform.Versions = nil

		// act
		err := config.Validate()

		assert.NotNil(t, err)
	})

	t.Run("FailsForUnparsableVersion", func(t *testing.T) {

		config := DefaultConfig()
		config.Platform.Versions = []string{"6.2", "banana"}

		// act
		err := config.Validate()

		assert.NotNil(t, err)
	})

	t.Run("FailsForDescendingVersionLadder", func(t *testing.T) {

		config := DefaultConfig()
		config.Platform.Versions = []string{"9.5", "8.7"}

		// act
		err := config.Validate()

		assert.NotNil(t, err)
	})

	t.Run("FailsForDuplicateVersionLadderEntry", func(t *testing.T) {

		config := DefaultConfig()
		config.Platform.Versions = []string{"8.7", "8.7"}

		// act
		err := config.Validate()

		assert.NotNil(t, err)
	})

	t.Run("FailsForMissingCorePackage", func(t *testing.T) {

		config := DefaultConfig()
		config.Platform.CorePackage = ""

		// act
		err := config.Validate()

		assert.NotNil(t, err)
	})

	t.Run("FailsForEmptyBranchPlanMap", func(t *testing.T) {

		config := DefaultConfig()
		config.Gerrit.BranchToPlan = nil

		// act
		err := config.Validate()

		assert.NotNil(t, err)
	})
}
