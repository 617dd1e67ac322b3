package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnmarshalComposerJSON(t *testing.T) {

	t.Run("ParsesManifest", func(t *testing.T) {

		data := []byte(`{
			"name": "johndoe/make-good",
			"type": "typo3-cms-extension",
			"require": {
				"typo3/cms-core": "^9.5"
			}
		}`)

		// act
		manifest, err := UnmarshalComposerJSON(data)

		assert.Nil(t, err)
		assert.Equal(t, "johndoe/make-good", manifest.Name)
		assert.Equal(t, "typo3-cms-extension", manifest.Type)
		assert.True(t, manifest.Requires("typo3/cms-core"))
		assert.Equal(t, "^9.5", manifest.Constraint("typo3/cms-core"))
	})

	t.Run("FailsForInvalidJson", func(t *testing.T) {

		// act
		_, err := UnmarshalComposerJSON([]byte(`{`))

		assert.NotNil(t, err)
	})

	t.Run("FailsForMissingName", func(t *testing.T) {

		// act
		_, err := UnmarshalComposerJSON([]byte(`{"type": "typo3-cms-extension"}`))

		assert.NotNil(t, err)
	})

	t.Run("FailsForBlankType", func(t *testing.T) {

		// act
		_, err := UnmarshalComposerJSON([]byte(`{"name": "johndoe/make-good", "type": "  "}`))

		assert.NotNil(t, err)
	})
}

func TestRequires(t *testing.T) {

	t.Run("ReturnsFalseForAbsentPackage", func(t *testing.T) {

		manifest := ComposerJSON{Require: map[string]string{"typo3/cms-core": "^9.5"}}

		// act & assert
		assert.False(t, manifest.Requires("typo3/cms-fluid"))
		assert.Equal(t, "", manifest.Constraint("typo3/cms-fluid"))
	})
}
