package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ComposerJSON is the dependency manifest fetched for a documentation
// repository. Require maps package names to semantic version constraints.
type ComposerJSON struct {
	Name    string            `json:"name"`
	Type    string            `json:"type"`
	Require map[string]string `json:"require"`
}

// UnmarshalComposerJSON parses raw manifest bytes and validates the fields
// every downstream step relies on.
func UnmarshalComposerJSON(data []byte) (ComposerJSON, error) {
	var c ComposerJSON
	if err := json.Unmarshal(data, &c); err != nil {
		return ComposerJSON{}, fmt.Errorf("parsing composer.json failed: %w", err)
	}
	if strings.TrimSpace(c.Name) == "" {
		return ComposerJSON{}, fmt.Errorf("property \"name\" is missing or is empty in composer.json")
	}
	if strings.TrimSpace(c.Type) == "" {
		return ComposerJSON{}, fmt.Errorf("property \"type\" is missing or is empty in composer.json")
	}
	return c, nil
}

// Requires returns true if the manifest declares a dependency on packageName.
func (c ComposerJSON) Requires(packageName string) bool {
	_, ok := c.Require[packageName]
	return ok
}

// Constraint returns the version constraint declared for packageName, or an
// empty string if the package is not required.
func (c ComposerJSON) Constraint(packageName string) string {
	return c.Require[packageName]
}
