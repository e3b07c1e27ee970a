package manifest

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/condor-engine/condor/pkg/condition"
)

var validate = validator.New()

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates manifest content. Unknown fields are
// rejected so typos in condition keys surface as errors instead of
// silently producing unconditional units.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		return nil, condition.NewAuthorError("malformed manifest", err).
			WithCode(condition.CodeMalformedExpression)
	}

	if err := validate.Struct(&m); err != nil {
		return nil, condition.NewAuthorError("invalid manifest", err).
			WithCode(condition.CodeMissingAttribute)
	}
	return &m, nil
}
