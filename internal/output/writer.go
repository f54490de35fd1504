// Package output serializes enriched profiles to a schema-validated JSON
// document.
package output

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/xeipuuv/gojsonschema"

	"github.com/hiravi/volt-parser/internal/model"
)

//go:embed schema.json
var profileSchema string

// ValidationError means the final document does not conform to the expected
// record shape. It is fatal to the batch write and distinct from network
// errors.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("output validation failed: %s", strings.Join(e.Problems, "; "))
}

// Document marshals profiles to an indented JSON array after validating it
// against the embedded schema. A nil or empty slice produces "[]".
func Document(profiles []model.CompanyProfile) ([]byte, error) {
	if profiles == nil {
		profiles = []model.CompanyProfile{}
	}

	doc, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "output: marshal profiles")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(profileSchema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return nil, eris.Wrap(err, "output: run schema validation")
	}
	if !result.Valid() {
		verr := &ValidationError{}
		for _, desc := range result.Errors() {
			verr.Problems = append(verr.Problems, desc.String())
		}
		return nil, verr
	}

	return doc, nil
}

// Write validates and writes profiles to path.
func Write(profiles []model.CompanyProfile, path string) error {
	doc, err := Document(profiles)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return eris.Wrapf(err, "output: write %s", path)
	}
	return nil
}
