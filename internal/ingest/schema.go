package ingest

import (
	"embed"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/studywing/studywing/models"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	schemaOnce sync.Once
	schemas    map[models.ContentKind]*gojsonschema.Schema
	schemaErr  error
)

// schemaFor returns the compiled payload schema for a content kind. Schemas
// are embedded and compiled once on first use.
func schemaFor(kind models.ContentKind) (*gojsonschema.Schema, error) {
	schemaOnce.Do(compileSchemas)
	if schemaErr != nil {
		return nil, schemaErr
	}
	s, ok := schemas[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported kind %q", ErrInvalidPayload, kind)
	}
	return s, nil
}

func compileSchemas() {
	all := models.AllContentKinds()
	schemas = make(map[models.ContentKind]*gojsonschema.Schema, len(all))
	for _, kind := range all {
		raw, err := schemaFS.ReadFile("schemas/" + string(kind) + ".json")
		if err != nil {
			schemaErr = fmt.Errorf("load schema for %s: %w", kind, err)
			return
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			schemaErr = fmt.Errorf("compile schema for %s: %w", kind, err)
			return
		}
		schemas[kind] = schema
	}
}

// validatePayload checks the raw document against the kind's schema.
func validatePayload(kind models.ContentKind, data []byte) error {
	schema, err := schemaFor(kind)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validate payload: %w", err)
	}
	if result.Valid() {
		return nil
	}

	// Cap the listed violations so a garbage document can't flood the output.
	errs := result.Errors()
	msg := ""
	for i, desc := range errs {
		if i == 3 {
			msg += fmt.Sprintf("; and %d more", len(errs)-i)
			break
		}
		if i > 0 {
			msg += "; "
		}
		msg += desc.String()
	}
	return fmt.Errorf("%w: %s", ErrInvalidPayload, msg)
}
