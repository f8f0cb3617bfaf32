// Package schema provides JSON Schemas for the documents returned
// by the echo server.
package schema

import (
	_ "embed"
	"encoding/json"
	"errors"

	"github.com/xeipuuv/gojsonschema"
)

type SchemaType int

const (
	SchemaTypeEcho SchemaType = iota
	SchemaTypeHealth
	SchemaTypeError
)

func (t SchemaType) String() string {
	switch t {
	case SchemaTypeEcho:
		return "echo"
	case SchemaTypeHealth:
		return "health"
	case SchemaTypeError:
		return "error"
	default:
		return "unknown"
	}
}

var ErrSchemaNotFound = errors.New("schema not found")

type Schema struct {
	schemas map[SchemaType]*gojsonschema.Schema
}

func (s *Schema) Get(schemaType SchemaType) (*gojsonschema.Schema, error) {
	schema, ok := s.schemas[schemaType]
	if !ok {
		return nil, ErrSchemaNotFound
	}

	return schema, nil
}

// Validate validates the raw JSON document against the schema of
// the given type.
func (s *Schema) Validate(schemaType SchemaType, data []byte) (*gojsonschema.Result, error) {
	schema, err := s.Get(schemaType)
	if err != nil {
		return nil, err
	}

	return schema.Validate(gojsonschema.NewBytesLoader(data))
}

//go:embed echo-response.json
var echoResponse json.RawMessage

//go:embed health-response.json
var healthResponse json.RawMessage

//go:embed error-response.json
var errorResponse json.RawMessage

// NewResponseSchema compiles the response schemas.
func NewResponseSchema() (*Schema, error) {
	sources := map[SchemaType]json.RawMessage{
		SchemaTypeEcho:   echoResponse,
		SchemaTypeHealth: healthResponse,
		SchemaTypeError:  errorResponse,
	}

	schemas := make(map[SchemaType]*gojsonschema.Schema, len(sources))
	for schemaType, source := range sources {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(source))
		if err != nil {
			return nil, err
		}
		schemas[schemaType] = schema
	}

	return &Schema{schemas: schemas}, nil
}
