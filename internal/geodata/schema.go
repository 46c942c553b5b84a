package geodata

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// collectionSchema - оболочка документа: FeatureCollection с массивом признаков.
// Признаки внутри проверяются отдельно.
const collectionSchema = `{
  "type": "object",
  "required": ["type", "features"],
  "properties": {
    "type": {"const": "FeatureCollection"},
    "features": {"type": "array"}
  }
}`

// facilityFeatureSchema описывает один признак резервного файла объектов
const facilityFeatureSchema = `{
  "type": "object",
  "required": ["type", "properties", "geometry"],
  "properties": {
    "type": {"const": "Feature"},
    "properties": {
      "type": "object",
      "required": ["nama", "jenis", "kategori"],
      "properties": {
        "id": {"type": ["string", "null"]},
        "nama": {"type": "string", "minLength": 1},
        "jenis": {"type": "string", "minLength": 1},
        "kategori": {"enum": ["Pendidikan", "Kesehatan", "Tempat Ibadah"]},
        "alamat": {"type": ["string", "null"]},
        "pengelola": {"type": ["string", "null"]}
      }
    },
    "geometry": {
      "type": "object",
      "required": ["type", "coordinates"],
      "properties": {
        "type": {"const": "Point"},
        "coordinates": {
          "type": "array",
          "minItems": 2,
          "items": [
            {"type": "number", "minimum": -180, "maximum": 180},
            {"type": "number", "minimum": -90, "maximum": 90}
          ]
        }
      }
    }
  }
}`

// schemaValidator проверяет JSON-документ по схеме
type schemaValidator struct {
	schema *gojsonschema.Schema
}

func newSchemaValidator(schema string) (*schemaValidator, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &schemaValidator{schema: s}, nil
}

// Validate проверяет документ и собирает все ошибки в одну
func (v *schemaValidator) Validate(data []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(errs, "; "))
	}
	return nil
}
