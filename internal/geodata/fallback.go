// Package geodata загружает статические GeoJSON-файлы: резервный набор объектов и справочные слои.
package geodata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/facility_gis/internal/models"
	"github.com/sirupsen/logrus"
)

var ErrInvalidDocument = errors.New("invalid geojson document")

// FallbackSource читает объекты из статического GeoJSON-файла
type FallbackSource struct {
	path       string
	collection *schemaValidator
	feature    *schemaValidator
	logger     *logrus.Logger
}

// NewFallbackSource создает источник для файла по указанному пути
func NewFallbackSource(path string, logger *logrus.Logger) (*FallbackSource, error) {
	collection, err := newSchemaValidator(collectionSchema)
	if err != nil {
		return nil, err
	}
	feature, err := newSchemaValidator(facilityFeatureSchema)
	if err != nil {
		return nil, err
	}
	return &FallbackSource{path: path, collection: collection, feature: feature, logger: logger}, nil
}

// Load читает и проверяет файл. Файл читается при каждом вызове.
func (s *FallbackSource) Load(ctx context.Context) ([]*models.Facility, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fallback data %s: %w", s.path, err)
	}
	return s.Parse(data)
}

// Parse проверяет оболочку документа и переводит признаки в объекты.
// Негодные признаки пропускаются с предупреждением; ошибка возвращается,
// только если документ битый или в нем нет ни одного годного признака.
func (s *FallbackSource) Parse(data []byte) ([]*models.Facility, error) {
	if err := s.collection.Validate(data); err != nil {
		return nil, err
	}
	var doc struct {
		Features []json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	facilities := make([]*models.Facility, 0, len(doc.Features))
	for i, raw := range doc.Features {
		f, err := s.parseFeature(raw)
		if err != nil {
			s.logger.WithFields(logrus.Fields{
				"source":  s.path,
				"feature": i,
			}).WithError(err).Warn("Skipping invalid fallback feature")
			continue
		}
		facilities = append(facilities, f)
	}
	if len(doc.Features) > 0 && len(facilities) == 0 {
		return nil, fmt.Errorf("%w: none of %d features is valid", ErrInvalidDocument, len(doc.Features))
	}
	return facilities, nil
}

func (s *FallbackSource) parseFeature(raw json.RawMessage) (*models.Facility, error) {
	if err := s.feature.Validate(raw); err != nil {
		return nil, err
	}
	feature, err := geojson.UnmarshalFeature(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return FeatureToFacility(feature)
}

// FeatureToFacility переводит GeoJSON-признак в объект с проверкой типов
func FeatureToFacility(feature *geojson.Feature) (*models.Facility, error) {
	point, ok := feature.Geometry.(orb.Point)
	if !ok {
		return nil, fmt.Errorf("%w: geometry must be a Point", ErrInvalidDocument)
	}

	props := feature.Properties
	f := &models.Facility{
		Name:      stringProp(props, "nama"),
		Type:      stringProp(props, "jenis"),
		Category:  models.Category(stringProp(props, "kategori")),
		Address:   stringProp(props, "alamat"),
		Authority: stringProp(props, "pengelola"),
		Longitude: point.Lon(),
		Latitude:  point.Lat(),
	}
	if raw := stringProp(props, "id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: id %q is not a uuid", ErrInvalidDocument, raw)
		}
		f.ID = id
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// stringProp возвращает строковое свойство или пустую строку
func stringProp(props geojson.Properties, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

// FacilityToFeature переводит объект в GeoJSON-признак с полями бэкенда
func FacilityToFeature(f *models.Facility) *geojson.Feature {
	feature := geojson.NewFeature(f.Point())
	var id interface{}
	if f.HasID() {
		id = f.ID.String()
	}
	feature.Properties = geojson.Properties{
		"id":        id,
		"nama":      f.Name,
		"jenis":     f.Type,
		"kategori":  string(f.Category),
		"alamat":    f.Address,
		"pengelola": f.Authority,
	}
	return feature
}

// FacilitiesToCollection собирает коллекцию признаков в исходном порядке
func FacilitiesToCollection(facilities []models.Facility) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i := range facilities {
		fc.Append(FacilityToFeature(&facilities[i]))
	}
	return fc
}
