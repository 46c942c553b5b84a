package geodata

import (
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
)

// Имена справочных слоев
const (
	LayerBoundary = "boundary"
	LayerRoads    = "roads"
)

// Layer - справочный слой, отдаваемый клиенту без изменений
type Layer struct {
	Name         string
	Raw          []byte
	FeatureCount int
}

// ReferenceLayers - слои, загруженные один раз при старте
type ReferenceLayers struct {
	layers map[string]*Layer
}

// LoadReferenceLayers читает файлы слоев. paths - имя слоя -> путь к файлу.
func LoadReferenceLayers(paths map[string]string) (*ReferenceLayers, error) {
	v, err := newSchemaValidator(collectionSchema)
	if err != nil {
		return nil, err
	}

	rl := &ReferenceLayers{layers: make(map[string]*Layer, len(paths))}
	for name, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read layer %s from %s: %w", name, path, err)
		}
		layer, err := parseLayer(v, name, data)
		if err != nil {
			return nil, err
		}
		rl.layers[name] = layer
	}
	return rl, nil
}

func parseLayer(v *schemaValidator, name string, data []byte) (*Layer, error) {
	if err := v.Validate(data); err != nil {
		return nil, fmt.Errorf("layer %s: %w", name, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("layer %s: %w: %v", name, ErrInvalidDocument, err)
	}
	return &Layer{Name: name, Raw: data, FeatureCount: len(fc.Features)}, nil
}

// Get возвращает слой по имени
func (rl *ReferenceLayers) Get(name string) (*Layer, bool) {
	if rl == nil {
		return nil, false
	}
	l, ok := rl.layers[name]
	return l, ok
}
