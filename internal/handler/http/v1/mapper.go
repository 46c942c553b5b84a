package v1

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/facility_gis/internal/mapstate"
	"github.com/shenikar/facility_gis/internal/models"
	"github.com/shenikar/facility_gis/internal/spatial"
)

// DTOToFacilityModel преобразует DTO создания/обновления в доменную модель.
// Координаты к этому моменту уже проверены валидатором.
func DTOToFacilityModel(dto FacilityRequest) *models.Facility {
	return &models.Facility{
		Name:      dto.Name,
		Type:      dto.Type,
		Category:  models.Category(dto.Category),
		Address:   dto.Address,
		Authority: dto.Authority,
		Latitude:  *dto.Latitude,
		Longitude: *dto.Longitude,
	}
}

// ModelToFacilityResponse преобразует доменную модель в DTO для ответа
func ModelToFacilityResponse(model *models.Facility) *FacilityResponse {
	resp := &FacilityResponse{
		Key:       model.Key(),
		Name:      model.Name,
		Type:      model.Type,
		Category:  string(model.Category),
		Color:     model.Category.Color(),
		Address:   model.Address,
		Authority: model.Authority,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
	}
	if model.HasID() {
		id := model.ID
		resp.ID = &id
	}
	if !model.CreatedAt.IsZero() {
		createdAt, updatedAt := model.CreatedAt, model.UpdatedAt
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// ModelsToFacilityResponses преобразует слайс моделей в слайс DTO
func ModelsToFacilityResponses(facilities []models.Facility) []*FacilityResponse {
	responses := make([]*FacilityResponse, len(facilities))
	for i := range facilities {
		responses[i] = ModelToFacilityResponse(&facilities[i])
	}
	return responses
}

func pointToArray(p orb.Point) [2]float64 {
	return [2]float64{p.Lon(), p.Lat()}
}

// NearestToResponse собирает ответ пробы. nearest == nil, если кандидатов не было.
func NearestToResponse(point orb.Point, nearest *spatial.NearestResult) *NearestResponse {
	resp := &NearestResponse{Point: pointToArray(point)}
	if nearest != nil {
		d := nearest.DistanceKm
		resp.Facility = ModelToFacilityResponse(&nearest.Facility)
		resp.DistanceKm = &d
		resp.DistanceLabel = spatial.FormatDistance(d)
	}
	return resp
}

// BufferToResponse преобразует буфер в DTO для отрисовки кругом
func BufferToResponse(b spatial.Buffer) *BufferResponse {
	resp := &BufferResponse{
		Center:       pointToArray(b.Center),
		RadiusKm:     b.RadiusKm,
		RadiusMeters: b.RadiusMeters(),
		Color:        b.Color,
	}
	if b.Facility != nil {
		resp.FacilityKey = b.Facility.Key()
	}
	return resp
}

// BuffersToCollection строит GeoJSON с многоугольниками буферов
func BuffersToCollection(buffers []spatial.Buffer) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, b := range buffers {
		feature := geojson.NewFeature(b.Polygon())
		feature.Properties["radius_km"] = b.RadiusKm
		feature.Properties["color"] = b.Color
		if b.Facility != nil {
			feature.Properties["facility_key"] = b.Facility.Key()
			feature.Properties["nama"] = b.Facility.Name
		}
		fc.Append(feature)
	}
	return fc
}

// ViewToSessionResponse преобразует снимок состояния карты в DTO
func ViewToSessionResponse(id uuid.UUID, view mapstate.View) *SessionResponse {
	resp := &SessionResponse{
		ID:                 id,
		Mode:               string(view.Mode),
		Categories:         make([]string, len(view.Categories)),
		BufferCatalogue:    view.BufferCatalogue,
		EnabledRadii:       view.EnabledRadii,
		BuffersShown:       view.BuffersShown,
		VisibleFacilities:  ModelsToFacilityResponses(view.VisibleFacilities),
		Buffers:            make([]*BufferResponse, len(view.Buffers)),
		MeasurementTargets: ModelsToFacilityResponses(view.MeasurementTargets),
	}
	for i, c := range view.Categories {
		resp.Categories[i] = string(c)
	}
	for i, b := range view.Buffers {
		resp.Buffers[i] = BufferToResponse(b)
	}
	if m := view.Measurement; m != nil {
		resp.Measurement = &MeasurementResponse{
			From:          ModelToFacilityResponse(&m.From),
			To:            ModelToFacilityResponse(&m.To),
			DistanceKm:    m.DistanceKm,
			DistanceLabel: spatial.FormatDistance(m.DistanceKm),
			Midpoint:      pointToArray(m.Midpoint),
		}
	}
	if p := view.Probe; p != nil {
		resp.Probe = NearestToResponse(p.Point, p.Nearest)
	}
	return resp
}

// LegendFor собирает легенду из палитры категорий и каталога радиусов
func LegendFor(radii []float64) *LegendResponse {
	resp := &LegendResponse{
		Categories: make([]LegendEntry, 0, len(models.Categories())),
		Buffers:    make([]LegendEntry, 0, len(radii)),
	}
	for _, c := range models.Categories() {
		resp.Categories = append(resp.Categories, LegendEntry{Label: string(c), Color: c.Color()})
	}
	for _, r := range radii {
		resp.Buffers = append(resp.Buffers, LegendEntry{
			Label:    fmt.Sprintf("Radius %s", spatial.FormatDistance(r)),
			Color:    spatial.BufferColor(r),
			RadiusKm: &r,
		})
	}
	return resp
}
