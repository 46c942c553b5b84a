package v1

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FacilityRequest DTO для создания и обновления объекта
// @Description DTO для создания и обновления объекта
type FacilityRequest struct {
	Name      string   `json:"nama" validate:"required,max=255"`
	Type      string   `json:"jenis" validate:"required,max=100"`
	Category  string   `json:"kategori" validate:"required,category"`
	Address   string   `json:"alamat" validate:"max=500"`
	Authority string   `json:"pengelola" validate:"max=255"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// normalize убирает пробелы по краям текстовых полей до валидации
func (r *FacilityRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Type = strings.TrimSpace(r.Type)
	r.Category = strings.TrimSpace(r.Category)
	r.Address = strings.TrimSpace(r.Address)
	r.Authority = strings.TrimSpace(r.Authority)
}

// FacilityResponse DTO для ответа с информацией об объекте
// @Description DTO для ответа с информацией об объекте
type FacilityResponse struct {
	ID        *uuid.UUID `json:"id"`
	Key       string     `json:"key"`
	Name      string     `json:"nama"`
	Type      string     `json:"jenis"`
	Category  string     `json:"kategori"`
	Color     string     `json:"color"`
	Address   string     `json:"alamat"`
	Authority string     `json:"pengelola"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// PointRequest DTO с координатами точки
// @Description DTO с координатами точки
type PointRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// NearestRequest DTO для поиска ближайшего объекта
// @Description DTO для поиска ближайшего объекта
type NearestRequest struct {
	Latitude   *float64 `json:"latitude" validate:"required,latitude"`
	Longitude  *float64 `json:"longitude" validate:"required,longitude"`
	Categories []string `json:"categories,omitempty" validate:"omitempty,dive,category"`
}

// NearestResponse DTO с ближайшим объектом
// @Description DTO с ближайшим объектом. facility пустой, если кандидатов нет
type NearestResponse struct {
	Point         [2]float64        `json:"point"`
	Facility      *FacilityResponse `json:"facility"`
	DistanceKm    *float64          `json:"distance_km"`
	DistanceLabel string            `json:"distance_label,omitempty"`
}

// DistanceRequest DTO для расстояния между двумя точками
// @Description DTO для расстояния между двумя точками
type DistanceRequest struct {
	From PointRequest `json:"from"`
	To   PointRequest `json:"to"`
}

// DistanceResponse DTO с расстоянием
// @Description DTO с расстоянием
type DistanceResponse struct {
	DistanceKm    float64    `json:"distance_km"`
	DistanceLabel string     `json:"distance_label"`
	Midpoint      [2]float64 `json:"midpoint"`
}

// CoverageRequest DTO для проверки покрытия точки буферами
// @Description DTO для проверки покрытия точки буферами. Без radii берутся радиусы по умолчанию
type CoverageRequest struct {
	Latitude   *float64  `json:"latitude" validate:"required,latitude"`
	Longitude  *float64  `json:"longitude" validate:"required,longitude"`
	Radii      []float64 `json:"radii,omitempty" validate:"omitempty,dive,gt=0"`
	Categories []string  `json:"categories,omitempty" validate:"omitempty,dive,category"`
}

// CoverageHit DTO с буфером, покрывающим точку
// @Description DTO с буфером, покрывающим точку
type CoverageHit struct {
	FacilityKey  string  `json:"facility_key"`
	FacilityName string  `json:"nama"`
	RadiusKm     float64 `json:"radius_km"`
	DistanceKm   float64 `json:"distance_km"`
}

// CoverageResponse DTO с результатом проверки покрытия
// @Description DTO с результатом проверки покрытия
type CoverageResponse struct {
	Covered bool          `json:"covered"`
	Hits    []CoverageHit `json:"hits"`
}

// StatsResponse DTO со статистикой по категориям
// @Description DTO со статистикой по категориям
type StatsResponse struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"by_category"`
}

// ReloadResponse DTO с результатом перезагрузки коллекции
// @Description DTO с результатом перезагрузки коллекции
type ReloadResponse struct {
	Count int `json:"count"`
}

// LegendEntry DTO элемента легенды
// @Description DTO элемента легенды
type LegendEntry struct {
	Label    string   `json:"label"`
	Color    string   `json:"color"`
	RadiusKm *float64 `json:"radius_km,omitempty"`
}

// LegendResponse DTO легенды карты
// @Description DTO легенды карты
type LegendResponse struct {
	Categories []LegendEntry `json:"categories"`
	Buffers    []LegendEntry `json:"buffers"`
}

// SelectFacilityRequest DTO для выбора объекта в режиме измерения
// @Description DTO для выбора объекта в режиме измерения
type SelectFacilityRequest struct {
	Key string `json:"key" validate:"required"`
}

// ToggleCategoryRequest DTO для переключения категории
// @Description DTO для переключения категории
type ToggleCategoryRequest struct {
	Category string `json:"kategori" validate:"required"`
}

// ToggleRadiusRequest DTO для переключения радиуса буфера
// @Description DTO для переключения радиуса буфера
type ToggleRadiusRequest struct {
	RadiusKm *float64 `json:"radius_km" validate:"required,gt=0"`
}

// BuffersVisibilityRequest DTO для общего флага показа буферов
// @Description DTO для общего флага показа буферов
type BuffersVisibilityRequest struct {
	Shown *bool `json:"shown" validate:"required"`
}

// BufferResponse DTO буфера для отрисовки кругом
// @Description DTO буфера для отрисовки кругом
type BufferResponse struct {
	Center       [2]float64 `json:"center"`
	RadiusKm     float64    `json:"radius_km"`
	RadiusMeters float64    `json:"radius_meters"`
	Color        string     `json:"color"`
	FacilityKey  string     `json:"facility_key,omitempty"`
}

// MeasurementResponse DTO с расстоянием между выбранными объектами
// @Description DTO с расстоянием между выбранными объектами
type MeasurementResponse struct {
	From          *FacilityResponse `json:"from"`
	To            *FacilityResponse `json:"to"`
	DistanceKm    float64           `json:"distance_km"`
	DistanceLabel string            `json:"distance_label"`
	Midpoint      [2]float64        `json:"midpoint"`
}

// SessionResponse DTO со снимком состояния карты
// @Description DTO со снимком состояния карты
type SessionResponse struct {
	ID                 uuid.UUID            `json:"id"`
	Mode               string               `json:"mode"`
	Categories         []string             `json:"categories"`
	BufferCatalogue    []float64            `json:"buffer_catalogue"`
	EnabledRadii       []float64            `json:"enabled_radii"`
	BuffersShown       bool                 `json:"buffers_shown"`
	VisibleFacilities  []*FacilityResponse  `json:"visible_facilities"`
	Buffers            []*BufferResponse    `json:"buffers"`
	MeasurementTargets []*FacilityResponse  `json:"measurement_targets"`
	Measurement        *MeasurementResponse `json:"measurement"`
	Probe              *NearestResponse     `json:"probe"`
}

// ValidationErrorResponse DTO с ошибками по полям
// @Description DTO с ошибками по полям
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}
