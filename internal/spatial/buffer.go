package spatial

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
	"github.com/shenikar/facility_gis/internal/models"
)

// bufferSegments - число сторон многоугольника, приближающего окружность
const bufferSegments = 64

// Buffer - круговая зона вокруг точки
type Buffer struct {
	Center   orb.Point
	RadiusKm float64
	Color    string
	// Facility заполняется при пакетной генерации по объектам
	Facility *models.Facility
}

// NewBuffer создает буфер заданного радиуса в километрах
func NewBuffer(center orb.Point, radiusKm float64) Buffer {
	return Buffer{
		Center:   center,
		RadiusKm: radiusKm,
		Color:    BufferColor(radiusKm),
	}
}

// RadiusMeters возвращает радиус в метрах (для отрисовки кругом)
func (b Buffer) RadiusMeters() float64 {
	return b.RadiusKm * 1000
}

// Polygon возвращает замкнутый многоугольник, приближающий буфер
func (b Buffer) Polygon() orb.Polygon {
	// geo считает по экваториальному радиусу, поэтому масштабируем дистанцию,
	// чтобы угловой радиус совпал с расчетом Distance
	meters := b.RadiusMeters() / meanRadiusScale

	ring := make(orb.Ring, 0, bufferSegments+1)
	for i := 0; i < bufferSegments; i++ {
		bearing := 360.0 * float64(i) / bufferSegments
		ring = append(ring, geo.PointAtBearingAndDistance(b.Center, bearing, meters))
	}
	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}

// Contains сообщает, попадает ли точка в многоугольник буфера
func (b Buffer) Contains(p orb.Point) bool {
	return planar.PolygonContains(b.Polygon(), p)
}

// BufferColor - фиксированная палитра радиусов для легенды
func BufferColor(radiusKm float64) string {
	switch {
	case radiusKm <= 0.5:
		return "#3B82F6"
	case radiusKm <= 1:
		return "#F59E0B"
	default:
		return "#10B981"
	}
}

// Buffers строит буферы для каждого объекта и каждого радиуса: ровно N×R штук,
// сначала по объектам, затем по радиусам. Перекрытия не убираются.
func Buffers(facilities []models.Facility, radii []float64) []Buffer {
	buffers := make([]Buffer, 0, len(facilities)*len(radii))
	for i := range facilities {
		f := facilities[i]
		for _, r := range radii {
			b := NewBuffer(f.Point(), r)
			b.Facility = &f
			buffers = append(buffers, b)
		}
	}
	return buffers
}

// Covered сообщает, попадает ли точка хотя бы в один буфер
func Covered(p orb.Point, buffers []Buffer) bool {
	for _, b := range buffers {
		if b.Contains(p) {
			return true
		}
	}
	return false
}
