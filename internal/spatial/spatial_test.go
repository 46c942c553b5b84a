package spatial

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/shenikar/facility_gis/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// haversineKm - эталонный расчет для сверки
func haversineKm(a, b orb.Point) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := rad(b.Lat() - a.Lat())
	dLon := rad(b.Lon() - a.Lon())
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat()))*math.Cos(rad(b.Lat()))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func facility(name string, lon, lat float64, c models.Category) models.Facility {
	return models.Facility{Name: name, Type: "test", Category: c, Longitude: lon, Latitude: lat}
}

func TestDistance_Properties(t *testing.T) {
	points := []orb.Point{
		{110.70, -6.754},
		{110.71, -6.760},
		{0, 0},
		{-73.9857, 40.7484},
		{179.9, -89.5},
	}
	for _, a := range points {
		assert.Equal(t, 0.0, Distance(a, a))
		for _, b := range points {
			d := Distance(a, b)
			assert.GreaterOrEqual(t, d, 0.0)
			assert.InDelta(t, d, Distance(b, a), 1e-9)
			assert.InDelta(t, haversineKm(a, b), d, 1e-6)
		}
	}
}

func TestDistance_KnownValue(t *testing.T) {
	// Один градус по экватору на среднем радиусе
	d := Distance(orb.Point{0, 0}, orb.Point{1, 0})
	assert.InDelta(t, 111.195, d, 0.001)
}

func TestNearest_ExampleScenario(t *testing.T) {
	a := facility("A", 110.70, -6.754, models.CategoryEducation)
	b := facility("B", 110.71, -6.760, models.CategoryHealth)
	query := orb.Point{110.705, -6.757}

	res, ok := Nearest(query, []models.Facility{a, b})
	require.True(t, ok)

	da, db := haversineKm(query, a.Point()), haversineKm(query, b.Point())
	expected, expectedDist := a, da
	if db < da {
		expected, expectedDist = b, db
	}
	assert.Equal(t, expected.Name, res.Facility.Name)
	assert.InDelta(t, expectedDist, res.DistanceKm, 1e-3)
	assert.Equal(t, "B", res.Facility.Name)
	assert.InDelta(t, 0.645, res.DistanceKm, 0.005)
}

func TestNearest_NoCandidateStrictlyCloser(t *testing.T) {
	facilities := []models.Facility{
		facility("SD 1", 110.701, -6.751, models.CategoryEducation),
		facility("Puskesmas", 110.712, -6.749, models.CategoryHealth),
		facility("Masjid", 110.695, -6.765, models.CategoryWorship),
		facility("MI", 110.706, -6.758, models.CategoryEducation),
	}
	queries := []orb.Point{{110.70, -6.75}, {110.71, -6.76}, {110.69, -6.77}, {110.72, -6.74}}

	for _, q := range queries {
		res, ok := Nearest(q, facilities)
		require.True(t, ok)
		for _, f := range facilities {
			assert.LessOrEqual(t, res.DistanceKm, Distance(q, f.Point()))
		}
	}
}

func TestNearest_TieFirstWins(t *testing.T) {
	first := facility("first", 110.70, -6.75, models.CategoryEducation)
	second := facility("second", 110.70, -6.75, models.CategoryHealth)

	res, ok := Nearest(orb.Point{110.71, -6.75}, []models.Facility{first, second})
	require.True(t, ok)
	assert.Equal(t, "first", res.Facility.Name)
}

func TestNearest_Empty(t *testing.T) {
	res, ok := Nearest(orb.Point{110.7, -6.75}, nil)
	assert.False(t, ok)
	assert.Equal(t, NearestResult{}, res)
}

func TestBufferPolygon_VerticesOnRadius(t *testing.T) {
	center := orb.Point{110.70, -6.754}
	b := NewBuffer(center, 0.5)

	poly := b.Polygon()
	require.Len(t, poly, 1)
	ring := poly[0]
	require.Len(t, ring, bufferSegments+1)
	assert.True(t, ring.Closed())
	for _, p := range ring {
		assert.InDelta(t, 0.5, Distance(center, p), 1e-6)
	}
	assert.Equal(t, 500.0, b.RadiusMeters())
}

func TestBuffer_Contains(t *testing.T) {
	center := orb.Point{110.70, -6.754}
	b := NewBuffer(center, 1)

	assert.True(t, b.Contains(center))
	assert.True(t, b.Contains(orb.Point{110.704, -6.754}))
	assert.False(t, b.Contains(orb.Point{110.72, -6.754}))

	assert.True(t, Covered(orb.Point{110.704, -6.754}, []Buffer{NewBuffer(orb.Point{0, 0}, 1), b}))
	assert.False(t, Covered(orb.Point{110.72, -6.754}, []Buffer{b}))
	assert.False(t, Covered(center, nil))
}

func TestBufferColor(t *testing.T) {
	assert.Equal(t, "#3B82F6", BufferColor(0.5))
	assert.Equal(t, "#F59E0B", BufferColor(1))
	assert.Equal(t, "#10B981", BufferColor(2))
}

func TestBuffers_NTimesR(t *testing.T) {
	facilities := []models.Facility{
		facility("A", 110.70, -6.754, models.CategoryEducation),
		facility("B", 110.71, -6.760, models.CategoryHealth),
		facility("C", 110.72, -6.770, models.CategoryWorship),
	}
	radii := []float64{0.5, 1}

	buffers := Buffers(facilities, radii)
	require.Len(t, buffers, len(facilities)*len(radii))
	assert.Equal(t, "A", buffers[0].Facility.Name)
	assert.Equal(t, 0.5, buffers[0].RadiusKm)
	assert.Equal(t, "A", buffers[1].Facility.Name)
	assert.Equal(t, 1.0, buffers[1].RadiusKm)
	assert.Equal(t, "C", buffers[5].Facility.Name)

	assert.Empty(t, Buffers(nil, radii))
	assert.Empty(t, Buffers(facilities, nil))
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "650 m", FormatDistance(0.6504))
	assert.Equal(t, "0 m", FormatDistance(0))
	assert.Equal(t, "1.00 km", FormatDistance(1))
	assert.Equal(t, "2.35 km", FormatDistance(2.349))
}
