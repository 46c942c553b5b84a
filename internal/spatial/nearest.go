package spatial

import (
	"github.com/paulmach/orb"
	"github.com/shenikar/facility_gis/internal/models"
)

// NearestResult - ближайший объект и расстояние до него в километрах
type NearestResult struct {
	Facility   models.Facility
	DistanceKm float64
}

// Nearest находит ближайший к точке объект линейным перебором.
// При равных расстояниях побеждает первый встреченный. Пустой список - ok=false.
func Nearest(query orb.Point, facilities []models.Facility) (NearestResult, bool) {
	var (
		best  NearestResult
		found bool
	)
	for _, f := range facilities {
		d := Distance(query, f.Point())
		if !found || d < best.DistanceKm {
			best = NearestResult{Facility: f, DistanceKm: d}
			found = true
		}
	}
	return best, found
}
