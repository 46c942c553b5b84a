// Package spatial содержит пространственный анализ: расстояния, поиск ближайшего объекта и буферы.
package spatial

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// EarthRadiusKm - средний радиус Земли в километрах
const EarthRadiusKm = 6371.0088

// orb считает по экваториальному радиусу в метрах, переводим на средний радиус
const meanRadiusScale = EarthRadiusKm * 1000 / orb.EarthRadius

// Distance возвращает расстояние по большому кругу между двумя точкам [lon, lat] в километрах
func Distance(a, b orb.Point) float64 {
	return geo.DistanceHaversine(a, b) * meanRadiusScale / 1000
}

// Midpoint возвращает середину отрезка между двумя точками по большому кругу
func Midpoint(a, b orb.Point) orb.Point {
	return geo.Midpoint(a, b)
}

// FormatDistance форматирует расстояние для подписи: метры до 1 км, иначе километры
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.2f km", km)
}
