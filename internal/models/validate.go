package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidFacility = errors.New("invalid facility")

// Validate проверяет обязательные поля и диапазоны координат записи,
// пришедшей из внешнего источника
func (f Facility) Validate() error {
	var problems []string
	if strings.TrimSpace(f.Name) == "" {
		problems = append(problems, "nama is required")
	}
	if strings.TrimSpace(f.Type) == "" {
		problems = append(problems, "jenis is required")
	}
	if !f.Category.Valid() {
		problems = append(problems, fmt.Sprintf("kategori %q is unknown", f.Category))
	}
	if math.IsNaN(f.Latitude) || f.Latitude < -90 || f.Latitude > 90 {
		problems = append(problems, "latitude must be between -90 and 90")
	}
	if math.IsNaN(f.Longitude) || f.Longitude < -180 || f.Longitude > 180 {
		problems = append(problems, "longitude must be between -180 and 180")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w %q: %s", ErrInvalidFacility, f.Name, strings.Join(problems, "; "))
	}
	return nil
}
