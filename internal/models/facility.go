package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Category - общая категория публичного объекта
type Category string

const (
	CategoryEducation Category = "Pendidikan"
	CategoryHealth    Category = "Kesehatan"
	CategoryWorship   Category = "Tempat Ibadah"
)

// Categories возвращает все известные категории в порядке отображения
func Categories() []Category {
	return []Category{CategoryEducation, CategoryHealth, CategoryWorship}
}

// Valid сообщает, входит ли категория в перечень
func (c Category) Valid() bool {
	switch c {
	case CategoryEducation, CategoryHealth, CategoryWorship:
		return true
	}
	return false
}

// Color возвращает цвет категории для маркеров и легенды
func (c Category) Color() string {
	switch c {
	case CategoryEducation:
		return "#3B82F6"
	case CategoryHealth:
		return "#EF4444"
	case CategoryWorship:
		return "#10B981"
	}
	return "#6B7280"
}

// Facility - публичный объект (школа, медпункт, место поклонения)
type Facility struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nama"`
	Type      string    `json:"jenis"`
	Category  Category  `json:"kategori"`
	Address   string    `json:"alamat"`
	Authority string    `json:"pengelola"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Point возвращает позицию объекта как [lon, lat]
func (f Facility) Point() orb.Point {
	return orb.Point{f.Longitude, f.Latitude}
}

// HasID сообщает, сохранен ли объект в хранилище
func (f Facility) HasID() bool {
	return f.ID != uuid.Nil
}

// Key - стабильный ключ идентичности объекта между перерисовками.
// Для записей без id (резервный GeoJSON) используется составной ключ.
func (f Facility) Key() string {
	if f.HasID() {
		return f.ID.String()
	}
	return fmt.Sprintf("%s|%s|%.6f,%.6f", f.Name, f.Category, f.Longitude, f.Latitude)
}
