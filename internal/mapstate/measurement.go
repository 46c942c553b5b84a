// Package mapstate хранит состояние карты: режимы, выбор объектов, пробу и фильтры.
// Все переходы синхронны и вызываются дискретными событиями.
package mapstate

import (
	"github.com/paulmach/orb"
	"github.com/shenikar/facility_gis/internal/models"
	"github.com/shenikar/facility_gis/internal/spatial"
)

// MaxMeasured - сколько объектов участвует в измерении
const MaxMeasured = 2

// Measurement - режим измерения расстояния между двумя объектами
type Measurement struct {
	active   bool
	selected []models.Facility
}

// Active сообщает, включен ли режим измерения
func (m *Measurement) Active() bool {
	return m.active
}

// Activate включает режим с пустым выбором
func (m *Measurement) Activate() {
	m.active = true
	m.selected = nil
}

// Deactivate выключает режим и сбрасывает выбор
func (m *Measurement) Deactivate() {
	m.active = false
	m.selected = nil
}

// Select обрабатывает клик по объекту.
// Повторный выбор снимает объект, третий новый вытесняет самый старый.
func (m *Measurement) Select(f models.Facility) {
	if !m.active {
		return
	}

	key := f.Key()
	for i, s := range m.selected {
		if s.Key() == key {
			m.selected = append(m.selected[:i:i], m.selected[i+1:]...)
			return
		}
	}

	if len(m.selected) < MaxMeasured {
		m.selected = append(m.selected, f)
		return
	}
	m.selected = []models.Facility{m.selected[1], f}
}

// Refresh заменяет выбранные объекты их текущими версиями из коллекции.
// Объекты, которых в коллекции больше нет, снимаются с выбора.
func (m *Measurement) Refresh(facilities []models.Facility) {
	if len(m.selected) == 0 {
		return
	}
	byKey := make(map[string]models.Facility, len(facilities))
	for _, f := range facilities {
		byKey[f.Key()] = f
	}
	kept := make([]models.Facility, 0, len(m.selected))
	for _, s := range m.selected {
		if current, ok := byKey[s.Key()]; ok {
			kept = append(kept, current)
		}
	}
	m.selected = kept
}

// Selected возвращает копию текущего выбора в порядке выбора
func (m *Measurement) Selected() []models.Facility {
	out := make([]models.Facility, len(m.selected))
	copy(out, m.selected)
	return out
}

// MeasurementResult - расстояние между двумя выбранными объектами
type MeasurementResult struct {
	From       models.Facility
	To         models.Facility
	DistanceKm float64
	Midpoint   orb.Point
}

// Result вычисляет расстояние, только когда выбрано ровно два объекта.
// Значение не кэшируется.
func (m *Measurement) Result() (MeasurementResult, bool) {
	if len(m.selected) != MaxMeasured {
		return MeasurementResult{}, false
	}
	from, to := m.selected[0], m.selected[1]
	return MeasurementResult{
		From:       from,
		To:         to,
		DistanceKm: spatial.Distance(from.Point(), to.Point()),
		Midpoint:   spatial.Midpoint(from.Point(), to.Point()),
	}, true
}
