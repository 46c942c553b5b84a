package mapstate

import (
	"github.com/paulmach/orb"
	"github.com/shenikar/facility_gis/internal/models"
	"github.com/shenikar/facility_gis/internal/spatial"
)

// Mode - взаимоисключающий режим взаимодействия с картой
type Mode string

const (
	ModeNormal      Mode = "normal"
	ModeMeasurement Mode = "measurement"
)

// State - состояние карты одного клиента. Изменяется только через Dispatch.
type State struct {
	measurement Measurement
	probe       Probe
	categories  CategoryFilter
	buffers     BufferFilter
}

// New создает состояние по умолчанию: все категории видимы, буферы показаны
func New(bufferCatalogue, enabledRadii []float64) *State {
	return &State{
		categories: NewCategoryFilter(models.Categories()...),
		buffers:    NewBufferFilter(bufferCatalogue, enabledRadii, true),
	}
}

// Mode возвращает текущий режим
func (s *State) Mode() Mode {
	if s.measurement.Active() {
		return ModeMeasurement
	}
	return ModeNormal
}

// Event - действие пользователя над картой
type Event interface {
	apply(s *State, facilities []models.Facility) error
}

// ToggleMeasurement включает или выключает режим измерения
type ToggleMeasurement struct{}

func (ToggleMeasurement) apply(s *State, _ []models.Facility) error {
	if s.measurement.Active() {
		s.measurement.Deactivate()
		return nil
	}
	s.measurement.Activate()
	s.probe.Clear()
	return nil
}

// SelectFacility - клик по маркеру объекта
type SelectFacility struct {
	Facility models.Facility
}

func (e SelectFacility) apply(s *State, _ []models.Facility) error {
	s.measurement.Select(e.Facility)
	return nil
}

// ClickMap - клик по карте в точке [lon, lat]
type ClickMap struct {
	Point orb.Point
}

func (e ClickMap) apply(s *State, facilities []models.Facility) error {
	if s.measurement.Active() {
		return nil
	}
	s.probe.Record(e.Point, s.categories.Apply(facilities))
	return nil
}

// DismissProbe убирает точку пробы
type DismissProbe struct{}

func (DismissProbe) apply(s *State, _ []models.Facility) error {
	s.probe.Clear()
	return nil
}

// ToggleCategory показывает или скрывает категорию
type ToggleCategory struct {
	Category models.Category
}

func (e ToggleCategory) apply(s *State, _ []models.Facility) error {
	return s.categories.Toggle(e.Category)
}

// ToggleBufferRadius включает или выключает радиус буфера
type ToggleBufferRadius struct {
	RadiusKm float64
}

func (e ToggleBufferRadius) apply(s *State, _ []models.Facility) error {
	return s.buffers.Toggle(e.RadiusKm)
}

// SetBuffersShown задает общий флаг показа буферов
type SetBuffersShown struct {
	Shown bool
}

func (e SetBuffersShown) apply(s *State, _ []models.Facility) error {
	s.buffers.SetShown(e.Shown)
	return nil
}

// Dispatch применяет событие. facilities - полная текущая коллекция.
func (s *State) Dispatch(e Event, facilities []models.Facility) error {
	s.measurement.Refresh(facilities)
	return e.apply(s, facilities)
}

// View - снимок состояния только для чтения
type View struct {
	Mode               Mode
	Categories         []models.Category
	BufferCatalogue    []float64
	EnabledRadii       []float64
	BuffersShown       bool
	VisibleFacilities  []models.Facility
	Buffers            []spatial.Buffer
	MeasurementTargets []models.Facility
	Measurement        *MeasurementResult
	Probe              *ProbeResult
}

// View собирает снимок для отрисовки из полной коллекции
func (s *State) View(facilities []models.Facility) View {
	visible := s.categories.Apply(facilities)
	measurement := s.measurement
	measurement.Refresh(facilities)
	v := View{
		Mode:               s.Mode(),
		Categories:         s.categories.Selected(),
		BufferCatalogue:    s.buffers.Catalogue(),
		EnabledRadii:       s.buffers.Enabled(),
		BuffersShown:       s.buffers.Shown(),
		VisibleFacilities:  visible,
		Buffers:            spatial.Buffers(visible, s.buffers.Visible()),
		MeasurementTargets: measurement.Selected(),
	}
	if res, ok := measurement.Result(); ok {
		v.Measurement = &res
	}
	if res, ok := s.probe.Result(); ok && v.Mode == ModeNormal {
		v.Probe = &res
	}
	return v
}
