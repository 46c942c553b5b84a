package mapstate

import (
	"github.com/paulmach/orb"
	"github.com/shenikar/facility_gis/internal/models"
	"github.com/shenikar/facility_gis/internal/spatial"
)

// ProbeResult - точка клика и ближайший к ней объект на момент клика
type ProbeResult struct {
	Point   orb.Point
	Nearest *spatial.NearestResult
}

// Probe - поиск ближайшего объекта по клику на карте
type Probe struct {
	result *ProbeResult
}

// Record запоминает точку и сразу ищет ближайший объект среди кандидатов.
// Если кандидатов нет, точка сохраняется без объекта.
func (p *Probe) Record(point orb.Point, candidates []models.Facility) {
	res := &ProbeResult{Point: point}
	if nearest, ok := spatial.Nearest(point, candidates); ok {
		res.Nearest = &nearest
	}
	p.result = res
}

// Clear возвращает пробу в пустое состояние
func (p *Probe) Clear() {
	p.result = nil
}

// Result возвращает текущий результат пробы, если он есть
func (p *Probe) Result() (ProbeResult, bool) {
	if p.result == nil {
		return ProbeResult{}, false
	}
	return *p.result, true
}
