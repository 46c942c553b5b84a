package mapstate

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shenikar/facility_gis/internal/models"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownRadius   = errors.New("radius is not in the buffer catalogue")
)

// CategoryFilter - набор видимых категорий
type CategoryFilter struct {
	selected map[models.Category]bool
}

// NewCategoryFilter создает фильтр с указанными категориями
func NewCategoryFilter(categories ...models.Category) CategoryFilter {
	f := CategoryFilter{selected: make(map[models.Category]bool, len(categories))}
	for _, c := range categories {
		f.selected[c] = true
	}
	return f
}

// Toggle добавляет или убирает категорию. Пустой набор допустим.
func (f *CategoryFilter) Toggle(c models.Category) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	if f.selected == nil {
		f.selected = make(map[models.Category]bool)
	}
	if f.selected[c] {
		delete(f.selected, c)
	} else {
		f.selected[c] = true
	}
	return nil
}

// Contains сообщает, видима ли категория
func (f CategoryFilter) Contains(c models.Category) bool {
	return f.selected[c]
}

// Selected возвращает выбранные категории в порядке отображения
func (f CategoryFilter) Selected() []models.Category {
	out := make([]models.Category, 0, len(f.selected))
	for _, c := range models.Categories() {
		if f.selected[c] {
			out = append(out, c)
		}
	}
	return out
}

// Apply возвращает видимые объекты, не изменяя исходную коллекцию
func (f CategoryFilter) Apply(facilities []models.Facility) []models.Facility {
	visible := make([]models.Facility, 0, len(facilities))
	for _, fac := range facilities {
		if f.selected[fac.Category] {
			visible = append(visible, fac)
		}
	}
	return visible
}

// BufferFilter - включенные радиусы буферов и общий флаг показа
type BufferFilter struct {
	catalogue []float64
	enabled   map[float64]bool
	shown     bool
}

// NewBufferFilter создает фильтр по каталогу радиусов с включенными радиусами
func NewBufferFilter(catalogue, enabled []float64, shown bool) BufferFilter {
	f := BufferFilter{
		catalogue: append([]float64(nil), catalogue...),
		enabled:   make(map[float64]bool, len(enabled)),
		shown:     shown,
	}
	sort.Float64s(f.catalogue)
	for _, r := range enabled {
		if f.inCatalogue(r) {
			f.enabled[r] = true
		}
	}
	return f
}

func (f BufferFilter) inCatalogue(r float64) bool {
	for _, c := range f.catalogue {
		if c == r {
			return true
		}
	}
	return false
}

// Toggle включает или выключает радиус из каталога
func (f *BufferFilter) Toggle(r float64) error {
	if !f.inCatalogue(r) {
		return fmt.Errorf("%w: %g", ErrUnknownRadius, r)
	}
	if f.enabled == nil {
		f.enabled = make(map[float64]bool)
	}
	if f.enabled[r] {
		delete(f.enabled, r)
	} else {
		f.enabled[r] = true
	}
	return nil
}

// SetShown задает общий флаг показа буферов
func (f *BufferFilter) SetShown(shown bool) {
	f.shown = shown
}

// Shown сообщает, показываются ли буферы
func (f BufferFilter) Shown() bool {
	return f.shown
}

// Catalogue возвращает каталог радиусов по возрастанию
func (f BufferFilter) Catalogue() []float64 {
	return append([]float64(nil), f.catalogue...)
}

// Enabled возвращает включенные радиусы по возрастанию
func (f BufferFilter) Enabled() []float64 {
	out := make([]float64, 0, len(f.enabled))
	for _, r := range f.catalogue {
		if f.enabled[r] {
			out = append(out, r)
		}
	}
	return out
}

// Visible возвращает радиусы, которые нужно отрисовать: пусто, если буферы скрыты
func (f BufferFilter) Visible() []float64 {
	if !f.shown {
		return nil
	}
	return f.Enabled()
}

// CountByCategory считает объекты по категориям по всей коллекции
func CountByCategory(facilities []models.Facility) map[models.Category]int {
	counts := make(map[models.Category]int, len(models.Categories()))
	for _, c := range models.Categories() {
		counts[c] = 0
	}
	for _, f := range facilities {
		counts[f.Category]++
	}
	return counts
}

// TableFilter - поиск и фильтр по категории для таблицы администратора
type TableFilter struct {
	Search   string
	Category models.Category // пусто - все категории
}

// Apply возвращает объекты, у которых название, адрес или тип содержат строку поиска
func (t TableFilter) Apply(facilities []models.Facility) []models.Facility {
	term := strings.ToLower(strings.TrimSpace(t.Search))
	out := make([]models.Facility, 0, len(facilities))
	for _, f := range facilities {
		if t.Category != "" && f.Category != t.Category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(f.Name), term) &&
			!strings.Contains(strings.ToLower(f.Address), term) &&
			!strings.Contains(strings.ToLower(f.Type), term) {
			continue
		}
		out = append(out, f)
	}
	return out
}
