package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/facility_gis/internal/config"
	"github.com/shenikar/facility_gis/internal/geodata"
	"github.com/shenikar/facility_gis/internal/mapstate"
	"github.com/shenikar/facility_gis/internal/models"
	"github.com/shenikar/facility_gis/internal/service"
	"github.com/sirupsen/logrus"
)

// LayerSource отдает справочные слои по имени
type LayerSource interface {
	Get(name string) (*geodata.Layer, bool)
}

type Handler struct {
	facilityService service.FacilityService
	sessionService  service.SessionService
	layers          LayerSource
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(facilityService service.FacilityService, sessionService service.SessionService, layers LayerSource, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		facilityService: facilityService,
		sessionService:  sessionService,
		layers:          layers,
		logger:          logger,
		validate:        newValidator(),
		cfg:             cfg,
	}
}

// newValidator настраивает валидатор: имена полей берутся из json тегов,
// тег category проверяет известные категории
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.Category(fl.Field().String()).Valid()
	})
	return v
}

// bindJSON разбирает тело запроса и проверяет его. При ошибке ответ уже отправлен.
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			c.JSON(http.StatusBadRequest, ValidationErrorResponse{
				Error:  "validation failed",
				Fields: map[string]string{typeErr.Field: typeMessage(typeErr.Type)},
			})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if n, ok := input.(interface{ normalize() }); ok {
		n.normalize()
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: validationFields(err),
		})
		return false
	}
	return true
}

// validationFields раскладывает ошибки валидатора по полям запроса
func validationFields(err error) map[string]string {
	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["_"] = err.Error()
		return fields
	}
	for _, fe := range verrs {
		field := fe.Namespace()
		// Первый сегмент - имя Go-структуры
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		fields[field] = validationMessage(fe)
	}
	return fields
}

// typeMessage - сообщение для значения неверного JSON-типа
func typeMessage(t reflect.Type) string {
	if t == nil {
		return "has invalid type"
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be a number"
	case reflect.Bool:
		return "must be a boolean"
	case reflect.String:
		return "must be a string"
	}
	return "has invalid type"
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "latitude":
		return "must be a number between -90 and 90"
	case "longitude":
		return "must be a number between -180 and 180"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "category":
		names := make([]string, 0, 3)
		for _, c := range models.Categories() {
			names = append(names, string(c))
		}
		return "must be one of: " + strings.Join(names, ", ")
	}
	return "is invalid"
}

// respondError отображает ошибки сервисов в HTTP статусы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrFacilityNotFound):
		log.WithError(err).Warn("Facility not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
	case errors.Is(err, service.ErrSessionNotFound):
		log.WithError(err).Warn("Session not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, mapstate.ErrUnknownCategory), errors.Is(err, mapstate.ErrUnknownRadius):
		log.WithError(err).Warn("Rejected map event")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrCatalogueUnavailable):
		log.WithError(err).Error("Facility catalogue unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "facility data could not be loaded, use POST /facilities/reload to retry"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseCategories разбирает значения параметра category
func parseCategories(values []string) ([]models.Category, error) {
	out := make([]models.Category, 0, len(values))
	for _, v := range values {
		c := models.Category(strings.TrimSpace(v))
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %q", mapstate.ErrUnknownCategory, v)
		}
		out = append(out, c)
	}
	return out, nil
}

// filterByCategories оставляет объекты указанных категорий; пустой список - все
func filterByCategories(facilities []models.Facility, categories []models.Category) []models.Facility {
	if len(categories) == 0 {
		return facilities
	}
	return mapstate.NewCategoryFilter(categories...).Apply(facilities)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
