package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/facility_gis/internal/models"
	"github.com/shenikar/facility_gis/internal/webhook"
	"github.com/sirupsen/logrus"
)

var (
	ErrFacilityNotFound     = errors.New("facility not found")
	ErrCatalogueUnavailable = errors.New("facility catalogue unavailable")
)

// FacilityRepository определяет контракт для работы с бд объектов
type FacilityRepository interface {
	List(ctx context.Context) ([]*models.Facility, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Facility, error)
	Create(ctx context.Context, facility *models.Facility) error
	Update(ctx context.Context, facility *models.Facility) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetCollectionFromCache(ctx context.Context) ([]*models.Facility, error)
	SetCollectionCache(ctx context.Context, facilities []*models.Facility) error
	InvalidateCollectionCache(ctx context.Context) error
}

// FallbackSource - статический источник объектов, когда бэкенд пуст
type FallbackSource interface {
	Load(ctx context.Context) ([]*models.Facility, error)
}

// FacilityService определяет контракт для каталога объектов и их редактирования
type FacilityService interface {
	ListFacilities(ctx context.Context) ([]models.Facility, error)
	Reload(ctx context.Context) ([]models.Facility, error)
	FindFacility(ctx context.Context, key string) (*models.Facility, error)
	CreateFacility(ctx context.Context, facility *models.Facility) error
	UpdateFacility(ctx context.Context, facility *models.Facility) error
	DeleteFacility(ctx context.Context, id uuid.UUID) error
}

type facilityService struct {
	repo      FacilityRepository
	fallback  FallbackSource
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger

	mu         sync.RWMutex
	loaded     bool
	facilities []models.Facility
	loadErr    error

	// reloadMu упорядочивает перезагрузки коллекции между собой
	reloadMu sync.Mutex
	// cacheMu защищает generation; под ним же сбрасывается и пишется кэш коллекции.
	// generation растет при каждой успешной мутации.
	cacheMu    sync.Mutex
	generation uint64
}

func NewFacilityService(repo FacilityRepository, fallback FallbackSource, publisher webhook.WebhookPublisher, logger *logrus.Logger) FacilityService {
	return &facilityService{
		repo:      repo,
		fallback:  fallback,
		publisher: publisher,
		logger:    logger,
	}
}

// ListFacilities возвращает загруженную коллекцию. Первая загрузка выполняется
// при первом обращении; после ошибки загрузки коллекция недоступна до Reload.
func (s *facilityService) ListFacilities(ctx context.Context) ([]models.Facility, error) {
	s.mu.RLock()
	loaded, facilities, loadErr := s.loaded, s.facilities, s.loadErr
	s.mu.RUnlock()

	if !loaded {
		return s.Reload(ctx)
	}
	if loadErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogueUnavailable, loadErr)
	}
	return facilities, nil
}

// Reload заново загружает всю коллекцию: бэкенд, затем резервный файл.
// Перезагрузки выполняются по одной. Загрузка, начатая до мутации, не пишет
// кэш: после мутации всегда следует своя перезагрузка.
func (s *facilityService) Reload(ctx context.Context) ([]models.Facility, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service": "facility",
		"method":  "Reload",
	})
	log.Info("Loading facility collection")

	s.cacheMu.Lock()
	generation := s.generation
	s.cacheMu.Unlock()

	facilities, err := s.load(ctx, log, generation)

	s.mu.Lock()
	s.loaded = true
	s.loadErr = err
	if err == nil {
		s.facilities = facilities
	} else {
		s.facilities = nil
	}
	s.mu.Unlock()

	if err != nil {
		log.WithError(err).Error("Failed to load facility collection")
		return nil, fmt.Errorf("%w: %v", ErrCatalogueUnavailable, err)
	}
	log.WithField("count", len(facilities)).Info("Facility collection loaded")
	return facilities, nil
}

func (s *facilityService) load(ctx context.Context, log *logrus.Entry, generation uint64) ([]models.Facility, error) {
	records, backendErr := s.fetchFromBackend(ctx, log, generation)
	if backendErr != nil {
		log.WithError(backendErr).Warn("Backend unavailable, using fallback data")
	}

	facilities := s.sanitize(records, log)
	if len(facilities) > 0 {
		return facilities, nil
	}

	fallback, err := s.fallback.Load(ctx)
	if err != nil {
		if backendErr != nil {
			return nil, fmt.Errorf("backend: %v; fallback: %w", backendErr, err)
		}
		return nil, fmt.Errorf("could not load fallback data: %w", err)
	}
	log.WithField("count", len(fallback)).Info("Using fallback facility data")
	return s.sanitize(fallback, log), nil
}

func (s *facilityService) fetchFromBackend(ctx context.Context, log *logrus.Entry, generation uint64) ([]*models.Facility, error) {
	cached, err := s.repo.GetCollectionFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read facility cache")
	}
	if cached != nil {
		return cached, nil
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list facilities: %w", err)
	}
	if len(records) > 0 {
		s.cacheCollection(ctx, log, generation, records)
	}
	return records, nil
}

// cacheCollection пишет коллекцию в кэш, только если с начала загрузки не было мутаций
func (s *facilityService) cacheCollection(ctx context.Context, log *logrus.Entry, generation uint64, records []*models.Facility) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	if s.generation != generation {
		log.Info("Facility collection changed during load, skipping cache write")
		return
	}
	if err := s.repo.SetCollectionCache(ctx, records); err != nil {
		log.WithError(err).Warn("Failed to cache facility collection")
	}
}

// sanitize отбрасывает записи, не прошедшие проверку на границе
func (s *facilityService) sanitize(records []*models.Facility, log *logrus.Entry) []models.Facility {
	out := make([]models.Facility, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		if err := r.Validate(); err != nil {
			log.WithError(err).Warn("Skipping invalid facility record")
			continue
		}
		out = append(out, *r)
	}
	return out
}

// FindFacility ищет объект текущей коллекции по ключу идентичности
func (s *facilityService) FindFacility(ctx context.Context, key string) (*models.Facility, error) {
	facilities, err := s.ListFacilities(ctx)
	if err != nil {
		return nil, err
	}
	for i := range facilities {
		if facilities[i].Key() == key {
			f := facilities[i]
			return &f, nil
		}
	}
	return nil, fmt.Errorf("facility with key %q: %w", key, ErrFacilityNotFound)
}

// CreateFacility создает объект
func (s *facilityService) CreateFacility(ctx context.Context, facility *models.Facility) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "facility",
		"method":  "CreateFacility",
		"name":    facility.Name,
	})
	log.Info("Attempting to create a new facility")

	facility.ID = uuid.Nil
	if err := s.repo.Create(ctx, facility); err != nil {
		log.WithError(err).Error("Failed to create facility in repository")
		return fmt.Errorf("service: could not create facility: %w", err)
	}

	log.WithField("facility_id", facility.ID).Info("Facility created successfully")
	s.afterMutation(ctx, log, models.FacilityCreated, facility)
	return nil
}

// UpdateFacility обновляет существующий объект
func (s *facilityService) UpdateFacility(ctx context.Context, facility *models.Facility) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "facility",
		"method":      "UpdateFacility",
		"facility_id": facility.ID,
	})
	log.Info("Attempting to update facility")

	existing, err := s.repo.GetByID(ctx, facility.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent facility")
		return fmt.Errorf("service: facility with id %s not found for update: %w", facility.ID, err)
	}

	existing.Name = facility.Name
	existing.Type = facility.Type
	existing.Category = facility.Category
	existing.Address = facility.Address
	existing.Authority = facility.Authority
	existing.Latitude = facility.Latitude
	existing.Longitude = facility.Longitude

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update facility in repository")
		return fmt.Errorf("service: could not update facility: %w", err)
	}
	*facility = *existing

	log.Info("Facility updated successfully")
	s.afterMutation(ctx, log, models.FacilityUpdated, facility)
	return nil
}

// DeleteFacility удаляет объект
func (s *facilityService) DeleteFacility(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "facility",
		"method":      "DeleteFacility",
		"facility_id": id,
	})
	log.Info("Attempting to delete facility")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent facility")
		return fmt.Errorf("service: facility with id %s not found for delete: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete facility in repository")
		return fmt.Errorf("service: could not delete facility: %w", err)
	}

	log.Info("Facility deleted successfully")
	s.afterMutation(ctx, log, models.FacilityDeleted, existing)
	return nil
}

// afterMutation выполняется строго после успешной мутации: сброс кеша,
// уведомление и полная перезагрузка коллекции
func (s *facilityService) afterMutation(ctx context.Context, log *logrus.Entry, action models.FacilityAction, facility *models.Facility) {
	s.cacheMu.Lock()
	s.generation++
	if err := s.repo.InvalidateCollectionCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate facility cache")
	}
	s.cacheMu.Unlock()

	event := models.FacilityEvent{Action: action, Facility: facility, Timestamp: time.Now().UTC()}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish facility event")
	}

	if _, err := s.Reload(ctx); err != nil {
		log.WithError(err).Error("Failed to refresh facility collection after mutation")
	}
}
