package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/facility_gis/internal/mapstate"
	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionService хранит состояние карты для каждого клиента
type SessionService interface {
	CreateSession(ctx context.Context) (uuid.UUID, mapstate.View, error)
	GetSession(ctx context.Context, id uuid.UUID) (mapstate.View, error)
	Dispatch(ctx context.Context, id uuid.UUID, event mapstate.Event) (mapstate.View, error)
	SelectFacility(ctx context.Context, id uuid.UUID, key string) (mapstate.View, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
}

type sessionService struct {
	facilities      FacilityService
	logger          *logrus.Logger
	bufferCatalogue []float64
	enabledRadii    []float64

	mu       sync.Mutex
	sessions map[uuid.UUID]*mapstate.State
}

func NewSessionService(facilities FacilityService, bufferCatalogue, enabledRadii []float64, logger *logrus.Logger) SessionService {
	return &sessionService{
		facilities:      facilities,
		logger:          logger,
		bufferCatalogue: bufferCatalogue,
		enabledRadii:    enabledRadii,
		sessions:        make(map[uuid.UUID]*mapstate.State),
	}
}

// CreateSession заводит состояние по умолчанию
func (s *sessionService) CreateSession(ctx context.Context) (uuid.UUID, mapstate.View, error) {
	facilities, err := s.facilities.ListFacilities(ctx)
	if err != nil {
		return uuid.Nil, mapstate.View{}, err
	}

	id := uuid.New()
	state := mapstate.New(s.bufferCatalogue, s.enabledRadii)

	s.mu.Lock()
	s.sessions[id] = state
	view := state.View(facilities)
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "CreateSession",
		"session_id": id,
	}).Info("Map session created")
	return id, view, nil
}

// GetSession возвращает снимок состояния над текущей коллекцией
func (s *sessionService) GetSession(ctx context.Context, id uuid.UUID) (mapstate.View, error) {
	facilities, err := s.facilities.ListFacilities(ctx)
	if err != nil {
		return mapstate.View{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[id]
	if !ok {
		return mapstate.View{}, fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}
	return state.View(facilities), nil
}

// Dispatch применяет событие к сессии и возвращает новый снимок
func (s *sessionService) Dispatch(ctx context.Context, id uuid.UUID, event mapstate.Event) (mapstate.View, error) {
	facilities, err := s.facilities.ListFacilities(ctx)
	if err != nil {
		return mapstate.View{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[id]
	if !ok {
		return mapstate.View{}, fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}
	if err := state.Dispatch(event, facilities); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "session",
			"method":     "Dispatch",
			"session_id": id,
			"event":      fmt.Sprintf("%T", event),
		}).WithError(err).Warn("Event rejected")
		return mapstate.View{}, err
	}
	return state.View(facilities), nil
}

// SelectFacility находит объект по ключу и передает его в режим измерения
func (s *sessionService) SelectFacility(ctx context.Context, id uuid.UUID, key string) (mapstate.View, error) {
	facility, err := s.facilities.FindFacility(ctx, key)
	if err != nil {
		return mapstate.View{}, err
	}
	return s.Dispatch(ctx, id, mapstate.SelectFacility{Facility: *facility})
}

// DeleteSession удаляет сессию
func (s *sessionService) DeleteSession(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}
	delete(s.sessions, id)
	return nil
}
