package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/facility_gis/internal/models"
	"github.com/shenikar/facility_gis/internal/service"
)

const collectionCacheKey = "facilities:all"

type FacilityRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewFacilityRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.FacilityRepository {
	return &FacilityRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

const facilityColumns = `
	id,
	nama,
	jenis,
	kategori,
	alamat,
	pengelola,
	latitude,
	longitude,
	created_at,
	updated_at`

func scanFacility(row pgx.Row) (*models.Facility, error) {
	f := &models.Facility{}
	var category string
	err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Type,
		&category,
		&f.Address,
		&f.Authority,
		&f.Latitude,
		&f.Longitude,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	f.Category = models.Category(category)
	return f, nil
}

// List возвращает все объекты, отсортированные по названию
func (r *FacilityRepository) List(ctx context.Context) ([]*models.Facility, error) {
	query := `SELECT` + facilityColumns + `
		FROM facilities
		ORDER BY nama ASC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", err)
	}
	defer rows.Close()

	facilities := make([]*models.Facility, 0)
	for rows.Next() {
		f, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan facility row: %w", err)
		}
		facilities = append(facilities, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return facilities, nil
}

// GetByID возвращает объект по его UUID
func (r *FacilityRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Facility, error) {
	query := `SELECT` + facilityColumns + `
		FROM facilities
		WHERE id = $1;
	`
	f, err := scanFacility(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("facility with id %s: %w", id, service.ErrFacilityNotFound)
		}
		return nil, fmt.Errorf("failed to get facility by id: %w", err)
	}
	return f, nil
}

// Create создает запись об объекте, id назначает бд
func (r *FacilityRepository) Create(ctx context.Context, f *models.Facility) error {
	query := `
		INSERT INTO facilities (nama, jenis, kategori, alamat, pengelola, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		f.Name,
		f.Type,
		string(f.Category),
		f.Address,
		f.Authority,
		f.Latitude,
		f.Longitude,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create facility: %w", err)
	}
	return nil
}

// Update обновляет поля объекта
func (r *FacilityRepository) Update(ctx context.Context, f *models.Facility) error {
	query := `
		UPDATE facilities SET
			nama = $1,
			jenis = $2,
			kategori = $3,
			alamat = $4,
			pengelola = $5,
			latitude = $6,
			longitude = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		f.Name,
		f.Type,
		string(f.Category),
		f.Address,
		f.Authority,
		f.Latitude,
		f.Longitude,
		f.ID,
	).Scan(&f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("facility with id %s not found for update: %w", f.ID, service.ErrFacilityNotFound)
		}
		return fmt.Errorf("failed to update facility: %w", err)
	}
	return nil
}

// Delete удаляет объект
func (r *FacilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM facilities WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete facility: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("facility with id %s not found for delete: %w", id, service.ErrFacilityNotFound)
	}
	return nil
}

// GetCollectionFromCache пытается получить всю коллекцию из Redis.
// Промах кеша - nil, nil.
func (r *FacilityRepository) GetCollectionFromCache(ctx context.Context) ([]*models.Facility, error) {
	val, err := r.redisClient.Get(ctx, collectionCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get facilities from cache: %w", err)
	}

	var facilities []*models.Facility
	if err := json.Unmarshal(val, &facilities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal facilities from cache: %w", err)
	}
	return facilities, nil
}

// SetCollectionCache сохраняет коллекцию в Redis
func (r *FacilityRepository) SetCollectionCache(ctx context.Context, facilities []*models.Facility) error {
	val, err := json.Marshal(facilities)
	if err != nil {
		return fmt.Errorf("failed to marshal facilities for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, collectionCacheKey, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set facilities in cache: %w", err)
	}
	return nil
}

// InvalidateCollectionCache удаляет коллекцию из Redis кэша
func (r *FacilityRepository) InvalidateCollectionCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, collectionCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate facilities cache: %w", err)
	}
	return nil
}
