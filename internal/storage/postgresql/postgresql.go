// Package postgresql реализует хранилище записей запросов статистики
// на основе PostgreSQL.
package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/magabrotheeeer/user-statistics/internal/models"
	"github.com/magabrotheeeer/user-statistics/internal/storage"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его.
func New(ctx context.Context, storageConnectionString string) (*Storage, error) {
	const op = "storage.postgresql.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

// Create сохраняет запись запроса. ID назначается базой и записывается в req.
func (s *Storage) Create(ctx context.Context, req *models.RequestData) error {
	const op = "storage.postgresql.Create"

	query := `INSERT INTO request_data (query_id, user_id, time_from, time_to, request_local_time)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	err := s.DB.QueryRowContext(ctx, query,
		req.QueryID, req.UserData.UserID, req.UserData.TimeFrom, req.UserData.TimeTo,
		req.RequestLocalTime).Scan(&req.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrRequestExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Get возвращает запись по query id или storage.ErrRequestNotFound.
// Строка, не являющаяся UUID, не может быть сохранена и сразу считается отсутствующей.
func (s *Storage) Get(ctx context.Context, queryID string) (*models.RequestData, error) {
	const op = "storage.postgresql.Get"
	if err := uuid.Validate(queryID); err != nil {
		return nil, storage.ErrRequestNotFound
	}

	query := `SELECT id, query_id, user_id, time_from, time_to, request_local_time
			  FROM request_data WHERE query_id = $1`
	row := s.DB.QueryRowContext(ctx, query, queryID)

	var result models.RequestData
	err := row.Scan(&result.ID, &result.QueryID, &result.UserData.UserID,
		&result.UserData.TimeFrom, &result.UserData.TimeTo, &result.RequestLocalTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// Ping проверяет доступность базы.
func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close закрывает пул соединений.
func (s *Storage) Close() error {
	return s.DB.Close()
}
