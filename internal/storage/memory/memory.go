// Package memory реализует хранилище записей запросов в памяти процесса.
// Данные теряются при перезапуске.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/magabrotheeeer/user-statistics/internal/models"
	"github.com/magabrotheeeer/user-statistics/internal/storage"
)

// Storage хранит записи по query id.
type Storage struct {
	mu     sync.RWMutex
	nextID int
	data   map[string]models.RequestData
}

// New создает пустое хранилище.
func New() *Storage {
	return &Storage{
		data: make(map[string]models.RequestData),
	}
}

// Create сохраняет копию записи и назначает ей последовательный ID.
func (s *Storage) Create(ctx context.Context, req *models.RequestData) error {
	const op = "storage.memory.Create"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[req.QueryID]; ok {
		return fmt.Errorf("%s: %w", op, storage.ErrRequestExists)
	}
	s.nextID++
	req.ID = s.nextID
	s.data[req.QueryID] = *req
	return nil
}

// Get возвращает копию записи или storage.ErrRequestNotFound.
func (s *Storage) Get(ctx context.Context, queryID string) (*models.RequestData, error) {
	const op = "storage.memory.Get"
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	req, ok := s.data[queryID]
	if !ok {
		return nil, storage.ErrRequestNotFound
	}
	return &req, nil
}

// Ping всегда успешен.
func (s *Storage) Ping(_ context.Context) error {
	return nil
}

// Len возвращает количество сохраненных записей.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
