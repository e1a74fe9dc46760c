// Package report содержит бизнес-логику приема запросов статистики
// пользователя и расчета прогресса их обработки.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/user-statistics/internal/lib/metrics"
	"github.com/magabrotheeeer/user-statistics/internal/lib/progress"
	"github.com/magabrotheeeer/user-statistics/internal/lib/sl"
	"github.com/magabrotheeeer/user-statistics/internal/models"
	"github.com/magabrotheeeer/user-statistics/internal/storage"
)

// countSignInPlaceholder отдается в готовом отчете.
// Реального подсчета входов нет.
const countSignInPlaceholder = "12"

const (
	cacheKeyPrefix  = "report:request:"
	defaultCacheTTL = time.Hour
)

var (
	// ErrInvalidRequest означает, что запрос отсутствует или его поля некорректны.
	ErrInvalidRequest = errors.New("invalid statistics request")
	// ErrEmptyQuery означает пустой идентификатор запроса.
	ErrEmptyQuery = errors.New("empty query id")
	// ErrQueryNotFound означает, что запрос с таким идентификатором не найден.
	ErrQueryNotFound = errors.New("query not found")
)

// Repository определяет методы хранилища записей запросов.
type Repository interface {
	// Create сохраняет запись; хранилище назначает ей ID.
	Create(ctx context.Context, req *models.RequestData) error
	// Get возвращает запись по query id или storage.ErrRequestNotFound.
	Get(ctx context.Context, queryID string) (*models.RequestData, error)
}

// Cache описывает методы для кэширования записей.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// Notifier получает событие о каждом сохраненном запросе.
type Notifier interface {
	RequestSubmitted(ctx context.Context, event models.SubmittedEvent) error
}

// Service реализует прием запросов и опрос прогресса.
type Service struct {
	repo     Repository
	cache    Cache
	notifier Notifier
	policy   progress.Policy
	cacheTTL time.Duration
	log      *slog.Logger

	now   func() time.Time
	newID func() string
}

// Option настраивает Service.
type Option func(*Service)

// WithNotifier задает получателя событий о новых запросах.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithCacheTTL задает время жизни записи в кеше.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator подменяет генератор идентификаторов запросов.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, cache Cache, policy progress.Policy, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		cache:    cache,
		policy:   policy,
		cacheTTL: defaultCacheTTL,
		log:      log,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit проверяет запрос, сохраняет его с серверным временем и новым
// идентификатором и возвращает этот идентификатор.
// Для некорректного запроса возвращает ErrInvalidRequest, хранилище не вызывается.
func (s *Service) Submit(ctx context.Context, req *models.UserStatisticRequest) (string, error) {
	const op = "services.report.Submit"

	if err := validateRequest(req); err != nil {
		metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return "", err
	}

	record := &models.RequestData{
		UserData:         *req,
		RequestLocalTime: s.now(),
		QueryID:          s.newID(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return "", fmt.Errorf("%s: %w", op, err)
	}
	metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeAccepted).Inc()
	s.log.Info("statistics request accepted",
		slog.String("query_id", record.QueryID), slog.Int("id", record.ID))

	key := cacheKeyPrefix + record.QueryID
	if err := s.cache.Set(ctx, key, record, s.cacheTTL); err != nil {
		s.log.Warn("failed to cache request", slog.String("key", key), sl.Err(err))
	}

	if s.notifier != nil {
		event := models.SubmittedEvent{
			QueryID:     record.QueryID,
			UserID:      record.UserData.UserID,
			TimeFrom:    record.UserData.TimeFrom,
			TimeTo:      record.UserData.TimeTo,
			RequestedAt: record.RequestLocalTime,
		}
		if err := s.notifier.RequestSubmitted(ctx, event); err != nil {
			metrics.EventPublishErrors.Inc()
			s.log.Warn("failed to publish request event", slog.String("query_id", record.QueryID), sl.Err(err))
		}
	}

	return record.QueryID, nil
}

// Poll возвращает прогресс обработки запроса queryID. UUID ищется в
// каноническом виде независимо от регистра и скобок. Результат прикладывается
// только при 100%. Для пустого идентификатора возвращает ErrEmptyQuery,
// для неизвестного ErrQueryNotFound.
func (s *Service) Poll(ctx context.Context, queryID string) (*models.ResponseData, error) {
	const op = "services.report.Poll"

	if strings.TrimSpace(queryID) == "" {
		metrics.PollsTotal.WithLabelValues(metrics.OutcomeEmpty).Inc()
		return nil, ErrEmptyQuery
	}

	record, err := s.load(ctx, canonicalQueryID(queryID))
	if errors.Is(err, storage.ErrRequestNotFound) {
		metrics.PollsTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
		return nil, ErrQueryNotFound
	}
	if err != nil {
		metrics.PollsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	percent := s.policy.Percent(s.now().Sub(record.RequestLocalTime))
	resp := &models.ResponseData{
		Query:   queryID,
		Percent: percent,
	}
	if progress.Complete(percent) {
		resp.Result = &models.UserInfoData{
			UserID:      record.UserData.UserID,
			CountSignIn: countSignInPlaceholder,
		}
		metrics.PollsTotal.WithLabelValues(metrics.OutcomeComplete).Inc()
	} else {
		metrics.PollsTotal.WithLabelValues(metrics.OutcomePending).Inc()
	}
	return resp, nil
}

// load читает запись из кеша, при промахе из хранилища, и кладет ее в кеш.
// Ошибки кеша не прерывают чтение.
func (s *Service) load(ctx context.Context, queryID string) (*models.RequestData, error) {
	key := cacheKeyPrefix + queryID

	var cached models.RequestData
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), sl.Err(err))
	}
	if found {
		metrics.CacheHits.Inc()
		return &cached, nil
	}
	metrics.CacheMisses.Inc()

	record, err := s.repo.Get(ctx, queryID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, storage.ErrRequestNotFound
	}

	if err := s.cache.Set(ctx, key, record, s.cacheTTL); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", key), sl.Err(err))
	}
	return record, nil
}

// canonicalQueryID приводит UUID к виду, который выдает Submit.
// Строки, не являющиеся UUID, возвращаются без изменений.
func canonicalQueryID(queryID string) string {
	id, err := uuid.Parse(strings.TrimSpace(queryID))
	if err != nil {
		return queryID
	}
	return id.String()
}

func validateRequest(req *models.UserStatisticRequest) error {
	switch {
	case req == nil:
		return fmt.Errorf("%w: request is empty", ErrInvalidRequest)
	case strings.TrimSpace(req.UserID) == "":
		return fmt.Errorf("%w: user id is empty", ErrInvalidRequest)
	case !req.TimeFrom.Before(req.TimeTo):
		return fmt.Errorf("%w: timeFrom must be earlier than timeTo", ErrInvalidRequest)
	}
	return nil
}
