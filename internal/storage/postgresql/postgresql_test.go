package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/magabrotheeeer/user-statistics/internal/migrations"
	"github.com/magabrotheeeer/user-statistics/internal/models"
	"github.com/magabrotheeeer/user-statistics/internal/storage"
)

// setupTestDatabase поднимает PostgreSQL в контейнере и применяет миграции
func setupTestDatabase(t *testing.T) *Storage {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := New(ctx, connStr)
	require.NoError(t, err, "failed to create storage")
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, migrations.Run(s.DB))
	return s
}

func newRecord() *models.RequestData {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &models.RequestData{
		QueryID:          uuid.NewString(),
		RequestLocalTime: now,
		UserData: models.UserStatisticRequest{
			UserID:   "TestUserID",
			TimeFrom: now.Add(-48 * time.Hour),
			TimeTo:   now.Add(-time.Hour),
		},
	}
}

func TestStorage_CreateAndGet(t *testing.T) {
	s := setupTestDatabase(t)
	ctx := context.Background()

	rec := newRecord()
	require.NoError(t, s.Create(ctx, rec))
	assert.NotZero(t, rec.ID)

	got, err := s.Get(ctx, rec.QueryID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.QueryID, got.QueryID)
	assert.Equal(t, rec.UserData.UserID, got.UserData.UserID)
	assert.True(t, rec.UserData.TimeFrom.Equal(got.UserData.TimeFrom))
	assert.True(t, rec.UserData.TimeTo.Equal(got.UserData.TimeTo))
	assert.True(t, rec.RequestLocalTime.Equal(got.RequestLocalTime))
}

func TestStorage_GetNotFound(t *testing.T) {
	s := setupTestDatabase(t)

	got, err := s.Get(context.Background(), uuid.NewString())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, storage.ErrRequestNotFound)

	got, err = s.Get(context.Background(), "UnexpectedGUID")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, storage.ErrRequestNotFound)
}

func TestStorage_CreateDuplicateQueryID(t *testing.T) {
	s := setupTestDatabase(t)
	ctx := context.Background()

	rec := newRecord()
	require.NoError(t, s.Create(ctx, rec))

	dup := newRecord()
	dup.QueryID = rec.QueryID
	assert.ErrorIs(t, s.Create(ctx, dup), storage.ErrRequestExists)
}

func TestStorage_Ping(t *testing.T) {
	s := setupTestDatabase(t)

	assert.NoError(t, s.Ping(context.Background()))
}
