package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aradhyadengreee/ai-career-app/internal/common/config"
	"github.com/aradhyadengreee/ai-career-app/internal/common/database"
	apperrors "github.com/aradhyadengreee/ai-career-app/internal/common/errors"
	"github.com/aradhyadengreee/ai-career-app/internal/common/logger"
	"github.com/aradhyadengreee/ai-career-app/internal/models"
)

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { rdb.Close() })

	store := NewStore(rdb, config.SessionConfig{TTLSeconds: 3600}, logger.NewTestLogger(t))
	return store, mr
}

func testProfile() *models.UserProfile {
	return &models.UserProfile{
		Name:       "Asha",
		Occupation: "student",
		RIASECCode: "SIA",
		Skills:     []string{"teaching"},
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx, testProfile())
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)

	loaded, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", loaded.Profile.Name)
	assert.Equal(t, "SIA", loaded.Profile.RIASECCode)
}

func TestGetUnknownSession(t *testing.T) {
	store, _ := setupStore(t)

	_, err := store.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSessionNotFound))
}

func TestGetRefreshesTTL(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx, testProfile())
	require.NoError(t, err)

	// Let most of the TTL elapse, then read; the read must push expiry out.
	mr.FastForward(3000 * time.Second)
	_, err = store.Get(ctx, sess.ID)
	require.NoError(t, err)

	mr.FastForward(3000 * time.Second)
	_, err = store.Get(ctx, sess.ID)
	require.NoError(t, err, "an active session must not expire")
}

func TestSessionExpiresWithoutActivity(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx, testProfile())
	require.NoError(t, err)

	mr.FastForward(3601 * time.Second)

	_, err = store.Get(ctx, sess.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSessionNotFound))
}

func TestDeleteIsIdempotent(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx, testProfile())
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, sess.ID))
	require.NoError(t, store.Delete(ctx, sess.ID), "double delete is a no-op")

	_, err = store.Get(ctx, sess.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSessionNotFound))
}

func TestListAndCount(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	var created []string
	for i := 0; i < 3; i++ {
		sess, err := store.Create(ctx, testProfile())
		require.NoError(t, err)
		created = append(created, sess.ID)
	}

	ids, err := store.ListIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, created, ids)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
