package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/Kryptamyr/Packer-Tracker/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashKey(t *testing.T) {
	assert.Equal(t, "flash:abc", flashKey("abc"))
}

func TestDecodeFlashes(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	got := decodeFlashes([]string{
		`{"category":"success","message":"ok"}`,
		`not json`,
		`{"category":"error","message":"bad"}`,
	}, log)

	assert.Equal(t, []entity.FlashMessage{
		{Category: entity.FlashSuccess, Message: "ok"},
		{Category: entity.FlashError, Message: "bad"},
	}, got)
	assert.NotNil(t, decodeFlashes(nil, log))
}

func newTestFlashService(t *testing.T) (FlashService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewFlashService(client, log, 5*time.Minute), mr
}

func TestFlashService_AddThenPop(t *testing.T) {
	svc, mr := newTestFlashService(t)
	ctx := context.Background()

	first := entity.FlashMessage{Category: entity.FlashError, Message: "Please enter a packer name."}
	second := entity.FlashMessage{Category: entity.FlashSuccess, Message: "Successfully recorded! Packer Alice completed order ORD-1."}
	require.NoError(t, svc.Add(ctx, "s1", first))
	require.NoError(t, svc.Add(ctx, "s1", second))

	assert.Equal(t, 5*time.Minute, mr.TTL(flashKey("s1")))

	got, err := svc.Pop(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []entity.FlashMessage{first, second}, got)
	assert.False(t, mr.Exists(flashKey("s1")))

	got, err = svc.Pop(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFlashService_SessionsAreIsolated(t *testing.T) {
	svc, _ := newTestFlashService(t)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "s1", entity.FlashMessage{Category: entity.FlashSuccess, Message: "mine"}))

	got, err := svc.Pop(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = svc.Pop(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "mine", got[0].Message)
}

func TestFlashService_AddRefreshesTTL(t *testing.T) {
	svc, mr := newTestFlashService(t)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "s1", entity.FlashMessage{Message: "one"}))
	mr.FastForward(4 * time.Minute)
	require.NoError(t, svc.Add(ctx, "s1", entity.FlashMessage{Message: "two"}))

	assert.Equal(t, 5*time.Minute, mr.TTL(flashKey("s1")))

	mr.FastForward(6 * time.Minute)
	got, err := svc.Pop(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got, "messages expire after the TTL")
}

func TestFlashService_RedisDown(t *testing.T) {
	svc, mr := newTestFlashService(t)
	mr.Close()

	err := svc.Add(context.Background(), "s1", entity.FlashMessage{Message: "lost"})
	assert.Error(t, err)

	_, err = svc.Pop(context.Background(), "s1")
	assert.Error(t, err)
}
