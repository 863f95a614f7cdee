package slot_test

import (
	"context"
	"testing"

	"github.com/fjtyk95/work-schedule/internal/shared/slot"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisSlot_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("work_schedules").SetVal(`[]`)

		s := slot.NewRedisSlot(rdb)
		val, ok, err := s.Get(ctx, "work_schedules")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[]`, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis.Nil maps to absent", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("work_schedules").RedisNil()

		s := slot.NewRedisSlot(rdb)
		val, ok, err := s.Get(ctx, "work_schedules")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("transport error propagates", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("work_schedules").SetErr(assert.AnError)

		s := slot.NewRedisSlot(rdb)
		_, _, err := s.Get(ctx, "work_schedules")
		assert.Error(t, err)
	})
}

func TestRedisSlot_Set(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectSet("work_schedules", `[{"id":"1"}]`, 0).SetVal("OK")

	s := slot.NewRedisSlot(rdb)
	err := s.Set(context.Background(), "work_schedules", `[{"id":"1"}]`)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
