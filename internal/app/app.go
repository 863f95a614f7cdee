package app

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fjtyk95/work-schedule/internal/calendar"
	"github.com/fjtyk95/work-schedule/internal/shared/connection"
	"github.com/fjtyk95/work-schedule/internal/shared/slot"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp assembles the storage backend, holiday source, and module wiring
// from environment configuration.
//
//	STORAGE_BACKEND  memory (default) | redis | postgres
//	HOLIDAY_SOURCE   remote (default) | none
//	KAFKA_BROKERS    comma-separated broker list; empty disables events
func BuildApp(router *gin.Engine) error {
	store, err := buildSlot()
	if err != nil {
		return err
	}

	cal := calendar.New(buildHolidaySource())

	// Prefetch a month of holiday data so business-day checks during
	// request handling are served from cache. Best effort: a cold cache
	// only moves the lookup cost back onto the first request.
	warmupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	today := calendar.DateOf(time.Now().UTC())
	if err := cal.Warmup(warmupCtx, today, today.AddDate(0, 0, 30)); err != nil {
		zap.L().Warn("holiday warmup skipped", zap.Error(err))
	}

	return registerModules(router, store, cal)
}

func buildSlot() (slot.Slot, error) {
	switch os.Getenv("STORAGE_BACKEND") {
	case "postgres":
		db, err := connection.ConnectGORMWithRetry(
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_SSLMODE"),
			5,
		)
		if err != nil {
			return nil, err
		}
		if err := slot.Migrate(db); err != nil {
			return nil, err
		}
		return slot.NewGormSlot(db), nil

	case "redis":
		rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
		if err != nil {
			return nil, err
		}
		return slot.NewRedisSlot(rdb), nil

	default:
		zap.L().Info("using in-memory storage backend")
		return slot.NewMemorySlot(), nil
	}
}

func buildHolidaySource() calendar.HolidaySource {
	if os.Getenv("HOLIDAY_SOURCE") == "none" {
		zap.L().Info("holiday source disabled, weekend-only business days")
		return calendar.NoHolidaySource{}
	}
	return calendar.NewHTTPHolidaySource(
		os.Getenv("HOLIDAY_BASE_URL"),
		&http.Client{Timeout: 10 * time.Second},
	)
}

func kafkaBrokers() []string {
	raw := os.Getenv("KAFKA_BROKERS")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
