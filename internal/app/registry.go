package app

import (
	"github.com/fjtyk95/work-schedule/internal/calendar"
	"github.com/fjtyk95/work-schedule/internal/employee"
	"github.com/fjtyk95/work-schedule/internal/middleware"
	"github.com/fjtyk95/work-schedule/internal/schedule"
	"github.com/fjtyk95/work-schedule/internal/shared/connection"
	"github.com/fjtyk95/work-schedule/internal/shared/slot"

	"github.com/gin-gonic/gin"
)

func registerModules(
	router *gin.Engine,
	store slot.Slot,
	cal *calendar.Calendar,
) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(20, 40))

	// --- Repositories ---
	directory := employee.NewStaticDirectory(employee.DefaultRoster())
	scheduleStore := schedule.NewStore(store)

	// --- Services ---
	publisher := schedule.EventPublisher(nil)
	if brokers := kafkaBrokers(); len(brokers) > 0 {
		publisher = schedule.NewKafkaEventPublisher(connection.NewKafkaWriter(brokers))
	}
	scheduleService := schedule.NewServiceWithPublisher(scheduleStore, directory, cal, publisher)

	// --- Handlers ---
	calendarHandler := calendar.NewHandler(cal)
	employeeHandler := employee.NewHandler(directory)
	scheduleHandler := schedule.NewHandler(scheduleService)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		calendar.RegisterRoutes(api, calendarHandler)
		employee.RegisterRoutes(api, employeeHandler)
		schedule.RegisterRoutes(api, scheduleHandler)
	}

	return nil
}
