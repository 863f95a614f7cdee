package schedule

import (
	"context"
	"time"

	"github.com/fjtyk95/work-schedule/internal/calendar"
	"github.com/fjtyk95/work-schedule/internal/employee"
	"github.com/fjtyk95/work-schedule/internal/events"
	scheduleerrors "github.com/fjtyk95/work-schedule/internal/schedule/errors"

	"go.uber.org/zap"
)

// Calendar is the slice of the calendar component the schedule rules need.
type Calendar interface {
	IsBusinessDay(ctx context.Context, d time.Time) (bool, error)
	BusinessDays(ctx context.Context, start, end time.Time) ([]calendar.BusinessDay, error)
	WeekStart(d time.Time) time.Time
	DayType(d time.Time) calendar.DayType
}

type Service interface {
	Create(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)
	GetAll(ctx context.Context) ([]ScheduleResponse, error)
	Update(ctx context.Context, id string, req UpdateScheduleRequest) (ScheduleResponse, error)
	Delete(ctx context.Context, id string) error
	Lookup(ctx context.Context, employeeID string, date time.Time) (LookupResponse, error)
	Board(ctx context.Context, from time.Time, days int) (BoardResponse, error)
}

type service struct {
	store     Store
	directory employee.Directory
	cal       Calendar
	publisher EventPublisher
	logger    *zap.Logger
}

func NewService(store Store, directory employee.Directory, cal Calendar, logger ...*zap.Logger) Service {
	return NewServiceWithPublisher(store, directory, cal, noopEventPublisher{}, logger...)
}

func NewServiceWithPublisher(
	store Store,
	directory employee.Directory,
	cal Calendar,
	publisher EventPublisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	return &service{
		store:     store,
		directory: directory,
		cal:       cal,
		publisher: publisher,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error) {
	s.logger.Debug("create schedule requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
		zap.String("work_type", req.WorkType),
	)

	emp, err := s.directory.FindByID(req.EmployeeID)
	if err != nil {
		s.logger.Warn("create schedule unknown employee", zap.String("employee_id", req.EmployeeID))
		return ScheduleResponse{}, err
	}

	entry, err := s.buildEntry(ctx, emp, req.StartDate, req.EndDate, req.WorkType, req.HalfDay)
	if err != nil {
		s.logger.Warn("create schedule validation failed", zap.Error(err))
		return ScheduleResponse{}, err
	}

	created, err := s.store.Create(ctx, entry)
	if err != nil {
		s.logger.Error("create schedule persist failed", zap.Error(err))
		return ScheduleResponse{}, err
	}

	s.publish(ctx, events.ScheduleCreated, created)
	s.logger.Info("create schedule success",
		zap.String("schedule_id", created.ID),
		zap.String("employee_id", created.EmployeeID),
	)
	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context) ([]ScheduleResponse, error) {
	schedules, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(schedules), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateScheduleRequest) (ScheduleResponse, error) {
	s.logger.Debug("update schedule requested",
		zap.String("schedule_id", id),
		zap.String("employee_id", req.EmployeeID),
	)

	emp, err := s.directory.FindByID(req.EmployeeID)
	if err != nil {
		return ScheduleResponse{}, err
	}

	entry, err := s.buildEntry(ctx, emp, req.StartDate, req.EndDate, req.WorkType, req.HalfDay)
	if err != nil {
		s.logger.Warn("update schedule validation failed", zap.Error(err))
		return ScheduleResponse{}, err
	}
	entry.ID = id

	if err := s.store.Update(ctx, entry); err != nil {
		s.logger.Warn("update schedule failed", zap.String("schedule_id", id), zap.Error(err))
		return ScheduleResponse{}, err
	}

	s.publish(ctx, events.ScheduleUpdated, entry)
	s.logger.Info("update schedule success", zap.String("schedule_id", id))
	return mapToResponse(entry), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Error("delete schedule failed", zap.String("schedule_id", id), zap.Error(err))
		return err
	}

	s.publish(ctx, events.ScheduleDeleted, Schedule{ID: id})
	s.logger.Info("delete schedule success", zap.String("schedule_id", id))
	return nil
}

// Lookup returns the first stored entry covering date for the employee.
// Overlapping entries are permitted by the store; first match wins.
func (s *service) Lookup(ctx context.Context, employeeID string, date time.Time) (LookupResponse, error) {
	schedules, err := s.store.FindAll(ctx)
	if err != nil {
		return LookupResponse{}, err
	}

	date = calendar.DateOf(date)
	for _, entry := range schedules {
		if entry.EmployeeID == employeeID && entry.Contains(date) {
			resp := mapToResponse(entry)
			return LookupResponse{Found: true, Schedule: &resp}, nil
		}
	}
	return LookupResponse{Found: false}, nil
}

// Board builds the grid read model over the business days in
// [from, from+days]. A zero from defaults to the start of the current week
// (the Sunday on or before today).
func (s *service) Board(ctx context.Context, from time.Time, days int) (BoardResponse, error) {
	if from.IsZero() {
		from = s.cal.WeekStart(time.Now().UTC())
	}
	from = calendar.DateOf(from)
	to := from.AddDate(0, 0, days)

	all, err := s.cal.BusinessDays(ctx, from, to)
	if err != nil {
		return BoardResponse{}, err
	}

	businessDays := make([]calendar.BusinessDay, 0, len(all))
	for _, d := range all {
		if d.IsBusinessDay {
			businessDays = append(businessDays, d)
		}
	}

	schedules, err := s.store.FindAll(ctx)
	if err != nil {
		return BoardResponse{}, err
	}

	boardDays := make([]BoardDay, len(businessDays))
	for i, d := range businessDays {
		boardDays[i] = BoardDay{
			Date:    d.Date.Format("2006-01-02"),
			DayType: string(s.cal.DayType(d.Date)),
		}
	}

	employees := s.directory.List()
	rows := make([]BoardRow, 0, len(employees))
	for _, emp := range employees {
		cells := make([]BoardCell, len(businessDays))
		for i, d := range businessDays {
			cell := BoardCell{Date: d.Date.Format("2006-01-02")}
			for _, entry := range schedules {
				if entry.EmployeeID == emp.ID && entry.Contains(d.Date) {
					resp := mapToResponse(entry)
					cell.Schedule = &resp
					break
				}
			}
			cells[i] = cell
		}
		rows = append(rows, mapEmployeeRow(emp, cells))
	}

	return BoardResponse{
		From: from.Format("2006-01-02"),
		To:   to.Format("2006-01-02"),
		Days: boardDays,
		Rows: rows,
	}, nil
}

// buildEntry parses and validates request fields into a Schedule. Runs
// every rule before any store mutation: fail closed.
func (s *service) buildEntry(
	ctx context.Context,
	emp employee.Employee,
	startDate, endDate, workType, halfDay string,
) (Schedule, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return Schedule{}, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return Schedule{}, err
	}

	wt, err := NewWorkType(BaseWorkType(workType), HalfDayWorkType(halfDay))
	if err != nil {
		return Schedule{}, err
	}

	if err := s.validateRange(ctx, start, end); err != nil {
		return Schedule{}, err
	}

	return Schedule{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		StartDate:    start,
		EndDate:      end,
		WorkType:     wt,
	}, nil
}

// validateRange enforces end >= start and business-day endpoints. Days in
// between are deliberately not checked: a range may span a weekend.
func (s *service) validateRange(ctx context.Context, start, end time.Time) error {
	if end.Before(start) {
		return scheduleerrors.ErrInvalidDateRange
	}

	for _, d := range []time.Time{start, end} {
		ok, err := s.cal.IsBusinessDay(ctx, d)
		if err != nil {
			return err
		}
		if !ok {
			return scheduleerrors.ErrNonBusinessDay
		}
	}
	return nil
}

func (s *service) publish(ctx context.Context, eventType string, entry Schedule) {
	err := s.publisher.PublishScheduleChanged(ctx, events.ScheduleChangedEvent{
		EventType:  eventType,
		ScheduleID: entry.ID,
		EmployeeID: entry.EmployeeID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn("schedule event publish failed",
			zap.String("event_type", eventType),
			zap.String("schedule_id", entry.ID),
			zap.Error(err),
		)
	}
}

func parseDate(v string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
	if err != nil {
		return time.Time{}, scheduleerrors.ErrInvalidDateFormat
	}
	return t, nil
}
