package schedule

import (
	"context"
	"encoding/json"
	"time"

	scheduleerrors "github.com/fjtyk95/work-schedule/internal/schedule/errors"
	"github.com/fjtyk95/work-schedule/internal/shared/slot"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageKey is the single slot the whole collection lives under.
const StorageKey = "work_schedules"

type Store interface {
	// FindAll returns the stored collection, seeding it with the example
	// entries on first-ever read.
	FindAll(ctx context.Context) ([]Schedule, error)
	// Create assigns a fresh id, persists, and returns the stored entry.
	Create(ctx context.Context, s Schedule) (Schedule, error)
	// Update replaces the entry matching s.ID wholesale. No upsert: a
	// missing id is ErrScheduleNotFound.
	Update(ctx context.Context, s Schedule) error
	// Delete removes the entry by id. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id string) error
}

// scheduleRecord is the persisted form. Dates travel as YYYY-MM-DD strings
// and must be parsed back to time.Time on load; leaving them as strings
// would break every range comparison downstream.
type scheduleRecord struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	WorkType     string `json:"work_type"`
	HalfDay      string `json:"half_day,omitempty"`
}

type slotStore struct {
	slot   slot.Slot
	logger *zap.Logger
}

func NewStore(s slot.Slot, logger ...*zap.Logger) Store {
	l := zap.L().Named("schedule.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.store")
	}
	return &slotStore{slot: s, logger: l}
}

// seedSchedules is the fixed example data persisted on first use.
func seedSchedules() []Schedule {
	return []Schedule{
		{
			ID:           "1",
			EmployeeID:   "E001",
			EmployeeName: "Taro Yamada",
			StartDate:    time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			WorkType:     WorkType{Base: WorkOnSite},
		},
		{
			ID:           "2",
			EmployeeID:   "E002",
			EmployeeName: "Hanako Suzuki",
			StartDate:    time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC),
			WorkType:     WorkType{Base: WorkRemote},
		},
	}
}

func (st *slotStore) FindAll(ctx context.Context) ([]Schedule, error) {
	raw, ok, err := st.slot.Get(ctx, StorageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		seeds := seedSchedules()
		if err := st.persist(ctx, seeds); err != nil {
			return nil, err
		}
		st.logger.Info("schedule store seeded", zap.Int("count", len(seeds)))
		return seeds, nil
	}

	var records []scheduleRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}

	schedules := make([]Schedule, 0, len(records))
	for _, rec := range records {
		s, err := fromRecord(rec)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, nil
}

func (st *slotStore) Create(ctx context.Context, s Schedule) (Schedule, error) {
	schedules, err := st.FindAll(ctx)
	if err != nil {
		return Schedule{}, err
	}

	s.ID = uuid.New().String()
	schedules = append(schedules, s)

	if err := st.persist(ctx, schedules); err != nil {
		return Schedule{}, err
	}
	return s, nil
}

func (st *slotStore) Update(ctx context.Context, s Schedule) error {
	schedules, err := st.FindAll(ctx)
	if err != nil {
		return err
	}

	for i := range schedules {
		if schedules[i].ID == s.ID {
			schedules[i] = s
			return st.persist(ctx, schedules)
		}
	}
	return scheduleerrors.ErrScheduleNotFound
}

func (st *slotStore) Delete(ctx context.Context, id string) error {
	schedules, err := st.FindAll(ctx)
	if err != nil {
		return err
	}

	kept := schedules[:0]
	for _, s := range schedules {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	return st.persist(ctx, kept)
}

// persist writes the whole collection back in one shot. Read-modify-write
// with a single writer; a multi-writer deployment would need a version
// stamp and a CONFLICT error on stale updates.
func (st *slotStore) persist(ctx context.Context, schedules []Schedule) error {
	records := make([]scheduleRecord, len(schedules))
	for i, s := range schedules {
		records[i] = toRecord(s)
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return st.slot.Set(ctx, StorageKey, string(raw))
}

func toRecord(s Schedule) scheduleRecord {
	base, half := s.WorkType.Parts()
	return scheduleRecord{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		StartDate:    s.StartDate.Format("2006-01-02"),
		EndDate:      s.EndDate.Format("2006-01-02"),
		WorkType:     string(base),
		HalfDay:      string(half),
	}
}

func fromRecord(rec scheduleRecord) (Schedule, error) {
	start, err := time.ParseInLocation("2006-01-02", rec.StartDate, time.UTC)
	if err != nil {
		return Schedule{}, err
	}
	end, err := time.ParseInLocation("2006-01-02", rec.EndDate, time.UTC)
	if err != nil {
		return Schedule{}, err
	}
	wt, err := NewWorkType(BaseWorkType(rec.WorkType), HalfDayWorkType(rec.HalfDay))
	if err != nil {
		return Schedule{}, err
	}

	return Schedule{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		StartDate:    start,
		EndDate:      end,
		WorkType:     wt,
	}, nil
}
