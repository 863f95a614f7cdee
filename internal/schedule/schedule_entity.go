package schedule

import (
	"time"

	scheduleerrors "github.com/fjtyk95/work-schedule/internal/schedule/errors"
)

type BaseWorkType string

const (
	WorkOnSite    BaseWorkType = "ON_SITE"
	WorkRemote    BaseWorkType = "REMOTE"
	WorkAMLeave   BaseWorkType = "AM_LEAVE"
	WorkPMLeave   BaseWorkType = "PM_LEAVE"
	WorkFullLeave BaseWorkType = "FULL_LEAVE"
)

// HalfDayWorkType records how the working half of a half-day-leave is spent.
type HalfDayWorkType string

const (
	HalfOnSite HalfDayWorkType = "ON_SITE"
	HalfRemote HalfDayWorkType = "REMOTE"
)

// Compound reports whether the base type carries a half-day sub-type.
// Only AM_LEAVE and PM_LEAVE do.
func (b BaseWorkType) Compound() bool {
	return b == WorkAMLeave || b == WorkPMLeave
}

func (b BaseWorkType) valid() bool {
	switch b {
	case WorkOnSite, WorkRemote, WorkAMLeave, WorkPMLeave, WorkFullLeave:
		return true
	}
	return false
}

func (h HalfDayWorkType) valid() bool {
	return h == HalfOnSite || h == HalfRemote
}

// WorkType is a tagged value: Half is set iff Base is compound. Construct
// through NewWorkType so the invariant holds everywhere.
type WorkType struct {
	Base BaseWorkType
	Half HalfDayWorkType
}

// NewWorkType validates and packs a base category with its optional
// half-day sub-type. It rejects a sub-type on a non-compound base and a
// missing sub-type on a compound one.
func NewWorkType(base BaseWorkType, half HalfDayWorkType) (WorkType, error) {
	if !base.valid() {
		return WorkType{}, scheduleerrors.ErrInvalidWorkType
	}
	if base.Compound() {
		if !half.valid() {
			return WorkType{}, scheduleerrors.ErrInvalidWorkType
		}
		return WorkType{Base: base, Half: half}, nil
	}
	if half != "" {
		return WorkType{}, scheduleerrors.ErrInvalidWorkType
	}
	return WorkType{Base: base}, nil
}

// Parts unpacks the work type back into base + optional sub-type. Lossless
// inverse of NewWorkType for every valid combination.
func (w WorkType) Parts() (BaseWorkType, HalfDayWorkType) {
	return w.Base, w.Half
}

// Schedule assigns an employee a work type over an inclusive date range.
// StartDate and EndDate are day-granularity UTC dates; EmployeeName is a
// denormalized snapshot taken at creation time.
type Schedule struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	StartDate    time.Time
	EndDate      time.Time
	WorkType     WorkType
}

// Contains reports whether d falls inside the inclusive range.
func (s Schedule) Contains(d time.Time) bool {
	return !d.Before(s.StartDate) && !d.After(s.EndDate)
}
