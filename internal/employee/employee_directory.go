package employee

import (
	employeeerrors "github.com/fjtyk95/work-schedule/internal/employee/errors"
)

// Directory is the read-only employee lookup. The static implementation
// below is the whole deployment story for now; a company directory service
// would slot in behind the same interface.
type Directory interface {
	FindByID(id string) (Employee, error)
	List() []Employee
}

type StaticDirectory struct {
	employees []Employee
	byID      map[string]Employee
}

func NewStaticDirectory(employees []Employee) *StaticDirectory {
	byID := make(map[string]Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}
	return &StaticDirectory{employees: employees, byID: byID}
}

// DefaultRoster is the fixed seed roster.
func DefaultRoster() []Employee {
	return []Employee{
		{ID: "E001", Name: "Taro Yamada", Department: "Sales"},
		{ID: "E002", Name: "Hanako Suzuki", Department: "General Affairs"},
		{ID: "E003", Name: "Ichiro Sato", Department: "Engineering"},
	}
}

func (d *StaticDirectory) FindByID(id string) (Employee, error) {
	e, ok := d.byID[id]
	if !ok {
		return Employee{}, employeeerrors.ErrEmployeeNotFound
	}
	return e, nil
}

// List returns employees in insertion order.
func (d *StaticDirectory) List() []Employee {
	out := make([]Employee, len(d.employees))
	copy(out, d.employees)
	return out
}
