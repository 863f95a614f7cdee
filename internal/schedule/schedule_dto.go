package schedule

import "github.com/fjtyk95/work-schedule/internal/employee"

type CreateScheduleRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	WorkType   string `json:"work_type" binding:"required,oneof=ON_SITE REMOTE AM_LEAVE PM_LEAVE FULL_LEAVE"`
	HalfDay    string `json:"half_day" binding:"omitempty,oneof=ON_SITE REMOTE"`
}

type UpdateScheduleRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	WorkType   string `json:"work_type" binding:"required,oneof=ON_SITE REMOTE AM_LEAVE PM_LEAVE FULL_LEAVE"`
	HalfDay    string `json:"half_day" binding:"omitempty,oneof=ON_SITE REMOTE"`
}

type ScheduleResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	WorkType     string `json:"work_type"`
	HalfDay      string `json:"half_day,omitempty"`
}

// LookupResponse wraps the edit-vs-create decision the grid makes when a
// cell is clicked. Found=false is a normal answer, not an error.
type LookupResponse struct {
	Found    bool              `json:"found"`
	Schedule *ScheduleResponse `json:"schedule,omitempty"`
}

// Board is the weekly-grid read model: employees down, business days across.
type BoardDay struct {
	Date    string `json:"date"`
	DayType string `json:"day_type"`
}

type BoardCell struct {
	Date     string            `json:"date"`
	Schedule *ScheduleResponse `json:"schedule,omitempty"`
}

type BoardRow struct {
	EmployeeID   string      `json:"employee_id"`
	EmployeeName string      `json:"employee_name"`
	Department   string      `json:"department"`
	Cells        []BoardCell `json:"cells"`
}

type BoardResponse struct {
	From string     `json:"from"`
	To   string     `json:"to"`
	Days []BoardDay `json:"days"`
	Rows []BoardRow `json:"rows"`
}

func mapToResponse(s Schedule) ScheduleResponse {
	base, half := s.WorkType.Parts()
	return ScheduleResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		StartDate:    s.StartDate.Format("2006-01-02"),
		EndDate:      s.EndDate.Format("2006-01-02"),
		WorkType:     string(base),
		HalfDay:      string(half),
	}
}

func mapToListResponse(schedules []Schedule) []ScheduleResponse {
	resp := make([]ScheduleResponse, len(schedules))
	for i, s := range schedules {
		resp[i] = mapToResponse(s)
	}
	return resp
}

func mapEmployeeRow(e employee.Employee, cells []BoardCell) BoardRow {
	return BoardRow{
		EmployeeID:   e.ID,
		EmployeeName: e.Name,
		Department:   e.Department,
		Cells:        cells,
	}
}
