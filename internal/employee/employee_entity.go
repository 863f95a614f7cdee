package employee

// Employee is immutable reference data, loaded once at startup and never
// mutated by this service.
type Employee struct {
	ID         string
	Name       string
	Department string
}
