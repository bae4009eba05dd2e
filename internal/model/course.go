package model

// Course represents a course row. JSON keys keep the database column names
// because the web client consumes them verbatim.
type Course struct {
	StringID        string  `json:"string_id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Schedule        string  `json:"schedule"`
	ClassroomNumber string  `json:"classroom_number"`
	MaximumCapacity int     `json:"maximum_capacity"`
	CreditHours     int     `json:"credit_hours"`
	TuitionCost     float64 `json:"tuition_cost"`
}
