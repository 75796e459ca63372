package application

import "time"

// Status is the review state of a job application. The enum is closed:
// submissions start unhandled and recruiters may move an application between
// any of the three values (corrections are allowed, no terminal states).
type Status string

const (
	StatusUnhandled Status = "unhandled"
	StatusRejected  Status = "rejected"
	StatusAccepted  Status = "accepted"
)

// ParseStatus is the one place a caller-supplied status string is admitted
// into the enum. Matching is exact: no trimming, no case folding.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusUnhandled:
		return StatusUnhandled, true
	case StatusRejected:
		return StatusRejected, true
	case StatusAccepted:
		return StatusAccepted, true
	default:
		return "", false
	}
}

type JobApplication struct {
	ID        int64     `json:"id"`
	PersonID  int64     `json:"person_id"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Competence struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CompetenceProfile struct {
	ID                int64   `json:"id"`
	PersonID          int64   `json:"person_id"`
	CompetenceID      int64   `json:"competence_id"`
	YearsOfExperience float64 `json:"years_of_experience"`
}

type AvailabilityPeriod struct {
	ID       int64     `json:"id"`
	PersonID int64     `json:"person_id"`
	FromDate time.Time `json:"from_date"`
	ToDate   time.Time `json:"to_date"`
}
