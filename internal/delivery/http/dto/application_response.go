package dto

import "time"

type ApplicationResponse struct {
	ID        int64     `json:"id"`
	PersonID  int64     `json:"person_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type ApplicationListItem struct {
	ID        int64     `json:"id"`
	PersonID  int64     `json:"person_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
}

type CompetenceDetailResponse struct {
	YearsOfExperience float64 `json:"years_of_experience"`
	Name              string  `json:"name"`
}

type AvailabilityDetailResponse struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

type ApplicantProfileResponse struct {
	ID             int64                        `json:"id"`
	PersonID       int64                        `json:"person_id"`
	Status         string                       `json:"status"`
	Name           string                       `json:"name"`
	Surname        string                       `json:"surname"`
	Competences    []CompetenceDetailResponse   `json:"competences"`
	Availabilities []AvailabilityDetailResponse `json:"availabilities"`
}

type StatusUpdateResponse struct {
	Updated bool   `json:"updated"`
	ID      int64  `json:"id"`
	Status  string `json:"status,omitempty"`
}
