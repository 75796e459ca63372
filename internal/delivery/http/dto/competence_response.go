package dto

type CompetenceResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
