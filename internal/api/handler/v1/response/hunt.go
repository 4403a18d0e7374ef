package response

import "github.com/vietanh2810/hunt-api/internal/domain"

type Access struct {
	HuntID  uint `json:"hunt_id"`
	Allowed bool `json:"allowed"`
}

type Participants struct {
	HuntID       uint                 `json:"hunt_id"`
	Participants []domain.Participant `json:"participants"`
}

type Health struct {
	Status string `json:"status"`
}
