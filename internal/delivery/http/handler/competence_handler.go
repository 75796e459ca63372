package handler

import (
	"recruitly/internal/delivery/http/dto"
	"recruitly/internal/pkg/response"
	"recruitly/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompetenceHandler struct {
	uc usecase.ApplicationUsecase
}

func NewCompetenceHandler(uc usecase.ApplicationUsecase) *CompetenceHandler {
	return &CompetenceHandler{uc: uc}
}

func (h *CompetenceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
}

func (h *CompetenceHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListCompetences(c.Context())
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	res := make([]dto.CompetenceResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.CompetenceResponse{ID: it.ID, Name: it.Name})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
