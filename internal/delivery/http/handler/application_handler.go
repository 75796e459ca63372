package handler

import (
	"errors"
	"strconv"

	"recruitly/internal/delivery/http/dto"
	"recruitly/internal/delivery/http/middleware"
	"recruitly/internal/pkg/response"
	"recruitly/internal/pkg/validate"
	"recruitly/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type expertiseRequest struct {
	CompetenceID      int64   `json:"competence_id"`
	YearsOfExperience float64 `json:"years_of_experience"`
}

type availabilityRequest struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

type submitApplicationRequest struct {
	Expertise    []expertiseRequest    `json:"expertise"`
	Availability []availabilityRequest `json:"availability"`
}

type applicationDetailRequest struct {
	ID       int64  `json:"id"`
	PersonID int64  `json:"person_id"`
	Status   string `json:"status"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// RegisterApplicantRoutes holds the one operation an applicant session may
// perform; everything else is recruiter-gated.
func (h *ApplicationHandler) RegisterApplicantRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Submit)
}

func (h *ApplicationHandler) RegisterRecruiterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/detail", h.Detail)
	r.Patch("/:id/status", h.UpdateStatus)
}

// Submit creates the application for the session's person; the owner is
// never taken from the request body.
func (h *ApplicationHandler) Submit(c fiber.Ctx) error {
	personID, ok := middleware.PersonIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusForbidden, "session invalid", nil, nil)
	}

	var req submitApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.SubmitApplicationInput{PersonID: personID}
	for _, e := range req.Expertise {
		in.Expertise = append(in.Expertise, usecase.ExpertiseInput{
			CompetenceID:      e.CompetenceID,
			YearsOfExperience: e.YearsOfExperience,
		})
	}
	for _, a := range req.Availability {
		in.Availability = append(in.Availability, usecase.AvailabilityInput{
			FromDate: a.FromDate,
			ToDate:   a.ToDate,
		})
	}

	app, err := h.uc.Submit(c.Context(), in)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	res := dto.ApplicationResponse{
		ID:        app.ID,
		PersonID:  app.PersonID,
		Status:    string(app.Status),
		CreatedAt: app.CreatedAt,
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, res)
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	res := make([]dto.ApplicationListItem, 0, len(items))
	for _, it := range items {
		res = append(res, dto.ApplicationListItem{
			ID:        it.ID,
			PersonID:  it.PersonID,
			Status:    string(it.Status),
			CreatedAt: it.CreatedAt,
			Name:      it.Name,
			Surname:   it.Surname,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ApplicationHandler) Detail(c fiber.Ctx) error {
	var req applicationDetailRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	profile, err := h.uc.Detail(c.Context(), usecase.DetailInput{
		ID:       req.ID,
		PersonID: req.PersonID,
		Status:   req.Status,
		Name:     req.Name,
		Surname:  req.Surname,
	})
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	res := dto.ApplicantProfileResponse{
		ID:             profile.ID,
		PersonID:       profile.PersonID,
		Status:         string(profile.Status),
		Name:           profile.Name,
		Surname:        profile.Surname,
		Competences:    make([]dto.CompetenceDetailResponse, 0, len(profile.Competences)),
		Availabilities: make([]dto.AvailabilityDetailResponse, 0, len(profile.Availabilities)),
	}
	for _, comp := range profile.Competences {
		res.Competences = append(res.Competences, dto.CompetenceDetailResponse{
			YearsOfExperience: comp.YearsOfExperience,
			Name:              comp.Name,
		})
	}
	for _, av := range profile.Availabilities {
		res.Availabilities = append(res.Availabilities, dto.AvailabilityDetailResponse{
			FromDate: av.FromDate,
			ToDate:   av.ToDate,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	if !res.Updated {
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.StatusUpdateResponse{
		Updated: res.Updated,
		ID:      res.ID,
		Status:  string(res.Status),
	})
}

func mapApplicationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var ve *validate.Error
	switch {
	case errors.As(err, &ve):
		return err
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
