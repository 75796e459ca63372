package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"recruitly/internal/database"
	"recruitly/internal/domain/application"
	"recruitly/internal/domain/person"
	"recruitly/internal/pkg/validate"
	"recruitly/internal/repository"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrInternal            = errors.New("internal error")
)

const competenceListCacheKey = "competences:list"

const dateLayout = "2006-01-02"

type ExpertiseInput struct {
	CompetenceID      int64
	YearsOfExperience float64
}

type AvailabilityInput struct {
	FromDate string
	ToDate   string
}

type SubmitApplicationInput struct {
	PersonID     int64
	Expertise    []ExpertiseInput
	Availability []AvailabilityInput
}

type ApplicationSummary struct {
	application.JobApplication

	Name    string `json:"name"`
	Surname string `json:"surname"`
}

type DetailInput struct {
	ID       int64
	PersonID int64
	Status   string
	Name     string
	Surname  string
}

type CompetenceDetail struct {
	YearsOfExperience float64 `json:"years_of_experience"`
	Name              string  `json:"name"`
}

type AvailabilityDetail struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

type ApplicantProfile struct {
	ID             int64                `json:"id"`
	PersonID       int64                `json:"person_id"`
	Status         application.Status   `json:"status"`
	Name           string               `json:"name"`
	Surname        string               `json:"surname"`
	Competences    []CompetenceDetail   `json:"competences"`
	Availabilities []AvailabilityDetail `json:"availabilities"`
}

// StatusUpdateResult replaces the old truthy-row contract: Updated says
// whether the application existed, the rest echoes the persisted state.
type StatusUpdateResult struct {
	Updated bool               `json:"updated"`
	ID      int64              `json:"id"`
	Status  application.Status `json:"status"`
}

// Notifier receives a committed submission. Implementations must not block;
// a nil Notifier disables notifications.
type Notifier interface {
	ApplicationSubmitted(app application.JobApplication)
}

// CompetenceCache fronts the static competence catalogue. A nil cache or a
// failing cache read degrades to the database.
type CompetenceCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, in SubmitApplicationInput) (application.JobApplication, error)
	List(ctx context.Context) ([]ApplicationSummary, error)
	Detail(ctx context.Context, in DetailInput) (ApplicantProfile, error)
	UpdateStatus(ctx context.Context, id int64, rawStatus string) (StatusUpdateResult, error)
	ListCompetences(ctx context.Context) ([]application.Competence, error)
}

type Application struct {
	db          database.DB
	apps        repository.ApplicationRepository
	competences repository.CompetenceRepository
	persons     person.Repository

	cache    CompetenceCache
	cacheTTL time.Duration
	notifier Notifier
	log      *log.Logger
}

func NewApplicationUsecase(
	db database.DB,
	apps repository.ApplicationRepository,
	competences repository.CompetenceRepository,
	persons person.Repository,
	cache CompetenceCache,
	cacheTTL time.Duration,
	notifier Notifier,
	logger *log.Logger,
) *Application {
	if logger == nil {
		logger = log.Default()
	}
	return &Application{
		db:          db,
		apps:        apps,
		competences: competences,
		persons:     persons,
		cache:       cache,
		cacheTTL:    cacheTTL,
		notifier:    notifier,
		log:         logger,
	}
}

// Submit validates the whole submission before any persistence call, then
// creates the competence profiles, availability periods and the application
// row inside one transaction. The status is always "unhandled"; it is not a
// caller input.
func (u *Application) Submit(ctx context.Context, in SubmitApplicationInput) (application.JobApplication, error) {
	if err := validate.PositiveInt(in.PersonID, "person_id"); err != nil {
		return application.JobApplication{}, err
	}
	if err := validate.NotEmptySlice(in.Expertise, "expertise"); err != nil {
		return application.JobApplication{}, err
	}
	if err := validate.NotEmptySlice(in.Availability, "availability"); err != nil {
		return application.JobApplication{}, err
	}

	for _, e := range in.Expertise {
		if err := validate.PositiveInt(e.CompetenceID, "expertise.competence_id"); err != nil {
			return application.JobApplication{}, err
		}
		if err := validate.NumberInRange(e.YearsOfExperience, 0, 50, "expertise.years_of_experience"); err != nil {
			return application.JobApplication{}, err
		}
	}

	periods, err := parseAvailability(in.Availability)
	if err != nil {
		return application.JobApplication{}, err
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		u.log.Printf("submit_application step=begin_tx status=error err=%v", err)
		return application.JobApplication{}, ErrInternal
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, e := range in.Expertise {
		if _, err := u.apps.CreateCompetenceProfile(ctx, tx, in.PersonID, e.CompetenceID, e.YearsOfExperience); err != nil {
			u.log.Printf("submit_application step=competence_profile status=error err=%v", err)
			return application.JobApplication{}, ErrInternal
		}
	}
	for _, p := range periods {
		if _, err := u.apps.CreateAvailabilityPeriod(ctx, tx, in.PersonID, p.from, p.to); err != nil {
			u.log.Printf("submit_application step=availability status=error err=%v", err)
			return application.JobApplication{}, ErrInternal
		}
	}

	app, err := u.apps.CreateApplication(ctx, tx, in.PersonID, application.StatusUnhandled)
	if err != nil {
		u.log.Printf("submit_application step=application status=error err=%v", err)
		return application.JobApplication{}, ErrInternal
	}

	if err := tx.Commit(ctx); err != nil {
		u.log.Printf("submit_application step=commit status=error err=%v", err)
		return application.JobApplication{}, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.ApplicationSubmitted(app)
	}

	return app, nil
}

// List returns every application with the owner's name and surname merged
// in. Owners are looked up one by one; fine at this scale.
func (u *Application) List(ctx context.Context) ([]ApplicationSummary, error) {
	apps, err := u.apps.ListApplications(ctx)
	if err != nil {
		u.log.Printf("list_applications step=list status=error err=%v", err)
		return nil, ErrInternal
	}

	out := make([]ApplicationSummary, 0, len(apps))
	for _, app := range apps {
		owner, err := u.persons.FindByID(ctx, app.PersonID)
		if err != nil {
			u.log.Printf("list_applications step=owner_lookup person_id=%d status=error err=%v", app.PersonID, err)
			return nil, ErrInternal
		}
		out = append(out, ApplicationSummary{
			JobApplication: app,
			Name:           owner.Name,
			Surname:        owner.Surname,
		})
	}
	return out, nil
}

// Detail re-validates the caller-echoed basic fields, then joins the owning
// person's competence profiles and availability periods into one profile.
func (u *Application) Detail(ctx context.Context, in DetailInput) (ApplicantProfile, error) {
	if err := validate.PositiveInt(in.ID, "id"); err != nil {
		return ApplicantProfile{}, err
	}
	if err := validate.PositiveInt(in.PersonID, "person_id"); err != nil {
		return ApplicantProfile{}, err
	}
	status, ok := application.ParseStatus(in.Status)
	if !ok {
		return ApplicantProfile{}, &validate.Error{Field: "status", Message: "must be one of unhandled, rejected, accepted"}
	}
	if err := validate.NonEmptyString(in.Name, "name"); err != nil {
		return ApplicantProfile{}, err
	}
	if err := validate.Alphabetic(in.Name, "name"); err != nil {
		return ApplicantProfile{}, err
	}
	if err := validate.NonEmptyString(in.Surname, "surname"); err != nil {
		return ApplicantProfile{}, err
	}
	if err := validate.Alphabetic(in.Surname, "surname"); err != nil {
		return ApplicantProfile{}, err
	}

	profiles, err := u.competences.FindProfilesByPerson(ctx, in.PersonID)
	if err != nil {
		u.log.Printf("application_detail step=profiles person_id=%d status=error err=%v", in.PersonID, err)
		return ApplicantProfile{}, ErrInternal
	}
	availability, err := u.competences.FindAvailabilityByPerson(ctx, in.PersonID)
	if err != nil {
		u.log.Printf("application_detail step=availability person_id=%d status=error err=%v", in.PersonID, err)
		return ApplicantProfile{}, ErrInternal
	}

	out := ApplicantProfile{
		ID:             in.ID,
		PersonID:       in.PersonID,
		Status:         status,
		Name:           in.Name,
		Surname:        in.Surname,
		Competences:    make([]CompetenceDetail, 0, len(profiles)),
		Availabilities: make([]AvailabilityDetail, 0, len(availability)),
	}

	for _, cp := range profiles {
		c, err := u.competences.FindCompetenceByID(ctx, cp.CompetenceID)
		if err != nil {
			u.log.Printf("application_detail step=competence_name competence_id=%d status=error err=%v", cp.CompetenceID, err)
			return ApplicantProfile{}, ErrInternal
		}
		out.Competences = append(out.Competences, CompetenceDetail{
			YearsOfExperience: cp.YearsOfExperience,
			Name:              c.Name,
		})
	}

	for _, av := range availability {
		out.Availabilities = append(out.Availabilities, AvailabilityDetail{
			FromDate: av.FromDate.Format(dateLayout),
			ToDate:   av.ToDate.Format(dateLayout),
		})
	}

	return out, nil
}

// UpdateStatus moves an application to any of the three legal values. No
// directed transition graph: the recruiter is trusted to correct mistakes,
// so accepted and rejected are not terminal.
func (u *Application) UpdateStatus(ctx context.Context, id int64, rawStatus string) (StatusUpdateResult, error) {
	if err := validate.PositiveInt(id, "job_application_id"); err != nil {
		return StatusUpdateResult{}, err
	}
	status, ok := application.ParseStatus(rawStatus)
	if !ok {
		return StatusUpdateResult{}, &validate.Error{Field: "status", Message: "must be one of unhandled, rejected, accepted"}
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		u.log.Printf("update_status step=begin_tx status=error err=%v", err)
		return StatusUpdateResult{}, ErrInternal
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	affected, err := u.apps.UpdateStatus(ctx, tx, id, status)
	if err != nil {
		u.log.Printf("update_status step=update id=%d status=error err=%v", id, err)
		return StatusUpdateResult{}, ErrInternal
	}
	if affected == 0 {
		return StatusUpdateResult{Updated: false, ID: id}, nil
	}

	if err := tx.Commit(ctx); err != nil {
		u.log.Printf("update_status step=commit id=%d status=error err=%v", id, err)
		return StatusUpdateResult{}, ErrInternal
	}

	return StatusUpdateResult{Updated: true, ID: id, Status: status}, nil
}

// ListCompetences serves the static catalogue, cache first.
func (u *Application) ListCompetences(ctx context.Context) ([]application.Competence, error) {
	if u.cache != nil {
		var cached []application.Competence
		if hit, err := u.cache.GetJSON(ctx, competenceListCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	items, err := u.competences.ListCompetences(ctx)
	if err != nil {
		u.log.Printf("list_competences step=list status=error err=%v", err)
		return nil, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, competenceListCacheKey, items, u.cacheTTL); err != nil {
			u.log.Printf("list_competences step=cache_set status=error err=%v", err)
		}
	}

	return items, nil
}

type availabilityPeriod struct {
	from time.Time
	to   time.Time
}

func parseAvailability(in []AvailabilityInput) ([]availabilityPeriod, error) {
	out := make([]availabilityPeriod, 0, len(in))
	for _, a := range in {
		from, err := time.Parse(dateLayout, a.FromDate)
		if err != nil {
			return nil, &validate.Error{Field: "availability.from_date", Message: "must be a date on the form YYYY-MM-DD"}
		}
		to, err := time.Parse(dateLayout, a.ToDate)
		if err != nil {
			return nil, &validate.Error{Field: "availability.to_date", Message: "must be a date on the form YYYY-MM-DD"}
		}
		if to.Before(from) {
			return nil, &validate.Error{Field: "availability", Message: "from_date must not be after to_date"}
		}
		out = append(out, availabilityPeriod{from: from, to: to})
	}
	return out, nil
}
