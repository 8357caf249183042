package application

import (
	"strings"

	"github.com/linskybing/gigboard/internal/domain/audit"
	"github.com/linskybing/gigboard/internal/domain/job"
	"github.com/linskybing/gigboard/internal/repository"
	"github.com/linskybing/gigboard/pkg/apperr"
	"github.com/linskybing/gigboard/pkg/utils"
)

type JobService struct {
	Repos *repository.Repos
}

func NewJobService(repos *repository.Repos) *JobService {
	return &JobService{
		Repos: repos,
	}
}

// PostJob publishes a job for clientID. Budget type defaults to Fixed and
// experience to Intermediate when left empty.
func (s *JobService) PostJob(clientID uint, input job.CreateJobInput) (job.Job, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return job.Job{}, apperr.Validation("title is required")
	}
	desc := strings.TrimSpace(input.Description)
	if desc == "" {
		return job.Job{}, apperr.Validation("description is required")
	}
	budget, err := cents("budget", input.Budget)
	if err != nil {
		return job.Job{}, err
	}
	if budget.IsNegative() {
		return job.Job{}, apperr.Validation("budget must not be negative")
	}

	budgetType := input.BudgetType
	if budgetType == "" {
		budgetType = job.BudgetFixed
	}
	if budgetType != job.BudgetFixed && budgetType != job.BudgetHourly {
		return job.Job{}, apperr.Validation("unknown budget type %q", input.BudgetType)
	}

	level := input.ExperienceLevel
	if level == "" {
		level = job.ExperienceIntermediate
	}
	switch level {
	case job.ExperienceEntry, job.ExperienceIntermediate, job.ExperienceExpert:
	default:
		return job.Job{}, apperr.Validation("unknown experience level %q", input.ExperienceLevel)
	}

	j := job.Job{
		ClientID:        clientID,
		Title:           title,
		Description:     desc,
		Budget:          budget,
		BudgetType:      budgetType,
		ExperienceLevel: level,
		Skills:          cleanSkills(input.Skills),
		Status:          job.StatusOpen,
	}
	if err := s.Repos.Job.CreateJob(&j); err != nil {
		return job.Job{}, storeErr("job", err)
	}

	recordAudit(s.Repos, utils.AuditEvent{
		UserID:       clientID,
		Action:       audit.ActionJobPost,
		ResourceType: audit.ResourceJob,
		ResourceID:   idString(j.ID),
		After:        j,
		Description:  "posted job " + j.Title,
	})
	return j, nil
}

// ListOpenJobs is the find-work feed, newest first.
func (s *JobService) ListOpenJobs() ([]job.Job, error) {
	jobs, err := s.Repos.Job.ListOpenJobs()
	return jobs, storeErr("job", err)
}

func (s *JobService) ListClientJobs(clientID uint) ([]job.Job, error) {
	jobs, err := s.Repos.Job.ListJobsByClient(clientID)
	return jobs, storeErr("job", err)
}

func (s *JobService) GetJob(id uint) (job.Job, error) {
	j, err := s.Repos.Job.GetJobByID(id)
	return j, storeErr("job", err)
}

// cleanSkills trims entries and drops blanks and repeats, keeping order.
func cleanSkills(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
