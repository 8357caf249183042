package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/gigboard/internal/application"
	"github.com/linskybing/gigboard/internal/domain/job"
)

type JobHandler struct {
	svc *application.JobService
}

func NewJobHandler(svc *application.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// PostJob godoc
// @Summary Post a job
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body job.CreateJobInput true "Job"
// @Success 201 {object} job.Job
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Clients only"
// @Router /jobs [post]
func (h *JobHandler) PostJob(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var input job.CreateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}

	j, err := h.svc.PostJob(uid, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, j)
}

// ListOpenJobs godoc
// @Summary Open jobs, newest first
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Success 200 {array} job.Job
// @Router /jobs [get]
func (h *JobHandler) ListOpenJobs(c *gin.Context) {
	jobs, err := h.svc.ListOpenJobs()
	if err != nil {
		writeError(c, err)
		return
	}
	if jobs == nil {
		jobs = []job.Job{}
	}
	c.JSON(http.StatusOK, jobs)
}

// ListMyJobs godoc
// @Summary Jobs posted by the caller
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Success 200 {array} job.Job
// @Router /jobs/mine [get]
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	jobs, err := h.svc.ListClientJobs(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	if jobs == nil {
		jobs = []job.Job{}
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary Get a job
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} job.Job
// @Failure 404 {object} response.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := pathID(c, "job")
	if !ok {
		return
	}
	j, err := h.svc.GetJob(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}
