package repository

import (
	"github.com/linskybing/gigboard/internal/domain/job"
	"github.com/linskybing/gigboard/internal/domain/proposal"
	"gorm.io/gorm"
)

type JobRepo interface {
	CreateJob(j *job.Job) error
	GetJobByID(id uint) (job.Job, error)
	ListOpenJobs() ([]job.Job, error)
	ListJobsByClient(clientID uint) ([]job.Job, error)
	GetJobSummary(id uint) (proposal.JobSummary, error)
	// CloseIfOpen flips an open job to closed and reports whether this call
	// did it. A false result with nil error means the job was already closed.
	CloseIfOpen(id uint) (bool, error)
	WithTx(tx *gorm.DB) JobRepo
}

type DBJobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) *DBJobRepo {
	return &DBJobRepo{
		db: db,
	}
}

func (r *DBJobRepo) CreateJob(j *job.Job) error {
	return r.db.Create(j).Error
}

func (r *DBJobRepo) GetJobByID(id uint) (job.Job, error) {
	var j job.Job
	err := r.db.First(&j, id).Error
	return j, err
}

func (r *DBJobRepo) GetJobSummary(id uint) (proposal.JobSummary, error) {
	var s proposal.JobSummary
	err := r.db.Table("jobs j").
		Select(`
            j.id, j.title, j.budget, j.budget_type, j.status, j.client_id,
            COALESCE(NULLIF(u.full_name, ''), u.username) AS client_name
        `).
		Joins("JOIN users u ON u.id = j.client_id").
		Where("j.id = ?", id).
		Take(&s).Error
	return s, err
}

func (r *DBJobRepo) ListOpenJobs() ([]job.Job, error) {
	var jobs []job.Job
	err := r.db.Where("status = ?", job.StatusOpen).Order("created_at desc").Find(&jobs).Error
	return jobs, err
}

func (r *DBJobRepo) ListJobsByClient(clientID uint) ([]job.Job, error) {
	var jobs []job.Job
	err := r.db.Where("client_id = ?", clientID).Order("created_at desc").Find(&jobs).Error
	return jobs, err
}

func (r *DBJobRepo) CloseIfOpen(id uint) (bool, error) {
	res := r.db.Model(&job.Job{}).
		Where("id = ? AND status = ?", id, job.StatusOpen).
		Update("status", job.StatusClosed)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *DBJobRepo) WithTx(tx *gorm.DB) JobRepo {
	if tx == nil {
		return r
	}
	return &DBJobRepo{
		db: tx,
	}
}
