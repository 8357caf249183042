package testutils

import (
	"testing"

	"github.com/linskybing/gigboard/internal/domain/job"
	"github.com/linskybing/gigboard/internal/domain/proposal"
	"github.com/linskybing/gigboard/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func CreateUser(t *testing.T, gdb *gorm.DB, username string, role user.Role) user.User {
	t.Helper()
	u := user.User{Username: username, Password: "x", Role: role}
	require.NoError(t, gdb.Create(&u).Error)
	return u
}

func CreateOpenJob(t *testing.T, gdb *gorm.DB, clientID uint, budget string) job.Job {
	t.Helper()
	j := job.Job{
		ClientID:        clientID,
		Title:           "Landing page",
		Description:     "Build a landing page",
		Budget:          decimal.RequireFromString(budget),
		BudgetType:      job.BudgetFixed,
		ExperienceLevel: job.ExperienceIntermediate,
		Status:          job.StatusOpen,
	}
	require.NoError(t, gdb.Create(&j).Error)
	return j
}

// CreateProposalAt inserts a proposal already sitting at stage.
func CreateProposalAt(t *testing.T, gdb *gorm.DB, jobID, freelancerID uint, bid string, stage proposal.Status) proposal.Proposal {
	t.Helper()
	p := proposal.Proposal{
		JobID:        jobID,
		FreelancerID: freelancerID,
		BidAmount:    decimal.RequireFromString(bid),
		Status:       stage,
	}
	require.NoError(t, gdb.Create(&p).Error)
	return p
}
