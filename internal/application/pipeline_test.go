package application

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/gigboard/internal/domain/audit"
	"github.com/linskybing/gigboard/internal/domain/contract"
	"github.com/linskybing/gigboard/internal/domain/job"
	"github.com/linskybing/gigboard/internal/domain/proposal"
	"github.com/linskybing/gigboard/internal/domain/user"
	"github.com/linskybing/gigboard/internal/repository"
	"github.com/linskybing/gigboard/internal/repository/mock"
	"github.com/linskybing/gigboard/internal/testutils"
	"github.com/linskybing/gigboard/pkg/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type marketFixture struct {
	db         *gorm.DB
	repos      *repository.Repos
	client     user.User
	freelancer user.User
	other      user.User
	job        job.Job
}

func setupMarket(t *testing.T) marketFixture {
	gdb := testutils.NewSQLiteDB(t)
	client := testutils.CreateUser(t, gdb, "client", user.RoleClient)
	freelancer := testutils.CreateUser(t, gdb, "freelancer", user.RoleFreelancer)
	other := testutils.CreateUser(t, gdb, "other", user.RoleFreelancer)
	j := testutils.CreateOpenJob(t, gdb, client.ID, "500")
	return marketFixture{
		db:         gdb,
		repos:      repository.NewRepositories(gdb),
		client:     client,
		freelancer: freelancer,
		other:      other,
		job:        j,
	}
}

func reloadJob(t *testing.T, gdb *gorm.DB, id uint) job.Job {
	t.Helper()
	var j job.Job
	require.NoError(t, gdb.First(&j, id).Error)
	return j
}

func reloadProposal(t *testing.T, gdb *gorm.DB, id uint) proposal.Proposal {
	t.Helper()
	var p proposal.Proposal
	require.NoError(t, gdb.First(&p, id).Error)
	return p
}

func countContracts(t *testing.T, gdb *gorm.DB, jobID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(&contract.Contract{}).Where("job_id = ?", jobID).Count(&n).Error)
	return n
}

// --------------------- SubmitProposal ---------------------
func TestSubmitProposal_Success(t *testing.T) {
	f := setupMarket(t)
	svc := NewPipelineService(f.repos)

	p, err := svc.SubmitProposal(f.freelancer.ID, f.job.ID, proposal.SubmitProposalInput{
		BidAmount:   decimal.RequireFromString("450"),
		CoverLetter: "  I can do it  ",
	})
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusApplied, p.Status)
	assert.Equal(t, "I can do it", p.CoverLetter)
	assert.True(t, p.BidAmount.Equal(decimal.RequireFromString("450")))
}

func TestSubmitProposal_Rejections(t *testing.T) {
	f := setupMarket(t)
	svc := NewPipelineService(f.repos)
	bid := proposal.SubmitProposalInput{BidAmount: decimal.RequireFromString("100")}

	for _, amount := range []string{"0", "-5", "0.001", "0.004", "10000000000", "9999999999.999"} {
		_, err := svc.SubmitProposal(f.freelancer.ID, f.job.ID, proposal.SubmitProposalInput{BidAmount: decimal.RequireFromString(amount)})
		assert.ErrorIs(t, err, apperr.ErrValidation, amount)
	}

	_, err := svc.SubmitProposal(f.client.ID, f.job.ID, bid)
	assert.ErrorIs(t, err, apperr.ErrAuthorization)

	_, err = svc.SubmitProposal(f.freelancer.ID, 9999, bid)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.SubmitProposal(f.freelancer.ID, f.job.ID, bid)
	require.NoError(t, err)
	_, err = svc.SubmitProposal(f.freelancer.ID, f.job.ID, bid)
	assert.ErrorIs(t, err, apperr.ErrDuplicate)

	var n int64
	require.NoError(t, f.db.Model(&proposal.Proposal{}).Where("job_id = ?", f.job.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestSubmitProposal_BidRoundedToCents(t *testing.T) {
	f := setupMarket(t)
	svc := NewPipelineService(f.repos)

	p, err := svc.SubmitProposal(f.freelancer.ID, f.job.ID, proposal.SubmitProposalInput{BidAmount: decimal.RequireFromString("0.005")})
	require.NoError(t, err)
	assert.Equal(t, "0.01", p.BidAmount.StringFixed(2))

	stored, err := f.repos.Proposal.GetProposalByID(p.ID)
	require.NoError(t, err)
	assert.True(t, stored.BidAmount.IsPositive())

	p, err = svc.SubmitProposal(f.other.ID, f.job.ID, proposal.SubmitProposalInput{BidAmount: decimal.RequireFromString("9999999999.99")})
	require.NoError(t, err)
	assert.Equal(t, "9999999999.99", p.BidAmount.StringFixed(2))
}

func TestSubmitProposal_ClosedJob(t *testing.T) {
	f := setupMarket(t)
	require.NoError(t, f.db.Model(&job.Job{}).Where("id = ?", f.job.ID).Update("status", job.StatusClosed).Error)

	svc := NewPipelineService(f.repos)
	_, err := svc.SubmitProposal(f.freelancer.ID, f.job.ID, proposal.SubmitProposalInput{BidAmount: decimal.RequireFromString("10")})
	assert.ErrorIs(t, err, apperr.ErrPrecondition)
}

// --------------------- Advance ---------------------
func TestAdvance_FullPathToHire(t *testing.T) {
	f := setupMarket(t)
	svc := NewPipelineService(f.repos)
	p := testutils.CreateProposalAt(t, f.db, f.job.ID, f.freelancer.ID, "420.50", proposal.StatusApplied)

	for _, to := range []proposal.Status{proposal.StatusViewed, proposal.StatusInterview} {
		got, err := svc.Advance(f.client.ID, p.ID, to)
		require.NoError(t, err)
		assert.Equal(t, to, got.Status)
		assert.True(t, reloadJob(t, f.db, f.job.ID).IsOpen())
	}

	got, c, err := svc.Hire(f.client.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusHired, got.Status)
	assert.True(t, c.Budget.Equal(decimal.RequireFromString("420.50")))
	assert.Equal(t, f.freelancer.ID, c.FreelancerID)
	assert.Equal(t, f.client.ID, c.ClientID)
	assert.Equal(t, contract.StatusActive, c.Status)

	assert.Equal(t, job.StatusClosed, reloadJob(t, f.db, f.job.ID).Status)
	assert.Equal(t, proposal.StatusHired, reloadProposal(t, f.db, p.ID).Status)
	assert.EqualValues(t, 1, countContracts(t, f.db, f.job.ID))

	logs, err := f.repos.Audit.GetAuditLogs(repository.AuditQuery{UserID: f.client.ID})
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, audit.ActionHire, logs[0].Action)
}

func TestAdvance_HireViaAdvance(t *testing.T) {
	f := setupMarket(t)
	svc := NewPipelineService(f.repos)
	p := testutils.CreateProposalAt(t, f.db, f.job.ID, f.freelancer.ID, "300", proposal.StatusInterview)

	got, err := svc.Advance(f.client.ID, p.ID, proposal.StatusHired)
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusHired, got.Status)
	assert.EqualValues(t, 1, countContracts(t, f.db, f.job.ID))
}

func TestAdvance_IllegalMovesLeaveStateAlone(t *testing.T) {
	f := setupMarket(t)
	svc := NewPipelineService(f.repos)
	p := testutils.CreateProposalAt(t, f.db, f.job.ID, f.freelancer.ID, "300", proposal.StatusViewed)

	cases := []proposal.Status{
		proposal.StatusApplied, // backwards
		proposal.StatusViewed,  // same stage
		proposal.StatusHired,   // skip
	}
	for _, to := range cases {
		_, err := svc.Advance(f.client.ID, p.ID, to)
		assert.ErrorIs(t, err, apperr.ErrPrecondition, "to %s", to)
		assert.Equal(t, proposal.StatusViewed, reloadProposal(t, f.db, p.ID).Status)
	}

	_, err := svc.Advance(f.client.ID, p.ID, proposal.Status("shortlisted"))
	assert.ErrorIs(t, err, apperr.ErrValidation)

	assert.True(t, reloadJob(t, f.db, f.job.ID).IsOpen())
	assert.Zero(t, countContracts(t, f.db, f.job.ID))
}

func TestAdvance_OnlyTheClient(t *testing.T) {
	f := setupMarket(t)
	svc := NewPipelineService(f.repos)
	otherClient := testutils.CreateUser(t, f.db, "other-client", user.RoleClient)
	p := testutils.CreateProposalAt(t, f.db, f.job.ID, f.freelancer.ID, "300", proposal.StatusInterview)

	for _, actor := range []uint{f.freelancer.ID, f.other.ID, otherClient.ID} {
		_, err := svc.Advance(actor, p.ID, proposal.StatusHired)
		assert.ErrorIs(t, err, apperr.ErrAuthorization)
	}
	assert.Equal(t, proposal.StatusInterview, reloadProposal(t, f.db, p.ID).Status)
	assert.True(t, reloadJob(t, f.db, f.job.ID).IsOpen())
}

func TestAdvance_ClosedJobBlocksOtherProposals(t *testing.T) {
	f := setupMarket(t)
	svc := NewPipelineService(f.repos)
	winner := testutils.CreateProposalAt(t, f.db, f.job.ID, f.freelancer.ID, "300", proposal.StatusInterview)
	loser := testutils.CreateProposalAt(t, f.db, f.job.ID, f.other.ID, "250", proposal.StatusInterview)
	late := testutils.CreateProposalAt(t, f.db, f.job.ID, testutils.CreateUser(t, f.db, "late", user.RoleFreelancer).ID, "200", proposal.StatusApplied)

	_, err := svc.Advance(f.client.ID, winner.ID, proposal.StatusHired)
	require.NoError(t, err)

	_, err = svc.Advance(f.client.ID, loser.ID, proposal.StatusHired)
	assert.ErrorIs(t, err, apperr.ErrPrecondition)
	_, err = svc.Advance(f.client.ID, late.ID, proposal.StatusViewed)
	assert.ErrorIs(t, err, apperr.ErrPrecondition)

	assert.Equal(t, proposal.StatusInterview, reloadProposal(t, f.db, loser.ID).Status)
	assert.Equal(t, proposal.StatusApplied, reloadProposal(t, f.db, late.ID).Status)
	assert.EqualValues(t, 1, countContracts(t, f.db, f.job.ID))
}

func TestHire_ConcurrentOnlyOneWins(t *testing.T) {
	f := setupMarket(t)
	svc := NewPipelineService(f.repos)
	a := testutils.CreateProposalAt(t, f.db, f.job.ID, f.freelancer.ID, "300", proposal.StatusInterview)
	b := testutils.CreateProposalAt(t, f.db, f.job.ID, f.other.ID, "280", proposal.StatusInterview)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []uint{a.ID, b.ID} {
		wg.Add(1)
		go func(i int, id uint) {
			defer wg.Done()
			_, _, errs[i] = svc.Hire(f.client.ID, id)
		}(i, id)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, apperr.ErrPrecondition)
	}
	assert.Equal(t, 1, wins)
	assert.EqualValues(t, 1, countContracts(t, f.db, f.job.ID))
	assert.Equal(t, job.StatusClosed, reloadJob(t, f.db, f.job.ID).Status)

	hired := 0
	for _, id := range []uint{a.ID, b.ID} {
		if reloadProposal(t, f.db, id).Status == proposal.StatusHired {
			hired++
		}
	}
	assert.Equal(t, 1, hired)
}

func TestHire_ContractFailureRollsBack(t *testing.T) {
	f := setupMarket(t)
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockContract := mock.NewMockContractRepo(ctrl)
	mockContract.EXPECT().WithTx(gomock.Any()).Return(mockContract).AnyTimes()
	mockContract.EXPECT().CreateContract(gomock.Any()).Return(errors.New("disk full"))
	f.repos.Contract = mockContract

	svc := NewPipelineService(f.repos)
	p := testutils.CreateProposalAt(t, f.db, f.job.ID, f.freelancer.ID, "300", proposal.StatusInterview)

	_, _, err := svc.Hire(f.client.ID, p.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrStore)

	assert.True(t, reloadJob(t, f.db, f.job.ID).IsOpen())
	assert.Equal(t, proposal.StatusInterview, reloadProposal(t, f.db, p.ID).Status)
}

func TestHire_DuplicateContractRollsBack(t *testing.T) {
	f := setupMarket(t)
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockContract := mock.NewMockContractRepo(ctrl)
	mockContract.EXPECT().WithTx(gomock.Any()).Return(mockContract).AnyTimes()
	mockContract.EXPECT().CreateContract(gomock.Any()).Return(gorm.ErrDuplicatedKey)
	f.repos.Contract = mockContract

	svc := NewPipelineService(f.repos)
	p := testutils.CreateProposalAt(t, f.db, f.job.ID, f.freelancer.ID, "300", proposal.StatusInterview)

	_, err := svc.Advance(f.client.ID, p.ID, proposal.StatusHired)
	assert.ErrorIs(t, err, apperr.ErrDuplicate)
	assert.True(t, reloadJob(t, f.db, f.job.ID).IsOpen())
	assert.Equal(t, proposal.StatusInterview, reloadProposal(t, f.db, p.ID).Status)
}

// Random walks over the stage table never move a proposal backwards, and a
// hired proposal always comes with exactly one contract and a closed job.
func TestAdvance_RandomWalkInvariants(t *testing.T) {
	stages := []proposal.Status{
		proposal.StatusApplied,
		proposal.StatusViewed,
		proposal.StatusInterview,
		proposal.StatusHired,
	}
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 10; round++ {
		f := setupMarket(t)
		svc := NewPipelineService(f.repos)
		ps := []proposal.Proposal{
			testutils.CreateProposalAt(t, f.db, f.job.ID, f.freelancer.ID, "100", proposal.StatusApplied),
			testutils.CreateProposalAt(t, f.db, f.job.ID, f.other.ID, "120", proposal.StatusApplied),
		}

		for step := 0; step < 20; step++ {
			p := ps[rng.Intn(len(ps))]
			before := reloadProposal(t, f.db, p.ID).Status
			to := stages[rng.Intn(len(stages))]

			_, err := svc.Advance(f.client.ID, p.ID, to)
			after := reloadProposal(t, f.db, p.ID).Status

			assert.GreaterOrEqual(t, after.Rank(), before.Rank())
			if err != nil {
				assert.Equal(t, before, after)
			}

			j := reloadJob(t, f.db, f.job.ID)
			n := countContracts(t, f.db, f.job.ID)
			if j.IsOpen() {
				assert.Zero(t, n)
			} else {
				assert.EqualValues(t, 1, n)
			}
		}
	}
}

// --------------------- Reads ---------------------
func TestListProposalsForJob_OwnerOnly(t *testing.T) {
	f := setupMarket(t)
	svc := NewPipelineService(f.repos)
	testutils.CreateProposalAt(t, f.db, f.job.ID, f.freelancer.ID, "100", proposal.StatusApplied)

	ps, err := svc.ListProposalsForJob(f.client.ID, f.job.ID)
	require.NoError(t, err)
	assert.Len(t, ps, 1)

	_, err = svc.ListProposalsForJob(f.freelancer.ID, f.job.ID)
	assert.ErrorIs(t, err, apperr.ErrAuthorization)
}

func TestListProposalsForJob_ProfilesNewestFirst(t *testing.T) {
	f := setupMarket(t)
	svc := NewPipelineService(f.repos)

	name := "Ada Lovelace"
	require.NoError(t, f.db.Model(&user.User{}).Where("id = ?", f.freelancer.ID).
		Updates(map[string]any{"full_name": name, "bio": "Analytical engines"}).Error)

	older := testutils.CreateProposalAt(t, f.db, f.job.ID, f.freelancer.ID, "100", proposal.StatusApplied)
	newer := testutils.CreateProposalAt(t, f.db, f.job.ID, f.other.ID, "90", proposal.StatusApplied)
	require.NoError(t, f.db.Model(&proposal.Proposal{}).Where("id = ?", older.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	ps, err := svc.ListProposalsForJob(f.client.ID, f.job.ID)
	require.NoError(t, err)
	require.Len(t, ps, 2)

	assert.Equal(t, newer.ID, ps[0].ID)
	assert.Equal(t, f.other.ID, ps[0].Freelancer.ID)
	assert.Equal(t, "other", ps[0].Freelancer.Username)

	assert.Equal(t, older.ID, ps[1].ID)
	assert.Equal(t, "freelancer", ps[1].Freelancer.Username)
	require.NotNil(t, ps[1].Freelancer.FullName)
	assert.Equal(t, name, *ps[1].Freelancer.FullName)
	assert.Equal(t, "Analytical engines", ps[1].Freelancer.Bio)
	assert.True(t, ps[1].BidAmount.Equal(decimal.NewFromInt(100)))
}

func TestGetProposal_JobSummary(t *testing.T) {
	f := setupMarket(t)
	svc := NewPipelineService(f.repos)
	p := testutils.CreateProposalAt(t, f.db, f.job.ID, f.freelancer.ID, "100", proposal.StatusApplied)

	d, err := svc.GetProposal(f.freelancer.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, d.ID)
	assert.Equal(t, f.job.ID, d.Job.ID)
	assert.Equal(t, "Landing page", d.Job.Title)
	assert.True(t, d.Job.Budget.Equal(decimal.NewFromInt(500)), d.Job.Budget.String())
	assert.Equal(t, string(job.StatusOpen), d.Job.Status)
	assert.Equal(t, f.client.ID, d.Job.ClientID)
	assert.Equal(t, "client", d.Job.ClientName, "username when there is no full name")

	require.NoError(t, f.db.Model(&user.User{}).Where("id = ?", f.client.ID).Update("full_name", "Acme Hiring").Error)
	d, err = svc.GetProposal(f.client.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Hiring", d.Job.ClientName)
}

func TestGetProposal_Participants(t *testing.T) {
	f := setupMarket(t)
	svc := NewPipelineService(f.repos)
	p := testutils.CreateProposalAt(t, f.db, f.job.ID, f.freelancer.ID, "100", proposal.StatusApplied)

	_, err := svc.GetProposal(f.client.ID, p.ID)
	assert.NoError(t, err)
	_, err = svc.GetProposal(f.freelancer.ID, p.ID)
	assert.NoError(t, err)
	_, err = svc.GetProposal(f.other.ID, p.ID)
	assert.ErrorIs(t, err, apperr.ErrAuthorization)
	_, err = svc.GetProposal(f.client.ID, 9999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListMyProposals(t *testing.T) {
	f := setupMarket(t)
	svc := NewPipelineService(f.repos)
	second := testutils.CreateOpenJob(t, f.db, f.client.ID, "50")
	testutils.CreateProposalAt(t, f.db, f.job.ID, f.freelancer.ID, "100", proposal.StatusApplied)
	testutils.CreateProposalAt(t, f.db, second.ID, f.freelancer.ID, "40", proposal.StatusViewed)
	testutils.CreateProposalAt(t, f.db, second.ID, f.other.ID, "45", proposal.StatusApplied)

	ps, err := svc.ListMyProposals(f.freelancer.ID)
	require.NoError(t, err)
	assert.Len(t, ps, 2)
}
