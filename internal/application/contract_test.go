package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/gigboard/internal/domain/contract"
	"github.com/linskybing/gigboard/internal/domain/payment"
	"github.com/linskybing/gigboard/internal/domain/proposal"
	"github.com/linskybing/gigboard/internal/repository/mock"
	"github.com/linskybing/gigboard/internal/testutils"
	"github.com/linskybing/gigboard/pkg/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func hiredContract(t *testing.T, f marketFixture, bid string) contract.Contract {
	t.Helper()
	p := testutils.CreateProposalAt(t, f.db, f.job.ID, f.freelancer.ID, bid, proposal.StatusInterview)
	_, c, err := NewPipelineService(f.repos).Hire(f.client.ID, p.ID)
	require.NoError(t, err)
	return c
}

func reloadContract(t *testing.T, gdb *gorm.DB, id uint) contract.Contract {
	t.Helper()
	var c contract.Contract
	require.NoError(t, gdb.First(&c, id).Error)
	return c
}

func countPayments(t *testing.T, gdb *gorm.DB, contractID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(&payment.Payment{}).Where("contract_id = ?", contractID).Count(&n).Error)
	return n
}

// --------------------- SubmitWork ---------------------
func TestSubmitWork_Once(t *testing.T) {
	f := setupMarket(t)
	c := hiredContract(t, f, "300")
	svc := NewContractService(f.repos)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return fixed }

	got, err := svc.SubmitWork(f.freelancer.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, got.WorkSubmitted)
	require.NotNil(t, got.WorkSubmittedAt)
	assert.True(t, fixed.Equal(*got.WorkSubmittedAt))
	assert.True(t, reloadContract(t, f.db, c.ID).WorkSubmitted)

	_, err = svc.SubmitWork(f.freelancer.ID, c.ID)
	assert.ErrorIs(t, err, apperr.ErrPrecondition)
}

func TestSubmitWork_OnlyTheFreelancer(t *testing.T) {
	f := setupMarket(t)
	c := hiredContract(t, f, "300")
	svc := NewContractService(f.repos)

	_, err := svc.SubmitWork(f.client.ID, c.ID)
	assert.ErrorIs(t, err, apperr.ErrAuthorization)
	_, err = svc.SubmitWork(f.other.ID, c.ID)
	assert.ErrorIs(t, err, apperr.ErrAuthorization)
	assert.False(t, reloadContract(t, f.db, c.ID).WorkSubmitted)
}

// --------------------- ReleasePayment ---------------------
func TestReleasePayment_Success(t *testing.T) {
	f := setupMarket(t)
	c := hiredContract(t, f, "275.25")
	svc := NewContractService(f.repos)

	_, err := svc.SubmitWork(f.freelancer.ID, c.ID)
	require.NoError(t, err)

	p, err := svc.ReleasePayment(f.client.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, p.Amount.Equal(decimal.RequireFromString("275.25")))
	assert.Equal(t, payment.StatusReleased, p.Status)
	assert.Equal(t, f.freelancer.ID, p.PayeeID)
	assert.Equal(t, f.client.ID, p.PayerID)

	stored := reloadContract(t, f.db, c.ID)
	assert.Equal(t, contract.StatusCompleted, stored.Status)
	assert.NotNil(t, stored.CompletedAt)
	assert.EqualValues(t, 1, countPayments(t, f.db, c.ID))

	_, err = svc.ReleasePayment(f.client.ID, c.ID)
	assert.ErrorIs(t, err, apperr.ErrPrecondition)
	assert.EqualValues(t, 1, countPayments(t, f.db, c.ID))

	_, err = svc.SubmitWork(f.freelancer.ID, c.ID)
	assert.ErrorIs(t, err, apperr.ErrPrecondition)
}

func TestReleasePayment_WithoutSubmittedWork(t *testing.T) {
	f := setupMarket(t)
	c := hiredContract(t, f, "100")

	_, err := NewContractService(f.repos).ReleasePayment(f.client.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, contract.StatusCompleted, reloadContract(t, f.db, c.ID).Status)
}

func TestReleasePayment_OnlyTheClient(t *testing.T) {
	f := setupMarket(t)
	c := hiredContract(t, f, "100")
	svc := NewContractService(f.repos)

	_, err := svc.ReleasePayment(f.freelancer.ID, c.ID)
	assert.ErrorIs(t, err, apperr.ErrAuthorization)
	_, err = svc.ReleasePayment(f.client.ID, 9999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, contract.StatusActive, reloadContract(t, f.db, c.ID).Status)
}

func TestReleasePayment_PaymentFailureRollsBack(t *testing.T) {
	f := setupMarket(t)
	c := hiredContract(t, f, "100")

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	mockPayment := mock.NewMockPaymentRepo(ctrl)
	mockPayment.EXPECT().WithTx(gomock.Any()).Return(mockPayment).AnyTimes()
	mockPayment.EXPECT().CreatePayment(gomock.Any()).Return(errors.New("connection reset"))
	f.repos.Payment = mockPayment

	_, err := NewContractService(f.repos).ReleasePayment(f.client.ID, c.ID)
	assert.ErrorIs(t, err, apperr.ErrStore)
	assert.Equal(t, contract.StatusActive, reloadContract(t, f.db, c.ID).Status)
}

func TestReleasePayment_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	f := setupMarket(t)
	mockContract := mock.NewMockContractRepo(ctrl)
	mockContract.EXPECT().WithTx(gomock.Any()).Return(mockContract).AnyTimes()
	mockContract.EXPECT().GetContractByID(uint(7)).Return(contract.Contract{
		ID: 7, ClientID: f.client.ID, FreelancerID: f.freelancer.ID,
		Budget: decimal.NewFromInt(10), Status: contract.StatusActive,
	}, nil)
	mockContract.EXPECT().CompleteIfActive(uint(7), gomock.Any()).Return(false, nil)
	f.repos.Contract = mockContract

	_, err := NewContractService(f.repos).ReleasePayment(f.client.ID, 7)
	assert.ErrorIs(t, err, apperr.ErrPrecondition)
	assert.Zero(t, countPayments(t, f.db, 7))
}

// --------------------- Wallet ---------------------
func TestWallet_SumsReleasedPayments(t *testing.T) {
	f := setupMarket(t)
	svc := NewContractService(f.repos)

	c1 := hiredContract(t, f, "100.10")
	second := testutils.CreateOpenJob(t, f.db, f.client.ID, "80")
	f.job = second
	c2 := hiredContract(t, f, "50.15")

	_, err := svc.ReleasePayment(f.client.ID, c1.ID)
	require.NoError(t, err)
	_, err = svc.ReleasePayment(f.client.ID, c2.ID)
	require.NoError(t, err)

	w, err := svc.Wallet(f.freelancer.ID)
	require.NoError(t, err)
	assert.Len(t, w.Payments, 2)
	assert.True(t, w.Total.Equal(decimal.RequireFromString("150.25")), w.Total.String())
	for _, e := range w.Payments {
		assert.NotZero(t, e.JobID)
		assert.Equal(t, "Landing page", e.JobTitle)
	}

	empty, err := svc.Wallet(f.other.ID)
	require.NoError(t, err)
	assert.NotNil(t, empty.Payments)
	assert.True(t, empty.Total.IsZero())
}

func TestWallet_EntriesNameTheirJob(t *testing.T) {
	f := setupMarket(t)
	svc := NewContractService(f.repos)

	first := hiredContract(t, f, "40")
	require.NoError(t, f.db.Model(&f.job).Update("title", "Logo refresh").Error)

	f.job = testutils.CreateOpenJob(t, f.db, f.client.ID, "80")
	require.NoError(t, f.db.Model(&f.job).Update("title", "API client").Error)
	second := hiredContract(t, f, "60")

	_, err := svc.ReleasePayment(f.client.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.ReleasePayment(f.client.ID, second.ID)
	require.NoError(t, err)

	w, err := svc.Wallet(f.freelancer.ID)
	require.NoError(t, err)
	require.Len(t, w.Payments, 2)

	// newest first
	assert.Equal(t, second.ID, w.Payments[0].ContractID)
	assert.Equal(t, second.JobID, w.Payments[0].JobID)
	assert.Equal(t, "API client", w.Payments[0].JobTitle)
	assert.True(t, w.Payments[0].Amount.Equal(decimal.NewFromInt(60)))

	assert.Equal(t, first.ID, w.Payments[1].ContractID)
	assert.Equal(t, "Logo refresh", w.Payments[1].JobTitle)
}

func TestWallet_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	f := setupMarket(t)
	mockPayment := mock.NewMockPaymentRepo(ctrl)
	mockPayment.EXPECT().ListPaymentsByPayee(f.freelancer.ID).Return(nil, errors.New("connection reset"))
	f.repos.Payment = mockPayment

	_, err := NewContractService(f.repos).Wallet(f.freelancer.ID)
	assert.ErrorIs(t, err, apperr.ErrStore)
}

func TestListContracts_BothSides(t *testing.T) {
	f := setupMarket(t)
	hiredContract(t, f, "100")
	svc := NewContractService(f.repos)

	for _, uid := range []uint{f.client.ID, f.freelancer.ID} {
		cs, err := svc.ListContracts(uid)
		require.NoError(t, err)
		assert.Len(t, cs, 1)
	}
	cs, err := svc.ListContracts(f.other.ID)
	require.NoError(t, err)
	assert.Empty(t, cs)
}
