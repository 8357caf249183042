package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/gigboard/internal/domain/message"
	"github.com/linskybing/gigboard/internal/domain/proposal"
	"github.com/linskybing/gigboard/internal/realtime"
	"github.com/linskybing/gigboard/internal/repository/mock"
	"github.com/linskybing/gigboard/internal/testutils"
	"github.com/linskybing/gigboard/pkg/apperr"
	"github.com/linskybing/gigboard/pkg/moderation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGateway(t *testing.T, stage proposal.Status) (marketFixture, *GatewayService, *realtime.Hub, proposal.Proposal) {
	f := setupMarket(t)
	hub := realtime.NewHub()
	svc := NewGatewayService(f.repos, hub, nil)
	p := testutils.CreateProposalAt(t, f.db, f.job.ID, f.freelancer.ID, "100", stage)
	return f, svc, hub, p
}

func receive(t *testing.T, sub *realtime.Subscription) message.Message {
	t.Helper()
	select {
	case m, ok := <-sub.C:
		require.True(t, ok, "subscription closed")
		return m
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
		return message.Message{}
	}
}

func assertSilent(t *testing.T, sub *realtime.Subscription) {
	t.Helper()
	select {
	case m := <-sub.C:
		t.Fatalf("unexpected broadcast: %+v", m)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSend_PersistsAndBroadcasts(t *testing.T) {
	f, svc, hub, p := setupGateway(t, proposal.StatusViewed)
	sub := hub.Subscribe(realtime.RoomKey(p.ID))
	defer sub.Cancel()

	m, err := svc.Send(f.client.ID, p.ID, "When can you start?")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "When can you start?", m.Content)
	assert.NotZero(t, m.ID)

	got := receive(t, sub)
	assert.Equal(t, m.ID, got.ID)

	reply, err := svc.Send(f.freelancer.ID, p.ID, "Monday, see https://example.com/plan")
	require.NoError(t, err)
	assert.Equal(t, reply.ID, receive(t, sub).ID)

	history, err := svc.History(f.freelancer.ID, p.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, m.ID, history[0].ID)
	assert.Equal(t, reply.ID, history[1].ID)
}

func TestSend_BlankIsNoop(t *testing.T) {
	f, svc, hub, p := setupGateway(t, proposal.StatusInterview)
	sub := hub.Subscribe(realtime.RoomKey(p.ID))
	defer sub.Cancel()

	for _, content := range []string{"", "   ", "\n\t"} {
		m, err := svc.Send(f.client.ID, p.ID, content)
		assert.NoError(t, err)
		assert.Nil(t, m)
	}
	assertSilent(t, sub)

	history, err := svc.History(f.client.ID, p.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSend_KeepsContentAsSent(t *testing.T) {
	f, svc, hub, p := setupGateway(t, proposal.StatusInterview)
	sub := hub.Subscribe(realtime.RoomKey(p.ID))
	defer sub.Cancel()

	const sent = "  - step one\n  - step two\n"
	m, err := svc.Send(f.freelancer.ID, p.ID, sent)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, sent, m.Content)
	assert.Equal(t, sent, receive(t, sub).Content)

	history, err := svc.History(f.client.ID, p.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, sent, history[0].Content)
}

func TestSend_SafetyBlocks(t *testing.T) {
	f, svc, hub, p := setupGateway(t, proposal.StatusViewed)
	sub := hub.Subscribe(realtime.RoomKey(p.ID))
	defer sub.Cancel()

	cases := map[string]string{
		"call me at 9876543210":   moderation.ReasonPhone,
		"mail me at a@b.com":      moderation.ReasonEmail,
		"let's use WhatsApp then": `the word "whatsapp" is flagged for security`,
	}
	for content, reason := range cases {
		m, err := svc.Send(f.freelancer.ID, p.ID, content)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, apperr.ErrSafety)
		assert.Equal(t, reason, apperr.ReasonOf(err))
	}
	assertSilent(t, sub)

	history, err := svc.History(f.client.ID, p.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSend_CustomDenyList(t *testing.T) {
	f := setupMarket(t)
	p := testutils.CreateProposalAt(t, f.db, f.job.ID, f.freelancer.ID, "100", proposal.StatusViewed)
	svc := NewGatewayService(f.repos, realtime.NewHub(), moderation.NewFilter([]string{"Upwork"}))

	_, err := svc.Send(f.client.ID, p.ID, "we could move this to upwork")
	assert.ErrorIs(t, err, apperr.ErrSafety)

	_, err = svc.Send(f.client.ID, p.ID, "telegram is fine here")
	assert.NoError(t, err)
}

func TestGateway_LockedRoom(t *testing.T) {
	f, svc, hub, p := setupGateway(t, proposal.StatusApplied)

	_, err := svc.Send(f.client.ID, p.ID, "hello")
	assert.ErrorIs(t, err, apperr.ErrPrecondition)
	_, err = svc.History(f.freelancer.ID, p.ID)
	assert.ErrorIs(t, err, apperr.ErrPrecondition)
	_, _, err = svc.Subscribe(f.client.ID, p.ID)
	assert.ErrorIs(t, err, apperr.ErrPrecondition)
	assert.Zero(t, hub.Subscribers(realtime.RoomKey(p.ID)))

	locked, err := svc.Locked(f.client.ID, p.ID)
	require.NoError(t, err)
	assert.True(t, locked)

	_, err = NewPipelineService(f.repos).Advance(f.client.ID, p.ID, proposal.StatusViewed)
	require.NoError(t, err)

	locked, err = svc.Locked(f.client.ID, p.ID)
	require.NoError(t, err)
	assert.False(t, locked)
	_, err = svc.Send(f.freelancer.ID, p.ID, "thanks for looking")
	assert.NoError(t, err)
}

func TestGateway_OnlyTwoPrincipals(t *testing.T) {
	f, svc, _, p := setupGateway(t, proposal.StatusHired)

	_, err := svc.Send(f.other.ID, p.ID, "hi")
	assert.ErrorIs(t, err, apperr.ErrAuthorization)
	_, err = svc.History(f.other.ID, p.ID)
	assert.ErrorIs(t, err, apperr.ErrAuthorization)
	_, _, err = svc.Subscribe(f.other.ID, p.ID)
	assert.ErrorIs(t, err, apperr.ErrAuthorization)
	_, err = svc.Locked(f.other.ID, p.ID)
	assert.ErrorIs(t, err, apperr.ErrAuthorization)

	_, err = svc.Send(f.client.ID, 9999, "hi")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSubscribe_HistoryThenLive(t *testing.T) {
	f, svc, hub, p := setupGateway(t, proposal.StatusInterview)

	first, err := svc.Send(f.client.ID, p.ID, "first")
	require.NoError(t, err)

	sub, history, err := svc.Subscribe(f.freelancer.ID, p.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, first.ID, history[0].ID)
	assert.Equal(t, 1, hub.Subscribers(realtime.RoomKey(p.ID)))

	second, err := svc.Send(f.client.ID, p.ID, "second")
	require.NoError(t, err)
	assert.Equal(t, second.ID, receive(t, sub).ID)

	sub.Cancel()
	assert.Zero(t, hub.Subscribers(realtime.RoomKey(p.ID)))
	_, ok := <-sub.C
	assert.False(t, ok)
}

func TestSend_StoreFailureDoesNotBroadcast(t *testing.T) {
	f, _, hub, p := setupGateway(t, proposal.StatusViewed)

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	mockMessage := mock.NewMockMessageRepo(ctrl)
	mockMessage.EXPECT().CreateMessage(gomock.Any()).Return(errors.New("connection refused"))
	f.repos.Message = mockMessage

	svc := NewGatewayService(f.repos, hub, nil)
	sub := hub.Subscribe(realtime.RoomKey(p.ID))
	defer sub.Cancel()

	m, err := svc.Send(f.client.ID, p.ID, "hello")
	assert.Nil(t, m)
	assert.ErrorIs(t, err, apperr.ErrStore)
	assertSilent(t, sub)
}

func TestSubscribe_HistoryFailureCancels(t *testing.T) {
	f, _, hub, p := setupGateway(t, proposal.StatusViewed)

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	mockMessage := mock.NewMockMessageRepo(ctrl)
	mockMessage.EXPECT().ListByProposal(p.ID).Return(nil, errors.New("timeout"))
	f.repos.Message = mockMessage

	svc := NewGatewayService(f.repos, hub, nil)
	sub, _, err := svc.Subscribe(f.client.ID, p.ID)
	assert.Nil(t, sub)
	assert.ErrorIs(t, err, apperr.ErrStore)
	assert.Zero(t, hub.Subscribers(realtime.RoomKey(p.ID)))
}
