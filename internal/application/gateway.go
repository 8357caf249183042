package application

import (
	"log"
	"strings"

	"github.com/linskybing/gigboard/internal/domain/message"
	"github.com/linskybing/gigboard/internal/domain/proposal"
	"github.com/linskybing/gigboard/internal/realtime"
	"github.com/linskybing/gigboard/internal/repository"
	"github.com/linskybing/gigboard/pkg/apperr"
	"github.com/linskybing/gigboard/pkg/moderation"
)

// Broker fans stored messages out to live viewers of a room.
type Broker interface {
	Subscribe(room string) *realtime.Subscription
	Publish(room string, msg message.Message) int
}

// GatewayService guards the chat room attached to each proposal. A room is
// open to the job's client and the proposal's freelancer once the proposal
// has left the applied stage.
type GatewayService struct {
	Repos  *repository.Repos
	Broker Broker
	Filter *moderation.Filter
}

func NewGatewayService(repos *repository.Repos, broker Broker, filter *moderation.Filter) *GatewayService {
	if filter == nil {
		filter = moderation.DefaultFilter()
	}
	return &GatewayService{
		Repos:  repos,
		Broker: broker,
		Filter: filter,
	}
}

// Send stores content from senderID in the proposal's room and broadcasts it.
// Blank content is ignored and yields a nil message with a nil error.
// Non-blank content is stored as sent, surrounding whitespace included.
func (s *GatewayService) Send(senderID, proposalID uint, content string) (*message.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	if _, err := s.admit(senderID, proposalID); err != nil {
		return nil, err
	}

	if res := s.Filter.Check(content); !res.Safe {
		log.Printf("[chat] blocked message from user %d in proposal %d: %s", senderID, proposalID, res.Rule)
		return nil, apperr.Safety(res.Reason)
	}

	m := message.Message{
		ProposalID: proposalID,
		SenderID:   senderID,
		Content:    content,
	}
	if err := s.Repos.Message.CreateMessage(&m); err != nil {
		return nil, storeErr("message", err)
	}

	if s.Broker != nil {
		s.Broker.Publish(realtime.RoomKey(proposalID), m)
	}
	return &m, nil
}

// History returns the room's messages, oldest first.
func (s *GatewayService) History(actorID, proposalID uint) ([]message.Message, error) {
	if _, err := s.admit(actorID, proposalID); err != nil {
		return nil, err
	}
	msgs, err := s.Repos.Message.ListByProposal(proposalID)
	if err != nil {
		return nil, storeErr("message", err)
	}
	if msgs == nil {
		msgs = []message.Message{}
	}
	return msgs, nil
}

// Subscribe attaches actorID to the room and returns the live feed with the
// history stored so far. The feed is registered before history is read, so a
// message may show up in both; consumers dedupe by id. The caller must
// Cancel the subscription.
func (s *GatewayService) Subscribe(actorID, proposalID uint) (*realtime.Subscription, []message.Message, error) {
	if _, err := s.admit(actorID, proposalID); err != nil {
		return nil, nil, err
	}
	if s.Broker == nil {
		return nil, nil, apperr.Precondition("live updates are not available")
	}

	sub := s.Broker.Subscribe(realtime.RoomKey(proposalID))
	msgs, err := s.Repos.Message.ListByProposal(proposalID)
	if err != nil {
		sub.Cancel()
		return nil, nil, storeErr("message", err)
	}
	return sub, msgs, nil
}

// Locked reports whether the room is still closed, for callers that render
// a placeholder instead of history.
func (s *GatewayService) Locked(actorID, proposalID uint) (bool, error) {
	p, err := s.participant(actorID, proposalID)
	if err != nil {
		return false, err
	}
	return message.IsLocked(p.Status), nil
}

func (s *GatewayService) admit(actorID, proposalID uint) (proposal.Proposal, error) {
	p, err := s.participant(actorID, proposalID)
	if err != nil {
		return proposal.Proposal{}, err
	}
	if message.IsLocked(p.Status) {
		return proposal.Proposal{}, apperr.Precondition("chat opens once the client has viewed the proposal")
	}
	return p, nil
}

func (s *GatewayService) participant(actorID, proposalID uint) (proposal.Proposal, error) {
	p, err := s.Repos.Proposal.GetProposalByID(proposalID)
	if err != nil {
		return proposal.Proposal{}, storeErr("proposal", err)
	}
	if actorID == p.FreelancerID {
		return p, nil
	}
	j, err := s.Repos.Job.GetJobByID(p.JobID)
	if err != nil {
		return proposal.Proposal{}, storeErr("job", err)
	}
	if actorID != j.ClientID {
		return proposal.Proposal{}, apperr.Authorization("not a participant of proposal %d", proposalID)
	}
	return p, nil
}
