//go:build integration
// +build integration

package integration

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/linskybing/gigboard/internal/domain/proposal"
	"github.com/linskybing/gigboard/internal/domain/user"
	"github.com/linskybing/gigboard/internal/testutils"
	"github.com/linskybing/gigboard/internal/testutils/apitest"
)

// TestDataGenerator generates names that do not collide within a run.
type TestDataGenerator struct {
	rand *rand.Rand
}

func NewTestDataGenerator() *TestDataGenerator {
	return &TestDataGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *TestDataGenerator) Username(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, g.rand.Intn(1000000))
}

// market is one job with several applicants at the interview stage.
type market struct {
	client      user.User
	freelancers []user.User
	proposals   []proposal.Proposal
	jobID       uint
}

func seedMarket(t *testing.T, env *apitest.Env, applicants int) market {
	t.Helper()
	gen := NewTestDataGenerator()

	m := market{client: testutils.CreateUser(t, env.DB, gen.Username("client"), user.RoleClient)}
	j := testutils.CreateOpenJob(t, env.DB, m.client.ID, "1000")
	m.jobID = j.ID

	for i := 0; i < applicants; i++ {
		f := testutils.CreateUser(t, env.DB, gen.Username("free"), user.RoleFreelancer)
		m.freelancers = append(m.freelancers, f)
		bid := fmt.Sprintf("%d.50", 900+i)
		m.proposals = append(m.proposals, testutils.CreateProposalAt(t, env.DB, j.ID, f.ID, bid, proposal.StatusInterview))
	}
	return m
}
