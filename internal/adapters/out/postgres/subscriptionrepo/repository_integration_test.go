package subscriptionrepo_test

import (
	"context"
	"testing"

	"photoflow/internal/adapters/out/postgres/pgtest"
	"photoflow/internal/adapters/out/postgres/subscriptionrepo"
	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/subscription"
	"photoflow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type SubscriptionRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *subscriptionrepo.GormSubscriptionRepository
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.repository = subscriptionrepo.NewGormSubscriptionRepository(suite.pg.DB)
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) workspace(name string) kernel.UUID {
	id, err := suite.pg.InsertWorkspace(name, name+" HQ")
	suite.Require().NoError(err)
	return id
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) TestSeedPlans_IsIdempotent() {
	ctx := context.Background()

	n, err := subscriptionrepo.SeedPlans(ctx, suite.pg.DB)
	suite.Require().NoError(err)
	suite.Positive(n)

	_, err = subscriptionrepo.SeedPlans(ctx, suite.pg.DB)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.pg.DB.Model(&subscriptionrepo.PlanDTO{}).Count(&count).Error)
	suite.Equal(int64(n), count)
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) TestGetActiveByWorkspace() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.InsertBasicPlan())
	active := suite.workspace("Harbour Realty")
	paused := suite.workspace("Cliff Hotels")

	subID, err := suite.pg.InsertSubscription(active, "BASIC", "YEARLY", "ACTIVE")
	suite.Require().NoError(err)
	_, err = suite.pg.InsertSubscription(paused, "BASIC", "MONTHLY", "PAUSED")
	suite.Require().NoError(err)

	sub, err := suite.repository.GetActiveByWorkspace(ctx, active)
	suite.Require().NoError(err)
	suite.Equal(subID, sub.ID())
	suite.Equal(subscription.CycleYearly, sub.Cycle())
	suite.Equal("BASIC", sub.Plan().Code())
	suite.Equal(int64(8500), sub.BasePrice())

	_, err = suite.repository.GetActiveByWorkspace(ctx, paused)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) TestLockActiveByWorkspace_BlocksSecondLocker() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.InsertBasicPlan())
	ws := suite.workspace("Harbour Realty")
	subID, err := suite.pg.InsertSubscription(ws, "BASIC", "MONTHLY", "ACTIVE")
	suite.Require().NoError(err)

	holder := suite.pg.DB.Begin()
	suite.Require().NoError(holder.Error)
	defer holder.Rollback()

	sub, err := subscriptionrepo.NewGormSubscriptionRepository(holder).LockActiveByWorkspace(ctx, ws)
	suite.Require().NoError(err)
	suite.Equal(subID, sub.ID())

	waiter := suite.pg.DB.Begin()
	suite.Require().NoError(waiter.Error)
	suite.Require().NoError(waiter.Exec("SET LOCAL lock_timeout = '200ms'").Error)
	_, err = subscriptionrepo.NewGormSubscriptionRepository(waiter).LockActiveByWorkspace(ctx, ws)
	suite.Require().Error(err)
	waiter.Rollback()

	_, err = suite.repository.GetActiveByWorkspace(ctx, ws)
	suite.Require().NoError(err, "plain reads are not blocked")

	suite.Require().NoError(holder.Commit().Error)
	_, err = suite.repository.LockActiveByWorkspace(ctx, ws)
	suite.Require().NoError(err)
}

func (suite *SubscriptionRepositoryIntegrationTestSuite) TestListActive_SkipsInactive() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.InsertBasicPlan())

	_, err := suite.pg.InsertSubscription(suite.workspace("A"), "BASIC", "MONTHLY", "ACTIVE")
	suite.Require().NoError(err)
	_, err = suite.pg.InsertSubscription(suite.workspace("B"), "BASIC", "MONTHLY", "ACTIVE")
	suite.Require().NoError(err)
	_, err = suite.pg.InsertSubscription(suite.workspace("C"), "BASIC", "MONTHLY", "CANCELLED")
	suite.Require().NoError(err)

	subs, err := suite.repository.ListActive(ctx)

	suite.Require().NoError(err)
	suite.Len(subs, 2)
	for _, s := range subs {
		suite.True(s.IsActive())
	}
}

func TestSubscriptionRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(SubscriptionRepositoryIntegrationTestSuite))
}
