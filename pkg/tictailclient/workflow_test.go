package tictailclient_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/tictail/tictail-go/pkg/tictail"
	"github.com/tictail/tictail-go/pkg/tictailclient"
	"github.com/tictail/tictail-go/pkg/tictailtest"
)

// WorkflowTestSuite walks a store the way an integration would. It runs
// against the live API when TICTAIL_ACCESS_TOKEN is set and against the
// fake API otherwise.
type WorkflowTestSuite struct {
	suite.Suite

	server *tictailtest.Server
	client tictail.Client
	store  tictail.Store
	ctx    context.Context
}

func (s *WorkflowTestSuite) SetupSuite() {
	s.ctx = context.Background()

	token := os.Getenv("TICTAIL_ACCESS_TOKEN")
	baseURL := os.Getenv("TICTAIL_BASE_URL")

	if token == "" {
		s.server = tictailtest.NewServer()
		token = s.server.Token()
		baseURL = s.server.URL
	}

	client, err := tictailclient.NewWithBaseURL(baseURL, token)
	s.Require().NoError(err)
	s.client = client

	store, err := client.Me().Get(s.ctx)
	s.Require().NoError(err)
	s.store = store
}

func (s *WorkflowTestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *WorkflowTestSuite) storeID() string {
	id, ok := s.store.GetString("id")
	s.Require().True(ok)

	return id
}

func (s *WorkflowTestSuite) TestStoreByID() {
	store, err := s.client.Stores().Get(s.ctx, s.storeID())
	s.Require().NoError(err)
	s.Equal(s.store.URI(), store.URI())
	s.Equal(s.store.Keys(), store.Keys())
}

func (s *WorkflowTestSuite) TestProducts() {
	products, err := s.store.Products().List(s.ctx, tictail.NewListParams().WithLimit(10))
	s.Require().NoError(err)

	if len(products) == 0 {
		s.T().Skip("store has no products")
	}

	id, ok := products[0].GetString("id")
	s.Require().True(ok)

	product, err := s.store.Products().Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(products[0].URI(), product.URI())

	shortcut, err := s.client.Products(s.storeID())
	s.Require().NoError(err)
	s.Equal(s.store.Products().URI(), shortcut.URI())
}

func (s *WorkflowTestSuite) TestFollowerLifecycle() {
	follower, err := s.store.Followers().Create(s.ctx, map[string]interface{}{
		"email": "workflow-fixc0m@mailinator.com",
	})
	s.Require().NoError(err)

	created, ok := follower.GetTime("created_at")
	s.True(ok)
	s.WithinDuration(time.Now(), created, 24*time.Hour)

	deleted, err := follower.Delete(s.ctx)
	s.Require().NoError(err)
	s.True(deleted)
}

func (s *WorkflowTestSuite) TestOrdersModifiedInTheFuture() {
	orders, err := s.store.Orders().List(s.ctx,
		tictail.NewListParams().WithModifiedAfter(time.Now().Add(24*time.Hour)))
	s.Require().NoError(err)
	s.Empty(orders)
}

func (s *WorkflowTestSuite) TestCategoriesAndTheme() {
	_, err := s.store.Categories().List(s.ctx, nil)
	s.Require().NoError(err)

	theme, err := s.store.Theme().Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.store.URI()+"/theme", theme.URI())
}

func TestWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowTestSuite))
}
