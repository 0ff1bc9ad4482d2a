package items_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/items"
	"github.com/KirkDiggler/rpg-tooltips/internal/testutils"
)

type RedisItemsTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	repo    items.Repository
	cleanup func()
}

func TestRedisItemsSuite(t *testing.T) {
	suite.Run(t, new(RedisItemsTestSuite))
}

func (s *RedisItemsTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.cleanup = cleanup

	repo, err := items.NewRedis(&items.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisItemsTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisItemsTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *items.RedisConfig
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config cannot be nil"},
		{name: "nil client", config: &items.RedisConfig{}, errMsg: "client cannot be nil"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := items.NewRedis(tc.config)
			s.Require().Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(repo)
		})
	}
}

func (s *RedisItemsTestSuite) TestUpsertAndGet() {
	web := &item.Item{
		ID:   "item-web",
		Name: "Web-Shooters",
		Type: "power",
		System: item.Data{
			"details": map[string]any{"range": "10 spaces"},
		},
	}

	_, err := s.repo.Upsert(s.ctx, items.UpsertInput{Item: web})
	s.Require().NoError(err)
	s.True(s.mr.Exists(items.GetKey("item-web")))

	out, err := s.repo.Get(s.ctx, items.GetInput{ID: "item-web"})
	s.Require().NoError(err)
	s.Equal("Web-Shooters", out.Item.Name)

	got, ok := out.Item.System.Lookup("details.range")
	s.True(ok)
	s.Equal("10 spaces", got)
}

func (s *RedisItemsTestSuite) TestGetErrors() {
	testCases := []struct {
		name  string
		id    string
		check func(error) bool
	}{
		{name: "empty id", id: "", check: errors.IsInvalidArgument},
		{name: "missing", id: "nope", check: errors.IsNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Get(s.ctx, items.GetInput{ID: tc.id})
			s.Require().Error(err)
			s.True(tc.check(err))
		})
	}

	s.mr.Set(items.GetKey("bad"), "{not json")
	_, err := s.repo.Get(s.ctx, items.GetInput{ID: "bad"})
	s.Require().Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
}

func (s *RedisItemsTestSuite) TestList() {
	for _, it := range []*item.Item{
		{ID: "b", Name: "Bravo", Type: "trait"},
		{ID: "a", Name: "Alpha", Type: "Power"},
		{ID: "c", Name: "Charlie", Type: "power"},
	} {
		_, err := s.repo.Upsert(s.ctx, items.UpsertInput{Item: it})
		s.Require().NoError(err)
	}
	// Dangling index entry is skipped.
	_, err := s.mr.SAdd("items:directory", "ghost")
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, items.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Items, 3)
	s.Equal([]string{"a", "b", "c"}, []string{out.Items[0].ID, out.Items[1].ID, out.Items[2].ID})

	powers, err := s.repo.List(s.ctx, items.ListInput{Type: "POWER"})
	s.Require().NoError(err)
	s.Len(powers.Items, 2)
}

func (s *RedisItemsTestSuite) TestListEmpty() {
	out, err := s.repo.List(s.ctx, items.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Items)
}

func (s *RedisItemsTestSuite) TestUpsertValidation() {
	_, err := s.repo.Upsert(s.ctx, items.UpsertInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Upsert(s.ctx, items.UpsertInput{Item: &item.Item{Name: "no id"}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisItemsTestSuite) TestDelete() {
	_, err := s.repo.Upsert(s.ctx, items.UpsertInput{Item: &item.Item{ID: "x", Name: "X"}})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, items.DeleteInput{ID: "x"})
	s.Require().NoError(err)
	s.False(s.mr.Exists(items.GetKey("x")))

	// the index set empties and redis drops the key
	s.False(s.mr.Exists("items:directory"))

	_, err = s.repo.Delete(s.ctx, items.DeleteInput{ID: "x"})
	s.True(errors.IsNotFound(err))
}
