package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
	"github.com/KirkDiggler/rpg-tooltips/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/actors"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/items"
	"github.com/KirkDiggler/rpg-tooltips/internal/services/content"
	"github.com/KirkDiggler/rpg-tooltips/internal/services/enricher"
	"github.com/KirkDiggler/rpg-tooltips/internal/testutils"
)

type SeedTestSuite struct {
	suite.Suite
	cleanup    func()
	itemsRepo  items.Repository
	actorsRepo actors.Repository
	ctx        context.Context
}

func TestSeedSuite(t *testing.T) {
	suite.Run(t, new(SeedTestSuite))
}

func (s *SeedTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	var err error
	s.itemsRepo, err = items.NewRedis(&items.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.actorsRepo, err = actors.NewRedis(&actors.RedisConfig{Client: client})
	s.Require().NoError(err)
}

func (s *SeedTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *SeedTestSuite) TestSeedCoversEveryType() {
	data := seedData(idgen.NewSequential("seed"))

	types := map[string]bool{}
	ids := map[string]bool{}
	for _, it := range append(data.directory, data.actor.Items...) {
		types[it.Type] = true
		s.False(ids[it.ID], "duplicate id %s", it.ID)
		ids[it.ID] = true
	}
	for _, t := range []string{item.TypePower, item.TypeTrait, item.TypeTag, item.TypeOccupation, item.TypeOrigin, item.TypeItem} {
		s.True(types[t], "missing type %s", t)
	}
}

func (s *SeedTestSuite) TestSeedRendersAndStores() {
	data := seedData(idgen.NewSequential("seed"))
	s.Require().NoError(storeSeed(s.ctx, s.itemsRepo, s.actorsRepo, data))

	listed, err := s.itemsRepo.List(s.ctx, items.ListInput{})
	s.Require().NoError(err)
	s.Len(listed.Items, len(data.directory))

	owned, err := s.actorsRepo.GetItem(s.ctx, actors.GetItemInput{ActorID: data.actor.ID, ItemID: data.actor.Items[1].ID})
	s.Require().NoError(err)
	s.Equal("Weather Control: Lightning", owned.Item.Name)

	renderer, err := content.NewRenderer(&content.RendererConfig{
		Localizer: content.LocalizerFunc(func(key string) string { return key }),
		Expander:  enricher.New(nil),
	})
	s.Require().NoError(err)

	for _, it := range data.directory {
		built, ok := renderer.Build(s.ctx, it)
		s.True(ok, it.Name)
		s.NotContains(built.HTML(), "<p>", it.Name)
	}

	built, _ := renderer.Build(s.ctx, data.directory[1])
	html := built.HTML()
	s.True(strings.Contains(html, `class="content-link"`), html)
	s.True(strings.Contains(html, `class="inline-roll`), html)
}
