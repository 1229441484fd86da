package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/exploro/maprando/pkg/config"
	"github.com/exploro/maprando/pkg/gamedata"
	"github.com/exploro/maprando/pkg/mapdata"
	"github.com/exploro/maprando/pkg/model"
	"github.com/exploro/maprando/pkg/placement"
	"github.com/exploro/maprando/pkg/preprocessor"
	"github.com/exploro/maprando/pkg/spoiler"
	"github.com/exploro/maprando/pkg/traversal"
)

// service holds the game data and map loaded once at startup, shared
// read-only across every request: both are immutable after Load, so
// concurrent requests can safely build independent Randomizers against
// the same underlying tables.
type service struct {
	gd     *gamedata.GameData
	m      *mapdata.Map
	engine *traversal.Engine
}

func newService(gameDataPath, mapPath string) (*service, error) {
	gd, err := gamedata.Load(gameDataPath)
	if err != nil {
		return nil, err
	}
	m, err := mapdata.Load(mapPath)
	if err != nil {
		return nil, err
	}
	links := preprocessor.BuildLinks(gd, m, preprocessor.DefaultTwinRoomAliases)
	engine := traversal.NewEngine(gd.Interner.Len(), links)

	return &service{gd: gd, m: m, engine: engine}, nil
}

// randomizeRequest is the POST /v1/randomize request body.
type randomizeRequest struct {
	Seed     uint64                   `json:"seed"`
	Attempts int                      `json:"attempts"`
	Config   *config.DifficultyConfig `json:"config"`
}

// randomizeResult is what one fan-out attempt produced, success or not.
type randomizeResult struct {
	attempt int
	seed    uint64
	state   *placement.RandomizationState
	err     error
}

// defaultMaxAttempts bounds how many attempts a single request will fan
// out, regardless of what a client asks for, so one bad request cannot tie
// up the whole worker pool.
const defaultMaxAttempts = 16

// runAttempts fans attempts concurrently out over an errgroup the same way
// a multi-source fetch would: every attempt runs to completion even after
// one succeeds, since placement has no internal cancellation point, but
// the group's context lets a caller-side timeout stop new attempts from
// being waited on.
func (s *service) runAttempts(ctx context.Context, req randomizeRequest) (*placement.RandomizationState, uint64, error) {
	cfg := req.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid config: %w", err)
	}

	attempts := req.Attempts
	if attempts <= 0 {
		attempts = 4
	}
	if attempts > defaultMaxAttempts {
		attempts = defaultMaxAttempts
	}

	seed := req.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	shipVertex, shipHub := shipVertexAndHub(s.gd)
	rz := placement.NewRandomizer(s.gd, s.engine, cfg, defaultPriorityGroups(), defaultTiers(), shipVertex, shipHub)

	g, gCtx := errgroup.WithContext(ctx)
	results := make([]randomizeResult, attempts)
	var mu sync.Mutex

	for i := 0; i < attempts; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}
			attemptSeed := seed + uint64(i)
			state, err := rz.Randomize(i, attemptSeed, placement.NewSeedName())

			mu.Lock()
			results[i] = randomizeResult{attempt: i, seed: attemptSeed, state: state, err: err}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("attempt fan-out: %w", err)
	}

	for _, r := range results {
		if r.err == nil {
			return r.state, r.seed, nil
		}
	}
	return nil, 0, fmt.Errorf("all %d attempts failed; last error: %w", attempts, results[len(results)-1].err)
}

func defaultPriorityGroups() placement.PriorityGroups {
	var normal []model.Item
	for _, it := range model.AllItems() {
		if it.IsUnique() {
			normal = append(normal, it)
		}
	}
	return placement.PriorityGroups{Normal: normal}
}

func defaultTiers() []placement.DifficultyTier {
	return []placement.DifficultyTier{{}}
}

func shipVertexAndHub(gd *gamedata.GameData) (model.VertexID, model.VertexID) {
	if len(gd.StartLocations) == 0 {
		return 0, 0
	}
	ship := gd.StartLocations[0]
	vid := gd.Interner.Intern(model.NewVertexKey(ship.RoomID, ship.NodeID, 0, nil))
	return vid, vid
}

func (s *service) buildSpoiler(state *placement.RandomizationState) (*spoiler.SpoilerLog, error) {
	return spoiler.Build(state, s.gd, s.engine, nil)
}
