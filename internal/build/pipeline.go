package build

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/game-club/library/internal/sources/discussions"
	"github.com/game-club/library/internal/sources/steam"
	"github.com/game-club/library/pkg/catalog"
)

// Config carries the per-run pipeline configuration, constructed once at the
// process boundary.
type Config struct {
	// GitHub repository holding the submission discussions.
	Owner string
	Repo  string
	Token string

	// NewestLimit caps the "newest games" slice.
	NewestLimit int

	// APIDir is the output directory holding games.json, new.json, and the
	// per-game files.
	APIDir string
}

// Configured reports whether the discussion source can be queried. Without
// owner, repo, and token the run degrades to the persisted catalog only.
func (c Config) Configured() bool {
	return c.Owner != "" && c.Repo != "" && c.Token != ""
}

// Pipeline runs one full catalog build.
type Pipeline struct {
	// Steam and GitHub are exported so tests can point them at local
	// servers.
	Steam  *steam.Client
	GitHub *discussions.Client

	config  Config
	store   *catalog.Store
	cache   *steam.Cache
	builder *Builder
	logger  zerolog.Logger
}

// New creates a pipeline with a fresh per-run metadata cache.
func New(config Config, logger zerolog.Logger) *Pipeline {
	steamClient := steam.NewClient()
	cache := steam.NewCache(steamClient, logger)
	return &Pipeline{
		Steam:   steamClient,
		GitHub:  discussions.New(config.Owner, config.Repo, config.Token),
		config:  config,
		store:   catalog.NewStore(config.APIDir, logger),
		cache:   cache,
		builder: NewBuilder(cache, logger),
		logger:  logger,
	}
}

// Run executes the build: load persisted records, fetch and build
// submissions, merge, normalize every record, and write the output files.
// An empty merged catalog is a soft no-op that leaves existing outputs
// untouched.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := p.store.EnsureDirs(); err != nil {
		return err
	}

	existing := p.store.Load()

	var fresh []*catalog.Record
	if p.config.Configured() {
		submissions, err := p.GitHub.Submissions(ctx)
		if err != nil {
			return err
		}
		for _, submission := range submissions {
			if record := p.builder.Build(ctx, submission); record != nil {
				fresh = append(fresh, record)
			}
		}
	} else {
		p.logger.Warn().Msg("Missing GitHub environment. Using existing JSON only.")
	}

	merged := catalog.Merge(existing, fresh)
	records := merged.Records()
	for _, record := range records {
		p.builder.Normalize(ctx, record)
	}

	if len(records) == 0 {
		p.logger.Warn().Msg("No games found. Keeping existing JSON.")
		return nil
	}

	sorted := catalog.SortByUpdated(records)
	summaries := catalog.SummarizeAll(sorted)
	newest := catalog.Newest(summaries, p.config.NewestLimit)

	if err := p.store.Write(sorted, summaries, newest); err != nil {
		return err
	}

	p.logger.Info().
		Int("games", len(sorted)).
		Int("submissions", len(fresh)).
		Msg("Updated games from discussions and existing files")
	return nil
}
