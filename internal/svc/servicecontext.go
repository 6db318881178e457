package svc

import (
	"log"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"coinwatch-api/internal/aggregate"
	"coinwatch-api/internal/analysis"
	"coinwatch-api/internal/cache"
	"coinwatch-api/internal/config"
	"coinwatch-api/internal/ingest"
	"coinwatch-api/internal/model"
	"coinwatch-api/internal/store"
	"coinwatch-api/pkg/confkit"
	feedpkg "coinwatch-api/pkg/feed"
	llmpkg "coinwatch-api/pkg/llm"
	"coinwatch-api/pkg/journal"
)

type ServiceContext struct {
	Config config.Config

	FeedConfig *feedpkg.Config
	FeedClient *feedpkg.Client

	LLMConfig *llmpkg.Config
	LLMClient llmpkg.LLMClient

	DBConn           sqlx.SqlConn
	AssetsModel      model.AssetsModel
	AssetPricesModel model.AssetPricesModel
	Store            *store.AssetStore
	Engine           *aggregate.Engine

	Analysis *analysis.Service
	Ingest   *ingest.Job
	Journal  *journal.Writer

	Redis *redis.Redis
	TTL   cache.TTLSet
}

func NewServiceContext(c config.Config) *ServiceContext {
	svc := &ServiceContext{
		Config:  c,
		Journal: journal.NewWriter(c.JournalDir),
		TTL:     cache.NewTTLSet(c.TTL),
	}

	if c.Feed.Value != nil {
		svc.FeedConfig = c.Feed.Value
		svc.FeedClient = c.Feed.Value.BuildClient()
	}

	if c.LLM.Value != nil {
		llmCfg := c.LLM.Value
		// Test environment defaults to a low-cost model.
		if c.IsTestEnv() {
			llmCfg = llmCfg.Clone()
			llmCfg.DefaultModel = "gpt-4o-mini"
		}
		client, err := llmpkg.NewClient(llmCfg)
		if err != nil {
			log.Fatalf("failed to build llm client: %v", err)
		}
		svc.LLMConfig = llmCfg
		svc.LLMClient = client
	}

	if c.Postgres.DSN != "" {
		conn := sqlx.NewSqlConn("pgx", c.Postgres.DSN)
		svc.DBConn = conn
		svc.AssetsModel = model.NewAssetsModel(conn)
		svc.AssetPricesModel = model.NewAssetPricesModel(conn)
		svc.Store = store.NewAssetStore(conn)
		svc.Engine = aggregate.NewEngine(conn, svc.Store)
	}

	if c.Redis.Host != "" {
		svc.Redis = redis.MustNewRedis(c.Redis)
	}

	if svc.FeedClient != nil && svc.Store != nil {
		opts := []ingest.Option{ingest.WithJournal(svc.Journal)}
		if svc.Redis != nil {
			opts = append(opts, ingest.WithCache(svc.Redis))
		}
		svc.Ingest = ingest.NewJob(svc.FeedClient, svc.Store, svc.FeedConfig.Symbols, opts...)
	}

	if svc.LLMClient != nil && svc.Engine != nil {
		service, err := analysis.NewService(svc.LLMClient, svc.Engine, confkit.MustProjectPath("etc/prompts"))
		if err != nil {
			log.Fatalf("failed to build analysis service: %v", err)
		}
		svc.Analysis = service
	}

	return svc
}
