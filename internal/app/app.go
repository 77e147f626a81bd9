package app

import (
	"context"
	"fmt"

	"github.com/tuberec/tuberec/internal/command"
	"github.com/tuberec/tuberec/internal/datasources"
	"github.com/tuberec/tuberec/internal/datasources/mysql"
	"github.com/tuberec/tuberec/internal/datasources/ollama"
	"github.com/tuberec/tuberec/internal/datasources/pinecone"
	"github.com/tuberec/tuberec/internal/datasources/voyageai"
	"github.com/tuberec/tuberec/internal/datasources/youtube"
	"github.com/tuberec/tuberec/internal/domain"
	"github.com/tuberec/tuberec/internal/transport/web/router"
	"github.com/tuberec/tuberec/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	deps, err := SetupDependencies(ctx)
	if err != nil {
		return nil, err
	}

	httpRouter, err := router.MakeRouter(
		deps.Dataset,
		deps.Similarity,
		deps.Embedder,
		router.Commands{
			Recommend: deps.RecommendCmd,
			Record:    deps.RecordCmd,
			Ingest:    deps.IngestCmd,
		},
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "RSS_FEED_LATEST_CACHE_MAX_AGE"),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: MustGetEnvAsString(ctx, "HTTP_AUTOCERT_HOSTNAME"),
			Router:           httpRouter,
		},
	}, nil
}

// Dependencies are the wired datasources and commands shared by the HTTP
// server and the other entrypoints.
type Dependencies struct {
	Dataset    datasources.DatasetRepository
	Similarity datasources.SimilarityRepository
	Embedder   datasources.Embedder
	Generator  datasources.TextGenerator
	Catalog    datasources.CatalogRepository

	RecommendCmd command.Command[command.RecommendVideosRequest, domain.Recommendation]
	RecordCmd    command.Command[command.RecordInteractionRequest, domain.Interaction]
	IngestCmd    command.Command[command.IngestVideosRequest, int]
}

func SetupDependencies(ctx context.Context) (*Dependencies, error) {
	dataset, err := setupDatasetRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up dataset repository: %w", err)
	}

	similarity, err := setupSimilarityRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up similarity repository: %w", err)
	}

	embedder, err := setupEmbedder(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up embedder: %w", err)
	}

	generator, err := setupTextGenerator(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up text generator: %w", err)
	}

	catalog := youtube.NewClient(MustGetEnvAsString(ctx, "YOUTUBE_API_KEY"))

	recommendCmd := command.NewRecommendVideos(
		embedder,
		dataset,
		similarity,
		dataset,
		generator,
		DefaultRecommendVideosConfig(),
	)

	recordCmd := command.NewRecordInteraction(dataset, similarity, dataset)

	ingestCmd := command.NewIngestVideos(
		catalog,
		dataset,
		dataset,
		similarity,
		generator,
		embedder,
	)

	return &Dependencies{
		Dataset:      dataset,
		Similarity:   similarity,
		Embedder:     embedder,
		Generator:    generator,
		Catalog:      catalog,
		RecommendCmd: recommendCmd,
		RecordCmd:    recordCmd,
		IngestCmd:    ingestCmd,
	}, nil
}

func setupDatasetRepository(ctx context.Context) (datasources.DatasetRepository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

func setupSimilarityRepository(ctx context.Context) (datasources.SimilarityRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "SIMILARITY_DRIVER"); driver {
	case "null":
		return datasources.NullSimilarityRepository{}, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown similarity driver [%s]", driver)
	}
}

func setupEmbedder(ctx context.Context) (datasources.Embedder, error) {
	switch driver := MustGetEnvAsString(ctx, "EMBEDDER_DRIVER"); driver {
	case "null":
		return datasources.NullEmbedder{}, nil
	case "voyageai":
		return voyageai.NewClient(
			MustGetEnvAsString(ctx, "VOYAGEAI_API_KEY"),
			MustGetEnvAsString(ctx, "VOYAGEAI_MODEL"),
			MustGetEnvAsInt(ctx, "VOYAGEAI_DIMENSION"),
		), nil
	default:
		return nil, fmt.Errorf("unknown embedder driver [%s]", driver)
	}
}

func setupTextGenerator(ctx context.Context) (datasources.TextGenerator, error) {
	switch driver := MustGetEnvAsString(ctx, "GENERATOR_DRIVER"); driver {
	case "null":
		return datasources.NullTextGenerator{}, nil
	case "ollama":
		return ollama.NewClient(
			MustGetEnvAsString(ctx, "OLLAMA_BASE_URL"),
			MustGetEnvAsString(ctx, "OLLAMA_MODEL"),
		), nil
	default:
		return nil, fmt.Errorf("unknown text generator driver [%s]", driver)
	}
}
