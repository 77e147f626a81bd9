package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/tuberec/tuberec/internal/command"
	"github.com/tuberec/tuberec/internal/datasources"
	"github.com/tuberec/tuberec/internal/domain"
	"github.com/tuberec/tuberec/internal/transport/web/controller"
)

type Commands struct {
	Recommend command.Command[command.RecommendVideosRequest, domain.Recommendation]
	Record    command.Command[command.RecordInteractionRequest, domain.Interaction]
	Ingest    command.Command[command.IngestVideosRequest, int]
}

func MakeRouter(
	dataset datasources.DatasetRepository,
	similarity datasources.SimilarityRepository,
	embedder datasources.Embedder,
	commands Commands,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	latestCacheMaxAge time.Duration,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.Handle("/v1/videos", controller.VideosList{
		Lister:      dataset,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/videos/search", controller.VideoSearch{
		Embedder:   embedder,
		Similarity: similarity,
		Fetcher:    dataset,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/videos/{video_id}", controller.VideoGet{
		Fetcher:     dataset,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/{user_id}", controller.UserGet{
		Fetcher: dataset,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/{user_id}/recommendations", controller.RecommendationsGet{
		RecommendCmd: commands.Recommend,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/{user_id}/interactions", controller.InteractionHistoryList{
		Lister: dataset,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/{user_id}/interactions/{video_id}", controller.InteractionDelete{
		Deleter: dataset,
	}).Methods(http.MethodDelete, http.MethodOptions)

	r.Handle("/v1/users/{user_id}/watch-later", controller.WatchLaterList{
		Lister:  dataset,
		Fetcher: dataset,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/interactions", controller.InteractionRecord{
		RecordCmd: commands.Record,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/ingestion", controller.IngestTrigger{
		IngestCmd: commands.Ingest,
	}).Methods(http.MethodPost, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    rssFeedBaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  rssFeedAuthorName,
			FeedAuthorEmail: rssFeedAuthorEmail,
			Dataset:         dataset,
			CacheMaxAge:     latestCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
