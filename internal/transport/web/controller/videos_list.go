package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tuberec/tuberec/internal/datasources"
	"github.com/tuberec/tuberec/internal/domain"
)

type VideosList struct {
	Lister      datasources.LatestVideoLister
	CacheMaxAge time.Duration
}

type VideosListResponse struct {
	Data     []domain.Video     `json:"data"`
	Metadata VideosListMetadata `json:"metadata"`
}

type VideosListMetadata struct{}

func (c VideosList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filters, err := videoFiltersFromQuery(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse video filters in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	options, err := listOptionsFromQuery(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse video list options in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	videos, err := c.Lister.ListLatestVideos(r.Context(), filters, options)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch videos", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(VideosListResponse{
		Data:     videos,
		Metadata: VideosListMetadata{},
	}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write videos to response", "error", err)
	}
}

func videoFiltersFromQuery(q url.Values) (domain.VideoFilters, error) {
	var filters domain.VideoFilters

	if q.Has("title") {
		filters.TitleFulltext = q.Get("title")
	}

	if q.Has("only_channels") {
		filters.ChannelAllowlist = strings.Split(q.Get("only_channels"), ",")
	}

	if q.Has("except_channels") {
		filters.ChannelBlocklist = strings.Split(q.Get("except_channels"), ",")
	}

	if q.Has("published_after") {
		after, err := time.Parse(time.RFC3339, q.Get("published_after"))
		if err != nil {
			return domain.VideoFilters{}, fmt.Errorf("unable to parse published_after from query: %w", err)
		}
		filters.PublishedAfter = after
	}

	if q.Has("published_before") {
		before, err := time.Parse(time.RFC3339, q.Get("published_before"))
		if err != nil {
			return domain.VideoFilters{}, fmt.Errorf("unable to parse published_before from query: %w", err)
		}
		filters.PublishedBefore = before
	}

	return filters, nil
}

func listOptionsFromQuery(q url.Values) (domain.VideoListOptions, error) {
	var options domain.VideoListOptions
	if q.Has("page") {
		page, err := strconv.ParseInt(q.Get("page"), 10, 32)
		if err != nil {
			return domain.VideoListOptions{}, fmt.Errorf("unable to parse page from query: %w", err)
		}
		if page < 1 {
			return domain.VideoListOptions{}, fmt.Errorf("invalid page value [%d]", page)
		}
		options.Page = int(page)
	} else {
		options.Page = 1
	}

	if q.Has("page_size") {
		pageSize, err := strconv.ParseInt(q.Get("page_size"), 10, 32)
		if err != nil {
			return domain.VideoListOptions{}, fmt.Errorf("unable to parse page size from query: %w", err)
		}
		if pageSizeLimit := int64(200); pageSize > pageSizeLimit {
			return domain.VideoListOptions{}, fmt.Errorf("page size [%d] exceeds limit [%d]",
				pageSize, pageSizeLimit)
		}
		options.PageSize = int(pageSize)
	} else {
		options.PageSize = 100
	}

	if q.Has("sort") {
		orderings := strings.Split(q.Get("sort"), ",")

		for _, ordering := range orderings {
			field := ordering
			desc := false
			if strings.HasSuffix(ordering, "_desc") {
				field = ordering[:len(ordering)-5]
				desc = true
			}

			if !slices.Contains(domain.ValidOrderingFields, domain.VideoOrderingField(field)) {
				return domain.VideoListOptions{}, fmt.Errorf("unrecognised video ordering field: %s", field)
			}

			options.Ordering = append(options.Ordering, domain.VideoOrdering{
				Field: domain.VideoOrderingField(field),
				Desc:  desc,
			})
		}
	}

	return options, nil
}
