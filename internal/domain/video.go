package domain

import (
	"time"
)

type Video struct {
	VideoID         string    `json:"video_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ChannelName     string    `json:"channel_name"`
	DurationSeconds int       `json:"duration_seconds"`
	ViewCount       int64     `json:"view_count"`
	PublishedAt     time.Time `json:"published_at"`
	Tags            string    `json:"tags"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// VideoEmbedding is the unit indexed for nearest-neighbour search: one per
// video, created once at ingestion and never mutated afterwards.
type VideoEmbedding struct {
	VideoID string
	Vector  []float32
	Summary string
}

// VideoMatch is a nearest-neighbour result. Score is the similarity reported
// by the vector store; results arrive ordered closest first.
type VideoMatch struct {
	VideoID string
	Score   float64
	Summary string
}

// Recommendation pairs a generated narrative with the retrieved videos in
// similarity order. The narrative is free text and is not re-parsed.
type Recommendation struct {
	Narrative string  `json:"narrative"`
	Videos    []Video `json:"videos"`
}

type VideoFilters struct {
	TitleFulltext    string
	ChannelAllowlist []string
	ChannelBlocklist []string
	PublishedAfter   time.Time
	PublishedBefore  time.Time
}

type VideoListOptions struct {
	Ordering       []VideoOrdering
	Page, PageSize int
}

type VideoOrdering struct {
	Field VideoOrderingField
	Desc  bool
}

type VideoOrderingField string

const VideoOrderingFieldPublishedAt VideoOrderingField = "published_at"
const VideoOrderingFieldChannel VideoOrderingField = "channel_name"
const VideoOrderingFieldTitle VideoOrderingField = "title"
const VideoOrderingFieldViewCount VideoOrderingField = "view_count"

var ValidOrderingFields = []VideoOrderingField{
	VideoOrderingFieldPublishedAt,
	VideoOrderingFieldChannel,
	VideoOrderingFieldTitle,
	VideoOrderingFieldViewCount,
}
