package mysql

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/tuberec/tuberec/internal/datasources"
	"github.com/tuberec/tuberec/internal/domain"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const videoColumns = "video_id, title, description, channel_name, " +
	"duration_seconds, view_count, published_at, tags, thumbnail_url, created_at"

func scanVideo(row interface{ Scan(...any) error }) (domain.Video, error) {
	var v domain.Video
	err := row.Scan(
		&v.VideoID,
		&v.Title,
		&v.Description,
		&v.ChannelName,
		&v.DurationSeconds,
		&v.ViewCount,
		&v.PublishedAt,
		&v.Tags,
		&v.ThumbnailURL,
		&v.CreatedAt,
	)
	return v, err
}

func (r *Repository) FetchVideosByID(
	ctx context.Context,
	videoIDs []string,
) ([]domain.Video, error) {
	if len(videoIDs) == 0 {
		return []domain.Video{}, nil
	}

	sb := sqlbuilder.Select(videoColumns)
	sb.From("videos")

	ids := make([]interface{}, 0, len(videoIDs))
	for _, id := range videoIDs {
		ids = append(ids, id)
	}
	sb.Where(sb.In("video_id", ids...))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching videos by ID: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	videoMap := make(map[string]domain.Video, len(videoIDs))
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning videos: %w", err)
		}
		videoMap[v.VideoID] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	// Reassemble in the same order as the input IDs, dropping missing ones.
	videos := make([]domain.Video, 0, len(videoIDs))
	for _, videoID := range videoIDs {
		if v, exists := videoMap[videoID]; exists {
			videos = append(videos, v)
		}
	}

	return videos, nil
}

func (r *Repository) ListLatestVideoIDs(
	ctx context.Context,
	filters domain.VideoFilters,
	options domain.VideoListOptions,
) ([]string, error) {
	sb, err := buildVideosQuery("video_id", filters, options)
	if err != nil {
		return nil, err
	}

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running videos query: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	videoIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning videos: %w", err)
		}
		videoIDs = append(videoIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return videoIDs, nil
}

func (r *Repository) ListLatestVideos(
	ctx context.Context,
	filters domain.VideoFilters,
	options domain.VideoListOptions,
) ([]domain.Video, error) {
	sb, err := buildVideosQuery(videoColumns, filters, options)
	if err != nil {
		return nil, err
	}

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running videos query: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	videos := []domain.Video{}
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning videos: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return videos, nil
}

func (r *Repository) TotalMatchingVideos(
	ctx context.Context,
	filters domain.VideoFilters,
) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("videos")

	conds := buildVideosConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	query, args := sb.Build()

	row := r.db.QueryRowContext(ctx, query, args...)
	var count int64
	err := row.Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting matching videos: %w", err)
	}
	return count, nil
}

func buildVideosQuery(
	columns string,
	filters domain.VideoFilters,
	options domain.VideoListOptions,
) (*sqlbuilder.SelectBuilder, error) {
	sb := sqlbuilder.Select(columns)
	sb.From("videos")

	conds := buildVideosConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	orderings, err := buildVideosOrder(options)
	if err != nil {
		return nil, fmt.Errorf("building videos order by clause: %w", err)
	}

	sb.OrderBy(orderings...)
	sb.Offset((options.Page - 1) * options.PageSize)
	sb.Limit(options.PageSize)

	return sb, nil
}

func buildVideosConditions(sb *sqlbuilder.SelectBuilder, filters domain.VideoFilters) []string {
	var conds []string

	if filters.TitleFulltext != "" {
		conds = append(conds, "MATCH (title) AGAINST ("+sb.Args.Add(filters.TitleFulltext)+")")
	}

	if filters.PublishedAfter != (time.Time{}) {
		conds = append(conds, sb.GreaterEqualThan("published_at", filters.PublishedAfter))
	}

	if filters.PublishedBefore != (time.Time{}) {
		conds = append(conds, sb.LessEqualThan("published_at", filters.PublishedBefore))
	}

	if len(filters.ChannelAllowlist) > 0 {
		allowed := make([]interface{}, 0, len(filters.ChannelAllowlist))
		for _, channel := range filters.ChannelAllowlist {
			allowed = append(allowed, channel)
		}

		cond := sb.In("channel_name", allowed...)
		conds = append(conds, cond)
	}

	if len(filters.ChannelBlocklist) > 0 {
		blocked := make([]interface{}, 0, len(filters.ChannelBlocklist))
		for _, channel := range filters.ChannelBlocklist {
			blocked = append(blocked, channel)
		}

		cond := sb.NotIn("channel_name", blocked...)
		conds = append(conds, cond)
	}

	return conds
}

func buildVideosOrder(options domain.VideoListOptions) ([]string, error) {
	if len(options.Ordering) == 0 {
		return []string{"published_at DESC"}, nil
	}

	var orderings []string
	for _, ordering := range options.Ordering {
		var col string
		switch ordering.Field {
		case domain.VideoOrderingFieldPublishedAt:
			col = "published_at"
		case domain.VideoOrderingFieldChannel:
			col = "channel_name"
		case domain.VideoOrderingFieldTitle:
			col = "title"
		case domain.VideoOrderingFieldViewCount:
			col = "view_count"
		default:
			return nil, fmt.Errorf("unknown ordering field: %s", ordering.Field)
		}

		if ordering.Desc {
			col += " DESC"
		}
		orderings = append(orderings, col)
	}

	return orderings, nil
}

func (r *Repository) StoreVideo(ctx context.Context, video domain.Video) error {
	// INSERT IGNORE makes re-ingestion of a known video a no-op, keeping
	// the stored metadata from its first ingestion.
	_, err := r.db.ExecContext(ctx,
		`INSERT IGNORE INTO videos
			(video_id, title, description, channel_name, duration_seconds,
			 view_count, published_at, tags, thumbnail_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		video.VideoID,
		video.Title,
		video.Description,
		video.ChannelName,
		video.DurationSeconds,
		video.ViewCount,
		video.PublishedAt,
		video.Tags,
		video.ThumbnailURL,
	)
	if err != nil {
		return fmt.Errorf("storing video [%s]: %w", video.VideoID, err)
	}
	return nil
}

func (r *Repository) FilterNewVideoIDs(ctx context.Context, videoIDs []string) ([]string, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}

	sb := sqlbuilder.Select("video_id")
	sb.From("videos")

	ids := make([]interface{}, 0, len(videoIDs))
	for _, id := range videoIDs {
		ids = append(ids, id)
	}
	sb.Where(sb.In("video_id", ids...))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying existing video IDs: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	existing := make(map[string]struct{}, len(videoIDs))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning existing video IDs: %w", err)
		}
		existing[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	var newIDs []string
	for _, videoID := range videoIDs {
		if _, exists := existing[videoID]; !exists {
			newIDs = append(newIDs, videoID)
		}
	}

	return newIDs, nil
}

func (r *Repository) FetchUser(ctx context.Context, userID string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT user_id, email, username, preference_vector, created_at, updated_at
		FROM users WHERE user_id = ?`,
		userID,
	)

	var u domain.User
	var vectorBytes []byte
	err := row.Scan(&u.UserID, &u.Email, &u.Username, &vectorBytes, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("user [%s]: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user [%s]: %w", userID, err)
	}

	if len(vectorBytes) > 0 {
		u.PreferenceVector, err = bytesToFloat32Slice(vectorBytes)
		if err != nil {
			return domain.User{}, fmt.Errorf("decoding preference vector for user [%s]: %w", userID, err)
		}
	}

	return u, nil
}

func (r *Repository) GetUserPreferenceVector(ctx context.Context, userID string) ([]float32, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT preference_vector FROM users WHERE user_id = ?`,
		userID,
	)

	var vectorBytes []byte
	err := row.Scan(&vectorBytes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user [%s]: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching preference vector for user [%s]: %w", userID, err)
	}

	if len(vectorBytes) == 0 {
		return nil, nil
	}

	vector, err := bytesToFloat32Slice(vectorBytes)
	if err != nil {
		return nil, fmt.Errorf("decoding preference vector for user [%s]: %w", userID, err)
	}

	return vector, nil
}

// ApplyInteraction records one interaction event and folds its weight into
// the user's preference vector in a single transaction. The user row is
// locked for the duration so concurrent events for the same user serialize
// rather than clobber each other's read-modify-write.
func (r *Repository) ApplyInteraction(
	ctx context.Context,
	userID, videoID string,
	action domain.InteractionAction,
	videoVector []float32,
) (domain.Interaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Interaction{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	currentVector, err := lockUserPreference(ctx, tx, userID)
	if err != nil {
		return domain.Interaction{}, err
	}

	rec, err := getOrCreateInteraction(ctx, tx, userID, videoID)
	if err != nil {
		return domain.Interaction{}, err
	}

	rec.Apply(action)
	rec.LastModified = time.Now()

	if err := upsertInteraction(ctx, tx, rec); err != nil {
		return domain.Interaction{}, err
	}

	updatedVector, err := domain.UpdatePreference(currentVector, videoVector, action.Weight())
	if err != nil {
		return domain.Interaction{}, fmt.Errorf("updating preference vector: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE users SET preference_vector = ? WHERE user_id = ?`,
		float32SliceToBytes(updatedVector),
		userID,
	)
	if err != nil {
		return domain.Interaction{}, fmt.Errorf("storing preference vector for user [%s]: %w", userID, err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Interaction{}, fmt.Errorf("committing transaction: %w", err)
	}

	return rec, nil
}

func lockUserPreference(ctx context.Context, tx *sql.Tx, userID string) ([]float32, error) {
	row := tx.QueryRowContext(ctx,
		`SELECT preference_vector FROM users WHERE user_id = ? FOR UPDATE`,
		userID,
	)

	var vectorBytes []byte
	err := row.Scan(&vectorBytes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user [%s]: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("locking user row [%s]: %w", userID, err)
	}

	if len(vectorBytes) == 0 {
		return nil, nil
	}

	vector, err := bytesToFloat32Slice(vectorBytes)
	if err != nil {
		return nil, fmt.Errorf("decoding preference vector for user [%s]: %w", userID, err)
	}

	return vector, nil
}

func getOrCreateInteraction(
	ctx context.Context, tx *sql.Tx, userID, videoID string,
) (domain.Interaction, error) {
	row := tx.QueryRowContext(ctx,
		`SELECT user_id, video_id, like_status, watch_status, watch_later, clicked, last_modified
		FROM interactions WHERE user_id = ? AND video_id = ?`,
		userID, videoID,
	)

	var rec domain.Interaction
	err := row.Scan(
		&rec.UserID,
		&rec.VideoID,
		&rec.LikeStatus,
		&rec.WatchStatus,
		&rec.WatchLater,
		&rec.Clicked,
		&rec.LastModified,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewInteraction(userID, videoID), nil
	}
	if err != nil {
		return domain.Interaction{}, fmt.Errorf("getting current interaction: %w", err)
	}

	return rec, nil
}

func upsertInteraction(ctx context.Context, tx *sql.Tx, rec domain.Interaction) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO interactions
			(user_id, video_id, like_status, watch_status, watch_later, clicked, last_modified)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			like_status = VALUES(like_status),
			watch_status = VALUES(watch_status),
			watch_later = VALUES(watch_later),
			clicked = VALUES(clicked),
			last_modified = VALUES(last_modified)`,
		rec.UserID,
		rec.VideoID,
		string(rec.LikeStatus),
		string(rec.WatchStatus),
		rec.WatchLater,
		rec.Clicked,
		rec.LastModified,
	)
	if err != nil {
		return fmt.Errorf("upserting interaction: %w", err)
	}
	return nil
}

func (r *Repository) DeleteInteraction(ctx context.Context, userID, videoID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM interactions WHERE user_id = ? AND video_id = ?`,
		userID, videoID,
	)
	if err != nil {
		return fmt.Errorf("deleting interaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted interaction: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("interaction [%s/%s]: %w", userID, videoID, domain.ErrNotFound)
	}

	return nil
}

func (r *Repository) ListInteractionHistory(
	ctx context.Context, userID string, limit int,
) ([]domain.Interaction, error) {
	if limit > math.MaxInt32 {
		limit = math.MaxInt32
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, video_id, like_status, watch_status, watch_later, clicked, last_modified
		FROM interactions WHERE user_id = ?
		ORDER BY last_modified DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing interaction history: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	return scanInteractions(rows)
}

func (r *Repository) ListWatchLater(ctx context.Context, userID string) ([]domain.Interaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, video_id, like_status, watch_status, watch_later, clicked, last_modified
		FROM interactions WHERE user_id = ? AND watch_later = TRUE
		ORDER BY last_modified DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing watch-later interactions: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	return scanInteractions(rows)
}

func scanInteractions(rows *sql.Rows) ([]domain.Interaction, error) {
	interactions := []domain.Interaction{}
	for rows.Next() {
		var rec domain.Interaction
		if err := rows.Scan(
			&rec.UserID,
			&rec.VideoID,
			&rec.LikeStatus,
			&rec.WatchStatus,
			&rec.WatchLater,
			&rec.Clicked,
			&rec.LastModified,
		); err != nil {
			return nil, fmt.Errorf("scanning interactions: %w", err)
		}
		interactions = append(interactions, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return interactions, nil
}

// Helper functions for binary vector serialization

func float32SliceToBytes(floats []float32) []byte {
	bytes := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(bytes[i*4:], math.Float32bits(f))
	}
	return bytes
}

func bytesToFloat32Slice(bytes []byte) ([]float32, error) {
	if len(bytes)%4 != 0 {
		return nil, fmt.Errorf("invalid byte length for float32 slice: %d", len(bytes))
	}
	floats := make([]float32, len(bytes)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(bytes[i*4:]))
	}
	return floats, nil
}
