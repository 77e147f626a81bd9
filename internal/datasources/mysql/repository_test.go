package mysql

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuberec/tuberec/internal/domain"
)

func setupTestDB(t *testing.T) *sql.DB {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}

	db, err := Connect(context.Background(), os.Getenv("MYSQL_URI"))
	if err != nil {
		t.Fatal(err)
	}

	repo := New(db)

	err = repo.StoreVideo(context.Background(), domain.Video{
		VideoID:         "dQw4w9WgXcQ",
		Title:           "Learn Go Concurrency in 30 Minutes",
		Description:     "Goroutines, channels, and the sync package from first principles.",
		ChannelName:     "GopherAcademy",
		DurationSeconds: 1845,
		ViewCount:       120345,
		PublishedAt:     time.Date(2024, 11, 2, 9, 30, 0, 0, time.UTC),
		Tags:            "go,concurrency,channels",
		ThumbnailURL:    "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
	})
	require.NoError(t, err)

	err = repo.StoreVideo(context.Background(), domain.Video{
		VideoID:         "9bZkp7q19f0",
		Title:           "Database Indexing Explained",
		Description:     "B-trees, covering indexes, and when the optimizer ignores you.",
		ChannelName:     "QueryPlan",
		DurationSeconds: 1320,
		ViewCount:       98321,
		PublishedAt:     time.Date(2024, 12, 15, 14, 0, 0, 0, time.UTC),
		Tags:            "databases,indexing,sql",
		ThumbnailURL:    "https://i.ytimg.com/vi/9bZkp7q19f0/hqdefault.jpg",
	})
	require.NoError(t, err)

	_, err = db.ExecContext(context.Background(),
		`INSERT IGNORE INTO users (user_id, email, username) VALUES (?, ?, ?)`,
		"test-user-123", "test@example.com", "testuser",
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = db.Exec(`DELETE FROM interactions WHERE user_id = ?`, "test-user-123")
		_, _ = db.Exec(`DELETE FROM users WHERE user_id = ?`, "test-user-123")
		_, _ = db.Exec(`DELETE FROM videos WHERE video_id IN (?, ?)`, "dQw4w9WgXcQ", "9bZkp7q19f0")
		_ = db.Close()
	})

	return db
}

func TestRepository_FetchVideosByID_PreservesOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	videos, err := repo.FetchVideosByID(
		context.Background(),
		[]string{"9bZkp7q19f0", "missing-id", "dQw4w9WgXcQ"},
	)
	require.NoError(t, err)

	require.Len(t, videos, 2)
	assert.Equal(t, "9bZkp7q19f0", videos[0].VideoID)
	assert.Equal(t, "dQw4w9WgXcQ", videos[1].VideoID)
}

func TestRepository_FilterNewVideoIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	newIDs, err := repo.FilterNewVideoIDs(
		context.Background(),
		[]string{"dQw4w9WgXcQ", "brand-new-id", "9bZkp7q19f0", "another-new-id"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"brand-new-id", "another-new-id"}, newIDs)
}

func TestRepository_ApplyInteraction(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	vector := []float32{1.0, 0.0, 0.0, 0.0}

	rec, err := repo.ApplyInteraction(
		context.Background(),
		"test-user-123", "dQw4w9WgXcQ",
		domain.ActionToggleLike,
		vector,
	)
	require.NoError(t, err)
	assert.Equal(t, domain.LikeStatusLike, rec.LikeStatus)

	// First signal bootstraps the preference vector from the video vector.
	pref, err := repo.GetUserPreferenceVector(context.Background(), "test-user-123")
	require.NoError(t, err)
	assert.Equal(t, vector, pref)

	// A second event against the same pair updates in place, not duplicates.
	rec, err = repo.ApplyInteraction(
		context.Background(),
		"test-user-123", "dQw4w9WgXcQ",
		domain.ActionToggleWatchLater,
		vector,
	)
	require.NoError(t, err)
	assert.Equal(t, domain.LikeStatusLike, rec.LikeStatus)
	assert.True(t, rec.WatchLater)

	history, err := repo.ListInteractionHistory(context.Background(), "test-user-123", 50)
	require.NoError(t, err)
	require.Len(t, history, 1)

	watchLater, err := repo.ListWatchLater(context.Background(), "test-user-123")
	require.NoError(t, err)
	require.Len(t, watchLater, 1)
	assert.Equal(t, "dQw4w9WgXcQ", watchLater[0].VideoID)
}

func TestRepository_ApplyInteraction_UnknownUser(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	_, err := repo.ApplyInteraction(
		context.Background(),
		"no-such-user", "dQw4w9WgXcQ",
		domain.ActionClick,
		[]float32{1.0, 0.0},
	)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_DeleteInteraction_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	err := repo.DeleteInteraction(context.Background(), "test-user-123", "never-interacted")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
