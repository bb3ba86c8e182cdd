package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"cinesport/internal/logging"
	serviceMocks "cinesport/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct{ calls int }

func (s *countingSweeper) Sweep() int {
	s.calls++
	return 2
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestSyncMovies(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		var buf bytes.Buffer
		movies := new(serviceMocks.MockMovieService)
		movies.On("SyncGenres", mock.Anything).Return(19, nil).Once()
		movies.On("Populate", mock.Anything).Return(37, nil).Once()

		s := NewScheduler(Config{}, movies, nil, nil, logging.NewWithWriter(&buf, "info", nil))
		s.SyncMovies(ctx)

		lines := logLines(t, &buf)
		last := lines[len(lines)-1]
		assert.Equal(t, "done", last["status"])
		assert.Equal(t, float64(37), last["inserted"])
		movies.AssertExpectations(t)
	})

	t.Run("genre failure skips populate", func(t *testing.T) {
		var buf bytes.Buffer
		movies := new(serviceMocks.MockMovieService)
		movies.On("SyncGenres", mock.Anything).Return(0, errors.New("tmdb down")).Once()

		s := NewScheduler(Config{}, movies, nil, nil, logging.NewWithWriter(&buf, "info", nil))
		s.SyncMovies(ctx)

		lines := logLines(t, &buf)
		assert.Equal(t, "failed", lines[len(lines)-1]["status"])
		movies.AssertNotCalled(t, "Populate", mock.Anything)
	})
}

func TestSnapshotLeaderboards(t *testing.T) {
	var buf bytes.Buffer
	game := new(serviceMocks.MockGamificationService)
	game.On("SnapshotLeaderboards", mock.Anything).Return(120, nil).Once()

	s := NewScheduler(Config{}, nil, game, nil, logging.NewWithWriter(&buf, "info", nil))
	s.SnapshotLeaderboards(context.Background())

	lines := logLines(t, &buf)
	assert.Equal(t, float64(120), lines[len(lines)-1]["rows"])
	game.AssertExpectations(t)
}

func TestSweep(t *testing.T) {
	sw := &countingSweeper{}
	s := NewScheduler(Config{}, nil, nil, sw, logging.NewWithWriter(&bytes.Buffer{}, "info", nil))

	s.sweep(context.Background())
	assert.Equal(t, 1, sw.calls)
}

func TestStart(t *testing.T) {
	t.Run("invalid spec", func(t *testing.T) {
		s := NewScheduler(Config{MovieSyncCron: "every day"}, nil, nil, nil, logging.NewWithWriter(&bytes.Buffer{}, "info", nil))

		err := s.Start(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "movie_sync")
	})

	t.Run("schedules configured jobs", func(t *testing.T) {
		var buf bytes.Buffer
		s := NewScheduler(Config{
			MovieSyncCron:   "0 3 * * *",
			LeaderboardCron: "0 0 * * 0",
		}, nil, nil, nil, logging.NewWithWriter(&buf, "info", nil))

		require.NoError(t, s.Start(context.Background()))
		defer s.Stop()

		assert.Len(t, s.cron.Entries(), 2)

		var disabled int
		for _, l := range logLines(t, &buf) {
			if l["msg"] == "job disabled" {
				disabled++
				assert.Equal(t, "rate_limit_sweep", l["job"])
			}
		}
		assert.Equal(t, 1, disabled)
	})
}
