package trending

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storagemock "github.com/growloop/icarus/internal/storage/mock"
)

func TestRefresher_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storagemock.NewMockStorage(ctrl)

	s.EXPECT().RefreshHotTweets(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
		func(_ context.Context, since time.Time, _ int64) error {
			assert.WithinDuration(t, time.Now().UTC().Add(-time.Hour), since, time.Minute)
			return nil
		}).MinTimes(1)

	r := New(s, 10*time.Millisecond, time.Hour, 3)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, r.Run(ctx))

	_, err := r.Ping(context.Background())
	require.NoError(t, err)
}

func TestRefresher_Ping(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storagemock.NewMockStorage(ctrl)

	r := New(s, time.Minute, time.Hour, 3)

	s.EXPECT().RefreshHotTweets(gomock.Any(), gomock.Any(), int64(3)).Return(errors.New("pg is down"))
	r.refresh(context.Background())

	_, err := r.Ping(context.Background())
	require.Error(t, err)

	s.EXPECT().RefreshHotTweets(gomock.Any(), gomock.Any(), int64(3)).Return(nil)
	r.refresh(context.Background())

	status, err := r.Ping(context.Background())
	require.NoError(t, err)
	assert.Contains(t, status.(map[string]interface{}), "last_run")

	assert.Equal(t, "trending", r.Name())
}
