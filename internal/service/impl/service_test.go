package impl

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growloop/icarus/internal/entities"
	"github.com/growloop/icarus/internal/service"
	storageinterface "github.com/growloop/icarus/internal/storage"
	storage "github.com/growloop/icarus/internal/storage/mock"
)

var ctx = context.Background()

func newSrv(t *testing.T) (*storage.MockStorage, service.Service) {
	ctrl := gomock.NewController(t)
	s := storage.NewMockStorage(ctrl)

	return s, New(s, DefaultConfig())
}

func expectInTx(s *storage.MockStorage) {
	s.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f func(s storageinterface.Storage) error) error {
			return f(s)
		})
}

func TestSrv_GetOrCreateProfile_New(t *testing.T) {
	s, srv := newSrv(t)

	s.EXPECT().GetProfile(gomock.Any(), "user").Return(nil, storageinterface.ErrNotFound)
	s.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *entities.Profile) {
		assert.Equal(t, "user", p.ID)
		assert.Equal(t, "Ada", p.DisplayName)
		assert.Equal(t, "ada", p.Handle)
		assert.EqualValues(t, 100, p.Points)
		assert.Equal(t, entities.LevelForPoints(100), p.Level)
	}).Return(nil)
	s.EXPECT().CountInteractions(gomock.Any(), "user", gomock.Any()).Return(map[entities.ActionType]uint32{}, nil)

	out, err := srv.GetOrCreateProfile(ctx, service.GetOrCreateProfileParams{
		ID:          "user",
		DisplayName: "Ada",
		Handle:      "ada",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 100, out.Profile.Points)
}

func TestSrv_GetOrCreateProfile_Existing(t *testing.T) {
	s, srv := newSrv(t)

	p := &entities.Profile{ID: "user", Points: 150, Level: 2}

	s.EXPECT().GetProfile(gomock.Any(), "user").Return(p, nil)
	s.EXPECT().CountInteractions(gomock.Any(), "user", gomock.Any()).Do(func(_ context.Context, _ string, since time.Time) {
		now := time.Now().UTC()
		assert.Equal(t, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), since)
	}).Return(map[entities.ActionType]uint32{
		entities.ActionLike:  3,
		entities.ActionShare: 1,
	}, nil)

	out, err := srv.GetOrCreateProfile(ctx, service.GetOrCreateProfileParams{ID: "user"})
	require.NoError(t, err)
	assert.Equal(t, p, out.Profile)
	assert.EqualValues(t, 3, out.Today[entities.ActionLike])
	assert.EqualValues(t, 1, out.Today[entities.ActionShare])
}

func TestSrv_GetOrCreateProfile_Race(t *testing.T) {
	s, srv := newSrv(t)

	p := &entities.Profile{ID: "user", Points: 100, Level: 2}

	s.EXPECT().GetProfile(gomock.Any(), "user").Return(nil, storageinterface.ErrNotFound)
	s.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(storageinterface.ErrAlreadyExists)
	s.EXPECT().GetProfile(gomock.Any(), "user").Return(p, nil)
	s.EXPECT().CountInteractions(gomock.Any(), "user", gomock.Any()).Return(nil, nil)

	out, err := srv.GetOrCreateProfile(ctx, service.GetOrCreateProfileParams{ID: "user"})
	require.NoError(t, err)
	assert.Equal(t, p, out.Profile)
}

func TestSrv_RecordInteraction(t *testing.T) {
	tt := []struct {
		action entities.ActionType
		reward int64
	}{
		{entities.ActionLike, 1},
		{entities.ActionComment, 2},
		{entities.ActionShare, 3},
	}

	for _, tc := range tt {
		tc := tc

		t.Run(string(tc.action), func(t *testing.T) {
			s, srv := newSrv(t)

			expectInTx(s)
			s.EXPECT().GetTweet(gomock.Any(), "tweet").Return(&entities.Tweet{ID: "tweet"}, nil)
			s.EXPECT().CreateInteraction(gomock.Any(), gomock.Any()).Do(func(_ context.Context, i *entities.Interaction) {
				assert.Equal(t, "user", i.UserID)
				assert.Equal(t, "tweet", i.TweetID)
				assert.Equal(t, tc.action, i.Action)
				assert.Equal(t, tc.reward, i.PointsAwarded)
				assert.NotEmpty(t, i.ID)
			}).Return(nil)
			s.EXPECT().IncrementCounter(gomock.Any(), "tweet", tc.action).Return(nil)
			s.EXPECT().AddPoints(gomock.Any(), "user", tc.reward).Return(&entities.Profile{}, nil)

			awarded, err := srv.RecordInteraction(ctx, "user", "tweet", tc.action)
			require.NoError(t, err)
			assert.Equal(t, tc.reward, awarded)
		})
	}
}

func TestSrv_RecordInteraction_InvalidAction(t *testing.T) {
	_, srv := newSrv(t)

	_, err := srv.RecordInteraction(ctx, "user", "tweet", "retweet")
	require.True(t, errors.Is(err, service.ErrInvalidAction))
}

func TestSrv_RecordInteraction_TweetNotFound(t *testing.T) {
	s, srv := newSrv(t)

	expectInTx(s)
	s.EXPECT().GetTweet(gomock.Any(), "tweet").Return(nil, storageinterface.ErrNotFound)

	_, err := srv.RecordInteraction(ctx, "user", "tweet", entities.ActionLike)
	require.True(t, errors.Is(err, service.ErrTweetNotFound))
}

func TestSrv_RecordInteraction_Duplicate(t *testing.T) {
	s, srv := newSrv(t)

	expectInTx(s)
	s.EXPECT().GetTweet(gomock.Any(), "tweet").Return(&entities.Tweet{ID: "tweet"}, nil)
	s.EXPECT().CreateInteraction(gomock.Any(), gomock.Any()).Return(storageinterface.ErrAlreadyExists)

	_, err := srv.RecordInteraction(ctx, "user", "tweet", entities.ActionLike)
	require.True(t, errors.Is(err, service.ErrDuplicateInteraction))
}

func TestSrv_SubmitTweet(t *testing.T) {
	s, srv := newSrv(t)

	expectInTx(s)
	s.EXPECT().GetProfile(gomock.Any(), "user").Return(&entities.Profile{ID: "user", Points: 10}, nil)
	s.EXPECT().AddPoints(gomock.Any(), "user", int64(-10)).Return(&entities.Profile{ID: "user", Points: 0, Level: 1}, nil)
	s.EXPECT().CreateTweet(gomock.Any(), gomock.Any()).Do(func(_ context.Context, tweet *entities.Tweet) {
		assert.Equal(t, "user", tweet.AuthorID)
		assert.Equal(t, "hello", tweet.Body)
		assert.Equal(t, "tech", tweet.Community)
		assert.Equal(t, []string{"go"}, tweet.Tags)
		assert.GreaterOrEqual(t, tweet.PointValue, 3)
		assert.LessOrEqual(t, tweet.PointValue, 5)
		assert.NotEmpty(t, tweet.ID)
	}).Return(nil)

	tweet, err := srv.SubmitTweet(ctx, service.SubmitTweetParams{
		AuthorID:  "user",
		Body:      "hello",
		Community: "tech",
		Tags:      []string{"go"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", tweet.Body)
}

func TestSrv_SubmitTweet_InsufficientPoints(t *testing.T) {
	s, srv := newSrv(t)

	expectInTx(s)
	s.EXPECT().GetProfile(gomock.Any(), "user").Return(&entities.Profile{ID: "user", Points: 9}, nil)

	_, err := srv.SubmitTweet(ctx, service.SubmitTweetParams{AuthorID: "user", Body: "hello"})

	var insufficient service.InsufficientPointsError
	require.True(t, errors.As(err, &insufficient))
	assert.EqualValues(t, 1, insufficient.Missing)
	assert.Equal(t, "insufficient points, need 1 more", insufficient.Error())
}

func TestSrv_SubmitTweet_InvalidBody(t *testing.T) {
	_, srv := newSrv(t)

	_, err := srv.SubmitTweet(ctx, service.SubmitTweetParams{AuthorID: "user", Body: ""})
	require.True(t, errors.Is(err, service.ErrInvalidBody))

	_, err = srv.SubmitTweet(ctx, service.SubmitTweetParams{AuthorID: "user", Body: strings.Repeat("ы", 281)})
	require.True(t, errors.Is(err, service.ErrInvalidBody))

	// 280 runes is exactly the bound and passes validation
	s2, srv2 := newSrv(t)
	expectInTx(s2)
	s2.EXPECT().GetProfile(gomock.Any(), "user").Return(&entities.Profile{ID: "user", Points: 100}, nil)
	s2.EXPECT().AddPoints(gomock.Any(), "user", int64(-10)).Return(&entities.Profile{}, nil)
	s2.EXPECT().CreateTweet(gomock.Any(), gomock.Any()).Return(nil)

	_, err = srv2.SubmitTweet(ctx, service.SubmitTweetParams{AuthorID: "user", Body: strings.Repeat("ы", 280)})
	require.NoError(t, err)
}

func TestSrv_Leaderboard_AllTime(t *testing.T) {
	s, srv := newSrv(t)

	profiles := []*entities.Profile{
		{ID: "a", Points: 300, Level: 4},
		{ID: "b", Points: 103, Level: 2},
	}

	s.EXPECT().TopProfiles(gomock.Any(), uint16(10)).Return(profiles, nil)

	out, err := srv.Leaderboard(ctx, service.LeaderboardParams{
		Timeframe: service.AllTimeTimeframe,
		Limit:     10,
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, 1, out[0].Rank)
	assert.EqualValues(t, 300, out[0].Points)
	assert.Equal(t, "a", out[0].Profile.ID)
	assert.Equal(t, 2, out[1].Rank)
	assert.EqualValues(t, 103, out[1].Points)
}

func TestSrv_Leaderboard_Weekly(t *testing.T) {
	s, srv := newSrv(t)

	community := "tech"

	s.EXPECT().SumAwardedPoints(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *storageinterface.SumAwardedPointsParams) {
		assert.WithinDuration(t, time.Now().UTC().Add(-7*24*time.Hour), p.Since, time.Minute)
		assert.Equal(t, "tech", *p.Community)
		assert.EqualValues(t, 10, p.Limit)
	}).Return([]*storageinterface.UserPoints{
		{UserID: "a", Points: 4},
		{UserID: "b", Points: 1},
	}, nil)
	s.EXPECT().GetProfiles(gomock.Any(), "a", "b").Return([]*entities.Profile{
		{ID: "b", Points: 101, Level: 2},
		{ID: "a", Points: 204, Level: 3},
	}, nil)

	out, err := srv.Leaderboard(ctx, service.LeaderboardParams{
		Timeframe: service.WeeklyTimeframe,
		Community: &community,
		Limit:     10,
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, 1, out[0].Rank)
	assert.EqualValues(t, 4, out[0].Points)
	assert.Equal(t, "a", out[0].Profile.ID)
	assert.Equal(t, 2, out[1].Rank)
	assert.EqualValues(t, 1, out[1].Points)
	assert.Equal(t, "b", out[1].Profile.ID)
}

func TestSrv_Leaderboard_InvalidTimeframe(t *testing.T) {
	_, srv := newSrv(t)

	_, err := srv.Leaderboard(ctx, service.LeaderboardParams{Timeframe: "monthly"})
	require.True(t, errors.Is(err, service.ErrInvalidTimeframe))
}

func TestSrv_ListTweets(t *testing.T) {
	s, srv := newSrv(t)

	community := "tech"
	timestamp := time.Unix(100, 0)

	s.EXPECT().ListTweets(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *storageinterface.ListTweetsParams) {
		assert.Equal(t, "tech", *p.Community)
		assert.True(t, p.HotOnly)
		assert.EqualValues(t, 5, p.Offset)
		assert.EqualValues(t, 20, p.Limit)
	}).Return([]*entities.Tweet{
		{ID: "t1", AuthorID: "a", CreatedAt: timestamp},
		{ID: "t2", AuthorID: "b", CreatedAt: timestamp},
		{ID: "t3", AuthorID: "a", CreatedAt: timestamp},
	}, nil)
	s.EXPECT().GetProfiles(gomock.Any(), "a", "b").Return([]*entities.Profile{
		{ID: "a"},
		{ID: "b"},
	}, nil)

	out, err := srv.ListTweets(ctx, service.ListTweetsParams{
		Community: &community,
		HotOnly:   true,
		Offset:    5,
		Limit:     20,
	})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].Author.ID)
	assert.Equal(t, "b", out[1].Author.ID)
	assert.Equal(t, "a", out[2].Author.ID)
}

func TestSrv_Achievements(t *testing.T) {
	s, srv := newSrv(t)

	s.EXPECT().GetProfile(gomock.Any(), "user").Return(&entities.Profile{ID: "user", Points: 120, Level: 2}, nil)
	s.EXPECT().CountInteractions(gomock.Any(), "user", time.Time{}).Return(map[entities.ActionType]uint32{
		entities.ActionLike:  10,
		entities.ActionShare: 1,
	}, nil)
	s.EXPECT().CountTweetsByAuthor(gomock.Any(), "user").Return(uint32(1), nil)

	out, err := srv.Achievements(ctx, "user")
	require.NoError(t, err)

	ids := make([]string, len(out))
	for i, v := range out {
		ids[i] = v.ID
	}
	assert.Equal(t, []string{"first_like", "ten_likes", "sharer", "first_tweet"}, ids)
}

func TestSrv_SubmitFeedback(t *testing.T) {
	s, srv := newSrv(t)

	s.EXPECT().CreateFeedback(gomock.Any(), gomock.Any()).Do(func(_ context.Context, f *entities.Feedback) {
		assert.Equal(t, "user", f.UserID)
		assert.Equal(t, "bug", f.Category)
		assert.Equal(t, "it is broken", f.Message)
		assert.NotEmpty(t, f.ID)
	}).Return(nil)

	require.NoError(t, srv.SubmitFeedback(ctx, service.SubmitFeedbackParams{
		UserID:   "user",
		Category: "bug",
		Message:  "it is broken",
	}))
}

func TestSrv_SubmitFeedback_Invalid(t *testing.T) {
	_, srv := newSrv(t)

	err := srv.SubmitFeedback(ctx, service.SubmitFeedbackParams{UserID: "user", Category: "rant", Message: "hi"})
	require.True(t, errors.Is(err, service.ErrInvalidFeedback))

	err = srv.SubmitFeedback(ctx, service.SubmitFeedbackParams{UserID: "user", Category: "bug", Message: ""})
	require.True(t, errors.Is(err, service.ErrInvalidFeedback))

	err = srv.SubmitFeedback(ctx, service.SubmitFeedbackParams{UserID: "user", Category: "bug", Message: strings.Repeat("x", 2001)})
	require.True(t, errors.Is(err, service.ErrInvalidFeedback))
}
