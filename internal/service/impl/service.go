// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/growloop/icarus/internal/entities"
	"github.com/growloop/icarus/internal/service"
	"github.com/growloop/icarus/internal/storage"
)

const maxBodyRunes = 280
const maxFeedbackRunes = 2000

var feedbackCategories = map[string]struct{}{
	"bug":   {},
	"idea":  {},
	"other": {},
}

// Config ...
type Config struct {
	StartingBalance int64
	SubmissionCost  int64
	RewardMin       int
	RewardMax       int
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		StartingBalance: 100,
		SubmissionCost:  10,
		RewardMin:       3,
		RewardMax:       5,
	}
}

type srv struct {
	s   storage.Storage
	cfg Config
}

// New creates new instance of service.
func New(s storage.Storage, cfg Config) service.Service {
	return srv{
		s:   s,
		cfg: cfg,
	}
}

func (s srv) GetOrCreateProfile(ctx context.Context, p service.GetOrCreateProfileParams) (*service.ProfileActivity, error) {
	profile, err := s.s.GetProfile(ctx, p.ID)

	if errors.Is(err, storage.ErrNotFound) {
		profile = &entities.Profile{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			Handle:      p.Handle,
			Avatar:      p.Avatar,
			Points:      s.cfg.StartingBalance,
			Level:       entities.LevelForPoints(s.cfg.StartingBalance),
			CreatedAt:   time.Now().UTC(),
		}

		switch err := s.s.CreateProfile(ctx, profile); {
		case err == nil:
		case errors.Is(err, storage.ErrAlreadyExists):
			// Lost the race to a concurrent first request.
			if profile, err = s.s.GetProfile(ctx, p.ID); err != nil {
				return nil, fmt.Errorf("failed to get profile: %w", err)
			}
		default:
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	today, err := s.s.CountInteractions(ctx, profile.ID, startOfDay(time.Now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("failed to count interactions: %w", err)
	}

	return &service.ProfileActivity{
		Profile: profile,
		Today:   today,
	}, nil
}

func (s srv) Achievements(ctx context.Context, userID string) ([]service.Achievement, error) {
	profile, err := s.s.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrProfileNotFound
		}

		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	counts, err := s.s.CountInteractions(ctx, userID, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("failed to count interactions: %w", err)
	}

	tweets, err := s.s.CountTweetsByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tweets: %w", err)
	}

	out := make([]service.Achievement, 0)

	add := func(earned bool, id, title string) {
		if earned {
			out = append(out, service.Achievement{ID: id, Title: title})
		}
	}

	add(counts[entities.ActionLike] >= 1, "first_like", "Spread the Love")
	add(counts[entities.ActionLike] >= 10, "ten_likes", "Serial Liker")
	add(counts[entities.ActionComment] >= 5, "commentator", "Commentator")
	add(counts[entities.ActionShare] >= 1, "sharer", "Signal Booster")
	add(tweets >= 1, "first_tweet", "Breaking the Ice")
	add(tweets >= 10, "prolific", "Prolific Author")
	add(profile.Level >= 5, "level_5", "High Flyer")

	return out, nil
}

func (s srv) ListTweets(ctx context.Context, p service.ListTweetsParams) ([]*service.TweetWithAuthor, error) {
	tweets, err := s.s.ListTweets(ctx, &storage.ListTweetsParams{
		Community: p.Community,
		HotOnly:   p.HotOnly,
		Offset:    p.Offset,
		Limit:     p.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}

	authors, err := s.s.GetProfiles(ctx, extractAuthorIDs(tweets)...)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	byID := make(map[string]*entities.Profile, len(authors))
	for _, v := range authors {
		byID[v.ID] = v
	}

	out := make([]*service.TweetWithAuthor, len(tweets))
	for i, v := range tweets {
		out[i] = &service.TweetWithAuthor{
			Tweet:  v,
			Author: byID[v.AuthorID],
		}
	}

	return out, nil
}

func (s srv) SubmitTweet(ctx context.Context, p service.SubmitTweetParams) (*entities.Tweet, error) {
	if l := utf8.RuneCountInString(p.Body); l == 0 || l > maxBodyRunes {
		return nil, service.ErrInvalidBody
	}

	var tweet *entities.Tweet

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		profile, err := tx.GetProfile(ctx, p.AuthorID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return service.ErrProfileNotFound
			}

			return fmt.Errorf("failed to get profile: %w", err)
		}

		if profile.Points < s.cfg.SubmissionCost {
			return service.InsufficientPointsError{Missing: s.cfg.SubmissionCost - profile.Points}
		}

		if _, err := tx.AddPoints(ctx, p.AuthorID, -s.cfg.SubmissionCost); err != nil {
			if errors.Is(err, storage.ErrNegativeBalance) {
				return service.InsufficientPointsError{Missing: s.cfg.SubmissionCost - profile.Points}
			}

			return fmt.Errorf("failed to debit points: %w", err)
		}

		tweet = &entities.Tweet{
			ID:         uuid.NewString(),
			AuthorID:   p.AuthorID,
			Body:       p.Body,
			Community:  p.Community,
			Tags:       p.Tags,
			PointValue: s.rollReward(),
			CreatedAt:  time.Now().UTC(),
		}

		if err := tx.CreateTweet(ctx, tweet); err != nil {
			return fmt.Errorf("failed to create tweet: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return tweet, nil
}

func (s srv) RecordInteraction(ctx context.Context, userID, tweetID string, action entities.ActionType) (int64, error) {
	if !action.Valid() {
		return 0, service.ErrInvalidAction
	}

	reward := action.Reward()

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if _, err := tx.GetTweet(ctx, tweetID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return service.ErrTweetNotFound
			}

			return fmt.Errorf("failed to get tweet: %w", err)
		}

		err := tx.CreateInteraction(ctx, &entities.Interaction{
			ID:            uuid.NewString(),
			UserID:        userID,
			TweetID:       tweetID,
			Action:        action,
			PointsAwarded: reward,
			CreatedAt:     time.Now().UTC(),
		})
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			return service.ErrDuplicateInteraction
		case errors.Is(err, storage.ErrNotFound):
			return service.ErrProfileNotFound
		case err != nil:
			return fmt.Errorf("failed to create interaction: %w", err)
		}

		if err := tx.IncrementCounter(ctx, tweetID, action); err != nil {
			return fmt.Errorf("failed to increment counter: %w", err)
		}

		if _, err := tx.AddPoints(ctx, userID, reward); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return service.ErrProfileNotFound
			}

			return fmt.Errorf("failed to credit points: %w", err)
		}

		return nil
	}); err != nil {
		return 0, err
	}

	return reward, nil
}

func (s srv) Leaderboard(ctx context.Context, p service.LeaderboardParams) ([]*service.LeaderboardEntry, error) {
	if !p.Timeframe.Valid() {
		return nil, service.ErrInvalidTimeframe
	}

	window, windowed := p.Timeframe.Window()
	if !windowed {
		profiles, err := s.s.TopProfiles(ctx, p.Limit)
		if err != nil {
			return nil, fmt.Errorf("failed to get top profiles: %w", err)
		}

		out := make([]*service.LeaderboardEntry, len(profiles))
		for i, v := range profiles {
			out[i] = &service.LeaderboardEntry{
				Rank:    i + 1,
				Points:  v.Points,
				Profile: v,
			}
		}

		return out, nil
	}

	sums, err := s.s.SumAwardedPoints(ctx, &storage.SumAwardedPointsParams{
		Since:     time.Now().UTC().Add(-window),
		Community: p.Community,
		Limit:     p.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum awarded points: %w", err)
	}

	ids := make([]string, len(sums))
	for i, v := range sums {
		ids[i] = v.UserID
	}

	profiles, err := s.s.GetProfiles(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	byID := make(map[string]*entities.Profile, len(profiles))
	for _, v := range profiles {
		byID[v.ID] = v
	}

	out := make([]*service.LeaderboardEntry, len(sums))
	for i, v := range sums {
		out[i] = &service.LeaderboardEntry{
			Rank:    i + 1,
			Points:  v.Points,
			Profile: byID[v.UserID],
		}
	}

	return out, nil
}

func (s srv) SubmitFeedback(ctx context.Context, p service.SubmitFeedbackParams) error {
	if _, ok := feedbackCategories[p.Category]; !ok {
		return service.ErrInvalidFeedback
	}

	if l := utf8.RuneCountInString(p.Message); l == 0 || l > maxFeedbackRunes {
		return service.ErrInvalidFeedback
	}

	if err := s.s.CreateFeedback(ctx, &entities.Feedback{
		ID:        uuid.NewString(),
		UserID:    p.UserID,
		Category:  p.Category,
		Message:   p.Message,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return service.ErrProfileNotFound
		}

		return fmt.Errorf("failed to create feedback: %w", err)
	}

	return nil
}

// rollReward picks the informational point value attached to a new tweet. The
// ledger never reads it.
func (s srv) rollReward() int {
	if s.cfg.RewardMax <= s.cfg.RewardMin {
		return s.cfg.RewardMin
	}

	return s.cfg.RewardMin + rand.Intn(s.cfg.RewardMax-s.cfg.RewardMin+1) // nolint:gosec
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func extractAuthorIDs(tt []*entities.Tweet) []string {
	out := make([]string, 0, len(tt))
	m := make(map[string]struct{}, len(tt))

	for _, v := range tt {
		if _, ok := m[v.AuthorID]; !ok {
			out = append(out, v.AuthorID)
			m[v.AuthorID] = struct{}{}
		}
	}

	return out
}
