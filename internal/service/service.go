// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/growloop/icarus/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrInvalidAction is returned when an action type is out of the closed enum.
var ErrInvalidAction = errors.New("invalid action")

// ErrInvalidBody is returned when a tweet body is empty or oversized.
var ErrInvalidBody = errors.New("invalid body")

// ErrInvalidFeedback is returned when a feedback category or message is malformed.
var ErrInvalidFeedback = errors.New("invalid feedback")

// ErrInvalidTimeframe ...
var ErrInvalidTimeframe = errors.New("invalid timeframe")

// ErrDuplicateInteraction is returned when the (user, tweet, action) triple
// was already ledgered.
var ErrDuplicateInteraction = errors.New("interaction already recorded")

// ErrTweetNotFound ...
var ErrTweetNotFound = errors.New("tweet not found")

// ErrProfileNotFound ...
var ErrProfileNotFound = errors.New("profile not found")

// InsufficientPointsError is returned by the submission gate when the caller's
// balance is below the submission cost.
type InsufficientPointsError struct {
	Missing int64
}

func (e InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points, need %d more", e.Missing)
}

// Timeframe bounds a leaderboard query.
type Timeframe string

const (
	// DailyTimeframe ...
	DailyTimeframe Timeframe = "daily"
	// WeeklyTimeframe ...
	WeeklyTimeframe Timeframe = "weekly"
	// AllTimeTimeframe ...
	AllTimeTimeframe Timeframe = "all_time"
)

// Window returns the trailing window duration for the timeframe and false for
// the all-time timeframe.
func (t Timeframe) Window() (time.Duration, bool) {
	switch t {
	case DailyTimeframe:
		return 24 * time.Hour, true
	case WeeklyTimeframe:
		return 7 * 24 * time.Hour, true
	}

	return 0, false
}

// Valid ...
func (t Timeframe) Valid() bool {
	switch t {
	case DailyTimeframe, WeeklyTimeframe, AllTimeTimeframe:
		return true
	}

	return false
}

// Service ...
type Service interface {
	GetOrCreateProfile(ctx context.Context, p GetOrCreateProfileParams) (*ProfileActivity, error)
	Achievements(ctx context.Context, userID string) ([]Achievement, error)

	ListTweets(ctx context.Context, p ListTweetsParams) ([]*TweetWithAuthor, error)
	SubmitTweet(ctx context.Context, p SubmitTweetParams) (*entities.Tweet, error)

	RecordInteraction(ctx context.Context, userID, tweetID string, action entities.ActionType) (int64, error)

	Leaderboard(ctx context.Context, p LeaderboardParams) ([]*LeaderboardEntry, error)

	SubmitFeedback(ctx context.Context, p SubmitFeedbackParams) error
}

// GetOrCreateProfileParams carries the caller identity and the display fields
// supplied by the identity provider.
type GetOrCreateProfileParams struct {
	ID          string
	DisplayName string
	Handle      string
	Avatar      string
}

// ProfileActivity is a profile with today's per-action interaction counts.
type ProfileActivity struct {
	Profile *entities.Profile
	Today   map[entities.ActionType]uint32
}

// Achievement ...
type Achievement struct {
	ID    string
	Title string
}

// ListTweetsParams ...
type ListTweetsParams struct {
	Community *string
	HotOnly   bool
	Offset    uint32
	Limit     uint16
}

// TweetWithAuthor ...
type TweetWithAuthor struct {
	Tweet  *entities.Tweet
	Author *entities.Profile
}

// SubmitTweetParams ...
type SubmitTweetParams struct {
	AuthorID  string
	Body      string
	Community string
	Tags      []string
}

// LeaderboardParams ...
type LeaderboardParams struct {
	Timeframe Timeframe
	Community *string
	Limit     uint16
}

// LeaderboardEntry ...
type LeaderboardEntry struct {
	Rank    int
	Points  int64
	Profile *entities.Profile
}

// SubmitFeedbackParams ...
type SubmitFeedbackParams struct {
	UserID   string
	Category string
	Message  string
}
