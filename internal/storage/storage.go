// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/growloop/icarus/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists is returned when an insert hits a uniqueness constraint.
var ErrAlreadyExists = fmt.Errorf("already exists")

// ErrNegativeBalance is returned when a points update would drive a balance
// below zero.
var ErrNegativeBalance = fmt.Errorf("negative balance")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error
	Ping(ctx context.Context) error

	GetProfile(ctx context.Context, id string) (*entities.Profile, error)
	GetProfiles(ctx context.Context, id ...string) ([]*entities.Profile, error)
	CreateProfile(ctx context.Context, p *entities.Profile) error
	// AddPoints atomically shifts a profile's balance by delta (which may be
	// negative) and recomputes its level. It returns ErrNegativeBalance if the
	// resulting balance would go below zero.
	AddPoints(ctx context.Context, id string, delta int64) (*entities.Profile, error)

	CreateTweet(ctx context.Context, t *entities.Tweet) error
	GetTweet(ctx context.Context, id string) (*entities.Tweet, error)
	ListTweets(ctx context.Context, p *ListTweetsParams) ([]*entities.Tweet, error)
	IncrementCounter(ctx context.Context, tweetID string, action entities.ActionType) error
	RefreshHotTweets(ctx context.Context, since time.Time, threshold int64) error

	// CreateInteraction inserts a ledger entry. The (user, tweet, action)
	// triple is unique; a duplicate insert returns ErrAlreadyExists.
	CreateInteraction(ctx context.Context, i *entities.Interaction) error
	CountInteractions(ctx context.Context, userID string, since time.Time) (map[entities.ActionType]uint32, error)
	CountTweetsByAuthor(ctx context.Context, authorID string) (uint32, error)

	TopProfiles(ctx context.Context, limit uint16) ([]*entities.Profile, error)
	SumAwardedPoints(ctx context.Context, p *SumAwardedPointsParams) ([]*UserPoints, error)

	CreateFeedback(ctx context.Context, f *entities.Feedback) error
}

// ListTweetsParams ...
type ListTweetsParams struct {
	Community *string
	HotOnly   bool
	Offset    uint32
	Limit     uint16
}

// SumAwardedPointsParams bounds the windowed leaderboard aggregation.
type SumAwardedPointsParams struct {
	Since     time.Time
	Community *string
	Limit     uint16
}

// UserPoints ...
type UserPoints struct {
	UserID string
	Points int64
}
