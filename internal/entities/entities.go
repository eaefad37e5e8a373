// Package entities contains main entities of service.
package entities

import (
	"time"
)

// ActionType is a kind of interaction a user can perform on a tweet.
type ActionType string

const (
	// ActionLike ...
	ActionLike ActionType = "like"
	// ActionComment ...
	ActionComment ActionType = "comment"
	// ActionShare ...
	ActionShare ActionType = "share"
)

// Valid reports whether a is a known action type.
func (a ActionType) Valid() bool {
	switch a {
	case ActionLike, ActionComment, ActionShare:
		return true
	}

	return false
}

// Reward returns amount of points awarded for the action.
func (a ActionType) Reward() int64 {
	switch a {
	case ActionLike:
		return 1
	case ActionComment:
		return 2
	case ActionShare:
		return 3
	}

	return 0
}

// LevelForPoints derives a level from a point balance.
func LevelForPoints(points int64) int {
	if points < 0 {
		return 1
	}

	return int(points/100) + 1
}

// Profile ...
type Profile struct {
	ID          string
	DisplayName string
	Handle      string
	Avatar      string
	Bio         string
	Points      int64
	Level       int
	CreatedAt   time.Time
}

// Tweet ...
type Tweet struct {
	ID         string
	AuthorID   string
	Body       string
	Community  string
	Tags       []string
	Likes      uint32
	Comments   uint32
	Shares     uint32
	PointValue int
	Hot        bool
	CreatedAt  time.Time
}

// Interaction is a single ledger entry; at most one exists per
// (user, tweet, action) triple.
type Interaction struct {
	ID            string
	UserID        string
	TweetID       string
	Action        ActionType
	PointsAwarded int64
	CreatedAt     time.Time
}

// Feedback ...
type Feedback struct {
	ID        string
	UserID    string
	Category  string
	Message   string
	CreatedAt time.Time
}
