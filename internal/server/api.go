package server

import (
	"github.com/growloop/icarus/internal/entities"
	"github.com/growloop/icarus/internal/service"
)

const maxLimit = 100
const defaultLimit = 20

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// Profile ...
type Profile struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Handle      string `json:"handle"`
	Avatar      string `json:"avatar"`
	Bio         string `json:"bio"`
	Points      int64  `json:"points"`
	Level       int    `json:"level"`
	CreatedAt   uint64 `json:"createdAt"`
}

// TodayActivity ...
type TodayActivity struct {
	Likes    uint32 `json:"likes"`
	Comments uint32 `json:"comments"`
	Shares   uint32 `json:"shares"`
}

// ProfileResponse ...
// swagger:model
type ProfileResponse struct {
	Profile Profile       `json:"profile"`
	Today   TodayActivity `json:"today"`
}

// Achievement ...
type Achievement struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// AchievementsResponse ...
// swagger:model
type AchievementsResponse struct {
	Achievements []Achievement `json:"achievements"`
}

// Tweet ...
type Tweet struct {
	ID         string   `json:"id"`
	AuthorID   string   `json:"authorId"`
	Body       string   `json:"body"`
	Community  string   `json:"community"`
	Tags       []string `json:"tags"`
	Likes      uint32   `json:"likesCount"`
	Comments   uint32   `json:"commentsCount"`
	Shares     uint32   `json:"sharesCount"`
	PointValue int      `json:"pointValue"`
	Hot        bool     `json:"hot"`
	CreatedAt  uint64   `json:"createdAt"`
}

// ListTweetsResponse ...
// swagger:model
type ListTweetsResponse struct {
	Tweets []*Tweet `json:"tweets"`
	// Profiles dictionary where key is a user id and value is the author's profile.
	Profiles map[string]Profile `json:"profiles"`
}

// SubmitTweetRequest ...
// swagger:model
type SubmitTweetRequest struct {
	Body      string   `json:"body"`
	Community string   `json:"community"`
	Tags      []string `json:"tags"`
}

// RecordInteractionRequest ...
// swagger:model
type RecordInteractionRequest struct {
	Action string `json:"action"`
}

// RecordInteractionResponse ...
// swagger:model
type RecordInteractionResponse struct {
	PointsAwarded int64 `json:"pointsAwarded"`
}

// LeaderboardEntry ...
type LeaderboardEntry struct {
	Rank    int     `json:"rank"`
	Points  int64   `json:"points"`
	Profile Profile `json:"profile"`
}

// LeaderboardResponse ...
// swagger:model
type LeaderboardResponse struct {
	Entries []*LeaderboardEntry `json:"entries"`
}

// FeedbackRequest ...
// swagger:model
type FeedbackRequest struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

func toAPIProfile(p *entities.Profile) *Profile {
	if p == nil {
		return nil
	}

	return &Profile{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Handle:      p.Handle,
		Avatar:      p.Avatar,
		Bio:         p.Bio,
		Points:      p.Points,
		Level:       p.Level,
		CreatedAt:   uint64(p.CreatedAt.Unix()),
	}
}

func toAPITweet(t *entities.Tweet) *Tweet {
	if t == nil {
		return nil
	}

	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}

	return &Tweet{
		ID:         t.ID,
		AuthorID:   t.AuthorID,
		Body:       t.Body,
		Community:  t.Community,
		Tags:       tags,
		Likes:      t.Likes,
		Comments:   t.Comments,
		Shares:     t.Shares,
		PointValue: t.PointValue,
		Hot:        t.Hot,
		CreatedAt:  uint64(t.CreatedAt.Unix()),
	}
}

func toAPIToday(m map[entities.ActionType]uint32) TodayActivity {
	return TodayActivity{
		Likes:    m[entities.ActionLike],
		Comments: m[entities.ActionComment],
		Shares:   m[entities.ActionShare],
	}
}

func newListTweetsResponse(tt []*service.TweetWithAuthor) ListTweetsResponse {
	out := ListTweetsResponse{
		Tweets:   make([]*Tweet, len(tt)),
		Profiles: make(map[string]Profile),
	}

	for i, v := range tt {
		out.Tweets[i] = toAPITweet(v.Tweet)

		if v.Author != nil {
			out.Profiles[v.Author.ID] = *toAPIProfile(v.Author)
		}
	}

	return out
}

func newLeaderboardResponse(ee []*service.LeaderboardEntry) LeaderboardResponse {
	out := LeaderboardResponse{
		Entries: make([]*LeaderboardEntry, 0, len(ee)),
	}

	for _, v := range ee {
		if v.Profile == nil {
			continue
		}

		out.Entries = append(out.Entries, &LeaderboardEntry{
			Rank:    v.Rank,
			Points:  v.Points,
			Profile: *toAPIProfile(v.Profile),
		})
	}

	return out
}
