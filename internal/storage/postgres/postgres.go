// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/growloop/icarus/internal/entities"
	"github.com/growloop/icarus/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx within tx")

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

type pg struct {
	ext sqlx.ExtContext
}

type profileDTO struct {
	ID          string    `db:"id"`
	DisplayName string    `db:"display_name"`
	Handle      string    `db:"handle"`
	Avatar      string    `db:"avatar"`
	Bio         string    `db:"bio"`
	Points      int64     `db:"points"`
	Level       int       `db:"level"`
	CreatedAt   time.Time `db:"created_at"`
}

type tweetDTO struct {
	ID         string         `db:"id"`
	AuthorID   string         `db:"author_id"`
	Body       string         `db:"body"`
	Community  string         `db:"community"`
	Tags       pq.StringArray `db:"tags"`
	Likes      uint32         `db:"likes"`
	Comments   uint32         `db:"comments"`
	Shares     uint32         `db:"shares"`
	PointValue int            `db:"point_value"`
	Hot        bool           `db:"hot"`
	CreatedAt  time.Time      `db:"created_at"`
}

type interactionDTO struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	TweetID       string    `db:"tweet_id"`
	Action        string    `db:"action"`
	PointsAwarded int64     `db:"points_awarded"`
	CreatedAt     time.Time `db:"created_at"`
}

// counterColumns maps an action to the tweet column it bumps. Keeping the
// column name out of the caller's hands rules out injection via the action.
var counterColumns = map[entities.ActionType]string{
	entities.ActionLike:    "likes",
	entities.ActionComment: "comments",
	entities.ActionShare:   "shares",
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) Ping(ctx context.Context) error {
	if _, err := s.ext.ExecContext(ctx, `SELECT 1`); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetProfile(ctx context.Context, id string) (*entities.Profile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, display_name, handle, avatar, bio, points, level, created_at
			FROM profile
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toProfile(&p), nil
}

func (s pg) GetProfiles(ctx context.Context, id ...string) ([]*entities.Profile, error) {
	if len(id) == 0 {
		return []*entities.Profile{}, nil
	}

	query, args, err := sqlx.In(`
			SELECT id, display_name, handle, avatar, bio, points, level, created_at
			FROM profile
			WHERE id IN (?)
		`, stringsUnique(id))

	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var pp []*profileDTO

	if err := sqlx.SelectContext(ctx, s.ext, &pp, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Profile, len(pp))
	for i, v := range pp {
		out[i] = toProfile(v)
	}

	return out, nil
}

func (s pg) CreateProfile(ctx context.Context, p *entities.Profile) error {
	profile := profileDTO{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Handle:      p.Handle,
		Avatar:      p.Avatar,
		Bio:         p.Bio,
		Points:      p.Points,
		Level:       p.Level,
		CreatedAt:   p.CreatedAt.UTC(),
	}

	res, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO profile(id, display_name, handle, avatar, bio, points, level, created_at)
			VALUES(:id, :display_name, :handle, :avatar, :bio, :points, :level, :created_at)
			ON CONFLICT(id) DO NOTHING
		`, profile,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrAlreadyExists
	}

	return nil
}

func (s pg) AddPoints(ctx context.Context, id string, delta int64) (*entities.Profile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			UPDATE profile
			SET points = points + $2, level = (points + $2) / 100 + 1
			WHERE id = $1 AND points + $2 >= 0
			RETURNING id, display_name, handle, avatar, bio, points, level, created_at
		`, id, delta,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Either the profile is missing or the balance would go negative.
			var exists bool
			if err := sqlx.GetContext(ctx, s.ext, &exists,
				`SELECT EXISTS(SELECT 1 FROM profile WHERE id = $1)`, id,
			); err != nil {
				return nil, fmt.Errorf("failed to query: %w", err)
			}

			if exists {
				return nil, storage.ErrNegativeBalance
			}

			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toProfile(&p), nil
}

func (s pg) CreateTweet(ctx context.Context, t *entities.Tweet) error {
	tweet := tweetDTO{
		ID:         t.ID,
		AuthorID:   t.AuthorID,
		Body:       t.Body,
		Community:  t.Community,
		Tags:       t.Tags,
		PointValue: t.PointValue,
		Hot:        t.Hot,
		CreatedAt:  t.CreatedAt.UTC(),
	}
	if tweet.Tags == nil {
		tweet.Tags = pq.StringArray{}
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO tweet(id, author_id, body, community, tags, point_value, hot, created_at)
			VALUES(:id, :author_id, :body, :community, :tags, :point_value, :hot, :created_at)
		`, tweet,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetTweet(ctx context.Context, id string) (*entities.Tweet, error) {
	var t tweetDTO

	if err := sqlx.GetContext(ctx, s.ext, &t, `
			SELECT id, author_id, body, community, tags, likes, comments, shares, point_value, hot, created_at
			FROM tweet
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toTweet(&t), nil
}

func (s pg) ListTweets(ctx context.Context, p *storage.ListTweetsParams) ([]*entities.Tweet, error) {
	var tt []*tweetDTO

	if err := sqlx.SelectContext(ctx, s.ext, &tt, `
			SELECT id, author_id, body, community, tags, likes, comments, shares, point_value, hot, created_at
			FROM tweet
			WHERE ($1::TEXT IS NULL OR community = $1)
			  AND (NOT $2 OR hot)
			ORDER BY created_at DESC, id ASC
			OFFSET $3 LIMIT $4
		`, p.Community, p.HotOnly, p.Offset, p.Limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Tweet, len(tt))
	for i, v := range tt {
		out[i] = toTweet(v)
	}

	return out, nil
}

func (s pg) IncrementCounter(ctx context.Context, tweetID string, action entities.ActionType) error {
	column, ok := counterColumns[action]
	if !ok {
		return fmt.Errorf("unknown action %s", action)
	}

	res, err := s.ext.ExecContext(ctx,
		fmt.Sprintf(`UPDATE tweet SET %s = %s + 1 WHERE id = $1`, column, column),
		tweetID,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) RefreshHotTweets(ctx context.Context, since time.Time, threshold int64) error {
	if _, err := s.ext.ExecContext(ctx, `
			UPDATE tweet SET hot =
				(SELECT COUNT(*) FROM interaction i WHERE i.tweet_id = tweet.id AND i.created_at >= $1) >= $2
		`, since.UTC(), threshold,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) CreateInteraction(ctx context.Context, i *entities.Interaction) error {
	interaction := interactionDTO{
		ID:            i.ID,
		UserID:        i.UserID,
		TweetID:       i.TweetID,
		Action:        string(i.Action),
		PointsAwarded: i.PointsAwarded,
		CreatedAt:     i.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO interaction(id, user_id, tweet_id, action, points_awarded, created_at)
			VALUES(:id, :user_id, :tweet_id, :action, :points_awarded, :created_at)
		`, interaction,
	); err != nil {
		if err, ok := err.(*pq.Error); ok {
			switch err.Code {
			case uniqueViolation:
				return storage.ErrAlreadyExists
			case foreignKeyViolation:
				return storage.ErrNotFound
			}
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) CountInteractions(ctx context.Context, userID string, since time.Time) (map[entities.ActionType]uint32, error) {
	var rows []struct {
		Action string `db:"action"`
		Count  uint32 `db:"count"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &rows, `
			SELECT action, COUNT(*) AS count
			FROM interaction
			WHERE user_id = $1 AND created_at >= $2
			GROUP BY action
		`, userID, since.UTC(),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make(map[entities.ActionType]uint32, len(rows))
	for _, v := range rows {
		out[entities.ActionType(v.Action)] = v.Count
	}

	return out, nil
}

func (s pg) CountTweetsByAuthor(ctx context.Context, authorID string) (uint32, error) {
	var c uint32
	if err := sqlx.GetContext(ctx, s.ext, &c,
		`SELECT COUNT(*) FROM tweet WHERE author_id = $1`, authorID,
	); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) TopProfiles(ctx context.Context, limit uint16) ([]*entities.Profile, error) {
	var pp []*profileDTO

	if err := sqlx.SelectContext(ctx, s.ext, &pp, `
			SELECT id, display_name, handle, avatar, bio, points, level, created_at
			FROM profile
			ORDER BY points DESC, id ASC
			LIMIT $1
		`, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Profile, len(pp))
	for i, v := range pp {
		out[i] = toProfile(v)
	}

	return out, nil
}

func (s pg) SumAwardedPoints(ctx context.Context, p *storage.SumAwardedPointsParams) ([]*storage.UserPoints, error) {
	var rows []struct {
		UserID string `db:"user_id"`
		Points int64  `db:"points"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &rows, `
			SELECT i.user_id, SUM(i.points_awarded) AS points
			FROM interaction i
			JOIN tweet t ON t.id = i.tweet_id
			WHERE i.created_at >= $1
			  AND ($2::TEXT IS NULL OR t.community = $2)
			GROUP BY i.user_id
			ORDER BY points DESC, i.user_id ASC
			LIMIT $3
		`, p.Since.UTC(), p.Community, p.Limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*storage.UserPoints, len(rows))
	for i, v := range rows {
		out[i] = &storage.UserPoints{
			UserID: v.UserID,
			Points: v.Points,
		}
	}

	return out, nil
}

func (s pg) CreateFeedback(ctx context.Context, f *entities.Feedback) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO feedback(id, user_id, category, message, created_at)
			VALUES($1, $2, $3, $4, $5)
		`, f.ID, f.UserID, f.Category, f.Message, f.CreatedAt.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func toProfile(p *profileDTO) *entities.Profile {
	return &entities.Profile{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Handle:      p.Handle,
		Avatar:      p.Avatar,
		Bio:         p.Bio,
		Points:      p.Points,
		Level:       p.Level,
		CreatedAt:   p.CreatedAt,
	}
}

func toTweet(t *tweetDTO) *entities.Tweet {
	return &entities.Tweet{
		ID:         t.ID,
		AuthorID:   t.AuthorID,
		Body:       t.Body,
		Community:  t.Community,
		Tags:       t.Tags,
		Likes:      t.Likes,
		Comments:   t.Comments,
		Shares:     t.Shares,
		PointValue: t.PointValue,
		Hot:        t.Hot,
		CreatedAt:  t.CreatedAt,
	}
}

func stringsUnique(s []string) []string {
	m := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))

	for _, v := range s {
		if _, ok := m[v]; !ok {
			m[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}
