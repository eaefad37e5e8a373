// seed fills a database with demo profiles, tweets and interactions through
// the service layer, so all accounting rules apply.
package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/growloop/icarus/internal/entities"
	"github.com/growloop/icarus/internal/service"
	"github.com/growloop/icarus/internal/service/impl"
	"github.com/growloop/icarus/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Postgres string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
}{}

var users = []service.GetOrCreateProfileParams{
	{ID: "seed-ada", DisplayName: "Ada Lovelace", Handle: "ada", Avatar: "https://example.com/ada.png"},
	{ID: "seed-grace", DisplayName: "Grace Hopper", Handle: "grace", Avatar: "https://example.com/grace.png"},
	{ID: "seed-alan", DisplayName: "Alan Turing", Handle: "alan", Avatar: "https://example.com/alan.png"},
}

var tweets = []service.SubmitTweetParams{
	{AuthorID: "seed-ada", Body: "Notes on the analytical engine, thread below", Community: "tech", Tags: []string{"history", "computing"}},
	{AuthorID: "seed-grace", Body: "The most dangerous phrase is: we've always done it this way", Community: "tech", Tags: []string{"quotes"}},
	{AuthorID: "seed-alan", Body: "Machines take me by surprise with great frequency", Community: "ai", Tags: []string{"quotes", "ai"}},
}

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		logrus.WithError(err).Fatal("failed to parse flags")
	}

	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}

	ctx := context.Background()

	if err := db.PingContext(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	svc := impl.New(postgres.New(db), impl.DefaultConfig())

	for _, u := range users {
		if _, err := svc.GetOrCreateProfile(ctx, u); err != nil {
			logrus.WithError(err).Fatalf("failed to create profile %s", u.ID)
		}
	}

	created := make([]*entities.Tweet, 0, len(tweets))
	for _, t := range tweets {
		tweet, err := svc.SubmitTweet(ctx, t)
		if err != nil {
			logrus.WithError(err).Fatalf("failed to submit tweet for %s", t.AuthorID)
		}
		created = append(created, tweet)
	}

	// Everyone likes everyone else's tweets, Grace comments on Ada's.
	for _, u := range users {
		for _, t := range created {
			if t.AuthorID == u.ID {
				continue
			}

			if _, err := svc.RecordInteraction(ctx, u.ID, t.ID, entities.ActionLike); err != nil {
				logrus.WithError(err).Fatal("failed to record like")
			}
		}
	}

	if _, err := svc.RecordInteraction(ctx, "seed-grace", created[0].ID, entities.ActionComment); err != nil {
		logrus.WithError(err).Fatal("failed to record comment")
	}

	fmt.Printf("seeded %d profiles and %d tweets\n", len(users), len(created))
}
