// Package server Icarus
//
// The Icarus is an engagement service which provides gamified access to
// community entities (tweets, interactions, points, leaderboards)
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	mm "github.com/growloop/icarus/internal/middleware"
	"github.com/growloop/icarus/internal/service"
)

const maxBodySize = 4096
const leaderboardCacheTTL = time.Minute

type server struct {
	s service.Service
}

// Config ...
type Config struct {
	JWTSecret []byte
	Timeout   time.Duration
}

// SetupRouter setups handlers to chi router.
func SetupRouter(svc service.Service, r chi.Router, cfg Config) {
	r.Use(
		loggerMiddleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Timeout(cfg.Timeout),
		bodyLimiterMiddleware(maxBodySize),
	)

	srv := server{
		s: svc,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/tweets", srv.listTweets)
		r.Get("/leaderboard", mm.Cached(leaderboardCacheTTL, srv.getLeaderboard))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware(cfg.JWTSecret))

			r.Get("/profile", srv.getProfile)
			r.Get("/profile/achievements", srv.getAchievements)
			r.Post("/tweets", srv.submitTweet)
			r.Post("/tweets/{id}/interactions", srv.recordInteraction)
			r.Post("/feedback", srv.submitFeedback)
		})
	})
}
