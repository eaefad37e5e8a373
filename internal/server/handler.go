package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/growloop/icarus/internal/entities"
	"github.com/growloop/icarus/internal/service"
)

var errInvalidRequest = errors.New("invalid request")

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /profile Profile GetProfile
	//
	// Return the caller's profile with today's activity, creating the profile
	// on first access.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// responses:
	//   '200':
	//     description: Profile
	//     schema:
	//       "$ref": "#/definitions/ProfileResponse"
	//   '401':
	//     description: unauthorized
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	claims := claimsFromContext(r.Context())

	out, err := s.s.GetOrCreateProfile(r.Context(), service.GetOrCreateProfileParams{
		ID:          claims.Subject,
		DisplayName: claims.Name,
		Handle:      claims.Handle,
		Avatar:      claims.Avatar,
	})
	if err != nil {
		writeServiceError(r, w, fmt.Errorf("failed to get profile: %w", err))
		return
	}

	writeOK(w, http.StatusOK, ProfileResponse{
		Profile: *toAPIProfile(out.Profile),
		Today:   toAPIToday(out.Today),
	})
}

func (s server) getAchievements(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /profile/achievements Profile GetAchievements
	//
	// Return badges the caller has earned.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// responses:
	//   '200':
	//     description: Achievements
	//     schema:
	//       "$ref": "#/definitions/AchievementsResponse"
	//   '401':
	//     description: unauthorized
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	claims := claimsFromContext(r.Context())

	aa, err := s.s.Achievements(r.Context(), claims.Subject)
	if err != nil {
		writeServiceError(r, w, fmt.Errorf("failed to get achievements: %w", err))
		return
	}

	out := AchievementsResponse{Achievements: make([]Achievement, len(aa))}
	for i, v := range aa {
		out.Achievements[i] = Achievement{ID: v.ID, Title: v.Title}
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) listTweets(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /tweets Tweets ListTweets
	//
	// Return tweets newest first with their authors' profiles.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: community
	//   description: filters tweets by community tag
	//   in: query
	//   required: false
	// - name: hotOnly
	//   description: returns only hot tweets
	//   in: query
	//   required: false
	//   type: boolean
	// - name: offset
	//   in: query
	//   required: false
	//   minimum: 0
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Tweets
	//     schema:
	//       "$ref": "#/definitions/ListTweetsResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	params, err := extractListTweetsParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tweets, err := s.s.ListTweets(r.Context(), *params)
	if err != nil {
		writeServiceError(r, w, fmt.Errorf("failed to list tweets: %w", err))
		return
	}

	writeOK(w, http.StatusOK, newListTweetsResponse(tweets))
}

func (s server) submitTweet(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /tweets Tweets SubmitTweet
	//
	// Publish a new tweet. Costs the submission threshold in points.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/SubmitTweetRequest"
	// responses:
	//   '201':
	//     description: created tweet
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '422':
	//     description: insufficient points
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req SubmitTweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	claims := claimsFromContext(r.Context())

	tweet, err := s.s.SubmitTweet(r.Context(), service.SubmitTweetParams{
		AuthorID:  claims.Subject,
		Body:      req.Body,
		Community: req.Community,
		Tags:      req.Tags,
	})
	if err != nil {
		writeServiceError(r, w, fmt.Errorf("failed to submit tweet: %w", err))
		return
	}

	writeOK(w, http.StatusCreated, toAPITweet(tweet))
}

func (s server) recordInteraction(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /tweets/{id}/interactions Tweets RecordInteraction
	//
	// Record a like, comment or share on a tweet and award points for it.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/RecordInteractionRequest"
	// responses:
	//   '200':
	//     description: awarded points
	//     schema:
	//       "$ref": "#/definitions/RecordInteractionResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: tweet not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: interaction already recorded
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "invalid tweet id")
		return
	}

	var req RecordInteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	claims := claimsFromContext(r.Context())

	awarded, err := s.s.RecordInteraction(r.Context(), claims.Subject, id, entities.ActionType(req.Action))
	if err != nil {
		writeServiceError(r, w, fmt.Errorf("failed to record interaction: %w", err))
		return
	}

	writeOK(w, http.StatusOK, RecordInteractionResponse{PointsAwarded: awarded})
}

func (s server) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /leaderboard Leaderboard GetLeaderboard
	//
	// Return users ranked by points for a timeframe.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: timeframe
	//   in: query
	//   required: false
	//   default: all_time
	//   type: string
	//   enum: [daily, weekly, all_time]
	// - name: community
	//   description: restricts daily/weekly boards to interactions on tweets of a community
	//   in: query
	//   required: false
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Leaderboard
	//     schema:
	//       "$ref": "#/definitions/LeaderboardResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	params, err := extractLeaderboardParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := s.s.Leaderboard(r.Context(), *params)
	if err != nil {
		writeServiceError(r, w, fmt.Errorf("failed to get leaderboard: %w", err))
		return
	}

	writeOK(w, http.StatusOK, newLeaderboardResponse(entries))
}

func (s server) submitFeedback(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /feedback Feedback SubmitFeedback
	//
	// Store a feedback message from the caller.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/FeedbackRequest"
	// responses:
	//   '204':
	//     description: feedback stored
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	claims := claimsFromContext(r.Context())

	if err := s.s.SubmitFeedback(r.Context(), service.SubmitFeedbackParams{
		UserID:   claims.Subject,
		Category: req.Category,
		Message:  req.Message,
	}); err != nil {
		writeServiceError(r, w, fmt.Errorf("failed to submit feedback: %w", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeServiceError(r *http.Request, w http.ResponseWriter, err error) {
	var insufficient service.InsufficientPointsError

	switch {
	case errors.Is(err, service.ErrInvalidAction),
		errors.Is(err, service.ErrInvalidBody),
		errors.Is(err, service.ErrInvalidFeedback),
		errors.Is(err, service.ErrInvalidTimeframe):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrTweetNotFound),
		errors.Is(err, service.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateInteraction):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &insufficient):
		writeError(w, http.StatusUnprocessableEntity, insufficient.Error())
	default:
		writeInternalError(r, w, err.Error())
	}
}

func extractListTweetsParamsFromQuery(q url.Values) (*service.ListTweetsParams, error) {
	out := service.ListTweetsParams{
		Limit: defaultLimit,
	}

	if s := q.Get("community"); s != "" {
		out.Community = &s
	}

	if s := q.Get("hotOnly"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse hotOnly", errInvalidRequest)
		}

		out.HotOnly = v
	}

	if s := q.Get("offset"); s != "" {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse offset", errInvalidRequest)
		}

		out.Offset = uint32(v)
	}

	limit, err := extractLimitFromQuery(q)
	if err != nil {
		return nil, err
	}
	out.Limit = limit

	return &out, nil
}

func extractLeaderboardParamsFromQuery(q url.Values) (*service.LeaderboardParams, error) {
	out := service.LeaderboardParams{
		Timeframe: service.AllTimeTimeframe,
	}

	if s := q.Get("timeframe"); s != "" {
		t := service.Timeframe(s)
		if !t.Valid() {
			return nil, fmt.Errorf("%w: invalid timeframe", errInvalidRequest)
		}

		out.Timeframe = t
	}

	if s := q.Get("community"); s != "" {
		out.Community = &s
	}

	limit, err := extractLimitFromQuery(q)
	if err != nil {
		return nil, err
	}
	out.Limit = limit

	return &out, nil
}

func extractLimitFromQuery(q url.Values) (uint16, error) {
	s := q.Get("limit")
	if s == "" {
		return defaultLimit, nil
	}

	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("%w: failed to parse limit", errInvalidRequest)
	}

	if v > maxLimit {
		return 0, fmt.Errorf("%w: limit is too big", errInvalidRequest)
	}

	return uint16(v), nil
}
