package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/hearthy-foundation/hearth/internal/entities"
	"github.com/hearthy-foundation/hearth/internal/service"
	"github.com/hearthy-foundation/hearth/internal/session"
	"github.com/hearthy-foundation/hearth/internal/storage"
)

const emailTakenMessage = "This email is already registered. Please try logging in instead."

func (s server) signIn(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /auth/sign-in Auth SignIn
	//
	// Resolve the profile by email and start a session.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/SignInRequest"
	// responses:
	//   '200':
	//     description: token and profile
	//     schema:
	//       "$ref": "#/definitions/SignInResponse"
	//   '404':
	//     description: no profile matches the email
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	token, p, err := s.sm.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}

		writeInternalError(r.Context(), w, "failed to sign in: "+err.Error())
		return
	}

	writeOK(w, http.StatusOK, SignInResponse{
		Token:   token,
		Profile: toProfile(p),
	})
}

func (s server) signOut(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /auth/sign-out Auth SignOut
	//
	// Revoke the current session.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '204':
	//     description: signed out
	//   '401':
	//     description: authorization required
	//     schema:
	//       "$ref": "#/definitions/Error"

	if err := s.sm.SignOut(r.Context(), tokenFromContext(r.Context())); err != nil {
		writeInternalError(r.Context(), w, "failed to sign out: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) refresh(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /auth/refresh Auth Refresh
	//
	// Re-fetch the profile bound to the session.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '200':
	//     description: refreshed profile
	//     schema:
	//       "$ref": "#/definitions/Profile"
	//   '401':
	//     description: session expired or invalid
	//     schema:
	//       "$ref": "#/definitions/Error"

	token := tokenFromContext(r.Context())

	s.sm.RefreshProfile(r.Context(), token)

	p, err := s.sm.Current(r.Context(), token)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "session expired or invalid")
		return
	}

	writeOK(w, http.StatusOK, toProfile(p))
}

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /profile Profile GetProfile
	//
	// Return the session's profile.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '200':
	//     description: profile
	//     schema:
	//       "$ref": "#/definitions/Profile"
	//   '401':
	//     description: authorization required
	//     schema:
	//       "$ref": "#/definitions/Error"

	writeOK(w, http.StatusOK, toProfile(profileFromContext(r.Context())))
}

func (s server) getActivities(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /profile/activities Profile GetActivities
	//
	// Return the points log, newest first.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '200':
	//     description: activities
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Activity"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	aa, err := s.svc.Activities(r.Context(), profileFromContext(r.Context()).ID)
	if err != nil {
		writeInternalError(r.Context(), w, "failed to get activities: "+err.Error())
		return
	}

	out := make([]Activity, 0, len(aa))
	for _, a := range aa {
		out = append(out, Activity{
			ID:          a.ID,
			Type:        a.Type,
			Description: a.Description,
			Points:      a.Points,
			CreatedAt:   uint64(a.CreatedAt.Unix()),
		})
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) getAssignedOpportunities(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /profile/opportunities Profile GetAssignedOpportunities
	//
	// Return the opportunities assigned to the volunteer, newest first.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '200':
	//     description: assigned opportunities
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/AssignedOpportunity"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	oo, err := s.svc.AssignedOpportunities(r.Context(), profileFromContext(r.Context()).ID)
	if err != nil {
		writeInternalError(r.Context(), w, "failed to get assigned opportunities: "+err.Error())
		return
	}

	out := make([]AssignedOpportunity, 0, len(oo))
	for _, o := range oo {
		out = append(out, AssignedOpportunity{
			ID:          o.ID,
			Title:       o.Title,
			Institution: o.Institution,
			Status:      o.Status,
			CreatedAt:   uint64(o.CreatedAt.Unix()),
		})
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts Feed ListPosts
	//
	// Return posts with their comments, newest first.
	//
	// ---
	// parameters:
	// - name: category
	//   description: filters posts by category, all or absent bypasses
	//   in: query
	//   required: false
	//   type: string
	//   example: animals
	// - name: location
	//   description: case-insensitive substring match on the post location
	//   in: query
	//   required: false
	//   type: string
	//   example: warsaw
	// - name: limit
	//   description: limits count of returned posts
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// responses:
	//   '200':
	//     description: posts
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	limit, err := extractLimitFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := service.FeedParams{
		Category: r.URL.Query().Get("category"),
		Location: r.URL.Query().Get("location"),
		Limit:    limit,
	}

	if p := profileFromContext(r.Context()); p != nil {
		params.RequestedBy = p.ID
	}

	posts, err := s.svc.ListFeed(r.Context(), &params)
	if err != nil {
		writeInternalError(r.Context(), w, "failed to list posts: "+err.Error())
		return
	}

	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPost(p))
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Feed CreatePost
	//
	// Publish a post and award the author's points.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreatePostRequest"
	// responses:
	//   '201':
	//     description: created post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '400':
	//     description: validation errors
	//     schema:
	//       "$ref": "#/definitions/ValidationErrors"
	//   '403':
	//     description: account is read-only until verified
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	post, err := s.svc.CreatePost(r.Context(), profileFromContext(r.Context()),
		req.Content, categoryFromRequest(req.Category), req.Location)
	if err != nil {
		s.writeServiceError(w, r, "failed to create post", err)
		return
	}

	writeOK(w, http.StatusCreated, toPost(post))
}

func (s server) toggleLike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /posts/{postID}/like Feed ToggleLike
	//
	// Toggle the requester's like on the post.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: postID
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: new count and flag
	//     schema:
	//       "$ref": "#/definitions/LikeResponse"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	res, err := s.svc.ToggleLike(r.Context(), profileFromContext(r.Context()), chi.URLParam(r, "postID"))
	if err != nil {
		s.writeServiceError(w, r, "failed to toggle like", err)
		return
	}

	writeOK(w, http.StatusOK, LikeResponse{
		PostID:       res.PostID,
		LikesCount:   res.LikesCount,
		UserHasLiked: res.UserHasLiked,
	})
}

func (s server) addComment(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{postID}/comments Feed AddComment
	//
	// Add a comment to the post.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: postID
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/AddCommentRequest"
	// responses:
	//   '201':
	//     description: created comment and the new count
	//     schema:
	//       "$ref": "#/definitions/CommentResponse"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	res, err := s.svc.AddComment(r.Context(), profileFromContext(r.Context()), chi.URLParam(r, "postID"), req.Content)
	if err != nil {
		s.writeServiceError(w, r, "failed to add comment", err)
		return
	}

	writeOK(w, http.StatusCreated, CommentResponse{
		Comment:       toComment(res.Comment),
		CommentsCount: res.CommentsCount,
	})
}

func (s server) listEvents(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /events Events ListEvents
	//
	// Return upcoming events.
	//
	// ---
	// parameters:
	// - name: sortBy
	//   description: sets events' order
	//   in: query
	//   required: false
	//   default: date
	//   type: string
	//   enum: [date, category, location]
	// - name: location
	//   description: reference location for the location sort
	//   in: query
	//   required: false
	//   type: string
	//   example: Warsaw, Poland
	// - name: limit
	//   description: limits count of returned events
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// responses:
	//   '200':
	//     description: events
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Event"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	limit, err := extractLimitFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := service.EventsParams{
		SortBy: storage.EventDateSortType,
		Limit:  limit,
	}

	switch v := r.URL.Query().Get("sortBy"); v {
	case "", "date":
	case "category":
		params.SortBy = storage.EventCategorySortType
	case "location":
		params.SortBy = storage.EventLocationSortType
	default:
		writeErrorf(w, http.StatusBadRequest, "invalid sortBy: %s", v)
		return
	}

	params.UserLocation = r.URL.Query().Get("location")
	if p := profileFromContext(r.Context()); p != nil && params.UserLocation == "" {
		params.UserLocation = p.Location
	}

	events, err := s.svc.ListEvents(r.Context(), &params)
	if err != nil {
		writeInternalError(r.Context(), w, "failed to list events: "+err.Error())
		return
	}

	out := make([]Event, 0, len(events))
	for _, e := range events {
		out = append(out, toEvent(e))
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) joinEvent(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /events/{eventID}/join Events JoinEvent
	//
	// Register the requester for the event and award points.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: eventID
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: event with the updated attendee count
	//     schema:
	//       "$ref": "#/definitions/Event"
	//   '403':
	//     description: account is read-only until verified
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: event not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	event, err := s.svc.JoinEvent(r.Context(), profileFromContext(r.Context()), chi.URLParam(r, "eventID"))
	if err != nil {
		s.writeServiceError(w, r, "failed to join event", err)
		return
	}

	writeOK(w, http.StatusOK, toEvent(event))
}

func (s server) getRanking(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /ranking Events GetRanking
	//
	// Return the top volunteers and, for an authenticated requester,
	// their rank over the full ordering.
	//
	// ---
	// responses:
	//   '200':
	//     description: ranking
	//     schema:
	//       "$ref": "#/definitions/RankingResponse"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var currentUserID string
	if p := profileFromContext(r.Context()); p != nil {
		currentUserID = p.ID
	}

	ranking, err := s.svc.Ranking(r.Context(), currentUserID)
	if err != nil {
		writeInternalError(r.Context(), w, "failed to get ranking: "+err.Error())
		return
	}

	out := RankingResponse{
		Top:      make([]RankedProfile, 0, len(ranking.Top)),
		UserRank: ranking.UserRank,
	}

	for i, p := range ranking.Top {
		out.Top = append(out.Top, RankedProfile{
			Rank:      i + 1,
			ID:        p.ID,
			FullName:  p.FullName,
			Points:    p.Points,
			AvatarURL: p.AvatarURL,
		})
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) listOpportunities(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /opportunities Opportunities ListOpportunities
	//
	// Return the active opportunity board, immediate and ongoing.
	//
	// ---
	// responses:
	//   '200':
	//     description: opportunity board
	//     schema:
	//       "$ref": "#/definitions/OpportunityBoardResponse"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	board, err := s.svc.OpportunityBoard(r.Context())
	if err != nil {
		writeInternalError(r.Context(), w, "failed to list opportunities: "+err.Error())
		return
	}

	writeOK(w, http.StatusOK, OpportunityBoardResponse{
		Immediate: toOpportunities(board.Immediate),
		Ongoing:   toOpportunities(board.Ongoing),
	})
}

func (s server) getUrgentNeeds(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /opportunities/urgent Opportunities GetUrgentNeeds
	//
	// Return the urgent-needs teaser with the exact total.
	//
	// ---
	// responses:
	//   '200':
	//     description: urgent needs
	//     schema:
	//       "$ref": "#/definitions/UrgentNeedsResponse"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	needs, err := s.svc.UrgentNeeds(r.Context())
	if err != nil {
		writeInternalError(r.Context(), w, "failed to get urgent needs: "+err.Error())
		return
	}

	writeOK(w, http.StatusOK, UrgentNeedsResponse{
		Items:     toOpportunities(needs.Items),
		Total:     needs.Total,
		Remaining: needs.Remaining,
	})
}

func (s server) getContent(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /content/{view} Content GetContent
	//
	// Return the content sections of a named view.
	//
	// ---
	// parameters:
	// - name: view
	//   in: path
	//   required: true
	//   type: string
	//   enum: [home, opportunities, registration, contact, dashboard, profile, success, events, care-facility-registration, foundation-registration]
	// responses:
	//   '200':
	//     description: content sections in display order
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/ContentSection"
	//   '400':
	//     description: unknown view
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	view := chi.URLParam(r, "view")
	if _, ok := validViews[view]; !ok {
		writeErrorf(w, http.StatusBadRequest, "unknown view: %s", view)
		return
	}

	sections, err := s.svc.ContentSections(r.Context(), view)
	if err != nil {
		writeInternalError(r.Context(), w, "failed to get content: "+err.Error())
		return
	}

	out := make([]ContentSection, 0, len(sections))
	for _, v := range sections {
		out = append(out, ContentSection{
			ID:       v.ID,
			Section:  v.Section,
			Title:    v.Title,
			Body:     v.Body,
			ImageURL: v.ImageURL,
			Position: v.Position,
		})
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) submitContact(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /contact Contact SubmitContact
	//
	// File a contact request.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/ContactRequest"
	// responses:
	//   '204':
	//     description: submitted
	//   '400':
	//     description: validation errors
	//     schema:
	//       "$ref": "#/definitions/ValidationErrors"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if err := s.svc.SubmitContactRequest(r.Context(), &service.ContactRequest{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
	}); err != nil {
		s.writeServiceError(w, r, "failed to submit contact request", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) registerVolunteer(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /registrations/volunteer Registrations RegisterVolunteer
	//
	// Create a volunteer account and, with any extended field, a pending
	// application.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/VolunteerRegistrationRequest"
	// responses:
	//   '201':
	//     description: registration result
	//     schema:
	//       "$ref": "#/definitions/RegistrationResponse"
	//   '400':
	//     description: validation errors
	//     schema:
	//       "$ref": "#/definitions/ValidationErrors"
	//   '409':
	//     description: email already registered
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req VolunteerRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	res, err := s.svc.RegisterVolunteer(r.Context(), &service.VolunteerRegistration{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		DateOfBirth:     req.DateOfBirth,
		Profession:      req.Profession,
		Experience:      req.Experience,
		Motivation:      req.Motivation,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Documents:       toDocumentUploads(req.Documents),
	})
	if err != nil {
		s.writeServiceError(w, r, "failed to register volunteer", err)
		return
	}

	writeOK(w, http.StatusCreated, toRegistrationResponse(res))
}

func (s server) registerCareFacility(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /registrations/care-facility Registrations RegisterCareFacility
	//
	// File a care-facility application with its documents.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/OrganizationRegistrationRequest"
	// responses:
	//   '201':
	//     description: registration result with per-document statuses
	//     schema:
	//       "$ref": "#/definitions/RegistrationResponse"
	//   '400':
	//     description: validation errors
	//     schema:
	//       "$ref": "#/definitions/ValidationErrors"

	s.registerOrganization(w, r, s.svc.RegisterCareFacility)
}

func (s server) registerFoundation(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /registrations/foundation Registrations RegisterFoundation
	//
	// File a foundation application with its documents.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/OrganizationRegistrationRequest"
	// responses:
	//   '201':
	//     description: registration result with per-document statuses
	//     schema:
	//       "$ref": "#/definitions/RegistrationResponse"
	//   '400':
	//     description: validation errors
	//     schema:
	//       "$ref": "#/definitions/ValidationErrors"

	s.registerOrganization(w, r, s.svc.RegisterFoundation)
}

func (s server) registerOrganization(
	w http.ResponseWriter,
	r *http.Request,
	register func(ctx context.Context, r *service.OrganizationRegistration) (*service.RegistrationResult, error),
) {
	var req OrganizationRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	res, err := register(r.Context(), &service.OrganizationRegistration{
		Name:                req.Name,
		DateOfEstablishment: req.DateOfEstablishment,
		BusinessProfile:     req.BusinessProfile,
		Address:             req.Address,
		KRS:                 req.KRS,
		Email:               req.Email,
		Password:            req.Password,
		ConfirmPassword:     req.ConfirmPassword,
		Documents:           toDocumentUploads(req.Documents),
	})
	if err != nil {
		s.writeServiceError(w, r, "failed to register organization", err)
		return
	}

	writeOK(w, http.StatusCreated, toRegistrationResponse(res))
}

func (s server) writeServiceError(w http.ResponseWriter, r *http.Request, message string, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		writeOK(w, http.StatusBadRequest, ValidationErrors{Errors: validationErr.Violations})
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, emailTakenMessage)
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrReadOnly):
		writeError(w, http.StatusForbidden, "account is read-only until verified")
	default:
		writeInternalError(r.Context(), w, message+": "+err.Error())
	}
}

func toDocumentUploads(dd []DocumentUpload) []service.DocumentUpload {
	out := make([]service.DocumentUpload, 0, len(dd))

	for _, d := range dd {
		out = append(out, service.DocumentUpload{
			FileName:    d.FileName,
			ContentType: d.ContentType,
			FileSize:    d.FileSize,
		})
	}

	return out
}

func categoryFromRequest(v string) entities.Category {
	return entities.Category(v)
}

func extractLimitFromQuery(q url.Values) (uint16, error) {
	limit := uint16(defaultLimit)

	if s := q.Get("limit"); s != "" {
		v, err := strconv.ParseUint(s, 10, 16)
		if err != nil || v == 0 || v > maxLimit {
			return 0, errors.New("invalid limit")
		}

		limit = uint16(v)
	}

	return limit, nil
}
