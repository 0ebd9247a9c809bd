// Package server Hearth
//
// The Hearth is a volunteer-coordination service which provides community
// feeds, events, opportunity listings and registration flows for the
// foundation's volunteers and partner organizations.
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

	mm "github.com/hearthy-foundation/hearth/internal/middleware"
	"github.com/hearthy-foundation/hearth/internal/service"
	"github.com/hearthy-foundation/hearth/internal/session"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const maxBodySize = 64 * 1024

const contentCacheTTL = 10 * time.Minute
const urgentNeedsCacheTTL = time.Minute

type server struct {
	svc service.Service
	sm  *session.Manager
}

// SetupRouter setups handlers to chi router.
func SetupRouter(svc service.Service, sm *session.Manager, r chi.Router, timeout time.Duration) {
	r.Use(
		requestIDMiddleware,
		loggerMiddleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		recovererMiddleware,
		middleware.Timeout(timeout),
		bodyLimiterMiddleware(maxBodySize),
	)

	srv := server{
		svc: svc,
		sm:  sm,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/auth/sign-in", srv.signIn)

		r.Group(func(r chi.Router) {
			r.Use(srv.authMiddleware)

			r.Post("/auth/sign-out", srv.signOut)
			r.Post("/auth/refresh", srv.refresh)

			r.Get("/profile", srv.getProfile)
			r.Get("/profile/activities", srv.getActivities)
			r.Get("/profile/opportunities", srv.getAssignedOpportunities)

			r.Post("/posts", srv.createPost)
			r.Put("/posts/{postID}/like", srv.toggleLike)
			r.Post("/posts/{postID}/comments", srv.addComment)
			r.Post("/events/{eventID}/join", srv.joinEvent)
		})

		r.Group(func(r chi.Router) {
			r.Use(srv.optionalAuthMiddleware)

			r.Get("/posts", srv.listPosts)
			r.Get("/events", srv.listEvents)
			r.Get("/ranking", srv.getRanking)
		})

		r.Get("/opportunities", mm.Cached(urgentNeedsCacheTTL, srv.listOpportunities))
		r.Get("/opportunities/urgent", mm.Cached(urgentNeedsCacheTTL, srv.getUrgentNeeds))
		r.Get("/content/{view}", mm.Cached(contentCacheTTL, srv.getContent))

		r.Post("/contact", srv.submitContact)
		r.Post("/registrations/volunteer", srv.registerVolunteer)
		r.Post("/registrations/care-facility", srv.registerCareFacility)
		r.Post("/registrations/foundation", srv.registerFoundation)
	})
}
