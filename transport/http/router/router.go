package router

import (
	"net/http"

	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/dashboard"
	"hotel/internal/handlers/page"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/user"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	User      user.Handler
	Room      room.Handler
	Booking   booking.Handler
	Dashboard dashboard.Handler
	Page      page.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the versioned API. Callers wrap it with the auth middleware.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Page.Router(routerGroup)
	})
}

// Root answers GET / with a fixed text body.
func Root(w http.ResponseWriter, _ *http.Request) {
	response.WithText(w, http.StatusOK, constant.ResponseRootMessage)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
