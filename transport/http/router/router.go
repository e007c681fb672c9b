package router

import (
	"github.com/go-chi/chi/v5"

	"campushub/internal/handlers/content"
	"campushub/internal/handlers/gallery"
	"campushub/internal/handlers/posts"
)

type DomainHandlers struct {
	Gallery gallery.Handler
	Posts   posts.Handler
	Content content.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Gallery.Router(routerGroup)
		r.DomainHandlers.Posts.Router(routerGroup)
		r.DomainHandlers.Content.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
