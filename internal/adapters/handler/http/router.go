package http

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/vncsmyrnk/blog/docs"
)

type RouterConfig struct {
	APIKey         string
	DocsUsername   string
	DocsPassword   string
	AllowedOrigins []string
	Logger         *slog.Logger
}

type Handlers struct {
	Auth *AuthHandler
	User *UserHandler
	Post *PostHandler
	Tag  *TagHandler

	// Bearer guards the post write routes.
	Bearer Guard
}

// NewHandler builds the request pipeline: CORS and the docs gate run for
// every request, business routes require the API key and post writes additionally
// require a bearer token.
func NewHandler(cfg RouterConfig, h Handlers) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	// Preflight requests carry no credentials, so CORS answers them before
	// the docs gate sees them.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: !allowsAnyOrigin(cfg.AllowedOrigins),
		MaxAge:           300,
	}))
	r.Use(DocsBasicAuth(cfg.DocsUsername, cfg.DocsPassword))

	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/openapi.json"),
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
	))
	r.Get("/openapi.json", openAPIDocument)

	r.Group(func(r chi.Router) {
		r.Use(Require(NewAPIKeyGuard(cfg.APIKey)))

		r.Get("/validate", h.Auth.Validate)
		r.Post("/token", h.Auth.Login)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.User.CreateUser)
			r.Get("/", h.User.ListUsers)
			r.Get("/{user_id}", h.User.GetUser)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", h.Post.ListPosts)
			r.Get("/{username}/{slug}", h.Post.GetPost)
			r.With(Require(h.Bearer)).Post("/", h.Post.CreatePost)
			r.With(Require(h.Bearer)).Delete("/{post_id}", h.Post.DeletePost)
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", h.Tag.ListTags)
			r.Get("/{tag_id}", h.Tag.GetTag)
		})

		r.Get("/categories/", h.Tag.ListCategories)
	})

	return r
}

// allowsAnyOrigin reports whether origins is empty or contains "*"; go-chi/cors
// treats both as a wildcard.
func allowsAnyOrigin(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	return slices.Contains(origins, "*")
}

func openAPIDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(docs.SwaggerInfo.ReadDoc()))
}
