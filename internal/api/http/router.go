package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/clipstack/clipstack/internal/api/service"
	"github.com/clipstack/clipstack/internal/api/store"
	"github.com/clipstack/clipstack/pkg/httpx"
	"github.com/clipstack/clipstack/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	TokenService    *service.TokenService
	UserService     *service.UserService
	VideoService    *service.VideoService
	CommentService  *service.CommentService
	TweetService    *service.TweetService
	PlaylistService *service.PlaylistService
	ToggleService   *service.ToggleService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerChannels()
	r.registerVideos()
	r.registerComments()
	r.registerTweets()
	r.registerPlaylists()
	r.registerSubscriptions()
	r.registerDashboard()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{UserService: r.UserService, TokenService: r.TokenService}

	// Credential endpoints take the strictest limits: they are the brute
	// force surface.
	r.Mux.Handle("POST /api/v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/auth/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.AuthnMiddleware(r.TokenService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/auth/change-password",
		httpx.Chain(http.HandlerFunc(h.HandleChangePassword),
			httpx.AuthnMiddleware(r.TokenService),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		UserService:   r.UserService,
		ToggleService: r.ToggleService,
		VideoService:  r.VideoService,
	}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.TokenService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /api/v1/users/me", secured(h.HandleMe))
	r.Mux.Handle("PATCH /api/v1/users/me", secured(h.HandleUpdateDetails))
	r.Mux.Handle("PATCH /api/v1/users/me/avatar", secured(h.HandleUpdateAvatar))
	r.Mux.Handle("GET /api/v1/users/me/history", secured(h.HandleWatchHistory))
	r.Mux.Handle("GET /api/v1/likes/videos", secured(h.HandleLikedVideos))
	r.Mux.Handle("GET /api/v1/likes/comments", secured(h.HandleLikedComments))
	r.Mux.Handle("GET /api/v1/likes/tweets", secured(h.HandleLikedTweets))
}

func (r *Router) registerChannels() {
	h := &ChannelsHandler{
		UserService:     r.UserService,
		VideoService:    r.VideoService,
		TweetService:    r.TweetService,
		PlaylistService: r.PlaylistService,
		ToggleService:   r.ToggleService,
	}

	// Public pages; a logged-in viewer gets subscription state and their
	// own drafts, so authn is optional rather than absent.
	public := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.OptionalAuthnMiddleware(r.TokenService),
			httpx.RateLimitByIP(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /api/v1/channels/{username}", public(h.HandleProfile))
	r.Mux.Handle("GET /api/v1/channels/{channelID}/videos", public(h.HandleVideos))
	r.Mux.Handle("GET /api/v1/channels/{channelID}/tweets", public(h.HandleTweets))
	r.Mux.Handle("GET /api/v1/channels/{channelID}/playlists", public(h.HandlePlaylists))
	r.Mux.Handle("GET /api/v1/channels/{channelID}/subscribers", public(h.HandleSubscribers))
}

func (r *Router) registerVideos() {
	videos := &VideosHandler{VideoService: r.VideoService}
	comments := &CommentsHandler{CommentService: r.CommentService}
	toggles := &TogglesHandler{ToggleService: r.ToggleService}

	r.Mux.Handle("GET /api/v1/videos",
		httpx.Chain(http.HandlerFunc(videos.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/v1/videos/{videoID}",
		httpx.Chain(http.HandlerFunc(videos.HandleGet),
			httpx.OptionalAuthnMiddleware(r.TokenService),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/v1/videos/{videoID}/comments",
		httpx.Chain(http.HandlerFunc(comments.HandleListByVideo),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	secured := func(fn http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.TokenService),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("POST /api/v1/videos", secured(videos.HandlePublish, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /api/v1/videos/{videoID}", secured(videos.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/v1/videos/{videoID}", secured(videos.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("POST /api/v1/videos/{videoID}/toggle-publish", secured(videos.HandleTogglePublish, httpx.ModerateLimit))
	r.Mux.Handle("POST /api/v1/videos/{videoID}/like", secured(toggles.HandleVideoLike, httpx.LenientLimit))
	r.Mux.Handle("POST /api/v1/videos/{videoID}/comments", secured(comments.HandleAdd, httpx.ModerateLimit))
}

func (r *Router) registerComments() {
	comments := &CommentsHandler{CommentService: r.CommentService}
	toggles := &TogglesHandler{ToggleService: r.ToggleService}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.TokenService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /api/v1/comments", secured(comments.HandleListOwn))
	r.Mux.Handle("PATCH /api/v1/comments/{commentID}", secured(comments.HandleUpdate))
	r.Mux.Handle("DELETE /api/v1/comments/{commentID}", secured(comments.HandleDelete))
	r.Mux.Handle("POST /api/v1/comments/{commentID}/like", secured(toggles.HandleCommentLike))
}

func (r *Router) registerTweets() {
	tweets := &TweetsHandler{TweetService: r.TweetService}
	toggles := &TogglesHandler{ToggleService: r.ToggleService}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.TokenService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /api/v1/tweets", secured(tweets.HandleCreate))
	r.Mux.Handle("PATCH /api/v1/tweets/{tweetID}", secured(tweets.HandleUpdate))
	r.Mux.Handle("DELETE /api/v1/tweets/{tweetID}", secured(tweets.HandleDelete))
	r.Mux.Handle("POST /api/v1/tweets/{tweetID}/like", secured(toggles.HandleTweetLike))
}

func (r *Router) registerPlaylists() {
	h := &PlaylistsHandler{PlaylistService: r.PlaylistService}

	r.Mux.Handle("GET /api/v1/playlists/{playlistID}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.TokenService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /api/v1/playlists", secured(h.HandleCreate))
	r.Mux.Handle("PATCH /api/v1/playlists/{playlistID}", secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/v1/playlists/{playlistID}", secured(h.HandleDelete))
	r.Mux.Handle("POST /api/v1/playlists/{playlistID}/videos/{videoID}", secured(h.HandleAddVideo))
	r.Mux.Handle("DELETE /api/v1/playlists/{playlistID}/videos/{videoID}", secured(h.HandleRemoveVideo))
}

func (r *Router) registerSubscriptions() {
	h := &TogglesHandler{ToggleService: r.ToggleService}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.TokenService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("POST /api/v1/subscriptions/{channelID}/toggle", secured(h.HandleSubscription))
	r.Mux.Handle("GET /api/v1/subscriptions", secured(h.HandleSubscriptions))
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{UserService: r.UserService, VideoService: r.VideoService}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.TokenService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /api/v1/dashboard/stats", secured(h.HandleStats))
	r.Mux.Handle("GET /api/v1/dashboard/videos", secured(h.HandleVideos))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
