package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cinesport/internal/http/middleware"
	"cinesport/internal/model"
	"cinesport/internal/service"
)

// Deps carries everything the routes need. A nil Metrics disables /metrics.
type Deps struct {
	DB      Pinger
	Tokens  middleware.TokenParser
	Metrics prometheus.Gatherer

	Auth            service.AuthService
	Passwords       service.PasswordService
	Users           service.UserService
	Movies          service.MovieService
	Suggestions     service.SuggestionService
	Favorites       service.FavoriteService
	Reactions       service.ReactionService
	Recommendations service.RecommendationService
	Events          service.EventService
	Reports         service.ReportService
	Gamification    service.GamificationService
	Catalog         service.CatalogService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	if d.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Metrics, promhttp.HandlerOpts{})))
	}

	auth := middleware.Auth(d.Tokens)

	app.Post("/auth/register", Register(d.Auth))
	app.Post("/auth/login", Login(d.Auth))
	app.Get("/auth/me", auth, Me(d.Auth))
	app.Put("/auth/me", auth, UpdateMe(d.Auth))
	app.Put("/auth/me/avatar", auth, UploadAvatar(d.Auth))

	app.Put("/users/change-password", auth, ChangePassword(d.Passwords))
	app.Post("/password/forgot-password", ForgotPassword(d.Passwords))

	app.Get("/users/search", SearchUsers(d.Users))
	app.Get("/users/profile/:userId", UserProfile(d.Users))
	app.Get("/users/:userId/stats", UserStats(d.Users))
	app.Get("/users/:userId/avatar", UserAvatar(d.Users))

	movies := app.Group("/movies")
	movies.Post("/populate", auth, PopulateMovies(d.Movies))
	movies.Get("/list", ListMovies(d.Movies))
	movies.Get("/search", SearchMovies(d.Movies))
	movies.Get("/details/:movieId", MovieDetails(d.Movies))
	movies.Get("/suggestions", auth, MovieSuggestions(d.Suggestions))

	favorites := app.Group("/favorites", auth)
	favorites.Post("/add", AddFavorite(d.Favorites))
	favorites.Get("/", ListFavorites(d.Favorites))
	favorites.Delete("/remove", RemoveFavorite(d.Favorites))

	likes := app.Group("/likes")
	likes.Post("/", auth, ToggleReaction(d.Reactions))
	likes.Get("/my-likes", auth, MyReactions(d.Reactions, model.ReactionLike))
	likes.Get("/my-dislikes", auth, MyReactions(d.Reactions, model.ReactionDislike))
	likes.Get("/:movieId", ReactionCounts(d.Reactions))

	recs := app.Group("/recommendations", auth)
	recs.Post("/", SendRecommendation(d.Recommendations))
	recs.Get("/received", ReceivedRecommendations(d.Recommendations))
	recs.Get("/received/count", CountRecommendations(d.Recommendations))
	recs.Delete("/:id", DeleteRecommendation(d.Recommendations))

	events := app.Group("/events")
	events.Post("/", auth, CreateEvent(d.Events))
	events.Get("/", ListEvents(d.Events))
	events.Get("/:eventId", GetEvent(d.Events))
	events.Put("/:eventId", auth, UpdateEvent(d.Events))
	events.Delete("/:eventId", auth, CancelEvent(d.Events))
	events.Post("/:eventId/join", auth, JoinEvent(d.Events))
	events.Delete("/:eventId/leave", auth, LeaveEvent(d.Events))
	events.Get("/:eventId/participants", EventParticipants(d.Events))
	events.Post("/:eventId/invite", auth, InviteToEvent(d.Events))
	events.Put("/:eventId/approve/:participationId", auth, ApproveParticipation(d.Events))
	events.Put("/:eventId/reject/:participationId", auth, RejectParticipation(d.Events))

	reports := app.Group("/reports", auth)
	reports.Post("/", CreateReport(d.Reports))
	reports.Get("/", ListReports(d.Reports))
	reports.Get("/user/:userId", UserReports(d.Reports))
	reports.Get("/:reportId", GetReport(d.Reports))

	game := app.Group("/gamification")
	game.Get("/badges", ListBadges(d.Gamification))
	game.Get("/badges/:userId", UserBadges(d.Gamification))
	game.Get("/challenges/:userId", auth, WeekChallenges(d.Gamification))
	game.Put("/challenges/:challengeId/complete", auth, CompleteChallenge(d.Gamification))
	game.Get("/leaderboard/:type?", Leaderboard(d.Gamification))
	game.Get("/rewards", ListRewards(d.Gamification))
	game.Post("/rewards/:rewardId/purchase", auth, PurchaseReward(d.Gamification))

	sports := app.Group("/sports")
	sports.Get("/", ListSports(d.Catalog))
	sports.Post("/", auth, CreateSport(d.Catalog))
	sports.Put("/:id", auth, UpdateSport(d.Catalog))
	sports.Delete("/:id", auth, DeleteSport(d.Catalog))
	sports.Get("/:id/photo", SportPhoto(d.Catalog))
	sports.Put("/:id/photo", auth, UploadSportPhoto(d.Catalog))

	locations := app.Group("/locations")
	locations.Get("/", ListLocations(d.Catalog))
	locations.Post("/", auth, CreateLocation(d.Catalog))
	locations.Put("/:id", auth, UpdateLocation(d.Catalog))
	locations.Delete("/:id", auth, DeleteLocation(d.Catalog))
}
