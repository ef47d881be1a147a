package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripplanner/cmd/fx/account_fx"
	"tripplanner/cmd/fx/budget_fx"
	"tripplanner/cmd/fx/config_fx"
	"tripplanner/cmd/fx/controllers_fx"
	"tripplanner/cmd/fx/dashboard_fx"
	"tripplanner/cmd/fx/db_fx"
	"tripplanner/cmd/fx/explore_fx"
	"tripplanner/cmd/fx/itinerary_fx"
	"tripplanner/cmd/fx/memcache_fx"
	"tripplanner/cmd/fx/trip_fx"
	"tripplanner/internal/api/controllers"
	"tripplanner/internal/config"
	"tripplanner/internal/infra"
	"tripplanner/pkg/middleware"
	"tripplanner/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		dashboard_fx.Module,
		trip_fx.Module,
		explore_fx.Module,
		itinerary_fx.Module,
		budget_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logrus.WithField("port", cfg.Port).Info("Starting HTTP server")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logrus.WithError(err).Fatal("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logrus.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type Controllers struct {
	fx.In

	Account   *controllers.AccountController
	Trip      *controllers.TripController
	Itinerary *controllers.ItineraryController
	Budget    *controllers.BudgetController
	Dashboard *controllers.DashboardController
	Explore   *controllers.ExploreController
}

func ProvideRouter(cfg *config.Config, logSink io.Writer, tokens *utils.TokenManager, db *gorm.DB, ctrl Controllers) *gin.Engine {
	if cfg.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.UseJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(ginlog.SetLogger(
		ginlog.WithWriter(logSink),
		ginlog.WithUTC(true),
		ginlog.WithSkipPath([]string{"/health"}),
	))
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := infra.PingPostgresql(ctx, db); err != nil {
			utils.RespondError(c, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	})

	RegisterRoutes(r, tokens, ctrl)

	return r
}

func RegisterRoutes(r *gin.Engine, tokens *utils.TokenManager, ctrl Controllers) {
	auth := middleware.JWTAuthMiddleware(tokens)
	optional := middleware.OptionalAuthMiddleware(tokens)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", ctrl.Account.Register)
	authGroup.POST("/login", ctrl.Account.Login)
	authGroup.GET("/me", auth, ctrl.Account.Me)

	tripsGroup := api.Group("/trips")
	tripsGroup.GET("/public", optional, ctrl.Trip.ListPublicTrips)
	tripsGroup.GET("/public/:tripId", optional, ctrl.Trip.GetPublicTrip)
	tripsGroup.POST("", auth, ctrl.Trip.CreateTrip)
	tripsGroup.GET("", auth, ctrl.Trip.ListTrips)
	tripsGroup.GET("/:tripId", auth, ctrl.Trip.GetTrip)
	tripsGroup.PUT("/:tripId", auth, ctrl.Trip.UpdateTrip)
	tripsGroup.DELETE("/:tripId", auth, ctrl.Trip.DeleteTrip)

	itineraryGroup := api.Group("/itinerary", auth)
	itineraryGroup.GET("/:tripId", ctrl.Itinerary.GetItinerary)
	itineraryGroup.POST("/:tripId/stops", ctrl.Itinerary.AddStop)
	itineraryGroup.PUT("/:tripId/stops/:stopId", ctrl.Itinerary.UpdateStop)
	itineraryGroup.DELETE("/:tripId/stops/:stopId", ctrl.Itinerary.RemoveStop)
	itineraryGroup.POST("/:tripId/stops/:stopId/activities", ctrl.Itinerary.AddActivity)
	itineraryGroup.PUT("/:tripId/stops/:stopId/activities/:activityId", ctrl.Itinerary.UpdateActivity)
	itineraryGroup.DELETE("/:tripId/stops/:stopId/activities/:activityId", ctrl.Itinerary.RemoveActivity)
	itineraryGroup.PUT("/:tripId/reorder", ctrl.Itinerary.ReorderStops)

	budgetGroup := api.Group("/budget", auth)
	budgetGroup.GET("/:tripId", ctrl.Budget.GetBudget)
	budgetGroup.PUT("/:tripId", ctrl.Budget.UpdateBudget)

	api.GET("/dashboard", auth, ctrl.Dashboard.GetDashboard)

	exploreGroup := api.Group("/explore", optional)
	exploreGroup.GET("/cities", ctrl.Explore.SearchCities)
	exploreGroup.GET("/cities/popular", ctrl.Explore.PopularCities)
	exploreGroup.GET("/cities/:cityId", ctrl.Explore.GetCity)
	exploreGroup.GET("/activities", ctrl.Explore.SearchActivities)
	exploreGroup.GET("/activities/popular", ctrl.Explore.PopularActivities)
	exploreGroup.GET("/activities/types", ctrl.Explore.ActivityTypes)
	exploreGroup.GET("/activities/:activityId", ctrl.Explore.GetActivity)
	exploreGroup.GET("/countries", ctrl.Explore.Countries)
}
