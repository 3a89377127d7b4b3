package cmd

import (
	"fmt"
	"net/http"
	"path"

	gorilla "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/als-computing/splash-userservice/api/handlers"
	"github.com/als-computing/splash-userservice/api/middleware"
	"github.com/als-computing/splash-userservice/api/services"
	docs "github.com/als-computing/splash-userservice/docs"
	"github.com/als-computing/splash-userservice/internal/appconfig"
)

// @title Splash User Service API
// @version v2
// @description Common user and group model API for scientific user facilities.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	Run: func(cmd *cobra.Command, args []string) {

		// Init the logging
		setUp()

		cfg, err := appconfig.LoadConfig(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		// The facility adapter behind every user lookup
		alshub := services.NewALSHubService(cfg)

		// Create routes
		r := mux.NewRouter()

		r.HandleFunc("/healthz", handlers.Health()).Methods(http.MethodGet)

		// Register the API routes
		api := r.PathPrefix(cfg.BasePath).Subrouter()

		// Apply the middleware to the API routes
		api.Use(middleware.WithLogger)
		api.Use(middleware.WithIdentity)

		api.HandleFunc("/v1/user/{id}", handlers.GetUser(alshub)).Methods(http.MethodGet)
		api.HandleFunc("/v2/user/{orcid}/groupdetails", handlers.GetUserGroupDetails(alshub)).Methods(http.MethodGet)

		// Docs
		docs.SwaggerInfo.Host = cfg.Host
		docs.SwaggerInfo.BasePath = cfg.BasePath
		r.PathPrefix(cfg.DocsPath).Handler(httpSwagger.Handler(
			httpSwagger.URL(path.Join(cfg.DocsPath, "/doc.json")),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("none"),
			httpSwagger.DomID("swagger-ui"),
		)).Methods(http.MethodGet)

		handler := gorilla.RecoveryHandler()(gorilla.CORS(
			gorilla.AllowedOrigins([]string{"*"}),
			gorilla.AllowedMethods([]string{http.MethodGet}),
			gorilla.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		)(r))

		log.Info().Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port),
			handler); err != nil {

			log.Error().Err(err).Msg("could not start server")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 8080, "port to run the server on")
}
