package main

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/alecthomas/kingpin"
	foundation "github.com/estafette/estafette-foundation"
	"github.com/gorilla/mux"
	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"

	"github.com/linawolf/site-intercept/clients/bamboo"
	"github.com/linawolf/site-intercept/clients/composer"
	"github.com/linawolf/site-intercept/clients/gerrit"
	"github.com/linawolf/site-intercept/clients/github"
	"github.com/linawolf/site-intercept/config"
	"github.com/linawolf/site-intercept/services/dispatch"
	"github.com/linawolf/site-intercept/services/extract"
	"github.com/linawolf/site-intercept/services/report"
	"github.com/linawolf/site-intercept/services/resolve"
)

var (
	appgroup  string
	app       string
	version   string
	branch    string
	revision  string
	buildDate string
)

var (
	apiAddress = kingpin.Flag("api-listen-address", "The address to listen on for incoming webhooks.").Default(":5000").Envar("API_LISTEN_ADDRESS").String()
	configPath = kingpin.Flag("config-path", "Path to the yaml policy configuration, defaults apply when unset.").Envar("CONFIG_PATH").String()

	gerritAPIBaseURL = kingpin.Flag("gerrit-api-base-url", "Base url of the gerrit REST API.").Default("https://review.typo3.org").Envar("GERRIT_API_BASE_URL").String()
	gerritUsername   = kingpin.Flag("gerrit-username", "Username for the gerrit REST API.").Envar("GERRIT_USERNAME").String()
	gerritPassword   = kingpin.Flag("gerrit-password", "Password for the gerrit REST API.").Envar("GERRIT_PASSWORD").String()

	githubAPIBaseURL  = kingpin.Flag("github-api-base-url", "Base url of the github REST API.").Default("https://api.github.com").Envar("GITHUB_API_BASE_URL").String()
	githubAccessToken = kingpin.Flag("github-access-token", "Access token for the github REST API.").Envar("GITHUB_ACCESS_TOKEN").String()

	bambooAPIBaseURL = kingpin.Flag("bamboo-api-base-url", "Base url of the bamboo REST API.").Default("https://bamboo.typo3.com").Envar("BAMBOO_API_BASE_URL").String()
	bambooUsername   = kingpin.Flag("bamboo-username", "Username for the bamboo REST API.").Envar("BAMBOO_USERNAME").String()
	bambooPassword   = kingpin.Flag("bamboo-password", "Password for the bamboo REST API.").Envar("BAMBOO_PASSWORD").String()
)

func main() {

	kingpin.Parse()

	applicationInfo := foundation.ApplicationInfo{
		AppGroup:  appgroup,
		App:       app,
		Version:   version,
		Branch:    branch,
		Revision:  revision,
		BuildDate: buildDate,
	}

	foundation.InitLoggingFromEnv(applicationInfo)
	foundation.InitMetrics()

	closer := initJaeger(app)
	defer closer.Close()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Loading configuration failed")
	}

	resolveService, err := resolve.NewService(cfg.Platform)
	if err != nil {
		log.Fatal().Err(err).Msg("Creating resolve service failed")
	}

	gerritClient := gerrit.NewClient(*gerritAPIBaseURL, *gerritUsername, *gerritPassword)
	githubClient := github.NewClient(*githubAPIBaseURL, *githubAccessToken)
	bambooClient := bamboo.NewClient(*bambooAPIBaseURL, *bambooUsername, *bambooPassword)
	composerClient := composer.NewClient()

	extractService := extract.NewService(cfg)
	dispatchService := dispatch.NewService(cfg, githubClient, bambooClient, resolveService)
	reportService := report.NewService(cfg, gerritClient, githubClient)

	h := newHandlers(extractService, composerClient, dispatchService, reportService)

	router := mux.NewRouter()
	router.HandleFunc("/gerrit", h.GerritPushHandler).Methods("POST")
	router.HandleFunc("/docs", h.DocsPushHandler).Methods("POST")
	router.HandleFunc("/docs/delete", h.DocsDeletionHandler).Methods("POST")
	router.HandleFunc("/docs/redirect", h.DocsRedirectHandler).Methods("POST")
	router.HandleFunc("/docs/rstissue", h.RstIssueHandler).Methods("POST")
	router.HandleFunc("/build/done", h.BuildDoneHandler).Methods("POST")
	router.HandleFunc("/healthz", h.HealthzHandler).Methods("GET")

	server := &http.Server{
		Addr:         *apiAddress,
		Handler:      nethttp.Middleware(opentracing.GlobalTracer(), router),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	gracefulShutdown, waitGroup := foundation.InitGracefulShutdownHandling()

	go func() {
		log.Info().Msgf("Listening for incoming webhooks on %v...", *apiAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Starting http server failed")
		}
	}()

	foundation.HandleGracefulShutdown(gracefulShutdown, waitGroup, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Shutting down http server failed")
		}
	})
}

// initJaeger returns an instance of Jaeger Tracer that can be configured with environment variables
// https://github.com/jaegertracing/jaeger-client-go#environment-variables
func initJaeger(service string) io.Closer {

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger config from environment variables failed")
	}

	closer, err := cfg.InitGlobalTracer(service, jaegercfg.Logger(jaeger.StdLogger))
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger tracer failed")
	}

	return closer
}
