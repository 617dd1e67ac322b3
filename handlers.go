package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/linawolf/site-intercept/api"
	"github.com/linawolf/site-intercept/clients/composer"
	"github.com/linawolf/site-intercept/services/dispatch"
	"github.com/linawolf/site-intercept/services/extract"
	"github.com/linawolf/site-intercept/services/report"
	"github.com/linawolf/site-intercept/services/resolve"
)

const dependenciesNotFulfilledMessage = "Dependencies are not fulfilled. See https://intercept.typo3.com for more information."

// handlers map the pipeline outcomes to http responses: disinterest is
// acknowledged as success, validation failures answer 412 with an
// explanation, transport failures answer 502.
type handlers struct {
	extractService  extract.Service
	composerClient  composer.Client
	dispatchService dispatch.Service
	reportService   report.Service
}

func newHandlers(extractService extract.Service, composerClient composer.Client, dispatchService dispatch.Service, reportService report.Service) *handlers {
	return &handlers{
		extractService:  extractService,
		composerClient:  composerClient,
		dispatchService: dispatchService,
		reportService:   reportService,
	}
}

// GerritPushHandler triggers a pre-merge core build for a gerrit patchset.
func (h *handlers) GerritPushHandler(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Malformed payload.", http.StatusPreconditionFailed)
		return
	}

	event, disinterest, err := h.extractService.GerritPushEvent(r.PostForm)
	if disinterest != extract.None {
		log.Info().Str("reason", string(disinterest)).Msg("Ignoring gerrit push event")
		w.WriteHeader(http.StatusOK)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("Malformed payload: %v", err), http.StatusPreconditionFailed)
		return
	}

	if _, err := h.dispatchService.TriggerCoreBuild(r.Context(), *event); err != nil {
		log.Error().Err(err).Msg("Failed triggering core build")
		http.Error(w, "Failed triggering core build.", http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// DocsPushHandler renders documentation for a push to a documented package.
func (h *handlers) DocsPushHandler(w http.ResponseWriter, r *http.Request) {

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Malformed payload.", http.StatusPreconditionFailed)
		return
	}

	event, disinterest, err := h.extractService.GithubDocsPushEvent(payload)
	if disinterest != extract.None {
		log.Info().Str("reason", string(disinterest)).Msg("Ignoring github push event")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(disinterest))
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("Malformed payload: %v", err), http.StatusPreconditionFailed)
		return
	}

	manifest, err := h.composerClient.GetComposerJSON(r.Context(), event.ComposerJSONURL)
	if err != nil {
		log.Error().Err(err).Str("url", event.ComposerJSONURL).Msg("Failed fetching composer.json")
		http.Error(w, "Failed fetching composer.json.", http.StatusBadGateway)
		return
	}

	info, err := h.dispatchService.DeploymentInformation(*event, manifest)
	if errors.Is(err, resolve.ErrMissingDependency) {
		http.Error(w, dependenciesNotFulfilledMessage, http.StatusPreconditionFailed)
		return
	}
	if errors.Is(err, dispatch.ErrNoCompatibleVersion) {
		http.Error(w, "No supported platform version satisfies the composer.json constraints.", http.StatusPreconditionFailed)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("Malformed payload: %v", err), http.StatusPreconditionFailed)
		return
	}

	if _, err := h.dispatchService.TriggerBuild(r.Context(), info); err != nil {
		log.Error().Err(err).Str("package", info.PackageName).Msg("Failed triggering documentation rendering")
		http.Error(w, "Failed triggering documentation rendering.", http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DocsDeletionHandler removes rendered documentation of a package branch.
func (h *handlers) DocsDeletionHandler(w http.ResponseWriter, r *http.Request) {

	var body struct {
		PackageName           string `json:"package_name"`
		Vendor                string `json:"vendor"`
		Name                  string `json:"name"`
		TypeShort             string `json:"type_short"`
		TargetBranchDirectory string `json:"target_branch_directory"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Malformed payload.", http.StatusPreconditionFailed)
		return
	}
	if body.PackageName == "" || body.TargetBranchDirectory == "" {
		http.Error(w, "Malformed payload: package_name and target_branch_directory are required.", http.StatusPreconditionFailed)
		return
	}

	info := api.DeploymentInformation{
		PackageName:           body.PackageName,
		Vendor:                body.Vendor,
		Name:                  body.Name,
		TypeShort:             body.TypeShort,
		TargetBranchDirectory: body.TargetBranchDirectory,
	}

	triggered, err := h.dispatchService.TriggerDeletion(r.Context(), info)
	if err != nil {
		log.Error().Err(err).Str("package", info.PackageName).Msg("Failed triggering documentation deletion")
		http.Error(w, "Failed triggering documentation deletion.", http.StatusBadGateway)
		return
	}

	writeJSON(w, triggered)
}

// DocsRedirectHandler rebuilds the documentation redirects configuration.
func (h *handlers) DocsRedirectHandler(w http.ResponseWriter, r *http.Request) {

	triggered, err := h.dispatchService.TriggerRedirectRebuild(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed triggering redirects rebuild")
		http.Error(w, "Failed triggering redirects rebuild.", http.StatusBadGateway)
		return
	}

	writeJSON(w, triggered)
}

// RstIssueHandler aggregates documentation file changes of a core push into
// a tracking issue.
func (h *handlers) RstIssueHandler(w http.ResponseWriter, r *http.Request) {

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Malformed payload.", http.StatusPreconditionFailed)
		return
	}

	changes, err := h.extractService.GithubRstPushEvent(payload)
	if err != nil {
		// the hook fires for every push to the core repository, most of
		// which are not tracked here
		log.Info().Err(err).Msg("Ignoring github push event without tracked rst changes")
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := h.reportService.AggregateRstChanges(r.Context(), *changes, changes.IssueLabel, changes.CommitTitle); err != nil {
		log.Error().Err(err).Str("label", changes.IssueLabel).Msg("Failed aggregating rst changes")
		http.Error(w, "Failed aggregating rst changes.", http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// BuildDoneHandler receives the asynchronous build outcome callback and
// posts the verification vote.
func (h *handlers) BuildDoneHandler(w http.ResponseWriter, r *http.Request) {

	var outcome api.BuildOutcome
	if err := json.NewDecoder(r.Body).Decode(&outcome); err != nil {
		http.Error(w, "Malformed payload.", http.StatusPreconditionFailed)
		return
	}
	if outcome.Change == 0 || outcome.Patchset == 0 {
		http.Error(w, "Malformed payload: change and patchset are required.", http.StatusPreconditionFailed)
		return
	}

	if err := h.reportService.PostVote(r.Context(), outcome); err != nil {
		log.Error().Err(err).Int("change", outcome.Change).Msg("Failed posting vote")
		http.Error(w, "Failed posting vote.", http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HealthzHandler answers the load balancer's liveness probe.
func (h *handlers) HealthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Failed writing response body")
	}
}
