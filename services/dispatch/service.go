package dispatch

import (
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"

	"github.com/linawolf/site-intercept/api"
	"github.com/linawolf/site-intercept/clients/bamboo"
	"github.com/linawolf/site-intercept/clients/github"
	"github.com/linawolf/site-intercept/config"
	"github.com/linawolf/site-intercept/services/resolve"
)

// ErrNoCompatibleVersion is returned when no entry of the platform version
// ladder satisfies the manifest's core constraint.
var ErrNoCompatibleVersion = errors.New("no supported platform version satisfies the core constraint")

// Service issues build trigger signals to the CI systems. Each call sends
// exactly one outbound signal and returns immediately after the dispatch has
// been accepted; it never waits for the build itself.
//go:generate mockgen -package=dispatch -destination ./mock.go -source=service.go
type Service interface {
	DeploymentInformation(event api.GithubPushEvent, manifest api.ComposerJSON) (api.DeploymentInformation, error)
	TriggerBuild(ctx context.Context, info api.DeploymentInformation) (api.BuildTriggered, error)
	TriggerDeletion(ctx context.Context, info api.DeploymentInformation) (api.BuildTriggered, error)
	TriggerRedirectRebuild(ctx context.Context) (api.BuildTriggered, error)
	TriggerCoreBuild(ctx context.Context, event api.GerritPushEvent) (api.BuildTriggered, error)
}

// NewService returns a new dispatch.Service
func NewService(config config.Config, githubClient github.Client, bambooClient bamboo.Client, resolveService resolve.Service) Service {
	return &service{
		config:         config,
		githubClient:   githubClient,
		bambooClient:   bambooClient,
		resolveService: resolveService,
	}
}

type service struct {
	config         config.Config
	githubClient   github.Client
	bambooClient   bamboo.Client
	resolveService resolve.Service
}

// DeploymentInformation resolves the deployment parameters for one build
// trigger. It fails when the manifest's platform compatibility cannot be
// resolved, so no dispatch happens without at least one compatible version.
func (s *service) DeploymentInformation(event api.GithubPushEvent, manifest api.ComposerJSON) (api.DeploymentInformation, error) {

	minimumVersion, err := s.resolveService.MinimumPlatformVersion(manifest)
	if err != nil {
		return api.DeploymentInformation{}, err
	}
	maximumVersion, err := s.resolveService.MaximumPlatformVersion(manifest)
	if err != nil {
		return api.DeploymentInformation{}, err
	}
	if manifest.Type == resolve.ExtensionType && minimumVersion == "" {
		return api.DeploymentInformation{}, ErrNoCompatibleVersion
	}

	parts := strings.SplitN(manifest.Name, "/", 2)
	if len(parts) != 2 {
		return api.DeploymentInformation{}, fmt.Errorf("package name %v is not of the form vendor/name", manifest.Name)
	}

	typeLong, typeShort := packageTypeLabels(manifest.Type)

	return api.DeploymentInformation{
		RepositoryURL:         event.RepositoryURL,
		PackageName:           manifest.Name,
		Vendor:                parts[0],
		Name:                  parts[1],
		TypeLong:              typeLong,
		TypeShort:             typeShort,
		SourceBranch:          event.SourceBranch,
		TargetBranchDirectory: targetBranchDirectory(event.SourceBranch),
		MinimumVersion:        minimumVersion,
		MaximumVersion:        maximumVersion,
	}, nil
}

func (s *service) TriggerBuild(ctx context.Context, info api.DeploymentInformation) (api.BuildTriggered, error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "TriggerBuild")
	defer span.Finish()

	id := correlationID(info.PackageName)
	payload := map[string]string{
		"repository_url":          info.RepositoryURL,
		"source_branch":           info.SourceBranch,
		"target_branch_directory": info.TargetBranchDirectory,
		"name":                    info.Name,
		"vendor":                  info.Vendor,
		"type_short":              info.TypeShort,
		"id":                      id,
	}

	err := s.githubClient.Dispatch(ctx, s.config.Docs.DispatchRepository, "render", payload)
	if err != nil {
		return api.BuildTriggered{}, err
	}

	log.Info().Str("package", info.PackageName).Str("id", id).Msg("Triggered documentation rendering")

	return api.BuildTriggered{BuildResultKey: id}, nil
}

func (s *service) TriggerDeletion(ctx context.Context, info api.DeploymentInformation) (api.BuildTriggered, error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "TriggerDeletion")
	defer span.Finish()

	id := correlationID(info.PackageName)
	payload := map[string]string{
		"target_branch_directory": info.TargetBranchDirectory,
		"name":                    info.Name,
		"vendor":                  info.Vendor,
		"type_short":              info.TypeShort,
		"id":                      id,
	}

	err := s.githubClient.Dispatch(ctx, s.config.Docs.DispatchRepository, "delete", payload)
	if err != nil {
		return api.BuildTriggered{}, err
	}

	log.Info().Str("package", info.PackageName).Str("id", id).Msg("Triggered documentation deletion")

	return api.BuildTriggered{BuildResultKey: id}, nil
}

func (s *service) TriggerRedirectRebuild(ctx context.Context) (api.BuildTriggered, error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "TriggerRedirectRebuild")
	defer span.Finish()

	id := correlationID("")
	payload := map[string]string{
		"id": id,
	}

	err := s.githubClient.Dispatch(ctx, s.config.Docs.DispatchRepository, "redirect", payload)
	if err != nil {
		return api.BuildTriggered{}, err
	}

	log.Info().Str("id", id).Msg("Triggered redirects rebuild")

	return api.BuildTriggered{BuildResultKey: id}, nil
}

func (s *service) TriggerCoreBuild(ctx context.Context, event api.GerritPushEvent) (api.BuildTriggered, error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "TriggerCoreBuild")
	defer span.Finish()

	planKey, ok := s.config.Gerrit.BranchToPlan[event.Branch]
	if !ok {
		return api.BuildTriggered{}, fmt.Errorf("no CI plan configured for branch %v", event.Branch)
	}

	triggered, err := s.bambooClient.TriggerBuild(ctx, planKey, event.ChangeURL, event.Patchset)
	if err != nil {
		return api.BuildTriggered{}, err
	}

	log.Info().Str("branch", event.Branch).Str("buildResultKey", triggered.BuildResultKey).Msg("Triggered core build")

	return triggered, nil
}

// correlationID derives the dispatch handle from the package name, the
// current time and a random nonce. The nonce closes the collision window two
// dispatches for the same package in the same instant would otherwise have.
func correlationID(packageName string) string {
	input := fmt.Sprintf("%v%v%v", time.Now().UTC().UnixNano(), uuid.New(), packageName)
	return fmt.Sprintf("%x", sha1.Sum([]byte(input)))
}

var tagVersionRegex = regexp.MustCompile(`^v?(\d+\.\d+)(\.\d+)?$`)

// targetBranchDirectory maps a source branch or tag to the directory the
// rendered documentation is deployed to. Default branches collapse to main,
// version tags collapse to their minor version.
func targetBranchDirectory(sourceBranch string) string {
	switch sourceBranch {
	case "master", "main", "latest":
		return "main"
	}
	if match := tagVersionRegex.FindStringSubmatch(sourceBranch); match != nil {
		return match[1]
	}
	return sourceBranch
}

func packageTypeLabels(packageType string) (typeLong string, typeShort string) {
	switch packageType {
	case "typo3-cms-documentation":
		return "manual", "m"
	case "typo3-cms-framework":
		return "core-extension", "c"
	case resolve.ExtensionType:
		return "extension", "p"
	default:
		return "package", "h"
	}
}
