package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"

	"github.com/linawolf/site-intercept/api"
	"github.com/linawolf/site-intercept/clients/gerrit"
	"github.com/linawolf/site-intercept/clients/github"
	"github.com/linawolf/site-intercept/config"
)

// Service closes the loop after a build completed: it posts the verification
// vote back to the code-review system and aggregates documentation file
// changes into a tracking issue.
//go:generate mockgen -package=report -destination ./mock.go -source=service.go
type Service interface {
	PostVote(ctx context.Context, outcome api.BuildOutcome) error
	AggregateRstChanges(ctx context.Context, changes api.RstChangeSet, issueLabel, commitTitle string) error
}

// NewService returns a new report.Service
func NewService(config config.Config, gerritClient gerrit.Client, githubClient github.Client) Service {
	return &service{
		config:       config,
		gerritClient: gerritClient,
		githubClient: githubClient,
	}
}

type service struct {
	config       config.Config
	gerritClient gerrit.Client
	githubClient github.Client
}

func (s *service) PostVote(ctx context.Context, outcome api.BuildOutcome) error {

	span, ctx := opentracing.StartSpanFromContext(ctx, "PostVote")
	defer span.Finish()

	verification := "-1"
	if outcome.Success {
		verification = "+1"
	}

	review := gerrit.Review{
		Message: voteMessage(outcome),
		Labels: map[string]string{
			"Verified": verification,
		},
	}

	err := s.gerritClient.PostReview(ctx, outcome.Change, outcome.Patchset, review)
	if err != nil {
		return err
	}

	log.Info().Int("change", outcome.Change).Int("patchset", outcome.Patchset).Str("verified", verification).Msg("Voted on gerrit")

	return nil
}

// AggregateRstChanges records documentation file changes on the tracking
// issue labelled with issueLabel, creating the issue if none is open yet.
// The search-then-act sequence is not transactional; two concurrent calls
// for the same label can create duplicate issues.
func (s *service) AggregateRstChanges(ctx context.Context, changes api.RstChangeSet, issueLabel, commitTitle string) error {

	if len(changes.AddedFiles)+len(changes.ModifiedFiles)+len(changes.RemovedFiles) == 0 {
		return nil
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "AggregateRstChanges")
	defer span.Finish()

	body := s.composeBody(changes)

	issue, err := s.githubClient.SearchOpenIssueByLabel(ctx, s.config.Rst.TrackingRepository, issueLabel)
	if err != nil {
		return err
	}

	if issue != nil {
		return s.githubClient.CreateComment(ctx, issue.CommentsURL, body)
	}

	return s.githubClient.CreateIssue(ctx, s.config.Rst.TrackingRepository, commitTitle, body, []string{issueLabel})
}

func (s *service) composeBody(changes api.RstChangeSet) string {

	var paragraphs []string
	paragraphs = appendFileSection(paragraphs, "Added:", changes.AddedFiles, s.config.Rst.FileLinkBase)
	paragraphs = appendFileSection(paragraphs, "Modified:", changes.ModifiedFiles, s.config.Rst.FileLinkBase)
	paragraphs = appendFileSection(paragraphs, "Removed:", changes.RemovedFiles, s.config.Rst.FileLinkBase)

	return strings.Join(paragraphs, "\n")
}

func appendFileSection(paragraphs []string, heading string, files []string, linkBase string) []string {
	if len(files) == 0 {
		return paragraphs
	}

	links := make([]string, 0, len(files))
	for _, file := range files {
		links = append(links, fmt.Sprintf("* [%v](%v%v)", file, linkBase, file))
	}

	paragraphs = append(paragraphs, heading+"\n")
	paragraphs = append(paragraphs, strings.Join(links, "\n"))
	paragraphs = append(paragraphs, "\n")

	return paragraphs
}

// voteMessage renders the human readable build summary posted with the vote.
func voteMessage(outcome api.BuildOutcome) string {
	parts := []string{
		fmt.Sprintf("Completed build in %v on %v", humanReadableDuration(outcome.BuildDurationInSeconds), outcome.PrettyBuildCompletedTime),
		fmt.Sprintf("Test Summary: %v", outcome.BuildTestSummary),
		fmt.Sprintf("Find logs and detail information at %v", outcome.BuildURL),
	}
	return strings.Join(parts, "\n")
}

func humanReadableDuration(seconds int) string {

	if seconds < 1 {
		return "0 seconds"
	}

	units := []struct {
		name    string
		seconds int
	}{
		{"hour", 3600},
		{"minute", 60},
		{"second", 1},
	}

	var parts []string
	remaining := seconds
	for _, unit := range units {
		count := remaining / unit.seconds
		remaining = remaining % unit.seconds
		if count == 0 {
			continue
		}
		name := unit.name
		if count > 1 {
			name += "s"
		}
		parts = append(parts, fmt.Sprintf("%v %v", count, name))
	}

	return strings.Join(parts, ", ")
}
