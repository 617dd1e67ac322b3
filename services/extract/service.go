package extract

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/linawolf/site-intercept/api"
	"github.com/linawolf/site-intercept/config"
)

// Disinterest names the policy reason a well-formed event is ignored. An
// empty value means the event is applicable.
type Disinterest string

const (
	// None marks an applicable event.
	None Disinterest = ""
	// Ping marks a github ping/keepalive delivery.
	Ping Disinterest = "github ping"
	// BranchDeleted marks a push event for a deleted branch.
	BranchDeleted Disinterest = "The branch in this push event has been deleted."
	// BranchOutOfPolicy marks an event on a branch outside the allow-list.
	BranchOutOfPolicy Disinterest = "Branch is not in the list of built branches."
)

// Service turns raw webhook payloads into typed events, applying the branch
// allow-list and file classification policy. Extraction is pure; it never
// performs I/O. Malformed payloads return an error, events outside policy
// return a non-empty Disinterest, never an error.
//go:generate mockgen -package=extract -destination ./mock.go -source=service.go
type Service interface {
	GerritPushEvent(form url.Values) (*api.GerritPushEvent, Disinterest, error)
	GithubDocsPushEvent(payload []byte) (*api.GithubPushEvent, Disinterest, error)
	GithubRstPushEvent(payload []byte) (*api.RstChangeSet, error)
}

// NewService returns a new extract.Service applying the given policy
func NewService(config config.Config) Service {
	return &service{
		config: config,
	}
}

type service struct {
	config config.Config
}

var issueReferenceRegex = regexp.MustCompile(`#(\d+)`)

func (s *service) GerritPushEvent(form url.Values) (*api.GerritPushEvent, Disinterest, error) {

	branch := form.Get("branch")
	if _, ok := s.config.Gerrit.BranchToPlan[branch]; !ok {
		return nil, BranchOutOfPolicy, nil
	}

	changeURL := form.Get("changeUrl")
	patchset, _ := strconv.Atoi(form.Get("patchset"))
	if changeURL == "" || patchset == 0 {
		return nil, None, fmt.Errorf("gerrit push event is missing changeUrl or patchset")
	}

	return &api.GerritPushEvent{
		ChangeURL: changeURL,
		Patchset:  patchset,
		Branch:    branch,
	}, None, nil
}

func (s *service) GithubDocsPushEvent(payload []byte) (*api.GithubPushEvent, Disinterest, error) {

	var hook struct {
		Zen        string `json:"zen"`
		Ref        string `json:"ref"`
		Deleted    bool   `json:"deleted"`
		Repository struct {
			CloneURL string `json:"clone_url"`
			HTMLURL  string `json:"html_url"`
		} `json:"repository"`
	}
	if err := json.Unmarshal(payload, &hook); err != nil {
		return nil, None, fmt.Errorf("parsing github push event failed: %w", err)
	}

	// a ping delivery carries a zen string and no ref
	if hook.Zen != "" {
		return nil, Ping, nil
	}

	if hook.Deleted {
		return nil, BranchDeleted, nil
	}

	if hook.Ref == "" || hook.Repository.CloneURL == "" {
		return nil, None, fmt.Errorf("github push event is missing ref or repository clone url")
	}

	sourceBranch := strings.TrimPrefix(strings.TrimPrefix(hook.Ref, "refs/heads/"), "refs/tags/")

	manifestURL, err := composerJSONURL(hook.Repository.CloneURL, sourceBranch)
	if err != nil {
		return nil, None, err
	}

	repositoryURL := hook.Repository.HTMLURL
	if repositoryURL == "" {
		repositoryURL = strings.TrimSuffix(hook.Repository.CloneURL, ".git")
	}

	return &api.GithubPushEvent{
		RepositoryURL:   repositoryURL,
		ComposerJSONURL: manifestURL,
		SourceBranch:    sourceBranch,
	}, None, nil
}

func (s *service) GithubRstPushEvent(payload []byte) (*api.RstChangeSet, error) {

	var hook struct {
		HeadCommit struct {
			Message  string   `json:"message"`
			Added    []string `json:"added"`
			Modified []string `json:"modified"`
			Removed  []string `json:"removed"`
		} `json:"head_commit"`
	}
	if err := json.Unmarshal(payload, &hook); err != nil {
		return nil, fmt.Errorf("parsing github push event failed: %w", err)
	}

	if hook.HeadCommit.Message == "" {
		return nil, fmt.Errorf("github push event is missing a head commit")
	}

	title := hook.HeadCommit.Message
	if index := strings.Index(title, "\n"); index > -1 {
		title = title[:index]
	}

	// the forge issue reference in the commit message doubles as the
	// tracking issue label
	issueLabel := ""
	if match := issueReferenceRegex.FindStringSubmatch(hook.HeadCommit.Message); match != nil {
		issueLabel = match[1]
	}
	if issueLabel == "" {
		return nil, fmt.Errorf("github push event head commit carries no issue reference")
	}

	return &api.RstChangeSet{
		CommitTitle:   title,
		IssueLabel:    issueLabel,
		AddedFiles:    filterRstFiles(hook.HeadCommit.Added),
		ModifiedFiles: filterRstFiles(hook.HeadCommit.Modified),
		RemovedFiles:  filterRstFiles(hook.HeadCommit.Removed),
	}, nil
}

func filterRstFiles(files []string) []string {
	filtered := make([]string, 0, len(files))
	for _, file := range files {
		if strings.HasSuffix(file, ".rst") {
			filtered = append(filtered, file)
		}
	}
	return filtered
}

// composerJSONURL derives the raw manifest location from a repository clone
// url for the hosting platforms the service accepts pushes from.
func composerJSONURL(cloneURL, branch string) (string, error) {

	parsed, err := url.Parse(cloneURL)
	if err != nil {
		return "", fmt.Errorf("parsing repository clone url %v failed: %w", cloneURL, err)
	}

	path := strings.TrimSuffix(strings.Trim(parsed.Path, "/"), ".git")

	switch parsed.Host {
	case "github.com":
		return fmt.Sprintf("https://raw.githubusercontent.com/%v/%v/composer.json", path, branch), nil
	case "bitbucket.org":
		return fmt.Sprintf("https://bitbucket.org/%v/raw/%v/composer.json", path, branch), nil
	default:
		return "", fmt.Errorf("repository host %v is not supported", parsed.Host)
	}
}
