package api

// GerritPushEvent holds the fields extracted from a gerrit patchset-created
// hook that are needed to trigger a pre-merge core build.
type GerritPushEvent struct {
	ChangeURL string
	Patchset  int
	Branch    string
}

// GithubPushEvent holds the fields extracted from a github push hook on a
// documentation repository.
type GithubPushEvent struct {
	RepositoryURL   string
	ComposerJSONURL string
	SourceBranch    string
}

// RstChangeSet carries the documentation file changes of one core push
// event, already filtered to .rst files.
type RstChangeSet struct {
	CommitTitle   string
	IssueLabel    string
	AddedFiles    []string
	ModifiedFiles []string
	RemovedFiles  []string
}

// DeploymentInformation are the resolved parameters for one documentation
// build trigger. It is only created after version resolution succeeded.
type DeploymentInformation struct {
	RepositoryURL         string
	PackageName           string
	Vendor                string
	Name                  string
	TypeLong              string
	TypeShort             string
	SourceBranch          string
	TargetBranchDirectory string
	MinimumVersion        string
	MaximumVersion        string
}

// BuildTriggered is the acknowledgement returned by a dispatch call. The
// build result key is the correlation id the asynchronous completion
// callback refers back to.
type BuildTriggered struct {
	BuildResultKey string `json:"buildResultKey"`
}

// BuildOutcome is the payload of an asynchronous build completion callback.
type BuildOutcome struct {
	Success                  bool   `json:"success"`
	BuildDurationInSeconds   int    `json:"buildDurationInSeconds"`
	PrettyBuildCompletedTime string `json:"prettyBuildCompletedTime"`
	BuildTestSummary         string `json:"buildTestSummary"`
	BuildURL                 string `json:"buildUrl"`
	Change                   int    `json:"change"`
	Patchset                 int    `json:"patchset"`
}

// Issue is the subset of the issue tracker's search result this service
// cares about.
type Issue struct {
	Number      int    `json:"number"`
	CommentsURL string `json:"comments_url"`
}
