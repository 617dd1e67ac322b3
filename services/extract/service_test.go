package extract

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linawolf/site-intercept/config"
)

var (
	extractService = NewService(config.DefaultConfig())
)

func gerritForm(changeURL, patchset, branch string) url.Values {
	form := url.Values{}
	form.Set("changeUrl", changeURL)
	form.Set("patchset", patchset)
	form.Set("branch", branch)
	return form
}

func TestGerritPushEvent(t *testing.T) {

	t.Run("ExtractsEventForAllowedBranch", func(t *testing.T) {

		// act
		event, disinterest, err := extractService.GerritPushEvent(gerritForm("https://review.typo3.org/48574/", "5", "master"))

		assert.Nil(t, err)
		assert.Equal(t, None, disinterest)
		assert.Equal(t, "https://review.typo3.org/48574/", event.ChangeURL)
		assert.Equal(t, 5, event.Patchset)
		assert.Equal(t, "master", event.Branch)
	})

	t.Run("RejectsBranchOutsideAllowList", func(t *testing.T) {

		// act
		event, disinterest, err := extractService.GerritPushEvent(gerritForm("https://review.typo3.org/48574/", "5", "some-feature-branch"))

		assert.Nil(t, err)
		assert.Equal(t, BranchOutOfPolicy, disinterest)
		assert.Nil(t, event)
	})

	t.Run("FailsWithoutChangeUrl", func(t *testing.T) {

		// act
		event, disinterest, err := extractService.GerritPushEvent(gerritForm("", "5", "master"))

		assert.NotNil(t, err)
		assert.Equal(t, None, disinterest)
		assert.Nil(t, event)
	})

	t.Run("FailsWithoutPatchset", func(t *testing.T) {

		// act
		event, _, err := extractService.GerritPushEvent(gerritForm("https://review.typo3.org/48574/", "", "master"))

		assert.NotNil(t, err)
		assert.Nil(t, event)
	})
}

func TestGithubDocsPushEvent(t *testing.T) {

	t.Run("ExtractsEventAndDerivesGithubManifestUrl", func(t *testing.T) {

		payload := []byte(`{
			"ref": "refs/heads/latest",
			"repository": {
				"clone_url": "https://github.com/TYPO3-Documentation/TYPO3CMS-Reference-CoreApi.git",
				"html_url": "https://github.com/TYPO3-Documentation/TYPO3CMS-Reference-CoreApi"
			}
		}`)

		// act
		event, disinterest, err := extractService.GithubDocsPushEvent(payload)

		assert.Nil(t, err)
		assert.Equal(t, None, disinterest)
		assert.Equal(t, "latest", event.SourceBranch)
		assert.Equal(t, "https://raw.githubusercontent.com/TYPO3-Documentation/TYPO3CMS-Reference-CoreApi/latest/composer.json", event.ComposerJSONURL)
		assert.Equal(t, "https://github.com/TYPO3-Documentation/TYPO3CMS-Reference-CoreApi", event.RepositoryURL)
	})

	t.Run("DerivesBitbucketManifestUrl", func(t *testing.T) {

		payload := []byte(`{
			"ref": "refs/heads/main",
			"repository": {
				"clone_url": "https://bitbucket.org/pathfindermediagroup/eso-export-addon.git"
			}
		}`)

		// act
		event, disinterest, err := extractService.GithubDocsPushEvent(payload)

		assert.Nil(t, err)
		assert.Equal(t, None, disinterest)
		assert.Equal(t, "https://bitbucket.org/pathfindermediagroup/eso-export-addon/raw/main/composer.json", event.ComposerJSONURL)
	})

	t.Run("ExtractsTagPush", func(t *testing.T) {

		payload := []byte(`{
			"ref": "refs/tags/v1.1.0",
			"repository": {
				"clone_url": "https://github.com/bla/yay.git"
			}
		}`)

		// act
		event, disinterest, err := extractService.GithubDocsPushEvent(payload)

		assert.Nil(t, err)
		assert.Equal(t, None, disinterest)
		assert.Equal(t, "v1.1.0", event.SourceBranch)
	})

	t.Run("IgnoresPing", func(t *testing.T) {

		payload := []byte(`{"zen": "Approachable is better than simple.", "hook_id": 42}`)

		// act
		event, disinterest, err := extractService.GithubDocsPushEvent(payload)

		assert.Nil(t, err)
		assert.Equal(t, Ping, disinterest)
		assert.Nil(t, event)
	})

	t.Run("IgnoresDeletedBranch", func(t *testing.T) {

		payload := []byte(`{
			"ref": "refs/heads/gone",
			"deleted": true,
			"repository": {
				"clone_url": "https://github.com/bla/yay.git"
			}
		}`)

		// act
		event, disinterest, err := extractService.GithubDocsPushEvent(payload)

		assert.Nil(t, err)
		assert.Equal(t, BranchDeleted, disinterest)
		assert.Nil(t, event)
	})

	t.Run("FailsWithoutRef", func(t *testing.T) {

		payload := []byte(`{"repository": {"clone_url": "https://github.com/bla/yay.git"}}`)

		// act
		event, _, err := extractService.GithubDocsPushEvent(payload)

		assert.NotNil(t, err)
		assert.Nil(t, event)
	})

	t.Run("FailsForUnsupportedRepositoryHost", func(t *testing.T) {

		payload := []byte(`{
			"ref": "refs/heads/main",
			"repository": {
				"clone_url": "https://example.com/bla/yay.git"
			}
		}`)

		// act
		event, _, err := extractService.GithubDocsPushEvent(payload)

		assert.NotNil(t, err)
		assert.Nil(t, event)
	})
}

func TestGithubRstPushEvent(t *testing.T) {

	t.Run("FiltersChangedFilesToRstFiles", func(t *testing.T) {

		payload := []byte(`{
			"head_commit": {
				"message": "[TASK] Streamline changelog files (#12345)\n\nMore detail here.",
				"added": ["foo/bar/baz.rst", "foo/bar/baz.php"],
				"modified": ["foo/bar/other.rst"],
				"removed": ["README.md"]
			}
		}`)

		// act
		changes, err := extractService.GithubRstPushEvent(payload)

		assert.Nil(t, err)
		assert.Equal(t, "[TASK] Streamline changelog files (#12345)", changes.CommitTitle)
		assert.Equal(t, "12345", changes.IssueLabel)
		assert.Equal(t, []string{"foo/bar/baz.rst"}, changes.AddedFiles)
		assert.Equal(t, []string{"foo/bar/other.rst"}, changes.ModifiedFiles)
		assert.Equal(t, []string{}, changes.RemovedFiles)
	})

	t.Run("FailsWithoutHeadCommit", func(t *testing.T) {

		// act
		changes, err := extractService.GithubRstPushEvent([]byte(`{"commits": []}`))

		assert.NotNil(t, err)
		assert.Nil(t, changes)
	})

	t.Run("FailsWithoutIssueReference", func(t *testing.T) {

		payload := []byte(`{
			"head_commit": {
				"message": "[TASK] No reference anywhere",
				"added": ["foo/bar/baz.rst"]
			}
		}`)

		// act
		changes, err := extractService.GithubRstPushEvent(payload)

		assert.NotNil(t, err)
		assert.Nil(t, changes)
	})
}
