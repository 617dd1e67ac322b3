package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sethgrid/pester"

	"github.com/linawolf/site-intercept/api"
)

// Client talks to the github REST API for repository dispatches and
// tracking issue management
//go:generate mockgen -package=github -destination ./mock.go -source=client.go
type Client interface {
	Dispatch(ctx context.Context, repository, eventType string, clientPayload interface{}) error
	SearchOpenIssueByLabel(ctx context.Context, repository, label string) (*api.Issue, error)
	CreateIssue(ctx context.Context, repository, title, body string, labels []string) error
	CreateComment(ctx context.Context, commentsURL, body string) error
}

// NewClient returns a new github.Client authenticating with accessToken
func NewClient(apiBaseURL, accessToken string) Client {
	return &client{
		apiBaseURL:  apiBaseURL,
		accessToken: accessToken,
	}
}

type client struct {
	apiBaseURL  string
	accessToken string
}

func (c *client) Dispatch(ctx context.Context, repository, eventType string, clientPayload interface{}) error {

	body := struct {
		EventType     string      `json:"event_type"`
		ClientPayload interface{} `json:"client_payload"`
	}{
		EventType:     eventType,
		ClientPayload: clientPayload,
	}

	dispatchURL := fmt.Sprintf("%v/repos/%v/dispatches", c.apiBaseURL, repository)

	response, err := c.do(ctx, "POST", dispatchURL, body)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	log.Debug().Str("repository", repository).Str("eventType", eventType).Msg("Sent repository dispatch")

	return nil
}

func (c *client) SearchOpenIssueByLabel(ctx context.Context, repository, label string) (*api.Issue, error) {

	query := url.Values{}
	query.Set("q", fmt.Sprintf("label:%v is:issue is:open repo:%v", label, repository))
	searchURL := fmt.Sprintf("%v/search/issues?%v", c.apiBaseURL, query.Encode())

	response, err := c.do(ctx, "GET", searchURL, nil)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading response from %v: %w", searchURL, err)
	}

	var result struct {
		Items []api.Issue `json:"items"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed unmarshalling response from %v: %w", searchURL, err)
	}

	if len(result.Items) == 0 {
		return nil, nil
	}

	return &result.Items[0], nil
}

func (c *client) CreateIssue(ctx context.Context, repository, title, body string, labels []string) error {

	issue := struct {
		Title  string   `json:"title"`
		Body   string   `json:"body"`
		Labels []string `json:"labels"`
	}{
		Title:  title,
		Body:   body,
		Labels: labels,
	}

	issuesURL := fmt.Sprintf("%v/repos/%v/issues", c.apiBaseURL, repository)

	response, err := c.do(ctx, "POST", issuesURL, issue)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	log.Debug().Str("repository", repository).Str("title", title).Msg("Created tracking issue")

	return nil
}

func (c *client) CreateComment(ctx context.Context, commentsURL, body string) error {

	comment := struct {
		Body string `json:"body"`
	}{
		Body: body,
	}

	response, err := c.do(ctx, "POST", commentsURL, comment)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	log.Debug().Str("url", commentsURL).Msg("Commented on tracking issue")

	return nil
}

func (c *client) do(ctx context.Context, method, requestURL string, body interface{}) (*http.Response, error) {

	var requestBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed marshalling request body for %v: %w", requestURL, err)
		}
		requestBody = bytes.NewReader(data)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed creating request to %v: %w", requestURL, err)
	}

	request.Header.Add("Authorization", fmt.Sprintf("token %v", c.accessToken))
	request.Header.Add("Accept", "application/vnd.github.v3+json")
	if body != nil {
		request.Header.Add("Content-Type", "application/json")
	}

	httpClient := pester.New()
	httpClient.MaxRetries = 3
	httpClient.Backoff = pester.ExponentialJitterBackoff
	httpClient.KeepLog = true
	httpClient.Timeout = 20 * time.Second

	response, err := httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed performing http request to %v: %w", requestURL, err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		response.Body.Close()
		return nil, fmt.Errorf("request to %v returned status %v", requestURL, response.StatusCode)
	}

	return response, nil
}
