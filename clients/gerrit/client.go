package gerrit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sethgrid/pester"
)

// Client posts review votes to the gerrit REST API
//go:generate mockgen -package=gerrit -destination ./mock.go -source=client.go
type Client interface {
	PostReview(ctx context.Context, change, patchset int, review Review) error
}

// Review is the body of a gerrit set-review call.
type Review struct {
	Message string            `json:"message"`
	Labels  map[string]string `json:"labels"`
}

// NewClient returns a new gerrit.Client
func NewClient(apiBaseURL, username, password string) Client {
	return &client{
		apiBaseURL: apiBaseURL,
		username:   username,
		password:   password,
	}
}

type client struct {
	apiBaseURL string
	username   string
	password   string
}

func (c *client) PostReview(ctx context.Context, change, patchset int, review Review) error {

	reviewURL := fmt.Sprintf("%v/a/changes/%v/revisions/%v/review", c.apiBaseURL, change, patchset)

	data, err := json.Marshal(review)
	if err != nil {
		return fmt.Errorf("failed marshalling review for change %v: %w", change, err)
	}

	request, err := http.NewRequestWithContext(ctx, "POST", reviewURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed creating request to %v: %w", reviewURL, err)
	}
	request.SetBasicAuth(c.username, c.password)
	request.Header.Add("Content-Type", "application/json")

	httpClient := pester.New()
	httpClient.MaxRetries = 3
	httpClient.Backoff = pester.ExponentialJitterBackoff
	httpClient.KeepLog = true
	httpClient.Timeout = 20 * time.Second

	response, err := httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("failed performing http request to %v: %w", reviewURL, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("posting review for change %v returned status %v", change, response.StatusCode)
	}

	log.Debug().Str("url", reviewURL).Msg("Posted review to gerrit")

	return nil
}
