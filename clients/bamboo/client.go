package bamboo

import (
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

// Client queues pre-merge core builds in the bamboo CI system
//go:generate mockgen -package=bamboo -destination ./mock.go -source=client.go
type Client interface {
	TriggerBuild(ctx context.Context, planKey, changeURL string, patchset int) (api.BuildTriggered, error)
}

// NewClient returns a new bamboo.Client
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

func (c *client) TriggerBuild(ctx context.Context, planKey, changeURL string, patchset int) (api.BuildTriggered, error) {

	query := url.Values{}
	query.Set("stage", "")
	query.Set("executeAllStages", "")
	query.Set("bamboo.variable.changeUrl", changeURL)
	query.Set("bamboo.variable.patchset", fmt.Sprintf("%v", patchset))
	queueURL := fmt.Sprintf("%v/rest/api/latest/queue/%v?%v", c.apiBaseURL, planKey, query.Encode())

	request, err := http.NewRequestWithContext(ctx, "POST", queueURL, nil)
	if err != nil {
		return api.BuildTriggered{}, fmt.Errorf("failed creating request to %v: %w", queueURL, err)
	}
	request.SetBasicAuth(c.username, c.password)
	request.Header.Add("Accept", "application/json")

	httpClient := pester.New()
	httpClient.MaxRetries = 3
	httpClient.Backoff = pester.ExponentialJitterBackoff
	httpClient.KeepLog = true
	httpClient.Timeout = 20 * time.Second

	response, err := httpClient.Do(request)
	if err != nil {
		return api.BuildTriggered{}, fmt.Errorf("failed performing http request to %v: %w", queueURL, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return api.BuildTriggered{}, fmt.Errorf("queueing build for plan %v returned status %v", planKey, response.StatusCode)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return api.BuildTriggered{}, fmt.Errorf("failed reading response from %v: %w", queueURL, err)
	}

	var triggered api.BuildTriggered
	if err := json.Unmarshal(data, &triggered); err != nil {
		return api.BuildTriggered{}, fmt.Errorf("failed unmarshalling response from %v: %w", queueURL, err)
	}

	log.Debug().Str("planKey", planKey).Str("buildResultKey", triggered.BuildResultKey).Msg("Queued core build")

	return triggered, nil
}
