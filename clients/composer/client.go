package composer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sethgrid/pester"

	"github.com/linawolf/site-intercept/api"
)

// Client fetches composer.json manifests from raw repository URLs
//go:generate mockgen -package=composer -destination ./mock.go -source=client.go
type Client interface {
	GetComposerJSON(ctx context.Context, manifestURL string) (api.ComposerJSON, error)
}

// NewClient returns a new composer.Client
func NewClient() Client {
	return &client{}
}

type client struct {
}

func (c *client) GetComposerJSON(ctx context.Context, manifestURL string) (api.ComposerJSON, error) {

	request, err := http.NewRequestWithContext(ctx, "GET", manifestURL, nil)
	if err != nil {
		return api.ComposerJSON{}, fmt.Errorf("failed creating request to %v: %w", manifestURL, err)
	}

	httpClient := pester.New()
	httpClient.MaxRetries = 3
	httpClient.Backoff = pester.ExponentialJitterBackoff
	httpClient.KeepLog = true
	httpClient.Timeout = 20 * time.Second

	response, err := httpClient.Do(request)
	if err != nil {
		return api.ComposerJSON{}, fmt.Errorf("failed performing http request to %v: %w", manifestURL, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return api.ComposerJSON{}, fmt.Errorf("fetching %v returned status %v", manifestURL, response.StatusCode)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return api.ComposerJSON{}, fmt.Errorf("failed reading response from %v: %w", manifestURL, err)
	}

	manifest, err := api.UnmarshalComposerJSON(data)
	if err != nil {
		return api.ComposerJSON{}, err
	}

	log.Debug().Str("url", manifestURL).Str("package", manifest.Name).Msg("Fetched composer.json")

	return manifest, nil
}
