// Package feedclient implements the HTTP transport side of the Feed Decoder
// (spec §4.A): fetching the feed document over HTTP and handing its body to
// feed.Decode, normalizing whatever goes wrong into an *updateerr.Error.
package feedclient

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/caldera-labs/aupdate/internal/constants"
	"github.com/caldera-labs/aupdate/internal/domain/feed"
	updateerr "github.com/caldera-labs/aupdate/internal/errors"
)

// URIProvider supplies the feed URL to request, indirecting the client from
// a fixed configuration value per spec §6's feedUriProvider option.
type URIProvider interface {
	FeedURI() string
}

// StaticURI is a URIProvider that always returns the same URL.
type StaticURI string

// FeedURI implements URIProvider.
func (u StaticURI) FeedURI() string { return string(u) }

// Client fetches and decodes the update feed over HTTP.
type Client struct {
	httpClient *http.Client
	uri        URIProvider
}

// New constructs a Client. If httpClient is nil, a client with the package's
// default timeout is used.
func New(uri URIProvider, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.ClientTimeoutSec * time.Second}
	}

	return &Client{httpClient: httpClient, uri: uri}
}

// Fetch implements update.FeedFetcher: it issues a GET against the
// configured feed URL and decodes the response body.
func (c *Client) Fetch(ctx context.Context) ([]feed.Category, error) {
	url := c.uri.FeedURI()

	logrus.Debugf("fetching feed from %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, updateerr.New("feedclient.Fetch", updateerr.TransportFailed, err)
	}

	req.Header.Set("User-Agent", "aupdate")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, updateerr.Normalize("feedclient.Fetch", 0, err)
	}

	defer func() { _ = resp.Body.Close() }()

	logrus.Debugf("feed response status: %d", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, updateerr.New("feedclient.Fetch", updateerr.ResponseUnsuccessful,
			errHTTPStatus(resp.StatusCode))
	}

	categories, err := feed.Decode(resp.Body)
	if err != nil {
		return nil, err // feed.Decode already returns an *updateerr.Error
	}

	return categories, nil
}
