// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package playlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/spezifisch/streamplay/logger"
)

var ErrEmptyBody = errors.New("response body is nil")

// Fetcher loads the playlist once.
type Fetcher interface {
	Fetch() (Playlist, error)
}

type Client struct {
	Url string

	httpClient *http.Client
	logger     logger.LoggerInterface
}

var _ Fetcher = (*Client)(nil)

func NewClient(url string, logger logger.LoggerInterface) *Client {
	return &Client{
		Url: url,

		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// Fetch issues one unauthenticated GET and decodes the JSON array.
func (c *Client) Fetch() (Playlist, error) {
	body, err := c.getResponse("Fetch", c.Url)
	if err != nil {
		return nil, err
	}

	var pl Playlist
	if err := json.Unmarshal(body, &pl); err != nil {
		return nil, fmt.Errorf("[Fetch] failed to unmarshal playlist: %w", err)
	}
	if pl == nil {
		// "null" decodes to a nil slice; keep absent distinct from empty
		pl = Playlist{}
	}
	c.logger.Printf("playlist: fetched %d entries from %s", len(pl), c.Url)
	return pl, nil
}

func (c *Client) getResponse(caller, requestUrl string) ([]byte, error) {
	res, err := c.httpClient.Get(requestUrl)
	if err != nil {
		return nil, fmt.Errorf("[%s] failed to make GET request: %w", caller, err)
	}

	if res.Body != nil {
		defer res.Body.Close()
	} else {
		return nil, fmt.Errorf("[%s] %w", caller, ErrEmptyBody)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("[%s] unexpected status code: %d, status: %s", caller, res.StatusCode, res.Status)
	}

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("[%s] failed to read response body: %w", caller, err)
	}
	return responseBody, nil
}
