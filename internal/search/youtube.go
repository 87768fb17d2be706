// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package search

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/tomtom215/learnloop/internal/circuitbreaker"
	"github.com/tomtom215/learnloop/internal/config"
	"github.com/tomtom215/learnloop/internal/logging"
	"github.com/tomtom215/learnloop/internal/metrics"
	"github.com/tomtom215/learnloop/internal/models"
)

const providerName = "youtube"

// maxPageSize is the largest maxResults search.list accepts.
const maxPageSize = 50

// YouTubeClient searches videos through the YouTube Data API.
type YouTubeClient struct {
	service       *youtube.Service
	retryAttempts int
	retryDelay    time.Duration
	breaker       *circuitbreaker.Breaker[[]models.VideoCandidate]
}

// NewYouTubeClient creates a client authenticated with cfg.APIKey. Extra
// options are appended, which tests use to redirect the endpoint.
func NewYouTubeClient(ctx context.Context, cfg *config.SearchConfig, opts ...option.ClientOption) (*YouTubeClient, error) {
	if cfg.APIKey == "" && len(opts) == 0 {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	clientOpts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	clientOpts = append(clientOpts, opts...)

	svc, err := youtube.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &YouTubeClient{
		service:       svc,
		retryAttempts: cfg.RetryAttempts,
		retryDelay:    cfg.RetryDelay,
		breaker:       circuitbreaker.New[[]models.VideoCandidate](providerName, circuitbreaker.Settings{}),
	}, nil
}

// Search returns up to maxResults videos for query in provider order.
func (c *YouTubeClient) Search(ctx context.Context, query string, maxResults int, longFormOnly bool) ([]models.VideoCandidate, error) {
	if maxResults <= 0 {
		return []models.VideoCandidate{}, nil
	}
	if maxResults > maxPageSize {
		maxResults = maxPageSize
	}

	var results []models.VideoCandidate
	err := c.retryWithBackoff(ctx, func() error {
		start := time.Now()
		out, err := c.breaker.Execute(func() ([]models.VideoCandidate, error) {
			return c.searchOnce(ctx, query, maxResults, longFormOnly)
		})
		metrics.RecordExternalCall(providerName, time.Since(start), err)
		if err != nil {
			return err
		}
		results = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (c *YouTubeClient) searchOnce(ctx context.Context, query string, maxResults int, longFormOnly bool) ([]models.VideoCandidate, error) {
	call := c.service.Search.List([]string{"id", "snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(maxResults))
	if longFormOnly {
		call = call.VideoDuration("long")
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, classify(fmt.Errorf("youtube search %q: %w", query, err))
	}

	candidates := make([]models.VideoCandidate, 0, len(resp.Items))
	for _, item := range resp.Items {
		candidates = append(candidates, toCandidate(item))
	}
	return candidates, nil
}

// toCandidate projects a search result. Missing nested fields leave the
// projection empty; the raw item is always kept.
func toCandidate(item *youtube.SearchResult) models.VideoCandidate {
	var v models.VideoCandidate
	if item == nil {
		return v
	}
	if item.Id != nil {
		v.VideoID = item.Id.VideoId
	}
	if s := item.Snippet; s != nil {
		v.Title = s.Title
		v.ChannelTitle = s.ChannelTitle
		if s.Thumbnails != nil && s.Thumbnails.High != nil {
			v.ThumbnailURL = s.Thumbnails.High.Url
		}
	}
	if raw, err := json.Marshal(item); err == nil {
		v.Raw = raw
	}
	return v
}

// retryWithBackoff runs fn, retrying transient failures with a doubling
// delay. Waits are canceled with ctx.
func (c *YouTubeClient) retryWithBackoff(ctx context.Context, fn func() error) error {
	delay := c.retryDelay
	var err error

	for attempt := 0; attempt <= c.retryAttempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err = fn()
		if err == nil || !isTransient(err) {
			return err
		}

		if attempt < c.retryAttempts {
			logging.Ctx(ctx).Debug().Err(err).
				Int("attempt", attempt+1).
				Int("max_attempts", c.retryAttempts+1).
				Dur("delay", delay).
				Msg("Retrying search")
			metrics.RecordExternalRetry(providerName)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay *= 2
		}
	}

	return fmt.Errorf("max retry attempts reached: %w", err)
}
