// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package models

import (
	"github.com/goccy/go-json"
)

// VideoCandidate is one search result returned by the video provider.
//
// Raw holds the provider's item exactly as received. When present it is what
// MarshalJSON emits; the typed fields are a read-only projection used for
// dedup and logging.
type VideoCandidate struct {
	VideoID      string
	Title        string
	ChannelTitle string
	ThumbnailURL string
	Raw          json.RawMessage
}

type candidateWire struct {
	ID      candidateID      `json:"id"`
	Snippet candidateSnippet `json:"snippet"`
}

type candidateID struct {
	VideoID string `json:"videoId"`
}

type candidateSnippet struct {
	Title        string              `json:"title"`
	ChannelTitle string              `json:"channelTitle"`
	Thumbnails   candidateThumbnails `json:"thumbnails"`
}

type candidateThumbnails struct {
	High candidateThumbnail `json:"high"`
}

type candidateThumbnail struct {
	URL string `json:"url"`
}

// MarshalJSON emits the provider payload, or the canonical id/snippet shape
// when the candidate was built without one.
//
//nolint:gocritic // value receiver so both VideoCandidate and *VideoCandidate marshal the same way
func (v VideoCandidate) MarshalJSON() ([]byte, error) {
	if len(v.Raw) > 0 {
		return v.Raw, nil
	}
	return json.Marshal(candidateWire{
		ID: candidateID{VideoID: v.VideoID},
		Snippet: candidateSnippet{
			Title:        v.Title,
			ChannelTitle: v.ChannelTitle,
			Thumbnails:   candidateThumbnails{High: candidateThumbnail{URL: v.ThumbnailURL}},
		},
	})
}

// UnmarshalJSON reads a provider item, keeping the full payload in Raw.
func (v *VideoCandidate) UnmarshalJSON(data []byte) error {
	var w candidateWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	v.VideoID = w.ID.VideoID
	v.Title = w.Snippet.Title
	v.ChannelTitle = w.Snippet.ChannelTitle
	v.ThumbnailURL = w.Snippet.Thumbnails.High.URL
	v.Raw = append(v.Raw[:0], data...)
	return nil
}
