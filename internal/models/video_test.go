// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package models

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestVideoCandidate_MarshalCanonical(t *testing.T) {
	t.Parallel()

	v := VideoCandidate{
		VideoID:      "vid1",
		Title:        "Flexbox in 10 minutes",
		ChannelTitle: "CSS Daily",
		ThumbnailURL: "https://i.ytimg.com/vi/vid1/hqdefault.jpg",
	}

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	id, _ := got["id"].(map[string]any)
	if id["videoId"] != "vid1" {
		t.Errorf("id.videoId = %v", id["videoId"])
	}
	snippet, _ := got["snippet"].(map[string]any)
	if snippet["title"] != "Flexbox in 10 minutes" || snippet["channelTitle"] != "CSS Daily" {
		t.Errorf("snippet = %v", snippet)
	}
	high := snippet["thumbnails"].(map[string]any)["high"].(map[string]any)
	if high["url"] != "https://i.ytimg.com/vi/vid1/hqdefault.jpg" {
		t.Errorf("thumbnail url = %v", high["url"])
	}
}

func TestVideoCandidate_PassthroughFields(t *testing.T) {
	t.Parallel()

	in := `{"kind":"youtube#searchResult","etag":"abc","id":{"kind":"youtube#video","videoId":"vid2"},` +
		`"snippet":{"title":"Grid","channelTitle":"Layouts","publishedAt":"2024-01-02T00:00:00Z",` +
		`"thumbnails":{"high":{"url":"u","width":480}}}}`

	var v VideoCandidate
	if err := json.Unmarshal([]byte(in), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.VideoID != "vid2" || v.Title != "Grid" || v.ChannelTitle != "Layouts" || v.ThumbnailURL != "u" {
		t.Errorf("projection = %+v", v)
	}

	out, err := json.Marshal([]VideoCandidate{v})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"etag":"abc"`, `"publishedAt":"2024-01-02T00:00:00Z"`, `"width":480`} {
		if !strings.Contains(string(out), want) {
			t.Errorf("output %s missing passthrough %s", out, want)
		}
	}
}
