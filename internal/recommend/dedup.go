// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package recommend

import (
	"github.com/tomtom215/learnloop/internal/metrics"
	"github.com/tomtom215/learnloop/internal/models"
)

// DedupFilter flattens term batches and keeps the first occurrence of every
// unwatched video ID. Candidates without a video ID are dropped.
func DedupFilter(batches [][]models.VideoCandidate, watched WatchedSet) []models.VideoCandidate {
	total := 0
	for _, b := range batches {
		total += len(b)
	}

	out := make([]models.VideoCandidate, 0, total)
	admitted := make(map[string]struct{}, total)

	for _, batch := range batches {
		for _, c := range batch {
			switch {
			case c.VideoID == "":
				metrics.RecordCandidateFiltered("missing_id")
			case watched.Contains(c.VideoID):
				metrics.RecordCandidateFiltered("watched")
			default:
				if _, dup := admitted[c.VideoID]; dup {
					metrics.RecordCandidateFiltered("duplicate")
					continue
				}
				admitted[c.VideoID] = struct{}{}
				out = append(out, c)
			}
		}
	}
	return out
}
