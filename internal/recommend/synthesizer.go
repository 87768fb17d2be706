// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package recommend

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tomtom215/learnloop/internal/logging"
	"github.com/tomtom215/learnloop/internal/metrics"
)

// TermSource records where a request's search terms came from.
type TermSource string

const (
	SourceCompletion TermSource = "completion"
	SourcePadded     TermSource = "padded"
	SourceFallback   TermSource = "fallback"
)

// fallbackTerms are used verbatim when the completion service is unusable.
var fallbackTerms = [TermCount]string{
	"study techniques for self-directed learners",
	"beginner programming tutorial full course",
	"how to set and achieve learning goals",
}

// FallbackTerms returns a copy of the fixed fallback list.
func FallbackTerms() []string {
	return append([]string(nil), fallbackTerms[:]...)
}

// Synthesis is the outcome of query synthesis. Terms always has TermCount entries.
type Synthesis struct {
	Terms  []string
	Source TermSource
}

// Synthesizer turns a goal summary into search terms with one completion call.
type Synthesizer struct {
	completer Completer
	timeout   time.Duration
}

// NewSynthesizer creates a Synthesizer. A zero timeout leaves the call
// bounded only by ctx.
func NewSynthesizer(completer Completer, timeout time.Duration) *Synthesizer {
	return &Synthesizer{completer: completer, timeout: timeout}
}

// Synthesize never fails: completion errors and unusable output are logged
// and replaced by fallback terms.
func (s *Synthesizer) Synthesize(ctx context.Context, summary GoalSummary) Synthesis {
	log := logging.Ctx(ctx)

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.completer.Complete(callCtx, BuildPrompt(summary))
	if err != nil {
		log.Warn().Err(err).Msg("completion failed, using fallback search terms")
		metrics.RecordSynthesisFallback("completion_error")
		return Synthesis{Terms: FallbackTerms(), Source: SourceFallback}
	}

	terms, err := ParseSearchTerms(text)
	if err != nil {
		log.Warn().Err(err).Int("response_len", len(text)).Msg("unusable completion, using fallback search terms")
		metrics.RecordSynthesisFallback("no_usable_lines")
		return Synthesis{Terms: FallbackTerms(), Source: SourceFallback}
	}

	if len(terms) < TermCount {
		log.Debug().Int("parsed", len(terms)).Msg("padding search terms from fallback list")
		metrics.RecordSynthesisFallback("padded")
		return Synthesis{Terms: padTerms(terms), Source: SourcePadded}
	}

	return Synthesis{Terms: terms, Source: SourceCompletion}
}

// BuildPrompt renders the completion prompt for a goal summary.
func BuildPrompt(summary GoalSummary) string {
	var b strings.Builder
	b.WriteString("You help a self-directed learner find study videos on YouTube.\n\n")
	b.WriteString("Goals already completed: ")
	b.WriteString(joinOrNone(summary.CompletedNames))
	b.WriteString("\nGoals in progress: ")
	b.WriteString(joinOrNone(summary.IncompleteNames))
	b.WriteString("\n\nWrite exactly 3 distinct YouTube search phrases that help with the goals in progress ")
	b.WriteString("and build on the completed ones. Put one phrase per line. ")
	b.WriteString("Do not number the lines, do not add quotes, and do not write anything else.")
	return b.String()
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "; ")
}

var (
	// "1.", "2)", "3:", "4 -" and bullet markers at line start. A colon or
	// hyphen after digits counts only when followed by space, so "2-week"
	// stays intact.
	enumPrefix = regexp.MustCompile(`^(?:\d+\s*[.)]|\d+\s*[:\-](?:\s|$)|[-*•+]\s)\s*`)
	emphasis   = "*_`\"“”"
)

// ParseSearchTerms extracts up to TermCount search terms from completion
// output. Lines are taken in order after stripping enumeration markers and
// surrounding emphasis. Blank lines, lead-in lines ending in ':' and
// case-insensitive repeats are skipped. Terms are capped at MaxTermLength runes.
func ParseSearchTerms(text string) ([]string, error) {
	terms := make([]string, 0, TermCount)
	seen := make(map[string]struct{}, TermCount)

	for _, line := range strings.Split(text, "\n") {
		term := cleanLine(line)
		if term == "" || strings.HasSuffix(term, ":") {
			continue
		}
		key := strings.ToLower(term)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		terms = append(terms, term)
		if len(terms) == TermCount {
			break
		}
	}

	if len(terms) == 0 {
		return nil, ErrNoUsableTerms
	}
	return terms, nil
}

// cleanLine strips markup and enumeration until the line stops changing,
// so markup may wrap the number or the number may precede the markup.
func cleanLine(line string) string {
	s := strings.TrimSpace(line)
	for {
		next := strings.TrimSpace(strings.Trim(s, emphasis))
		next = strings.TrimSpace(enumPrefix.ReplaceAllString(next, ""))
		if next == s {
			break
		}
		s = next
	}
	return truncateRunes(s, MaxTermLength)
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:limit]))
}

// padTerms fills terms up to TermCount with fallback terms not already present.
func padTerms(terms []string) []string {
	out := append(make([]string, 0, TermCount), terms...)
	for _, fb := range fallbackTerms {
		if len(out) == TermCount {
			break
		}
		dup := false
		for _, t := range out {
			if strings.EqualFold(t, fb) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, fb)
		}
	}
	return out
}
