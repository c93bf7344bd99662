// Package batch classifies newline-delimited JSON records concurrently.
//
// Each non-blank line is an independent record. Outcomes are returned in
// input order and a bad line produces an error outcome instead of failing
// the batch. Only I/O errors and context cancellation abort a run.
package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hyperengineering/icp/internal/icp"
	"github.com/hyperengineering/icp/internal/onboarding"
	"github.com/hyperengineering/icp/internal/types"
	"github.com/hyperengineering/icp/internal/validation"
)

// maxLineBytes bounds a single JSONL record.
const maxLineBytes = 1 << 20

// Format selects how each line is decoded.
type Format int

const (
	// FormatCodes lines are canonical input records (types.ClassifyRequest).
	FormatCodes Format = iota
	// FormatAnswers lines are raw questionnaire answers (onboarding.Answers).
	FormatAnswers
)

// Outcome is the classification of one input line.
type Outcome struct {
	Line    int                          `json:"line"`
	Result  *icp.Result                  `json:"result,omitempty"`
	Rule    string                       `json:"rule,omitempty"`
	Missing []string                     `json:"missing,omitempty"`
	Drift   []onboarding.Drift           `json:"drift,omitempty"`
	Errors  []validation.ValidationError `json:"errors,omitempty"`
	Error   string                       `json:"error,omitempty"`
}

// OK reports whether the line produced a classification.
func (o Outcome) OK() bool {
	return o.Result != nil
}

// Options configures a batch run.
type Options struct {
	Workers int
	Format  Format
}

type record struct {
	line int
	data []byte
}

// readRecords reads every non-blank line from r.
func readRecords(r io.Reader) ([]record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	var recs []record
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		recs = append(recs, record{line: line, data: []byte(text)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", line+1, err)
	}
	return recs, nil
}

// Classify reads JSONL records from r and classifies them with at most
// opts.Workers concurrent workers.
func Classify(ctx context.Context, r io.Reader, opts Options) ([]Outcome, error) {
	recs, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return []Outcome{}, nil
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	// Each goroutine writes only its own index.
	outcomes := make([]Outcome, len(recs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(workers, len(recs)))

	for i, rec := range recs {
		i, rec := i, rec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = classifyLine(rec, opts.Format)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func classifyLine(rec record, format Format) Outcome {
	out := Outcome{Line: rec.line}

	var in icp.Input
	switch format {
	case FormatAnswers:
		var answers onboarding.Answers
		if err := json.Unmarshal(rec.data, &answers); err != nil {
			out.Error = fmt.Sprintf("invalid JSON: %v", err)
			return out
		}
		if errs := validation.ValidateAnswers(answers); len(errs) > 0 {
			out.Errors = errs
			return out
		}
		out.Drift = answers.Drift()
		var ok bool
		if in, ok = answers.Input(); !ok {
			out.Missing = answers.Missing()
			out.Error = "incomplete answers"
			return out
		}
	default:
		var req types.ClassifyRequest
		if err := json.Unmarshal(rec.data, &req); err != nil {
			out.Error = fmt.Sprintf("invalid JSON: %v", err)
			return out
		}
		if errs := validation.ValidateClassifyRequest(req); len(errs) > 0 {
			out.Errors = errs
			return out
		}
		in = req.Input()
	}

	res, rule := icp.ClassifyWithRule(in)
	out.Result = &res
	out.Rule = rule
	slog.Debug("batch line classified", "line", rec.line, "primary_icp", res.Primary, "rule", rule)
	return out
}

// Summary counts a batch's outcomes.
type Summary struct {
	Total     int                  `json:"total"`
	Failed    int                  `json:"failed"`
	ByPrimary map[icp.Category]int `json:"by_primary"`
}

// Summarize tallies classified lines per primary category.
// Every category is present in ByPrimary, possibly with zero.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes), ByPrimary: make(map[icp.Category]int)}
	for _, c := range icp.Categories() {
		s.ByPrimary[c] = 0
	}
	for _, o := range outcomes {
		if !o.OK() {
			s.Failed++
			continue
		}
		s.ByPrimary[o.Result.Primary]++
	}
	return s
}
