package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/hyperengineering/icp/internal/batch"
	"github.com/hyperengineering/icp/internal/config"
	"github.com/hyperengineering/icp/internal/icp"
	"github.com/hyperengineering/icp/internal/labels"
	"github.com/hyperengineering/icp/internal/onboarding"
	"github.com/hyperengineering/icp/internal/types"
	"github.com/hyperengineering/icp/internal/validation"
	"github.com/hyperengineering/icp/pkg/icpclient"
)

var (
	classifyGoal          string
	classifyTraining      string
	classifyAge           string
	classifySleep         string
	classifyCaffeine      string
	classifyMetabolic     bool
	classifyConstraints   []string
	classifySensitivities []string
	classifyLabels        bool
	classifyFile          string
	classifyWorkers       int
	classifyServer        string
	classifyAPIKey        string
	classifyJSON          bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify one respondent, or a JSONL file of them",
	Long: `Classify a single input record given by flags, or every line of a JSONL file.

By default flags and file lines use canonical codes (e.g. --goal energy_clarity).
With --labels they carry questionnaire option labels instead
(e.g. --goal "Longevity baseline"); metabolic context is then derived from
--sensitivity. With --server the request is sent to a running service.`,
	Args: cobra.NoArgs,
	RunE: runClassify,
}

func init() {
	f := classifyCmd.Flags()
	f.StringVar(&classifyGoal, "goal", "", "Primary goal")
	f.StringVar(&classifyTraining, "training", "", "Training frequency")
	f.StringVar(&classifyAge, "age", "", "Age band")
	f.StringVar(&classifySleep, "sleep", "", "Sleep baseline")
	f.StringVar(&classifyCaffeine, "caffeine", "", "Caffeine use")
	f.BoolVar(&classifyMetabolic, "metabolic", false, "Metabolic context (codes mode only)")
	f.StringSliceVar(&classifyConstraints, "constraint", nil, "Constraint (repeatable)")
	f.StringSliceVar(&classifySensitivities, "sensitivity", nil, "Sensitivity label (repeatable, --labels only)")
	f.BoolVar(&classifyLabels, "labels", false, "Interpret values as questionnaire option labels")
	f.StringVar(&classifyFile, "file", "", "JSONL file of records to classify (- for stdin)")
	f.IntVar(&classifyWorkers, "workers", 0, "Concurrent workers for --file (default batch.workers from config)")
	f.StringVar(&classifyServer, "server", "", "Classify via a running service at this URL")
	f.StringVar(&classifyAPIKey, "api-key", "", "API key for --server (default $ICP_API_KEY)")
	f.BoolVar(&classifyJSON, "json", false, "Output in JSON format")
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	if classifyFile != "" {
		if classifyServer != "" {
			return errors.New("--file and --server cannot be combined")
		}
		return runClassifyFile(ctx, cmd)
	}
	if classifyServer != "" {
		return runClassifyRemote(ctx, cmd)
	}

	if classifyLabels {
		answers := answersFromFlags()
		renderDrift(cmd.ErrOrStderr(), answers.Drift())
		in, ok := answers.Input()
		if !ok {
			return fmt.Errorf("missing answers: %s", strings.Join(answers.Missing(), ", "))
		}
		return printClassification(cmd.OutOrStdout(), ulid.Make().String(), icp.Classify(in))
	}

	req := requestFromFlags()
	if errs := validation.ValidateClassifyRequest(req); len(errs) > 0 {
		return validationError(errs)
	}
	return printClassification(cmd.OutOrStdout(), ulid.Make().String(), icp.Classify(req.Input()))
}

func requestFromFlags() types.ClassifyRequest {
	return types.ClassifyRequest{
		Goal:              classifyGoal,
		TrainingFrequency: classifyTraining,
		AgeBand:           classifyAge,
		SleepBaseline:     classifySleep,
		CaffeineUse:       classifyCaffeine,
		MetabolicContext:  classifyMetabolic,
		Constraints:       classifyConstraints,
	}
}

func answersFromFlags() onboarding.Answers {
	return onboarding.Answers{
		PrimaryGoal:       classifyGoal,
		TrainingFrequency: classifyTraining,
		AgeBand:           classifyAge,
		SleepBaseline:     classifySleep,
		CaffeineUse:       classifyCaffeine,
		Constraints:       classifyConstraints,
		Sensitivities:     classifySensitivities,
	}
}

func validationError(errs []validation.ValidationError) error {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = fmt.Sprintf("%s %s", e.Field, e.Message)
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}

func printClassification(w io.Writer, evaluationID string, res icp.Result) error {
	if classifyJSON {
		return printJSON(w, types.NewClassifyResponse(evaluationID, &res))
	}
	renderResult(w, evaluationID, res)
	return nil
}

func runClassifyRemote(ctx context.Context, cmd *cobra.Command) error {
	apiKey := classifyAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("ICP_API_KEY")
	}
	client := icpclient.New(classifyServer, apiKey)

	var (
		c     *icpclient.Classification
		drift []onboarding.Drift
	)
	if classifyLabels {
		a := answersFromFlags()
		resp, err := client.ClassifyAnswers(ctx, icpclient.Answers{
			PrimaryGoal:       a.PrimaryGoal,
			TrainingFrequency: a.TrainingFrequency,
			AgeBand:           a.AgeBand,
			SleepBaseline:     a.SleepBaseline,
			CaffeineUse:       a.CaffeineUse,
			Constraints:       a.Constraints,
			Sensitivities:     a.Sensitivities,
		})
		if err != nil {
			return err
		}
		if resp.Result == nil {
			return fmt.Errorf("missing answers: %s", strings.Join(resp.Missing, ", "))
		}
		for _, d := range resp.Drift {
			drift = append(drift, onboarding.Drift{Dimension: labels.Dimension(d.Dimension), Label: d.Label})
		}
		c = &resp.Classification
	} else {
		req := requestFromFlags()
		resp, err := client.Classify(ctx, icpclient.Input{
			Goal:              req.Goal,
			TrainingFrequency: req.TrainingFrequency,
			AgeBand:           req.AgeBand,
			SleepBaseline:     req.SleepBaseline,
			CaffeineUse:       req.CaffeineUse,
			MetabolicContext:  req.MetabolicContext,
			Constraints:       req.Constraints,
		})
		if err != nil {
			return err
		}
		c = resp
	}

	res, err := fromClientResult(c.Result)
	if err != nil {
		return err
	}
	renderDrift(cmd.ErrOrStderr(), drift)
	return printClassification(cmd.OutOrStdout(), c.EvaluationID, res)
}

// fromClientResult checks a server result before it is rendered.
func fromClientResult(r *icpclient.Result) (icp.Result, error) {
	if r == nil {
		return icp.Result{}, errors.New("server returned no result")
	}
	primary, err := icp.ParseCategory(r.PrimaryICP)
	if err != nil {
		return icp.Result{}, fmt.Errorf("server result: %w", err)
	}
	scores := make(icp.Scores, len(r.Scores))
	for k, v := range r.Scores {
		scores[icp.Category(k)] = v
	}
	return icp.Result{
		Primary:    primary,
		Scores:     scores,
		Confidence: icp.Confidence(r.Confidence),
	}, nil
}

func runClassifyFile(ctx context.Context, cmd *cobra.Command) error {
	var r io.Reader
	if classifyFile == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(classifyFile)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	workers := classifyWorkers
	if !cmd.Flags().Changed("workers") {
		cfg, err := config.LoadLocal()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		workers = cfg.Batch.Workers
	}

	format := batch.FormatCodes
	if classifyLabels {
		format = batch.FormatAnswers
	}
	outcomes, err := batch.Classify(ctx, r, batch.Options{Workers: workers, Format: format})
	if err != nil {
		return err
	}
	summary := batch.Summarize(outcomes)

	out := cmd.OutOrStdout()
	if classifyJSON {
		return printJSON(out, map[string]any{
			"outcomes": outcomes,
			"summary":  summary,
		})
	}

	w := newTabWriter(out)
	fmt.Fprintln(w, "LINE\tPRIMARY\tCONFIDENCE\tRULE\tDETAIL")
	for _, o := range outcomes {
		if o.OK() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", o.Line, o.Result.Primary, o.Result.Confidence, o.Rule, o.Result.Primary.DisplayName())
			continue
		}
		fmt.Fprintf(w, "%d\t-\t-\t-\t%s\n", o.Line, outcomeError(o))
	}
	w.Flush()

	fmt.Fprintf(out, "\n%d classified, %d failed\n", summary.Total-summary.Failed, summary.Failed)
	for _, c := range icp.Categories() {
		fmt.Fprintf(out, "  %-15s %d\n", c, summary.ByPrimary[c])
	}
	return nil
}

func outcomeError(o batch.Outcome) string {
	switch {
	case len(o.Errors) > 0:
		return validationError(o.Errors).Error()
	case len(o.Missing) > 0:
		return "missing answers: " + strings.Join(o.Missing, ", ")
	default:
		return o.Error
	}
}
