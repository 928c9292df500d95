package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/persona/internal/imageload"
	"github.com/abhisek/persona/internal/quiz"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Fetch every question image once and report its load state",
	Long: `Fetch each question's image the same way the quiz does and print the
resulting load state. Each image is fetched independently, as in the quiz.`,
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().Duration("timeout", 0, "Give up on all fetches after this long (0 = no limit)")
}

// probeResult is the outcome for one question image.
type probeResult struct {
	URL    string
	State  imageload.State
	Err    error
	Decode error
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	fetcher := imageload.NewHTTPFetcher(nil, cfg.Fetch.UserAgent)
	results := probeImages(ctx, fetcher, quiz.DefaultQuestions())

	out := cmd.OutOrStdout()
	for i, r := range results {
		line := fmt.Sprintf("%d. %-8s %s", i+1, r.State.Status, r.URL)
		switch {
		case r.Err != nil:
			line += fmt.Sprintf("  (%v)", r.Err)
		case r.Decode != nil:
			line += fmt.Sprintf("  (%d bytes, undecodable: %v)", len(r.State.Data), r.Decode)
		default:
			line += fmt.Sprintf("  (%d bytes)", len(r.State.Data))
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

// probeImages runs one loader per question concurrently.
func probeImages(ctx context.Context, f imageload.Fetcher, questions []quiz.Question) []probeResult {
	results := make([]probeResult, len(questions))

	g, ctx := errgroup.WithContext(ctx)
	for i, q := range questions {
		g.Go(func() error {
			l := imageload.New(q.ImageURL)
			msg, _ := l.Fetch(ctx, f)().(imageload.LoadedMsg)
			l.Apply(msg)

			r := probeResult{URL: q.ImageURL, State: l.State(), Err: msg.Err}
			if r.State.Status == imageload.StatusSuccess {
				_, r.Decode = imageload.Decode(r.State.Data)
			}
			results[i] = r
			return nil
		})
	}
	_ = g.Wait()
	return results
}
