package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tensor-field/internal/core"
	"tensor-field/internal/logging"
	"tensor-field/internal/render"
	"tensor-field/internal/scenario"
)

type runOptions struct {
	ticks      int
	interval   time.Duration
	timeout    time.Duration
	pngPath    string
	pngScale   int
	jsonOutput bool
	trace      bool
}

// runSummary is the --json output of the run command.
type runSummary struct {
	RunID    string       `json:"run_id"`
	Scenario string       `json:"scenario"`
	Ticks    int          `json:"ticks"`
	State    string       `json:"state"`
	X        float64      `json:"x"`
	Y        float64      `json:"y"`
	Angle    float64      `json:"angle"`
	Stopped  string       `json:"stopped,omitempty"`
	Trail    []core.Point `json:"trail,omitempty"`
}

func (a *App) newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a scenario and report the final position",
		Long: `Run a scenario headlessly.

Examples:
  # Run and print a summary
  fieldtrace run corner.yaml

  # Override the tick budget and write the path over the field as PNG
  fieldtrace run corner.yaml --ticks 2000 --png corner.png

  # Pace ticks like an animation frame and emit JSON with the full trail
  fieldtrace run corner.yaml --interval 16ms --json --trace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScenario(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().IntVar(&opts.ticks, "ticks", 0, "Tick budget (overrides the scenario)")
	cmd.Flags().DurationVar(&opts.interval, "interval", 0, "Delay between ticks, 0 runs as fast as possible")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Abort the run after this long")
	cmd.Flags().StringVar(&opts.pngPath, "png", "", "Write the field and trajectory to this PNG file")
	cmd.Flags().IntVar(&opts.pngScale, "png-scale", render.DefaultExportOptions().Scale, "Pixels per field cell in the PNG")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the summary as JSON")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "Include every visited position in the output")
	return cmd
}

func (a *App) runScenario(ctx context.Context, path string, opts *runOptions) error {
	s, err := scenario.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	if opts.ticks > 0 {
		s.Ticks = opts.ticks
	}

	runID := uuid.New().String()
	logging.Info().
		Add(logging.RunID(runID)).
		Add(logging.Str("scenario", s.Name)).
		Add(logging.Str("preset", s.Field.Preset)).
		Add(logging.Int("tick_budget", s.Ticks)).
		Msg("run started")

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var frames <-chan time.Time
	if opts.interval > 0 {
		ticker := time.NewTicker(opts.interval)
		defer ticker.Stop()
		frames = ticker.C
	} else {
		frames = scenario.Immediate(ctx)
	}

	start := time.Now()
	res, err := scenario.Run(ctx, s, frames)
	if err != nil {
		return fmt.Errorf("run %s failed: %w", runID, err)
	}

	for i, p := range res.Trail {
		logging.Debug().
			Add(logging.RunID(runID)).
			Add(logging.Int("index", i)).
			Add(logging.Point("pos", p.X, p.Y)).
			Msg("visited")
	}
	done := logging.Info().
		Add(logging.RunID(runID)).
		Add(logging.Ticks(res.Ticks)).
		Add(logging.State(string(res.Final.State))).
		Add(logging.Point("pos", res.Final.Position.X, res.Final.Position.Y)).
		Add(logging.Str("elapsed", time.Since(start).String()))
	if res.Err != nil {
		done.Add(logging.Err(res.Err))
	}
	done.Msg("run finished")

	if opts.pngPath != "" {
		exportOpts := render.DefaultExportOptions()
		exportOpts.Scale = opts.pngScale
		snap := render.Snapshot{
			Size:    res.Field.Size(),
			Cells:   res.Field.Cells(),
			Tint:    res.Field.Tint(),
			Trail:   res.Trail,
			Mote:    res.Final.Position,
			HasMote: res.Final.HasPosition,
		}
		if err := render.SavePNG(opts.pngPath, snap, exportOpts); err != nil {
			return err
		}
		logging.Info().Add(logging.RunID(runID)).Add(logging.Str("path", opts.pngPath)).Msg("png written")
	}

	return a.printSummary(runID, s, res, opts)
}

func (a *App) printSummary(runID string, s *scenario.Scenario, res *scenario.Result, opts *runOptions) error {
	summary := runSummary{
		RunID:    runID,
		Scenario: s.Name,
		Ticks:    res.Ticks,
		State:    string(res.Final.State),
		X:        res.Final.Position.X,
		Y:        res.Final.Position.Y,
		Angle:    res.Final.Angle,
	}
	if res.Err != nil {
		summary.Stopped = res.Err.Error()
	}
	if opts.trace {
		summary.Trail = res.Trail
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Fprintf(a.stdout, "Run:      %s\n", summary.RunID)
	fmt.Fprintf(a.stdout, "Scenario: %s\n", summary.Scenario)
	fmt.Fprintf(a.stdout, "Ticks:    %d\n", summary.Ticks)
	fmt.Fprintf(a.stdout, "State:    %s\n", summary.State)
	fmt.Fprintf(a.stdout, "Position: %.3f, %.3f\n", summary.X, summary.Y)
	if summary.Stopped != "" {
		fmt.Fprintf(a.stdout, "Stopped:  %s\n", summary.Stopped)
	}
	if opts.trace {
		for _, p := range summary.Trail {
			fmt.Fprintf(a.stdout, "%.3f\t%.3f\n", p.X, p.Y)
		}
	}
	return nil
}
