// Command xgchart draws the rolling xG and xGA chart of a team's season.
//
// Usage:
//
//	xgchart [-config xgchart.yaml] [-input spurs.csv] [-logo spurs.png] [-out chart.png] [-open]
//
// Flags override XG_ environment variables, which override the config file.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/goxg/analysis"
	"github.com/sartorproj/goxg/internal/config"
	"github.com/sartorproj/goxg/internal/logging"
	"github.com/sartorproj/goxg/matches"
	"github.com/sartorproj/goxg/render"
	"github.com/sartorproj/goxg/stats"
)

const openTimeout = 10 * time.Second

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		slog.Error("xgchart failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, logOut io.Writer) error {
	fs := flag.NewFlagSet("xgchart", flag.ContinueOnError)
	fs.SetOutput(logOut)
	configPath := fs.String("config", "", "YAML configuration file")
	input := fs.String("input", "", "match table (.csv or .xlsx)")
	logo := fs.String("logo", "", "team logo image")
	out := fs.String("out", "", "output PNG path")
	open := fs.Bool("open", false, "open the chart in the system viewer")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *input != "" {
		cfg.Input.Path = *input
	}
	if *logo != "" {
		cfg.Chart.LogoPath = *logo
	}
	if *out != "" {
		cfg.Output.Path = *out
	}
	if *open {
		cfg.Output.Open = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.Logging, logOut).With(
		slog.String("run_id", uuid.NewString()),
		slog.String("component", "xgchart"),
	)

	// The table and the logo are independent files.
	var (
		table *matches.Table
		img   image.Image
	)
	var g errgroup.Group
	g.Go(func() error {
		t, err := matches.Load(cfg.Input.Path, cfg.LoadOptions())
		if err != nil {
			return fmt.Errorf("load %s: %w", cfg.Input.Path, err)
		}
		table = t
		return nil
	})
	g.Go(func() error {
		logo, err := render.LoadLogo(cfg.Chart.LogoPath)
		if err != nil {
			return err
		}
		img = logo
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("match table loaded",
		slog.String("path", cfg.Input.Path),
		slog.Int("rows", table.Len()))
	if !table.IsChronological() {
		logger.Warn("match dates are not in chronological order; plotting in file order")
	}

	res, err := analysis.Analyze(table, cfg.AnalysisOptions())
	if err != nil {
		return err
	}
	sum := res.Summary()
	logger.Info("rolling averages computed",
		slog.Int("input_rows", sum.InputRows),
		slog.Int("cleaned_rows", sum.CleanedRows),
		slog.Int("columns", 3),
		slog.Int("window", sum.WindowSize),
		slog.Int("defined_primary", sum.DefinedPrimary),
		slog.Int("defined_secondary", sum.DefinedSecondary))
	for _, w := range res.Warnings {
		logger.Warn(w)
	}
	logTrend(logger, table.PrimaryColumn, res.TrendPrimary)
	logTrend(logger, table.SecondaryColumn, res.TrendSecondary)

	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	fig, err := render.Render(render.InputFromResult(res, img), opts)
	if err != nil {
		return err
	}
	if !fig.SeasonMarker {
		logger.Warn("season boundary is outside the plotted matches",
			slog.Float64("boundary_index", cfg.Chart.SeasonBoundaryIndex),
			slog.Int("matches", res.Cleaned.Len()))
	}

	if err := fig.Save(cfg.Output.Path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	logger.Info("chart saved", slog.String("path", cfg.Output.Path))

	if cfg.Output.Open {
		octx, cancel := context.WithTimeout(ctx, openTimeout)
		defer cancel()
		if err := render.Open(octx, cfg.Output.Path); err != nil {
			logger.Warn("could not open chart viewer", slog.String("error", err.Error()))
		}
	}
	return nil
}

func logTrend(logger *slog.Logger, name string, m *stats.TrendModel) {
	if m == nil {
		return
	}
	logger.Info("trend fitted",
		slog.String("series", name),
		slog.Float64("slope", m.Slope),
		slog.Float64("intercept", m.Intercept),
		slog.Float64("r_squared", m.RSquared),
		slog.Int("points", m.Points))
}
