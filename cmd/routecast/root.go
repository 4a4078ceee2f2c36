package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"route-weather/internal/config"
	"route-weather/internal/dashboard"
	"route-weather/internal/route"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type options struct {
	from      string
	to        string
	stops     []string
	timeRange string
	format    string
	debug     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "routecast",
		Short: "Show the temperature forecast along a route",
		Long: `routecast geocodes the start, each stop and the end, fetches a forecast
for every place it finds and prints the samples together with the route.`,
		Example:      `  routecast --from Denver --stop "Grand Junction" --to "Salt Lake City"`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForecast(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.from, "from", "f", "", "Start point")
	cmd.Flags().StringVarP(&opts.to, "to", "t", "", "End point")
	cmd.Flags().StringArrayVarP(&opts.stops, "stop", "s", nil, "Intermediate stop, repeat for more")
	cmd.Flags().StringVar(&opts.timeRange, "time-range", string(dashboard.TimeRangeToday), "Forecast window: today, 3days or week")
	cmd.Flags().StringVarP(&opts.format, "format", "o", formatText, "Output format: text or json")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "v", false, "Enable debug logs")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runForecast(ctx context.Context, stdout, stderr io.Writer, opts *options) error {
	if opts.format != formatText && opts.format != formatJSON {
		return fmt.Errorf("unknown output format %q", opts.format)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}
	logger := cfg.NewLoggerTo(stderr)

	assembler, err := route.NewAssemblerFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	results := dashboard.NewResultsHandler(assembler)(ctx, opts.from, opts.stops, opts.to, dashboard.ParseTimeRange(opts.timeRange))
	if !results.Triggered {
		return fmt.Errorf("both --from and --to must be non-blank")
	}

	if opts.format == formatJSON {
		return printJSON(stdout, results.Route)
	}
	return printText(stdout, results.Route)
}

func printText(w io.Writer, result route.Result) error {
	if len(result.Points) == 0 {
		_, err := fmt.Fprintln(w, "Route not found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STOP\tPLACE\tLATITUDE\tLONGITUDE\tTIMEZONE")
	for i, p := range result.Points {
		tz := p.Timezone
		if tz == "" {
			tz = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\t%s\n", i+1, p.Label, p.Coordinates.Latitude, p.Coordinates.Longitude, tz)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nDistance: %.1f km\nPolyline: %s\n\n", result.DistanceKm(), result.Polyline())

	if len(result.Samples) == 0 {
		_, err := fmt.Fprintln(w, "No weather data found")
		return err
	}

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PLACE\tTIME\tTEMP (°C)\tWEATHER")
	for _, s := range result.Samples {
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%s\n", s.Location, s.Timestamp, s.Temperature, strings.TrimSpace(s.Condition))
	}
	return tw.Flush()
}

type jsonOutput struct {
	DistanceKm float64 `json:"distance_km"`
	Polyline   string  `json:"polyline"`
	route.Result
}

func printJSON(w io.Writer, result route.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonOutput{
		DistanceKm: result.DistanceKm(),
		Polyline:   result.Polyline(),
		Result:     result,
	})
}
