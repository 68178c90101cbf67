package main

import (
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/spf13/cobra"

	"github.com/subtlepseudonym/skyframe"
	"github.com/subtlepseudonym/skyframe/config"
	"github.com/subtlepseudonym/skyframe/solar"
)

var sunCmd = &cobra.Command{
	Use:   "sun",
	Short: "Report the position of the sun for an observer",
	Long: "Report every step from UTC to the sun's zenith angle for an observer " +
		"on the WGS84 ellipsoid. Location and Earth orientation parameters come " +
		"from the config file unless given as flags.",
	Args: cobra.NoArgs,
	RunE: runSun,
}

func init() {
	f := sunCmd.Flags()
	f.String("time", "", "UTC instant, RFC3339 (default now)")
	f.Float64("lat", 0, "latitude, degrees north")
	f.Float64("lon", 0, "longitude, degrees east")
	f.Float64("height", 0, "height above the ellipsoid, metres")
	f.Float64("dut1", 0, "UT1-UTC, seconds")
	f.Float64("xp", 0, "polar motion x, arcseconds")
	f.Float64("yp", 0, "polar motion y, arcseconds")
	f.Float64("dtr", 0, "TDB-TT, seconds")
	f.Bool("scan", false, "report at every step between --from and --to")
	f.Duration("from", -10*time.Minute, "scan start offset")
	f.Duration("to", 10*time.Minute, "scan end offset")
	f.Duration("step", time.Minute, "scan step")
	f.Bool("events", false, "also print the day's sunrise and sunset")
}

// observerConfig merges the config file, if any, with the command's flags.
func observerConfig(cmd *cobra.Command) (skyframe.Location, solar.EOP, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return skyframe.Location{}, solar.EOP{}, err
	}

	location, eop := cfg.Location, cfg.EOP
	flags := map[string]*float64{
		"lat":    &location.Latitude,
		"lon":    &location.Longitude,
		"height": &location.Height,
		"dut1":   &eop.DUT1,
		"xp":     &eop.XP,
		"yp":     &eop.YP,
		"dtr":    &eop.DTR,
	}
	for name, dst := range flags {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetFloat64(name)
		}
	}

	return location, eop, location.Validate()
}

func runSun(cmd *cobra.Command, args []string) error {
	location, eop, err := observerConfig(cmd)
	if err != nil {
		return err
	}

	when := time.Now()
	if s, _ := cmd.Flags().GetString("time"); s != "" {
		when, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("parse time: %w", err)
		}
	}

	obs, err := solar.NewObserver(when, location.Geodetic())
	if err != nil {
		return err
	}

	calc, err := solar.NewCalculator(obs, eop)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	scan, _ := cmd.Flags().GetBool("scan")
	from, to, step := time.Duration(0), time.Duration(0), time.Second
	if scan {
		from, _ = cmd.Flags().GetDuration("from")
		to, _ = cmd.Flags().GetDuration("to")
		step, _ = cmd.Flags().GetDuration("step")
		if step <= 0 {
			return fmt.Errorf("scan step must be positive: %s", step)
		}
		fmt.Fprintf(out, "Will scan from %+13.6fs to %+13.6fs in steps of %13.6f\n",
			from.Seconds(), to.Seconds(), step.Seconds())
	}

	for offset := from; offset <= to; offset += step {
		if scan {
			fmt.Fprintln(out)
		}
		if err := solar.WriteReport(out, obs, calc.Compute(offset)); err != nil {
			return err
		}
	}

	if events, _ := cmd.Flags().GetBool("events"); events {
		return writeEvents(cmd, location, eop, when)
	}
	return nil
}

// writeEvents prints the day's sunrise and sunset next to the low
// precision sunrise equation for comparison.
func writeEvents(cmd *cobra.Command, location skyframe.Location, eop solar.EOP, day time.Time) error {
	out := cmd.OutOrStdout()
	day = day.UTC()
	y, m, d := day.Date()
	approxRise, approxSet := sunrise.SunriseSunset(location.Latitude, location.Longitude, y, m, d)

	events := []struct {
		name   string
		find   func() (time.Time, error)
		approx time.Time
	}{
		{"Sunrise", func() (time.Time, error) { return solar.Sunrise(location.Geodetic(), day, eop) }, approxRise},
		{"Sunset", func() (time.Time, error) { return solar.Sunset(location.Geodetic(), day, eop) }, approxSet},
	}

	fmt.Fprintln(out)
	for _, e := range events {
		t, err := e.find()
		if err != nil {
			fmt.Fprintf(out, "%-8s %s\n", e.name+":", err)
			continue
		}
		fmt.Fprintf(out, "%-8s %s (sunrise equation %s, %+.0fs)\n",
			e.name+":", t.Format(time.RFC3339), e.approx.Format(time.RFC3339), e.approx.Sub(t).Seconds())
	}
	return nil
}
