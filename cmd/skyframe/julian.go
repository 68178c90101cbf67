package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/subtlepseudonym/skyframe/calendar"
)

var julianCmd = &cobra.Command{
	Use:     "julian YEAR MONTH DAY [HOUR MINUTE SECOND]",
	Aliases: []string{"j"},
	Short:   "Convert a Gregorian date to a Julian date",
	Args:    cobra.RangeArgs(3, 6),
	RunE:    runJulian,
}

var gregorianCmd = &cobra.Command{
	Use:     "gregorian JD [JD2]",
	Aliases: []string{"g"},
	Short:   "Convert a two-part Julian date to a Gregorian date and time",
	Args:    cobra.RangeArgs(1, 2),
	RunE:    runGregorian,
}

func runJulian(cmd *cobra.Command, args []string) error {
	fields := make([]int, 5)
	for i, arg := range args[:min(len(args), 5)] {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("parse %q: %w", arg, err)
		}
		fields[i] = n
	}

	var second float64
	if len(args) == 6 {
		var err error
		second, err = strconv.ParseFloat(args[5], 64)
		if err != nil {
			return fmt.Errorf("parse second %q: %w", args[5], err)
		}
	}

	date, err := calendar.New(fields[0], fields[1], fields[2])
	if err != nil {
		return err
	}

	tod, err := calendar.NewTimeOfDay(fields[3], fields[4], second)
	if err != nil {
		return err
	}

	dt := calendar.DateTime{Date: date, Time: tod}
	jd1, jd2 := dt.Julian()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Gregorian date: %s\n", dt)
	fmt.Fprintf(out, "Julian date:    %.6f = %.1f + %.6f\n", jd1+jd2, jd1, jd2)
	fmt.Fprintf(out, "MJD:            %.6f\n", jd2)
	return nil
}

func runGregorian(cmd *cobra.Command, args []string) error {
	jd1, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("parse julian date %q: %w", args[0], err)
	}

	var jd2 float64
	if len(args) == 2 {
		jd2, err = strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("parse julian date %q: %w", args[1], err)
		}
	}

	date, fraction, err := calendar.FromJulian(jd1, jd2)
	if err != nil {
		return err
	}

	tod, err := calendar.TimeOfDayFromFraction(fraction)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Julian date:     %18.14f\n", jd1+jd2)
	fmt.Fprintf(out, "Gregorian date:  %s\n", date)
	fmt.Fprintf(out, "Fraction of day: %.12f\n", fraction)
	fmt.Fprintf(out, "Time:            %s\n", tod)
	return nil
}
