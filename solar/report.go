package solar

import (
	"fmt"
	"io"

	"github.com/subtlepseudonym/skyframe/vecmat"
)

// WriteReport prints every intermediate quantity of r, one per line.
func WriteReport(w io.Writer, obs Observer, r Result) error {
	jd0, jd1 := obs.Date.Julian()
	p, e, s := r.Position, r.Earth, r.Sun
	zenith := r.Zenith / vecmat.Degree

	lines := []string{
		fmt.Sprintf("Date:                %s", obs.Date),
		fmt.Sprintf("Time:                %s %+13.6fs", obs.Time, r.Offset.Seconds()),
		fmt.Sprintf("Julian date:         %.6f = %.6f + %.6f", jd0+jd1, jd0, jd1),
		fmt.Sprintf("Position:            %s", obs.Position),
		fmt.Sprintf("                     X=%16.1f Y=%16.1f Z=%16.1f", p[0], p[1], p[2]),
		fmt.Sprintf("UTC:                 %.6f", r.UTC.Total()),
		fmt.Sprintf("Delta AT:            %.6f", r.DeltaAT),
		fmt.Sprintf("TAI:                 %.6f", r.TAI.Total()),
		fmt.Sprintf("TT:                  %.6f", r.TT.Total()),
		fmt.Sprintf("TDB:                 %.6f", r.TDB.Total()),
		fmt.Sprintf("UT1:                 %.6f", r.UT1.Total()),
		fmt.Sprintf("ERA:                 %.6f°", r.ERA/vecmat.Degree),
		fmt.Sprintf("Earth position (AU): X=%+15.13f Y=%+15.13f Z=%+15.13f", e[0], e[1], e[2]),
		fmt.Sprintf("Sun position (m):    X=%+16.0f Y=%+16.0f Z=%+16.0f", s[0], s[1], s[2]),
		fmt.Sprintf("Sun zenith angle:    %7.2f° or elevation: %7.2f°", zenith, 90-zenith),
	}
	if !r.DeltaATKnown {
		lines = append(lines, "Warning:             no leap second table before 1960")
	}
	if r.DeltaATDubious {
		lines = append(lines, "Warning:             leap second table may be missing recent leap seconds")
	}
	if r.Warning != nil {
		lines = append(lines, fmt.Sprintf("Warning:             %s", r.Warning))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
