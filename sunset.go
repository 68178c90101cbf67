package skyframe

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/subtlepseudonym/skyframe/ellipsoid"
	"github.com/subtlepseudonym/skyframe/metrics"
	"github.com/subtlepseudonym/skyframe/solar"
)

const (
	SunsetPrefix  = "@sunset"
	SunrisePrefix = "@sunrise"

	retryLimit = 3
	retryDelay = time.Minute

	// days to look ahead for a sunset in polar regions
	polarLimit = 190
)

var ErrBadSchedule = errors.New("bad schedule")

type Location struct {
	Latitude  float64 `json:"latitude" mapstructure:"latitude"`
	Longitude float64 `json:"longitude" mapstructure:"longitude"`
	Height    float64 `json:"height" mapstructure:"height"` // metres above WGS84
}

func (l Location) Geodetic() ellipsoid.Geodetic360 {
	return ellipsoid.Geodetic360{
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Height:    l.Height,
	}
}

func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("latitude out of range: %f", l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("longitude out of range: %f", l.Longitude)
	}
	return nil
}

type eventFunc func(ellipsoid.Geodetic360, time.Time, solar.EOP) (time.Time, error)

// SunsetSchedule fires at an offset from sunset, or sunrise if Sunrise is
// set, each day at Location.
type SunsetSchedule struct {
	Location Location      `json:"location"`
	Offset   time.Duration `json:"offset"`
	Sunrise  bool          `json:"sunrise"`
	EOP      solar.EOP     `json:"eop"`

	errCount int
	event    eventFunc
}

func NewSunsetSchedule(location Location, offset time.Duration, eop solar.EOP) *SunsetSchedule {
	return &SunsetSchedule{Location: location, Offset: offset, EOP: eop}
}

func NewSunriseSchedule(location Location, offset time.Duration, eop solar.EOP) *SunsetSchedule {
	return &SunsetSchedule{Location: location, Offset: offset, EOP: eop, Sunrise: true}
}

func (s *SunsetSchedule) String() string {
	prefix := SunsetPrefix
	if s.Sunrise {
		prefix = SunrisePrefix
	}
	if s.Offset == 0 {
		return prefix
	}
	return fmt.Sprintf("%s %s", prefix, s.Offset)
}

// Next returns the time of the next sunset after now, shifted by the
// schedule's offset. Days without a sunset are skipped.
//
// This implements robfig/cron.Schedule
func (s *SunsetSchedule) Next(now time.Time) time.Time {
	lightTime, err := s.next(now)
	if err != nil {
		log.Printf("ERR: %s: %s", s, err)
		if s.errCount >= retryLimit {
			return time.Time{}
		}

		s.errCount++
		return now.Add(retryDelay)
	}

	s.errCount = 0
	metrics.ObserveNextEvent(s.String(), lightTime)
	log.Printf("next %s: %s", s, lightTime.Local().Format(time.RFC3339))
	return lightTime
}

func (s *SunsetSchedule) next(now time.Time) (time.Time, error) {
	event := s.event
	if event == nil {
		event = solar.Sunset
		if s.Sunrise {
			event = solar.Sunrise
		}
	}

	// the offset may carry the previous day's event past now
	day := now.AddDate(0, 0, -1)
	for n := 0; n < polarLimit; n++ {
		t, err := event(s.Location.Geodetic(), day, s.EOP)
		day = day.AddDate(0, 0, 1)
		if errors.Is(err, solar.ErrNoSunset) || errors.Is(err, solar.ErrNoSunrise) {
			continue
		}
		if err != nil {
			return time.Time{}, err
		}

		lightTime := t.Add(s.Offset)
		if lightTime.After(now) {
			return lightTime.In(now.Location()), nil
		}
	}

	return time.Time{}, fmt.Errorf("no event within %d days", polarLimit)
}

// ParseSchedule accepts a standard cron expression or a sun event with an
// optional offset, such as "@sunset -30m" or "@sunrise 1h".
func ParseSchedule(spec string, location Location, eop solar.EOP) (cron.Schedule, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadSchedule)
	}

	if fields[0] != SunsetPrefix && fields[0] != SunrisePrefix {
		schedule, err := cron.ParseStandard(spec)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadSchedule, err)
		}
		return schedule, nil
	}

	if len(fields) > 2 {
		return nil, fmt.Errorf("%w: %q", ErrBadSchedule, spec)
	}

	var offset time.Duration
	if len(fields) == 2 {
		var err error
		offset, err = time.ParseDuration(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: parse offset: %s", ErrBadSchedule, err)
		}
	}

	if fields[0] == SunrisePrefix {
		return NewSunriseSchedule(location, offset, eop), nil
	}
	return NewSunsetSchedule(location, offset, eop), nil
}
