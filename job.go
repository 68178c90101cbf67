package skyframe

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/subtlepseudonym/skyframe/leap"
	"github.com/subtlepseudonym/skyframe/metrics"
	"github.com/subtlepseudonym/skyframe/solar"
)

// SolarJob records the elevation of the sun at Location each time it runs
//
// This implements robfig/cron.Job
type SolarJob struct {
	Name     string
	Location Location
	EOP      solar.EOP

	now func() time.Time
}

func (j SolarJob) Run() {
	now := time.Now
	if j.now != nil {
		now = j.now
	}

	elevation, err := solar.Elevation(now(), j.Location.Geodetic(), j.EOP)
	metrics.JobRun(j.Name, err)
	if err != nil {
		log.Printf("ERR: %s: sun elevation: %s", j.Name, err)
		return
	}

	metrics.ObserveElevation(j.Name, elevation)
	log.Printf("%s: sun elevation %.3f°", j.Name, elevation)
}

// Status is the body returned by Handler.StatusHandler.
type Status struct {
	Time        time.Time  `json:"time"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Elevation   float64    `json:"elevation"`
	LeapSeconds int        `json:"leap_seconds"` // inserted into UTC since 1972
	Sunrise     *time.Time `json:"sunrise,omitempty"`
	Sunset      *time.Time `json:"sunset,omitempty"`
}

// Handler serves the sun's state at a default location.
type Handler struct {
	Location Location
	EOP      solar.EOP

	now func() time.Time
}

// StatusHandler writes the current sun elevation and the day's sunrise and
// sunset. The lat, lon and time query parameters override the defaults;
// time is RFC3339.
func (h *Handler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("ERR: parse form: %s", err)
		writeError(w, http.StatusBadRequest, "unable to parse query")
		return
	}

	location := h.Location
	if _, ok := r.Form["lat"]; ok {
		param := r.FormValue("lat")
		p, err := strconv.ParseFloat(param, 64)
		if err != nil {
			log.Printf("ERR: parse lat param %q: %s", param, err)
			writeError(w, http.StatusBadRequest, "unable to parse lat parameter")
			return
		}
		location.Latitude = p
	}

	if _, ok := r.Form["lon"]; ok {
		param := r.FormValue("lon")
		p, err := strconv.ParseFloat(param, 64)
		if err != nil {
			log.Printf("ERR: parse lon param %q: %s", param, err)
			writeError(w, http.StatusBadRequest, "unable to parse lon parameter")
			return
		}
		location.Longitude = p
	}

	if err := location.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	if h.now != nil {
		now = h.now()
	}
	if _, ok := r.Form["time"]; ok {
		param := r.FormValue("time")
		t, err := time.Parse(time.RFC3339, param)
		if err != nil {
			log.Printf("ERR: parse time param %q: %s", param, err)
			writeError(w, http.StatusBadRequest, "unable to parse time parameter")
			return
		}
		now = t
	}

	elevation, err := solar.Elevation(now, location.Geodetic(), h.EOP)
	if err != nil {
		log.Printf("ERR: sun elevation: %s", err)
		writeError(w, http.StatusInternalServerError, "unable to compute sun elevation")
		return
	}

	status := Status{
		Time:      now,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Elevation: elevation,

		LeapSeconds: leap.Count(now),
	}

	// polar day and night leave these out
	if rise, err := solar.Sunrise(location.Geodetic(), now, h.EOP); err == nil {
		status.Sunrise = &rise
	}
	if set, err := solar.Sunset(location.Geodetic(), now, h.EOP); err == nil {
		status.Sunset = &set
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
