package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/subtlepseudonym/skyframe"
	"github.com/subtlepseudonym/skyframe/config"
	"github.com/subtlepseudonym/skyframe/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the configured solar jobs and serve /sun and /metrics",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Bool("watch", true, "reload the config file when it changes")
}

// server holds the cron runner and status handler for the current config.
type server struct {
	mu      sync.RWMutex
	cron    *cron.Cron
	handler *skyframe.Handler
}

// load replaces the running jobs with those of cfg.
func (s *server) load(cfg *config.Config) {
	now := time.Now() // used for logging cron entries
	runner := cron.New()
	for _, job := range cfg.Jobs {
		schedule, err := skyframe.ParseSchedule(job.Schedule, cfg.Location, cfg.EOP)
		if err != nil {
			log.Printf("ERR: parse schedule: %s", err)
			continue
		}

		runner.Schedule(schedule, skyframe.SolarJob{
			Name:     job.Name,
			Location: cfg.Location,
			EOP:      cfg.EOP,
		})
		log.Printf("job: %s: %s", job.Name, schedule.Next(now).Local().Format(time.RFC3339))
	}

	s.mu.Lock()
	old := s.cron
	s.cron = runner
	s.handler = &skyframe.Handler{Location: cfg.Location, EOP: cfg.EOP}
	s.mu.Unlock()

	if old != nil {
		<-old.Stop().Done()
	}
	runner.Start()
}

func (s *server) statusHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	h := s.handler
	s.mu.RUnlock()
	h.StatusHandler(w, r)
}

func runServe(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv := &server{}
	srv.load(cfg)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if watch, _ := cmd.Flags().GetBool("watch"); watch && path != "" {
		err := config.Watch(ctx, path, func(c *config.Config) {
			if c.Listen != cfg.Listen {
				log.Printf("listen address change to %s needs a restart", c.Listen)
			}
			srv.load(c)
		})
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/sun", srv.statusHandler)
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	httpSrv := http.Server{
		Addr:    cfg.Listen,
		Handler: mux,
	}
	log.Printf("listening on %s", httpSrv.Addr)
	return httpSrv.ListenAndServe()
}
