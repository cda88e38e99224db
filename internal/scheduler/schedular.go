package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper drops expired state and reports how much it removed
type Sweeper interface {
	Cleanup() int
}

// Scheduler runs the session sweep on a cron schedule.
type Scheduler struct {
	sweeper Sweeper
	logger  *zap.Logger
	spec    string
	cron    *cron.Cron
	entryID cron.EntryID

	mu         sync.Mutex
	running    bool
	runs       int
	lastRun    time.Time
	lastSwept  int
	totalSwept int
}

func NewScheduler(sweeper Sweeper, spec string, logger *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		sweeper: sweeper,
		logger:  logger,
		spec:    spec,
	}

	s.cron = cron.New(cron.WithChain(
		cron.Recover(cronLogger{logger.Sugar()}),
		cron.SkipIfStillRunning(cronLogger{logger.Sugar()}),
	))

	id, err := s.cron.AddFunc(spec, s.runSweep)
	if err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", spec, err)
	}
	s.entryID = id

	return s, nil
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.cron.Start()

	s.logger.Info("Scheduler started",
		zap.String("schedule", s.spec),
		zap.Time("next_run", s.cron.Entry(s.entryID).Next))
}

func (s *Scheduler) runSweep() {
	startTime := time.Now()
	swept := s.sweeper.Cleanup()

	s.mu.Lock()
	s.runs++
	s.lastRun = startTime
	s.lastSwept = swept
	s.totalSwept += swept
	s.mu.Unlock()

	s.logger.Debug("Session sweep completed",
		zap.Int("expired", swept),
		zap.Duration("duration", time.Since(startTime)))
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) ForceRun() {
	s.logger.Info("Manually triggering session sweep")
	go s.runSweep()
}

func (s *Scheduler) GetStatus() map[string]interface{} {
	next := s.cron.Entry(s.entryID).Next

	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]interface{}{
		"running":     s.running,
		"schedule":    s.spec,
		"runs":        s.runs,
		"last_run":    s.lastRun,
		"next_run":    next,
		"last_swept":  s.lastSwept,
		"total_swept": s.totalSwept,
	}
}

// cronLogger adapts zap to cron's logger interface
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
