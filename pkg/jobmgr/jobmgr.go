// Package jobmgr provides simple asynchronous and periodic job execution
// with cancellation, status callbacks, and in-memory tracking of running
// jobs.
//
// Typical usage:
//
//	jm := jobmgr.NewManager(func(msg string) {
//	    log.Println("JOB:", msg)
//	})
//
//	err := jm.StartPeriodic("history-trim", time.Minute, func(ctx context.Context) error {
//	    // do one round of work
//	    return nil
//	})
//
//	// later...
//	_ = jm.Stop("history-trim")
//
// The package is intentionally minimal: no retry logic, no workers, no
// persistence. Jobs run in separate goroutines; one-shot jobs are removed
// automatically on completion.
package jobmgr

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultManager is the global job manager.
var DefaultManager = NewManager(nil)

// Job represents a running unit of work.
// Jobs are added and removed by Manager automatically.
type Job struct {
	Name   string
	Cancel context.CancelFunc
}

// StatusReporter receives lifecycle events for jobs.
// Example messages:
//
//	running:history-trim
//	error:history-trim:storage closed
//	done:history-trim
type StatusReporter func(string)

// Manager orchestrates starting, stopping and tracking jobs.
// It is safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	jobs     map[string]*Job
	Reporter StatusReporter
}

// NewManager creates a new Manager.
// The reporter callback may be nil.
func NewManager(reporter StatusReporter) *Manager {
	return &Manager{
		jobs:     make(map[string]*Job),
		Reporter: reporter,
	}
}

// StartAsync runs a job in a separate goroutine and returns immediately.
// If a job with the same name is already running, an error is returned.
// Jobs are removed automatically after completion (success or failure).
func (m *Manager) StartAsync(name string, runner func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(context.Background())
	if err := m.add(name, cancel); err != nil {
		cancel()
		return err
	}

	go func() {
		m.report("running:" + name)

		if err := runner(ctx); err != nil {
			m.report("error:" + name + ":" + err.Error())
		} else {
			m.report("done:" + name)
		}

		m.remove(name)
	}()

	return nil
}

// StartPeriodic runs the given round function every interval until the
// job is stopped. Round errors are reported but do not stop the job.
func (m *Manager) StartPeriodic(name string, interval time.Duration, round func(ctx context.Context) error) error {
	if interval <= 0 {
		return fmt.Errorf("job '%s': interval must be positive", name)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := m.add(name, cancel); err != nil {
		cancel()
		return err
	}

	go func() {
		m.report("running:" + name)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				m.report("done:" + name)
				m.remove(name)
				return
			case <-ticker.C:
				if err := round(ctx); err != nil {
					m.report("error:" + name + ":" + err.Error())
				}
			}
		}
	}()

	return nil
}

// Stop cancels a running job by name.
// If the job is not running, an error is returned.
func (m *Manager) Stop(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[name]
	if !ok {
		return fmt.Errorf("job '%s' not running", name)
	}

	job.Cancel()
	delete(m.jobs, name)
	return nil
}

// StopAll cancels every running job.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, job := range m.jobs {
		job.Cancel()
		delete(m.jobs, name)
	}
}

// List returns the list of active job names.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.jobs))
	for k := range m.jobs {
		out = append(out, k)
	}
	return out
}

// Status returns a human-readable summary of active jobs.
// Example:
//
//	"Running jobs: history-trim, cooldown-sweep"
//
// If none are running: "No jobs are running."
func (m *Manager) Status() string {
	active := m.List()
	if len(active) == 0 {
		return "No jobs are running."
	}
	return fmt.Sprintf("Running jobs: %s", strings.Join(active, ", "))
}

func (m *Manager) add(name string, cancel context.CancelFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.jobs[name]; exists {
		return fmt.Errorf("job '%s' is already running", name)
	}
	m.jobs[name] = &Job{Name: name, Cancel: cancel}
	return nil
}

func (m *Manager) remove(name string) {
	m.mu.Lock()
	delete(m.jobs, name)
	m.mu.Unlock()
}

func (m *Manager) report(s string) {
	if m.Reporter != nil {
		m.Reporter(s)
	}
}
