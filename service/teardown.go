package service

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Manager coordinates graceful shutdown of the service
type Manager struct {
	termChan      chan os.Signal
	doneChan      chan struct{}
	waitGroup     *sync.WaitGroup
	context       context.Context
	cancel        context.CancelFunc
	teardownFuncs []func()
	mu            sync.Mutex
}

var manager *Manager
var once sync.Once

// GetTeardownManager returns the singleton teardown manager
func GetTeardownManager() *Manager {
	once.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		manager = &Manager{
			termChan:  make(chan os.Signal, 1),
			doneChan:  make(chan struct{}),
			waitGroup: &sync.WaitGroup{},
			context:   ctx,
			cancel:    cancel,
		}
		signal.Notify(manager.termChan, os.Interrupt, syscall.SIGTERM)
	})
	return manager
}

// TeardownFunc registers a function to run during shutdown
func (m *Manager) TeardownFunc(f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teardownFuncs = append(m.teardownFuncs, f)
}

// WaitGroup returns the wait group tracking in-flight work
func (m *Manager) WaitGroup() *sync.WaitGroup {
	return m.waitGroup
}

// Context returns the service context, cancelled on shutdown
func (m *Manager) Context() context.Context {
	return m.context
}

// Wait blocks until a termination signal arrives, then cancels the
// service context, runs the registered teardown functions, and waits
// for in-flight work to complete.
func (m *Manager) Wait() {
	<-m.termChan
	m.cancel()

	m.mu.Lock()
	funcs := make([]func(), len(m.teardownFuncs))
	copy(funcs, m.teardownFuncs)
	m.mu.Unlock()

	for _, f := range funcs {
		f()
	}

	m.waitGroup.Wait()
	close(m.doneChan)
}
