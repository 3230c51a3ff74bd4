package adc

import "sync"

// MockConverter is a scriptable Converter for tests and the dev CLI.
type MockConverter struct {
	mu sync.Mutex
	// ReadyAfter delays completion by that many Ready() polls.
	ReadyAfter int

	raw     uint16
	started bool
	polls   int
}

var _ Converter = &MockConverter{}

func (self *MockConverter) Set(raw uint16) {
	self.mu.Lock()
	self.raw = raw
	self.mu.Unlock()
}

func (self *MockConverter) Start() error {
	self.mu.Lock()
	self.started = true
	self.polls = 0
	self.mu.Unlock()
	return nil
}

func (self *MockConverter) Ready() bool {
	self.mu.Lock()
	defer self.mu.Unlock()
	if !self.started {
		return false
	}
	self.polls++
	return self.polls > self.ReadyAfter
}

func (self *MockConverter) Read() (uint16, error) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.started = false
	return self.raw, nil
}
