package lcd

import (
	"fmt"
	"sync"
)

// MockDevicer keeps a 2x16 cell grid in memory. The mutex only guards
// test-side inspection; real devices have no such luxury.
type MockDevicer struct {
	mu   sync.Mutex
	grid [Rows][Width]byte
	y, x uint8 // 1-based, like the hardware
}

var _ Devicer = &MockDevicer{}

func NewMockDevicer() *MockDevicer {
	self := &MockDevicer{}
	self.Clear()
	return self
}

func NewMockScreen() (*Screen, *MockDevicer) {
	dev := NewMockDevicer()
	screen, err := NewScreen(dev, ScreenConfig{})
	if err != nil {
		panic(err)
	}
	return screen, dev
}

func (self *MockDevicer) Clear() {
	self.mu.Lock()
	defer self.mu.Unlock()
	for y := 0; y < Rows; y++ {
		copy(self.grid[y][:], spaceRow[:])
	}
	self.y, self.x = 1, 1
}

func (self *MockDevicer) CursorYX(y, x uint8) bool {
	self.mu.Lock()
	defer self.mu.Unlock()
	if !(y > 0 && y <= Rows && x > 0 && x <= Width) {
		return false
	}
	self.y, self.x = y, x
	return true
}

func (self *MockDevicer) Write(b []byte) {
	self.mu.Lock()
	defer self.mu.Unlock()
	for _, ch := range b {
		if self.x > Width {
			break
		}
		self.grid[self.y-1][self.x-1] = ch
		self.x++
	}
}

func (self *MockDevicer) Cell(y, x uint8) byte {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.grid[y][x]
}

func (self *MockDevicer) Line(y uint8) string {
	self.mu.Lock()
	defer self.mu.Unlock()
	return string(self.grid[y][:])
}

func (self *MockDevicer) String() string {
	return fmt.Sprintf("%s\n%s", self.Line(0), self.Line(1))
}
