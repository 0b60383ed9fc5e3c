package game

import (
	"math"
	"sync"
	"time"

	"github.com/lixenwraith/dodge3d/engine"
	"github.com/lixenwraith/dodge3d/vmath"
)

// Strafe sways the camera left and right while facing -Z
// Stands in for AR tracking in headless runs
func Strafe(amplitude float32, period time.Duration) PoseFunc {
	return func(now time.Duration) engine.CameraPose {
		pose := engine.DefaultPose()
		if period > 0 {
			phase := 2 * math.Pi * now.Seconds() / period.Seconds()
			pose.Position = vmath.Vec3{amplitude * float32(math.Sin(phase)), 0, 0}
		}
		return pose
	}
}

// ManualPose is a camera steered from an input goroutine
type ManualPose struct {
	mu       sync.Mutex
	position vmath.Vec3
	yaw      float32
}

func NewManualPose() *ManualPose { return &ManualPose{} }

// Move shifts the camera in its own horizontal frame
func (m *ManualPose) Move(forward, right float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pose := m.poseLocked()
	m.position = m.position.Add(pose.Forward.Mul(forward)).Add(pose.Right.Mul(right))
}

// Turn rotates the heading about world up
func (m *ManualPose) Turn(delta float32) {
	m.mu.Lock()
	m.yaw += delta
	m.mu.Unlock()
}

func (m *ManualPose) Pose(time.Duration) engine.CameraPose {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.poseLocked()
}

func (m *ManualPose) poseLocked() engine.CameraPose {
	return engine.PoseLookingAt(m.position, vmath.RotateAbout(vmath.Forward, vmath.Up, m.yaw))
}
