package cursor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/harmonica"
)

// DefaultDamping is the fraction of the remaining distance closed per frame.
const DefaultDamping = 0.2

// springFPS is the nominal frame rate the spring model is tuned for.
const springFPS = 60

// Motion selects how the follower chases its target.
type Motion uint8

const (
	MotionDamped Motion = iota // exponential smoothing by a fixed factor
	MotionSpring               // critically damped spring
)

func (m Motion) String() string {
	switch m {
	case MotionDamped:
		return "damped"
	case MotionSpring:
		return "spring"
	default:
		return "unknown"
	}
}

// UnmarshalText parses "damped" or "spring" (case-insensitive).
func (m *Motion) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "damped":
		*m = MotionDamped
	case "spring":
		*m = MotionSpring
	default:
		return fmt.Errorf("cursor: unknown motion %q", text)
	}
	return nil
}

// Damp advances current toward target by the fraction k.
func Damp(current, target, k float64) float64 {
	return current + (target-current)*k
}

// Follower tracks a current and target position and radius. Step moves the
// current values toward the targets once; callers invoke it once per frame.
type Follower struct {
	Current    Vec2
	Target     Vec2
	Size       float64
	TargetSize float64

	k      float64
	motion Motion

	spring     harmonica.Spring
	vx, vy, vs float64
}

// NewFollower creates a damped follower with factor k in (0, 1].
func NewFollower(k float64) *Follower {
	return &Follower{k: k, motion: MotionDamped}
}

// NewSpringFollower creates a follower driven by a critically damped spring
// with the given angular frequency.
func NewSpringFollower(frequency float64) *Follower {
	return &Follower{
		k:      DefaultDamping,
		motion: MotionSpring,
		spring: harmonica.NewSpring(harmonica.FPS(springFPS), frequency, 1.0),
	}
}

// Motion reports the follower's model.
func (f *Follower) Motion() Motion {
	return f.motion
}

// Step advances x, y, and size independently by one frame.
func (f *Follower) Step() {
	if f.motion == MotionSpring {
		f.Current.X, f.vx = f.spring.Update(f.Current.X, f.vx, f.Target.X)
		f.Current.Y, f.vy = f.spring.Update(f.Current.Y, f.vy, f.Target.Y)
		f.Size, f.vs = f.spring.Update(f.Size, f.vs, f.TargetSize)
		if f.Size < 0 {
			f.Size, f.vs = 0, 0
		}
		return
	}
	f.Current.X = Damp(f.Current.X, f.Target.X, f.k)
	f.Current.Y = Damp(f.Current.Y, f.Target.Y, f.k)
	f.Size = Damp(f.Size, f.TargetSize, f.k)
}

// SetTargetSize sets the target radius, clamping negatives to zero.
func (f *Follower) SetTargetSize(size float64) {
	if size < 0 {
		size = 0
	}
	f.TargetSize = size
}
