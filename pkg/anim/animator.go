// pkg/anim/animator.go

// Package anim interpolates tile positions over wall-clock time. It owns no
// loop: the caller samples running jobs once per frame with its own clock.
package anim

import (
	"math"
	"time"

	"go-hex-tiles/pkg/hexmap"
)

// DefaultPulse is the amplitude of the scale pulse applied mid-animation.
const DefaultPulse = 0.2

// Pose is what a tile looks like at one instant. X and Y are in unit hex
// space (multiply by the hex size for pixels); Rotation is in 60° steps and
// may be fractional while a job runs.
type Pose struct {
	X, Y     float64
	Rotation float64
	Scale    float64
}

// Degrees returns the rotation in degrees, clockwise with y down.
func (p Pose) Degrees() float64 {
	return p.Rotation * 60
}

// StaticPose is the resting pose of a tile at pos.
func StaticPose(pos hexmap.Position) Pose {
	x, y := pos.Coord.ToCartesian()
	return Pose{X: x, Y: y, Rotation: float64(pos.Rotation), Scale: 1}
}

// Job is one in-flight transition.
type Job[T comparable] struct {
	Target    T
	StartTime time.Time
	EndTime   time.Time
	From      hexmap.Position
	To        hexmap.Position
}

// Frame is the result of sampling a target.
type Frame struct {
	Pose     Pose
	Progress float64
	Done     bool
}

// Option configures an Animator.
type Option[T comparable] func(*Animator[T])

// WithClock replaces time.Now as the source of job start times.
func WithClock[T comparable](now func() time.Time) Option[T] {
	return func(a *Animator[T]) { a.now = now }
}

// WithPulse sets the scale pulse amplitude k in 1 + k·sin(progress·π).
func WithPulse[T comparable](k float64) Option[T] {
	return func(a *Animator[T]) { a.pulse = k }
}

// WithOnComplete registers fn to run once when a job reaches its end pose.
func WithOnComplete[T comparable](fn func(target T, end hexmap.Position)) Option[T] {
	return func(a *Animator[T]) { a.onComplete = fn }
}

// Animator keeps at most one job per target. A target is Running while it
// has a job and Idle otherwise.
type Animator[T comparable] struct {
	now        func() time.Time
	pulse      float64
	onComplete func(T, hexmap.Position)

	jobs     map[T]*Job[T]
	finished map[T]hexmap.Position
}

func New[T comparable](opts ...Option[T]) *Animator[T] {
	a := &Animator[T]{
		now:      time.Now,
		pulse:    DefaultPulse,
		jobs:     make(map[T]*Job[T]),
		finished: make(map[T]hexmap.Position),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Begin starts moving target from one position to another. A target that is
// already running keeps its job and the request is dropped; Begin then
// reports false.
func (a *Animator[T]) Begin(target T, from, to hexmap.Position, duration time.Duration) bool {
	if _, running := a.jobs[target]; running {
		return false
	}
	start := a.now()
	a.jobs[target] = &Job[T]{
		Target:    target,
		StartTime: start,
		EndTime:   start.Add(duration),
		From:      from,
		To:        to,
	}
	return true
}

// Running reports whether target has a job in flight.
func (a *Animator[T]) Running(target T) bool {
	_, ok := a.jobs[target]
	return ok
}

// Job returns the in-flight job of target.
func (a *Animator[T]) Job(target T) (Job[T], bool) {
	j, ok := a.jobs[target]
	if !ok {
		return Job[T]{}, false
	}
	return *j, true
}

// Len is the number of jobs in flight.
func (a *Animator[T]) Len() int {
	return len(a.jobs)
}

// Targets returns the targets with a job in flight.
func (a *Animator[T]) Targets() []T {
	out := make([]T, 0, len(a.jobs))
	for t := range a.jobs {
		out = append(out, t)
	}
	return out
}

// Sample computes the pose of target at now. Once progress reaches 1 the exact
// end pose is returned, the target goes back to Idle and Done is set; further
// samples keep returning that end pose. The bool is false for a target that
// was never animated.
func (a *Animator[T]) Sample(target T, now time.Time) (Frame, bool) {
	job, running := a.jobs[target]
	if !running {
		end, ok := a.finished[target]
		if !ok {
			return Frame{}, false
		}
		return Frame{Pose: StaticPose(end), Progress: 1, Done: true}, true
	}

	progress := Progress(job.StartTime, job.EndTime, now)
	if progress >= 1 {
		delete(a.jobs, target)
		a.finished[target] = job.To
		if a.onComplete != nil {
			a.onComplete(target, job.To)
		}
		return Frame{Pose: StaticPose(job.To), Progress: 1, Done: true}, true
	}

	sx, sy := job.From.Coord.ToCartesian()
	ex, ey := job.To.Coord.ToCartesian()
	pose := Pose{
		X:        Lerp(sx, ex, progress),
		Y:        Lerp(sy, ey, progress),
		Rotation: Lerp(float64(job.From.Rotation), float64(job.To.Rotation), progress),
		Scale:    1 + a.pulse*math.Sin(progress*math.Pi),
	}
	return Frame{Pose: pose, Progress: progress}, true
}

// Progress is (now-start)/(end-start) clamped to [0, 1]. A zero-length
// interval is complete immediately.
func Progress(start, end, now time.Time) float64 {
	total := end.Sub(start)
	if total <= 0 {
		return 1
	}
	p := float64(now.Sub(start)) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
