// Package turtle is a headless recorder for the turtle-graphics
// primitives spec.md names as external collaborators. It has no
// rendering backend: no repository in the retrieved example pack
// imports a 2D drawing/canvas/windowing library, so State just tracks
// the turtle's position, heading and pen state and logs every
// operation, letting callers (tests, or a future renderer) replay it.
package turtle

import (
	"fmt"
	"math"
)

// Op records one mutation made by a turtle primitive.
type Op struct {
	Name string
	Args []float64
}

// State is the turtle's current pose plus its operation history.
type State struct {
	X, Y    float64
	Heading float64 // degrees, 0 = facing +X, increases counter-clockwise
	PenDown bool
	Visible bool
	Color   string
	Speed   float64
	filling bool

	history []Op
}

// NewState returns a turtle at the origin, facing +X, pen down, visible.
func NewState() *State {
	return &State{
		PenDown: true,
		Visible: true,
		Color:   "black",
		Speed:   1,
	}
}

func (s *State) record(name string, args ...float64) {
	s.history = append(s.history, Op{Name: name, Args: args})
}

// History returns every operation recorded so far, in order.
func (s *State) History() []Op {
	return s.history
}

// Forward moves the turtle distance units along its current heading.
func (s *State) Forward(distance float64) {
	s.moveBy(distance)
	s.record("forward", distance)
}

// Backward moves the turtle distance units against its current heading.
func (s *State) Backward(distance float64) {
	s.moveBy(-distance)
	s.record("backward", distance)
}

func (s *State) moveBy(distance float64) {
	rad := s.Heading * (math.Pi / 180)
	s.X += distance * math.Cos(rad)
	s.Y += distance * math.Sin(rad)
}

// Right turns the turtle degrees clockwise.
func (s *State) Right(degrees float64) {
	s.Heading -= degrees
	s.record("right", degrees)
}

// Left turns the turtle degrees counter-clockwise.
func (s *State) Left(degrees float64) {
	s.Heading += degrees
	s.record("left", degrees)
}

// Circle records a circle of the given radius drawn at the current
// position; the turtle's pose is left unchanged (no headless path
// simulation is attempted).
func (s *State) Circle(radius float64) {
	s.record("circle", radius)
}

// SetPosition jumps the turtle to (x, y) without tracing the path.
func (s *State) SetPosition(x, y float64) {
	s.X, s.Y = x, y
	s.record("setpos", x, y)
}

// SetHeading sets the turtle's absolute heading in degrees.
func (s *State) SetHeading(degrees float64) {
	s.Heading = degrees
	s.record("setheading", degrees)
}

// PenUp lifts the pen. Later moves are still recorded in the history.
func (s *State) PenUp() {
	s.PenDown = false
	s.record("penup")
}

// PenDownOp lowers the pen.
func (s *State) PenDownOp() {
	s.PenDown = true
	s.record("pendown")
}

// ShowTurtle marks the turtle visible.
func (s *State) ShowTurtle() {
	s.Visible = true
	s.record("showturtle")
}

// HideTurtle marks the turtle invisible.
func (s *State) HideTurtle() {
	s.Visible = false
	s.record("hideturtle")
}

// Clear resets the drawing history but keeps the turtle's pose.
func (s *State) Clear() {
	s.history = nil
}

// SetColor sets the pen color.
func (s *State) SetColor(name string) {
	s.Color = name
	s.record("color")
}

// BeginFill marks the start of a filled region.
func (s *State) BeginFill() {
	s.filling = true
	s.record("begin_fill")
}

// EndFill marks the end of a filled region.
func (s *State) EndFill() {
	s.filling = false
	s.record("end_fill")
}

// SetSpeed sets the turtle's animation speed (meaningless headlessly,
// but recorded for a future renderer).
func (s *State) SetSpeed(speed float64) {
	s.Speed = speed
	s.record("speed", speed)
}

// String renders the turtle's current pose, for debugging.
func (s *State) String() string {
	return fmt.Sprintf("turtle at (%.2f, %.2f) heading %.2f", s.X, s.Y, s.Heading)
}

