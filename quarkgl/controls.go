package quarkgl

import (
	"quarkwire/control"
	"quarkwire/quarkgl/fx"
)

// Controller turns control intents into camera and lens changes. It does not
// depend on any input system; drivers feed it between frames.
type Controller struct {
	Scene *Scene

	MoveStep fx.Fixed
	TurnStep fx.Fixed
	FovStep  fx.Fixed
	MinFov   fx.Fixed
	MaxFov   fx.Fixed

	homeFov fx.Fixed
}

// NewController uses quarter-unit moves, 5° turns and a 20°..120° FOV range
// in 5° steps.
func NewController(s *Scene) *Controller {
	return &Controller{
		Scene:    s,
		MoveStep: fx.One / 4,
		TurnStep: fx.Degrees(5),
		FovStep:  fx.Degrees(5),
		MinFov:   fx.Degrees(20),
		MaxFov:   fx.Degrees(120),
		homeFov:  s.Lens().Fov,
	}
}

// Apply performs one intent. It reports false for control.None and unknown
// intents.
func (c *Controller) Apply(in control.Intent) bool {
	cam := c.Scene.Camera
	switch in {
	case control.PitchUp:
		cam.Pitch(c.TurnStep)
	case control.PitchDown:
		cam.Pitch(-c.TurnStep)
	case control.YawLeft:
		cam.Yaw(c.TurnStep)
	case control.YawRight:
		cam.Yaw(-c.TurnStep)
	case control.MoveForward:
		cam.MoveForward(c.MoveStep)
	case control.MoveBack:
		cam.MoveForward(-c.MoveStep)
	case control.IncreaseFov:
		c.Scene.SetFov(c.clampFov(c.Scene.Lens().Fov + c.FovStep))
	case control.DecreaseFov:
		c.Scene.SetFov(c.clampFov(c.Scene.Lens().Fov - c.FovStep))
	case control.ResetCamera:
		cam.Reset()
		c.Scene.SetFov(c.homeFov)
	default:
		return false
	}
	return true
}

// Drain applies every queued intent and returns how many were applied.
func (c *Controller) Drain(q *control.Queue) int {
	n := 0
	q.Drain(func(in control.Intent) {
		if c.Apply(in) {
			n++
		}
	})
	return n
}

func (c *Controller) clampFov(f fx.Fixed) fx.Fixed {
	if c.MinFov != 0 && f < c.MinFov {
		f = c.MinFov
	}
	if c.MaxFov != 0 && f > c.MaxFov {
		f = c.MaxFov
	}
	return f
}
