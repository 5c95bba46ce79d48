package app

import (
	"quarkwire/internal/config"
	"quarkwire/quarkgl"
	"quarkwire/quarkgl/fx"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// animation spins an object about Y and bobs it vertically. Tweens run in
// float seconds on the driver side; results enter the scene as Q24.8.
type animation struct {
	obj     *quarkgl.SceneObject
	baseY   fx.Fixed
	baseRot fx.Fixed

	spin *gween.Tween

	bob       *gween.Tween
	bobHeight float32
	bobHalf   float32
	bobUp     bool
}

func newAnimation(obj *quarkgl.SceneObject, o *config.Object) *animation {
	a := &animation{
		obj:     obj,
		baseY:   obj.Position.Y,
		baseRot: obj.Rotation.Y,
	}
	if o.SpinPeriodMS > 0 {
		a.spin = gween.New(0, 360, float32(o.SpinPeriodMS)/1000, ease.Linear)
	}
	if o.BobPeriodMS > 0 && o.BobHeight != 0 {
		a.bobHeight = float32(o.BobHeight)
		a.bobHalf = float32(o.BobPeriodMS) / 2000
		a.bob = gween.New(-1, 1, a.bobHalf, ease.InOutSine)
		a.bobUp = true
	}
	if a.spin == nil && a.bob == nil {
		return nil
	}
	return a
}

func (a *animation) advance(dt float32) {
	if a.spin != nil {
		deg, done := a.spin.Update(dt)
		if done {
			a.spin.Reset()
			deg = 0
		}
		a.obj.Rotation.Y = a.baseRot + config.Deg(float64(deg))
	}
	if a.bob != nil {
		v, done := a.bob.Update(dt)
		if done {
			// Swing back the other way.
			a.bobUp = !a.bobUp
			if a.bobUp {
				a.bob = gween.New(-1, 1, a.bobHalf, ease.InOutSine)
			} else {
				a.bob = gween.New(1, -1, a.bobHalf, ease.InOutSine)
			}
		}
		a.obj.Position.Y = a.baseY + fx.FromFloat(float64(v*a.bobHeight))
	}
}
