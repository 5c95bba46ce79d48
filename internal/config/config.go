// Package config loads viewer settings from JSON and converts them to the
// Q24.8 values the engine uses.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"quarkwire/quarkgl"
	"quarkwire/quarkgl/fx"
	"quarkwire/quarkgl/raster"
)

var ErrInvalid = errors.New("config: invalid value")

// Config holds display, camera and scene settings. Angles are in degrees and
// distances in world units; both are converted once when the scene is built.
type Config struct {
	// Display
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	FrameIntervalMS int    `json:"frame_interval_ms"`
	Dither          int    `json:"dither"`
	AlphaCap        int    `json:"alpha_cap"`
	Background      string `json:"background"`
	HideHUD         bool   `json:"hide_hud"`
	StatsEvery      int    `json:"stats_every"`

	// Lens
	FovDeg float64 `json:"fov_deg"`
	Near   float64 `json:"near"`
	Far    float64 `json:"far"`

	// Controls
	MoveStep    float64 `json:"move_step"`
	TurnStepDeg float64 `json:"turn_step_deg"`
	FovStepDeg  float64 `json:"fov_step_deg"`
	MinFovDeg   float64 `json:"min_fov_deg"`
	MaxFovDeg   float64 `json:"max_fov_deg"`

	Camera [3]float64 `json:"camera"`
	Scene  []Object   `json:"scene"`
}

// Object is one scene entry. Exactly one of Shape and Model is set.
type Object struct {
	Name        string     `json:"name"`
	Shape       string     `json:"shape"`
	Model       string     `json:"model"`
	Size        float64    `json:"size"`
	Segments    int        `json:"segments"`
	Position    [3]float64 `json:"position"`
	RotationDeg [3]float64 `json:"rotation_deg"`
	Scale       float64    `json:"scale"`

	// Animation, driven by the viewer. Zero periods disable it.
	SpinPeriodMS int     `json:"spin_period_ms"`
	BobHeight    float64 `json:"bob_height"`
	BobPeriodMS  int     `json:"bob_period_ms"`

	Material Material `json:"material"`
}

// Material overrides quarkgl.DefaultMaterial field by field. Zero values keep
// the default.
type Material struct {
	Type         string  `json:"type"`
	Width        int     `json:"width"`
	NearColor    string  `json:"near_color"`
	FarColor     string  `json:"far_color"`
	Exponent     float64 `json:"exponent"`
	NearMargin   float64 `json:"near_margin"`
	FarMargin    float64 `json:"far_margin"`
	FadeDistance float64 `json:"fade_distance"`
	MinAlpha     *int    `json:"min_alpha"`
	PointFalloff float64 `json:"point_falloff"`
}

// Shapes lists the procedural shape names an Object may use.
var Shapes = []string{"cube", "sphere", "ring", "torus", "grid", "cloud"}

// Load reads a JSON config file. Fields not set in the file keep their zero
// values until Resolve.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds command-line values that override config file settings. Zero
// numeric fields keep the file's value, except Dither, which overrides
// whenever it is non-nil so that 0 can switch dithering off.
type Flags struct {
	Width           int
	Height          int
	FrameIntervalMS int
	Dither          *int
	StatsEvery      int
	// Model replaces the scene with a single model file.
	Model string
}

// Resolve applies flags, fills defaults and validates the result.
func (c *Config) Resolve(flags Flags) error {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.FrameIntervalMS > 0 {
		c.FrameIntervalMS = flags.FrameIntervalMS
	}
	if flags.Dither != nil {
		c.Dither = *flags.Dither
	}
	if flags.StatsEvery != 0 {
		c.StatsEvery = flags.StatsEvery
	}
	if flags.Model != "" {
		c.Scene = []Object{{Name: "model", Model: flags.Model, SpinPeriodMS: 8000}}
		c.Camera = [3]float64{0, 0, 4}
	}

	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 320
	}
	if c.FrameIntervalMS <= 0 {
		c.FrameIntervalMS = 33
	}
	if c.AlphaCap <= 0 {
		c.AlphaCap = 255
	}
	if c.Background == "" {
		c.Background = "#000000"
	}
	if c.StatsEvery == 0 {
		c.StatsEvery = 120
	}
	if c.FovDeg <= 0 {
		c.FovDeg = 60
	}
	if c.Near <= 0 {
		c.Near = 0.1
	}
	if c.Far <= 0 {
		c.Far = 40
	}
	if c.MoveStep <= 0 {
		c.MoveStep = 0.25
	}
	if c.TurnStepDeg <= 0 {
		c.TurnStepDeg = 5
	}
	if c.FovStepDeg <= 0 {
		c.FovStepDeg = 5
	}
	if c.MinFovDeg <= 0 {
		c.MinFovDeg = 20
	}
	if c.MaxFovDeg <= 0 {
		c.MaxFovDeg = 120
	}
	if len(c.Scene) == 0 {
		d := Default()
		c.Scene = d.Scene
		if c.Camera == ([3]float64{}) {
			c.Camera = d.Camera
		}
	}
	for i := range c.Scene {
		if c.Scene[i].Scale <= 0 {
			c.Scene[i].Scale = 1
		}
	}

	return c.Validate()
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Dither < 0 || c.Dither > 8 || !raster.Dither(c.Dither).Valid() {
		return fmt.Errorf("dither %d (want 0, 2, 4 or 8): %w", c.Dither, ErrInvalid)
	}
	if c.AlphaCap > 255 {
		return fmt.Errorf("alpha_cap %d: %w", c.AlphaCap, ErrInvalid)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if c.Far <= c.Near {
		return fmt.Errorf("far %g must exceed near %g: %w", c.Far, c.Near, ErrInvalid)
	}
	if c.MinFovDeg > c.MaxFovDeg || c.MaxFovDeg >= 180 {
		return fmt.Errorf("fov range %g..%g: %w", c.MinFovDeg, c.MaxFovDeg, ErrInvalid)
	}
	for i, o := range c.Scene {
		if (o.Shape == "") == (o.Model == "") {
			return fmt.Errorf("scene[%d] %q: need exactly one of shape and model: %w", i, o.Name, ErrInvalid)
		}
		if o.Shape != "" && !knownShape(o.Shape) {
			return fmt.Errorf("scene[%d] %q: shape %q (want one of %s): %w", i, o.Name, o.Shape, strings.Join(Shapes, ", "), ErrInvalid)
		}
		if _, err := o.Material.Build(); err != nil {
			return fmt.Errorf("scene[%d] %q: %w", i, o.Name, err)
		}
	}
	return nil
}

func knownShape(s string) bool {
	for _, k := range Shapes {
		if k == s {
			return true
		}
	}
	return false
}

// Default is the built-in demo scene, also used on devices without a
// filesystem.
func Default() Config {
	minAlpha := 0x30
	return Config{
		Camera: [3]float64{0, 0.5, 6},
		Scene: []Object{
			{
				Name: "torus", Shape: "torus", Size: 1, Segments: 16,
				RotationDeg:  [3]float64{30, 0, 0},
				SpinPeriodMS: 6000,
				Material: Material{
					NearColor: "#FFB040", FarColor: "#602000",
					FadeDistance: 1, MinAlpha: &minAlpha,
				},
			},
			{
				Name: "cube", Shape: "cube", Size: 1,
				Position:     [3]float64{-2.5, 0, -1},
				SpinPeriodMS: 9000,
				BobHeight:    0.3, BobPeriodMS: 2000,
			},
			{
				Name: "sphere", Shape: "sphere", Size: 0.8, Segments: 12,
				Position: [3]float64{2.5, 0, -1},
				Material: Material{NearColor: "#40FFC0", FarColor: "#004060"},
			},
			{
				Name: "floor", Shape: "grid", Size: 12, Segments: 12,
				Position: [3]float64{0, -1.5, 0},
				Material: Material{NearColor: "#3050A0", FarColor: "#081020", Width: 1},
			},
			{
				Name: "stars", Shape: "cloud", Size: 15, Segments: 300,
				Material: Material{Type: "vertices", Width: 1, NearColor: "#FFFFFF", FarColor: "#405080"},
			},
		},
	}
}

// ParseColor accepts #RRGGBB (opaque) or #AARRGGBB, with "#" or "0x".
func ParseColor(s string) (raster.Color, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(h) != 6 && len(h) != 8 {
		return 0, fmt.Errorf("colour %q: %w", s, ErrInvalid)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("colour %q: %w", s, ErrInvalid)
	}
	if len(h) == 6 {
		v |= 0xFF000000
	}
	return raster.Color(v), nil
}

// Deg converts degrees to Q24.8 radians.
func Deg(d float64) fx.Fixed { return fx.FromFloat(d * math.Pi / 180) }

// Lens is the configured perspective.
func (c *Config) Lens() quarkgl.Lens {
	aspect := fx.One
	if c.Height > 0 {
		aspect = fx.FromFloat(float64(c.Width) / float64(c.Height))
	}
	return quarkgl.Lens{
		Fov:    Deg(c.FovDeg),
		Aspect: aspect,
		Near:   fx.FromFloat(c.Near),
		Far:    fx.FromFloat(c.Far),
	}
}

// CameraPosition is the home position of the camera.
func (c *Config) CameraPosition() quarkgl.Vec3 {
	return quarkgl.V3f(c.Camera[0], c.Camera[1], c.Camera[2])
}

// Framebuffer allocates the render target with the configured background,
// dither and alpha cap.
func (c *Config) Framebuffer() *raster.Framebuffer {
	bg, _ := ParseColor(c.Background)
	fb := raster.NewFramebuffer(c.Width, c.Height, bg)
	fb.Dither = raster.Dither(c.Dither)
	fb.AlphaCap = uint8(c.AlphaCap)
	return fb
}

// Configure copies the control steps and FOV limits onto ctl.
func (c *Config) Configure(ctl *quarkgl.Controller) {
	ctl.MoveStep = fx.FromFloat(c.MoveStep)
	ctl.TurnStep = Deg(c.TurnStepDeg)
	ctl.FovStep = Deg(c.FovStepDeg)
	ctl.MinFov = Deg(c.MinFovDeg)
	ctl.MaxFov = Deg(c.MaxFovDeg)
}

// Place wraps m in a scene object with the entry's transform and material.
func (o *Object) Place(m *quarkgl.Model) (*quarkgl.SceneObject, error) {
	mat, err := o.Material.Build()
	if err != nil {
		return nil, err
	}
	scale := o.Scale
	if scale <= 0 {
		scale = 1
	}
	return &quarkgl.SceneObject{
		Name:     o.Name,
		Model:    m,
		Position: quarkgl.V3f(o.Position[0], o.Position[1], o.Position[2]),
		Rotation: quarkgl.V3(Deg(o.RotationDeg[0]), Deg(o.RotationDeg[1]), Deg(o.RotationDeg[2])),
		Scale:    fx.FromFloat(scale),
		Material: mat,
	}, nil
}

// Build overlays m on quarkgl.DefaultMaterial.
func (m Material) Build() (quarkgl.Material, error) {
	out := quarkgl.DefaultMaterial()
	switch m.Type {
	case "", "edges":
	case "vertices", "points":
		out.Type = quarkgl.RenderVertices
	default:
		return out, fmt.Errorf("material type %q: %w", m.Type, ErrInvalid)
	}
	if m.Width > 0 {
		out.PrimitiveWidth = m.Width
	}
	if m.NearColor != "" {
		c, err := ParseColor(m.NearColor)
		if err != nil {
			return out, err
		}
		out.NearColor = c
	}
	if m.FarColor != "" {
		c, err := ParseColor(m.FarColor)
		if err != nil {
			return out, err
		}
		out.FarColor = c
	}
	if m.Exponent > 0 {
		out.Exponent = fx.FromFloat(m.Exponent)
	}
	if m.NearMargin > 0 {
		out.NearMargin = fx.FromFloat(m.NearMargin)
	}
	if m.FarMargin > 0 {
		out.FarMargin = fx.FromFloat(m.FarMargin)
	}
	if m.FadeDistance > 0 {
		out.FadeDistance = fx.FromFloat(m.FadeDistance)
	}
	if m.MinAlpha != nil {
		if *m.MinAlpha < 0 || *m.MinAlpha > 255 {
			return out, fmt.Errorf("min_alpha %d: %w", *m.MinAlpha, ErrInvalid)
		}
		out.MinAlpha = uint8(*m.MinAlpha)
	}
	if m.PointFalloff > 0 {
		out.PointFalloff = fx.FromFloat(m.PointFalloff)
	}
	return out, nil
}
