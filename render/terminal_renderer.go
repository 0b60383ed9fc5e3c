package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/oops"

	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/engine"
	"github.com/lixenwraith/dodge3d/game"
	"github.com/lixenwraith/dodge3d/vmath"
)

const (
	// Cells per world unit along the forward axis; columns are doubled for aspect
	defaultScale = 2.0
	hudRows      = 1
)

// OpenScreen initializes the terminal and registers its teardown with the crash handler
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, oops.In("render").Code("screen_unavailable").Wrapf(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, oops.In("render").Code("screen_unavailable").Wrapf(err, "init screen")
	}
	core.RegisterCrashCleanup(screen.Fini)
	screen.HideCursor()
	return screen, nil
}

// TerminalRenderer draws a top-down, camera-aligned view of one snapshot
// Forward is up the screen, the camera sits at the bottom center
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
	scale  float32
}

func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, scale: defaultScale}
	r.Resize()
	return r
}

// Resize re-reads the screen size, call on tcell.EventResize
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// SetScale changes cells per world unit, non-positive values are ignored
func (r *TerminalRenderer) SetScale(scale float32) {
	if scale > 0 {
		r.scale = scale
	}
}

func (r *TerminalRenderer) Scale() float32 { return r.scale }

// Project maps a world point to a screen cell relative to the camera
// ok is false when the cell falls outside the field area
func (r *TerminalRenderer) Project(cam engine.CameraPose, p vmath.Vec3) (x, y int, ok bool) {
	fwd := vmath.Horizontal(cam.Forward)
	if fwd == vmath.Zero {
		fwd = vmath.Forward
	}
	right := vmath.Normalize(fwd.Cross(vmath.Up))

	rel := p.Sub(cam.Position)
	lateral := rel.Dot(right)
	depth := rel.Dot(fwd)

	originX, originY := r.width/2, r.height-1
	x = originX + int(math.Round(float64(lateral*r.scale*2)))
	y = originY - int(math.Round(float64(depth*r.scale)))
	ok = x >= 0 && x < r.width && y >= hudRows && y < r.height
	return x, y, ok
}

// RenderFrame draws the full frame and shows it
func (r *TerminalRenderer) RenderFrame(snap game.Snapshot) {
	r.screen.Clear()
	base := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', base)

	r.drawRings(snap.Camera, base)

	// Pickups under turret under projectiles
	for _, kind := range []engine.TransformKind{engine.TransformPickup, engine.TransformTurret, engine.TransformProjectile} {
		for _, t := range snap.Transforms {
			if t.Kind != kind {
				continue
			}
			if x, y, ok := r.Project(snap.Camera, t.Position); ok {
				glyph, fg := transformGlyph(t)
				r.screen.SetContent(x, y, glyph, nil, base.Foreground(fg))
			}
		}
	}

	if x, y, ok := r.Project(snap.Camera, snap.Camera.Position); ok {
		r.screen.SetContent(x, y, '^', nil, base.Foreground(RgbCamera).Bold(true))
	}

	r.drawHUD(snap, base)
	if snap.Defeated {
		r.drawCentered(r.height/2, "DEFEATED  [n] new round  [q] quit", base.Foreground(RgbDefeated).Bold(true))
	}

	r.screen.Show()
}

// drawRings marks every 5 units straight ahead of the camera
func (r *TerminalRenderer) drawRings(cam engine.CameraPose, base tcell.Style) {
	style := base.Foreground(RgbGrid)
	fwd := vmath.Horizontal(cam.Forward)
	if fwd == vmath.Zero {
		fwd = vmath.Forward
	}
	for d := float32(5); ; d += 5 {
		x, y, ok := r.Project(cam, cam.Position.Add(fwd.Mul(d)))
		if !ok {
			return
		}
		r.drawText(x+1, y, fmt.Sprintf("%.0f", d), style)
		r.screen.SetContent(x, y, '·', nil, style)
	}
}

func (r *TerminalRenderer) drawHUD(snap game.Snapshot, base tcell.Style) {
	hud := snap.HUD
	style := base.Foreground(RgbStatusBar)

	hp := RgbHealthHigh
	if hud.PlayerMax > 0 && hud.PlayerHealth*2 <= hud.PlayerMax {
		hp = RgbHealthLow
	}
	x := r.drawText(0, 0, "HP ", style)
	x = r.drawText(x, 0, fmt.Sprintf("%d/%d", hud.PlayerHealth, hud.PlayerMax), base.Foreground(hp).Bold(true))

	ammo := fmt.Sprintf("  AMMO %d/%d", snap.Ammo.Capacity-snap.Ammo.Used, snap.Ammo.Capacity)
	if hud.Reloading {
		ammo += " RELOADING"
	} else if snap.Ammo.Used >= snap.Ammo.Capacity {
		ammo += " EMPTY"
	}
	x = r.drawText(x, 0, ammo, style)

	if hud.TurretMax > 0 {
		x = r.drawText(x, 0, fmt.Sprintf("  TURRET %d/%d", hud.TurretHealth, hud.TurretMax), base.Foreground(RgbTurretArmed))
	}
	r.drawText(x, 0, fmt.Sprintf("  T+%.1fs", snap.Now.Seconds()), style)
}

func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	r.drawText(max((r.width-len([]rune(text)))/2, 0), y, text, style)
}

// drawText writes a single line clipped to the screen, returning the next column
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func transformGlyph(t engine.Transform) (rune, tcell.Color) {
	switch t.Kind {
	case engine.TransformProjectile:
		if t.Owner == core.SigHoming {
			return '*', RgbHostile
		}
		return '•', RgbFriendly
	case engine.TransformTurret:
		switch t.Tag {
		case "reloading":
			return 'T', RgbTurretReloading
		case "destroyed":
			return 'x', RgbTurretDestroyed
		default:
			return 'T', RgbTurretArmed
		}
	case engine.TransformPickup:
		switch t.Tag {
		case "ammo_capacity":
			return 'A', RgbPickupAmmo
		case "reload_time":
			return 'R', RgbPickupReload
		case "health_restore":
			return 'H', RgbPickupHealth
		}
		return '+', RgbStatusBar
	}
	return '?', RgbStatusBar
}
