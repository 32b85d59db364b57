package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/character"
	"golang.org/x/image/colornames"
)

const (
	circleSegments = 24
	dotSize        = 4
)

// camera maps y-up world units onto the y-down screen.
type camera struct {
	center cp.Vector
	zoom   float64
}

func (c camera) toScreen(v cp.Vector) (float32, float32) {
	x := (v.X-c.center.X)*c.zoom + screenWidth/2
	y := screenHeight/2 - (v.Y-c.center.Y)*c.zoom
	return float32(x), float32(y)
}

// levelDrawer renders the scene's static shapes through cp.DrawSpace.
type levelDrawer struct {
	screen *ebiten.Image
	cam    camera
}

func drawLevel(space *cp.Space, cam camera, screen *ebiten.Image) {
	if space == nil || screen == nil {
		return
	}
	cp.DrawSpace(space, &levelDrawer{screen: screen, cam: cam})
}

func (d *levelDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawCircle(pos, radius, outline)
}

func (d *levelDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *levelDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *levelDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *levelDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = dotSize
	}
	x, y := d.cam.toScreen(pos)
	vector.DrawFilledCircle(d.screen, x, y, float32(size/2), toNRGBA(fill), true)
}

func (d *levelDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *levelDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.75, G: 0.8, B: 0.85, A: 1}
}

func (d *levelDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.35, G: 0.4, B: 0.45, A: 0.6}
}

func (d *levelDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *levelDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *levelDrawer) Data() interface{} {
	return nil
}

func (d *levelDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.cam.toScreen(a)
	x2, y2 := d.cam.toScreen(b)
	vector.StrokeLine(d.screen, x1, y1, x2, y2, 2, toNRGBA(c), true)
}

func (d *levelDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := 0; i < len(verts); i++ {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *levelDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	x, y := d.cam.toScreen(center)
	vector.StrokeCircle(d.screen, x, y, float32(radius*d.cam.zoom), 2, toNRGBA(c), true)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var locomotionColors = map[character.Locomotion]color.RGBA{
	character.Idle:    colornames.Lightskyblue,
	character.Running: colornames.Limegreen,
	character.Jumping: colornames.Gold,
	character.Falling: colornames.Orange,
	character.Landing: colornames.Tomato,
}

// drawCharacter draws the volume colored by state, with a marker on the
// facing side standing in for the mirrored sprite.
func drawCharacter(screen *ebiten.Image, cam camera, st character.CharacterState, radius float64) {
	clr, ok := locomotionColors[st.Locomotion]
	if !ok {
		clr = colornames.White
	}
	x, y := cam.toScreen(st.Position)
	r := float32(radius * cam.zoom)
	vector.StrokeCircle(screen, x, y, r, 3, clr, true)

	dir := float32(1)
	if st.Facing == character.FacingLeft {
		dir = -1
	}
	vector.StrokeLine(screen, x, y, x+dir*r, y-r/3, 3, clr, true)

	if st.Grounded {
		n := st.GroundNormal
		foot := st.Position.Sub(n.Mult(radius))
		fx, fy := cam.toScreen(foot)
		tx, ty := cam.toScreen(foot.Add(n.Mult(0.6)))
		vector.StrokeLine(screen, fx, fy, tx, ty, 1, colornames.Magenta, true)
	}
}

func drawKillPlane(screen *ebiten.Image, cam camera, y float64) {
	_, sy := cam.toScreen(cp.Vector{Y: y})
	if sy < 0 || sy > screenHeight {
		return
	}
	vector.StrokeLine(screen, 0, sy, screenWidth, sy, 1, colornames.Darkred, false)
}

func drawHUD(screen *ebiten.Image, g *Game) {
	st := g.ctrl.State()
	coyote := st.CoyoteUntil.Active(g.now)
	buffered := st.JumpBufferedUntil.Active(g.now)
	text := fmt.Sprintf(
		"Level: %s   TPS: %.1f\nState: %s   Facing: %s   Clip: %s\nGrounded: %v   Coyote: %v   Buffered: %v\nPos: (%.2f, %.2f)   Vel: (%.2f, %.2f)\nEsc: menu   F3: debug",
		g.level.Name, ebiten.ActualTPS(),
		st.Locomotion, st.Facing, g.ctrl.Animation().Clip,
		st.Grounded, coyote, buffered,
		st.Position.X, st.Position.Y, st.Velocity.X, st.Velocity.Y,
	)
	ebitenutil.DebugPrintAt(screen, text, 10, 10)

	if g.debug {
		speed := math.Abs(st.Velocity.X)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("speed %.2f / %.2f", speed, g.ctrl.Tuning().MaxSpeed), 10, 90)
	}
}
