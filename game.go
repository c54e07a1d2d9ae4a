package cubewire

import (
	"fmt"
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

// Config carries the startup inputs: display size in pixels, field of view
// in degrees, the near/far planes and the soft mesh size limit.
type Config struct {
	DisplayWidth  float32
	DisplayHeight float32
	FieldOfView   float32
	NearPlane     float32
	FarPlane      float32
	TriangleLimit int
}

func DefaultConfig() Config {
	return Config{
		DisplayWidth:  screenWidth,
		DisplayHeight: screenHeight,
		FieldOfView:   90.0,
		NearPlane:     0.1,
		FarPlane:      1000.0,
		TriangleLimit: DefaultTriangleLimit,
	}
}

// Game runs the frame loop: a scene with the cube, rendered as a white
// wireframe on black. Space toggles the spin, Escape quits. Ebiten paces
// the loop at 60 ticks per second.
type Game struct {
	cfg      Config
	scene    *Scene
	renderer *FrameRenderer
	spinning bool
	angleX   float64
	angleY   float64
}

func NewGame(cfg Config) *Game {
	g := &Game{
		cfg:      cfg,
		scene:    NewSceneWithLimit(cfg.TriangleLimit),
		renderer: NewFrameRenderer(cfg),
	}

	log.Println("Creating cube...")
	g.scene.AddMesh(NewCubeMesh(), 0, 0, 0)

	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.spinning = !g.spinning
	}
	if g.spinning {
		g.angleX += 0.005
		g.angleY += 0.009
		rotX := mgl32.HomogRotate3DX(float32(g.angleX))
		rotY := mgl32.HomogRotate3DY(float32(g.angleY))
		g.renderer.SetModelMatrix(FromMgl32(rotY.Mul4(rotX)))
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	canvas := NewScreenCanvas(screen, color.White)
	g.scene.PaintMeshes(canvas, g.renderer)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.DisplayWidth), int(g.cfg.DisplayHeight)
}
