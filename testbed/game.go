// Package testbed is the runnable frontend of the display: an ebiten app
// that fabricates hand-landmark frames from mouse and keyboard, forwards
// them to the choreography engine, and draws the resulting particle cloud
// as a depth-sorted 2D projection.
package testbed

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/frostpine/garland/engine"
	"github.com/frostpine/garland/engine/choreo"
	"github.com/frostpine/garland/engine/core"
	kmath "github.com/frostpine/garland/engine/math"
	"github.com/frostpine/garland/engine/renderer"
)

const (
	windowWidth  = 1280
	windowHeight = 720

	fovDegrees = 45.0
	nearClip   = 0.1
	farClip    = 200.0
)

var kindColors = map[choreo.Kind]color.RGBA{
	choreo.KindOrnamentSphereA: {R: 214, G: 48, B: 49, A: 255},
	choreo.KindOrnamentSphereB: {R: 253, G: 203, B: 110, A: 255},
	choreo.KindOrnamentCube:    {R: 0, G: 148, B: 50, A: 255},
	choreo.KindOrnamentCandy:   {R: 250, G: 250, B: 250, A: 255},
	choreo.KindDust:            {R: 170, G: 200, B: 235, A: 140},
	choreo.KindPhoto:           {R: 255, G: 255, B: 255, A: 255},
}

// Display drives the engine from the ebiten loop and draws its packets.
type Display struct {
	engine *engine.Engine
	photos map[string]*ebiten.Image

	lastErr error
}

func New() (*Display, error) {
	d := &Display{
		photos: map[string]*ebiten.Image{},
	}

	eng, err := engine.New(&engine.Game{
		ApplicationConfig: &engine.ApplicationConfig{
			StartWidth:  windowWidth,
			StartHeight: windowHeight,
			Name:        "Garland Holiday Tree",
			TuningPath:  "assets/config.toml",
			LogLevel:    core.InfoLevel,
		},
		FnInitialize: func() error {
			core.LogInfo("testbed display initializing...")
			return nil
		},
		FnShutdown: func() error {
			core.LogInfo("testbed display shutting down...")
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if err := eng.Initialize(); err != nil {
		return nil, err
	}

	d.engine = eng
	return d, nil
}

// currentShape maps held keys to the synthetic hand fed to the classifier.
func currentShape() handShape {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyH):
		return shapeAbsent
	case ebiten.IsKeyPressed(ebiten.KeyP):
		return shapePinch
	case ebiten.IsKeyPressed(ebiten.KeyF):
		return shapeFist
	case ebiten.IsKeyPressed(ebiten.KeyO):
		return shapeOpen
	}
	return shapeNeutral
}

func (d *Display) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		if err := d.engine.Shutdown(); err != nil {
			core.LogError(err.Error())
		}
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		if err := d.addPhoto(); err != nil {
			d.lastErr = err
			core.LogError(err.Error())
		}
	}

	mx, my := ebiten.CursorPosition()
	landmarks := synthesizeLandmarks(
		float32(mx)/float32(windowWidth),
		float32(my)/float32(windowHeight),
		currentShape(),
	)
	d.engine.OnHandFrame(landmarks)
	return nil
}

// addPhoto runs the photo ingestion path: dialog, thumbnail texture, one
// new photo particle.
func (d *Display) addPhoto() error {
	path, err := pickPhoto()
	if err != nil || path == "" {
		return err
	}
	img, err := loadPhotoThumb(path)
	if err != nil {
		return err
	}
	d.photos[path] = img
	d.engine.AddPhoto(path)
	return nil
}

func (d *Display) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 10, B: 24, A: 255})

	packet := d.engine.Tick(1.0 / float64(ebiten.TPS()))
	d.drawPacket(screen, packet)

	status := fmt.Sprintf(
		"mode: %s | photos: U | gestures: F fist=tree  O open=scatter  P pinch=focus  H hide hand | quit: Esc",
		packet.Mode,
	)
	if d.lastErr != nil {
		status += " | error: " + d.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// projected is one instance after view/projection transform, ready for
// painter's-algorithm sorting.
type projected struct {
	inst  renderer.ParticleInstance
	x, y  float32
	size  float32
	viewZ float32
}

func (d *Display) drawPacket(screen *ebiten.Image, packet *renderer.RenderPacket) {
	proj := kmath.NewMat4Perspective(
		kmath.DegToRad(fovDegrees),
		float32(windowWidth)/float32(windowHeight),
		nearClip, farClip,
	)
	viewProj := packet.View.Mul(proj)

	items := make([]projected, 0, len(packet.Instances))
	for _, inst := range packet.Instances {
		clip := inst.Position.Transform(viewProj)
		if clip.W <= nearClip {
			continue
		}
		ndcX := clip.X / clip.W
		ndcY := clip.Y / clip.W
		items = append(items, projected{
			inst:  inst,
			x:     (ndcX*0.5 + 0.5) * windowWidth,
			y:     (1.0 - (ndcY*0.5 + 0.5)) * windowHeight,
			size:  inst.Scale / clip.W * windowHeight,
			viewZ: clip.W,
		})
	}

	// Painter's algorithm: farthest first.
	sort.Slice(items, func(i, j int) bool {
		return items[i].viewZ > items[j].viewZ
	})

	for _, it := range items {
		if it.size < 0.2 {
			continue
		}
		if it.inst.Kind == choreo.KindPhoto {
			d.drawPhoto(screen, it)
			continue
		}
		vector.DrawFilledCircle(screen, it.x, it.y, it.size, kindColors[it.inst.Kind], true)
	}
}

func (d *Display) drawPhoto(screen *ebiten.Image, it projected) {
	img, ok := d.photos[it.inst.Texture]
	if !ok {
		vector.DrawFilledCircle(screen, it.x, it.y, it.size, kindColors[choreo.KindPhoto], true)
		return
	}
	side := it.size * 2.0
	scale := float64(side) / float64(img.Bounds().Dx())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(img.Bounds().Dx())/2, -float64(img.Bounds().Dy())/2)
	op.GeoM.Rotate(float64(it.inst.Rotation.Z))
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(it.x), float64(it.y))
	screen.DrawImage(img, op)
}

func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}
