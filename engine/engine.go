package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/exp/rand"

	"github.com/frostpine/garland/engine/choreo"
	"github.com/frostpine/garland/engine/config"
	"github.com/frostpine/garland/engine/core"
	"github.com/frostpine/garland/engine/formation"
	"github.com/frostpine/garland/engine/gesture"
	kmath "github.com/frostpine/garland/engine/math"
	"github.com/frostpine/garland/engine/renderer"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

/**
 * @brief Engine owns the choreography core: the particle registry, the
 * mode state machine, the animator and the camera rig. Two entry points
 * drive it at their own natural rates: OnHandFrame once per captured
 * landmark frame, Tick once per rendered frame. The hand path is the only
 * writer of mode/focus state; the tick path only reads it.
 */
type Engine struct {
	currentStage Stage
	gameInstance *Game

	tuning  atomic.Pointer[config.Tuning]
	watcher *config.Watcher

	registry *choreo.Registry
	state    *choreo.State
	animator *choreo.Animator
	rig      *choreo.CameraRig

	clock *core.Clock
	rng   *rand.Rand
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, fmt.Errorf("engine requires a game with an application config")
	}
	core.SetLogLevel(g.ApplicationConfig.LogLevel)

	tuning, err := config.Load(g.ApplicationConfig.TuningPath)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	seed := g.ApplicationConfig.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	e := &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		registry:     choreo.NewRegistry(),
		state:        choreo.NewState(),
		animator:     choreo.NewAnimator(),
		rig:          choreo.NewCameraRig(tuning),
		clock:        core.NewClock(),
		rng:          rand.New(rand.NewSource(seed)),
	}
	e.tuning.Store(tuning)
	return e, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing

	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}

	tuning := e.tuning.Load()
	gen := formation.NewGenerator(tuning, e.rng)
	e.registry.Populate(gen.OrnamentSet(tuning.Particles.OrnamentCount))
	core.LogInfo("generated %d particles (%d will accept photos at slot interleave)",
		e.registry.Len(), e.registry.OrnamentCount())

	if path := e.gameInstance.ApplicationConfig.TuningPath; path != "" {
		w, err := config.NewWatcher(path, e.applyTuning)
		if err != nil {
			// Live tuning is a convenience; the display runs fine without it.
			core.LogWarn("tuning watcher disabled: %v", err)
		} else {
			e.watcher = w
		}
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}

	e.clock.Start()
	e.currentStage = EngineStageInitialized
	return nil
}

// applyTuning swaps in reloaded tuning. Rates and thresholds take effect on
// the next tick; existing formation targets are deliberately left alone —
// re-randomizing them would visibly pop every particle.
func (e *Engine) applyTuning(t *config.Tuning) {
	e.tuning.Store(t)
	core.EventFire(core.EventContext{Type: core.EVENT_CODE_CONFIG_RELOADED, Data: t})
}

// OnHandFrame ingests one landmark frame from the landmark source: either
// nil/short ("no hand") or 21 ordered points in [0,1] image space. It runs
// the classifier and the mode state machine synchronously.
func (e *Engine) OnHandFrame(landmarks []kmath.Vec2) {
	tuning := e.tuning.Load()
	res := gesture.Classify(landmarks, gesture.Thresholds{
		Pinch: tuning.Gesture.PinchThreshold,
		Fist:  tuning.Gesture.FistThreshold,
		Open:  tuning.Gesture.OpenThreshold,
	})
	if e.state.Apply(res, e.registry, e.rng) {
		core.LogDebug("mode -> %s (gesture %s)", e.state.Mode, res.Gesture)
		core.EventFire(core.EventContext{Type: core.EVENT_CODE_MODE_CHANGED, Data: e.state.Mode})
	}
}

// AddPhoto creates one photo particle for the given opaque texture handle,
// interleaved into the tree spiral, and makes it eligible for focus
// selection. Returns the new particle.
func (e *Engine) AddPhoto(texture string) *choreo.Particle {
	tuning := e.tuning.Load()
	gen := formation.NewGenerator(tuning, e.rng)

	photoCount := e.registry.PhotoCount() + 1
	p := gen.PlacePhoto(photoCount-1, photoCount, e.registry.OrnamentCount())
	if p == nil {
		return nil
	}
	p.Texture = texture
	e.registry.Add(p)

	core.LogInfo("photo %s added as particle %s (tree slot %d of %d)",
		texture, p.ID, formation.PhotoTreeIndex(photoCount-1, photoCount, e.registry.OrnamentCount()),
		e.registry.OrnamentCount())
	core.EventFire(core.EventContext{Type: core.EVENT_CODE_PHOTO_ADDED, Data: texture})
	return p
}

// Tick runs one animation frame and returns the packet the frontend should
// draw. delta is elapsed seconds since the previous tick.
func (e *Engine) Tick(delta float64) *renderer.RenderPacket {
	e.currentStage = EngineStageRunning
	e.clock.Update()

	tuning := e.tuning.Load()
	dt := float32(delta)

	e.animator.Tick(dt, tuning, e.state, e.registry, e.rig)
	e.rig.Update(dt, tuning, e.state)

	particles := e.registry.All()
	instances := make([]renderer.ParticleInstance, 0, len(particles))
	for _, p := range particles {
		instances = append(instances, renderer.ParticleInstance{
			ID:       p.ID,
			Kind:     p.Kind,
			Position: p.Transform.Position,
			Rotation: p.Transform.Rotation,
			Scale:    p.Transform.Scale,
			Texture:  p.Texture,
		})
	}

	return &renderer.RenderPacket{
		DeltaTime:      delta,
		View:           e.rig.GetView(),
		CameraPosition: e.rig.Position(),
		Mode:           e.state.Mode,
		Instances:      instances,
	}
}

// Mode exposes the current display mode for frontends that label it.
func (e *Engine) Mode() choreo.Mode {
	return e.state.Mode
}

// Elapsed is total running time in seconds.
func (e *Engine) Elapsed() float64 {
	return e.clock.Elapsed()
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError(err.Error())
		}
	}
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			core.LogError(err.Error())
		}
	}
	e.clock.Stop()
	return core.EventSystemShutdown()
}
