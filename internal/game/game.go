// Package game implements the main loop wiring generation, simulation
// and rendering.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/skyglide/internal/config"
	"github.com/Faultbox/skyglide/internal/engine/camera"
	"github.com/Faultbox/skyglide/internal/engine/input"
	"github.com/Faultbox/skyglide/internal/engine/scene"
	"github.com/Faultbox/skyglide/internal/engine/water"
	"github.com/Faultbox/skyglide/internal/engine/window"
	"github.com/Faultbox/skyglide/internal/gen/terrain"
	"github.com/Faultbox/skyglide/internal/gen/tree"
	"github.com/Faultbox/skyglide/internal/gen/vegetation"
	"github.com/Faultbox/skyglide/internal/logger"
	"github.com/Faultbox/skyglide/internal/sim/flight"
	"github.com/Faultbox/skyglide/pkg/math"
)

// Game is the main application instance.
type Game struct {
	cfg     *config.Config
	running bool

	window *window.Window
	input  *input.Input
	camera *camera.ChaseCamera

	field *terrain.Field
	model *flight.Model
	state *flight.State

	terrainRenderer  *scene.TerrainRenderer
	waterRenderer    *scene.WaterRenderer
	instanceRenderer *scene.InstanceRenderer
	treeRenderer     *scene.TreeRenderer
	env              scene.Environment

	season  tree.Season
	treePos math.Vec3

	proj    math.Mat4
	elapsed float32
}

// New creates the game and generates the world.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		season: tree.Summer,
		env:    scene.DefaultEnvironment(),
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "Skyglide",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := gl.Init(); err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.Viewport(0, 0, int32(cfg.Graphics.Width), int32(cfg.Graphics.Height))

	g.input = input.New(cfg.Graphics.Width, cfg.Graphics.Height)
	g.camera = camera.NewChaseCamera()
	g.resize(cfg.Graphics.Width, cfg.Graphics.Height)

	if err := g.buildWorld(); err != nil {
		g.window.Close()
		return nil, err
	}

	logger.Info("game initialized",
		zap.Int64("seed", cfg.World.Seed),
		zap.Int("grid", cfg.Terrain.GridResolution),
	)
	return g, nil
}

// buildWorld runs every generation pass and uploads the results.
func (g *Game) buildWorld() error {
	cfg := g.cfg
	start := time.Now()

	g.field = terrain.NewField(cfg.World, cfg.Terrain)
	classifier := terrain.NewClassifier(g.field)

	rng := rand.New(rand.NewSource(cfg.World.Seed))
	mesh := terrain.BuildMesh(g.field, classifier, cfg.World.Size, cfg.Terrain.GridResolution, rng)
	instances := vegetation.Scatter(g.field, cfg.World.Size, cfg.Vegetation, rng)
	g.treePos = findTreeSpot(g.field, cfg.World.Size, rng)

	g.model = flight.New(cfg.Flight, g.field)
	g.state = g.model.NewState(0, cfg.World.Size/4)

	var err error
	if g.terrainRenderer, err = scene.NewTerrainRenderer(); err != nil {
		return err
	}
	g.terrainRenderer.Upload(mesh)

	plane := water.BuildPlane(cfg.World.Size, cfg.World.WaterLevel, water.DefaultPadding)
	if g.waterRenderer, err = scene.NewWaterRenderer(plane); err != nil {
		return err
	}

	if g.instanceRenderer, err = scene.NewInstanceRenderer(); err != nil {
		return err
	}
	g.instanceRenderer.Upload(instances)

	if g.treeRenderer, err = scene.NewTreeRenderer(); err != nil {
		return err
	}
	g.treeRenderer.SetTree(tree.Generate(cfg.Tree, g.treePos, cfg.World.Seed))

	active := 0
	for _, inst := range instances {
		if inst.Active() {
			active++
		}
	}
	logger.Info("world generated",
		zap.Duration("took", time.Since(start)),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("vegetation", active),
	)
	return nil
}

// Run starts the main loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}

		for _, event := range g.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				g.resize(event.Width, event.Height)
			case input.EventKeyDown:
				switch event.Key {
				case sdl.SCANCODE_ESCAPE:
					g.running = false
				case sdl.SCANCODE_TAB:
					g.toggleSeason()
				}
			}
		}

		g.update(dt)
		g.render()
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if g.cfg.Graphics.ShowFPS {
				logger.Sugar.Debugf("fps %d (%.2fms)", frameCount, dt*1000)
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.terrainRenderer != nil {
		g.terrainRenderer.Destroy()
	}
	if g.waterRenderer != nil {
		g.waterRenderer.Destroy()
	}
	if g.instanceRenderer != nil {
		g.instanceRenderer.Destroy()
	}
	if g.treeRenderer != nil {
		g.treeRenderer.Destroy()
	}
	if g.window != nil {
		g.window.Close()
	}
}

// toggleSeason advances the season and rebuilds the tree with the same
// seed, synchronously within the tick.
func (g *Game) toggleSeason() {
	g.season = g.season.Next()
	g.treeRenderer.SetTree(tree.Generate(g.cfg.Tree, g.treePos, g.cfg.World.Seed))
	logger.Info("season changed", zap.Stringer("season", g.season))
}

func (g *Game) update(dt float32) {
	g.elapsed += dt
	inputX, inputY := g.input.PointerNormalized()
	g.model.Update(g.state, inputX, inputY, dt)
}

func (g *Game) render() {
	fog := g.env.FogColor
	gl.ClearColor(fog[0], fog[1], fog[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := g.camera.ViewMatrix(g.state.Position, g.state.Yaw)
	viewProj := g.proj.Mul(view)
	eye := g.camera.Position(g.state.Position, g.state.Yaw)

	// Billboard axes from the view matrix rows
	right := math.Vec3{X: view[0], Y: view[4], Z: view[8]}
	up := math.Vec3{X: view[1], Y: view[5], Z: view[9]}

	g.terrainRenderer.Render(viewProj, eye, g.env)
	g.instanceRenderer.Render(viewProj, eye, [3]float32{0.2, 0.42, 0.18}, g.env)
	g.treeRenderer.Render(viewProj, right, up, g.elapsed, g.season, g.env)
	g.waterRenderer.Render(viewProj, g.elapsed)
}

// resize updates the viewport and projection; world state is untouched.
func (g *Game) resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	aspect := float32(width) / float32(height)
	g.proj = math.Perspective(1.0, aspect, 0.5, 1000)
}

// findTreeSpot picks a deterministic scenic spot for the landmark tree:
// dry land well above the flooded basin, below half peak height. The
// highest such candidate wins; the fallback spot is only kept while no
// candidate passes the predicate.
func findTreeSpot(field *terrain.Field, size float32, rng *rand.Rand) math.Vec3 {
	half := size / 2
	minH := field.WaterLevel() + 2
	maxH := field.MaxElevation() * 0.5

	best := math.Vec3{X: half / 2, Z: half / 2}
	best.Y = field.HeightAt(best.X, best.Z)
	found := best.Y > minH && best.Y < maxH

	for i := 0; i < 64; i++ {
		x := rng.Float32()*size - half
		z := rng.Float32()*size - half
		h := field.HeightAt(x, z)
		if h <= minH || h >= maxH {
			continue
		}
		if !found || h > best.Y {
			best = math.Vec3{X: x, Y: h, Z: z}
			found = true
		}
	}
	return best
}
