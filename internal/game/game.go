// Package game implements the demo session and the main loop around it.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/villagewalk/internal/assets"
	"github.com/Faultbox/villagewalk/internal/config"
	"github.com/Faultbox/villagewalk/internal/engine/debug"
	"github.com/Faultbox/villagewalk/internal/engine/input"
	"github.com/Faultbox/villagewalk/internal/engine/renderer"
	"github.com/Faultbox/villagewalk/internal/engine/window"
	"github.com/Faultbox/villagewalk/internal/logger"
)

// Title is the window title prefix.
const Title = "VillageWalk"

// Game owns the window and runs a Session in it.
type Game struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	loader   *assets.Loader
	watcher  *config.Watcher
	session  *Session
	shots    *debug.Screenshots
	log      *zap.Logger
}

// New creates the window, renderer and session. configPath is the file to
// watch for tuning changes when cfg.Assets.Watch is set.
func New(cfg *config.Config, configPath string) (*Game, error) {
	g := &Game{cfg: cfg, log: logger.Named("game")}

	g.log.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just made current.
	width, height := g.window.Size()
	g.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.loader, err = assets.NewLoader(cfg.Assets.Dir, cfg.Assets.Workers)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create asset loader: %w", err)
	}

	if cfg.Assets.Watch && configPath != "" {
		g.watcher, err = config.NewWatcher(configPath)
		if err != nil {
			g.log.Warn("config hot reload disabled", zap.String("path", configPath), zap.Error(err))
		}
	}

	g.input = input.New()
	g.shots = debug.NewScreenshots("screenshots", "villagewalk")
	g.session = NewSession(cfg, g.loader)
	if err := g.session.Start(); err != nil {
		g.Close()
		return nil, err
	}

	g.log.Info("game initialized successfully")
	return g, nil
}

// Run runs the main loop until the window closes or Escape is pressed.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()
	fps := 0

	g.log.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}

		titleDirty := false
		capture := false
		for _, event := range g.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				g.renderer.Resize(g.window.Size())
			case input.EventKeyDown:
				switch {
				case event.Key == "escape":
					g.running = false
				case event.Key == debug.ScreenshotKey:
					capture = true
				case g.session.Panel.HandleKey(event.Key):
					titleDirty = true
				}
			}
		}

		g.reloadConfig()
		g.session.Frame(dt, g.input.Keyboard())

		cam := g.session.Camera
		g.renderer.Render(g.session.Scene, cam.ViewMatrix(), cam.ProjectionMatrix(g.window.Aspect()))
		if capture {
			g.screenshot()
		}
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			fps = frameCount
			g.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", time.Duration(dt*float64(time.Second))))
			frameCount = 0
			fpsTimer = time.Now()
			titleDirty = true
		}
		if titleDirty {
			g.window.SetTitle(fmt.Sprintf("%s  %d fps  %s", Title, fps, g.session.Status()))
		}
	}

	return nil
}

func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	name, err := g.shots.Save(pixels, w, h)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("file", name))
}

// reloadConfig applies pending config file changes. A bad file is logged
// and the current tuning stays.
func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			cfg, err := config.Reload(path)
			if err != nil {
				g.log.Warn("config reload failed, keeping current tuning", zap.Error(err))
				continue
			}
			g.session.ApplyTuning(cfg)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("config watcher error", zap.Error(err))
		default:
			return
		}
	}
}

// Close releases every resource New acquired.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.watcher != nil {
		g.watcher.Close()
	}
	if g.loader != nil {
		g.loader.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
