package strokedtext

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// OnUpdate, when set, is called every tick before the scene updates.
	// Returning an error stops the game loop.
	OnUpdate func() error
	// ShowFPS attaches an FPS widget in the top-left corner.
	ShowFPS bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	if g.cfg.OnUpdate != nil {
		if err := g.cfg.OnUpdate(); err != nil {
			return err
		}
	}
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives scene until the window closes. The stroked
// text Plugin is built on scene if it has not been already.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("strokedtext: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	Plugin{}.Build(scene)
	if cfg.ShowFPS {
		NewFPSWidget(scene)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if err := ebiten.RunGame(&game{scene: scene, cfg: cfg}); err != nil {
		return fmt.Errorf("strokedtext: run: %w", err)
	}
	return nil
}
