package platform

import (
	"github.com/hubastard/firstgl/engine/core"
	glbackend "github.com/hubastard/firstgl/engine/gfx/gl"
)

// RunGL runs app in a GLFW window with the GL renderer. ready receives the
// renderer before app.OnStart so the app can build programs and meshes.
func RunGL(app core.App, cfg core.Config, ready func(*glbackend.RendererGL)) error {
	newWindow := func(cfg core.Config) (core.Window, error) {
		return NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		r, err := glbackend.NewRendererGL(win, cfg)
		if err != nil {
			return nil, err
		}
		if ready != nil {
			ready(r)
		}
		return r, nil
	}
	return core.Run(app, cfg, newWindow, newRenderer)
}

// LoadConfig reads path and falls back to title when the file sets none.
func LoadConfig(path, title string) (core.Config, error) {
	cfg, err := core.LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	if cfg.Title == core.DefaultConfig().Title {
		cfg.Title = title
	}
	return cfg, nil
}
