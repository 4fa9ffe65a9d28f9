package client

import (
	"context"

	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/internal/service"
	"github.com/ndanilov/shelf-viewer/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) *App {
	return &App{services: services, tui: ui, logger: log}
}

// Run drives the whole client session. A logout from the main loop drops the
// current token and restarts from the login flow.
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.tui.LoginFlow(ctx); err != nil {
		return err
	}

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		a.services.AuthService.SignOut()
		return a.Run()
	}

	return nil
}
