package bootstrap

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	dosinginadapter "medcalc/internal/modules/dosing/adapter/in"
	dosingservice "medcalc/internal/modules/dosing/service"
	dosingusecase "medcalc/internal/modules/dosing/usecase"
	formularyinadapter "medcalc/internal/modules/formulary/adapter/in"
	formularyoutadapter "medcalc/internal/modules/formulary/adapter/out"
	formularyservice "medcalc/internal/modules/formulary/service"
	formularyusecase "medcalc/internal/modules/formulary/usecase"
	"medcalc/internal/platform/clock"
	"medcalc/internal/platform/config"
	"medcalc/internal/platform/logging"
	uiapp "medcalc/internal/ui/app"
)

type App struct {
	FormularyCLI formularyinadapter.CLIHandler
	DosingCLI    dosinginadapter.CLIHandler
	Log          *log.Logger
}

func New(cfg config.Config) (*App, error) {
	logger, err := logging.New(cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	clk := clock.SystemClock{}

	catalogStore := formularyoutadapter.NewFileCatalogStore(cfg.FormularyPath)
	formularyUC := formularyusecase.NewInteractor(formularyservice.NewCatalogService(catalogStore))

	dosingUC := dosingusecase.NewInteractor(dosingservice.NewDoseService(clk), formularyUC)

	logger.Printf("bootstrap: formulary=%q", cfg.FormularyPath)

	return &App{
		FormularyCLI: formularyinadapter.NewCLIHandler(formularyUC),
		DosingCLI:    dosinginadapter.NewCLIHandler(dosingUC),
		Log:          logger,
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.FormularyCLI, app.DosingCLI, app.Log)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
