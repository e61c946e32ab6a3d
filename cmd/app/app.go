package main

import (
	"os"

	"github.com/DRSN-tech/inventory-service/internal/app"
	config "github.com/DRSN-tech/inventory-service/internal/cfg"
	"github.com/DRSN-tech/inventory-service/pkg/logger"
)

//	@title			Inventory Service API
//	@version		1.0
//	@description	Каталог товаров, оформление заказов и прогноз остатков
//	@host			localhost:8080
//	@BasePath		/
func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
