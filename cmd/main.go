package main

import (
	"countryfx/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Country Currency Exchange API
// @version 1.0.0
// @description Caches countries with exchange rates and estimated GDP.
// @BasePath /
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("Application stopped")
	}
}
