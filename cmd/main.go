package main

import (
	"go-doctor-directory/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize doctor directory: %v", err)
	}

	// Blocks until SIGINT/SIGTERM
	app.Run()
}
