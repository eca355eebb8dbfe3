package main

import (
	"context"
	"os"

	"shop/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := cmd.NewLogger(configs, os.Stderr)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, logger, os.Stdout)
	if err = cmd.RunCheckout(context.Background(), &app); err != nil {
		log.Fatalf("Checkout failed: %v", err)
	}
}
