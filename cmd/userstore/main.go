package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/userstore/internal/app"
	"github.com/dmitrijs2005/userstore/internal/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Printf("%v", err)
		os.Exit(2)
	}

	a, err := app.NewApp(ctx, cfg, os.Stderr, os.Stdout)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		os.Exit(1)
	}
}
