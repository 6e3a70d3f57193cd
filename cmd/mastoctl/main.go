package main

import (
	"log"
	"os"

	"github.com/fedikit/masto/internal/cli"
)

func main() {
	cfg := cli.LoadConfig()

	application, err := cli.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer application.Close()

	if err := application.Run(os.Args[1:]); err != nil {
		log.Fatalf("mastoctl: %v", err)
	}
}
