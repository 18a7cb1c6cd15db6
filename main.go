package main

import (
	"github.com/gofiber/fiber/v2/log"

	h "github.com/journal-app/site/handlers"
	"github.com/journal-app/site/legal"
	"github.com/journal-app/site/server"
)

func main() {
	// Decode the embedded terms once up front so authoring mistakes stop startup
	doc, err := legal.Load()
	if err != nil {
		log.Fatalf("error loading terms of service: %v", err)
	}
	log.Infof("Loaded terms of service: %d sections, last updated %s", doc.Len(), doc.LastUpdated())

	// Initialize rendered page cache
	if err := h.InitPageCache(); err != nil {
		log.Fatalf("Failed to initialize page cache: %v", err)
	}

	log.Fatal(server.Start())
}
