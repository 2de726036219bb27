package main

import (
	"casino/internal/app"
	"log"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.Fatalf("failed to run app: %v", err)
	}
}
