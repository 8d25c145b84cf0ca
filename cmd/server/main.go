package main

import (
	"log"
	"os"

	_ "github.com/fuzumoe/watercrawl-datasource/docs"
	"github.com/fuzumoe/watercrawl-datasource/internal/app"
)

// run is a variable so it can be overridden in tests.
var run = app.Run

// exitFunc is a variable wrapping os.Exit so it can be overridden in tests.
var exitFunc = os.Exit

// @title        Watercrawl Datasource API
// @version      1.0
// @description  Adapter service that exposes the Watercrawl crawling service
// @description  as a website datasource for an AI-workflow host.
// @BasePath     /
// @securityDefinitions.apikey PluginAuth
// @in   header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Printf("%v", err)
		exitFunc(1)
	}
}
