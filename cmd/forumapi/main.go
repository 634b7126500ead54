package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/forumapi/forumapi/internal/config"
	"github.com/forumapi/forumapi/internal/logger"
	"github.com/forumapi/forumapi/internal/router"
	"github.com/forumapi/forumapi/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to set up dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	port := cfg.Public.HttpPort
	if port == 0 {
		port = 8080
	}

	logger.Log.Info("server started", "port", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), r); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
