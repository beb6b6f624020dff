package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hiveden/machinefacts/internal/api"
	"github.com/hiveden/machinefacts/internal/app"
	"github.com/hiveden/machinefacts/internal/config"
	"github.com/hiveden/machinefacts/internal/logging"
)

func main() {
	configFile := pflag.String("config", "", "config file")
	pflag.String("listen", config.Default().Listen, "Address to listen on")
	pflag.Parse()

	v := viper.New()
	if err := v.BindPFlag("listen", pflag.Lookup("listen")); err != nil {
		log.Fatalf("failed to bind flags: %v", err)
	}

	cfg, err := config.Load(v, *configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	machine := app.New(cfg, logger)
	apiHandler := api.NewAPIHandler(machine.Device, machine.Sysctl, logger.With(logging.KeyComponent, "api"))

	r := gin.Default()
	apiHandler.Register(r)

	logger.Info("listening", "addr", cfg.Listen)
	if err := r.Run(cfg.Listen); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
