package main

import (
	"log"

	"github.com/Yxf-20160325/gomoku/api"
	"github.com/Yxf-20160325/gomoku/util"
	"go.uber.org/zap"
)

func main() {
	util.InitValidator()

	config, err := util.LoadConfig()

	if err != nil {
		log.Fatal(err)
	}

	logger, err := util.InitLogger()

	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	server := api.NewServer(config, logger)

	if err := server.Start(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
