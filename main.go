package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/unolite/server/network"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	_ = godotenv.Load()
	async.Async(func() {
		ws := network.NewWebsocketServer(envOr("UNO_WS_ADDR", ":9999"))
		log.Error(ws.Serve())
	})
	tcp := network.NewTcpServer(envOr("UNO_TCP_ADDR", ":9998"))
	log.Error(tcp.Serve())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
