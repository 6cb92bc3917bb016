package main

import "velocity-proxy/internal/server"

func main() {
	server.Run()
}
