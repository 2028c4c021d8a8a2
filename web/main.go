package main

import (
	"flag"
	"log"
	"os"

	"github.com/halverson/go-sphere-tracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port)

	log.Printf("Sphere Tracer Web Server")
	log.Printf("Try http://localhost:%d/api/render?width=320&height=240&lx=2&ly=5&lz=2&intensity=1.5", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
