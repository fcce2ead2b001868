// cmd/alfenread/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/tamzrod/alfen-reader/internal/config"
	"github.com/tamzrod/alfen-reader/internal/reader"
	"github.com/tamzrod/alfen-reader/internal/report"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: alfenread <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	// --------------------
	// Connect and read
	// --------------------

	r, closeClient, err := reader.Build(cfg.Charger)
	if err != nil {
		log.Fatalf("connect failed (endpoint=%s): %v", cfg.Charger.Endpoint, err)
	}
	defer closeClient()

	st, err := r.ReadStation()
	if err != nil {
		log.Fatalf("station read failed: %v", err)
	}
	printLines(report.StationLines(st))

	// Explicit socket list from config wins; default is every socket the
	// station reports.
	sockets := cfg.Charger.Sockets
	if len(sockets) == 0 {
		for n := 1; n <= st.SocketCount; n++ {
			sockets = append(sockets, n)
		}
	}

	// One bad socket does not abort the rest of the pass.
	failed := 0
	for _, n := range sockets {
		sock, err := r.ReadSocket(n, st.SocketCount)
		if err != nil {
			log.Printf("socket %d read failed: %v", n, err)
			failed++
			continue
		}
		fmt.Println()
		printLines(report.SocketLines(sock))
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func printLines(lines []string) {
	for _, l := range lines {
		fmt.Println(l)
	}
}
