package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mathsolve/backend/conf"
	"github.com/mathsolve/backend/cooldown"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "server base URL")
	window := flag.Duration("cooldown", 0, "retry window after an incorrect answer (default from config.toml)")
	flag.Parse()

	if *window == 0 {
		config, err := conf.Load("config.toml")
		if err != nil {
			log.Fatal(err)
		}
		*window = config.CooldownWindow()
	}

	guard, err := cooldown.NewGuard(*window, cooldown.NewFileStore(statePath()))
	if err != nil {
		log.Fatal(err)
	}

	client := newApiClient(*server)

	p := tea.NewProgram(initialModel(client, guard))
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func statePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".mathsolve-cooldowns.json"
	}
	return filepath.Join(dir, "mathsolve", "cooldowns.json")
}
