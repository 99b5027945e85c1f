package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"resume-chat/internal/assistant"
	"resume-chat/internal/config"
	"resume-chat/internal/profile"
	"resume-chat/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, profilePath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/resume-chat/config.yaml if not provided)")
	flag.StringVar(&profilePath, "profile", "", "Path to the profile JSON document (overrides config)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if profilePath != "" {
		cfg.Profile = profilePath
	}

	p, err := profile.Load(cfg.Profile)
	if err != nil {
		log.Fatalf("failed to load profile: %v", err)
	}

	a := assistant.New(p, cfg)
	sess := a.NewSession()

	// One-shot mode: treat args as a single question and print the answer.
	if args := flag.Args(); len(args) > 0 {
		fmt.Println(a.ProcessQuery(sess, strings.Join(args, " ")))
		return
	}

	m := tui.New(a, sess, p.Personal.Name)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
