package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"repogrip/internal/config"
	"repogrip/internal/eventbus"
	"repogrip/internal/github"
	"repogrip/internal/logic"
	"repogrip/internal/notify"
	"repogrip/internal/ui"
)

func main() {
	var user, configPath, logPath, filter string
	var listOnly, noWatch bool
	flag.StringVar(&user, "user", "", "GitHub user whose repositories are listed")
	flag.StringVar(&user, "u", "", "GitHub user (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to config.toml")
	flag.StringVar(&logPath, "log", "", "Log file (overrides ui.log_file)")
	flag.BoolVar(&listOnly, "list", false, "Print the repositories of each user and exit")
	flag.StringVar(&filter, "filter", "", "Substring filter for -list")
	flag.BoolVar(&noWatch, "no-watch", false, "Do not reload the config file when it changes")
	flag.Parse()

	// A bare argument is taken as the user
	if user == "" && flag.NArg() > 0 {
		user = flag.Arg(0)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg := loadOrCreateConfig(configSvc)
	if user != "" {
		cfg.UISettings.DefaultUser = user
	}

	// Set up logging
	if logPath == "" {
		logPath = cfg.UISettings.LogFile
	}
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	client := github.NewClient(cfg.API.BaseURL, cfg.API.Timeout())
	client.PerPage = cfg.API.PerPage
	if cfg.API.UserAgent != "" {
		client.UserAgent = cfg.API.UserAgent
	}

	if listOnly {
		users := flag.Args()
		if len(users) == 0 && cfg.UISettings.DefaultUser != "" {
			users = []string{cfg.UISettings.DefaultUser}
		}
		if err := runList(ctx, os.Stdout, client, users, filter); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Every event goes to the log; the UI gets them for its status line
	logger := notify.NewLogger(nil)
	bus.SubscribeAll(logger.Handle)

	store := logic.NewListStore(bus, client, logic.WithPlaceholder(cfg.List.Placeholder))

	pager := ui.NewOvPager()
	model := ui.NewModel(ctx, cfg, store, pager)

	if !noWatch {
		watcher, err := config.NewWatcher(configSvc.Path(), config.WithOnError(func(err error) {
			log.Printf("Config watch error: %v", err)
		}))
		if err == nil {
			err = watcher.Start()
		}
		if err != nil {
			log.Printf("Config changes will not be picked up: %v", err)
		} else {
			defer watcher.Stop()
			model.WatchConfig(configSvc, watcher)
		}
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	pager.SetProgram(p)

	bus.SubscribeAll(func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	log.Printf("Starting UI...")
	if os.Getenv("REPOGRIP_E2E_TEST") == "1" {
		fmt.Print("__READY__")
	}
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited (%d list changes, %d fetch failures)", logger.Changes(), logger.Failures())
}

// loadOrCreateConfig loads the config file, writing defaults when none exists
func loadOrCreateConfig(configSvc config.ConfigService) *config.Config {
	if _, err := os.Stat(configSvc.Path()); os.IsNotExist(err) {
		cfg := config.DefaultConfig()
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
		} else {
			log.Printf("Created config at %s", configSvc.Path())
		}
		return cfg
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}
