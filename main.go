package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"msgdesk/internal/config"
	"msgdesk/internal/directory"
	"msgdesk/internal/eventbus"
	"msgdesk/internal/logging"
	"msgdesk/internal/source"
	"msgdesk/internal/ui"
)

func main() {
	var dataFile, configPath, logPath string
	var writeConfig bool
	flag.StringVar(&dataFile, "data", "", "Message file to open (.toml or mbox); empty uses the built-in dataset")
	flag.StringVar(&dataFile, "d", "", "Message file to open (shorthand)")
	flag.StringVar(&configPath, "config", config.DefaultPath(), "Path to the config file")
	flag.StringVar(&logPath, "log", "msgdesk.log", "Path to the log file")
	flag.BoolVar(&writeConfig, "write-config", false, "Write the effective config to -config and exit")
	flag.Parse()

	if dataFile == "" && flag.NArg() > 0 {
		dataFile = flag.Arg(0)
	}

	logger, err := logging.New(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not read .env", zap.Error(err))
	}

	bus := eventbus.New(logger)
	defer bus.Close()
	subscribeLogging(bus, logger)

	configSvc := config.NewConfigService(configPath, bus, logger)
	cfg, err := configSvc.Load()
	if err != nil {
		logger.Error("error loading config, using defaults", zap.Error(err))
		cfg = config.DefaultConfig()
		config.ApplyEnv(cfg)
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}

	if writeConfig {
		if err := configSvc.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", configSvc.Path())
		return
	}

	messages, err := source.Load(cfg.DataFile)
	if err != nil {
		logger.Error("failed to load messages", zap.String("source", cfg.DataFile), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error loading messages: %v\n", err)
		os.Exit(1)
	}

	store, err := directory.NewStore(messages)
	if err != nil {
		logger.Error("invalid message set", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error loading messages: %v\n", err)
		os.Exit(1)
	}
	bus.Publish(eventbus.MessagesLoadedEvent{Source: source.Describe(cfg.DataFile), Count: store.Len()})

	model := ui.NewModel(cfg, directory.NewQueryEngine(store), directory.NewSelection(store), bus, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	logger.Info("starting UI")
	if _, err := p.Run(); err != nil {
		logger.Error("error running program", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	logger.Info("UI exited normally")
}

// subscribeLogging writes domain events to the log
func subscribeLogging(bus eventbus.EventBus, logger *zap.Logger) {
	log := logger.Named("events")

	bus.Subscribe(eventbus.EventMessagesLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.MessagesLoadedEvent); ok {
			log.Info("messages loaded", zap.String("source", event.Source), zap.Int("count", event.Count))
		}
	})
	bus.Subscribe(eventbus.EventQueryChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.QueryChangedEvent); ok {
			log.Debug("query changed",
				zap.String("term", event.Term),
				zap.String("filter", event.Filter),
				zap.Int("results", event.ResultCount))
		}
	})
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionChangedEvent); ok {
			fields := []zap.Field{zap.Int("new_id", event.NewID)}
			if event.HadPrevious {
				fields = append(fields, zap.Int("old_id", event.OldID))
			}
			log.Info("selection changed", fields...)
		}
	})
	bus.Subscribe(eventbus.EventSelectionCleared, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionClearedEvent); ok {
			log.Info("selection cleared", zap.Int("previous_id", event.PreviousID))
		}
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Info("config loaded", zap.String("path", event.Path), zap.String("data_file", event.DataFile))
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Info("config saved", zap.String("path", event.Path))
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Error(event.Message, zap.Error(event.Err))
		}
	})
}
