package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"typeahead/internal/catalog"
	"typeahead/internal/config"
	"typeahead/internal/eventbus"
	"typeahead/internal/logging"
	"typeahead/internal/ui"
)

var (
	configPath   string
	optionsFile  string
	autocomplete bool
	logPath      string
	verbosity    int

	log      logr.Logger
	flushLog func()
)

var rootCmd = &cobra.Command{
	Use:   "typeahead",
	Short: "An accessible city picker for the terminal",
	Long: `typeahead is a terminal city picker built around a combobox:
type to filter the list, arrow through the matches, and press Enter or
click to select. Selections can be persisted and restored across runs.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		log, flushLog = logging.New(logPath, verbosity)
		log = log.WithValues("command", cmd.Name())
	},
}

func init() {
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		defer flushLog()
		return run()
	}
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the config file (default: user config dir)")
	rootCmd.Flags().StringVarP(&optionsFile, "options", "o", "", "file with one option label per line (default: built-in city list)")
	rootCmd.Flags().BoolVarP(&autocomplete, "autocomplete", "a", false, "preview the highlighted option in the input while navigating")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-file", "typeahead.log", "file to write logs to")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "log verbosity; higher is chattier")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func run() error {
	bus := eventbus.New()

	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := loadConfig(configSvc)
	if err != nil {
		log.Error(err, "loading config failed; using defaults")
		cfg = config.DefaultConfig()
	}
	if rootCmd.Flags().Changed("autocomplete") {
		cfg.Autocomplete = autocomplete
	}

	options, err := loadOptions(cfg)
	if err != nil {
		return fmt.Errorf("loading options: %w", err)
	}
	log.Info("options loaded", "count", len(options))

	m := ui.NewModel(bus, cfg, options, log.WithName("ui"))
	if cfg.LastSelection != "" {
		m.Session().Input.Placeholder = fmt.Sprintf("Start typing a city (last: %s)", cfg.LastSelection)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	m.SetProgram(p)

	// Persist each committed selection so the next run can offer it back.
	unsubscribe := bus.Subscribe(eventbus.EventSelectionCommitted, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.SelectionCommittedEvent)
		if !ok {
			return
		}
		cfg.LastSelection = event.Value
		if !cfg.UISettings.SaveOnSelect {
			return
		}
		if err := saveConfig(configSvc, cfg); err != nil {
			log.Error(err, "saving selection failed")
			bus.Publish(eventbus.ErrorEvent{Message: "Could not save selection", Err: err})
		}
	})
	defer unsubscribe()

	// Selections, saves and errors reach the UI as status messages. Send
	// is queued, so publishing from inside the model's own update is safe.
	for _, et := range []eventbus.EventType{
		eventbus.EventSelectionCommitted,
		eventbus.EventConfigSaved,
		eventbus.EventError,
	} {
		defer bus.Subscribe(et, func(e eventbus.DomainEvent) {
			go p.Send(ui.EventMsg{Event: e})
		})()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func loadConfig(svc config.ConfigService) (*config.Config, error) {
	if configPath == "" {
		return svc.Load()
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		return config.DefaultConfig(), nil
	}
	return svc.LoadFromPath(abs)
}

func saveConfig(svc config.ConfigService, cfg *config.Config) error {
	if configPath == "" {
		return svc.Save(cfg)
	}
	return svc.SaveToPath(cfg, configPath)
}

func loadOptions(cfg *config.Config) ([]string, error) {
	path := optionsFile
	if path == "" {
		path = cfg.OptionsFile
	}
	if path == "" {
		return catalog.Builtin(), nil
	}
	return catalog.LoadFile(path)
}
