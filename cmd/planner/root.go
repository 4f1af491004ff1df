package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pkordes/trip-planner/internal/client"
	"github.com/pkordes/trip-planner/internal/notify"
)

// Config keys. Each is settable by flag, by PLANNER_<KEY> or in the config file.
const (
	cfgKeyServer   = "server"
	cfgKeyLogLevel = "log_level"
	cfgKeyJSON     = "json"
	cfgKeyTimeout  = "timeout"

	defaultServer = "http://localhost:8080"
)

var (
	flagConfig string

	cfg = viper.New()

	// app is built by PersistentPreRunE for every command.
	app *session
)

// session is what every command needs: the API client, the notifier the
// managers report to, and where to write.
type session struct {
	api    *client.Client
	notes  *notify.Notifier
	log    *slog.Logger
	out    io.Writer
	json   bool
	cancel context.CancelFunc
	ctx    context.Context
}

var rootCmd = &cobra.Command{
	Use:           "planner",
	Short:         "Plan trips from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		s, err := newSession(cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		app = s
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil {
			app.cancel()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default: ./planner.yaml or ~/.config/planner/planner.yaml)")
	pf.String(cfgKeyServer, defaultServer, "base URL of the trip planner API")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.Bool(cfgKeyJSON, false, "print JSON instead of text")
	pf.Duration(cfgKeyTimeout, 30*time.Second, "overall command timeout")

	rootCmd.AddCommand(tripsCmd())
	rootCmd.AddCommand(activitiesCmd())
	rootCmd.AddCommand(expensesCmd())
	rootCmd.AddCommand(packingCmd())
	rootCmd.AddCommand(flightsCmd())
	rootCmd.AddCommand(hotelsCmd())
	rootCmd.AddCommand(overviewCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(currencyCmd())
	rootCmd.AddCommand(weatherCmd())
}

// loadConfig resolves settings with flags > PLANNER_* env > config file > defaults.
func loadConfig(cmd *cobra.Command) error {
	cfg.SetEnvPrefix("planner")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	pf := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		cfgKeyServer:   cfgKeyServer,
		cfgKeyLogLevel: "log-level",
		cfgKeyJSON:     cfgKeyJSON,
		cfgKeyTimeout:  cfgKeyTimeout,
	} {
		if err := cfg.BindPFlag(key, pf.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	if flagConfig != "" {
		cfg.SetConfigFile(flagConfig)
	} else {
		cfg.SetConfigName("planner")
		cfg.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.AddConfigPath(dir + "/planner")
		}
	}
	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func newSession(out, errOut io.Writer) (*session, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.GetString(cfgKeyLogLevel))); err != nil {
		level = slog.LevelWarn
	}
	log := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	api, err := client.New(cfg.GetString(cfgKeyServer))
	if err != nil {
		return nil, err
	}

	notes := notify.New(notify.WithOnChange(func(n notify.Notification) {
		if n.Active() {
			fmt.Fprintf(errOut, "[%s] %s\n", n.Kind, n.Message)
		}
	}))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.GetDuration(cfgKeyTimeout))
	return &session{
		api:    api,
		notes:  notes,
		log:    log,
		out:    out,
		json:   cfg.GetBool(cfgKeyJSON),
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// printJSON writes v indented when --json is set and reports whether it did.
func (s *session) printJSON(v any) (bool, error) {
	if !s.json {
		return false, nil
	}
	enc := json.NewEncoder(s.out)
	enc.SetIndent("", "  ")
	return true, enc.Encode(v)
}
