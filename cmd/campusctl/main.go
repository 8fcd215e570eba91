package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Reksit/Hack4.0/client"
	"github.com/Reksit/Hack4.0/client/session"
	"github.com/Reksit/Hack4.0/internal/config"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// app carries the state shared by every sub-command of one invocation.
type app struct {
	baseURL    string
	sessionDir string
	debug      bool

	cfg   *config.Config
	store *session.BadgerStore
	api   *client.Client
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "campusctl",
		Short:         "campusctl talks to the campus backend: auth, alumni approvals, assessments, chat and AI tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "Backend API root (default $CAMPUS_API_BASE_URL or http://localhost:8080/api)")
	rootCmd.PersistentFlags().StringVar(&a.sessionDir, "session-dir", "", "Session store directory (default $CAMPUS_SESSION_DIR or ~/.campusctl/session)")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Enable verbose debug output including HTTP dumps")

	rootCmd.AddCommand(newAuthCmd(a))
	rootCmd.AddCommand(newAlumniCmd(a))
	rootCmd.AddCommand(newAssessmentCmd(a))
	rootCmd.AddCommand(newChatCmd(a))
	rootCmd.AddCommand(newAICmd(a))
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Parse()
	if err != nil {
		return err
	}
	if a.baseURL != "" {
		cfg.APIBaseURL = a.baseURL
	}
	if a.sessionDir != "" {
		cfg.SessionDir = a.sessionDir
	}
	cfg.Debug = cfg.Debug || a.debug
	if err := cfg.ResolveDefaults(); err != nil {
		return err
	}
	a.cfg = cfg

	config.InitLoggerTo(cmd.ErrOrStderr())
	config.SetLogLevel(cfg.Level())
	log.Debug().
		Str("api_base_url", cfg.APIBaseURL).
		Str("session_dir", cfg.SessionDir).
		Dur("http_timeout", cfg.HTTPTimeout).
		Msg("configuration loaded")
	return nil
}

// sessionStore opens the persistent store on first use.
func (a *app) sessionStore() (*session.BadgerStore, error) {
	if a.store != nil {
		return a.store, nil
	}
	if err := os.MkdirAll(a.cfg.SessionDir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	s, err := session.OpenBadger(a.cfg.SessionDir)
	if err != nil {
		return nil, err
	}
	a.store = s
	return s, nil
}

// client builds the facade on first use. Its notifier tells the user to log
// in again; there is no view to navigate to from a terminal.
func (a *app) client(cmd *cobra.Command) (*client.Client, error) {
	if a.api != nil {
		return a.api, nil
	}
	store, err := a.sessionStore()
	if err != nil {
		return nil, err
	}
	errOut := cmd.ErrOrStderr()
	notifier := session.NotifierFunc(func(_ context.Context, loginPath string) {
		_, _ = fmt.Fprintf(errOut, "session expired (%s); run \"campusctl auth login\"\n", loginPath)
	})
	c, err := client.New(a.cfg.APIBaseURL, store,
		client.WithHTTPTimeout(a.cfg.HTTPTimeout),
		client.WithLoginPath(a.cfg.LoginPath),
		client.WithNotifier(notifier),
		client.WithDebugLogging(a.cfg.Debug),
		client.WithHeader("User-Agent", "campusctl/1.0"),
	)
	if err != nil {
		return nil, err
	}
	a.api = c
	return c, nil
}

// close releases the client and the store lock; every leaf command calls it
// on the way out, success or not.
func (a *app) close() {
	if a.api != nil {
		_ = a.api.Close()
		a.api = nil
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			log.Warn().Err(err).Msg("close session store")
		}
		a.store = nil
	}
}

// run is the body shared by every endpoint command: build the client, make
// the call, print the result.
func run[T any](a *app, cmd *cobra.Command, call func(context.Context, *client.Client) (T, error)) error {
	defer a.close()
	c, err := a.client(cmd)
	if err != nil {
		return err
	}
	out, err := call(cmd.Context(), c)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readJSONInput decodes a JSON document from path ("-" reads stdin).
func readJSONInput(cmd *cobra.Command, path string, v any) error {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
