package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"medication-tracker/internal/adapters/storage/sqlite"
	"medication-tracker/internal/config"
	"medication-tracker/internal/domain/medications"
	"medication-tracker/internal/domain/users"
	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/router"

	"github.com/spf13/cobra"
)

var (
	dbPath   string
	strict   bool
	authMode string
)

var errNotLoggedIn = errors.New("not logged in (run: medtrack login <email>)")

func main() {
	home, _ := os.UserHomeDir()
	defaultDB := filepath.Join(home, ".medtrack", "medtrack.db")

	rootCmd := &cobra.Command{
		Use:          "medtrack",
		Short:        "Medication intake tracker",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "database path")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "fail when several logs match the same slot")
	rootCmd.PersistentFlags().StringVar(&authMode, "auth-mode", string(users.ModeMock), "credential check: mock|local")

	rootCmd.AddCommand(signupCmd())
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(whoamiCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(todayCmd())
	rootCmd.AddCommand(takeCmd())
	rootCmd.AddCommand(skipCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app agrupa store y servicios para un comando.
type app struct {
	store *sqlite.Store
	svcs  router.Services
	log   logger.Logger
}

func openApp() (*app, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	s, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, err
	}

	// logs a stderr para no mezclar con la salida del comando
	log := logger.NewFromEnv(os.Stderr)

	return &app{
		store: s,
		log:   log,
		svcs: router.NewServices(router.Options{
			SQLite:   s,
			AuthMode: users.ParseMode(authMode),
			Strict:   strict,
			Location: time.Local,
			Logger:   log,
		}),
	}, nil
}

func (a *app) Close() error { return a.store.Close() }

// session es lo que se guarda bajo la clave "@user".
type session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func saveSession(ctx context.Context, s *sqlite.Store, u users.User) error {
	raw, err := json.Marshal(session{ID: u.ID, Name: u.Name, Email: u.Email})
	if err != nil {
		return err
	}
	return s.Put(ctx, sqlite.KeySession, string(raw))
}

func loadSession(ctx context.Context, s *sqlite.Store) (session, error) {
	raw, ok, err := s.Get(ctx, sqlite.KeySession)
	if err != nil {
		return session{}, err
	}
	if !ok {
		return session{}, errNotLoggedIn
	}

	var sess session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil || sess.ID == "" {
		return session{}, errNotLoggedIn
	}
	return sess, nil
}

// resolveMedication acepta el id completo o un prefijo único.
func resolveMedication(ctx context.Context, svc *medications.Service, ownerID, ref string) (medications.Medication, error) {
	ref = strings.TrimSpace(ref)
	if m, err := svc.GetForOwner(ctx, ownerID, ref); err == nil {
		return m, nil
	}

	list, err := svc.ListByOwner(ctx, ownerID)
	if err != nil {
		return medications.Medication{}, err
	}

	var found []medications.Medication
	for _, m := range list {
		if strings.HasPrefix(m.ID, ref) {
			found = append(found, m)
		}
	}
	switch len(found) {
	case 0:
		return medications.Medication{}, medications.ErrNotFound
	case 1:
		return found[0], nil
	default:
		return medications.Medication{}, fmt.Errorf("ambiguous id prefix %q (%d matches)", ref, len(found))
	}
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func parseSlot(s string) (medications.TimeOfDay, error) {
	t, ok := medications.ParseTimeOfDay(s)
	if !ok {
		return "", fmt.Errorf("%w: %q (use morning|afternoon|evening|night)", medications.ErrInvalidSlot, s)
	}
	return t, nil
}

func slotNames(slots []medications.TimeOfDay) string {
	parts := make([]string, 0, len(slots))
	for _, s := range slots {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}

// applyEnvDefaults: --strict y --auth-mode explícitos mandan; si no se pasan,
// se usan ADHERENCE_STRICT y AUTH_MODE.
func applyEnvDefaults(cmd *cobra.Command, cfg config.AppConfig) {
	if !cmd.Flags().Changed("strict") {
		strict = cfg.AdherenceStrict
	}
	if !cmd.Flags().Changed("auth-mode") {
		authMode = cfg.AuthMode
	}
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API over the local database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.ListenAddr
			}
			applyEnvDefaults(cmd, cfg)

			a, err := openApp()
			if err != nil {
				return err
			}
			// el server corre indefinidamente; no cerramos el store

			return runServer(a, cfg, addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "server address (default LISTEN_ADDR or :PORT)")
	return cmd
}
