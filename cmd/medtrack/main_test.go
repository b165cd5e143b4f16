package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"medication-tracker/internal/adapters/storage/sqlite"
	"medication-tracker/internal/config"
	"medication-tracker/internal/domain/medications"
	"medication-tracker/internal/domain/users"

	"github.com/spf13/cobra"
)

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := sqlite.Open(filepath.Join(t.TempDir(), "cli.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if _, err := loadSession(ctx, s); !errors.Is(err, errNotLoggedIn) {
		t.Fatalf("expected errNotLoggedIn, got %v", err)
	}

	if err := saveSession(ctx, s, users.User{ID: "u1", Name: "jane", Email: "jane@example.com"}); err != nil {
		t.Fatalf("saveSession: %v", err)
	}
	sess, err := loadSession(ctx, s)
	if err != nil || sess.ID != "u1" || sess.Email != "jane@example.com" {
		t.Fatalf("unexpected session %#v err=%v", sess, err)
	}

	_ = s.Delete(ctx, sqlite.KeySession)
	if _, err := loadSession(ctx, s); !errors.Is(err, errNotLoggedIn) {
		t.Fatalf("expected errNotLoggedIn after logout, got %v", err)
	}
}

func TestResolveMedicationByPrefix(t *testing.T) {
	ctx := context.Background()
	s, err := sqlite.Open(filepath.Join(t.TempDir(), "cli.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	svc := medications.NewService(sqlite.NewMedicationsRepo(s), sqlite.NewLogsRepo(s))

	m, err := svc.Create(ctx, "u1", medications.CreateInput{
		Name: "Ibuprofen", Dosage: "200mg", Frequency: "daily", TimesOfDay: []string{"morning"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := resolveMedication(ctx, svc, "u1", m.ID[:6])
	if err != nil || got.ID != m.ID {
		t.Fatalf("prefix lookup: %#v err=%v", got, err)
	}
	if _, err := resolveMedication(ctx, svc, "u2", m.ID[:6]); !errors.Is(err, medications.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other owner, got %v", err)
	}

	if _, err := parseSlot("brunch"); !errors.Is(err, medications.ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot, got %v", err)
	}
}

func TestApplyEnvDefaults(t *testing.T) {
	prevStrict, prevMode := strict, authMode
	t.Cleanup(func() { strict, authMode = prevStrict, prevMode })

	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "serve"}
		cmd.Flags().BoolVar(&strict, "strict", false, "")
		cmd.Flags().StringVar(&authMode, "auth-mode", string(users.ModeMock), "")
		return cmd
	}
	cfg := config.AppConfig{AdherenceStrict: true, AuthMode: "local"}

	// sin flags => env
	cmd := newCmd()
	applyEnvDefaults(cmd, cfg)
	if !strict || authMode != "local" {
		t.Fatalf("expected env values, got strict=%v mode=%s", strict, authMode)
	}

	// flags explícitos => ganan a env
	cmd = newCmd()
	_ = cmd.Flags().Set("strict", "false")
	_ = cmd.Flags().Set("auth-mode", "mock")
	applyEnvDefaults(cmd, cfg)
	if strict || authMode != "mock" {
		t.Fatalf("expected flag values, got strict=%v mode=%s", strict, authMode)
	}
}
