package main

import (
	"fmt"
	"time"

	"medication-tracker/internal/domain/tracking"

	"github.com/spf13/cobra"
)

func todayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today [id]",
		Short: "Show today's status per time of day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			sess, err := loadSession(ctx, a.store)
			if err != nil {
				return err
			}

			m, err := resolveMedication(ctx, a.svcs.Medications, sess.ID, args[0])
			if err != nil {
				return err
			}

			view, err := a.svcs.Tracking.Today(ctx, sess.ID, m.ID)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s  (%s)\n", m.Name, m.Dosage, view.Date.Format("2006-01-02"))
			if !view.Active {
				fmt.Println("(not active today)")
			}
			for _, st := range view.Statuses.Ordered() {
				fmt.Printf("  %-10s %s\n", st.Slot, st.Status)
			}
			if len(view.Ambiguous) > 0 {
				fmt.Printf("  warning: several logs for %s\n", slotNames(view.Ambiguous))
			}
			return nil
		},
	}
}

func takeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "take [id] [slot]",
		Short: "Mark a time of day as taken",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return recordCmd(cmd, args[0], func(a *app, owner, medID string) (tracking.RecordResult, error) {
				slot, err := parseSlot(args[1])
				if err != nil {
					return tracking.RecordResult{}, err
				}
				return a.svcs.Tracking.MarkTaken(cmd.Context(), owner, medID, slot)
			})
		},
	}
}

func skipCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "skip [id] [slot]",
		Short: "Mark a time of day as skipped",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return recordCmd(cmd, args[0], func(a *app, owner, medID string) (tracking.RecordResult, error) {
				slot, err := parseSlot(args[1])
				if err != nil {
					return tracking.RecordResult{}, err
				}
				return a.svcs.Tracking.Skip(cmd.Context(), owner, medID, slot, reason)
			})
		},
	}

	cmd.Flags().StringVarP(&reason, "reason", "r", "", "why the dose was skipped")
	return cmd
}

func recordCmd(cmd *cobra.Command, ref string, fn func(a *app, owner, medID string) (tracking.RecordResult, error)) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	sess, err := loadSession(ctx, a.store)
	if err != nil {
		return err
	}

	m, err := resolveMedication(ctx, a.svcs.Medications, sess.ID, ref)
	if err != nil {
		return err
	}

	res, err := fn(a, sess.ID, m.ID)
	if err != nil {
		return err
	}

	action := "taken"
	if res.Log.Skipped {
		action = "skipped"
	}
	fmt.Printf("%s %s: %s at %s\n", m.Name, res.Slot, action, res.Log.Timestamp.In(time.Local).Format("15:04"))
	if res.SlotMismatch {
		fmt.Printf("note: logged outside the %s hours\n", res.Slot)
	}
	return nil
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [id]",
		Short: "List all logs for a medication, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			sess, err := loadSession(ctx, a.store)
			if err != nil {
				return err
			}

			m, err := resolveMedication(ctx, a.svcs.Medications, sess.ID, args[0])
			if err != nil {
				return err
			}

			logs, err := a.svcs.Tracking.History(ctx, sess.ID, m.ID)
			if err != nil {
				return err
			}
			if len(logs) == 0 {
				fmt.Println("No logs yet.")
				return nil
			}

			for _, l := range logs {
				state := "taken  "
				if l.Skipped {
					state = "skipped"
				}
				line := fmt.Sprintf("%s  %s", l.Timestamp.In(time.Local).Format("2006-01-02 15:04"), state)
				if l.Notes != "" {
					line += "  " + l.Notes
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}
