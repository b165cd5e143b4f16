package main

import (
	"fmt"
	"strings"
	"time"

	"medication-tracker/internal/domain/medications"

	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		dosage       string
		frequency    string
		times        []string
		start        string
		end          string
		instructions string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Register a medication",
		Args:  cobra.MinimumNArgs(1),
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

			in := medications.CreateInput{
				Name:         strings.Join(args, " "),
				Dosage:       dosage,
				Frequency:    frequency,
				TimesOfDay:   times,
				Instructions: instructions,
			}
			if start != "" {
				t, err := time.ParseInLocation("2006-01-02", start, time.Local)
				if err != nil {
					return fmt.Errorf("--start must be YYYY-MM-DD")
				}
				in.StartDate = &t
			}
			if end != "" {
				t, err := time.ParseInLocation("2006-01-02", end, time.Local)
				if err != nil {
					return fmt.Errorf("--end must be YYYY-MM-DD")
				}
				in.EndDate = &t
			}

			m, err := a.svcs.Medications.Create(ctx, sess.ID, in)
			if err != nil {
				return err
			}

			fmt.Printf("Added medication: %s\n", shortID(m.ID))
			fmt.Printf("%s %s (%s) at %s\n", m.Name, m.Dosage, m.Frequency, slotNames(m.Slots()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dosage, "dosage", "d", "", "dosage, e.g. 500mg")
	cmd.Flags().StringVarP(&frequency, "frequency", "f", "", "free text, e.g. twice daily")
	cmd.Flags().StringSliceVarP(&times, "times", "t", nil, "slots: morning,afternoon,evening,night")
	cmd.Flags().StringVar(&start, "start", "", "start date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&end, "end", "", "end date YYYY-MM-DD")
	cmd.Flags().StringVarP(&instructions, "instructions", "i", "", "free text instructions")
	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your medications",
		Args:  cobra.NoArgs,
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

			list, err := a.svcs.Medications.ListByOwner(ctx, sess.ID)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Println("No medications yet.")
				return nil
			}

			now := time.Now()
			for _, m := range list {
				mark := " "
				if !m.IsActiveOn(now) {
					mark = "x"
				}
				fmt.Printf("%s %s  %-20s %-10s %s\n", mark, shortID(m.ID), m.Name, m.Dosage, slotNames(m.Slots()))
			}
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a medication",
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

			fmt.Printf("ID:           %s\n", m.ID)
			fmt.Printf("Name:         %s\n", m.Name)
			fmt.Printf("Dosage:       %s\n", m.Dosage)
			fmt.Printf("Frequency:    %s\n", m.Frequency)
			fmt.Printf("Times:        %s\n", slotNames(m.Slots()))
			fmt.Printf("Start:        %s\n", m.StartDate.In(time.Local).Format("2006-01-02"))
			if m.EndDate != nil {
				fmt.Printf("End:          %s\n", m.EndDate.In(time.Local).Format("2006-01-02"))
			}
			if m.Instructions != "" {
				fmt.Printf("Instructions: %s\n", m.Instructions)
			}
			fmt.Printf("Active today: %v\n", m.IsActiveOn(time.Now()))
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a medication and all its logs",
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
			if err := a.svcs.Medications.Delete(ctx, sess.ID, m.ID); err != nil {
				return err
			}

			fmt.Printf("Deleted %s (%s)\n", m.Name, shortID(m.ID))
			return nil
		},
	}
}
