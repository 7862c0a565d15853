package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/piresc/evoting/internal/pkg/models"
	scheduleUsecase "github.com/piresc/evoting/services/schedule/usecase"
	"github.com/spf13/cobra"
)

const cliActor = "cli"

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "schedule",
		Short:         "Open and close voting and run housekeeping jobs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.ensureConnected()
		},
	}
	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "config/voting.env", "env file read when APP_ENV=local")

	for _, category := range models.ScheduleCategories {
		for _, verb := range []string{models.ScheduleActionStart, models.ScheduleActionEnd} {
			rootCmd.AddCommand(actionCmd(c, verb+"-"+category))
		}
	}
	rootCmd.AddCommand(statusCmd(c))
	rootCmd.AddCommand(cleanupOTPCmd(c))
	rootCmd.AddCommand(expirePendingCmd(c))
	rootCmd.AddCommand(pruneLogsCmd(c))
	rootCmd.AddCommand(createAdminCmd(c))
	rootCmd.AddCommand(migrateCmd(c))

	return rootCmd
}

func actionCmd(c *cli, action string) *cobra.Command {
	var date string
	verb, category, _ := strings.Cut(action, "-")
	short := fmt.Sprintf("Open %s voting", category)
	if verb == models.ScheduleActionEnd {
		short = fmt.Sprintf("Close %s voting", category)
	}

	cmd := &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			effectiveAt, err := scheduleUsecase.ParseDate(date)
			if err != nil {
				return err
			}

			cs, err := c.scheduleUC.Apply(cmd.Context(), action, effectiveAt, cliActor)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s voting is now %s\n", cs.Category, activeLabel(cs.Active))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "effective date (YYYY-MM-DD, YYYY-MM-DD HH:MM or RFC3339), defaults to now")
	return cmd
}

func statusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether each category is open",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := c.scheduleUC.Status(cmd.Context())
			if err != nil {
				return err
			}

			for _, cs := range status.Categories {
				fmt.Fprintf(c.out, "%-10s %s", cs.Category, activeLabel(cs.Active))
				if cs.Start != "" {
					fmt.Fprintf(c.out, "  start=%s", cs.Start)
				}
				if cs.End != "" {
					fmt.Fprintf(c.out, "  end=%s", cs.End)
				}
				fmt.Fprintln(c.out)
			}
			fmt.Fprintf(c.out, "overall    %s\n", activeLabel(status.AnyActive))

			for _, entry := range status.Logs {
				fmt.Fprintf(c.out, "  %s  %-15s by %s (effective %s)\n",
					entry.LoggedAt.Format(time.RFC3339), entry.Action, entry.Actor, entry.EffectiveAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}

func cleanupOTPCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-otp",
		Short: "Delete expired admin login codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := c.authUC.CleanupExpired(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "removed %d expired codes\n", removed)
			return nil
		},
	}
}

func expirePendingCmd(c *cli) *cobra.Command {
	var hours int
	cmd := &cobra.Command{
		Use:   "expire-pending",
		Short: "Fail vote payments left pending for too long",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if hours < 0 {
				return fmt.Errorf("--hours must not be negative")
			}
			expired, err := c.votesUC.ExpirePending(cmd.Context(), time.Duration(hours)*time.Hour)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "expired %d pending payments\n", expired)
			return nil
		},
	}
	cmd.Flags().IntVar(&hours, "hours", 0, "age in hours after which a pending payment fails (0 uses PENDING_EXPIRY_HOURS)")
	return cmd
}

func pruneLogsCmd(c *cli) *cobra.Command {
	var keep int
	cmd := &cobra.Command{
		Use:   "prune-logs",
		Short: "Keep only the newest schedule audit entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := c.settingsUC.PruneScheduleLogs(cmd.Context(), keep)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "removed %d schedule log entries\n", removed)
			return nil
		},
	}
	cmd.Flags().IntVar(&keep, "keep", 50, fmt.Sprintf("entries to keep (at most %d)", models.MaxScheduleLogs))
	return cmd
}

func createAdminCmd(c *cli) *cobra.Command {
	var req models.CreateAdminRequest
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a back office account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := c.authUC.CreateAdmin(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "created %s admin %s (%s)\n", admin.Role, admin.Email, admin.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "login email")
	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Password, "password", "", "initial password (min 8 characters)")
	cmd.Flags().StringVar(&req.Role, "role", models.RoleAdmin, "super_admin or admin")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func migrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applied, err := c.migrate(cmd.Context())
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(c.out, "schema is up to date")
				return nil
			}
			for _, name := range applied {
				fmt.Fprintf(c.out, "applied %s\n", name)
			}
			return nil
		},
	}
}

func activeLabel(active bool) string {
	if active {
		return "ACTIVE"
	}
	return "INACTIVE"
}
