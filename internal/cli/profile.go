package cli

import (
	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile commands",
	}

	cmd.AddCommand(newProfileMeCmd())
	cmd.AddCommand(newProfileListCmd())

	return cmd
}

func newProfileMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show your detective profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Profile
			if err := client.Get("/api/v1/profiles/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newProfileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all detective profiles (staff only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Profile
			if err := client.Get("/api/v1/admin/profiles", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
