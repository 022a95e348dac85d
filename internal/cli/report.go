package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report commands",
	}

	cmd.AddCommand(newReportSendCmd())
	cmd.AddCommand(newReportListCmd())
	cmd.AddCommand(newReportReadCmd())

	return cmd
}

func newReportSendCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a report to the chief",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"message": message}
			var result Report

			if err := client.Post("/api/v1/reports", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "Report message (required)")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func newReportListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all reports (staff only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Report
			if err := client.Get("/api/v1/admin/reports", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newReportReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a report as read (staff only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/admin/reports/%s/read", args[0])
			if err := client.Post(path, nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Marked report %s as read", args[0]))
			return nil
		},
	}
}
