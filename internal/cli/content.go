package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Site content commands",
	}

	cmd.AddCommand(newContentGetCmd())
	cmd.AddCommand(newContentSetCmd())

	return cmd
}

func newContentGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the site content",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SiteContent
			if err := client.Get("/api/v1/content", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newContentSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set key=value [key=value...]",
		Short: "Update site content entries (staff only)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Merge into the currently stored content so unmentioned keys survive
			var current SiteContent
			if err := client.Get("/api/v1/content", &current); err != nil {
				return err
			}
			if current == nil {
				current = SiteContent{}
			}

			for _, arg := range args {
				key, value, found := strings.Cut(arg, "=")
				if !found || key == "" {
					return fmt.Errorf("invalid entry %q, expected key=value", arg)
				}
				current[key] = value
			}

			req := map[string]any{"content": current}
			var result SiteContent
			if err := client.Put("/api/v1/admin/content", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	return cmd
}

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Game rules commands",
	}

	cmd.AddCommand(newRulesGetCmd())
	cmd.AddCommand(newRulesSetCmd())

	return cmd
}

func newRulesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the game rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Rules
			if err := client.Get("/api/v1/rules", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRulesSetCmd() *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the game rules (staff only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"content": content}
			var result Rules

			if err := client.Put("/api/v1/admin/rules", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Rules text (required)")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}
