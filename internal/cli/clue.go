package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clue",
		Short: "Clue board commands",
	}

	cmd.AddCommand(newClueListCmd())
	cmd.AddCommand(newClueAddCmd())
	cmd.AddCommand(newClueDropCmd())
	cmd.AddCommand(newClueDeleteCmd())

	return cmd
}

func newClueListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clues on your board",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/clues"
			if all {
				path = "/api/v1/admin/clues"
			}

			var result []Clue
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every clue (staff only)")

	return cmd
}

func newClueAddCmd() *cobra.Command {
	var title, description, imageURL, location string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a clue you found",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"title":       title,
				"description": description,
				"image_url":   imageURL,
				"location":    location,
			}
			var result Clue

			if err := client.Post("/api/v1/clues", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Clue title (required)")
	cmd.Flags().StringVar(&description, "desc", "", "Clue description")
	cmd.Flags().StringVar(&imageURL, "image", "", "Image URL")
	cmd.Flags().StringVar(&location, "location", "", "Where the clue was found")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newClueDropCmd() *cobra.Command {
	var title, description, imageURL, location, target string

	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Drop a clue as the chief (staff only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"title":         title,
				"description":   description,
				"image_url":     imageURL,
				"location":      location,
				"target_player": target,
			}
			var result Clue

			if err := client.Post("/api/v1/admin/clues", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Clue title (required)")
	cmd.Flags().StringVar(&description, "desc", "", "Clue description")
	cmd.Flags().StringVar(&imageURL, "image", "", "Image URL")
	cmd.Flags().StringVar(&location, "location", "", "Where the clue was found")
	cmd.Flags().StringVar(&target, "for", "", "Target player email (empty means everyone)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newClueDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a clue (staff only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/admin/clues/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Deleted clue %s", args[0]))
			return nil
		},
	}
}
