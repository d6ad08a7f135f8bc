package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkarev/askfolio/internal/config"
	"github.com/mkarev/askfolio/internal/resume"
	"github.com/mkarev/askfolio/internal/storage"
)

// --- transcripts ---

var transcriptsCmd = &cobra.Command{
	Use:   "transcripts",
	Short: "Inspect recorded chat transcripts",
}

var transcriptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent transcripts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		path := fmt.Sprintf("/admin/transcripts?limit=%d", limit)
		resp, err := client.get(cmd.Context(), path)
		if err != nil {
			return err
		}

		var transcripts []storage.Transcript
		if err := decodeJSON(resp, &transcripts); err != nil {
			return err
		}

		if len(transcripts) == 0 {
			fmt.Println("No transcripts found.")
			return nil
		}

		for _, tr := range transcripts {
			message := tr.Message
			if len(message) > 60 {
				message = message[:60] + "..."
			}
			fmt.Printf("%s  %s  %-16s %3d  %s\n",
				colorize(colorCyan, tr.ID[:8]),
				tr.CreatedAt.Format("2006-01-02 15:04"),
				tr.Intent,
				tr.Confidence,
				message,
			)
		}
		return nil
	},
}

var transcriptsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), "/admin/transcripts/"+args[0])
		if err != nil {
			return err
		}

		var tr any
		if err := decodeJSON(resp, &tr); err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tr)
	},
}

var transcriptsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.delete(cmd.Context(), "/admin/transcripts/"+args[0])
		if err != nil {
			return err
		}

		var result map[string]string
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		printSuccess("Deleted transcript %s", args[0])
		return nil
	},
}

var transcriptsFeedbackCmd = &cobra.Command{
	Use:   "feedback <id> <score>",
	Short: "Rate a transcript (1=bad answer, 5=good answer)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, _ := cmd.Flags().GetString("notes")

		var score int
		if _, err := fmt.Sscanf(args[1], "%d", &score); err != nil {
			return fmt.Errorf("score must be a number: %w", err)
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		body := map[string]any{"score": score, "notes": notes}
		resp, err := client.post(cmd.Context(), "/admin/transcripts/"+args[0]+"/feedback", body)
		if err != nil {
			return err
		}

		var result map[string]string
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		printSuccess("Recorded feedback for %s", args[0])
		return nil
	},
}

func init() {
	transcriptsListCmd.Flags().Int("limit", 20, "maximum number of transcripts to list")
	transcriptsFeedbackCmd.Flags().String("notes", "", "free-form notes about the answer")
	transcriptsCmd.AddCommand(transcriptsListCmd)
	transcriptsCmd.AddCommand(transcriptsShowCmd)
	transcriptsCmd.AddCommand(transcriptsDeleteCmd)
	transcriptsCmd.AddCommand(transcriptsFeedbackCmd)
}

// --- stats ---

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show intent frequency over recorded transcripts",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), "/admin/stats")
		if err != nil {
			return err
		}

		var stats []storage.IntentCount
		if err := decodeJSON(resp, &stats); err != nil {
			return err
		}

		if len(stats) == 0 {
			fmt.Println("No transcripts recorded yet.")
			return nil
		}

		for _, s := range stats {
			fmt.Printf("  %s %d\n", colorize(colorBold, s.Intent+":"), s.Count)
		}
		return nil
	},
}

// --- resume ---

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Print the extracted text of the configured resume PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Resume.Path == "" {
			return fmt.Errorf("no resume configured: set resume.path or ASKFOLIO_RESUME_PATH")
		}

		text, err := resume.ExtractText(cfg.Resume.Path)
		if err != nil {
			return err
		}

		fmt.Println(text)
		return nil
	},
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		keys := config.ShowAll(cfg)
		for _, k := range keys {
			fmt.Printf("  %-18s = %-40s (env %s)\n", colorize(colorBold, k.Key), k.Value, k.EnvVar)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.SetKey(key, value); err != nil {
			if errors.Is(err, config.ErrUnknownKey) {
				fmt.Fprintf(os.Stderr, "valid keys: %s\n", strings.Join(config.ValidKeys(), ", "))
			}
			return err
		}

		printSuccess("Set %s = %s", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
