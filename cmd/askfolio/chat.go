package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkarev/askfolio/internal/agent"
	"github.com/mkarev/askfolio/internal/config"
	"github.com/mkarev/askfolio/internal/intent"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the portfolio agent in the terminal",
	Long:  "Runs the agent in-process (no server required) and keeps conversation history for follow-up questions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	kb, err := loadKnowledge(cfg)
	if err != nil {
		return err
	}
	ag := agent.New(kb)

	fmt.Fprintf(os.Stderr, "Chatting with %s's portfolio. Type 'exit' to quit.\n", kb.Profile().Name)

	var history []intent.Turn
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stderr, colorize(colorBold, "you> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		resp := ag.ProcessMessage(agent.Request{Message: line, History: history})

		fmt.Printf("%s %s\n", colorize(colorCyan, "agent>"), resp.Reply)
		if len(resp.Suggestions) > 0 {
			fmt.Printf("       %s %s\n", colorize(colorYellow, "try:"), strings.Join(resp.Suggestions, " | "))
		}

		history = append(history,
			intent.Turn{Role: intent.RoleUser, Content: line},
			intent.Turn{Role: intent.RoleAssistant, Content: resp.Reply},
		)
	}
	return scanner.Err()
}
