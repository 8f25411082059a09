package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"travel-planner/internal/agent"
	"travel-planner/internal/app"
	"travel-planner/internal/model"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the travel assistant",
	Long: `Starts an interactive session. Each line is one message.

Commands:
  /clear  forget the conversation
  /quit   leave`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	components, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer components.Close(context.WithoutCancel(ctx))

	sc := model.Scope{UserID: userID, Username: userID}
	sessionID := uuid.NewString()
	defer components.Assistant.Close(sessionID)

	return chatLoop(ctx, components.Assistant, sc, sessionID, cmd.InOrStdin(), cmd.OutOrStdout())
}

func chatLoop(ctx context.Context, assistant agent.Assistant, sc model.Scope, sessionID string, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
		case "/quit", "/exit":
			return nil
		case "/clear":
			if err := assistant.Clear(ctx, sc, sessionID); err != nil {
				fmt.Fprintf(out, "clear failed: %v\n", err)
			} else {
				fmt.Fprintln(out, "(conversation cleared)")
			}
		default:
			reply, err := assistant.Process(ctx, agent.ProcessInput{SessionID: sessionID, Scope: sc, TripID: tripID, Message: line})
			if errors.Is(err, agent.ErrSessionClosed) {
				return nil
			}
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			} else {
				fmt.Fprintln(out, reply.Text)
			}
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}
