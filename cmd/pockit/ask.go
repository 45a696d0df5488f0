package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pockit/internal/assistant"
	"github.com/Veraticus/pockit/internal/cli"
	"github.com/Veraticus/pockit/internal/llm"
)

// dryRunReply is the canned classifier answer used by ask --dry-run.
const dryRunReply = `{"json":{"phoneNumber":null,"amount":500,"spentCategory":"groceries",` +
	`"methodeOfPayment":"card","receiver":"BigBazaar"},"message":"Got it! Logged ₹500 for groceries at BigBazaar."}`

func askCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Send one message and print the reply",
		Long: `Send a single message to the assistant, print its reply and record any
transaction or savings milestone it extracted.

With --dry-run no provider is contacted and nothing is stored; a canned
reply is interpreted instead.`,
		Example: `  pockit ask "I spent 500 on groceries at BigBazaar using card"
  pockit ask --lang hi "मैंने 2000 बचाए"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().Bool("dry-run", false, "Interpret a canned reply without calling the provider or storing anything")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	text := strings.Join(args, " ")

	newChat := chatFactory(llm.NewMockClient(dryRunReply), nil)
	if !dryRun {
		client, err := createLLMClient()
		if err != nil {
			return err
		}

		store, err := initStorage(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer closeStorage(store)

		newChat = chatFactory(client, store)
	}

	chat := newChat(appConfig.Language())
	msg, err := chat.Submit(ctx, text)
	if errors.Is(err, assistant.ErrEmptyInput) {
		return err
	}

	out := cmd.OutOrStdout()
	if err != nil {
		fmt.Fprintln(out, cli.ErrorStyle.Render(msg.Text))
		return fmt.Errorf("request failed (%s): %w", assistant.KindOf(err), err)
	}

	fmt.Fprintln(out, cli.RenderReply(msg, chat.Language()))
	return nil
}
