package chat

import (
	"fmt"
	"log/slog"

	"github.com/bornholm/aspect/agent"
	"github.com/bornholm/aspect/internal/command/common"
	"github.com/bornholm/aspect/internal/config"
	"github.com/bornholm/aspect/llmx"
	"github.com/bornholm/aspect/wrap"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const flagPrompt = "prompt"

func Command() *cli.Command {
	return &cli.Command{
		Name:  "chat",
		Usage: "Send one or more prompts to the chat agent",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     flagPrompt,
				Aliases:  []string{"p"},
				Usage:    "Prompt to send, repeatable",
				Required: true,
			},
		},
		Action: func(cCtx *cli.Context) error {
			// Interactive conversations keep going even when the rate
			// limiter is shedding low-priority traffic.
			ctx := llmx.WithHighPriority(cCtx.Context)

			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse configuration")
			}

			client, err := common.NewChatCompleterFromConfig(ctx, conf)
			if err != nil {
				return errors.Wrap(err, "could not create llm client")
			}

			chatter := agent.NewChatAgent(client, conf.LLM.Provider.ChatCompletionModel, conf.Agent.MaxValidationRetries)

			run := wrap.Chain[string, agent.ChatResponse](
				chatter.Run,
				wrap.Logged[string, agent.ChatResponse]("chat"),
			)

			for _, prompt := range cCtx.StringSlice(flagPrompt) {
				response, err := run(ctx, prompt)
				if err != nil {
					return errors.WithStack(err)
				}

				fmt.Println(response.Reply)
			}

			slog.DebugContext(ctx, "conversation finished", slog.Int("history_size", len(chatter.History())))

			return nil
		},
	}
}
