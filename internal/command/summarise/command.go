package summarise

import (
	"fmt"

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
		Name:  "summarise",
		Usage: "Run the summarisation agent on a prompt",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagPrompt,
				Aliases:  []string{"p"},
				Usage:    "Text to summarise",
				Required: true,
			},
		},
		Action: func(cCtx *cli.Context) error {
			// One-shot summarisation yields to interactive traffic.
			ctx := llmx.WithoutHighPriority(cCtx.Context)

			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse configuration")
			}

			client, err := common.NewChatCompleterFromConfig(ctx, conf)
			if err != nil {
				return errors.Wrap(err, "could not create llm client")
			}

			summariser := agent.NewSummarisationAgent(client, conf.LLM.Provider.ChatCompletionModel, conf.Agent.MaxValidationRetries)

			run := wrap.Chain[string, agent.Summary](
				summariser.Run,
				wrap.Timed[string, agent.Summary]("summarise"),
				wrap.Instrumented[string, agent.Summary]("summarise"),
			)

			summary, err := run(ctx, cCtx.String(flagPrompt))
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Println(summary.Condensed)

			return nil
		},
	}
}
