package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/journalite/cmd/app/commands"
	cryptoService "github.com/allisson/journalite/internal/crypto/service"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-key-root",
			Usage: "Generate a new key-derivation root secret wrapped by a secrets keeper",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "keeper-uri",
					Value:    "",
					Required: true,
					Usage:    "Secrets keeper URI (e.g., base64key://, gcpkms://projects/.../cryptoKeys/...)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateKeyRoot(
					ctx,
					cryptoService.NewKeyRootService(),
					commands.DefaultIO().Writer,
					cmd.String("keeper-uri"),
				)
			},
		},
	}
}
