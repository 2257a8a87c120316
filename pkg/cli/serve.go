/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/barcart/pkg/api"
	"github.com/mchmarny/barcart/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the catalog over REST and GraphQL",
		Description: `Starts the HTTP server exposing the /v1 REST routes and the
/graphql endpoint, plus /health, /ready, and /metrics. Blocks until
interrupted.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   server.NewConfig().Port,
				Usage:   "Port to listen on",
				Sources: cli.EnvVars(server.EnvVarPort),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.NewConfig()
			cfg.Port = cmd.Int("port")
			return api.ServeContext(ctx, cmd.String("data-dir"), server.WithConfig(cfg))
		},
	}
}
