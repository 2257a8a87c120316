/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/barcart/pkg/defaults"
	cnserrors "github.com/mchmarny/barcart/pkg/errors"
	"github.com/mchmarny/barcart/pkg/query"
)

func limitFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "limit",
		Value: defaults.PageLimit,
		Usage: "Maximum number of drinks to return",
	}
}

func offsetFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "offset",
		Value: defaults.PageOffset,
		Usage: "Number of matching drinks to skip",
	}
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "search",
		EnableShellCompletion: true,
		Usage:                 "Find drinks whose name contains a term",
		ArgsUsage:             "<term>",
		Description: `Lists drinks whose name contains the term, ignoring case.
An empty term matches every drink.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return tooManyArgs(cmd)
			}

			engine, err := loadEngine(ctx, cmd)
			if err != nil {
				return err
			}

			return write(ctx, cmd, engine.DrinkViews(engine.SearchDrinksByName(cmd.Args().First())))
		},
	}
}

func fuzzyCmd() *cli.Command {
	return &cli.Command{
		Name:                  "fuzzy",
		EnableShellCompletion: true,
		Usage:                 "Find drinks whose name approximately matches a term",
		ArgsUsage:             "<term>",
		Description: `Lists drinks whose name contains the term or scores above the
similarity threshold against it (e.g., "margerita" finds Margarita).
Without a term, lists the curated popular drinks and ignores paging.`,
		Flags: []cli.Flag{
			limitFlag(),
			offsetFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return tooManyArgs(cmd)
			}

			engine, err := loadEngine(ctx, cmd)
			if err != nil {
				return err
			}

			drinks := engine.FuzzySearchDrinksByName(cmd.Args().First(),
				cmd.Int("limit"), cmd.Int("offset"))
			return write(ctx, cmd, engine.DrinkViews(drinks))
		},
	}
}

func filterCmd() *cli.Command {
	return &cli.Command{
		Name:                  "filter",
		EnableShellCompletion: true,
		Usage:                 "Find drinks containing every listed ingredient",
		Description: `Lists drinks whose ingredient list contains all of the given
ingredient names, ignoring case. Names may be repeated or comma-separated:

  barcart filter -i gin -i vermouth
  barcart filter -i gin,vermouth --limit 5

Without ingredients, lists the curated popular drinks.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "ingredient",
				Aliases: []string{"i"},
				Usage:   "Ingredient name every result must contain",
			},
			limitFlag(),
			offsetFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			engine, err := loadEngine(ctx, cmd)
			if err != nil {
				return err
			}

			names := query.SplitNames(cmd.StringSlice("ingredient"))
			drinks := engine.DrinksWithIngredients(names, cmd.Int("limit"), cmd.Int("offset"))
			return write(ctx, cmd, engine.DrinkViews(drinks))
		},
	}
}

func randomCmd() *cli.Command {
	return &cli.Command{
		Name:                  "random",
		EnableShellCompletion: true,
		Usage:                 "Pick a random drink",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			engine, err := loadEngine(ctx, cmd)
			if err != nil {
				return err
			}

			d, err := engine.RandomDrink()
			if err != nil {
				return err
			}
			return write(ctx, cmd, engine.DrinkView(d))
		},
	}
}

func popularCmd() *cli.Command {
	return &cli.Command{
		Name:                  "popular",
		EnableShellCompletion: true,
		Usage:                 "List the curated popular drinks",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			engine, err := loadEngine(ctx, cmd)
			if err != nil {
				return err
			}
			return write(ctx, cmd, engine.DrinkViews(engine.Popular()))
		},
	}
}

func tooManyArgs(cmd *cli.Command) error {
	return cnserrors.New(cnserrors.ErrCodeInvalidRequest,
		fmt.Sprintf("%s takes at most one term, got %d (quote multi-word terms)", cmd.Name, cmd.Args().Len()))
}
