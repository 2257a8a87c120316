/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	cnserrors "github.com/mchmarny/barcart/pkg/errors"
	"github.com/mchmarny/barcart/pkg/query"
)

func ingredientsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "ingredients",
		EnableShellCompletion: true,
		Usage:                 "List ingredients or look one up by id or name",
		Description: `Without flags, lists every ingredient in catalog order.
With --id or --name, prints the single matching ingredient.
Name matching ignores case; id matching is exact.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "id",
				Usage: "Ingredient id (e.g., 1)",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Ingredient name, case-insensitive (e.g., vodka)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			engine, err := loadEngine(ctx, cmd)
			if err != nil {
				return err
			}

			if id := cmd.String("id"); id != "" {
				ing := engine.IngredientByID(id)
				if ing == nil {
					return notFound("ingredient", "id", id)
				}
				return write(ctx, cmd, query.NewIngredientView(ing))
			}

			if n := cmd.String("name"); n != "" {
				ing := engine.IngredientByName(n)
				if ing == nil {
					return notFound("ingredient", "name", n)
				}
				return write(ctx, cmd, query.NewIngredientView(ing))
			}

			return write(ctx, cmd, query.NewIngredientViews(engine.AllIngredients()))
		},
	}
}

func drinksCmd() *cli.Command {
	return &cli.Command{
		Name:                  "drinks",
		EnableShellCompletion: true,
		Usage:                 "List drinks or look them up by id, name, or ingredient",
		Description: `Without flags, lists every drink in catalog order.
With --id or --name, prints the single matching drink with its resolved
ingredient details. With --ingredient, lists drinks whose ingredient list
contains that name, ignoring case.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "id",
				Usage: "Drink id (e.g., 11007)",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Drink name, case-insensitive (e.g., margarita)",
			},
			&cli.StringFlag{
				Name:    "ingredient",
				Aliases: []string{"i"},
				Usage:   "Ingredient name the drink must contain (e.g., tequila)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			engine, err := loadEngine(ctx, cmd)
			if err != nil {
				return err
			}

			if id := cmd.String("id"); id != "" {
				d := engine.DrinkByID(id)
				if d == nil {
					return notFound("drink", "id", id)
				}
				return write(ctx, cmd, engine.DrinkView(d))
			}

			if n := cmd.String("name"); n != "" {
				d := engine.DrinkByName(n)
				if d == nil {
					return notFound("drink", "name", n)
				}
				return write(ctx, cmd, engine.DrinkView(d))
			}

			if ing := cmd.String("ingredient"); ing != "" {
				return write(ctx, cmd, engine.DrinkViews(engine.DrinksWithIngredient(ing)))
			}

			return write(ctx, cmd, engine.DrinkViews(engine.AllDrinks()))
		},
	}
}

func notFound(kind, key, value string) error {
	return cnserrors.NewWithContext(cnserrors.ErrCodeNotFound,
		fmt.Sprintf("%s with %s %q not found", kind, key, value),
		map[string]any{key: value})
}
