package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkordes/trip-planner/internal/domain"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat MESSAGE...",
		Short: "Ask the travel assistant a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			reply, err := app.api.Chat(app.ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(app.out, reply)
			return nil
		},
	}
}

func currencyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency AMOUNT [FROM] [TO]",
		Short: "Convert an amount between currencies (default USD to VND)",
		Args:  cobra.RangeArgs(0, 3),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				codes, err := app.api.Currencies(app.ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(app.out, strings.Join(codes, " "))
				return nil
			}
			amount, err := domain.ParseAmount(args[0])
			if err != nil {
				return err
			}
			var from, to string
			if len(args) > 1 {
				from = args[1]
			}
			if len(args) > 2 {
				to = args[2]
			}
			conv, err := app.api.Convert(app.ctx, amount, from, to)
			if err != nil {
				return err
			}
			if ok, err := app.printJSON(conv); ok {
				return err
			}
			fmt.Fprintf(app.out, "%s %s = %s %s\n",
				strconv.FormatFloat(conv.Amount, 'f', 2, 64), conv.From,
				strconv.FormatFloat(conv.Result, 'f', 2, 64), conv.To)
			return nil
		},
	}
	return cmd
}

func weatherCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weather LOCATION",
		Short: "Show the five-day forecast for a location",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			f, err := app.api.Weather(app.ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if ok, err := app.printJSON(f); ok {
				return err
			}
			fmt.Fprintln(app.out, f.Location)
			for _, d := range f.Days {
				fmt.Fprintf(app.out, "  %s  %3d°C  %s\n", d.Date.Format("Mon Jan 2"), d.Temp, d.Description)
			}
			return nil
		},
	}
}
