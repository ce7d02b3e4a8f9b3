// Command solvecli asks the configured completion API one question from the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SaiNageswarS/doubt-solver-api/appconfig"
	"github.com/SaiNageswarS/doubt-solver-api/solver"
	"github.com/SaiNageswarS/go-api-boot/dotenv"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func main() {
	dotenv.LoadEnv()

	if err := newApp(os.Stdout, newSolver).Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSolver(cfg *appconfig.AppConfig) solver.Solver {
	return solver.NewQuestionSolver(cfg)
}

func newApp(out io.Writer, build func(*appconfig.AppConfig) solver.Solver) *cli.App {
	return &cli.App{
		Name:  "solvecli",
		Usage: "solve an academic question and explain the student's doubt",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "question", Aliases: []string{"q"}, Usage: "the question to solve"},
			&cli.StringFlag{Name: "doubt", Aliases: []string{"d"}, Usage: "what is confusing about it"},
			&cli.StringFlag{Name: "config", Value: appconfig.DefaultConfigPath, Usage: "optional ini config file"},
			&cli.StringFlag{Name: "model", Usage: "override the completion model"},
		},
		Action: func(c *cli.Context) error {
			question := strings.TrimSpace(c.String("question"))
			if question == "" {
				return errors.New("question is required")
			}
			doubt := strings.TrimSpace(c.String("doubt"))
			if doubt == "" {
				return errors.New("doubt is required")
			}

			cfg, err := appconfig.Load(c.String("config"))
			if err != nil {
				return err
			}
			if m := c.String("model"); m != "" {
				cfg.Model = m
			}
			if !cfg.HasAPIKey() {
				color.New(color.FgYellow).Fprintf(out, "Warning: %s environment variable not set\n", appconfig.EnvGroqAPIKey)
			}

			solution := build(cfg).Solve(context.Background(), question, doubt)

			color.New(color.FgCyan, color.Bold).Fprintln(out, "Solution")
			fmt.Fprintln(out, solution)
			return nil
		},
	}
}
