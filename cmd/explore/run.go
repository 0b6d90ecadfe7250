package main

import (
	"fmt"
	"io"

	"github.com/beka-birhanu/vinom-wumpus/config"
	"github.com/beka-birhanu/vinom-wumpus/game"
	"github.com/beka-birhanu/vinom-wumpus/game/wumpus"
	"github.com/spf13/cobra"
)

type runOptions struct {
	render  bool
	noColor bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run <world-file>",
		Short: "Explore a world file and print every step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := wumpus.Load(args[0])
			if err != nil {
				return err
			}
			return explore(cmd.OutOrStdout(), scenario, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.render, "render", false, "draw the world before exploring")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	return cmd
}

func explore(out io.Writer, scenario *wumpus.Scenario, opts *runOptions) error {
	p := &printer{out: out, color: !opts.noColor}

	if opts.render {
		fmt.Fprint(out, scenario.World.String())
	}

	p.line(config.ColorBlue, fmt.Sprintf("Starting at %s", scenario.Start))
	explorer := scenario.Explorer(game.WithObserver(p.event))
	explorer.Run()
	p.line(config.ColorGreen, "Exploration ended.")

	s := explorer.Snapshot()
	fmt.Fprintf(out, "steps: %d, visited: %d, safe: %d, gold: %d\n", s.Steps, len(s.Visited), len(s.Safe), s.GoldCollected)
	return p.err
}

// printer writes progress lines, keeping the first write error.
type printer struct {
	out   io.Writer
	color bool
	err   error
}

func (p *printer) event(r game.StepResult) {
	switch r.Kind {
	case game.EventCollected:
		p.line(config.ColorYellow, r.String())
	case game.EventHalted:
		p.line(config.ColorMagenta, r.String())
	default:
		p.line(config.ColorCyan, r.String())
	}
}

func (p *printer) line(color, msg string) {
	if p.err != nil {
		return
	}
	if p.color {
		_, p.err = fmt.Fprintf(p.out, "%s%s%s\n", color, msg, config.ColorReset)
		return
	}
	_, p.err = fmt.Fprintln(p.out, msg)
}
