package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-wumpus/game"
	"github.com/beka-birhanu/vinom-wumpus/game/wumpus"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	width   int
	height  int
	pitProb float32
	gold    int
	wumpus  bool
	seed    int64
	output  string
	render  bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random world file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed := opts.seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			model := wumpus.HazardModel{PitProb: opts.pitProb, Gold: opts.gold, Wumpus: opts.wumpus}
			scenario, err := wumpus.Generate(opts.width, opts.height, game.Coordinate{X: 1, Y: 1}, model, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}

			text, err := scenario.Encode()
			if err != nil {
				return err
			}

			if opts.render {
				fmt.Fprint(cmd.ErrOrStderr(), scenario.World.String())
			}

			if opts.output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}
			if err := os.WriteFile(opts.output, []byte(text), 0o644); err != nil {
				return fmt.Errorf("writing world: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "world written to %s (seed %d)\n", opts.output, seed)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.width, "width", 4, "number of columns")
	f.IntVar(&opts.height, "height", 4, "number of rows")
	f.Float32Var(&opts.pitProb, "pit-prob", 0.2, "base pit probability, scaled by distance from the start")
	f.IntVar(&opts.gold, "gold", 1, "gold pieces to place")
	f.BoolVar(&opts.wumpus, "wumpus", true, "place a wumpus")
	f.Int64Var(&opts.seed, "seed", 0, "random seed (0 uses the clock)")
	f.StringVarP(&opts.output, "output", "o", "", "write the world to this file instead of stdout")
	f.BoolVar(&opts.render, "render", false, "draw the world on stderr")
	return cmd
}
