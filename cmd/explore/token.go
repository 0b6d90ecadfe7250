package main

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-wumpus/config"
	"github.com/beka-birhanu/vinom-wumpus/infrastruture/token"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the exploration API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			tokenizer := token.NewJwtService(cfg.JWTSecret, cfg.JWTIssuer)

			tok, err := tokenizer.Generate(map[string]interface{}{"sub": subject}, ttl)
			if err != nil {
				return fmt.Errorf("generating token: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "caller the token identifies")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
