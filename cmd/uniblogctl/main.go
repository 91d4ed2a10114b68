package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/client"
	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/internal/config"
)

// flags shared by every command; empty values fall back to UNIBLOG_* env.
type rootFlags struct {
	host    string
	baseURL string
	token   string
	timeout time.Duration
	debug   bool
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:           "uniblogctl",
		Short:         "uniblogctl calls the blog/shop backend API and prints the response envelope",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        cmd.ErrOrStderr(),
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})
			if f.debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&f.host, "host", "", "Page hostname used to resolve the base URL (env UNIBLOG_HOST)")
	rootCmd.PersistentFlags().StringVar(&f.baseURL, "base-url", "", "Explicit API base URL, skips host resolution (env UNIBLOG_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&f.token, "token", "", "Bearer token sent with every call (env UNIBLOG_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&f.timeout, "timeout", 0, "Per-request timeout (env UNIBLOG_TIMEOUT, default 10s)")
	rootCmd.PersistentFlags().BoolVarP(&f.debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newLoginCmd(f))
	rootCmd.AddCommand(newRegisterCmd(f))
	rootCmd.AddCommand(newMeCmd(f))
	rootCmd.AddCommand(newUpdateMeCmd(f))
	rootCmd.AddCommand(newUsersCmd(f))
	rootCmd.AddCommand(newPostsCmd(f))
	rootCmd.AddCommand(newProductsCmd(f))
	rootCmd.AddCommand(newCategoriesCmd(f))
	rootCmd.AddCommand(newOrdersCmd(f))
	rootCmd.AddCommand(newStatsCmd(f))

	return rootCmd
}

// newClient layers flags over the environment config.
func (f *rootFlags) newClient() (*client.Client, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if f.host != "" {
		cfg.Host = f.host
	}
	if f.baseURL != "" {
		cfg.BaseURL = f.baseURL
	}
	if f.token != "" {
		cfg.Token = f.token
	}
	if f.timeout > 0 {
		cfg.Timeout = f.timeout
	}
	if f.debug {
		cfg.Debug = true
	}
	return client.New(cfg.ClientOptions()...)
}

// run builds a client, performs call, prints the envelope and turns a failed
// envelope into a command error.
func run[T any](cmd *cobra.Command, f *rootFlags, name string, call func(context.Context, *client.Client) *client.Response[T]) error {
	c, err := f.newClient()
	if err != nil {
		return err
	}
	log.Debug().Str("command", name).Str("base_url", c.BaseURL()).Msg("calling API")

	start := time.Now()
	resp := call(cmd.Context(), c)
	elapsed := time.Since(start)

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if !resp.Success {
		log.Error().Str("command", name).Int("status", resp.Status).Dur("elapsed", elapsed).Msg(resp.Error)
		return fmt.Errorf("%s: %s", name, resp.Error)
	}
	log.Debug().Str("command", name).Int("status", resp.Status).Dur("elapsed", elapsed).Msg("call completed")
	return nil
}

// decodeData parses a --data JSON payload into v.
func decodeData(raw string, v any) error {
	if raw == "" {
		return fmt.Errorf("--data is required")
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("invalid --data: %w", err)
	}
	return nil
}

func addPageFlags(cmd *cobra.Command, p *client.Page) {
	cmd.Flags().IntVar(&p.Skip, "skip", 0, "Number of records to skip")
	cmd.Flags().IntVar(&p.Limit, "limit", client.DefaultPageLimit, "Maximum number of records")
}
