// chatlog 是交互日志的命令行工具：查看历史记录，或离线调用回复引擎。
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/contra-ai/contra/backend/internal/config"
	"github.com/contra-ai/contra/backend/internal/logging"
	"github.com/contra-ai/contra/backend/internal/service/responder"
	"github.com/contra-ai/contra/backend/internal/storage/interactionlog"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "chatlog",
		Short:         "Inspect the Contra.AI interaction log",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.AddCommand(newHistoryCmd(), newAskCmd())
	return root
}

func newHistoryCmd() *cobra.Command {
	var (
		limit   int
		asJSON  bool
		backend string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the most recent interactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logging.Setup(cfg.Logging)
			if backend != "" {
				cfg.Store.Backend = strings.ToLower(backend)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			store, err := interactionlog.Open(ctx, cfg.Store)
			if err != nil {
				return errors.Wrap(err, "open interaction log")
			}
			defer func() { _ = store.Close() }()

			records, err := store.ListRecent(ctx, limit)
			if err != nil {
				return errors.Wrap(err, "list interactions")
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTIME\tCULTURE\tINPUT\tRESPONSE")
			for _, rec := range records {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
					rec.ID, rec.Timestamp.Format(time.RFC3339), rec.Culture, rec.Input, rec.Response)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", interactionlog.DefaultLimit, "Maximum number of records to print")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print records as JSON")
	cmd.Flags().StringVar(&backend, "backend", "", "Override LOG_BACKEND (sqlite, redis, memory)")
	return cmd
}

func newAskCmd() *cobra.Command {
	var culture string

	cmd := &cobra.Command{
		Use:   "ask [message]",
		Short: "Generate a reply offline without touching the log",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.TrimSpace(strings.Join(args, " "))
			if message == "" {
				return errors.New("message cannot be empty")
			}
			fmt.Fprintln(cmd.OutOrStdout(), responder.New().Generate(culture, message))
			return nil
		},
	}

	cmd.Flags().StringVarP(&culture, "culture", "c", responder.UniversalPersona, "Persona label to answer as")
	return cmd
}
