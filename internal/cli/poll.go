package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func NewPollCommand(rootOpts *RootOptions) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "poll",
		Short: "Confirm pending payments and retry undelivered confirmation e-mails",
		Long: `Query the payment gateway for recent pending orders and mark the
confirmed ones as paid. Paid orders whose confirmation e-mail never went out
are retried in the same pass.

Example:
  tour-booking poll --once
  tour-booking poll`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoll(cmd.Context(), rootOpts, once)
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "run a single poll tick and exit")

	return cmd
}

func runPoll(ctx context.Context, opts *RootOptions, once bool) error {
	a, err := newApp(opts.Config, opts.Logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if once {
		return a.payments.PollPendingPayments(ctx)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	a.payments.RunPoller(ctx, opts.Config.Poller.Interval)
	return nil
}
