package cli

import (
	"github.com/spf13/cobra"
)

func NewNotifyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify <order-id>",
		Short: "Send the confirmation e-mail of an order",
		Long: `Attempt the order confirmation e-mail once. Orders that were already
notified are left alone; the outcome is reported in the logs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts.Config, rootOpts.Logger)
			if err != nil {
				return err
			}
			defer a.Close()

			a.notifications.SendOrderConfirmation(cmd.Context(), args[0])
			return nil
		},
	}

	return cmd
}
