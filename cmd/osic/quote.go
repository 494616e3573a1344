package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/onestop/osic/internal/cli"
	"github.com/onestop/osic/internal/common"
	"github.com/onestop/osic/internal/config"
	"github.com/onestop/osic/internal/model"
	"github.com/onestop/osic/internal/pricing"
	"github.com/onestop/osic/internal/session"
	"github.com/onestop/osic/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func quoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Enter customers and record their policies",
		Long: `Interactively enter customers one after another.

For each customer you'll be prompted for:
  - Name, address, province, postal code and phone number
  - Number of cars and optional coverage (liability, glass, loaner car)
  - Payment method (full, monthly, or down payment)
  - Previous claims

A receipt is printed and the policy is appended to the policy file.
Policy numbers start at the value in the constants file for every run.`,
		RunE: runQuote,
	}

	cmd.Flags().Int("save-steps", 50, "steps in the save progress bar (0 disables it)")
	cmd.Flags().Duration("save-delay", 100*time.Millisecond, "delay between save progress steps")
	_ = viper.BindPFlag(config.KeySaveSteps, cmd.Flags().Lookup("save-steps"))
	_ = viper.BindPFlag(config.KeySaveDelay, cmd.Flags().Lookup("save-delay"))

	return cmd
}

func runQuote(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	constants, err := config.LoadConstants(settings.ConstantsFile)
	if err != nil {
		return common.NewUserError("Cannot start without valid pricing constants", err)
	}

	policies, err := storage.NewPolicyFile(settings.PoliciesFile)
	if err != nil {
		return fmt.Errorf("failed to initialize policy file: %w", err)
	}

	slog.Debug("Starting policy session",
		"constants_file", settings.ConstantsFile,
		"policies_file", policies.Path(),
		"next_policy_number", constants.NextPolicyNumber)

	handler := cli.NewInterruptHandler(cmd.OutOrStdout())
	ctx, stop := handler.HandleInterrupts(cmd.Context(), policies.Path())
	defer stop()

	prompter := cli.NewCLIPrompter(cmd.InOrStdin(), cmd.OutOrStdout(),
		cli.WithSaveAnimation(settings.SaveSteps, settings.SaveDelay))

	desk := session.New(prompter, pricing.NewEngine(constants), policies,
		session.WithSavedHook(func(r model.PolicyRecord) {
			prompter.ShowSaved(r.PolicyNumber, policies.Path())
		}))

	summary, err := desk.Run(ctx, constants.NextPolicyNumber)
	slog.Debug("Policy session finished",
		"policies_written", summary.PoliciesWritten,
		"next_policy_number", summary.NextPolicyNumber)

	if err != nil {
		if handler.WasInterrupted() {
			return nil
		}
		if errors.Is(err, common.ErrInputTerminated) {
			return common.NewUserError("Input ended before the policy was complete", err)
		}
		return err
	}

	prompter.ShowGoodbye()
	return nil
}
