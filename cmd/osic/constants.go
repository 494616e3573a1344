package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/onestop/osic/internal/cli"
	"github.com/onestop/osic/internal/common"
	"github.com/onestop/osic/internal/config"
	"github.com/onestop/osic/internal/model"
	"github.com/onestop/osic/internal/pricing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func constantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Show the pricing constants in use",
		Long: `Load the pricing constants file and show its values.

Use this to check a constants file before starting a session; a file
that does not hold exactly 8 numbers is rejected here the same way.`,
		RunE: runConstants,
	}
}

func runConstants(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	constants, err := config.LoadConstants(settings.ConstantsFile)
	if err != nil {
		return common.NewUserError("Pricing constants are not valid", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderConstants(settings.ConstantsFile, constants))
	return err
}

func renderConstants(path string, c model.PricingConstants) string {
	label := lipgloss.NewStyle().Width(24)
	value := lipgloss.NewStyle().Width(12).Align(lipgloss.Right)

	rows := []struct {
		name  string
		value string
	}{
		{"Next policy number", fmt.Sprintf("%d", c.NextPolicyNumber)},
		{"Basic premium", "$" + c.BasicPremium.StringFixed(2)},
		{"Additional car rate", c.DiscountRate.String()},
		{"Extra liability / car", "$" + c.LiabilityCost.StringFixed(2)},
		{"Glass coverage / car", "$" + c.GlassCoverageCost.StringFixed(2)},
		{"Loaner car / car", "$" + c.LoanerCarCost.StringFixed(2)},
		{"HST rate", c.HSTRate.String()},
		{"Processing fee", "$" + c.ProcessingFee.StringFixed(2)},
		{"Installments", fmt.Sprintf("%d", pricing.Installments)},
	}

	out := cli.FormatTitle("Pricing constants") + "\n" + cli.SubtleStyle.Render(path) + "\n\n"
	for _, r := range rows {
		out += label.Render(r.name) + value.Render(r.value) + "\n"
	}
	return out
}
