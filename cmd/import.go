package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/entraops/azrm/azure"
	"github.com/entraops/azrm/azure/authorization"
	"github.com/entraops/azrm/azure/directory"
	"github.com/entraops/azrm/global"
	"github.com/entraops/azrm/interchange"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replay an exported assignment file against a target subscription",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringP("file", "f", "", "exported assignment CSV to replay")
	importCmd.Flags().StringP(global.AzSubscriptionId, "s", "", "target subscription id")
	importCmd.Flags().String("report", "import-report.md", "path of the outcome report")

	if err := viper.BindPFlags(importCmd.Flags()); err != nil {
		cobra.CheckErr(err)
	}

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	logger := global.Logger()

	file := viper.GetString("file")
	subscriptionId := viper.GetString(global.AzSubscriptionId)

	// Validated before any provider call.
	if file == "" {
		return errors.New("an exported assignment file is required (--file)")
	}

	if subscriptionId == "" {
		return fmt.Errorf("a target subscription id is required (--%s)", global.AzSubscriptionId)
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("opening %s: %w", file, err)
	}
	defer f.Close()

	records, err := interchange.ReadAssignments(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", file, err)
	}

	cred, err := global.CreateCredential(viper.GetString(global.AzTenantId), viper.GetString(global.AzClientId), viper.GetString(global.AzSecret))
	if err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}

	dir, err := directory.NewService(cred)
	if err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}

	auth, err := authorization.NewService(cred, nil)
	if err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}

	reconciler := azure.NewReconciler(azure.NewResolver(dir), auth, viper.GetInt("workers"), viper.GetDuration("call-timeout"))

	outcomes := reconciler.Reconcile(cmd.Context(), records, subscriptionId)

	if err = writeReport(viper.GetString("report"), outcomes); err != nil {
		return err
	}

	summary := interchange.Summarize(outcomes)
	logger.Info("import complete",
		"records", len(records),
		"assigned", summary[azure.OutcomeAssigned],
		"alreadyAssigned", summary[azure.OutcomeAlreadyAssigned],
		"skipped", summary[azure.OutcomeSkippedRootScope]+summary[azure.OutcomeSkippedServicePrincipal],
		"failed", summary[azure.OutcomeFailed],
		"report", viper.GetString("report"))

	// Per-record failures are in the report; only fatal errors flip the exit
	// status.
	return nil
}

func writeReport(path string, outcomes []azure.ReconcileOutcome) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report %s: %w", path, err)
	}
	defer f.Close()

	if err = interchange.WriteReport(f, outcomes); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return f.Close()
}
