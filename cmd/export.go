package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/entraops/azrm/azure"
	"github.com/entraops/azrm/azure/authorization"
	"github.com/entraops/azrm/azure/directory"
	"github.com/entraops/azrm/global"
	"github.com/entraops/azrm/interchange"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export role assignments, custom roles and group memberships from every accessible subscription",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("out", "o", "rbac-export", "output directory")

	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		cobra.CheckErr(err)
	}

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	logger := global.Logger()

	cred, err := global.CreateCredential(viper.GetString(global.AzTenantId), viper.GetString(global.AzClientId), viper.GetString(global.AzSecret))
	if err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}

	dir, err := directory.NewService(cred)
	if err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}

	auth, err := authorization.NewService(cred, dir)
	if err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}

	sink, err := interchange.NewDirectorySink(viper.GetString("out"))
	if err != nil {
		return err
	}

	exporter := azure.NewExporter(auth, dir, sink, viper.GetInt("workers"), viper.GetDuration("call-timeout"))

	summary, err := exporter.Export(cmd.Context())
	if err != nil {
		return err
	}

	// Per-scope failures are reported, not fatal.
	if summary.ScopeErrors != nil {
		logger.Warn("some scopes could not be exported", "failed", summary.FailedScopes, "error", summary.ScopeErrors)
	}

	logger.Info("export complete",
		"subscriptions", summary.Subscriptions,
		"assignments", summary.Assignments,
		"customRoles", summary.CustomRoles,
		"groupSnapshots", summary.GroupSnapshots,
		"out", viper.GetString("out"))

	return nil
}
