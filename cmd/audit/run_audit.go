/*
 * Copyright (c) Yashwardhan-41007
 */

package audit

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/cmd/util"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/audit"
	atlasClient "github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/client"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/formatter"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/formatter/vulnerability"
)

var runAuditCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the IP access list audit over all projects",
	Long: "Run the IP access list audit over every project of the organization. " +
		"The process exits with the number of vulnerable projects found, " +
		"0 when the organization is clean and 1 when the audit could not start.",
	Example: `atlas-audit audit run --detection structured`,
	Run: func(cmd *cobra.Command, args []string) {
		detection, err := cmd.Flags().GetString("detection")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		classifier, err := audit.NewClassifier(detection)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		fromUserScopes, err := cmd.Flags().GetBool("from-user-scopes")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		reportFile, err := cmd.Flags().GetString("report-file")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		reportFormat, err := cmd.Flags().GetString("report-format")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		// An existing artifact is overwritten at the end of the run. Ask
		// before the first network call, not after the audit completed.
		if _, err := os.Stat(reportFile); err == nil {
			err := util.ConfirmCommand(
				"Report file "+reportFile+" exists and will be overwritten, continue?",
				force)
			if err != nil {
				logrus.Fatal(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
			}
		}

		authAPI, err := atlasClient.NewAtlasAPIClient()
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		auditor := audit.NewAuditor(authAPI, classifier, audit.Options{
			FromUserScopes: fromUserScopes,
			ReportFile:     reportFile,
			ReportFormat:   reportFormat,
		})

		result, err := auditor.Run()
		if err != nil {
			if errors.Is(err, audit.ErrInterrupted) {
				logrus.Errorf(formatter.Colorize(
					"\nAudit interrupted, no report written.\n", formatter.YellowColor))
				os.Exit(1)
			}
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		if len(result.Vulnerable) > 0 {
			logrus.Infof(formatter.Colorize("\nVULNERABLE PROJECTS:\n", formatter.RedColor))
			vulnerabilityCtx := formatter.Context{
				Output: os.Stdout,
				Format: vulnerability.NewVulnerabilityFormat(viper.GetString("output")),
			}
			vulnerability.Write(vulnerabilityCtx, result.Vulnerable)
		}

		os.Exit(util.ExitStatus(len(result.Vulnerable)))
	},
}

func init() {
	runAuditCmd.Flags().SortFlags = false

	runAuditCmd.Flags().String("detection", audit.DefaultDetectionMode,
		"[Optional] Detection mode. structured compares the cidrBlock and "+
			"ipAddress fields, substring matches the open-access literals "+
			"anywhere in the raw entry.")
	runAuditCmd.Flags().Bool("from-user-scopes", false,
		"[Optional] Derive affected clusters from database user CLUSTER scopes "+
			"instead of the clusters endpoint. (default false)")
	runAuditCmd.Flags().String("report-file", audit.DefaultReportFile,
		"[Optional] Path of the report artifact written when vulnerable "+
			"projects are found.")
	runAuditCmd.Flags().String("report-format", audit.ReportFormatJSON,
		"[Optional] Report artifact format. Allowed values: json, yaml.")
	runAuditCmd.Flags().BoolP("force", "f", false,
		"[Optional] Overwrite an existing report file without confirmation.")
}
