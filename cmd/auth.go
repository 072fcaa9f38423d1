/*
 * Copyright (c) Yashwardhan-41007
 */

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	atlasClient "github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/client"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/formatter"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate atlas-audit",
	Long: "Authenticate atlas-audit by providing the host, the organization ID " +
		"and your browser session cookie string.",
	Run: func(cmd *cobra.Command, args []string) {
		var host string
		var orgID string

		// Prompt for the host
		fmt.Print("Enter Host [https://cloud.mongodb.com]: ")
		fmt.Scanln(&host)
		if len(host) == 0 {
			host = "https://cloud.mongodb.com"
		}
		viper.GetViper().Set("host", &host)

		// Prompt for the organization ID
		fmt.Print("Enter Organization ID: ")
		_, err := fmt.Scanln(&orgID)
		if err != nil {
			logrus.Fatalln(
				formatter.Colorize("Could not read organization ID: "+err.Error(),
					formatter.RedColor))
		}
		if len(orgID) == 0 {
			logrus.Fatalln(
				formatter.Colorize("Organization ID cannot be empty.", formatter.RedColor))
		}
		viper.GetViper().Set("org", &orgID)

		// Prompt for the cookie string, without echoing it
		fmt.Print("Enter browser cookie string: ")
		data, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			logrus.Fatalln(
				formatter.Colorize("Could not read cookie string: "+err.Error(),
					formatter.RedColor))
		}
		cookieString := strings.TrimSpace(string(data))
		if cookieString == "" {
			logrus.Fatalln(
				formatter.Colorize("Cookie string cannot be empty.\n"+
					atlasClient.CookieInstructions(), formatter.RedColor))
		}
		viper.GetViper().Set("cookies", &cookieString)

		// Before writing the config, validate that the session works
		url, err := atlasClient.ParseURL(host)
		if err != nil {
			logrus.Fatal(formatter.Colorize(err.Error(), formatter.RedColor))
		}

		authAPI, err := atlasClient.NewAtlasAPIClientInitialize(
			url, atlasClient.ParseCookieString(cookieString), orgID)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		projects := authAPI.ListProjects()
		if len(projects) == 0 {
			logrus.Fatalln(formatter.Colorize(
				"Could not list any projects with the provided session. "+
					"Check the organization ID and that the cookies have not expired.\n",
				formatter.RedColor))
		}
		logrus.Infof("Session validated, found %d project(s).\n", len(projects))

		err = viper.WriteConfig()
		if err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				fmt.Fprintln(os.Stdout, "No config was found a new one will be created.")
				//Try to create the file
				err = viper.SafeWriteConfig()
				if err != nil {
					logrus.Fatalf(
						formatter.Colorize(
							"Error when writing new config file: "+err.Error()+"\n",
							formatter.RedColor))
				}
			} else {
				logrus.Fatalf(
					formatter.Colorize(
						"Error when writing config file: "+err.Error()+"\n",
						formatter.RedColor))
			}
		}
		configFileUsed := viper.GetViper().ConfigFileUsed()
		if len(configFileUsed) == 0 {
			configFileUsed = "$HOME/.atlas-audit/.atlas-audit.yaml"
		}
		logrus.Infof("Configuration file '%v' sucessfully updated.\n", configFileUsed)
	},
}
