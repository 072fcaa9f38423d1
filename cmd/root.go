/*
 * Copyright (c) Yashwardhan-41007
 */

package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/cmd/accesslist"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/cmd/audit"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/cmd/cluster"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/cmd/project"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/formatter"
	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/log"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile      string
	cfgDirectory string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "atlas-audit",
	Short: "atlas-audit - Audit MongoDB Atlas projects and clusters for " +
		"overly permissive IP access lists.",
	Long: `
	atlas-audit authenticates to the MongoDB Atlas management API with your
	browser session cookies, enumerates all projects of an organization and
	flags every project whose IP access list permits connections from
	anywhere (0.0.0.0/0).`,

	Run: func(cmd *cobra.Command, args []string) {
		myFigure := figure.NewFigure("atlas-audit", "", true)
		myFigure.Print()
		logrus.Printf("\n")
		cmd.Help()
	},
}

// called on module init
func init() {
	cobra.OnInitialize(initConfig)
	cobra.EnableCaseInsensitive = true

	setDefaults()
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.PersistentFlags().StringVar(&cfgDirectory, "directory", "",
		"Directory containing atlas-audit configuration and generated files. "+
			"If specified, the CLI will look for a configuration file named "+
			"'.atlas-audit.yaml' in this directory. Defaults to '$HOME/.atlas-audit/'.")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Full path to a specific configuration file for atlas-audit. "+
			"If provided, this takes precedence over the directory specified via --directory.")
	rootCmd.PersistentFlags().StringP("host", "H", "https://cloud.mongodb.com",
		"MongoDB Atlas host")
	rootCmd.PersistentFlags().StringP("cookies", "c", "",
		"Raw browser cookie string for the Atlas session. "+
			"Can also be set through the ATLAS_COOKIES environment variable.")
	rootCmd.PersistentFlags().StringP("org", "O", "",
		"MongoDB Atlas organization ID. "+
			"Can also be set through the ATLAS_ORG environment variable.")
	rootCmd.PersistentFlags().StringP("output", "o", formatter.TableFormatKey,
		"Select the desired output format. Allowed values: table, json, pretty.")
	rootCmd.PersistentFlags().StringP("logLevel", "l", "info",
		"Select the desired log level format. Allowed values: debug, info, warn, error, fatal.")
	rootCmd.PersistentFlags().Bool("debug", false, "Use debug mode, same as --logLevel debug.")
	rootCmd.PersistentFlags().
		Bool("disable-color", false, "Disable colors in output. (default false)")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second,
		"HTTP request timeout, example: 10s, 1m.")
	rootCmd.PersistentFlags().Bool("insecure", false,
		"Skip TLS certificate verification. Defaults to false.")

	//Bind peristents flags to viper
	viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("cookies", rootCmd.PersistentFlags().Lookup("cookies"))
	viper.BindPFlag("org", rootCmd.PersistentFlags().Lookup("org"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("logLevel", rootCmd.PersistentFlags().Lookup("logLevel"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("disable-color", rootCmd.PersistentFlags().Lookup("disable-color"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("insecure", rootCmd.PersistentFlags().Lookup("insecure"))

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(project.ProjectCmd)
	rootCmd.AddCommand(accesslist.AccessListCmd)
	rootCmd.AddCommand(cluster.ClusterCmd)
	rootCmd.AddCommand(audit.AuditCmd)
}

// Execute commands
func Execute(version string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("atlas-audit version: {{.Version}}\n")
	if err := rootCmd.Execute(); err != nil {
		// Set log level and formatter for this error
		log.SetLogLevel(viper.GetString("logLevel"), viper.GetBool("debug"))
		logrus.Fatal(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
	}
}

func setDefaults() {
	viper.SetDefault("host", "https://cloud.mongodb.com")
	viper.SetDefault("output", formatter.TableFormatKey)
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("debug", false)
	viper.SetDefault("disable-color", false)
	viper.SetDefault("timeout", 30*time.Second)
	viper.SetDefault("insecure", false)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else if cfgDirectory != "" {
		// Check if the directory exists
		if stat, err := os.Stat(cfgDirectory); err == nil && stat.IsDir() {
			configPath := filepath.Join(cfgDirectory, ".atlas-audit.yaml")
			viper.AddConfigPath(cfgDirectory)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".atlas-audit")
			viper.SetConfigFile(configPath)
		} else {
			logrus.Fatalf("%s",
				formatter.Colorize(
					"Provided configuration directory does not exist: "+cfgDirectory,
					formatter.RedColor,
				))
		}
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		homeDir, err := os.Stat(home)
		if err != nil {
			cobra.CheckErr(err)
		}
		homePerms := homeDir.Mode().Perm()
		os.Mkdir(filepath.Join(home, ".atlas-audit"), homePerms)
		// Search config in home directory with name ".atlas-audit" (without extension).
		viper.AddConfigPath(filepath.Join(home, ".atlas-audit"))
		viper.SetConfigType("yaml")
		viper.SetConfigName(".atlas-audit")
		viper.SetConfigFile(filepath.Join(home, ".atlas-audit", ".atlas-audit.yaml"))
	}

	// Load a local .env file when present, the same way the browser cookie
	// string is usually handed around.
	if err := godotenv.Load(); err == nil {
		logrus.Debugf("Loaded environment from .env\n")
	}

	//Will check every environment variable starting with ATLAS_
	viper.SetEnvPrefix("atlas")
	//Read all enviromnent variable that match ATLAS_ENVNAME
	viper.AutomaticEnv() // read in environment variables that match
	// Set log level and formatter
	log.SetLogLevel(viper.GetString("logLevel"), viper.GetBool("debug"))
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logrus.Debugf("Using config file: %s\n", viper.ConfigFileUsed())
	}
}
