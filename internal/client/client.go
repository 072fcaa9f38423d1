/*
 * Copyright (c) Yashwardhan-41007
 */

package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/formatter"
)

var cliVersion = "0.1.0"

// SetVersion assigns the version of the CLI
func SetVersion(version string) {
	cliVersion = version
}

// GetVersion fetches the version of the CLI
func GetVersion() string {
	return cliVersion
}

// AtlasAPIClient contains the authenticated session cookies, the
// organization ID and the REST client used for every Atlas call
type AtlasAPIClient struct {
	RestClient *RestClient
	Cookies    map[string]string
	OrgID      string
	ctx        context.Context
	stop       context.CancelFunc
}

// RestClient holds the resolved endpoint and the underlying HTTP client
type RestClient struct {
	Scheme string
	Host   string
	Client *http.Client
}

// NewAtlasAPIClient function is returning a new AtlasAPIClient
func NewAtlasAPIClient() (*AtlasAPIClient, error) {
	host := viper.GetString("host")
	if len(host) == 0 {
		logrus.Fatalln(
			formatter.Colorize(
				"No valid host detected. "+
					"Run \"atlas-audit auth\" to authenticate with MongoDB Atlas.\n",
				formatter.RedColor))
	}
	url, err := ParseURL(host)
	if err != nil {
		return nil, err
	}

	cookies := SessionCookies()
	if len(cookies) == 0 {
		logrus.Fatalln(
			formatter.Colorize(
				"No session cookies detected. "+
					"Run \"atlas-audit auth\", set the ATLAS_COOKIES environment variable "+
					"to your browser cookie string, or pass it with the --cookies flag.\n"+
					CookieInstructions(),
				formatter.RedColor))
	}

	orgID := viper.GetString("org")
	if len(orgID) == 0 {
		logrus.Fatalln(
			formatter.Colorize(
				"No organization ID detected. "+
					"Run \"atlas-audit auth\" or pass it with the --org flag.\n",
				formatter.RedColor))
	}

	return NewAtlasAPIClientInitialize(url, cookies, orgID)
}

// NewAtlasAPIClientInitialize function is returning a new AtlasAPIClient
func NewAtlasAPIClientInitialize(
	url *url.URL,
	cookies map[string]string,
	orgID string,
) (*AtlasAPIClient, error) {

	restClient := RestClient{
		Host:   url.Host,
		Scheme: url.Scheme,
		Client: &http.Client{
			Timeout: viper.GetDuration("timeout"),
		},
	}
	if url.Scheme == "https" && viper.GetBool("insecure") {
		tr := &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}}
		restClient.Client.Transport = tr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	return &AtlasAPIClient{
		RestClient: &restClient,
		Cookies:    cookies,
		OrgID:      orgID,
		ctx:        ctx,
		stop:       stop,
	}, nil
}

// Context returns the context the client issues requests under. It is
// cancelled when the process is interrupted.
func (a *AtlasAPIClient) Context() context.Context {
	return a.ctx
}

// ParseURL returns a URL if string is valid, or returns error
func ParseURL(host string) (*url.URL, error) {
	if strings.HasPrefix(strings.ToLower(host), "http://") {
		warning := formatter.Colorize(
			fmt.Sprintf("You are using insecure api endpoint %s\n", host),
			formatter.YellowColor,
		)
		logrus.Debugf(warning)
	} else if !strings.HasPrefix(strings.ToLower(host), "https://") {
		host = "https://" + host
	}

	endpoint, err := url.ParseRequestURI(host)
	if err != nil {
		return nil, fmt.Errorf("could not parse Atlas url (%s): %w", host, err)
	}
	return endpoint, err
}

// CookieInstructions describe how to extract session cookies from a browser.
// Printed when no credentials are available.
func CookieInstructions() string {
	instructions := []string{
		"",
		"How to get your MongoDB Atlas session cookies:",
		"",
		"1. Open MongoDB Atlas in your browser and log in",
		"2. Open Developer Tools and go to the 'Network' tab",
		"3. Refresh the page or navigate to Projects",
		"4. Click on any request to 'cloud.mongodb.com'",
		"5. Find the 'Cookie' header in the request headers",
		"6. Copy the ENTIRE cookie string",
		"",
		"Then run:",
		"  export ATLAS_COOKIES=\"your_cookie_string_here\"",
		"  atlas-audit audit run",
		"",
		"Note: these cookies expire after a few hours.",
		"",
	}
	return strings.Join(instructions, "\n")
}
