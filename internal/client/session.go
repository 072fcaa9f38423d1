/*
 * Copyright (c) Yashwardhan-41007
 */

package client

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// ParseCookieString parses a raw browser cookie string into a map of cookie
// name to cookie value. Segments are separated by ';', values may themselves
// contain '=', and segments without a '=' are skipped.
func ParseCookieString(cookieString string) map[string]string {
	cookies := map[string]string{}
	for _, item := range strings.Split(cookieString, ";") {
		item = strings.TrimSpace(item)
		if !strings.Contains(item, "=") {
			continue
		}
		parts := strings.SplitN(item, "=", 2)
		cookies[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return cookies
}

// SessionCookies resolves the session cookies for the current invocation.
// A raw cookie string (flag, config file or ATLAS_COOKIES) takes precedence
// over a named cookie map in the config file. Returns an empty map when no
// non-empty cookie value is available.
func SessionCookies() map[string]string {
	if cookieString := viper.GetString("cookies"); len(cookieString) > 0 {
		return ParseCookieString(cookieString)
	}
	jar := cookieJarFromConfig(viper.ConfigFileUsed())
	for _, v := range jar {
		if len(v) > 0 {
			return jar
		}
	}
	return map[string]string{}
}

// cookieJarFromConfig reads the cookie-jar map straight from the config
// file. Viper lowercases nested keys, which corrupts case-sensitive cookie
// names such as __Secure-mdb-sat.
func cookieJarFromConfig(configFile string) map[string]string {
	if len(configFile) == 0 {
		return nil
	}
	contents, err := os.ReadFile(configFile)
	if err != nil {
		logrus.Debugf("Could not read config file %s: %s", configFile, err)
		return nil
	}
	var config struct {
		CookieJar map[string]string `yaml:"cookie-jar"`
	}
	if err := yaml.Unmarshal(contents, &config); err != nil {
		logrus.Debugf("Could not parse config file %s: %s", configFile, err)
		return nil
	}
	return config.CookieJar
}
