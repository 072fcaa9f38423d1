/*
 * Copyright (c) Yashwardhan-41007
 */

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/formatter"
)

// The Atlas internal API sits behind edge security checks that expect
// browser-originated traffic. These header values are a compatibility
// requirement, not a design choice.
const (
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"
	acceptLanguage = "en-GB,en-US;q=0.9,en;q=0.8"

	maxLoggedBodyLength = 500
)

// RestAPIParameters is a struct to hold the parameters for a REST API call
type RestAPIParameters struct {
	method          string
	urlRoute        string
	operationString string
}

// RestAPICall makes a REST API call to the Atlas internal API and returns
// the response body and HTTP status code. The error is only non-nil for
// transport-level failures.
func (a *AtlasAPIClient) RestAPICall(
	params RestAPIParameters,
) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(
		a.ctx,
		params.method,
		fmt.Sprintf("%s://%s/%s",
			a.RestClient.Scheme, a.RestClient.Host, params.urlRoute),
		nil,
	)
	if err != nil {
		return nil, 0, err
	}

	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Language", acceptLanguage)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer",
		fmt.Sprintf("%s://%s/v2", a.RestClient.Scheme, a.RestClient.Host))
	req.Header.Set("Sec-Fetch-Dest", "empty")
	req.Header.Set("Sec-Fetch-Mode", "cors")
	req.Header.Set("Sec-Fetch-Site", "same-origin")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	for name, value := range a.Cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	r, err := a.RestClient.Client.Do(req)
	if err != nil {
		return nil, 0,
			fmt.Errorf("Error occured during %s call for %s %s",
				params.method,
				params.operationString,
				err.Error())
	}
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, r.StatusCode,
			fmt.Errorf("Error reading %s response body %s",
				params.operationString,
				err.Error())
	}

	return body, r.StatusCode, nil
}

// fetchRecords issues a GET to the given route and normalizes the response
// into a flat list of records. Every failure mode degrades to an empty
// result: 404 silently, transport and other HTTP errors with a log line.
// No error crosses this boundary, so one failed call never aborts a run.
func (a *AtlasAPIClient) fetchRecords(
	urlRoute, entityName, operation string,
) []json.RawMessage {
	body, statusCode, err := a.RestAPICall(RestAPIParameters{
		method:          http.MethodGet,
		urlRoute:        urlRoute,
		operationString: fmt.Sprintf("%s: %s", entityName, operation),
	})
	if err != nil {
		logrus.Errorf("API request failed: %s\n", err.Error())
		return nil
	}
	if statusCode == http.StatusNotFound {
		return nil
	}
	if statusCode < 200 || statusCode > 299 {
		logrus.Errorf("API request failed: %s, Operation: %s\n", entityName, operation)
		logrus.Errorf("Status code: %d\n", statusCode)
		logrus.Errorf("Response: %s\n", formatter.Truncate(string(body), maxLoggedBodyLength))
		return nil
	}

	records, err := decodeRecords(body)
	if err != nil {
		logrus.Errorf("Error decoding %s response: %s\n", entityName, err.Error())
		return nil
	}
	return records
}
