/*
 * Copyright (c) Yashwardhan-41007
 */

package audit

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/Yashwardhan-41007/MongoDB-publicapi-cluster-finder/internal/client"
)

func newTestAuditor(
	t *testing.T,
	server *httptest.Server,
	opts Options,
) *Auditor {
	t.Helper()
	t.Setenv("ATLAS_AUDIT_CI", "true")

	endpoint, err := url.Parse(server.URL)
	assert.NilError(t, err)
	api, err := client.NewAtlasAPIClientInitialize(
		endpoint, map[string]string{"mmsa-prod": "token"}, "org1")
	assert.NilError(t, err)

	classifier, err := NewClassifier(DefaultDetectionMode)
	assert.NilError(t, err)
	return NewAuditor(api, classifier, opts)
}

// threeProjectHandler serves P1 (clean), P2 (one open entry) and P3 (the
// access list fetch fails at the transport level).
func threeProjectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orgs/org1/groups":
			w.Write([]byte(`{"results":[
				{"id":"p1","name":"Clean"},
				{"id":"p2","name":"Exposed"},
				{"id":"p3","name":"Flaky"}
			]}`))
		case "/nds/p1/ipWhitelist":
			w.Write([]byte(`[{"cidrBlock":"10.0.0.0/8","comment":"office"}]`))
		case "/nds/p2/ipWhitelist":
			w.Write([]byte(`[{"cidrBlock":"0.0.0.0/0","comment":"temporary"}]`))
		case "/nds/p2/clusters":
			w.Write([]byte(`[{"name":"prod-cluster"}]`))
		case "/nds/p3/ipWhitelist":
			// drop the connection mid-flight
			if hj, ok := w.(http.Hijacker); ok {
				if conn, _, err := hj.Hijack(); err == nil {
					conn.Close()
				}
			}
		default:
			http.NotFound(w, r)
		}
	}
}

func TestRunAggregatesVulnerableProjects(t *testing.T) {
	server := httptest.NewServer(threeProjectHandler())
	defer server.Close()

	reportFile := filepath.Join(t.TempDir(), "report.json")
	auditor := newTestAuditor(t, server, Options{ReportFile: reportFile})

	result, err := auditor.Run()
	assert.NilError(t, err)

	assert.Check(t, is.Equal(3, result.ProjectsAudited))
	assert.Check(t, is.Len(result.Vulnerable, 1))

	vp := result.Vulnerable[0]
	assert.Check(t, is.Equal("p2", vp.ProjectID))
	assert.Check(t, is.Equal("Exposed", vp.ProjectName))
	assert.Check(t, is.DeepEqual([]string{"prod-cluster"}, vp.Clusters))
	assert.Check(t, is.Len(vp.OpenEntries, 1))
	assert.Check(t, is.Equal("0.0.0.0/0", vp.OpenEntries[0].CidrBlock))
}

func TestRunWritesReportArtifact(t *testing.T) {
	server := httptest.NewServer(threeProjectHandler())
	defer server.Close()

	reportFile := filepath.Join(t.TempDir(), "report.json")
	auditor := newTestAuditor(t, server, Options{ReportFile: reportFile})

	_, err := auditor.Run()
	assert.NilError(t, err)

	contents, err := os.ReadFile(reportFile)
	assert.NilError(t, err)

	var report []map[string]interface{}
	assert.NilError(t, json.Unmarshal(contents, &report))
	assert.Check(t, is.Len(report, 1))
	assert.Check(t, is.Equal("p2", report[0]["project_id"]))
	assert.Check(t, is.Equal("Exposed", report[0]["project_name"]))

	openEntries := report[0]["open_entries"].([]interface{})
	assert.Check(t, is.Len(openEntries, 1))
	entry := openEntries[0].(map[string]interface{})
	assert.Check(t, is.Equal("temporary", entry["comment"]))
}

func TestRunNoProjects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
	defer server.Close()

	reportFile := filepath.Join(t.TempDir(), "report.json")
	auditor := newTestAuditor(t, server, Options{ReportFile: reportFile})

	_, err := auditor.Run()
	assert.Check(t, errors.Is(err, ErrNoProjects))

	_, err = os.Stat(reportFile)
	assert.Check(t, os.IsNotExist(err))
}

func TestRunAccessListNotFoundIsNotVulnerable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/orgs/org1/groups" {
				w.Write([]byte(`[{"id":"p1","name":"Empty"}]`))
				return
			}
			http.NotFound(w, r)
		}))
	defer server.Close()

	reportFile := filepath.Join(t.TempDir(), "report.json")
	auditor := newTestAuditor(t, server, Options{ReportFile: reportFile})

	result, err := auditor.Run()
	assert.NilError(t, err)
	assert.Check(t, is.Len(result.Vulnerable, 0))

	_, err = os.Stat(reportFile)
	assert.Check(t, os.IsNotExist(err))
}

func TestRunSkipsProjectWithoutIdentifier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/orgs/org1/groups":
				w.Write([]byte(`[
					{"name":"NoIdentifier"},
					{"id":"p2","name":"Exposed"}
				]`))
			case "/nds/p2/ipWhitelist":
				w.Write([]byte(`[{"ipAddress":"0.0.0.0"}]`))
			case "/nds/p2/clusters":
				w.Write([]byte(`[]`))
			default:
				http.NotFound(w, r)
			}
		}))
	defer server.Close()

	reportFile := filepath.Join(t.TempDir(), "report.json")
	auditor := newTestAuditor(t, server, Options{ReportFile: reportFile})

	result, err := auditor.Run()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(2, result.ProjectsAudited))
	assert.Check(t, is.Len(result.Vulnerable, 1))
	assert.Check(t, is.Equal("p2", result.Vulnerable[0].ProjectID))
	assert.Check(t, is.Len(result.Vulnerable[0].Clusters, 0))
}

func TestRunInterruptedDuringLastProject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/orgs/org1/groups":
				w.Write([]byte(`[
					{"id":"p1","name":"Exposed"},
					{"id":"p2","name":"Last"}
				]`))
			case "/nds/p1/ipWhitelist":
				w.Write([]byte(`[{"cidrBlock":"0.0.0.0/0"}]`))
			case "/nds/p1/clusters":
				w.Write([]byte(`[{"name":"prod-cluster"}]`))
			case "/nds/p2/ipWhitelist":
				// SIGINT lands while the final project's fetch is in flight,
				// after the loop has already passed its entry check.
				syscall.Kill(os.Getpid(), syscall.SIGINT)
				time.Sleep(200 * time.Millisecond)
				w.Write([]byte(`[{"cidrBlock":"0.0.0.0/0"}]`))
			default:
				http.NotFound(w, r)
			}
		}))
	defer server.Close()

	reportFile := filepath.Join(t.TempDir(), "report.json")
	auditor := newTestAuditor(t, server, Options{ReportFile: reportFile})

	_, err := auditor.Run()
	assert.Check(t, errors.Is(err, ErrInterrupted))

	_, err = os.Stat(reportFile)
	assert.Check(t, os.IsNotExist(err))
}

func TestRunClustersFromUserScopes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/orgs/org1/groups":
				w.Write([]byte(`[{"id":"p1","name":"Exposed"}]`))
			case "/nds/p1/ipWhitelist":
				w.Write([]byte(`[{"cidrBlock":"0.0.0.0/0"}]`))
			case "/nds/p1/users":
				w.Write([]byte(`[
					{"username":"u1","scopes":[
						{"type":"CLUSTER","name":"A"},
						{"type":"CLUSTER","name":"A"}
					]},
					{"username":"u2","scopes":[{"type":"CLUSTER","name":"B"}]}
				]`))
			default:
				http.NotFound(w, r)
			}
		}))
	defer server.Close()

	reportFile := filepath.Join(t.TempDir(), "report.json")
	auditor := newTestAuditor(t, server, Options{
		FromUserScopes: true,
		ReportFile:     reportFile,
	})

	result, err := auditor.Run()
	assert.NilError(t, err)
	assert.Check(t, is.Len(result.Vulnerable, 1))
	assert.Check(t, is.DeepEqual([]string{"A", "B"}, result.Vulnerable[0].Clusters))
}
