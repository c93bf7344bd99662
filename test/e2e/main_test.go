package e2e

import (
	"os"
	"os/exec"
	"testing"
)

var icpBin string

func TestMain(m *testing.M) {
	icpBin = envOrLookPath("ICP_BIN", "icp")
	os.Exit(m.Run())
}

func envOrLookPath(envVar, name string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	if path, err := exec.LookPath(name); err == nil {
		return path
	}
	return ""
}

func requireICP(t *testing.T) {
	t.Helper()
	if icpBin == "" {
		t.Skip("icp binary not available (set ICP_BIN or add to PATH)")
	}
}
