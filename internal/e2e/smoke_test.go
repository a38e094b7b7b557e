package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	scenarioPath := filepath.Join(home, "scenario.toml")

	session := strings.Join([]string{"1", "A", "0", "1", "B", "1", "2", "A", "5", "2", "B", "8", "6"}, "\n") + "\n"
	stdout, stderr, err := runParkctl(t, binaryPath, home, session,
		"session", "--slots", "1", "--rate", "10", "--record", scenarioPath,
	)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Now parking waiting vehicle B at freed Slot 1.")

	stdout, stderr, err = runParkctl(t, binaryPath, home, "", "replay", scenarioPath)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Average Waiting Time: 2.00 hours")
	assert.Contains(t, stdout, "Average Turnaround Time: 6.00 hours")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "parkctl-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/parkctl")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build parkctl binary: %s", string(output))
	return binaryPath
}

func runParkctl(t *testing.T, binaryPath, home, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "XDG_CONFIG_HOME="+home)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
