package version

import (
	"bytes"
	"testing"

	"github.com/ParkSnoopy/base116-cli/internal/version"
	"github.com/stretchr/testify/require"
)

func Test_VersionCommand(t *testing.T) {
	branch := version.GitBranch
	defer func() {
		version.GitBranch = branch
	}()
	version.GitBranch = "main"

	buf := &bytes.Buffer{}
	cmd := &Command{out: buf}
	require.NoError(t, cmd.Execute(nil))

	out := buf.String()
	require.Contains(t, out, " BASE116 ")
	require.Contains(t, out, "116 symbols, U+0100..U+0173")
	require.Contains(t, out, "Git branch  "+White+"main")
	require.NotContains(t, out, "Git tag")
}
