package cli //nolint:testpackage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/tests"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestShowStart(t *testing.T) {
	out, err := run(t, "show")
	require.NoError(t, err)

	blank := strings.Repeat(" ", 6)
	require.Contains(t, out, "4 "+blank+"○ ● "+blank+"|")
	require.Contains(t, out, "5 "+blank+"● ○ "+blank+"|")
	require.Contains(t, out, "position: 8/8/8/3Dd3/3dD3/8/8/8\n")
	require.Contains(t, out, "black: 2 discs, moves: d3 c4 f5 e6\n")
	require.Contains(t, out, "white: 2 discs, moves: e3 f4 c5 d6\n")
	require.Contains(t, out, "state: in_progress\n")
	require.NotContains(t, out, "·")
}

func TestShowMarks(t *testing.T) {
	out, err := run(t, "show", "--mark", "black")
	require.NoError(t, err)
	require.Contains(t, out, "3 "+strings.Repeat(" ", 6)+"· "+strings.Repeat(" ", 8)+"|")
	require.Equal(t, 4, strings.Count(out, "·"))

	_, err = run(t, "show", "--mark", "red")
	require.Error(t, err)
}

func TestShowTerminal(t *testing.T) {
	out, err := run(t, "show", "ddd5/8/8/8/8/8/8/8")
	require.NoError(t, err)
	require.Contains(t, out, "black: 3 discs, moves: -\n")
	require.Contains(t, out, "white: 0 discs, moves: -\n")
	require.Contains(t, out, "state: terminal\n")
}

func TestShowInvalidPosition(t *testing.T) {
	_, err := run(t, "show", "8/8/8/8/8/8/8")
	require.ErrorIs(t, err, othello.ErrFormat)
}

func TestPlay(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{
			name: "no moves",
			args: []string{"play"},
			want: "8/8/8/3Dd3/3dD3/8/8/8\n",
		},
		{
			name: "opening",
			args: []string{"play", "black:d3"},
			want: "8/8/3d4/3dd3/3dD3/8/8/8\n",
		},
		{
			name: "custom start",
			args: []string{"play", "--start", "dD6/8/8/8/8/8/8/8", "b:c1"},
			want: "ddd5/8/8/8/8/8/8/8\n",
		},
		{
			name:    "illegal move",
			args:    []string{"play", "black:d3", "black:a1"},
			wantErr: "illegal move 2: black:a1",
		},
		{
			name:    "missing side",
			args:    []string{"play", "d3"},
			wantErr: "expected side:field",
		},
		{
			name:    "invalid start",
			args:    []string{"play", "--start", "8/8", "black:d3"},
			wantErr: "failed to decode start position",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)

			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestPlayVerbose(t *testing.T) {
	out, err := run(t, "play", "-v", "black:d3", "white:c5")
	require.NoError(t, err)
	require.Contains(t, out, "position: 8/8/3d4/3dd3/2DDD3/8/8/8\n")
	require.Contains(t, out, "black: 3 discs")
	require.Contains(t, out, "white: 3 discs")
}

func TestLoadEnvFile(t *testing.T) {
	require.NoError(t, loadEnvFile(""))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("REVERSI_CLI_TEST=from-file\n"), 0o600))

	t.Cleanup(func() { _ = os.Unsetenv("REVERSI_CLI_TEST") })

	require.NoError(t, loadEnvFile(path))
	require.Equal(t, "from-file", os.Getenv("REVERSI_CLI_TEST"))

	require.ErrorContains(t, loadEnvFile(filepath.Join(t.TempDir(), "missing.env")), "failed to load env file")
}

func TestRemote(t *testing.T) {
	t.Setenv("REVERSI_TOKEN", "")

	url := tests.Serve(t, tests.NewApp(t, true))
	flags := []string{"--server", url, "--token", tests.TestToken}

	out, err := run(t, append([]string{"remote", "new", "dD6/8/8/8/8/8/8/8"}, flags...)...)
	require.NoError(t, err)
	require.Contains(t, out, "position: dD6/8/8/8/8/8/8/8\n")

	id, _, found := strings.Cut(strings.TrimPrefix(out, "game: "), "\n")
	require.True(t, found)

	out, err = run(t, append([]string{"remote", "get", id}, flags...)...)
	require.NoError(t, err)
	require.Contains(t, out, "game: "+id+"\n")

	_, err = run(t, append([]string{"remote", "move", id, "white:a2"}, flags...)...)
	require.ErrorContains(t, err, "status 422")

	out, err = run(t, append([]string{"remote", "move", id, "black:c1"}, flags...)...)
	require.NoError(t, err)
	require.Contains(t, out, "state: terminal\n")

	out, err = run(t, append([]string{"remote", "archive"}, flags...)...)
	require.NoError(t, err)
	require.Contains(t, out, id+" ")
	require.Contains(t, out, " 3-0 ddd5/8/8/8/8/8/8/8\n")

	_, err = run(t, "remote", "get", id, "--server", url)
	require.ErrorContains(t, err, "status 401")
}
