package parser_test

import (
	"os"
	"testing"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	cases := []struct {
		name       string
		args       []string
		ignoreCase bool
		wantRes    model.Config
		wantErr    error
	}{
		{
			name:    "Positive - query and file path extracted",
			args:    []string{"x", "query", "file_path"},
			wantRes: model.Config{Query: "query", FilePath: "file_path"},
		},
		{
			name:       "Positive - ignore case passed through",
			args:       []string{"x", "query", "file_path"},
			ignoreCase: true,
			wantRes:    model.Config{Query: "query", FilePath: "file_path", IgnoreCase: true},
		},
		{
			name:    "Positive - extra arguments ignored",
			args:    []string{"x", "query", "file_path", "extra"},
			wantRes: model.Config{Query: "query", FilePath: "file_path"},
		},
		{
			name:    "Negative - program name only",
			args:    []string{"x"},
			wantErr: model.ErrMissingArgument,
		},
		{
			name:    "Negative - query only",
			args:    []string{"x", "only_one"},
			wantErr: model.ErrMissingArgument,
		},
		{
			name:    "Negative - nil args",
			args:    nil,
			wantErr: model.ErrMissingArgument,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := parser.Build(tt.args, tt.ignoreCase)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Equal(t, model.Config{}, res)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantRes, res)
		})
	}
}

func TestBuildIgnoresProgramName(t *testing.T) {
	cfg1, err := parser.Build([]string{"ignore_element_1", "query", "file_path"}, false)
	require.NoError(t, err)
	cfg2, err := parser.Build([]string{"ignore_element_2", "query", "file_path"}, false)
	require.NoError(t, err)

	require.True(t, cfg1 == cfg2, "configs built from the same query and path must be equal")
}

// unsetIgnoreCase clears IGNORE_CASE for the test and restores it afterwards.
func unsetIgnoreCase(t *testing.T) {
	t.Helper()
	t.Setenv(model.IgnoreCaseEnv, "")
	require.NoError(t, os.Unsetenv(model.IgnoreCaseEnv))
}

func TestIgnoreCaseFromEnv(t *testing.T) {
	unsetIgnoreCase(t)
	require.False(t, parser.IgnoreCaseFromEnv())

	t.Setenv(model.IgnoreCaseEnv, "")
	require.True(t, parser.IgnoreCaseFromEnv(), "empty value still means the toggle is present")

	t.Setenv(model.IgnoreCaseEnv, "0")
	require.True(t, parser.IgnoreCaseFromEnv(), "value is irrelevant")
}

func TestInitAppMode(t *testing.T) {
	unsetIgnoreCase(t)

	cases := []struct {
		name    string
		args    []string
		wantRes *model.AppInit
		wantErr string
	}{
		{
			name: "Positive - local mode by default",
			args: []string{"minigrep", "query", "poem.txt"},
			wantRes: &model.AppInit{
				Mode:   model.ModeLocal,
				Config: model.Config{Query: "query", FilePath: "poem.txt"},
			},
		},
		{
			name: "Positive - remote mode",
			args: []string{"minigrep", "-mode", "remote", "-node", "http://a", "-node", "http://b", "-quorum", "2", "query", "poem.txt"},
			wantRes: &model.AppInit{
				Mode:   model.ModeRemote,
				Nodes:  model.NodesList{"http://a", "http://b"},
				Quorum: 2,
				Config: model.Config{Query: "query", FilePath: "poem.txt"},
			},
		},
		{
			name: "Positive - duplicate nodes collapsed",
			args: []string{"minigrep", "-mode", "remote", "-node", "http://a", "-node", "http://a", "query", "poem.txt"},
			wantRes: &model.AppInit{
				Mode:   model.ModeRemote,
				Nodes:  model.NodesList{"http://a"},
				Quorum: 1,
				Config: model.Config{Query: "query", FilePath: "poem.txt"},
			},
		},
		{
			name: "Positive - dash-leading query searched literally",
			args: []string{"minigrep", "-v", "poem.txt"},
			wantRes: &model.AppInit{
				Mode:   model.ModeLocal,
				Config: model.Config{Query: "-v", FilePath: "poem.txt"},
			},
		},
		{
			name: "Positive - double-dash query searched literally",
			args: []string{"minigrep", "--verbose", "poem.txt"},
			wantRes: &model.AppInit{
				Mode:   model.ModeLocal,
				Config: model.Config{Query: "--verbose", FilePath: "poem.txt"},
			},
		},
		{
			name: "Positive - negative number query searched literally",
			args: []string{"minigrep", "-1", "poem.txt"},
			wantRes: &model.AppInit{
				Mode:   model.ModeLocal,
				Config: model.Config{Query: "-1", FilePath: "poem.txt"},
			},
		},
		{
			name: "Positive - double-dash flags, dash-leading query after terminator",
			args: []string{"minigrep", "--mode=remote", "--node", "http://a", "--", "-v", "poem.txt"},
			wantRes: &model.AppInit{
				Mode:   model.ModeRemote,
				Nodes:  model.NodesList{"http://a"},
				Quorum: 1,
				Config: model.Config{Query: "-v", FilePath: "poem.txt"},
			},
		},
		{
			name:    "Positive - server mode",
			args:    []string{"minigrep", "-mode", "server", "-address", ":8081"},
			wantRes: &model.AppInit{Mode: model.ModeServer, Address: ":8081"},
		},
		{
			name:    "Negative - missing file path",
			args:    []string{"minigrep", "query"},
			wantErr: "not enough arguments",
		},
		{
			name:    "Negative - remote without nodes",
			args:    []string{"minigrep", "-mode", "remote", "query", "poem.txt"},
			wantErr: "at least one -node must be provided running in 'remote'-mode",
		},
		{
			name:    "Negative - quorum above node count",
			args:    []string{"minigrep", "-mode", "remote", "-node", "http://a", "-quorum", "2", "query", "poem.txt"},
			wantErr: "incorrect quorum",
		},
		{
			name:    "Negative - server without address",
			args:    []string{"minigrep", "-mode", "server"},
			wantErr: "empty search-node address",
		},
		{
			name:    "Negative - unknown mode",
			args:    []string{"minigrep", "-mode", "cluster", "query", "poem.txt"},
			wantErr: "unknown mode",
		},
		{
			name:    "Negative - dash-leading query without file path",
			args:    []string{"minigrep", "-v"},
			wantErr: "not enough arguments",
		},
		{
			name:    "Negative - unknown flag after a mode flag",
			args:    []string{"minigrep", "-mode", "local", "-x", "query", "poem.txt"},
			wantErr: "flag provided but not defined",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := parser.InitAppMode(tt.args)

			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				require.Nil(t, res)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantRes, res)
		})
	}
}

func TestInitAppModeIgnoreCase(t *testing.T) {
	t.Setenv(model.IgnoreCaseEnv, "1")

	res, err := parser.InitAppMode([]string{"minigrep", "query", "poem.txt"})
	require.NoError(t, err)
	require.True(t, res.Config.IgnoreCase)
}
