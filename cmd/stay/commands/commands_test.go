package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stay/cmd/stay/commands"
	"go.trai.ch/stay/internal/build"
	"go.trai.ch/stay/internal/core/domain"
	"go.trai.ch/stay/internal/engine/positions"
)

type mockApp struct {
	configured string
	configErr  error
	entries    []positions.Entry
	forgetFunc func(ctx context.Context, path string) (int, error)
	renameFunc func(ctx context.Context, oldPath, newPath string) (int, error)
	pruneFunc  func(ctx context.Context, limit *uint) (int, error)
	watchFunc  func(ctx context.Context, root string) error
}

func (m *mockApp) Configure(path string) error {
	m.configured = path
	return m.configErr
}

func (m *mockApp) List(context.Context) []positions.Entry {
	return m.entries
}

func (m *mockApp) Forget(ctx context.Context, path string) (int, error) {
	if m.forgetFunc != nil {
		return m.forgetFunc(ctx, path)
	}
	return 0, nil
}

func (m *mockApp) Rename(ctx context.Context, oldPath, newPath string) (int, error) {
	if m.renameFunc != nil {
		return m.renameFunc(ctx, oldPath, newPath)
	}
	return 0, nil
}

func (m *mockApp) Prune(ctx context.Context, limit *uint) (int, error) {
	if m.pruneFunc != nil {
		return m.pruneFunc(ctx, limit)
	}
	return 0, nil
}

func (m *mockApp) Watch(ctx context.Context, root string) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, root)
	}
	return nil
}

// jsonLogger records the log mode the CLI selects.
type jsonLogger struct {
	json bool
}

func (l *jsonLogger) Info(string)    {}
func (l *jsonLogger) Warn(string)    {}
func (l *jsonLogger) Error(error)    {}
func (l *jsonLogger) SetJSON(v bool) { l.json = v }

var now = time.UnixMilli(1_700_000_000_000)

func ptr(v uint) *uint { return &v }

func execute(t *testing.T, app commands.Application, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cli := commands.New(app, &jsonLogger{}, commands.WithClock(func() time.Time { return now }))
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)

	err := cli.Execute(context.Background())
	return buf.String(), err
}

func sampleEntries() []positions.Entry {
	return []positions.Entry{
		{
			Key: "a.md",
			Position: domain.SavedPosition{
				Timestamp: now.Add(-5 * time.Minute).UnixMilli(),
				Scroll:    domain.Float(12.5),
				Cursor:    &domain.Cursor{From: domain.Pos{Line: 3, Ch: 4}, To: domain.Pos{Line: 3, Ch: 9}},
			},
		},
		{
			Key: "notes/long.md#1-0",
			Position: domain.SavedPosition{
				Timestamp: now.Add(-3 * time.Hour).UnixMilli(),
				ScrollTop: domain.Float(300),
			},
		},
	}
}

func TestCommands_List(t *testing.T) {
	out, err := execute(t, &mockApp{entries: sampleEntries()}, "list")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "list", []byte(out))
}

func TestCommands_List_Empty(t *testing.T) {
	out, err := execute(t, &mockApp{}, "list")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "list_empty", []byte(out))
}

func TestCommands_List_JSON(t *testing.T) {
	out, err := execute(t, &mockApp{entries: sampleEntries()}, "list", "--json")
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"a.md": {"timestamp": 1699999700000, "scroll": 12.5, "cursor": {"from": {"line": 3, "ch": 4}, "to": {"line": 3, "ch": 9}}},
		"notes/long.md#1-0": {"timestamp": 1699989200000, "scrollTop": 300}
	}`, out)
}

func TestCommands_Forget(t *testing.T) {
	t.Run("reports removed positions", func(t *testing.T) {
		var captured string
		mock := &mockApp{forgetFunc: func(_ context.Context, path string) (int, error) {
			captured = path
			return 2, nil
		}}

		out, err := execute(t, mock, "forget", "a.md")
		require.NoError(t, err)
		assert.Equal(t, "a.md", captured)
		assert.Equal(t, "✓ forgot 2 position(s) of a.md\n", out)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{forgetFunc: func(context.Context, string) (int, error) {
			return 0, domain.ErrDocumentNotFound
		}}

		_, err := execute(t, mock, "forget", "a.md")
		require.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("requires a path", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "forget")
		require.Error(t, err)
	})
}

func TestCommands_Rename(t *testing.T) {
	var captured [2]string
	mock := &mockApp{renameFunc: func(_ context.Context, oldPath, newPath string) (int, error) {
		captured = [2]string{oldPath, newPath}
		return 1, nil
	}}

	out, err := execute(t, mock, "mv", "a.md", "b.md")
	require.NoError(t, err)
	assert.Equal(t, [2]string{"a.md", "b.md"}, captured)
	assert.Equal(t, "✓ moved 1 position(s) a.md → b.md\n", out)
}

func TestCommands_Prune(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantLimit *uint
	}{
		{name: "configured bound", args: []string{"prune"}},
		{name: "explicit bound", args: []string{"prune", "--max", "10"}, wantLimit: ptr(10)},
		{name: "explicit zero", args: []string{"prune", "-m", "0"}, wantLimit: ptr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *uint
			mock := &mockApp{pruneFunc: func(_ context.Context, limit *uint) (int, error) {
				captured = limit
				return 3, nil
			}}

			out, err := execute(t, mock, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, captured)
			assert.Equal(t, "✓ pruned 3 position(s)\n", out)
		})
	}
}

func TestCommands_Watch(t *testing.T) {
	var captured string
	mock := &mockApp{watchFunc: func(_ context.Context, root string) error {
		captured = root
		return errors.New("simulated error")
	}}

	_, err := execute(t, mock, "watch", "vault")
	require.ErrorContains(t, err, "simulated error")
	assert.Equal(t, "vault", captured)
}

func TestCommands_GlobalFlags(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	mock := &mockApp{}
	log := &jsonLogger{}

	cli := commands.New(mock, log)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"list", "--config", "custom.yaml", "--json-logs"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "custom.yaml", mock.configured)
	assert.True(t, log.json)
}

func TestCommands_ConfigError(t *testing.T) {
	mock := &mockApp{configErr: domain.ErrConfigReadFailed}

	_, err := execute(t, mock, "list", "--config", "missing.yaml")
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)

	assert.Contains(t, out, build.Version)
}
