package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"resolution.txt": {Data: []byte("How handlers are resolved")},
		"selector.md":    {Data: []byte("# Selector\n\nInteractive choice details")},
		"config.txxt":    {Data: []byte("Configuration Guide\n==================")},
		"ignore.json":    {Data: []byte("This should be ignored")},
	}
}

func TestScan(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		m, err := New(topicFS(), Options{})
		require.NoError(t, err)

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"resolution", true, "How handlers are resolved"},
			{"selector", true, "# Selector\n\nInteractive choice details"},
			{"config", false, ""}, // .txxt not in defaults
			{"ignore", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := m.Get(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		m, err := New(topicFS(), Options{
			Extensions: []string{".txt", ".md", ".txxt"},
		})
		require.NoError(t, err)

		topic, exists := m.Get("config")
		require.True(t, exists)
		assert.Equal(t, "Configuration Guide\n==================", topic.Content)

		_, exists = m.Get("ignore")
		assert.False(t, exists)
	})

	t.Run("subdirectories flatten", func(t *testing.T) {
		fsys := fstest.MapFS{
			"advanced/terminals.txt": {Data: []byte("Terminal emulator handling")},
		}
		m, err := New(fsys, Options{})
		require.NoError(t, err)

		topic, exists := m.Get("terminals")
		require.True(t, exists)
		assert.Equal(t, "Terminal emulator handling", topic.Content)
	})

	t.Run("empty tree", func(t *testing.T) {
		m, err := New(fstest.MapFS{}, Options{})
		require.NoError(t, err)
		assert.Empty(t, m.Names())
	})
}

func TestNames(t *testing.T) {
	fsys := fstest.MapFS{
		"selector.txt":   {Data: []byte("a")},
		"config.txt":     {Data: []byte("b")},
		"resolution.txt": {Data: []byte("c")},
	}
	m, err := New(fsys, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"config", "resolution", "selector"}, m.Names())
}

func TestInitialize(t *testing.T) {
	rootCmd := &cobra.Command{
		Use:   "testapp",
		Short: "Test application",
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "resolve",
		Short: "Resolve something",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	err := Initialize(rootCmd, topicFS(), Options{})
	require.NoError(t, err)

	helpCmd, _, err := rootCmd.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help", helpCmd.Name())
	assert.Equal(t, "help [command or topic]", helpCmd.Use)
}

func runHelp(t *testing.T, fsys fstest.MapFS, args ...string) string {
	t.Helper()

	rootCmd := &cobra.Command{
		Use:   "testapp",
		Short: "Test application",
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "resolve",
		Short: "Resolve something",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	require.NoError(t, Initialize(rootCmd, fsys, Options{}))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestHelpCommand(t *testing.T) {
	t.Run("renders a topic", func(t *testing.T) {
		out := runHelp(t, topicFS(), "help", "resolution")
		assert.Contains(t, out, "How handlers are resolved")
	})

	t.Run("lists topics", func(t *testing.T) {
		out := runHelp(t, topicFS(), "help", "topics")
		assert.Contains(t, out, "Available help topics:")
		assert.Contains(t, out, "resolution")
		assert.Contains(t, out, "selector")
		assert.Contains(t, out, "help <topic>")
	})

	t.Run("no topics available", func(t *testing.T) {
		out := runHelp(t, fstest.MapFS{}, "help", "topics")
		assert.Contains(t, out, "No help topics available.")
	})

	t.Run("falls back to command help", func(t *testing.T) {
		out := runHelp(t, topicFS(), "help")
		assert.Contains(t, out, "Usage:")
		assert.Contains(t, out, "resolve")
	})

	t.Run("help flag still works for commands", func(t *testing.T) {
		out := runHelp(t, topicFS(), "resolve", "--help")
		assert.Contains(t, out, "Resolve something")
	})
}

func TestPlainRenderer(t *testing.T) {
	r := PlainRenderer{}
	assert.Equal(t, "# raw", r.Render("# raw", ".md"))
	assert.Equal(t, "raw", r.Render("raw", ".txt"))
}

func TestGlamourRenderer(t *testing.T) {
	r := GlamourRenderer{Width: 60}

	t.Run("passes non-markdown through", func(t *testing.T) {
		content := "plain text content"
		assert.Equal(t, content, r.Render(content, ".txt"))
	})

	t.Run("keeps markdown body text", func(t *testing.T) {
		out := r.Render("# Title\n\nluminance is preserved\n", ".md")
		assert.Contains(t, out, "luminance")
	})
}
