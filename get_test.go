package config_test

import (
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	config "github.com/0xalexb/stig-config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gettersYAML = `name: stig
port: 8080
ratio: 0.25
debug: true
timeout: 5s
tags:
  - alpha
  - beta
limits:
  cpu: "2"
  mem: "512"
nothing: null
`

func TestAccessor_Get_Traversal(t *testing.T) {
	t.Parallel()

	content := `{
		"hello": "world",
		"server": {"host": "localhost", "port": 8080},
		"companies": {"acme": {"users": [{"name": "alice"}, {"name": "bob"}]}}
	}`
	path := writeFile(t, t.TempDir(), "app.json", content)

	cfg := config.New(path)
	require.NoError(t, cfg.Load())

	testCases := []struct {
		name string
		path string
		want any
	}{
		{name: "top-level key", path: "hello", want: "world"},
		{name: "nested key", path: "server.host", want: "localhost"},
		{name: "number", path: "server.port", want: int64(8080)},
		{name: "sequence traversal", path: "companies.acme.users.0.name", want: "alice"},
		{name: "second element", path: "companies.acme.users.1.name", want: "bob"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, err := cfg.Get(testCase.path)

			require.NoError(t, err)
			assert.Equal(t, testCase.want, value)
		})
	}
}

func TestAccessor_Get_AbsentWithoutOptions(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", "hello: world\n")

	cfg := config.New(path)

	value, err := cfg.Get("goodbye")

	require.NoError(t, err, "a plain miss is not an error")
	assert.Nil(t, value)
}

func TestAccessor_Get_DefaultOnMiss(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", "hello: world\n")

	cfg := config.New(path)

	value, err := cfg.Get("goodbye", config.WithDefault("fallback"))

	require.NoError(t, err)
	assert.Equal(t, "fallback", value)
}

func TestAccessor_Get_StoredFalseBeatsDefault(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", "cache: false\n")

	cfg := config.New(path)

	value, err := cfg.Get("cache", config.WithDefault(true))

	require.NoError(t, err)
	assert.Equal(t, false, value, "a stored false is present, not missing")
}

func TestAccessor_Get_StoredNullBeatsDefault(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", "nothing: null\n")

	cfg := config.New(path)

	value, err := cfg.Get("nothing", config.WithDefault("fallback"))

	require.NoError(t, err)
	assert.Nil(t, value, "a stored null is present, not missing")
}

func TestAccessor_Get_RequiredOnMiss(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", "hello: world\n")

	cfg := config.New(path)

	value, err := cfg.Get("goodbye", config.WithRequired())

	require.Error(t, err)
	require.ErrorIs(t, err, config.ErrRequired)
	assert.Contains(t, err.Error(), "goodbye")
	assert.Nil(t, value)
}

func TestAccessor_Get_RequiredPresentValue(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", "hello: world\n")

	cfg := config.New(path)

	value, err := cfg.Get("hello", config.WithRequired())

	require.NoError(t, err)
	assert.Equal(t, "world", value)
}

func TestAccessor_Get_DefaultWinsOverRequired(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", "hello: world\n")

	cfg := config.New(path)

	value, err := cfg.Get("goodbye", config.WithRequired(), config.WithDefault("fallback"))

	require.NoError(t, err)
	assert.Equal(t, "fallback", value)
}

func TestAccessor_Get_LoadFailurePropagatesPastDefault(t *testing.T) {
	t.Parallel()

	cfg := config.New(filepath.Join(t.TempDir(), "missing.yaml"))

	value, err := cfg.Get("hello", config.WithDefault("fallback"))

	require.Error(t, err, "defaults mask misses, not load failures")
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, value)
}

func TestAccessor_GetFirst_FallbackChain(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", "hello: world\n")

	cfg := config.New(path)

	value, err := cfg.GetFirst([]string{"goodbye", "hello"})

	require.NoError(t, err)
	assert.Equal(t, "world", value)
}

func TestAccessor_GetFirst_OrderMatters(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", "primary: one\nsecondary: two\n")

	cfg := config.New(path)

	value, err := cfg.GetFirst([]string{"secondary", "primary"})

	require.NoError(t, err)
	assert.Equal(t, "two", value)
}

func TestAccessor_GetFirst_NoneResolve(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", "hello: world\n")

	cfg := config.New(path)

	value, err := cfg.GetFirst([]string{"goodbye", "farewell"})
	require.NoError(t, err)
	assert.Nil(t, value)

	value, err = cfg.GetFirst([]string{"goodbye", "farewell"}, config.WithDefault("fallback"))
	require.NoError(t, err)
	assert.Equal(t, "fallback", value)

	_, err = cfg.GetFirst([]string{"goodbye", "farewell"}, config.WithRequired())
	require.ErrorIs(t, err, config.ErrRequired)
	assert.Contains(t, err.Error(), "goodbye, farewell", "the error should name every tried path")
}

func TestAccessor_Lookup(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", gettersYAML)

	cfg := config.New(path)

	value, found := cfg.Lookup("name")
	require.True(t, found)
	assert.Equal(t, "stig", value)

	value, found = cfg.Lookup("nothing")
	require.True(t, found, "stored null is present")
	assert.Nil(t, value)

	_, found = cfg.Lookup("missing")
	assert.False(t, found)
}

func TestAccessor_Lookup_UnloadableFile(t *testing.T) {
	t.Parallel()

	cfg := config.New(filepath.Join(t.TempDir(), "missing.yaml"))

	value, found := cfg.Lookup("hello")

	assert.False(t, found)
	assert.Nil(t, value)
}

func TestAccessor_TypedGetters(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", gettersYAML)

	cfg := config.New(path)

	name, err := cfg.GetString("name")
	require.NoError(t, err)
	assert.Equal(t, "stig", name)

	port, err := cfg.GetInt("port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	port64, err := cfg.GetInt64("port")
	require.NoError(t, err)
	assert.Equal(t, int64(8080), port64)

	ratio, err := cfg.GetFloat64("ratio")
	require.NoError(t, err)
	assert.InDelta(t, 0.25, ratio, 0.0001)

	debug, err := cfg.GetBool("debug")
	require.NoError(t, err)
	assert.True(t, debug)

	timeout, err := cfg.GetDuration("timeout")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, timeout)

	tags, err := cfg.GetStringSlice("tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, tags)

	limits, err := cfg.GetStringMap("limits")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"cpu": "2", "mem": "512"}, limits)
}

func TestAccessor_TypedGetters_Conversions(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", gettersYAML)

	cfg := config.New(path)

	asString, err := cfg.GetString("port")
	require.NoError(t, err, "numbers convert to strings")
	assert.Equal(t, "8080", asString)

	_, err = cfg.GetInt("name")
	require.Error(t, err, "words do not convert to integers")
	assert.Contains(t, err.Error(), "name")
}

func TestAccessor_TypedGetters_Absent(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", gettersYAML)

	cfg := config.New(path)

	missing, err := cfg.GetString("missing")
	require.NoError(t, err)
	assert.Empty(t, missing)

	count, err := cfg.GetInt("missing", config.WithDefault(42))
	require.NoError(t, err)
	assert.Equal(t, 42, count)

	wait, err := cfg.GetDuration("missing", config.WithDefault("250ms"))
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, wait)

	_, err = cfg.GetString("missing", config.WithRequired())
	require.ErrorIs(t, err, config.ErrRequired)
}

func TestAccessor_Scan_Subtree(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", sampleYAML)

	cfg := config.New(path)

	var server struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	}

	err := cfg.Scan("server", &server)

	require.NoError(t, err)
	assert.Equal(t, "localhost", server.Host)
	assert.Equal(t, 8080, server.Port)
}

func TestAccessor_Scan_WholeDocument(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", sampleYAML)

	cfg := config.New(path)

	var doc struct {
		Hello string `json:"hello"`
	}

	err := cfg.Scan("", &doc)

	require.NoError(t, err)
	assert.Equal(t, "world", doc.Hello)
}

func TestAccessor_Scan_MissingPath(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", sampleYAML)

	cfg := config.New(path)

	var target map[string]any

	err := cfg.Scan("missing", &target)

	require.ErrorIs(t, err, config.ErrRequired)
}

func TestAccessor_Scan_LoadFailurePropagates(t *testing.T) {
	t.Parallel()

	cfg := config.New(filepath.Join(t.TempDir(), "missing.yaml"))

	var target map[string]any

	err := cfg.Scan("server", &target)

	require.ErrorIs(t, err, fs.ErrNotExist)
}
