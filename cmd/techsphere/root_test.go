package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"techsphere/internal/catalog"
	"techsphere/internal/config"
	"techsphere/internal/telemetry"
)

func TestOptionsApply(t *testing.T) {
	tests := []struct {
		name    string
		opts    options
		changed []string
		check   func(t *testing.T, cfg *config.Config)
		wantErr bool
	}{
		{
			name: "no flags keeps config",
			check: func(t *testing.T, cfg *config.Config) {
				assert.True(t, cfg.UI.AltScreen)
				assert.True(t, cfg.UI.Mouse)
				assert.Equal(t, config.LevelInfo, cfg.Log.Level)
			},
		},
		{
			name:    "log flags override",
			opts:    options{logFile: "/tmp/ts.log", logLevel: "DEBUG"},
			changed: []string{"log-file", "log-level"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "/tmp/ts.log", cfg.Log.File)
				assert.Equal(t, config.LevelDebug, cfg.Log.Level)
			},
		},
		{
			name: "unset flag values are ignored",
			opts: options{logLevel: "bogus"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.LevelInfo, cfg.Log.Level)
			},
		},
		{
			name: "screen and mouse switches",
			opts: options{noAltScreen: true, noMouse: true},
			check: func(t *testing.T, cfg *config.Config) {
				assert.False(t, cfg.UI.AltScreen)
				assert.False(t, cfg.UI.Mouse)
			},
		},
		{
			name:    "bad level",
			opts:    options{logLevel: "loud"},
			changed: []string{"log-level"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefault()
			changed := func(name string) bool {
				for _, c := range tt.changed {
					if c == name {
						return true
					}
				}
				return false
			}
			err := tt.opts.apply(cfg, changed)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestProgramOptions(t *testing.T) {
	cfg := config.NewDefault()
	assert.Len(t, programOptions(context.Background(), cfg), 3)

	cfg.UI.AltScreen = false
	cfg.UI.Mouse = false
	assert.Len(t, programOptions(context.Background(), cfg), 1)
}

func TestNavStateRecordsNavigations(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	rec := telemetry.NewRecorder(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))

	state := newNavState(context.Background(), catalog.Default(), rec)
	state.Navigate("article-2")
	state.Navigate("article-999")

	spans := sr.Ended()
	require.Len(t, spans, 2)

	want := []struct{ from, to, view string }{
		{"home", "article-2", "article"},
		{"article-2", "article-999", "not-found"},
	}
	for i, w := range want {
		attrs := attribute.NewSet(spans[i].Attributes()...)
		from, _ := attrs.Value(telemetry.AttrFrom)
		to, _ := attrs.Value(telemetry.AttrTo)
		view, _ := attrs.Value(telemetry.AttrView)
		assert.Equal(t, w.from, from.AsString())
		assert.Equal(t, w.to, to.AsString())
		assert.Equal(t, w.view, view.AsString())
	}
}

func TestNavStateWithoutTracing(t *testing.T) {
	state := newNavState(context.Background(), catalog.Default(), nil)
	assert.NotPanics(t, func() { state.Navigate("about") })
	assert.Equal(t, "about", state.Current().Tag())
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "techsphere version "+version+"\n", out.String())
}

func TestRootRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}
