package detector_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/box/internal/adapters/detector"
	"go.trai.ch/box/internal/core/domain"
)

func TestIsInteractive_NonFileWriter(t *testing.T) {
	assert.False(t, detector.IsInteractive(&bytes.Buffer{}))
}

func TestIsInteractive_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	assert.False(t, detector.IsInteractive(f))
}

func TestIsInteractive_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.False(t, detector.IsInteractive(os.Stdout))
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name        string
		interactive bool
		mode        domain.OutputMode
		want        domain.OutputMode
	}{
		{"auto on terminal", true, domain.OutputModeAuto, domain.OutputModeAnimated},
		{"auto off terminal", false, domain.OutputModeAuto, domain.OutputModePlain},
		{"empty on terminal", true, "", domain.OutputModeAnimated},
		{"forced animated", false, domain.OutputModeAnimated, domain.OutputModeAnimated},
		{"forced plain", true, domain.OutputModePlain, domain.OutputModePlain},
		{"unknown falls back", false, "fancy", domain.OutputModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveMode(tt.interactive, tt.mode))
		})
	}
}
