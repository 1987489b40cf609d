package linear_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/box/internal/adapters/linear"
)

func TestRenderer_ShowPrintsOnce(t *testing.T) {
	var buf bytes.Buffer
	r := linear.NewRenderer(&buf)

	r.Show("⏳ Currently: install packages", time.Now())
	r.Clear()
	r.Clear()

	assert.Equal(t, "⏳ Currently: install packages\n", buf.String())
}

func TestRenderer_ShowTwice(t *testing.T) {
	var buf bytes.Buffer
	r := linear.NewRenderer(&buf)

	r.Show("a", time.Now())
	r.Show("b", time.Now())

	assert.Equal(t, "a\nb\n", buf.String())
}

func TestRenderer_NilWriter(t *testing.T) {
	r := linear.NewRenderer(nil)
	assert.NotNil(t, r)
}
