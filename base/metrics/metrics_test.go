package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTag(t *testing.T) {
	assert.Equal(t, []string{"method:GET", "path:/bns"}, parseTag([]string{"method", "GET", "path", "/bns"}))
	assert.Equal(t, []string{}, parseTag(nil))
	assert.Panics(t, func() { parseTag([]string{"dangling"}) })
}

func TestBumpWithoutAgent(t *testing.T) {
	met := New("test")
	assert.NotPanics(t, func() {
		met.BumpSum("lookup.hit", 1, "kind", "forward")
		met.BumpHistogram("batch.size", 3)
		met.BumpTime("request.time", "method", "GET").End()
		// an odd tag list is swallowed by the recover
		met.BumpSum("lookup.miss", 1, "kind")
		met.BumpTime("request.time", "method").End()
	})
}
