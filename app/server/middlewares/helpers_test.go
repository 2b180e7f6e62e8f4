package middlewares

import (
	"io"
	"strings"
	"testing"

	"pokedex-api/app/server/images"
	"pokedex-api/app/server/testutils"

	"github.com/stretchr/testify/require"
)

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}

// newPipeline 的上限很小，便于触发过大文件的错误
func newPipeline(t *testing.T) *images.Pipeline {
	t.Helper()
	p, err := images.NewPipeline(t.TempDir(), 1024, testutils.NewMemoryBucket())
	require.NoError(t, err)
	return p
}
