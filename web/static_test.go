package web

import (
	"io/fs"
	"testing"
)

func TestAssetsContainsSiteFiles(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"site.css", "avatar.svg"} {
		data, err := fs.ReadFile(Assets(), name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("expected %s to have content", name)
		}
	}
}
