package objectstorage

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestBuildObjectKey(t *testing.T) {
	now := time.Date(2025, 6, 12, 14, 30, 0, 0, time.UTC)
	ms := strconv.FormatInt(now.UnixMilli(), 10)

	t.Run("keeps safe characters and lowers the extension", func(t *testing.T) {
		key := buildObjectKey("order-1", "Nota Fiscal #42.PDF", now)
		want := "notas/order-1-NotaFiscal42-" + ms + ".pdf"
		if key != want {
			t.Fatalf("got %q, want %q", key, want)
		}
	})

	t.Run("file without extension falls back to dat", func(t *testing.T) {
		key := buildObjectKey("order-1", "comprovante", now)
		want := "notas/order-1-comprovante-" + ms + ".dat"
		if key != want {
			t.Fatalf("got %q, want %q", key, want)
		}
	})

	t.Run("strips path separators from the name", func(t *testing.T) {
		key := buildObjectKey("order-1", "../../etc/passwd", now)
		if strings.Contains(strings.TrimPrefix(key, "notas/"), "/") {
			t.Fatalf("key escapes the prefix: %q", key)
		}
	})
}

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"nota fiscal.pdf": "notafiscal.pdf",
		"ação!@#":         "ao",
		"ABC-123_x.y":     "ABC-123_x.y",
	}
	for in, want := range cases {
		if got := sanitize(in); got != want {
			t.Errorf("sanitize(%q) = %q, want %q", in, got, want)
		}
	}
}
