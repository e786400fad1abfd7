package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLog(fn func()) string {
	var buf bytes.Buffer
	old := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(old)
	fn()
	return buf.String()
}

func TestComponentLoggerPrefix(t *testing.T) {
	l := NewComponentLogger(InfoLevel, "sweeper")

	out := captureLog(func() {
		l.Info("đã giải phóng %d giường", 2)
	})

	if !strings.Contains(out, "[INFO] [sweeper] đã giải phóng 2 giường") {
		t.Fatalf("log thiếu tên thành phần: %q", out)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	l := NewDefaultLogger(InfoLevel)

	t.Run("debug bị lọc ở mức info", func(t *testing.T) {
		out := captureLog(func() {
			l.Debug("chi tiết nội bộ")
		})
		if out != "" {
			t.Fatalf("debug không được ghi ở mức info, nhận %q", out)
		}
	})

	t.Run("error luôn được ghi", func(t *testing.T) {
		out := captureLog(func() {
			l.Error("lỗi quét giường")
		})
		if !strings.Contains(out, "[ERROR] lỗi quét giường") {
			t.Fatalf("thiếu log lỗi: %q", out)
		}
	})
}
