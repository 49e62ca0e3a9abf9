package slog_test

import (
	"bytes"
	"testing"

	"github.com/jtorra/blogscrap"
	"github.com/jtorra/blogscrap/mock"
	bsslog "github.com/jtorra/blogscrap/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingDetector_Detect(t *testing.T) {
	t.Parallel()

	t.Run("logs the detected platform", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Detector{
			DetectFn: func(rootURL string, html string) blogscrap.Platform {
				return blogscrap.PlatformBlogspot
			},
		}

		detector := bsslog.NewLoggingDetector(inner, debugLogger(&buf))
		platform := detector.Detect("https://myblog.blogspot.com", "<html></html>")

		assert.Equal(t, blogscrap.PlatformBlogspot, platform)
		output := buf.String()
		assert.Contains(t, output, "platform detection")
		assert.Contains(t, output, "platform=blogspot")
	})

	t.Run("names the unknown platform explicitly", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Detector{
			DetectFn: func(rootURL string, html string) blogscrap.Platform {
				return blogscrap.PlatformUnknown
			},
		}

		detector := bsslog.NewLoggingDetector(inner, debugLogger(&buf))
		platform := detector.Detect("https://handrolled.example.com", "<html></html>")

		assert.Equal(t, blogscrap.PlatformUnknown, platform)
		assert.Contains(t, buf.String(), "platform=(unknown)")
	})
}
