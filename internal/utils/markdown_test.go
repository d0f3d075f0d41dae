package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	out := string(RenderMarkdown("**bold** and *italic*"))
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("output %q missing <strong>", out)
	}
	if !strings.Contains(out, "<em>italic</em>") {
		t.Errorf("output %q missing <em>", out)
	}
}

func TestRenderMarkdown_SanitizesScript(t *testing.T) {
	out := string(RenderMarkdown("hello <script>alert(1)</script> world"))
	if strings.Contains(out, "<script>") {
		t.Errorf("script tag survived sanitization: %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("legitimate content dropped: %q", out)
	}
}
