package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestPhaseBanner(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Phase("creating model...")

	if !strings.Contains(buf.String(), "creating model...") {
		t.Errorf("phase banner missing message: %q", buf.String())
	}
}

func TestBannerIsDelimited(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Banner("running model for 10 years")

	out := buf.String()
	if !strings.Contains(out, "running model for 10 years") {
		t.Errorf("banner missing message: %q", out)
	}
	if strings.Count(out, "**********") < 2 {
		t.Errorf("banner should be delimited above and below: %q", out)
	}
}

func TestErrorBlockDistinct(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.ErrorBlock("error in phase \"create\"", "species table missing")

	out := buf.String()
	if !strings.Contains(out, "species table missing") {
		t.Errorf("error block missing message: %q", out)
	}
	// The error block uses a border, not the progress rule.
	if strings.Contains(out, "**********") {
		t.Errorf("error block should not look like a progress banner: %q", out)
	}
}

func TestNilReporterIsSafe(t *testing.T) {
	var r *Reporter

	// None of these may panic or error.
	r.Phase("p")
	r.Banner("b")
	r.Completed("c")
	r.ErrorBlock("t", "m")
	r.Infof("%d", 1)
}
