package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderIncludesCounters(t *testing.T) {
	IncResumeAnalyzed()
	IncResumePersisted()
	IncStageFailure("parse")
	ObserveAnalysisDurationMs(42)

	out := Render()
	for _, want := range []string{
		"# TYPE resumes_analyzed_total counter",
		"# TYPE resumes_persisted_total counter",
		`resume_stage_failures_total{stage="parse"}`,
		"# TYPE resume_analysis_duration_ms histogram",
		"resume_analysis_duration_ms_count",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render output missing %q:\n%s", want, out)
		}
	}
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("expected count 3, got %d", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("unexpected bucket counts: %v", snap.counts)
	}

	var buf bytes.Buffer
	writeHistogram(&buf, "test_ms", "test", snap)
	rendered := buf.String()
	if !strings.Contains(rendered, `le="10"} 1`) {
		t.Fatalf("expected cumulative le=10 count 1:\n%s", rendered)
	}
	if !strings.Contains(rendered, `le="100"} 2`) {
		t.Fatalf("expected cumulative le=100 count 2:\n%s", rendered)
	}
	if !strings.Contains(rendered, `le="+Inf"} 3`) {
		t.Fatalf("expected +Inf count 3:\n%s", rendered)
	}
}
