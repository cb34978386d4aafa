package inference

import (
	"errors"
	"math"
	"testing"
)

func TestInterpretMapsSyntheticLabelsToArtificial(t *testing.T) {
	for _, label := range []string{"fake", "ai", "artificial", "FAKE", "Artificial"} {
		pred, err := Interpret([]float32{3.0, 0.5}, []string{label, "real"})
		if err != nil {
			t.Fatalf("Interpret failed for %q: %v", label, err)
		}
		if pred.Verdict != VerdictArtificial {
			t.Fatalf("label %q: expected verdict %q, got %q", label, VerdictArtificial, pred.Verdict)
		}
		if pred.Status != StatusWarning {
			t.Fatalf("label %q: expected status %q, got %q", label, StatusWarning, pred.Status)
		}
	}
}

func TestInterpretMapsOtherLabelsToAuthentic(t *testing.T) {
	pred, err := Interpret([]float32{0.1, 2.4}, []string{"fake", "real"})
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}
	if pred.Verdict != VerdictAuthentic {
		t.Fatalf("expected verdict %q, got %q", VerdictAuthentic, pred.Verdict)
	}
	if pred.Status != StatusSafe {
		t.Fatalf("expected status %q, got %q", StatusSafe, pred.Status)
	}
	if pred.Color == "" {
		t.Fatal("expected a color")
	}
}

func TestInterpretConfidenceBoundsAndRounding(t *testing.T) {
	cases := [][]float32{
		{0, 0},
		{10, -10},
		{-3.5, 1.25},
		{100, 99},
	}
	for _, logits := range cases {
		pred, err := Interpret(logits, []string{"real", "fake"})
		if err != nil {
			t.Fatalf("Interpret(%v) failed: %v", logits, err)
		}
		if pred.Confidence < 0 || pred.Confidence > 100 {
			t.Fatalf("confidence %v out of [0,100]", pred.Confidence)
		}
		// Winning class of a two-way softmax is never below 50%.
		if pred.Confidence < 50 {
			t.Fatalf("winning confidence %v below 50", pred.Confidence)
		}
		rounded := math.Round(pred.Confidence*100) / 100
		if pred.Confidence != rounded {
			t.Fatalf("confidence %v not rounded to 2 decimals", pred.Confidence)
		}
	}
}

func TestInterpretEqualLogitsPicksFirst(t *testing.T) {
	pred, err := Interpret([]float32{1, 1}, []string{"real", "fake"})
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}
	if pred.Verdict != VerdictAuthentic {
		t.Fatalf("tie should keep the first class, got %q", pred.Verdict)
	}
	if pred.Confidence != 50 {
		t.Fatalf("expected 50, got %v", pred.Confidence)
	}
}

func TestInterpretRejectsBadShapes(t *testing.T) {
	cases := []struct {
		logits []float32
		labels []string
	}{
		{nil, nil},
		{[]float32{1}, []string{"real"}},
		{[]float32{1, 2, 3}, []string{"a", "b", "c"}},
		{[]float32{1, 2}, []string{"real"}},
	}
	for _, tc := range cases {
		if _, err := Interpret(tc.logits, tc.labels); !errors.Is(err, ErrBadModelOutput) {
			t.Fatalf("Interpret(%v, %v): expected ErrBadModelOutput, got %v", tc.logits, tc.labels, err)
		}
	}
}
