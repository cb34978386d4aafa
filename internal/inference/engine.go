package inference

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

// Verdict and status values surfaced to clients.
const (
	VerdictAuthentic  = "Authentic"
	VerdictArtificial = "Artificial"

	StatusSafe    = "safe"
	StatusWarning = "warning"

	colorSafe    = "#22c55e"
	colorWarning = "#ef4444"
)

// ErrBadModelOutput is returned when the model produces something other
// than a two-class distribution.
var ErrBadModelOutput = errors.New("unexpected model output shape")

// Prediction is the interpreted outcome of one classification.
type Prediction struct {
	Verdict    string
	Confidence float64
	Status     string
	Color      string
}

// Engine classifies image bytes into a two-way authenticity verdict.
// Implementations are safe for concurrent use after construction.
type Engine interface {
	Classify(ctx context.Context, imageBytes []byte) (*Prediction, error)
}

// labels whose text marks the synthetic class, matched lowercase.
var syntheticLabels = map[string]bool{
	"fake":       true,
	"ai":         true,
	"artificial": true,
}

// Interpret turns raw two-class logits into a Prediction: softmax over
// the logits, argmax, confidence as a percentage rounded to two decimals,
// and the label-to-verdict mapping.
func Interpret(logits []float32, labels []string) (*Prediction, error) {
	if len(logits) != 2 || len(labels) != len(logits) {
		return nil, fmt.Errorf("%w: %d logits, %d labels", ErrBadModelOutput, len(logits), len(labels))
	}

	probs := softmax(logits)
	top := 0
	if probs[1] > probs[0] {
		top = 1
	}

	confidence := math.Round(probs[top]*10000) / 100

	if syntheticLabels[strings.ToLower(labels[top])] {
		return &Prediction{
			Verdict:    VerdictArtificial,
			Confidence: confidence,
			Status:     StatusWarning,
			Color:      colorWarning,
		}, nil
	}
	return &Prediction{
		Verdict:    VerdictAuthentic,
		Confidence: confidence,
		Status:     StatusSafe,
		Color:      colorSafe,
	}, nil
}

func softmax(logits []float32) []float64 {
	max := float64(logits[0])
	for _, l := range logits[1:] {
		if float64(l) > max {
			max = float64(l)
		}
	}

	exps := make([]float64, len(logits))
	var sum float64
	for i, l := range logits {
		exps[i] = math.Exp(float64(l) - max)
		sum += exps[i]
	}
	for i := range exps {
		exps[i] /= sum
	}
	return exps
}
