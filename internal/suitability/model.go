// Package suitability scores how well an individual food fits a nutrition
// goal on a 1-5 scale, using a gradient-boosted decision-tree ensemble
// trained offline and exported as a JSON artifact. The model weights are
// loaded once at startup and inference is a pure function, safe for
// concurrent use without locking. The scorer is a ranking signal for the
// allocator, never a hard constraint: a missing model degrades selection to
// rotation order.
package suitability

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/example/diet-planner/internal/models"
)

// Scorer rates a food's suitability. Implementations must be safe for
// concurrent use.
type Scorer interface {
	// Score returns a 1-5 suitability label and a confidence in [0,1].
	Score(food *models.FoodRecord) (label int, confidence float64)
}

// Node is one decision-tree node. Leaf nodes have Feature == -1 and carry
// the output in Value; internal nodes route on feature <= threshold.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// Tree is a single regression tree of the boosted ensemble.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// eval walks the tree for one feature vector.
func (t Tree) eval(features []float64) float64 {
	i := 0
	for {
		node := t.Nodes[i]
		if node.Feature < 0 {
			return node.Value
		}
		if features[node.Feature] <= node.Threshold {
			i = node.Left
		} else {
			i = node.Right
		}
	}
}

// Model is a gradient-boosted classifier over the 1-5 suitability labels.
// Per class it holds an initial score and a sequence of additive trees;
// class probabilities come from a softmax over the accumulated scores.
type Model struct {
	Classes      []int     `json:"classes"`
	LearningRate float64   `json:"learning_rate"`
	InitScores   []float64 `json:"init_scores"`
	Trees        [][]Tree  `json:"trees"`
}

// Load reads and validates a model artifact from disk.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact: %w", err)
	}
	return &m, nil
}

func (m *Model) validate() error {
	if len(m.Classes) == 0 {
		return fmt.Errorf("no classes")
	}
	if len(m.InitScores) != len(m.Classes) || len(m.Trees) != len(m.Classes) {
		return fmt.Errorf("class count mismatch: %d classes, %d init scores, %d tree groups",
			len(m.Classes), len(m.InitScores), len(m.Trees))
	}
	if m.LearningRate <= 0 {
		return fmt.Errorf("non-positive learning rate %g", m.LearningRate)
	}
	for ci, trees := range m.Trees {
		for ti, tree := range trees {
			if len(tree.Nodes) == 0 {
				return fmt.Errorf("class %d tree %d has no nodes", ci, ti)
			}
			for ni, node := range tree.Nodes {
				if node.Feature >= FeatureCount {
					return fmt.Errorf("class %d tree %d node %d references feature %d (max %d)",
						ci, ti, ni, node.Feature, FeatureCount-1)
				}
				if node.Feature >= 0 {
					if node.Left < 0 || node.Left >= len(tree.Nodes) ||
						node.Right < 0 || node.Right >= len(tree.Nodes) {
						return fmt.Errorf("class %d tree %d node %d has out-of-range children", ci, ti, ni)
					}
				}
			}
		}
	}
	return nil
}

// Score implements Scorer: the class with the highest softmax probability
// wins, and that probability is the confidence.
func (m *Model) Score(food *models.FoodRecord) (int, float64) {
	features := Features(food)

	scores := make([]float64, len(m.Classes))
	for ci := range m.Classes {
		score := m.InitScores[ci]
		for _, tree := range m.Trees[ci] {
			score += m.LearningRate * tree.eval(features)
		}
		scores[ci] = score
	}

	// Softmax with max-shift for numerical stability.
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}
	var sum float64
	probs := make([]float64, len(scores))
	for i, s := range scores {
		probs[i] = math.Exp(s - maxScore)
		sum += probs[i]
	}

	best := 0
	for i := range probs {
		probs[i] /= sum
		if probs[i] > probs[best] {
			best = i
		}
	}
	return m.Classes[best], probs[best]
}
