package engine

import (
	"encoding/json"
	"fmt"

	"github.com/daystram/gambit/board"
)

// featureCount is the feature vector's dimensionality: six piece-major
// 64-square blocks plus a single tempo feature.
const featureCount = 6*64 + 1

// weightFile is the JSON shape exported by the training pipeline that
// produced a neural evaluator's weights: an ordered stack of dense layers,
// a centipawn scale, and a point-of-view convention.
type weightFile struct {
	Basis      string  `json:"basis"`
	Activation string  `json:"activation"`
	ModelPOV   string  `json:"model_pov"`
	Layers     []layer `json:"layers"`
	ScaleCP    float64 `json:"scale_cp"`
}

type layer struct {
	W [][]float64 `json:"W"`
	B []float64   `json:"b"`
}

// neuralEvaluator is a small feedforward network: a chain of dense layers
// with ReLU after every layer but the last, whose first output is the
// score, fed the 385-dim occupancy-plus-tempo feature vector.
type neuralEvaluator struct {
	layers   []layer
	scaleCP  float64
	sidePOV  bool // true when model_pov == "sidemove"
}

// NewNeuralEvaluator decodes a weight file and returns an Evaluator backed
// by it. It never returns an error: on any decode or shape failure it logs
// once (when logger is non-nil) and falls back to the classical evaluator,
// matching the contract that a caller never has to handle a broken weight
// file specially.
func NewNeuralEvaluator(data []byte, logger func(format string, args ...any)) Evaluator {
	eval, err := decodeNeuralEvaluator(data)
	if err != nil {
		if logger != nil {
			logger("neural evaluator disabled, using classical: %v", err)
		}
		return NewClassicalEvaluator()
	}
	return eval
}

func decodeNeuralEvaluator(data []byte) (Evaluator, error) {
	var wf weightFile
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("%w: decode json: %v", ErrWeightLoadFailed, err)
	}
	if wf.Basis != "square1h" {
		return nil, fmt.Errorf("%w: unsupported basis %q", ErrWeightLoadFailed, wf.Basis)
	}
	if wf.Activation != "relu" {
		return nil, fmt.Errorf("%w: unsupported activation %q", ErrWeightLoadFailed, wf.Activation)
	}
	if wf.ModelPOV != "sidemove" && wf.ModelPOV != "white" {
		return nil, fmt.Errorf("%w: unsupported model_pov %q", ErrWeightLoadFailed, wf.ModelPOV)
	}
	if len(wf.Layers) == 0 {
		return nil, fmt.Errorf("%w: no layers", ErrWeightLoadFailed)
	}
	prevWidth := featureCount
	for i, l := range wf.Layers {
		if len(l.W) == 0 {
			return nil, fmt.Errorf("%w: layer %d has no rows", ErrWeightLoadFailed, i)
		}
		if len(l.W) != len(l.B) {
			return nil, fmt.Errorf("%w: layer %d has %d rows but %d biases", ErrWeightLoadFailed, i, len(l.W), len(l.B))
		}
		width := len(l.W[0])
		for _, row := range l.W {
			if len(row) != width {
				return nil, fmt.Errorf("%w: layer %d has ragged rows", ErrWeightLoadFailed, i)
			}
		}
		if width != prevWidth {
			return nil, fmt.Errorf("%w: layer %d expects %d inputs, got %d from the previous layer",
				ErrWeightLoadFailed, i, width, prevWidth)
		}
		prevWidth = len(l.W)
	}
	scale := wf.ScaleCP
	if scale == 0 {
		scale = 1000
	}
	return &neuralEvaluator{
		layers:  wf.Layers,
		scaleCP: scale,
		sidePOV: wf.ModelPOV == "sidemove",
	}, nil
}

// Evaluate extracts the feature vector, runs the feedforward pass, rescales
// the output into centipawns, and applies the model's point-of-view flip so
// the result is always from White's perspective.
func (n *neuralEvaluator) Evaluate(b *board.Board) int32 {
	x := extractFeatures(b)
	for i, l := range n.layers {
		isLast := i == len(n.layers)-1
		x = applyLayer(l, x, !isLast)
	}
	raw := 0.0
	if len(x) > 0 {
		raw = x[0]
	}
	score := raw * n.scaleCP
	if n.sidePOV && b.Turn() == board.SideBlack {
		score = -score
	}
	return int32(score)
}

func applyLayer(l layer, x []float64, relu bool) []float64 {
	out := make([]float64, len(l.W))
	for i, row := range l.W {
		var sum float64
		for j, w := range row {
			sum += w * x[j]
		}
		sum += l.B[i]
		if relu && sum < 0 {
			sum = 0
		}
		out[i] = sum
	}
	return out
}

// extractFeatures builds the 385-dim feature vector: six piece-major
// 64-square blocks, +1 for a white occupant of that piece kind at that
// square, -1 for black, plus a trailing tempo feature.
func extractFeatures(b *board.Board) []float64 {
	x := make([]float64, featureCount)
	pieces := []board.Piece{
		board.PiecePawn, board.PieceKnight, board.PieceBishop,
		board.PieceRook, board.PieceQueen, board.PieceKing,
	}
	for blockIdx, p := range pieces {
		base := blockIdx * 64
		wbm := b.GetBitmap(board.SideWhite, p)
		for wbm != 0 {
			sq := wbm.LS1B()
			wbm &^= 1 << sq
			x[base+int(sq)] = 1
		}
		bbm := b.GetBitmap(board.SideBlack, p)
		for bbm != 0 {
			sq := bbm.LS1B()
			bbm &^= 1 << sq
			x[base+int(sq)] = -1
		}
	}
	if b.Turn() == board.SideWhite {
		x[featureCount-1] = 1
	} else {
		x[featureCount-1] = -1
	}
	return x
}
