package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	InitialFEN string     `json:"initialFEN"`
	FinalFEN   string     `json:"finalFEN"`
	ToMove     string     `json:"toMove"`
	Status     string     `json:"status"`
	Result     string     `json:"result"`
	PlyCount   int        `json:"plyCount"`
	Draw       JSONDraw   `json:"draw"`
	Moves      []JSONMove `json:"moves"`
}

// JSONDraw reports the draw conditions met by the current position.
type JSONDraw struct {
	FiftyMove            bool `json:"fiftyMove,omitempty"`
	SeventyFiveMove      bool `json:"seventyFiveMove,omitempty"`
	Threefold            bool `json:"threefold,omitempty"`
	Fivefold             bool `json:"fivefold,omitempty"`
	InsufficientMaterial bool `json:"insufficientMaterial,omitempty"`
	Claimable            bool `json:"claimable"`
	Automatic            bool `json:"automatic"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply        int    `json:"ply"`
	MoveNumber uint   `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Class      string `json:"class"`
	FEN        string `json:"fen"`
}

// JSONWriter writes one JSON document per game.
type JSONWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// WriteGame encodes g.
func (jw *JSONWriter) WriteGame(g *engine.Game) error {
	jg, err := GameToJSON(g)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(jw.w)
	if jw.cfg.IndentJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(jg)
}

// GameToJSON converts a game to its JSON form.
func GameToJSON(g *engine.Game) (*JSONGame, error) {
	san, err := notation.GameSAN(g)
	if err != nil {
		return nil, errors.Wrap(err, "json export")
	}

	start := g.StartPosition()
	draws := engine.AnalyzeDrawRules(g)
	jg := &JSONGame{
		InitialFEN: engine.ToFEN(&start),
		FinalFEN:   g.FEN(),
		ToMove:     colorName(g.ToMove()),
		Status:     g.Status().String(),
		Result:     GameResult(g),
		PlyCount:   g.Ply(),
		Draw: JSONDraw{
			FiftyMove:            draws.FiftyMoveRule,
			SeventyFiveMove:      draws.SeventyFiveMoveRule,
			Threefold:            draws.ThreefoldRepetition,
			Fivefold:             draws.FivefoldRepetition,
			InsufficientMaterial: draws.InsufficientMaterial,
			Claimable:            draws.Claimable(),
			Automatic:            draws.Automatic(),
		},
		Moves: make([]JSONMove, 0, g.Ply()),
	}

	positions := g.Positions()
	for i, move := range g.History() {
		before := &positions[i]
		after := &positions[i+1]
		jm := JSONMove{
			Ply:        i + 1,
			MoveNumber: before.MoveNumber,
			Color:      colorName(move.Piece.Side),
			SAN:        san[i],
			UCI:        move.String(),
			From:       move.From.String(),
			To:         move.To.String(),
			Piece:      pieceTypeName(move.Piece.Kind),
			Class:      move.Class.String(),
			FEN:        engine.ToFEN(after),
		}
		if move.IsCapture() {
			jm.Captured = pieceTypeName(move.Captured.Kind)
		}
		if move.IsPromotion() {
			jm.Promotion = pieceTypeName(move.Promotion)
		}
		jg.Moves = append(jg.Moves, jm)
	}
	return jg, nil
}

func colorName(side chess.Side) string {
	return strings.ToLower(side.String())
}

// pieceTypeName returns e.g. "knight"; empty for NoPiece.
func pieceTypeName(kind chess.PieceKind) string {
	if kind == chess.NoPiece {
		return ""
	}
	return strings.ToLower(kind.String())
}
