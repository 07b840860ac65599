package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// SevenTagRoster lists the tags every PGN game carries, in export order.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// PGNWriter writes games in PGN format.
type PGNWriter struct {
	w   io.Writer
	cfg *config.OutputConfig

	// Tags overrides or extends the default tags. Result is always
	// derived from the position.
	Tags map[string]string
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, cfg *config.OutputConfig) *PGNWriter {
	return &PGNWriter{
		w:    w,
		cfg:  cfg,
		Tags: make(map[string]string),
	}
}

// WriteGame writes the tag section, a blank line, the movetext and a
// trailing blank line.
func (pw *PGNWriter) WriteGame(g *engine.Game) error {
	san, err := notation.GameSAN(g)
	if err != nil {
		return errors.Wrap(err, "pgn export")
	}

	result := GameResult(g)
	pw.writeTags(g, result)

	ow := NewOutputWriter(pw.w, int(pw.cfg.MaxLineLength))
	ow.NewLine()

	start := g.StartPosition()
	moveNum := start.MoveNumber
	isWhite := start.ToMove == chess.White
	for i, text := range san {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(text)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	ow.Write(result)
	ow.NewLine()
	ow.NewLine()
	return ow.Err()
}

// writeTags outputs the seven tag roster, then SetUp/FEN for games that do
// not start from the initial position, then any extra tags sorted by name.
func (pw *PGNWriter) writeTags(g *engine.Game, result string) {
	defaults := map[string]string{"Date": "????.??.??", "Result": result}
	for _, tag := range SevenTagRoster {
		value, ok := pw.Tags[tag]
		if tag == "Result" || !ok {
			value = defaults[tag]
		}
		if value == "" {
			value = "?"
		}
		fmt.Fprintf(pw.w, "[%s \"%s\"]\n", tag, escapeTagValue(value))
	}

	start := g.StartPosition()
	if fen := engine.ToFEN(&start); fen != engine.InitialFEN {
		fmt.Fprintf(pw.w, "[SetUp \"1\"]\n")
		fmt.Fprintf(pw.w, "[FEN \"%s\"]\n", fen)
	}

	var extra []string
	for tag := range pw.Tags {
		if !isRosterTag(tag) && tag != "SetUp" && tag != "FEN" {
			extra = append(extra, tag)
		}
	}
	sort.Strings(extra)
	for _, tag := range extra {
		fmt.Fprintf(pw.w, "[%s \"%s\"]\n", tag, escapeTagValue(pw.Tags[tag]))
	}
}

func isRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// GameResult returns the PGN result of the current position: a win for
// the side that delivered mate, a draw for stalemate, "*" otherwise.
func GameResult(g *engine.Game) string {
	switch g.Status() {
	case engine.Checkmate:
		if g.ToMove() == chess.White {
			return "0-1"
		}
		return "1-0"
	case engine.Stalemate:
		return "1/2-1/2"
	default:
		return "*"
	}
}
