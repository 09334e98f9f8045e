// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/morlock/chesscore/pkg/board"
)

// Initial is the FEN for the standard chess starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a Board. zt supplies the zobrist table the new board
// maintains its incremental hash against.
//
// Example: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(fen string, zt *board.ZobristTable) (*board.Board, error) {
	parts := strings.Fields(strings.TrimSpace(fen))
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of fields in FEN: %q", fen)
	}

	placements, err := decodePlacement(parts[0], fen)
	if err != nil {
		return nil, err
	}

	turn, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in FEN: %q", fen)
	}

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling rights in FEN: %q", fen)
	}

	var ep board.Square
	epSet := false
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant target in FEN: %q: %v", fen, err)
		}
		ep, epSet = sq, true
	}

	noprogress, err := strconv.Atoi(parts[4])
	if err != nil || noprogress < 0 {
		return nil, fmt.Errorf("invalid halfmove clock in FEN: %q", fen)
	}

	fullmoves, err := strconv.Atoi(parts[5])
	if err != nil || fullmoves < 1 {
		return nil, fmt.Errorf("invalid fullmove number in FEN: %q", fen)
	}

	b, err := board.NewBoard(zt, placements, turn, castling, ep, epSet, noprogress, fullmoves)
	if err != nil {
		return nil, fmt.Errorf("invalid position in FEN: %q: %v", fen, err)
	}
	return b, nil
}

func decodePlacement(field, fen string) ([]board.Placement, error) {
	var placements []board.Placement

	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("invalid number of ranks in FEN: %q", fen)
	}

	for i, rankStr := range ranks {
		rank := board.Rank(7 - i) // ranks are listed from rank 8 down to rank 1
		file := board.ZeroFile

		for _, r := range rankStr {
			switch {
			case unicode.IsDigit(r):
				file += board.File(r - '0')
			case unicode.IsLetter(r):
				color, piece, ok := parsePiece(r)
				if !ok {
					return nil, fmt.Errorf("invalid piece %q in FEN: %q", r, fen)
				}
				if !file.IsValid() {
					return nil, fmt.Errorf("rank overflow in FEN: %q", fen)
				}
				placements = append(placements, board.Placement{Square: board.NewSquare(file, rank), Color: color, Piece: piece})
				file++
			default:
				return nil, fmt.Errorf("invalid character %q in FEN: %q", r, fen)
			}
		}
		if file != board.NumFiles {
			return nil, fmt.Errorf("invalid rank length in FEN: %q", fen)
		}
	}
	return placements, nil
}

// Encode renders a Board as a FEN record.
func Encode(b *board.Board) string {
	var sb strings.Builder
	for r := board.Rank(board.NumRanks - 1); ; r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			c, p, ok := b.PieceAt(board.NewSquare(f, r))
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(c, p))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r == board.ZeroRank {
			break
		}
		sb.WriteRune('/')
	}

	ep := "-"
	if sq, ok := b.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), printColor(b.Turn()), printCastling(b.Castling()), ep, b.NoProgress(), b.FullMoves())
}

func parseCastling(str string) (board.Castling, bool) {
	var ret board.Castling
	if str == "-" {
		return ret, true
	}
	for _, r := range str {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func printCastling(c board.Castling) string {
	if c == 0 {
		return "-"
	}
	var sb strings.Builder
	if c.IsAllowed(board.WhiteKingSideCastle) {
		sb.WriteRune('K')
	}
	if c.IsAllowed(board.WhiteQueenSideCastle) {
		sb.WriteRune('Q')
	}
	if c.IsAllowed(board.BlackKingSideCastle) {
		sb.WriteRune('k')
	}
	if c.IsAllowed(board.BlackQueenSideCastle) {
		sb.WriteRune('q')
	}
	return sb.String()
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}

func parsePiece(r rune) (board.Color, board.Piece, bool) {
	lower := unicode.ToLower(r)
	p, ok := board.ParsePiece(lower)
	if !ok {
		return 0, 0, false
	}
	if unicode.IsUpper(r) {
		return board.White, p, true
	}
	return board.Black, p, true
}

func printPiece(c board.Color, p board.Piece) rune {
	r := []rune(p.String())[0]
	if c == board.White {
		return unicode.ToUpper(r)
	}
	return unicode.ToLower(r)
}
