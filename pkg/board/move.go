package board

import "fmt"

// Kind identifies which of the four tagged move variants a Move represents. The fields that are
// meaningful vary by Kind; see the variant comments below.
type Kind uint8

const (
	// Quiet is a non-castling, non-promoting move: a plain move or an ordinary capture.
	// Uses: From, To, Piece, Capture (NoPiece if not a capture).
	Quiet Kind = iota
	// Castle is a king-and-rook castling move. Uses: Side.
	Castle
	// EnPassant is a pawn capture of a pawn that just double-pushed past it. Uses: From, To.
	EnPassant
	// Promotion is a pawn reaching the back rank, replaced by Promote. Uses: From, To, Promote,
	// Capture (NoPiece if not a capture).
	Promotion
)

func (k Kind) String() string {
	switch k {
	case Quiet:
		return "quiet"
	case Castle:
		return "castle"
	case EnPassant:
		return "enpassant"
	case Promotion:
		return "promotion"
	default:
		return "?"
	}
}

// Side identifies a castling side.
type Side uint8

const (
	KingSide Side = iota
	QueenSide
)

func (s Side) String() string {
	if s == QueenSide {
		return "O-O-O"
	}
	return "O-O"
}

// Move is a tagged variant over the four kinds of chess move. It carries exactly the data needed
// to both apply and unapply itself against a Board; it does not carry search metadata such as a
// score. The zero value (Quiet, a1a1) is not a legal move on any board.
type Move struct {
	Kind Kind

	From, To Square // unused (zero) for Castle
	Piece    Piece   // moving piece kind; unused for Castle and EnPassant (always Pawn there)
	Capture  Piece   // captured piece kind, NoPiece if none; unused for EnPassant (always Pawn)
	Promote  Piece   // promoted-to piece kind; only set for Promotion

	Side Side // only set for Castle
}

// NewQuietMove constructs a Quiet move, capture or otherwise. captured is NoPiece if none.
func NewQuietMove(from, to Square, piece, captured Piece) Move {
	return Move{Kind: Quiet, From: from, To: to, Piece: piece, Capture: captured}
}

// NewCastleMove constructs a castling move for the given side.
func NewCastleMove(side Side) Move {
	return Move{Kind: Castle, Side: side}
}

// NewEnPassantMove constructs an en-passant capture. The captured pawn's square is derivable:
// same file as "to", same rank as "from".
func NewEnPassantMove(from, to Square) Move {
	return Move{Kind: EnPassant, From: from, To: to, Piece: Pawn, Capture: Pawn}
}

// NewPromotionMove constructs a pawn promotion, capture or otherwise. captured is NoPiece if
// none.
func NewPromotionMove(from, to Square, promote, captured Piece) Move {
	return Move{Kind: Promotion, From: from, To: to, Piece: Pawn, Promote: promote, Capture: captured}
}

// IsCapture reports whether the move removes an enemy piece from the board.
func (m Move) IsCapture() bool {
	return m.Kind == EnPassant || ((m.Kind == Quiet || m.Kind == Promotion) && m.Capture != NoPiece)
}

// EnPassantCaptureSquare returns the square of the pawn captured by an EnPassant move.
func (m Move) EnPassantCaptureSquare() Square {
	return NewSquare(m.To.File(), m.From.Rank())
}

// CastlingSquares returns the king and rook from/to squares for a Castle move of the given
// color.
func (m Move) CastlingSquares(c Color) (kingFrom, kingTo, rookFrom, rookTo Square) {
	rank := Rank1
	if c == Black {
		rank = Rank8
	}
	if m.Side == KingSide {
		return NewSquare(FileE, rank), NewSquare(FileG, rank), NewSquare(FileH, rank), NewSquare(FileF, rank)
	}
	return NewSquare(FileE, rank), NewSquare(FileC, rank), NewSquare(FileA, rank), NewSquare(FileD, rank)
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or "a7a8q". It
// returns the raw from/to/promotion triple; Board.ResolveMove resolves the triple against a
// position to classify it as Quiet, Castle, EnPassant or Promotion.
func ParseMove(str string) (from, to Square, promote Piece, err error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return 0, 0, NoPiece, fmt.Errorf("invalid move: %q", str)
	}

	from, err = ParseSquare(runes[0], runes[1])
	if err != nil {
		return 0, 0, NoPiece, fmt.Errorf("invalid from: %q: %v", str, err)
	}
	to, err = ParseSquare(runes[2], runes[3])
	if err != nil {
		return 0, 0, NoPiece, fmt.Errorf("invalid to: %q: %v", str, err)
	}

	promote = NoPiece
	if len(runes) == 5 {
		p, ok := ParsePiece(runes[4])
		if !ok || p == Pawn || p == King {
			return 0, 0, NoPiece, fmt.Errorf("invalid promotion: %q", str)
		}
		promote = p
	}
	return from, to, promote, nil
}

func (m Move) String() string {
	switch m.Kind {
	case Castle:
		return m.Side.String()
	case Promotion:
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promote)
	default:
		return fmt.Sprintf("%v%v", m.From, m.To)
	}
}
