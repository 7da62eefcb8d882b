package othello

import (
	"errors"
	"fmt"
	"strings"
)

const (
	blackLetter    = 'd'
	whiteLetter    = 'D'
	rowDelimiter   = "/"
	wholeTextError = -1
)

// ErrFormat is matched by every *FormatError.
var ErrFormat = errors.New("invalid encoded position")

// FormatError describes malformed encoded position text.
type FormatError struct {
	// Segment is the 0-based row segment the problem was found in, or -1
	// when the text as a whole is malformed.
	Segment int
	Reason  string
}

func (e *FormatError) Error() string {
	if e.Segment == wholeTextError {
		return fmt.Sprintf("%s: %s", ErrFormat, e.Reason)
	}
	return fmt.Sprintf("%s: segment %d: %s", ErrFormat, e.Segment, e.Reason)
}

// Is makes errors.Is(err, ErrFormat) hold.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// Decode parses an encoded position. Segments are ranks 1 to 8 separated by
// '/'; within a segment the digits 1-8 skip that many empty squares, 'd' is
// a black disc and 'D' a white disc.
func Decode(text string) (Grid, error) {
	segments := strings.Split(text, rowDelimiter)
	if len(segments) != MaxY {
		return Grid{}, &FormatError{
			Segment: wholeTextError,
			Reason:  fmt.Sprintf("expected %d row segments, got %d", MaxY, len(segments)),
		}
	}

	var g Grid
	for row, segment := range segments {
		col := 0
		for i := range len(segment) {
			char := segment[i]

			var width int
			switch {
			case char >= '1' && char <= '8':
				width = int(char - '0')
			case char == blackLetter || char == whiteLetter:
				width = 1
			default:
				return Grid{}, &FormatError{
					Segment: row,
					Reason:  fmt.Sprintf("unexpected character %q", char),
				}
			}

			if col+width > MaxX {
				return Grid{}, &FormatError{
					Segment: row,
					Reason:  fmt.Sprintf("row overflows %d columns", MaxX),
				}
			}

			switch char {
			case blackLetter:
				g[col][row] = BlackDisc
			case whiteLetter:
				g[col][row] = WhiteDisc
			}

			col += width
		}

		if col != MaxX {
			return Grid{}, &FormatError{
				Segment: row,
				Reason:  fmt.Sprintf("row has %d columns, expected %d", col, MaxX),
			}
		}
	}

	return g, nil
}

// Encode returns the canonical encoded form of g: every run of empty squares
// is written as a single count.
func Encode(g Grid) string {
	var sb strings.Builder

	for row := range MaxY {
		if row > 0 {
			sb.WriteString(rowDelimiter)
		}

		empty := 0
		for col := range MaxX {
			switch g[col][row] {
			case BlackDisc:
				empty = flushEmpty(&sb, empty)
				sb.WriteByte(blackLetter)
			case WhiteDisc:
				empty = flushEmpty(&sb, empty)
				sb.WriteByte(whiteLetter)
			default:
				empty++
			}
		}
		flushEmpty(&sb, empty)
	}

	return sb.String()
}

// flushEmpty writes a pending empty run and returns the reset counter.
func flushEmpty(sb *strings.Builder, empty int) int {
	if empty > 0 {
		sb.WriteByte(byte('0' + empty))
	}
	return 0
}
