/*
Package pgn serializes a finished or in-progress game into Portable Game
Notation, an external collaborator per spec.md §1 (PGN is notation
tooling around the core, not part of move generation).

Grounded on treepeck-chego/pgn.go's tag-block-plus-movetext PGN layout
(the teacher's SerializePGN was an unimplemented stub; this fills in the
format its doc comment describes).
*/
package pgn

import "strings"

// Tags is the set of PGN header fields: the "Seven Tag Roster", written in
// that fixed order, plus any extras the caller wants recorded, written
// after it in map iteration order (not fixed).
type Tags struct {
	Event, Site, Date, Round, White, Black, Result string
	Extra                                          map[string]string
}

// Serialize renders tags and the game's SAN move sequence as a PGN
// string. moveNumbers are written before each white move, per the PGN
// movetext grammar.
func Serialize(tags Tags, sanMoves []string) string {
	var b strings.Builder

	writeTag := func(name, value string) {
		if value == "" {
			return
		}
		b.WriteByte('[')
		b.WriteString(name)
		b.WriteString(" \"")
		b.WriteString(value)
		b.WriteString("\"]\n")
	}

	writeTag("Event", tags.Event)
	writeTag("Site", tags.Site)
	writeTag("Date", tags.Date)
	writeTag("Round", tags.Round)
	writeTag("White", tags.White)
	writeTag("Black", tags.Black)
	writeTag("Result", tags.Result)
	for k, v := range tags.Extra {
		writeTag(k, v)
	}
	b.WriteByte('\n')

	for i, san := range sanMoves {
		if i%2 == 0 {
			b.WriteString(itoa(i/2 + 1))
			b.WriteString(". ")
		}
		b.WriteString(san)
		b.WriteByte(' ')
	}
	if tags.Result != "" {
		b.WriteString(tags.Result)
	}

	return strings.TrimRight(b.String(), " ")
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits [20]byte
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits[i:])
}
