// Package tweet defines the messages flowing through the pipeline and
// the filter/tokenizer applied to each one.
package tweet

import (
	"bufio"
	"fmt"
	"strings"
	"unicode"
)

// Sequence number assigned at ingestion
type Tseqno uint64

// Per-message word counts
type Tcounts map[string]uint64

type Message struct {
	Seqno Tseqno
	Text  string
}

func (m Message) String() string {
	return fmt.Sprintf("{%d %q}", m.Seqno, m.Text)
}

// Number of distinct words in message Seqno
type UniqueCount struct {
	Seqno Tseqno
	N     int
}

func (uc UniqueCount) String() string {
	return fmt.Sprintf("{%d %d}", uc.Seqno, uc.N)
}

// Valid reports whether every rune of text is printable and none is
// upper or title case.
func Valid(text string) bool {
	for _, r := range text {
		if !unicode.IsPrint(r) || unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
	}
	return true
}

// Filter returns text unchanged if it is valid and "" otherwise.
func Filter(text string) string {
	if !Valid(text) {
		return ""
	}
	return text
}

// Words splits text on runs of white space.
func Words(text string) []string {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, len(text)+1), len(text)+1)
	scanner.Split(bufio.ScanWords)
	ws := make([]string, 0)
	for scanner.Scan() {
		ws = append(ws, scanner.Text())
	}
	return ws
}

// Count filters text and counts its words.
func Count(text string) Tcounts {
	c, _ := CountValid(text)
	return c
}

// CountValid is Count, also reporting whether text passed the filter.
// An invalid text yields an empty map.
func CountValid(text string) (Tcounts, bool) {
	data := make(Tcounts)
	if !Valid(text) {
		return data, false
	}
	for _, w := range Words(text) {
		data[w] += 1
	}
	return data, true
}
