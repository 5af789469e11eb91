package Freq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/treeshape/go-symtab/Tables"
)

// Counter summarizes the word frequencies of a text.
type Counter struct {
	Words     uint   // total number of qualifying words
	Distinct  uint   // number of distinct qualifying words
	Max       string // most frequent word; the smallest such word on a tie
	Frequency uint32 // number of occurrences of Max
}

// Count reads text from r line by line, splits each line on whitespace, and
// tallies every word of at least minLen bytes in a SizedMap keyed by the
// word. It then scans the keys in order for the highest count. Ties go to
// the smallest word because the scan only advances on a strictly higher
// count.
func Count(r io.Reader, minLen int) (Counter, error) {
	t := Tables.MakeSizedMap[string, uint32, uint32]()
	var c Counter
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		for _, w := range strings.Fields(sc.Text()) {
			if len(w) < minLen {
				continue
			}
			c.Words++
			if t.Has(w) {
				n, _ := t.Get(w)
				t.Put(w, n+1)
			} else {
				t.Put(w, 1)
				c.Distinct++
			}
		}
	}
	if err := sc.Err(); err != nil {
		return Counter{}, fmt.Errorf("reading text: %w", err)
	}
	for _, w := range t.Keys() {
		if n, _ := t.Get(w); n > c.Frequency {
			c.Max, c.Frequency = w, n
		}
	}
	return c, nil
}

// CountFile opens the file at path and counts it with Count.
func CountFile(path string, minLen int) (Counter, error) {
	f, err := os.Open(path)
	if err != nil {
		return Counter{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Count(f, minLen)
}
