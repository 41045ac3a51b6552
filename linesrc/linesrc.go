// Package linesrc reads lines from a list of files, or from standard
// input when the list is empty, as one continuous stream.
package linesrc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/readahead"

	db "tweetstats/debug"
)

const (
	STDIN   = "-"
	BUFSZ   = 1 << 20
	NBUFFER = 4
)

// Expand replaces each directory in paths by the regular files it
// contains, in name order. An empty list means standard input.
func Expand(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return []string{STDIN}, nil
	}
	pns := make([]string, 0, len(paths))
	for _, pn := range paths {
		if pn == STDIN {
			pns = append(pns, pn)
			continue
		}
		st, err := os.Stat(pn)
		if err != nil {
			return nil, err
		}
		if !st.IsDir() {
			pns = append(pns, pn)
			continue
		}
		dents, err := os.ReadDir(pn)
		if err != nil {
			return nil, err
		}
		for _, d := range dents {
			if d.Type().IsRegular() {
				pns = append(pns, filepath.Join(pn, d.Name()))
			}
		}
	}
	return pns, nil
}

type Source struct {
	paths   []string
	maxline int
	idx     int
	file    io.Closer
	rdr     io.ReadCloser
	scanner *bufio.Scanner
	err     error
	nline   int
}

func NewSource(paths []string, maxline int) (*Source, error) {
	pns, err := Expand(paths)
	if err != nil {
		return nil, err
	}
	return &Source{paths: pns, maxline: maxline}, nil
}

func (s *Source) Paths() []string {
	return s.paths
}

func (s *Source) open(pn string) error {
	var f io.ReadCloser
	if pn == STDIN {
		f = io.NopCloser(os.Stdin)
	} else {
		var err error
		if f, err = os.Open(pn); err != nil {
			return err
		}
	}
	ra, err := readahead.NewReaderSize(f, NBUFFER, BUFSZ)
	if err != nil {
		f.Close()
		return err
	}
	db.DPrintf(db.LINESRC, "open %v", pn)
	s.file = f
	s.rdr = ra
	s.scanner = bufio.NewScanner(ra)
	s.scanner.Buffer(make([]byte, 0, min(s.maxline, 64*1024)), s.maxline)
	return nil
}

func (s *Source) closeCur() error {
	if s.rdr == nil {
		return nil
	}
	s.rdr.Close()
	err := s.file.Close()
	s.rdr = nil
	s.file = nil
	s.scanner = nil
	return err
}

// Scan advances to the next line, moving on to the next file when the
// current one is exhausted.
func (s *Source) Scan() bool {
	for s.err == nil {
		if s.scanner == nil {
			if s.idx >= len(s.paths) {
				return false
			}
			pn := s.paths[s.idx]
			s.idx++
			if err := s.open(pn); err != nil {
				s.err = err
				return false
			}
		}
		if s.scanner.Scan() {
			s.nline++
			return true
		}
		if err := s.scanner.Err(); err != nil {
			s.err = fmt.Errorf("%v: %w", s.paths[s.idx-1], err)
		}
		if err := s.closeCur(); err != nil && s.err == nil {
			s.err = err
		}
	}
	return false
}

func (s *Source) Text() string {
	return s.scanner.Text()
}

func (s *Source) Err() error {
	return s.err
}

// Nline returns the number of lines read so far across all files.
func (s *Source) Nline() int {
	return s.nline
}

func (s *Source) Close() error {
	return s.closeCur()
}
