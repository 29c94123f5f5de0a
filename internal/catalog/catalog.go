// Package catalog loads the lecture table from a CSV file into an
// immutable, process-wide snapshot.
package catalog

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"timetable-optimizer/internal/timeparse"
)

// Lecture is an immutable course-section record.
type Lecture struct {
	ID         string
	Number     string
	ClassNum   string
	Name       string
	Credit     float64
	TimeRoom   string
	Professor  string
	Category   string
	ParsedTime []timeparse.Interval
}

const (
	colNumber    = "교과목번호"
	colClassNum  = "분반"
	colName      = "교과목명"
	colCredit    = "학점"
	colTimeRoom  = "시간표"
	colProfessor = "교수명"
	colCategory  = "교과목구분"
)

// Store is the read-only view the rest of the system sees after load. The
// catalog is process-wide state once initialized: no mutation methods are
// exposed past construction.
type Store interface {
	Lectures() []Lecture
	ByID(id string) (Lecture, bool)
	Loaded() bool
}

type store struct {
	lectures []Lecture
	byID     map[string]Lecture
}

func (s *store) Lectures() []Lecture {
	out := make([]Lecture, len(s.lectures))
	copy(out, s.lectures)
	return out
}

func (s *store) ByID(id string) (Lecture, bool) {
	lec, ok := s.byID[id]
	return lec, ok
}

func (s *store) Loaded() bool {
	return len(s.lectures) > 0
}

// Empty returns a store reporting no lectures, used when the catalog file
// cannot be read. The system reports an empty catalog rather than crashing.
func Empty() Store {
	return &store{byID: map[string]Lecture{}}
}

// Load reads the catalog CSV at path. Rows with an empty schedule column
// are dropped; duplicate identifiers keep the first occurrence; a missing
// credit value defaults to 0.0. If the file cannot be opened, Load logs the
// condition and returns Empty() rather than an error, matching §4.8: the
// catalog loader must not crash the process on a missing file.
func Load(path string) Store {
	f, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("catalog file unavailable, starting with an empty catalog")
		return Empty()
	}
	defer f.Close()

	s, err := parse(f)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("catalog file could not be parsed, starting with an empty catalog")
		return Empty()
	}
	return s
}

func parse(r io.Reader) (Store, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading catalog header")
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[h] = i
	}

	col := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	s := &store{byID: map[string]Lecture{}}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading catalog row")
		}

		timeRoom := col(row, colTimeRoom)
		if timeRoom == "" {
			continue
		}

		number := col(row, colNumber)
		classNum := col(row, colClassNum)
		id := number + "-" + classNum
		if _, exists := s.byID[id]; exists {
			continue
		}

		credit, err := strconv.ParseFloat(col(row, colCredit), 64)
		if err != nil {
			credit = 0.0
		}

		lec := Lecture{
			ID:         id,
			Number:     number,
			ClassNum:   classNum,
			Name:       col(row, colName),
			Credit:     credit,
			TimeRoom:   timeRoom,
			Professor:  col(row, colProfessor),
			Category:   col(row, colCategory),
			ParsedTime: timeparse.Parse(timeRoom),
		}
		s.byID[id] = lec
		s.lectures = append(s.lectures, lec)
	}

	return s, nil
}
