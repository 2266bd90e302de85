package analytics

import (
	"strings"

	"github.com/phrazzld/lifetrack-api/internal/domain"
)

// ReadingStats summarizes a book shelf.
type ReadingStats struct {
	Total     int
	Completed int
	Reading   int
	// PagesRead counts the pages of completed books that have a page
	// count; in-progress books do not contribute.
	PagesRead int
}

// ShelfStats computes the reading overview numbers.
func ShelfStats(books []domain.Book) ReadingStats {
	var s ReadingStats
	s.Total = len(books)
	for _, b := range books {
		switch b.Status {
		case domain.BookStatusCompleted:
			s.Completed++
			if strings.TrimSpace(b.Pages) != "" {
				s.PagesRead += int(number(b.Pages))
			}
		case domain.BookStatusReading:
			s.Reading++
		}
	}
	return s
}

// BookProgress reports how far through a book the reader is, as a
// percentage. The second return is false when the book has no usable page
// count, in which case progress is undefined rather than zero.
func BookProgress(b domain.Book) (float64, bool) {
	pages := number(b.Pages)
	if pages <= 0 || strings.TrimSpace(b.CurrentPage) == "" {
		return 0, false
	}
	return number(b.CurrentPage) / pages * 100, true
}
