package domain

import (
	"errors"
	"strconv"
)

// Book statuses.
const (
	BookStatusReading    = "Reading"
	BookStatusCompleted  = "Completed"
	BookStatusWantToRead = "Want to Read"
	BookStatusAbandoned  = "Abandoned"
)

// BookStatuses is the fixed enumeration of book statuses.
var BookStatuses = []string{
	BookStatusReading,
	BookStatusCompleted,
	BookStatusWantToRead,
	BookStatusAbandoned,
}

// BookColors is the fixed palette assigned to books at creation, cycling by
// insertion index.
var BookColors = []string{"#c9a96e", "#4ade80", "#60a5fa", "#f472b6", "#fb923c", "#a78bfa"}

// Reading-specific validation errors
var (
	// ErrBookTitleEmpty is returned when a book has no title.
	ErrBookTitleEmpty = errors.New("book title cannot be empty")

	// ErrBookStatusUnknown is returned when a book status is not in the fixed enumeration.
	ErrBookStatusUnknown = errors.New("book status is not a known status")

	// ErrBookRatingRange is returned when a rating is not an integer from 0 to 5.
	ErrBookRatingRange = errors.New("book rating must be an integer from 0 to 5")
)

// Book is one library entry. Page counts and rating are kept as the strings
// the user entered.
type Book struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Status      string `json:"status"`
	Pages       string `json:"pages"`
	CurrentPage string `json:"currentPage"`
	Rating      string `json:"rating"`
	Genre       string `json:"genre"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Color       string `json:"color"`
}

// NewBook creates a book with a creation-time ID and a spine color picked
// from the fixed palette by the current shelf size. An empty status defaults
// to Reading; an empty rating defaults to 0.
func NewBook(title, author, status, pages, currentPage, rating, genre, startDate, endDate string, shelfSize int) (*Book, error) {
	if title == "" {
		return nil, ErrBookTitleEmpty
	}
	if status == "" {
		status = BookStatusReading
	}
	if !oneOf(BookStatuses, status) {
		return nil, ErrBookStatusUnknown
	}
	if rating == "" {
		rating = "0"
	}
	if r, err := strconv.Atoi(rating); err != nil || r < 0 || r > 5 {
		return nil, ErrBookRatingRange
	}
	if startDate == "" {
		startDate = Today()
	}
	return &Book{
		ID:          NewEntryID(),
		Title:       title,
		Author:      author,
		Status:      status,
		Pages:       pages,
		CurrentPage: currentPage,
		Rating:      rating,
		Genre:       genre,
		StartDate:   startDate,
		EndDate:     endDate,
		Color:       BookColors[shelfSize%len(BookColors)],
	}, nil
}

// Reading is the reading domain record: the book sequence, newest first.
type Reading struct {
	Books []Book `json:"books"`
}

// DefaultReading returns the initial reading record for a user with no data.
func DefaultReading() Reading {
	return Reading{Books: []Book{}}
}

// Clone returns a deep copy so callers can mutate the result freely.
func (r Reading) Clone() Reading {
	out := r
	out.Books = make([]Book, len(r.Books))
	copy(out.Books, r.Books)
	return out
}
