package models

// The library records below are related to User only through identifiers.
// userstore creates their tables but performs no operations on them.

// Author writes books; the author_books table holds the many-to-many link.
type Author struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Nationality string  `db:"nationality" json:"nationality"`
	BookIDs     []int64 `db:"-" json:"book_ids,omitempty"`
}

type Book struct {
	ID          int64   `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Genre       string  `db:"genre" json:"genre"`
	PublishedOn Date    `db:"published_on" json:"published_on"`
	AuthorIDs   []int64 `db:"-" json:"author_ids,omitempty"`
	LoanIDs     []int64 `db:"-" json:"loan_ids,omitempty"`
}

// Loan lends one book to one user. ReturnedOn is nil while the book is out.
type Loan struct {
	ID         int64 `db:"id" json:"id"`
	LoanedOn   Date  `db:"loaned_on" json:"loaned_on"`
	ReturnedOn *Date `db:"returned_on" json:"returned_on,omitempty"`
	UserID     int64 `db:"user_id" json:"user_id"`
	BookID     int64 `db:"book_id" json:"book_id"`
}
