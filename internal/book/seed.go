package book

import "bookshelf/internal/entity"

// SeedData returns example books to pre-populate a shelf. IDs are assigned
// on insert.
func SeedData() []entity.Book {
	return []entity.Book{
		{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", Category: entity.CategoryFiction},
		{Title: "A Brief History of Time", Author: "Stephen Hawking", Category: entity.CategoryScience},
		{Title: "The Guns of August", Author: "Barbara W. Tuchman", Category: entity.CategoryHistory},
		{Title: "The Go Programming Language", Author: "Alan A. A. Donovan", Category: entity.CategoryTechnology},
		{Title: "Watchmen", Author: "Alan Moore", Category: entity.CategoryComics},
	}
}
