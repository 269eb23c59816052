package search

import "github.com/google/uuid"

// Document is one searchable corpus entry: an identifier, a display name,
// and the raw text the query runs against.
type Document struct {
	ID   uuid.UUID
	Name string
	Text string
}

// Hit identifies one document that matched a query.
type Hit struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Run compiles the query once and evaluates it independently against every
// document, returning the hits in corpus order. No index is built; each
// query is a fresh full scan, which is fine at personal-corpus scale.
func Run(query string, docs []Document) []Hit {
	compiled := Compile(query)

	hits := make([]Hit, 0)
	for _, doc := range docs {
		if compiled.Matches(doc.Text) {
			hits = append(hits, Hit{ID: doc.ID, Name: doc.Name})
		}
	}
	return hits
}
