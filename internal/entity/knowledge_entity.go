package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeDocument is a source document in the coaching knowledge base.
type KnowledgeDocument struct {
	Id        uuid.UUID
	Title     string
	Source    string
	Category  string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// KnowledgeChunk is one embedded slice of a document, searchable by vector
// similarity.
type KnowledgeChunk struct {
	Id         uuid.UUID
	DocumentId uuid.UUID
	ChunkIndex int
	Content    string
	Embedding  []float32
	CreatedAt  time.Time
}
