package contract

import (
	"context"

	"adaptive-coach-be/internal/entity"

	"github.com/google/uuid"
)

// ScoredChunk wraps a knowledge chunk with its cosine similarity (1.0 = identical).
type ScoredChunk struct {
	Chunk      *entity.KnowledgeChunk
	Similarity float64
}

type KnowledgeRepository interface {
	CreateDocument(ctx context.Context, doc *entity.KnowledgeDocument) error
	CreateChunks(ctx context.Context, chunks []*entity.KnowledgeChunk) error
	DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error
	FindDocument(ctx context.Context, id uuid.UUID) (*entity.KnowledgeDocument, error)
	// SearchSimilar returns the top chunks above the similarity threshold,
	// best match first.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredChunk, error)
}
