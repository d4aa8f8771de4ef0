// Package retrieval turns a raw query into knowledge-base documents via
// vector similarity search.
package retrieval

import (
	"context"
	"fmt"

	"adaptive-coach-be/internal/repository/contract"
	"adaptive-coach-be/pkg/embedding"
	"adaptive-coach-be/pkg/store"
)

// queryTaskType tells asymmetric embedding models this text is a search
// query, not a document.
const queryTaskType = "RETRIEVAL_QUERY"

// Searcher embeds a query and runs it against the knowledge chunks.
type Searcher struct {
	embedder  embedding.EmbeddingProvider
	knowledge contract.KnowledgeRepository
	topK      int
	threshold float64
}

func NewSearcher(embedder embedding.EmbeddingProvider, knowledge contract.KnowledgeRepository, topK int, threshold float64) *Searcher {
	return &Searcher{
		embedder:  embedder,
		knowledge: knowledge,
		topK:      topK,
		threshold: threshold,
	}
}

// Search returns the most similar knowledge chunks as documents, best match
// first. An empty result is not an error.
func (s *Searcher) Search(ctx context.Context, query string) ([]store.Document, error) {
	resp, err := s.embedder.Generate(query, queryTaskType)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	scored, err := s.knowledge.SearchSimilar(ctx, resp.Embedding.Values, s.topK, s.threshold)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}

	docs := make([]store.Document, 0, len(scored))
	for _, sc := range scored {
		docs = append(docs, store.Document{
			ID:      sc.Chunk.Id.String(),
			Content: sc.Chunk.Content,
			Score:   float32(sc.Similarity),
			Metadata: map[string]interface{}{
				"document_id": sc.Chunk.DocumentId.String(),
				"chunk_index": sc.Chunk.ChunkIndex,
			},
		})
	}
	return docs, nil
}
