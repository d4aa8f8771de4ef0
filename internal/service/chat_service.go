package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"adaptive-coach-be/internal/constant"
	"adaptive-coach-be/internal/dto"
	"adaptive-coach-be/internal/entity"
	"adaptive-coach-be/internal/pkg/logger"
	repoMemory "adaptive-coach-be/internal/repository/memory"
	"adaptive-coach-be/internal/repository/specification"
	"adaptive-coach-be/internal/repository/unitofwork"
	"adaptive-coach-be/pkg/events"
	pkgMemory "adaptive-coach-be/pkg/memory"
	pktNats "adaptive-coach-be/pkg/nats"
	"adaptive-coach-be/pkg/retrieval"
	"adaptive-coach-be/pkg/store"
	"adaptive-coach-be/pkg/textinput"
	"adaptive-coach-be/pkg/workflow"

	"github.com/google/uuid"
)

// sessionTitleMaxLen caps auto-derived session titles.
const sessionTitleMaxLen = 50

// titleFromQuery derives a session title from the first message, cut on a
// rune boundary so multibyte queries never yield invalid UTF-8.
func titleFromQuery(query string) string {
	if len(query) <= sessionTitleMaxLen {
		return query
	}
	cut := sessionTitleMaxLen
	for cut > 0 && !utf8.RuneStart(query[cut]) {
		cut--
	}
	return query[:cut]
}

var ErrSessionNotFound = errors.New("chat session not found")

type IChatService interface {
	CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID) ([]dto.SessionResponse, error)
	ListMessages(ctx context.Context, userId, sessionId uuid.UUID) ([]dto.MessageResponse, error)
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	ClearSession(ctx context.Context, userId, sessionId uuid.UUID) (*dto.ClearSessionResponse, error)
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	working        *repoMemory.WorkingRepository
	retriever      *pkgMemory.Retriever
	searcher       *retrieval.Searcher
	engine         *workflow.Engine
	processor      *textinput.Processor
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	working *repoMemory.WorkingRepository,
	retriever *pkgMemory.Retriever,
	searcher *retrieval.Searcher,
	engine *workflow.Engine,
	processor *textinput.Processor,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		working:        working,
		retriever:      retriever,
		searcher:       searcher,
		engine:         engine,
		processor:      processor,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *chatService) CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     req.Title,
		CreatedAt: time.Now(),
	}
	if session.Title == "" {
		session.Title = "New conversation"
	}

	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}
	return &dto.CreateSessionResponse{Id: session.Id}, nil
}

func (s *chatService) ListSessions(ctx context.Context, userId uuid.UUID) ([]dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		resp = append(resp, dto.SessionResponse{
			Id:        session.Id,
			Title:     session.Title,
			CreatedAt: session.CreatedAt,
		})
	}
	return resp, nil
}

func (s *chatService) ListMessages(ctx context.Context, userId, sessionId uuid.UUID) ([]dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.verifySession(ctx, uow, userId, sessionId); err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		resp = append(resp, dto.MessageResponse{
			Id:        msg.Id,
			Role:      msg.Role,
			Content:   msg.Content,
			ModelTier: msg.ModelTier,
			CreatedAt: msg.CreatedAt,
		})
	}
	return resp, nil
}

// SendMessage runs one query through the coaching pipeline: clean and
// pre-screen the text, gather memory and knowledge context, execute the
// workflow, persist both turns.
func (s *chatService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	if s.processor.IsEmptyOrWhitespace(req.Message) {
		return nil, errors.New("message is empty")
	}

	processed := s.processor.Process(req.Message)
	query := processed.Cleaned

	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessionId, err := s.resolveSession(ctx, uow, userId, req.SessionId, query)
	if err != nil {
		return nil, err
	}

	// Input pre-screen fires before any model or memory work.
	if !processed.IsSafe {
		if err := s.persistTurn(ctx, uow, sessionId, query, processed.SafetyMessage, ""); err != nil {
			return nil, err
		}
		return &dto.SendMessageResponse{
			SessionId: sessionId,
			Response:  processed.SafetyMessage,
			Agents:    []string{},
		}, nil
	}

	// A user without a profile gets onboarded before any coaching happens.
	profile, err := uow.ProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		if err := s.persistTurn(ctx, uow, sessionId, query, constant.OnboardingResponse, ""); err != nil {
			return nil, err
		}
		s.appendWorkingTurns(ctx, userId, sessionId, query, constant.OnboardingResponse)
		return &dto.SendMessageResponse{
			SessionId: sessionId,
			Response:  constant.OnboardingResponse,
			Agents:    []string{},
		}, nil
	}

	state := store.NewWorkflowState(userId, sessionId, query)
	state.ApplyMemoryContext(s.retriever.Retrieve(ctx, userId, sessionId, query))

	docs, err := s.searcher.Search(ctx, query)
	if err != nil {
		// Knowledge retrieval is best-effort; the responders still have the
		// memory tiers.
		s.log.Warn("chat", "knowledge search failed", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		state.RetrievedDocs = docs
		if len(docs) > 0 {
			if err := s.working.SetPendingContext(ctx, userId, sessionId, map[string]interface{}{
				"retrieved_docs": docs,
			}); err != nil {
				s.log.Warn("chat", "failed to stash retrieved docs in working memory", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}

	response, err := s.engine.Run(ctx, state)
	if err != nil {
		return nil, err
	}

	if err := s.persistTurn(ctx, uow, sessionId, query, response, string(state.ModelTier)); err != nil {
		return nil, err
	}
	s.appendWorkingTurns(ctx, userId, sessionId, query, response)

	if state.CurrentAgent != "" {
		if err := s.working.SetActiveAgent(ctx, userId, sessionId, state.CurrentAgent); err != nil {
			s.log.Warn("chat", "failed to record active agent", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "CHAT_COMPLETED",
			Data: map[string]interface{}{
				"user_id":    userId,
				"session_id": sessionId,
				"agents":     state.SelectedAgents,
				"model_tier": string(state.ModelTier),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish CHAT_COMPLETED event: %v\n", err)
		}
	}

	return &dto.SendMessageResponse{
		SessionId: sessionId,
		Response:  response,
		ModelTier: string(state.ModelTier),
		Agents:    state.SelectedAgents,
	}, nil
}

func (s *chatService) ClearSession(ctx context.Context, userId, sessionId uuid.UUID) (*dto.ClearSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.verifySession(ctx, uow, userId, sessionId); err != nil {
		return nil, err
	}

	cleared, err := s.working.Clear(ctx, userId, sessionId)
	if err != nil {
		return nil, err
	}
	return &dto.ClearSessionResponse{Cleared: cleared}, nil
}

func (s *chatService) verifySession(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// resolveSession verifies an existing session or creates one titled after
// the first message.
func (s *chatService) resolveSession(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID, query string) (uuid.UUID, error) {
	if sessionId != uuid.Nil {
		session, err := s.verifySession(ctx, uow, userId, sessionId)
		if err != nil {
			return uuid.Nil, err
		}
		return session.Id, nil
	}

	title := titleFromQuery(query)
	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     title,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return uuid.Nil, err
	}
	return session.Id, nil
}

// persistTurn writes the user and assistant messages atomically.
func (s *chatService) persistTurn(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID, query, response, modelTier string) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	userMsg := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sessionId,
		Role:          constant.ChatMessageRoleUser,
		Content:       query,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMsg); err != nil {
		return err
	}

	assistantMsg := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sessionId,
		Role:          constant.ChatMessageRoleAssistant,
		Content:       response,
		ModelTier:     modelTier,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, assistantMsg); err != nil {
		return err
	}

	return uow.Commit()
}

// appendWorkingTurns mirrors the exchange into working memory and refreshes
// the session TTL. Working memory is best-effort.
func (s *chatService) appendWorkingTurns(ctx context.Context, userId, sessionId uuid.UUID, query, response string) {
	if err := s.working.AppendTurn(ctx, userId, sessionId, constant.ChatMessageRoleUser, query); err != nil {
		s.log.Warn("chat", "failed to append user turn to working memory", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if err := s.working.AppendTurn(ctx, userId, sessionId, constant.ChatMessageRoleAssistant, response); err != nil {
		s.log.Warn("chat", "failed to append assistant turn to working memory", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if _, err := s.working.ExtendTTL(ctx, userId, sessionId); err != nil {
		s.log.Warn("chat", "failed to extend working memory TTL", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
