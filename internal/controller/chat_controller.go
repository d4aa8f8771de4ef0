package controller

import (
	"adaptive-coach-be/internal/dto"
	"adaptive-coach-be/internal/pkg/serverutils"
	"adaptive-coach-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	ListMessages(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	ClearSession(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("session", c.CreateSession)
	h.Get("sessions", c.ListSessions)
	h.Get("session/:id/messages", c.ListMessages)
	h.Post("session/:id/message", c.SendMessage)
	h.Post("message", c.SendMessage)
	h.Delete("session/:id/memory", c.ClearSession)
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.chatService.CreateSession(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create chat session", res))
}

func (c *chatController) ListSessions(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.chatService.ListSessions(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list chat sessions", res))
}

func (c *chatController) ListMessages(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	sessionId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.chatService.ListMessages(ctx.Context(), userId, sessionId)
	if err != nil {
		if err == service.ErrSessionNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Chat session not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list chat messages", res))
}

// SendMessage serves both routes: with a session id in the path it continues
// that session, without one it starts a new session titled after the message.
func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if idParam := ctx.Params("id"); idParam != "" {
		sessionId, err := uuid.Parse(idParam)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
		}
		req.SessionId = sessionId
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.Context(), userId, &req)
	if err != nil {
		if err == service.ErrSessionNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Chat session not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *chatController) ClearSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	sessionId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.chatService.ClearSession(ctx.Context(), userId, sessionId)
	if err != nil {
		if err == service.ErrSessionNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Chat session not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success clear session memory", res))
}
