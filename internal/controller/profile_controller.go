package controller

import (
	"context"

	"adaptive-coach-be/internal/dto"
	"adaptive-coach-be/internal/pkg/serverutils"
	"adaptive-coach-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	Upsert(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	AddInjury(ctx *fiber.Ctx) error
	RemoveInjury(ctx *fiber.Ctx) error
	AddIntolerance(ctx *fiber.Ctx) error
	MacroTargets(ctx *fiber.Ctx) error
}

type profileController struct {
	profileService service.IProfileService
}

func NewProfileController(profileService service.IProfileService) IProfileController {
	return &profileController{
		profileService: profileService,
	}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profile/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Put("", c.Upsert)
	h.Get("", c.Show)
	h.Delete("", c.Delete)
	h.Post("injury", c.AddInjury)
	h.Delete("injury", c.RemoveInjury)
	h.Post("intolerance", c.AddIntolerance)
	h.Get("macros", c.MacroTargets)
}

func (c *profileController) Upsert(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpsertProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.profileService.Upsert(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save profile", res))
}

func (c *profileController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.profileService.Get(ctx.Context(), userId)
	if err != nil {
		if err == service.ErrProfileNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Profile not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show profile", res))
}

func (c *profileController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	if err := c.profileService.Delete(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete profile", nil))
}

func (c *profileController) AddInjury(ctx *fiber.Ctx) error {
	return c.mutateConstraint(ctx, c.profileService.AddInjury, "Success add injury")
}

func (c *profileController) RemoveInjury(ctx *fiber.Ctx) error {
	return c.mutateConstraint(ctx, c.profileService.RemoveInjury, "Success remove injury")
}

func (c *profileController) AddIntolerance(ctx *fiber.Ctx) error {
	return c.mutateConstraint(ctx, c.profileService.AddIntolerance, "Success add intolerance")
}

func (c *profileController) mutateConstraint(
	ctx *fiber.Ctx,
	apply func(context.Context, uuid.UUID, string) (*dto.ProfileResponse, error),
	successMessage string,
) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.HealthConstraintRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := apply(ctx.Context(), userId, req.Value)
	if err != nil {
		if err == service.ErrProfileNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Profile not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(successMessage, res))
}

func (c *profileController) MacroTargets(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	activityLevel := ctx.Query("activity_level")

	res, err := c.profileService.MacroTargets(ctx.Context(), userId, activityLevel)
	if err != nil {
		if err == service.ErrProfileNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Profile not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success calculate macro targets", res))
}
