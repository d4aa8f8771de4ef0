package controller

import (
	"adaptive-coach-be/internal/dto"
	"adaptive-coach-be/internal/pkg/serverutils"
	"adaptive-coach-be/pkg/calculator"

	"github.com/gofiber/fiber/v2"
)

// ICalculatorController exposes the nutrition math directly: unlike the
// profile macros endpoint it computes from the request body, so clients can
// run what-if numbers without touching the stored profile.
type ICalculatorController interface {
	RegisterRoutes(r fiber.Router)
	MacroTargets(ctx *fiber.Ctx) error
}

type calculatorController struct{}

func NewCalculatorController() ICalculatorController {
	return &calculatorController{}
}

func (c *calculatorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tools/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("macros", c.MacroTargets)
}

func (c *calculatorController) MacroTargets(ctx *fiber.Ctx) error {
	var req dto.MacroTargetsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	isMale := req.Gender != "female"

	activity := calculator.ActivityLevel(req.ActivityLevel)
	if req.ActivityLevel == "" {
		activity = calculator.ActivityModerate
	}
	goal := calculator.Goal(req.Goal)
	if req.Goal == "" {
		goal = calculator.GoalMaintain
	}

	bmr, err := calculator.BMR(req.WeightKg, req.HeightCm, req.Age, isMale)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	tdee, err := calculator.TDEE(req.WeightKg, req.HeightCm, req.Age, isMale, activity)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	macros, err := calculator.Macros(req.WeightKg, req.HeightCm, req.Age, isMale, activity, goal)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	proteinPct, carbsPct, fatPct := calculator.MacroPercentages(macros)

	res := dto.MacroTargetsResponse{
		Bmr:        bmr,
		Tdee:       tdee,
		Calories:   macros.Calories,
		ProteinG:   macros.ProteinG,
		CarbsG:     macros.CarbsG,
		FatG:       macros.FatG,
		FiberG:     macros.FiberG,
		WaterMl:    macros.WaterMl,
		ProteinPct: proteinPct,
		CarbsPct:   carbsPct,
		FatPct:     fatPct,
	}

	return ctx.JSON(serverutils.SuccessResponse("Success calculate macro targets", res))
}
