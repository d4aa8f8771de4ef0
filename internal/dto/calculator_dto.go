package dto

type MacroTargetsRequest struct {
	WeightKg      float64 `json:"weight_kg" validate:"required,gt=0"`
	HeightCm      float64 `json:"height_cm" validate:"required,gt=0"`
	Age           int     `json:"age" validate:"required,gt=0,lte=120"`
	Gender        string  `json:"gender" validate:"required,oneof=male female"`
	ActivityLevel string  `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
	Goal          string  `json:"goal" validate:"omitempty,oneof=lose_fat maintain build_muscle"`
}

type MacroTargetsResponse struct {
	Bmr  float64 `json:"bmr"`
	Tdee float64 `json:"tdee"`

	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
	FiberG   int `json:"fiber_g"`
	WaterMl  int `json:"water_ml"`

	ProteinPct float64 `json:"protein_pct"`
	CarbsPct   float64 `json:"carbs_pct"`
	FatPct     float64 `json:"fat_pct"`
}
