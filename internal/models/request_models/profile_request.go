package request_models

type CompleteProfileRequest struct {
	Age    int    `json:"age" binding:"required,gt=0"`
	Gender string `json:"gender" binding:"required,oneof=Male Female Other"`
	Phone  string `json:"phone" binding:"required"`
	PlanID string `json:"plan_id" binding:"required,uuid4"`
}

type UpdatePlanRequest struct {
	PlanID string `json:"plan_id" binding:"required,uuid4"`
}
