package request_models

// UpdateMemberRequest is the admin back-office edit of a member: signup
// fields (name/email) and profile fields together, applied atomically.
type UpdateMemberRequest struct {
	Name   string `json:"name" binding:"required,min=2,max=50"`
	Email  string `json:"email" binding:"required,email"`
	Age    int    `json:"age" binding:"required,gt=0"`
	Gender string `json:"gender" binding:"required,oneof=Male Female Other"`
	Phone  string `json:"phone" binding:"required"`
	PlanID string `json:"plan_id" binding:"required,uuid4"`
}
