package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type ErrorDetailResponse struct {
	Error   string `json:"error" example:"failed to process notification"`
	Details string `json:"details,omitempty" example:"booking not found"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
