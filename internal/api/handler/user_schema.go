package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createUserRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
}

// userResponse is the projection returned by both the create and list
// endpoints: the username plus the storage-generated id.
type userResponse struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}
