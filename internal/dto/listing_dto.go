package dto

type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type UpdatedResponse struct {
	Message       string `json:"message"`
	ModifiedCount int64  `json:"modifiedCount"`
}

type DeletedResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount,omitempty"`
}
