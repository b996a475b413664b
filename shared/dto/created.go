package dto

// CreatedResponse carries the id the server assigned to a new resource.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
