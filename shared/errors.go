package shared

// ApiError is the single error body shape all endpoints return. Status is
// carried for the transport layer only and never serialized.
type ApiError struct {
	Status int    `json:"-"`
	Msg    string `json:"error"`
}

func (e ApiError) Error() string {
	return e.Msg
}
