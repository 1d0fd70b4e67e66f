package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length         int    `json:"length"`
	Lowercase      *bool  `json:"lowercase"`
	Uppercase      *bool  `json:"uppercase"`
	Digits         *bool  `json:"digits"`
	Symbols        *bool  `json:"symbols"`
	ExcludeSimilar *bool  `json:"exclude_similar"`
	Custom         string `json:"custom"`
}

// BatchRequest represents a batch generation request.
type BatchRequest struct {
	GenerateRequest
	Count int `json:"count"`
}

// GenerateResponse represents a single generated password with its strength.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	StrengthResponse
}

// BatchResponse represents a generated batch, in generation order.
type BatchResponse struct {
	Passwords []string `json:"passwords"`
	Count     int      `json:"count"`
}

// StrengthRequest asks for the score of an arbitrary password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse carries a 0-100 score and its display band.
type StrengthResponse struct {
	Score int    `json:"score"`
	Band  string `json:"band"`
	Color string `json:"color"`
}
