package dto

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the bearer token issued on registration or login
type TokenResponse struct {
	Token string `json:"token"`
}

// AdviseeResponse is one row of a faculty user's advisee listing
type AdviseeResponse struct {
	StudentName  string `json:"studentName"`
	StudentEmail string `json:"studentEmail"`
	StudentID    string `json:"studentId"`
}
