package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User is the identity record stored in the users collection. Email and
// student ID are globally unique (backed by unique indexes). The password
// hash and recovery fields never serialize to JSON.
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	Password          string             `bson:"password" json:"-"`
	StudentID         string             `bson:"student_id" json:"studentId"`
	Role              string             `bson:"role" json:"role"`
	Department        string             `bson:"department" json:"department"`
	Year              string             `bson:"year" json:"year"`
	ResetToken        string             `bson:"reset_token,omitempty" json:"-"`
	ResetTokenExpires time.Time          `bson:"reset_token_expires,omitempty" json:"-"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Summary returns the public view of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		StudentID: u.StudentID,
		Role:      u.Role,
	}
}

type UserSummary struct {
	ID        primitive.ObjectID `json:"_id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	StudentID string             `json:"studentId"`
	Role      string             `json:"role"`
}

// AuthResponse is returned by register and login: the public summary plus
// a freshly issued bearer token.
type AuthResponse struct {
	UserSummary
	Token string `json:"token"`
}

type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	StudentID  string `json:"studentId"`
	Department string `json:"department"`
	Year       string `json:"year"`
}

type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email     string `json:"email"`
	StudentID string `json:"studentId"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}
