package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Role is a closed set. The reference data stores plain strings, so the
// underlying type stays string for compatibility with existing documents.
type Role string

const (
	RoleFarmer Role = "farmer"
	RoleBuyer  Role = "buyer"
)

// ParseRole validates an incoming role string. An empty role defaults to
// "buyer", matching the signup behavior clients already rely on.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleFarmer, RoleBuyer:
		return Role(s), nil
	case "":
		return RoleBuyer, nil
	}
	return "", errors.New("invalid role")
}

// User is the document model for the 'users' collection.
// The bson field names match the existing stored data, do not rename them.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	CreatedAt    string             `bson:"createdAt" json:"createdAt"`
}

// Password Helper (Standard)
type Password struct {
	Plaintext *string
	Hash      string
}

// BcryptCost is fixed at 10 rounds; existing hashes were generated with it.
const BcryptCost = 10

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), BcryptCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
