package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nurpe/contract-manager/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Role         string `json:"role"`
	ContractorID string `json:"contractor_id,omitempty"`
	jwt.RegisteredClaims
}

type Parser struct {
	secret []byte
}

func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

func (p *Parser) Parse(token string) (model.Principal, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return model.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Principal{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	principal := model.Principal{
		UserID: userID,
		Role:   model.UserRole(strings.ToUpper(strings.TrimSpace(claims.Role))),
	}
	switch principal.Role {
	case model.UserRoleAdmin:
	case model.UserRoleContractor:
		contractorID, err := uuid.Parse(claims.ContractorID)
		if err != nil {
			return model.Principal{}, fmt.Errorf("%w: contractor token without contractor_id", ErrInvalidToken)
		}
		principal.ContractorID = &contractorID
	default:
		return model.Principal{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	return principal, nil
}
