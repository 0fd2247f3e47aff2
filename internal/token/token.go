package token

import (
	"fmt"  // Error formatting
	"time" // Token expiry timestamps

	"finance_tracker/internal/domain" // Domain error kinds

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// Claims is the signed token payload
type Claims struct {
	UserID               uint `json:"user_id"` // Subject user ID
	jwt.RegisteredClaims      // Standard JWT claims
}

// Pair bundles an access token with its refresh token
type Pair struct {
	AccessToken  string `json:"access_token"`  // Short-lived access token
	RefreshToken string `json:"refresh_token"` // Long-lived refresh token
	TokenType    string `json:"token_type"`    // Always "Bearer"
	ExpiresIn    int    `json:"expires_in"`    // Access token lifetime in seconds
}

// Service issues and validates signed tokens. The secret, algorithm and
// access token lifetime are fixed at construction and never read from
// ambient state.
type Service struct {
	secret    []byte            // Symmetric signing secret
	method    jwt.SigningMethod // Configured signing algorithm
	accessTTL time.Duration     // Access token lifetime
}

// NewService builds a token service from the configured secret, algorithm
// name and access token lifetime. Unknown algorithms are rejected up front.
func NewService(secret, algorithm string, accessTTL time.Duration) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: empty signing secret")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("token: unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("token: algorithm %q is not a symmetric method", algorithm)
	}
	return &Service{
		secret:    []byte(secret), // Symmetric signing secret
		method:    method,         // Configured signing algorithm
		accessTTL: accessTTL,      // Access token lifetime
	}, nil
}

// IssueAccess creates a short-lived access token for the given user ID
func (s *Service) IssueAccess(userID uint) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID, // Subject user ID
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)), // Expires after the configured lifetime
			IssuedAt:  jwt.NewNumericDate(now),                  // Issued at current time
		},
	}
	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// IssueRefresh creates a long-lived refresh token for the given user ID.
// No expiry is embedded; validity rests on the signature alone.
func (s *Service) IssueRefresh(userID uint) (string, error) {
	claims := Claims{
		UserID: userID, // Subject user ID
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()), // Issued at current time
		},
	}
	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// IssuePair creates an access/refresh token pair for the given user ID.
// When refresh is non-empty it is reused instead of minting a new one,
// so refreshing an access token keeps the same refresh token.
func (s *Service) IssuePair(userID uint, refresh string) (*Pair, error) {
	access, err := s.IssueAccess(userID)
	if err != nil {
		return nil, err
	}
	if refresh == "" {
		refresh, err = s.IssueRefresh(userID)
		if err != nil {
			return nil, err
		}
	}
	return &Pair{
		AccessToken:  access,                         // Short-lived access token
		RefreshToken: refresh,                        // Long-lived refresh token
		TokenType:    "Bearer",                       // Token type for the Authorization header
		ExpiresIn:    int(s.accessTTL / time.Second), // Access token lifetime in seconds
	}, nil
}

// Decode parses and validates a token string. Signature mismatch, a
// malformed token and an expired token all collapse into ErrTokenInvalid.
func (s *Service) Decode(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{s.method.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
