package token

import (
	"time"

	"ticketgate/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Action names the single operation a capability token permits.
type Action string

const (
	ActionRetrieveArtifact Action = "retrieve_artifact"
)

// Result is the outcome of verifying a capability token. It is deliberately
// a tagged value rather than a bool: callers must distinguish why a token
// was refused, and must always state which subject and action they expect.
type Result int

const (
	ResultValid Result = iota
	ResultExpired
	ResultMalformed
	ResultSubjectMismatch
	ResultActionMismatch
)

func (r Result) String() string {
	switch r {
	case ResultValid:
		return "valid"
	case ResultExpired:
		return "expired"
	case ResultMalformed:
		return "malformed"
	case ResultSubjectMismatch:
		return "subject mismatch"
	case ResultActionMismatch:
		return "action mismatch"
	default:
		return "unknown"
	}
}

type capabilityClaims struct {
	Action string `json:"act"`
	jwt.RegisteredClaims
}

// CapabilityService mints and verifies short-lived tokens binding one
// subject to one permitted action. Tokens are not persisted anywhere;
// possession of a token with a valid signature is the proof.
type CapabilityService struct {
	secretKey []byte
	clock     clock.Clock
}

func NewCapabilityService(secretKey string, clk clock.Clock) *CapabilityService {
	return &CapabilityService{
		secretKey: []byte(secretKey),
		clock:     clk,
	}
}

func (s *CapabilityService) Issue(subject uuid.UUID, action Action, ttl time.Duration) (string, error) {
	now := s.clock.Now()
	claims := capabilityClaims{
		Action: string(action),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Verify checks signature, expiry, subject and action, in that order.
// Expiry is strict: a token is already expired at the instant now == exp.
// Signature comparison is constant-time inside the HMAC verifier.
func (s *CapabilityService) Verify(tokenString string, expectedSubject uuid.UUID, expectedAction Action) Result {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.ParseWithClaims(tokenString, &capabilityClaims{}, func(_ *jwt.Token) (any, error) {
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return ResultMalformed
	}

	claims, ok := token.Claims.(*capabilityClaims)
	if !ok || claims.ExpiresAt == nil {
		return ResultMalformed
	}

	if !s.clock.Now().Before(claims.ExpiresAt.Time) {
		return ResultExpired
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ResultMalformed
	}
	if subject != expectedSubject {
		return ResultSubjectMismatch
	}
	if Action(claims.Action) != expectedAction {
		return ResultActionMismatch
	}

	return ResultValid
}
