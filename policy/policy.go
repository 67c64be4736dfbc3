// Package policy implements the authorization checks that gate routes:
// self-ownership, role membership and the fraud-status gate. Checks are
// plain values composed per route by the gate package, replacing the
// per-handler checks this kind of API tends to accumulate.
package policy

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mealhub-api/apperr"
	"mealhub-api/identity"
	"mealhub-api/models"
)

const userRecordKey = "policy.userRecord"

// Check decides whether the principal may proceed. A nil return allows the
// request; a non-nil error is terminal for the request.
type Check func(c *gin.Context, p identity.Principal, e *Evaluator) *apperr.Error

// Evaluator owns the store handle the checks need for record lookups
type Evaluator struct {
	db *gorm.DB
}

func NewEvaluator(db *gorm.DB) *Evaluator {
	return &Evaluator{db: db}
}

// lookupUser fetches the principal's user record, caching it on the request
// context so role and status checks on the same route share one query.
func (e *Evaluator) lookupUser(c *gin.Context, p identity.Principal) (*models.User, *apperr.Error) {
	if v, ok := c.Get(userRecordKey); ok {
		return v.(*models.User), nil
	}
	var user models.User
	err := e.db.Where("email = ?", string(p)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "No profile found for this account")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "user lookup failed", err)
	}
	c.Set(userRecordKey, &user)
	return &user, nil
}

// SelfOwned requires the resource's owner field to equal the principal.
// The authoritative owner is always the resolved principal, never client
// input: a mismatch is forbidden even on creation paths.
func SelfOwned(owner OwnerFn) Check {
	return func(c *gin.Context, p identity.Principal, e *Evaluator) *apperr.Error {
		got, err := owner(c, e)
		if err != nil {
			return err
		}
		if got != string(p) {
			return apperr.New(apperr.Forbidden, "This resource does not belong to you")
		}
		return nil
	}
}

// RequireRole asserts the principal's stored role is one of the allowed
// roles. An authenticated principal without a profile is not_found, which is
// deliberately distinct from forbidden.
func RequireRole(roles ...models.UserRole) Check {
	return func(c *gin.Context, p identity.Principal, e *Evaluator) *apperr.Error {
		user, err := e.lookupUser(c, p)
		if err != nil {
			return err
		}
		for _, r := range roles {
			if user.Role == r {
				return nil
			}
		}
		return apperr.New(apperr.Forbidden, "Access denied. Required role(s): "+rolesString(roles))
	}
}

// FraudGate blocks fraud-flagged accounts whose role is in the gated set.
// Roles outside the set (admins in particular) are exempt from the flag.
func FraudGate(roles ...models.UserRole) Check {
	return func(c *gin.Context, p identity.Principal, e *Evaluator) *apperr.Error {
		user, err := e.lookupUser(c, p)
		if err != nil {
			return err
		}
		if user.Status != models.StatusFraud {
			return nil
		}
		for _, r := range roles {
			if user.Role == r {
				return apperr.New(apperr.Forbidden, "Account is flagged and cannot perform this action")
			}
		}
		return nil
	}
}

func rolesString(roles []models.UserRole) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(r)
	}
	return s
}
