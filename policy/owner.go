package policy

import (
	"bytes"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"

	"mealhub-api/apperr"
)

// OwnerFn extracts the owner identity a SelfOwned check compares against
type OwnerFn func(c *gin.Context, e *Evaluator) (string, *apperr.Error)

// OwnerFromBody peeks the owner field out of the JSON body without consuming
// it, so the handler can still bind the request normally.
func OwnerFromBody(field string) OwnerFn {
	return func(c *gin.Context, _ *Evaluator) (string, *apperr.Error) {
		raw, err := c.GetRawData()
		if err != nil {
			return "", apperr.Wrap(apperr.InvalidArgument, "unreadable request body", err)
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		v := gjson.GetBytes(raw, field)
		if !v.Exists() || v.String() == "" {
			return "", apperr.New(apperr.InvalidArgument, "Missing required field: "+field)
		}
		return v.String(), nil
	}
}

// OwnerFromParam reads the owner identity straight from a path parameter
func OwnerFromParam(name string) OwnerFn {
	return func(c *gin.Context, _ *Evaluator) (string, *apperr.Error) {
		v := c.Param(name)
		if v == "" {
			return "", apperr.New(apperr.InvalidArgument, "Missing path parameter: "+name)
		}
		return v, nil
	}
}

// OwnerFromRecord looks up the stored owner column of the record addressed
// by the :id path parameter. The identifier is validated before the store is
// touched.
func OwnerFromRecord(table, ownerColumn string) OwnerFn {
	return func(c *gin.Context, e *Evaluator) (string, *apperr.Error) {
		id, aerr := ParseID(c.Param("id"))
		if aerr != nil {
			return "", aerr
		}
		var owner string
		res := e.db.Table(table).Select(ownerColumn).Where("id = ?", id).Scan(&owner)
		if res.Error != nil {
			return "", apperr.Wrap(apperr.Internal, "owner lookup failed", res.Error)
		}
		if res.RowsAffected == 0 {
			return "", apperr.New(apperr.NotFound, "Record not found")
		}
		return owner, nil
	}
}

// ParseID validates a numeric identifier; malformed input never reaches the
// storage layer.
func ParseID(raw string) (uint, *apperr.Error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.New(apperr.InvalidArgument, "Invalid identifier: "+raw)
	}
	return uint(id), nil
}
