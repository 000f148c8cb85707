// api/dao/dao.go
package dao

import (
	"context"
	"time"
)

// requestingUserID pulls the authenticated user's id out of the request
// context for the audit trail. Empty when the route is unauthenticated.
func requestingUserID(ctx context.Context) string {
	if v, ok := ctx.Value("requestingUserID").(string); ok {
		return v
	}
	return ""
}

func stringProp(props map[string]interface{}, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

func timeProp(props map[string]interface{}, key string) time.Time {
	v, ok := props[key].(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

func stringSliceProp(props map[string]interface{}, key string) []string {
	raw, ok := props[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
