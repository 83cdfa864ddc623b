package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// requestForm flattens a JSON, urlencoded or multipart body into one
// key/value view so handlers can feed fields straight into the list
// normalizers without caring how the client encoded them.
type requestForm struct {
	values map[string]interface{}
}

func parseForm(c *gin.Context) requestForm {
	values := map[string]interface{}{}

	if strings.HasPrefix(c.ContentType(), "application/json") {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err == nil && body != nil {
			values = body
		}
		return requestForm{values: values}
	}

	// ParseMultipartForm falls back to ParseForm for urlencoded bodies,
	// so PostForm covers both encodings afterwards.
	_ = c.Request.ParseMultipartForm(maxUploadBytes)
	for key, vals := range c.Request.PostForm {
		switch len(vals) {
		case 0:
		case 1:
			values[key] = vals[0]
		default:
			values[key] = vals
		}
	}
	return requestForm{values: values}
}

// value returns the raw field or nil when the client omitted it.
func (f requestForm) value(key string) interface{} {
	return f.values[key]
}

func (f requestForm) str(key string) string {
	if s, ok := f.values[key].(string); ok {
		return s
	}
	return ""
}

// strPtr distinguishes an omitted field from an explicit empty string.
func (f requestForm) strPtr(key string) *string {
	raw, ok := f.values[key]
	if !ok {
		return nil
	}
	if s, ok := raw.(string); ok {
		return &s
	}
	return nil
}
