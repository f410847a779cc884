package ssm

import (
	"reflect"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
)

// FillIdempotencyTokens sets every nil member tagged idempotencyToken:"true" to a
// random UUID. Members that are already set are left alone so that a retried
// request keeps its token.
func FillIdempotencyTokens(s Shape) {
	rv := reflect.ValueOf(s)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return
	}
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Tag.Get("idempotencyToken") != "true" || f.Type != reflect.TypeOf((*string)(nil)) {
			continue
		}
		if fv := rv.Field(i); fv.IsNil() {
			fv.Set(reflect.ValueOf(aws.String(uuid.NewString())))
		}
	}
}
