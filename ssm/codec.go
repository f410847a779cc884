package ssm

import (
	"fmt"
	"time"

	smithytime "github.com/aws/smithy-go/time"
	json "github.com/goccy/go-json"
)

// Marshal encodes a shape as an AWS JSON 1.1 body. Unset members are omitted
// and timestamps are written as epoch seconds.
func Marshal(v Shape) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", v, err)
	}
	return b, nil
}

// Unmarshal decodes an AWS JSON 1.1 body into v. Members unknown to the shape
// are ignored.
func Unmarshal(data []byte, v Shape) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %T: %w", v, err)
	}
	return nil
}

// epochTime is a timestamp in the JSON 1.1 default format: fractional epoch
// seconds with millisecond precision.
type epochTime time.Time

func toEpoch(t *time.Time) *epochTime {
	if t == nil {
		return nil
	}
	e := epochTime(*t)
	return &e
}

func (e *epochTime) asTime() *time.Time {
	if e == nil {
		return nil
	}
	t := time.Time(*e)
	return &t
}

func (e epochTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(smithytime.FormatEpochSeconds(time.Time(e)))
}

func (e *epochTime) UnmarshalJSON(b []byte) error {
	var seconds float64
	if err := json.Unmarshal(b, &seconds); err != nil {
		return fmt.Errorf("timestamp is not epoch seconds: %w", err)
	}
	*e = epochTime(smithytime.ParseEpochSeconds(seconds))
	return nil
}
