package lookup

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "body message wins",
			err:  &Error{Body: &ErrorBody{Message: "X"}, Message: "ignored"},
			want: "X",
		},
		{
			name: "plain error",
			err:  errors.New("Y"),
			want: "Y",
		},
		{
			name: "top level message when body empty",
			err:  &Error{Body: &ErrorBody{}, Message: "Bad Gateway"},
			want: "Bad Gateway",
		},
		{
			name: "no message at all",
			err:  &Error{},
			want: FallbackMessage,
		},
		{
			name: "empty plain error",
			err:  errors.New(""),
			want: FallbackMessage,
		},
		{
			name: "wrapped lookup error keeps body",
			err:  fmt.Errorf("searching: %w", &Error{Body: &ErrorBody{Message: "Not Found"}}),
			want: "Not Found",
		},
		{
			name: "transport cause does not leak when message unset",
			err:  &Error{Err: errors.New("dial tcp: refused")},
			want: FallbackMessage,
		},
		{
			name: "wrapper text used when wrapped error has no body",
			err:  fmt.Errorf("cache layer: %w", &Error{Status: 599}),
			want: "cache layer: lookup failed",
		},
		{
			name: "wrapper text used over wrapped top level message",
			err:  fmt.Errorf("searching: %w", &Error{Status: 502, Message: "Bad Gateway"}),
			want: "searching: Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Message(tt.err))
		})
	}
}

func TestMessage_Nil(t *testing.T) {
	require.Equal(t, "", Message(nil))
}

func TestError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := &Error{Err: cause}

	require.Equal(t, "dial tcp: refused", err.Error())
	require.ErrorIs(t, err, cause)
	require.Equal(t, "lookup failed", (&Error{}).Error())
	require.Equal(t, "X", (&Error{Body: &ErrorBody{Message: "X"}}).Error())
}
