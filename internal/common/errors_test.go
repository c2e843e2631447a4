package common

import (
	"errors"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCErrorHelpers(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{"invalid argument", InvalidArgumentError("name is required"), codes.InvalidArgument, "name is required"},
		{"invalid argument formatted", InvalidArgumentErrorf("unknown required type %q", "PARKING"), codes.InvalidArgument, `unknown required type "PARKING"`},
		{"not found", NotFoundError("faculty not found"), codes.NotFound, "faculty not found"},
		{"internal", InternalError("export failed"), codes.Internal, "export failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, ok := status.FromError(tc.err)
			if !ok {
				t.Fatalf("not a status error: %v", tc.err)
			}
			if st.Code() != tc.code {
				t.Errorf("code = %s, want %s", st.Code(), tc.code)
			}
			if st.Message() != tc.msg {
				t.Errorf("message = %q, want %q", st.Message(), tc.msg)
			}
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("AppError does not unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "CONFIG_ERROR") {
		t.Errorf("Error() = %q, missing code", err.Error())
	}
}
