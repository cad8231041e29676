package storage

import (
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
)

func TestIsConditionalConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "条件写入前置条件失败",
			err:  &smithy.GenericAPIError{Code: "PreconditionFailed", Message: "At least one of the pre-conditions you specified did not hold"},
			want: true,
		},
		{
			name: "并发条件写争用",
			err:  &smithy.GenericAPIError{Code: "ConditionalRequestConflict", Message: "A conflicting conditional operation is currently in progress"},
			want: true,
		},
		{
			name: "包装后的条件写入失败",
			err:  fmt.Errorf("上传失败: %w", &smithy.GenericAPIError{Code: "PreconditionFailed"}),
			want: true,
		},
		{
			name: "其他 S3 错误不算冲突",
			err:  &smithy.GenericAPIError{Code: "AccessDenied", Message: "Access Denied"},
			want: false,
		},
		{
			name: "非 API 错误不算冲突",
			err:  fmt.Errorf("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isConditionalConflict(tt.err); got != tt.want {
				t.Errorf("isConditionalConflict(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
