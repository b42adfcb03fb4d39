// internal/sources/hackertarget/hackertarget_test.go
package hackertarget

import (
	"reflect"
	"testing"

	"sublance/internal/core/domain"
	"sublance/internal/platform/logx"
)

func TestNew(t *testing.T) {
	src := New(logx.NewSilent())

	if src.Name() != "hackertarget" {
		t.Errorf("Name() = %q, want %q", src.Name(), "hackertarget")
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestExtractNames(t *testing.T) {
	target := *domain.NewTarget("example.com")

	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "well formed lines",
			body: "www.example.com,93.184.216.34\nmail.example.com,93.184.216.35",
			want: []string{"www.example.com", "mail.example.com"},
		},
		{
			name: "lines without comma skipped",
			body: "www.example.com,1.2.3.4\njunk line\n",
			want: []string{"www.example.com"},
		},
		{
			name: "out of scope dropped",
			body: "www.example.com,1.2.3.4\nwww.example.org,5.6.7.8",
			want: []string{"www.example.com"},
		},
		{
			name: "case folded and deduplicated",
			body: "WWW.Example.COM,1.2.3.4\nwww.example.com,1.2.3.4",
			want: []string{"www.example.com"},
		},
		{
			name: "empty body",
			body: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractNames(tt.body, target)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractNames() = %v, want %v", got, tt.want)
			}
		})
	}
}
