package cmd

import "testing"

func TestEnsureScheme(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "スキームなしはhttpsを補完",
			input:    "example.com/article",
			expected: "https://example.com/article",
		},
		{
			name:     "httpsはそのまま",
			input:    "https://example.com/article",
			expected: "https://example.com/article",
		},
		{
			name:     "httpもそのまま",
			input:    "http://example.com/article",
			expected: "http://example.com/article",
		},
		{
			name:    "http/https以外のスキームはエラー",
			input:   "ftp://example.com/file",
			wantErr: true,
		},
		{
			name:    "パース不能なURLはエラー",
			input:   "http://exa mple.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ensureScheme(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ensureScheme(%q) でエラーが発生しませんでした", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ensureScheme(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ensureScheme(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
