package archive

import (
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "普通标题",
			input:    "Kerjasama Sekolah A",
			expected: "kerjasama-sekolah-a",
		},
		{
			name:     "空字符串",
			input:    "",
			expected: "",
		},
		{
			name:     "纯空格",
			input:    "   \t  ",
			expected: "",
		},
		{
			name:     "首尾特殊字符",
			input:    "--Undangan Rapat!!",
			expected: "undangan-rapat",
		},
		{
			name:     "连续特殊字符折叠",
			input:    "Proposal   ***   Kegiatan",
			expected: "proposal-kegiatan",
		},
		{
			name:     "大小写混合",
			input:    "MoU KERJASAMA",
			expected: "mou-kerjasama",
		},
		{
			name:     "含数字",
			input:    "Undangan Rapat 2025",
			expected: "undangan-rapat-2025",
		},
		{
			name:     "纯特殊字符",
			input:    "!!! ???",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBuildStorageKey(t *testing.T) {
	docDate := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		docType  string
		title    string
		expected string
	}{
		{
			name:     "常规标题",
			docType:  "mou",
			title:    "Kerjasama Sekolah A",
			expected: "2025/surat-mou-kerjasama-sekolah-a.pdf",
		},
		{
			name:     "标题以类型开头时去重前缀",
			docType:  "mou",
			title:    "MoU Kerjasama Sekolah A",
			expected: "2025/surat-mou-kerjasama-sekolah-a.pdf",
		},
		{
			// 标题恰好等于类型时不做特殊处理，前缀去重只针对 "<类型>-"
			name:     "标题即类型时保留原样",
			docType:  "proposal",
			title:    "Proposal",
			expected: "2025/surat-proposal-proposal.pdf",
		},
		{
			name:     "空标题回退为dokumen",
			docType:  "undangan",
			title:    "",
			expected: "2025/surat-undangan-dokumen.pdf",
		},
		{
			name:     "纯特殊字符标题回退为dokumen",
			docType:  "balasan",
			title:    "???",
			expected: "2025/surat-balasan-dokumen.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildStorageKey(docDate, tt.docType, tt.title); got != tt.expected {
				t.Errorf("BuildStorageKey(%v, %q, %q) = %q, want %q", docDate, tt.docType, tt.title, got, tt.expected)
			}
		})
	}
}

func TestBuildStorageKeyUsesDocumentYear(t *testing.T) {
	docDate := time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC)
	got := BuildStorageKey(docDate, "mou", "Kerjasama")
	want := "2023/surat-mou-kerjasama.pdf"
	if got != want {
		t.Errorf("BuildStorageKey() = %q, want %q", got, want)
	}
}

func TestRetryStorageKey(t *testing.T) {
	now := time.UnixMilli(1714000000000)
	got := RetryStorageKey("2025/surat-mou-kerjasama.pdf", now)
	want := "2025/surat-mou-kerjasama-1714000000000.pdf"
	if got != want {
		t.Errorf("RetryStorageKey() = %q, want %q", got, want)
	}
}
