package imgutil

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const base64Marker = ";base64,"

// ParseDataURL は data URL から MIME タイプとデコード済みバイト列を取り出します。
// 画像用途を想定しているため、base64 エンコードされていない data URL は
// 対応外としてエラーを返します。
func ParseDataURL(s string) (string, []byte, error) {
	if !strings.HasPrefix(s, "data:") {
		return "", nil, fmt.Errorf("data URLではありません: %.32s", s)
	}

	idx := strings.Index(s, base64Marker)
	if idx < 0 {
		return "", nil, fmt.Errorf("base64エンコードされていないdata URLは扱えません")
	}

	mimeType := s[len("data:"):idx]
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(s[idx+len(base64Marker):])
	if err != nil {
		return "", nil, fmt.Errorf("data URLのbase64解読に失敗しました: %w", err)
	}
	return mimeType, data, nil
}
