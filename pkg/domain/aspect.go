package domain

import (
	"fmt"
	"math"
)

// サポートするアスペクト比トークン。バックエンドの設定値にそのまま渡せます。
const (
	AspectSquare    = "1:1"
	AspectLandscape = "4:3"
	AspectPortrait  = "3:4"
	AspectWide      = "16:9"
	AspectTall      = "9:16"
)

// aspectRefs は近似対象の参照表です。スライスの並び順がそのまま
// 同距離時の優先順位になるため、順序を変更してはいけません。
var aspectRefs = []struct {
	token string
	value float64
}{
	{AspectSquare, 1},
	{AspectLandscape, 4.0 / 3.0},
	{AspectPortrait, 3.0 / 4.0},
	{AspectWide, 16.0 / 9.0},
	{AspectTall, 9.0 / 16.0},
}

// NearestAspectRatio は任意の正のアスペクト比を、サポートする5比率のうち
// 最も近いトークンへ写像します。差が同じ場合は参照表で先に定義された方が
// 勝ちます。0以下や非有限の入力は契約外のため即座にエラーを返します。
func NearestAspectRatio(ratio float64) (string, error) {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		return "", fmt.Errorf("アスペクト比は正の実数である必要があります: %v", ratio)
	}

	best := aspectRefs[0].token
	bestDiff := math.Abs(ratio - aspectRefs[0].value)
	for _, ref := range aspectRefs[1:] {
		if diff := math.Abs(ratio - ref.value); diff < bestDiff {
			best = ref.token
			bestDiff = diff
		}
	}
	return best, nil
}
