package utils

// DereferenceSeed は、int64のポインタを安全にデリファレンスします。
// ポインタがnilの場合は0を返します。再生成結果の UsedSeed 算出に使います。
func DereferenceSeed(seed *int64) int64 {
	if seed == nil {
		return 0
	}
	return *seed
}

// SeedToPtrInt32 はドメインの *int64 を SDK 用の *int32 に変換します。
// int64 から int32 へ型キャストするため、範囲を超える値は上位ビットが
// 切り捨てられますが、シード値の再現性においては期待される挙動です。
func SeedToPtrInt32(seed *int64) *int32 {
	if seed == nil {
		return nil
	}
	val := int32(*seed)
	return &val
}
