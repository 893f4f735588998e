package adapters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shouni/gemini-restyle-kit/pkg/domain"
	"google.golang.org/genai"
)

// ImageOutput はバックエンド間で共通の生画像ペイロードです。
// base64 エンコード前の中間表現としてアダプター内部で利用します。
type ImageOutput struct {
	Data     []byte
	MimeType string
	UsedSeed int64
}

// parseImageCandidates は Gemini の画像・テキスト混在応答を解析して
// 最初に見つかった画像パーツを ImageOutput に変換します。
func parseImageCandidates(resp *genai.GenerateContentResponse, seed int64) (*ImageOutput, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if reason := blockReason(resp); reason != "" {
			return nil, fmt.Errorf("%w: プロンプトが拒否されました (BlockReason: %s)。内容を変えてお試しください", domain.ErrBlocked, reason)
		}
		return nil, fmt.Errorf("%w: Geminiからの有効な応答がありませんでした", domain.ErrNoImage)
	}

	// 現在の仕様では、Geminiからの最初の候補 (Candidate) のみを利用する。
	candidate := resp.Candidates[0]

	// 画像パーツの探索。テキストパーツは読み飛ばし、応答の並び順で
	// 最初に現れた画像で確定する。
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &ImageOutput{
					Data:     part.InlineData.Data,
					MimeType: part.InlineData.MIMEType,
					UsedSeed: seed,
				}, nil
			}
		}
	}

	// 安全フィルター等によるブロックの確認
	if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("%w: 画像生成が異常終了しました (FinishReason: %s)。別の画風やプロンプトをお試しください", domain.ErrBlocked, candidate.FinishReason)
	}
	if reason := blockReason(resp); reason != "" {
		return nil, fmt.Errorf("%w: プロンプトが拒否されました (BlockReason: %s)。内容を変えてお試しください", domain.ErrBlocked, reason)
	}

	return nil, fmt.Errorf("%w: 画像データが見つかりませんでした", domain.ErrNoImage)
}

// blockReason は応答全体のプロンプトフィードバックからブロック理由を取り出します。
func blockReason(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.PromptFeedback == nil {
		return ""
	}
	return string(resp.PromptFeedback.BlockReason)
}

// parseGeneratedImages は Imagen の応答から先頭の生成画像を取り出します。
// RAI フィルターに落ちた場合、画像の代わりに理由文字列が返ってきます。
func parseGeneratedImages(resp *genai.GenerateImagesResponse, seed int64) (*ImageOutput, error) {
	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil, fmt.Errorf("%w: Imagenからの有効な応答がありませんでした", domain.ErrNoImage)
	}

	first := resp.GeneratedImages[0]
	if first.Image != nil && len(first.Image.ImageBytes) > 0 {
		return &ImageOutput{
			Data:     first.Image.ImageBytes,
			MimeType: first.Image.MIMEType,
			UsedSeed: seed,
		}, nil
	}

	if first.RAIFilteredReason != "" {
		return nil, fmt.Errorf("%w: 生成がブロックされました (%s)。別のプロンプトをお試しください", domain.ErrBlocked, first.RAIFilteredReason)
	}

	return nil, fmt.Errorf("%w: 画像データが見つかりませんでした", domain.ErrNoImage)
}

// normalizeGenerationError は下位レイヤーの雑多なエラーを公開分類へ写像します。
// domain.ErrBlocked と domain.ErrMissingInput は既に公開分類なので、
// 理由を保持したまま手を加えずに通過させます。
// それ以外はメッセージ文字列で判定し、分類できないものは ErrUnknown に包みます。
func normalizeGenerationError(err error, model string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrBlocked) || errors.Is(err, domain.ErrMissingInput) {
		return err
	}

	msg := strings.ToLower(err.Error())
	switch {
	case isRateLimitError(msg):
		return fmt.Errorf("%w: リクエストが混み合っています。しばらく待ってから再試行してください: %v", domain.ErrRateLimited, err)
	case isCredentialError(msg):
		return fmt.Errorf("%w: APIキーが拒否されました。資格情報を確認してください: %v", domain.ErrInvalidCredentials, err)
	default:
		return fmt.Errorf("%w: %s モデルでの画像生成に失敗しました: %v", domain.ErrUnknown, model, err)
	}
}

// isRateLimitError は 429 やクォータ枯渇を示すメッセージを検出します。
func isRateLimitError(lowerMsg string) bool {
	return strings.Contains(lowerMsg, "429") ||
		strings.Contains(lowerMsg, "rate limit") ||
		strings.Contains(lowerMsg, "resource_exhausted") ||
		strings.Contains(lowerMsg, "resource exhausted") ||
		strings.Contains(lowerMsg, "quota")
}

// isCredentialError はサービス側が資格情報を拒否したメッセージを検出します。
func isCredentialError(lowerMsg string) bool {
	return strings.Contains(lowerMsg, "api key not valid") ||
		strings.Contains(lowerMsg, "api_key_invalid") ||
		strings.Contains(lowerMsg, "unauthenticated") ||
		strings.Contains(lowerMsg, "permission denied") ||
		strings.Contains(lowerMsg, "permission_denied") ||
		strings.Contains(lowerMsg, "401") ||
		strings.Contains(lowerMsg, "403")
}
