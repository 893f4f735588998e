package generator

import (
	"context"

	"google.golang.org/genai"
)

// GenerativeClient は2種類のリモート生成オペレーションを抽象化する窓口です。
// アダプター層はこのインターフェースにのみ依存し、テストではモックに差し替えます。
type GenerativeClient interface {
	// GenerateWithParts はテキストと画像のパーツ列を送り、
	// 画像＋テキスト混在の応答を受け取ります (image-conditioned)。
	GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts GenerateOptions) (*genai.GenerateContentResponse, error)
	// GenerateImages はテキストプロンプトのみから画像を生成します (text-conditioned)。
	GenerateImages(ctx context.Context, model string, prompt string, opts ImagenOptions) (*genai.GenerateImagesResponse, error)
}
