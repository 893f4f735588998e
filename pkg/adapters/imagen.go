package adapters

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-restyle-kit/pkg/domain"
	"github.com/shouni/gemini-restyle-kit/pkg/generator"
	"github.com/shouni/gemini-restyle-kit/pkg/utils"
)

// imagenOutputMIMEType は Imagen 生成画像の固定出力エンコーディングです。
const imagenOutputMIMEType = "image/jpeg"

// ImagenGenerateAdapter は、テキストのみを条件として新しい画像を生成する
// アダプターです。元画像は参照せず、ベース説明文と画風サフィックスを連結した
// 単一のプロンプトで Imagen にリクエストします。
type ImagenGenerateAdapter struct {
	aiClient generator.GenerativeClient
	model    string
}

// NewImagenGenerateAdapter は、依存関係を注入してアダプターのインスタンスを作成する。
func NewImagenGenerateAdapter(aiClient generator.GenerativeClient, model string) (*ImagenGenerateAdapter, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient is required")
	}
	if model == "" {
		model = generator.DefaultImagenModel
	}
	return &ImagenGenerateAdapter{
		aiClient: aiClient,
		model:    model,
	}, nil
}

// Regenerate は、ベース説明文と画風から最終プロンプトを組み立てて生成を実行します。
// 最終プロンプトは必ず「ベース説明文 + 画風サフィックス」の順で連結するのだ。
func (a *ImagenGenerateAdapter) Regenerate(ctx context.Context, basePrompt string, style domain.ArtStyle, aspectRatio float64, seed *int64) (*domain.RegenerationResult, error) {
	// 1. プロンプトの組み立て。連結順を入れ替えてはいけない。
	finalPrompt := basePrompt + style.StyleSuffix()

	// 2. アスペクト比をサポートするトークンへ写像する。
	// 不正な比率は呼び出し側のバグなので、通信前に即座に失敗させるのだ。
	token, err := domain.NearestAspectRatio(aspectRatio)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Imagen生成リクエストを準備中", "model", a.model, "aspect_ratio", token)

	// 3. 生成オプションの設定。出力は常に1枚、エンコーディングは固定とする。
	opts := generator.ImagenOptions{
		NumberOfImages: 1,
		AspectRatio:    token,
		OutputMIMEType: imagenOutputMIMEType,
		Seed:           utils.SeedToPtrInt32(seed),
	}

	// 4. Imagen クライアント経由で生成実行
	resp, err := a.aiClient.GenerateImages(ctx, a.model, finalPrompt, opts)
	if err != nil {
		return nil, fmt.Errorf("Imagen画像生成エラー: %w", err)
	}

	// 5. レスポンスの解析
	out, err := parseGeneratedImages(resp, utils.DereferenceSeed(seed))
	if err != nil {
		return nil, err
	}

	// 応答に MIME タイプが含まれない場合は要求した出力エンコーディングとみなす。
	mimeType := out.MimeType
	if mimeType == "" {
		mimeType = imagenOutputMIMEType
	}

	return &domain.RegenerationResult{
		Image:    base64.StdEncoding.EncodeToString(out.Data),
		MimeType: mimeType,
		Prompt:   finalPrompt,
		UsedSeed: out.UsedSeed,
	}, nil
}
