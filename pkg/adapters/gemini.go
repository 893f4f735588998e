package adapters

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/shouni/gemini-restyle-kit/pkg/domain"
	"github.com/shouni/gemini-restyle-kit/pkg/generator"
	"github.com/shouni/gemini-restyle-kit/pkg/utils"
	"google.golang.org/genai"
)

// GeminiEditAdapter は元画像を条件とした画風変換と自由文編集を担当する
// アダプター層です。
type GeminiEditAdapter struct {
	aiClient generator.GenerativeClient // 通信クライアント
	model    string                     // 使用するモデル名
}

// NewGeminiEditAdapter は依存関係を注入してアダプターを初期化します。
// model が空の場合は既定のモデルIDを使います。
func NewGeminiEditAdapter(aiClient generator.GenerativeClient, model string) (*GeminiEditAdapter, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient is required")
	}
	if model == "" {
		model = generator.DefaultGeminiImageModel
	}
	return &GeminiEditAdapter{
		aiClient: aiClient,
		model:    model,
	}, nil
}

// Regenerate は画風ラベルから命令文を引き、元画像の画風変換を実行します。
func (a *GeminiEditAdapter) Regenerate(ctx context.Context, imageData string, style domain.ArtStyle, seed *int64) (*domain.RegenerationResult, error) {
	return a.generate(ctx, imageData, style.InstructionalPrompt(), seed)
}

// EditWithPrompt は自由文プロンプトによる編集を実行します。
// 画風変換と違い、プロンプトにサフィックス等の加工は一切行いません。
func (a *GeminiEditAdapter) EditWithPrompt(ctx context.Context, imageData string, prompt string, seed *int64) (*domain.RegenerationResult, error) {
	return a.generate(ctx, imageData, prompt, seed)
}

// generate はプロンプトと元画像をパーツ列に組み立てて Gemini へ送信します。
// 命令文を先頭、画像を後続に置く並びはバックエンドの推奨構成に合わせています。
func (a *GeminiEditAdapter) generate(ctx context.Context, imageData string, prompt string, seed *int64) (*domain.RegenerationResult, error) {
	raw, err := base64.StdEncoding.DecodeString(imageData)
	if err != nil {
		return nil, fmt.Errorf("%w: 画像データのbase64解釈に失敗しました: %v", domain.ErrMissingInput, err)
	}

	mimeType := http.DetectContentType(raw)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w: MIMEタイプが画像ではありません: %s", domain.ErrMissingInput, mimeType)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(raw, mimeType),
	}

	// 生成オプションの設定
	// シード値 (*int64) を SDK 用の *int32 に変換する。
	// 出力比率は元画像に従わせるため AspectRatio は指定しない。
	opts := generator.GenerateOptions{
		Seed: utils.SeedToPtrInt32(seed),
	}

	// 通信実行
	resp, err := a.aiClient.GenerateWithParts(ctx, a.model, parts, opts)
	if err != nil {
		return nil, fmt.Errorf("Gemini画像変換エラー: %w", err)
	}

	// 入力シード値を UsedSeed の初期値として扱うため、int64 型で抽出します。
	out, err := parseImageCandidates(resp, utils.DereferenceSeed(seed))
	if err != nil {
		return nil, err
	}

	return &domain.RegenerationResult{
		Image:    base64.StdEncoding.EncodeToString(out.Data),
		MimeType: out.MimeType,
		Prompt:   prompt,
		UsedSeed: out.UsedSeed,
	}, nil
}
