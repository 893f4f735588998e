package adapters

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-restyle-kit/pkg/domain"
)

// FrameResolver は SourceURL からインライン画像データ (標準base64) を解決する
// 窓口です。pkg/frames の Loader がこのインターフェースを満たします。
type FrameResolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// ImageRestyler は元画像を条件とする再生成バックエンドの窓口です。
type ImageRestyler interface {
	Regenerate(ctx context.Context, imageData string, style domain.ArtStyle, seed *int64) (*domain.RegenerationResult, error)
	EditWithPrompt(ctx context.Context, imageData string, prompt string, seed *int64) (*domain.RegenerationResult, error)
}

// TextRestyler はテキストのみを条件とする再生成バックエンドの窓口です。
type TextRestyler interface {
	Regenerate(ctx context.Context, basePrompt string, style domain.ArtStyle, aspectRatio float64, seed *int64) (*domain.RegenerationResult, error)
}

// RegenerationDispatcher は再生成要求の入力検証、バックエンドへの振り分け、
// エラーの正規化をまとめて担うファサードです。
// リトライは行いません。再試行の判断は公開分類を見た呼び出し側の責務です。
type RegenerationDispatcher struct {
	gemini ImageRestyler
	imagen TextRestyler
	frames FrameResolver
}

// NewRegenerationDispatcher は依存関係を注入してディスパッチャーを初期化します。
// frames は nil を許容（SourceURL 解決なし動作）。
func NewRegenerationDispatcher(gemini ImageRestyler, imagen TextRestyler, frames FrameResolver) (*RegenerationDispatcher, error) {
	if gemini == nil {
		return nil, fmt.Errorf("gemini adapter is required")
	}
	if imagen == nil {
		return nil, fmt.Errorf("imagen adapter is required")
	}
	return &RegenerationDispatcher{
		gemini: gemini,
		imagen: imagen,
		frames: frames,
	}, nil
}

// Dispatch は要求を検証し、Model に応じたバックエンドへ振り分けます。
// 必須入力の検証は通信より先に行われ、欠落時は一切のネットワーク呼び出しなしに
// domain.ErrMissingInput を返します。下位から返るエラーはすべて公開分類へ
// 正規化されます。
func (d *RegenerationDispatcher) Dispatch(ctx context.Context, req domain.RegenerationRequest) (*domain.RegenerationResult, error) {
	switch req.Model {
	case domain.ModelGemini:
		imageData, err := d.resolveImageData(ctx, req)
		if err != nil {
			return nil, normalizeGenerationError(err, string(req.Model))
		}

		slog.InfoContext(ctx, "画風変換をディスパッチします", "model", req.Model, "style", req.Style)
		res, err := d.gemini.Regenerate(ctx, imageData, req.Style, req.Seed)
		if err != nil {
			return nil, normalizeGenerationError(err, string(req.Model))
		}
		return res, nil

	case domain.ModelImagen:
		if req.TextPrompt == "" {
			return nil, fmt.Errorf("%w: テキストプロンプトが必要です", domain.ErrMissingInput)
		}

		slog.InfoContext(ctx, "テキスト生成をディスパッチします", "model", req.Model, "style", req.Style)
		res, err := d.imagen.Regenerate(ctx, req.TextPrompt, req.Style, req.AspectRatio, req.Seed)
		if err != nil {
			return nil, normalizeGenerationError(err, string(req.Model))
		}
		return res, nil

	default:
		return nil, fmt.Errorf("%w: 未対応のモデルです: %q", domain.ErrMissingInput, req.Model)
	}
}

// EditImage は画風サフィックスを付けない自由文編集です。
// プロンプトは加工せずそのまま送信し、結果に記録するプロンプトにのみ
// 編集操作である旨のラベルを付けます。
func (d *RegenerationDispatcher) EditImage(ctx context.Context, imageData string, prompt string) (*domain.RegenerationResult, error) {
	if imageData == "" {
		return nil, fmt.Errorf("%w: 画像データが必要です", domain.ErrMissingInput)
	}
	if prompt == "" {
		return nil, fmt.Errorf("%w: 編集指示のプロンプトが必要です", domain.ErrMissingInput)
	}

	slog.InfoContext(ctx, "自由文編集をディスパッチします", "prompt_len", len(prompt))
	res, err := d.gemini.EditWithPrompt(ctx, imageData, prompt, nil)
	if err != nil {
		return nil, normalizeGenerationError(err, string(domain.ModelGemini))
	}

	res.Prompt = "編集: " + prompt
	return res, nil
}

// resolveImageData はインライン画像を優先し、無ければ SourceURL を
// FrameResolver で解決します。どちらも得られなければ ErrMissingInput です。
func (d *RegenerationDispatcher) resolveImageData(ctx context.Context, req domain.RegenerationRequest) (string, error) {
	if req.ImageData != "" {
		return req.ImageData, nil
	}

	if req.SourceURL != "" && d.frames != nil {
		resolved, err := d.frames.Resolve(ctx, req.SourceURL)
		if err != nil {
			return "", fmt.Errorf("%w: 元画像の取得に失敗しました: %v", domain.ErrMissingInput, err)
		}
		return resolved, nil
	}

	return "", fmt.Errorf("%w: 画像データが必要です", domain.ErrMissingInput)
}
