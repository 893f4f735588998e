package generator

import (
	"context"
	"fmt"
	"os"

	"github.com/shouni/gemini-restyle-kit/pkg/domain"
	"google.golang.org/genai"
)

// Client は google.golang.org/genai をラップする具象クライアントです。
// プロセス起動時に一度だけ構築し、ディスパッチャーへ注入して使います。
// 内部状態は持たないため、複数ゴルーチンから同時に呼び出せます。
type Client struct {
	ai *genai.Client
}

var _ GenerativeClient = (*Client)(nil)

// Options はクライアント構築時の設定です。
type Options struct {
	// APIKey が空の場合は環境変数 GEMINI_API_KEY から読み取ります。
	APIKey string
}

// NewClient は資格情報を検証して Client を構築します。
// 資格情報が見つからない場合は domain.ErrConfiguration を返します。
// 検証は構築時の一度きりで、呼び出しごとには行いません。
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: 環境変数 %s が設定されていません", domain.ErrConfiguration, EnvAPIKey)
	}

	ai, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GenAIクライアントの初期化に失敗しました: %v", domain.ErrConfiguration, err)
	}

	return &Client{ai: ai}, nil
}

// GenerateWithParts は組み立て済みのパーツ列で画像編集リクエストを実行します。
func (c *Client) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts GenerateOptions) (*genai.GenerateContentResponse, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
		Seed:               opts.Seed,
	}
	if opts.AspectRatio != "" {
		config.ImageConfig = &genai.ImageConfig{AspectRatio: opts.AspectRatio}
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	return c.ai.Models.GenerateContent(ctx, model, contents, config)
}

// GenerateImages はテキストプロンプトのみから画像を生成します。
// ブロック理由を応答で受け取れるよう、RAI 理由の返却を常に要求します。
func (c *Client) GenerateImages(ctx context.Context, model string, prompt string, opts ImagenOptions) (*genai.GenerateImagesResponse, error) {
	numberOfImages := opts.NumberOfImages
	if numberOfImages <= 0 {
		numberOfImages = 1
	}

	config := &genai.GenerateImagesConfig{
		NumberOfImages:   numberOfImages,
		AspectRatio:      opts.AspectRatio,
		OutputMIMEType:   opts.OutputMIMEType,
		IncludeRAIReason: true,
		Seed:             opts.Seed,
	}
	return c.ai.Models.GenerateImages(ctx, model, prompt, config)
}
