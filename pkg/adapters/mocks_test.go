package adapters

import (
	"context"

	"github.com/shouni/gemini-restyle-kit/pkg/generator"
	"google.golang.org/genai"
)

// mockGenerativeClient は generator.GenerativeClient のテスト用モックなのだ。
// 呼び出し回数を記録するので、通信前に検証で弾かれたことの確認にも使えるのだ。
type mockGenerativeClient struct {
	generateWithPartsFunc func(model string, parts []*genai.Part, opts generator.GenerateOptions) (*genai.GenerateContentResponse, error)
	generateImagesFunc    func(model string, prompt string, opts generator.ImagenOptions) (*genai.GenerateImagesResponse, error)

	contentCalls int
	imageCalls   int
}

func (m *mockGenerativeClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts generator.GenerateOptions) (*genai.GenerateContentResponse, error) {
	m.contentCalls++
	if m.generateWithPartsFunc != nil {
		return m.generateWithPartsFunc(model, parts, opts)
	}
	return nil, nil
}

func (m *mockGenerativeClient) GenerateImages(ctx context.Context, model string, prompt string, opts generator.ImagenOptions) (*genai.GenerateImagesResponse, error) {
	m.imageCalls++
	if m.generateImagesFunc != nil {
		return m.generateImagesFunc(model, prompt, opts)
	}
	return nil, nil
}

// mockResolver は FrameResolver のテスト用モックなのだ。
type mockResolver struct {
	resolveFunc func(ctx context.Context, ref string) (string, error)
	calls       int
}

func (m *mockResolver) Resolve(ctx context.Context, ref string) (string, error) {
	m.calls++
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, ref)
	}
	return "", nil
}

// imageResponse はテキストの後に画像が続く、典型的な混在応答を組み立てるのだ。
func imageResponse(mime string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "Here is the restyled image."},
						{InlineData: &genai.Blob{MIMEType: mime, Data: data}},
					},
				},
			},
		},
	}
}

// imagenResponse は1枚の生成画像を含む Imagen 応答を組み立てるのだ。
func imagenResponse(mime string, data []byte) *genai.GenerateImagesResponse {
	return &genai.GenerateImagesResponse{
		GeneratedImages: []*genai.GeneratedImage{
			{Image: &genai.Image{ImageBytes: data, MIMEType: mime}},
		},
	}
}
