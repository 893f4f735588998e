package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/shouni/gemini-restyle-kit/pkg/domain"
	"github.com/shouni/gemini-restyle-kit/pkg/generator"
	"google.golang.org/genai"
)

func TestImagenGenerateAdapter_Regenerate(t *testing.T) {
	ctx := context.Background()
	basePrompt := "A lighthouse on a stormy coast at dusk"

	t.Run("Success/ShouldConcatenateBasePromptThenStyleSuffix", func(t *testing.T) {
		want := basePrompt + domain.StyleWatercolor.StyleSuffix()

		client := &mockGenerativeClient{
			generateImagesFunc: func(model string, prompt string, opts generator.ImagenOptions) (*genai.GenerateImagesResponse, error) {
				if prompt != want {
					t.Errorf("final prompt must be base + suffix in that order:\n got %q\nwant %q", prompt, want)
				}
				if opts.NumberOfImages != 1 {
					t.Errorf("exactly one image must be requested: %d", opts.NumberOfImages)
				}
				if opts.AspectRatio != domain.AspectWide {
					t.Errorf("unexpected aspect token: %s", opts.AspectRatio)
				}
				if opts.OutputMIMEType != "image/jpeg" {
					t.Errorf("output encoding must be fixed: %s", opts.OutputMIMEType)
				}
				return imagenResponse("image/jpeg", []byte("generated")), nil
			},
		}

		adapter, err := NewImagenGenerateAdapter(client, "")
		if err != nil {
			t.Fatalf("NewImagenGenerateAdapter failed: %v", err)
		}

		res, err := adapter.Regenerate(ctx, basePrompt, domain.StyleWatercolor, 16.0/9.0, nil)
		if err != nil {
			t.Fatalf("Regenerate failed: %v", err)
		}
		if res.Prompt != want {
			t.Errorf("recorded prompt mismatch: %s", res.Prompt)
		}
	})

	t.Run("Success/ShouldFallBackToRequestedMIMETypeWhenResponseOmitsIt", func(t *testing.T) {
		client := &mockGenerativeClient{
			generateImagesFunc: func(model string, prompt string, opts generator.ImagenOptions) (*genai.GenerateImagesResponse, error) {
				return imagenResponse("", []byte("generated")), nil
			},
		}

		adapter, _ := NewImagenGenerateAdapter(client, "")
		res, err := adapter.Regenerate(ctx, basePrompt, domain.StylePopArt, 1.0, nil)
		if err != nil {
			t.Fatalf("Regenerate failed: %v", err)
		}
		if res.MimeType != "image/jpeg" {
			t.Errorf("MIME type should fall back to the requested encoding: %s", res.MimeType)
		}
	})

	t.Run("Success/ShouldPassConvertedSeed", func(t *testing.T) {
		seedValue := int64(777)
		client := &mockGenerativeClient{
			generateImagesFunc: func(model string, prompt string, opts generator.ImagenOptions) (*genai.GenerateImagesResponse, error) {
				if opts.Seed == nil || *opts.Seed != int32(seedValue) {
					t.Errorf("seed was not converted correctly: %v", opts.Seed)
				}
				return imagenResponse("image/jpeg", []byte("seeded")), nil
			},
		}

		adapter, _ := NewImagenGenerateAdapter(client, "")
		res, err := adapter.Regenerate(ctx, basePrompt, domain.StyleCyberpunk, 1.0, &seedValue)
		if err != nil {
			t.Fatalf("Regenerate failed: %v", err)
		}
		if res.UsedSeed != seedValue {
			t.Errorf("unexpected UsedSeed: %d", res.UsedSeed)
		}
	})

	t.Run("Failure/ShouldFailFastOnInvalidAspectRatio", func(t *testing.T) {
		client := &mockGenerativeClient{}
		adapter, _ := NewImagenGenerateAdapter(client, "")

		_, err := adapter.Regenerate(ctx, basePrompt, domain.StyleAnime, 0, nil)
		if err == nil {
			t.Fatal("non-positive ratio must be rejected")
		}
		if client.imageCalls != 0 {
			t.Errorf("client must not be called for invalid ratio: %d calls", client.imageCalls)
		}
	})

	t.Run("Failure/ShouldReturnErrorWhenAIClientFails", func(t *testing.T) {
		expectedErr := errors.New("AI client network error")
		client := &mockGenerativeClient{
			generateImagesFunc: func(model string, prompt string, opts generator.ImagenOptions) (*genai.GenerateImagesResponse, error) {
				return nil, expectedErr
			},
		}

		adapter, _ := NewImagenGenerateAdapter(client, "")
		_, err := adapter.Regenerate(ctx, basePrompt, domain.StyleAnime, 1.0, nil)

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error '%v', but got '%v'", expectedErr, err)
		}
	})

	t.Run("Failure/ShouldPropagateRAIBlockAsBlocked", func(t *testing.T) {
		client := &mockGenerativeClient{
			generateImagesFunc: func(model string, prompt string, opts generator.ImagenOptions) (*genai.GenerateImagesResponse, error) {
				return &genai.GenerateImagesResponse{
					GeneratedImages: []*genai.GeneratedImage{
						{RAIFilteredReason: "unsafe content"},
					},
				}, nil
			},
		}

		adapter, _ := NewImagenGenerateAdapter(client, "")
		_, err := adapter.Regenerate(ctx, basePrompt, domain.StyleAnime, 1.0, nil)

		if !errors.Is(err, domain.ErrBlocked) {
			t.Errorf("expected ErrBlocked, got %v", err)
		}
	})
}
